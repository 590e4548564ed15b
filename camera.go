package painter3d

// Camera is a location only. Its Z coordinate drives the perspective
// divide and its full position is used for back-face culling.
type Camera struct {
	cameraPosition Point3D
}

func NewCamera(x, y, z float64) *Camera {
	return &Camera{cameraPosition: NewPoint3D(x, y, z)}
}

func (c *Camera) GetPosition() Point3D {
	return c.cameraPosition
}

func (c *Camera) SetCameraPosition(x, y, z float64) {
	c.cameraPosition = NewPoint3D(x, y, z)
}

func (c *Camera) AddZPosition(z float64) {
	c.cameraPosition.Z += z
}
