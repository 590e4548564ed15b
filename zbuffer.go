package painter3d

// ZBuffer keeps every face of a scene in one flat list and orders it by
// cached average depth. It is not a per-pixel z-buffer.
//
// The list is only ordered after Sort; transforms do not re-sort it.
type ZBuffer struct {
	faces []*Face
}

func NewZBuffer() *ZBuffer {
	return &ZBuffer{faces: make([]*Face, 0, 64)}
}

// AddEntity appends all of e's faces. Call Sort before trusting the order.
func (z *ZBuffer) AddEntity(e *Entity3D) {
	z.faces = append(z.faces, e.faces...)
}

// RemoveEntity drops exactly the faces owned by e, matched by identity.
// The relative order of the remaining faces is kept.
func (z *ZBuffer) RemoveEntity(e *Entity3D) {
	kept := z.faces[:0]
	for _, f := range z.faces {
		if f.owner != e {
			kept = append(kept, f)
		}
	}
	for i := len(kept); i < len(z.faces); i++ {
		z.faces[i] = nil
	}
	z.faces = kept
}

func (z *ZBuffer) Clear() {
	clear(z.faces)
	z.faces = z.faces[:0]
}

func (z *ZBuffer) Len() int {
	return len(z.faces)
}

// Sort orders the faces by average Z, largest first.
func (z *ZBuffer) Sort() {
	quickSort(z.faces, 0, len(z.faces)-1)
}

// SortedFaces returns the faces in their current order. The slice is shared
// with the buffer and is only valid until the next mutation.
func (z *ZBuffer) SortedFaces() []*Face {
	return z.faces
}

// quickSort is a Hoare partition sort, descending on zavg. Equal keys stop
// both scans so runs of duplicates still split evenly.
func quickSort(faces []*Face, left, right int) {
	for left < right {
		i, j := left, right
		pivot := faces[left+(right-left)/2].zavg
		for i <= j {
			for faces[i].zavg > pivot {
				i++
			}
			for faces[j].zavg < pivot {
				j--
			}
			if i <= j {
				faces[i], faces[j] = faces[j], faces[i]
				i++
				j--
			}
		}
		// recurse into the smaller half, loop on the larger
		if j-left < right-i {
			quickSort(faces, left, j)
			left = i
		} else {
			quickSort(faces, i, right)
			right = j
		}
	}
}
