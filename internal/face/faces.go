package face

// Faces is the list of faces found in one image, in detector order.
type Faces []Face

// Overlapping returns true if any two faces overlap.
func (faces Faces) Overlapping() bool {
	for i := range faces {
		if faces[:i].Contains(faces[i]) {
			return true
		}
	}

	return false
}

// Contains tests if the face area overlaps with any face in the list.
func (faces Faces) Contains(other Face) bool {
	a := other.Area()

	for i := range faces {
		if faces[i].Area().OverlapPercent(a) > OverlapThresholdFloor {
			return true
		}
	}

	return false
}

// Append adds a face.
func (faces *Faces) Append(f Face) {
	*faces = append(*faces, f)
}

// Count returns the number of faces.
func (faces Faces) Count() int {
	return len(faces)
}

// Uncertainty returns 100 minus the best detection score, or 100 if the list is empty.
func (faces Faces) Uncertainty() int {
	best := 0

	for i := range faces {
		best = max(best, faces[i].Score)
	}

	return 100 - best
}
