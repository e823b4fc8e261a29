package dice

// FaceCount is the number of faces a rendered cube carries.
const FaceCount = 6

// AssignFaces builds the full six-value face sequence for one die. The
// front face is the given result and always lands at index 0. The five
// remaining faces are drawn from the roller and kept distinct from each
// other while the value space allows it; once the number of placed values
// reaches the size of the legal range, assignment switches to a
// deterministic wraparound walk so it always terminates and every face
// still receives a legal value.
func AssignFaces(r Roller, result, max int, canZero bool) ([]int, error) {
	min := 1
	if canZero {
		min = 0
	}

	faces := make([]int, FaceCount)
	faces[0] = result

	if max <= min {
		// Degenerate die: max is the only value the range can show
		v := max
		if v < 1 {
			v = 0
		}
		for i := 1; i < FaceCount; i++ {
			faces[i] = v
		}
		return faces, nil
	}

	rangeSize := max - min + 1
	used := make(map[int]bool, FaceCount)
	wrap := min

	for i := 1; i < FaceCount; i++ {
		var v int

		if len(used) >= rangeSize {
			// Distinctness is exhausted: walk the range deterministically,
			// clearing the used set at each new pass
			if wrap > max {
				wrap = min
				used = make(map[int]bool, FaceCount)
			}
			v = wrap
			wrap++
		} else {
			for {
				candidate, err := r.RollNumber(max, canZero)
				if err != nil {
					return nil, err
				}
				if !used[candidate] {
					v = candidate
					break
				}
			}
		}

		if v < 1 {
			v = 0
		}

		faces[i] = v
		used[v] = true
	}

	return faces, nil
}
