package video

// Select drops every stride-th frame, starting with the first: frames at
// indices 0, stride, 2*stride, ... are removed and the rest kept in order.
// A stride of zero or less keeps every frame.
func Select[T any](frames []T, stride int) []T {
	if stride <= 0 {
		return frames
	}

	out := make([]T, 0, len(frames)-len(frames)/stride)

	for i, f := range frames {
		if i%stride != 0 {
			out = append(out, f)
		}
	}

	return out
}
