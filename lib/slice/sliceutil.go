package sliceutil

// Map applies f to every element of v, producing a slice of the results.
func Map[From any, To any](v []From, f func(From) To) []To {
	out := make([]To, 0, len(v))
	for _, e := range v {
		out = append(out, f(e))
	}
	return out
}
