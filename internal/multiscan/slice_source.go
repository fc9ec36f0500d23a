package multiscan

// SliceSource adapts an in-memory byte slice to Source: the full slice is
// returned exactly once, and every subsequent Read reports EOF. This is
// the "one-shot chunk" source spec.md §4.2 describes for in-memory decode.
type SliceSource struct {
	data []byte
	done bool
}

// NewSliceSource wraps data as a one-shot Source.
func NewSliceSource(data []byte) *SliceSource {
	return &SliceSource{data: data}
}

// Read ignores n and returns the whole wrapped slice on the first call,
// then (nil, nil) forever after.
func (s *SliceSource) Read(n int) ([]byte, error) {
	if s.done {
		return nil, nil
	}
	s.done = true
	return s.data, nil
}
