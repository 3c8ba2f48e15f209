package core

// Pad returns buf extended to n elements with zero values. buf is returned
// unchanged when it already holds n or more elements; otherwise the result
// reuses buf's backing array only if it has room.
func Pad[T any](buf []T, n int) []T {
	if len(buf) >= n {
		return buf
	}
	if cap(buf) >= n {
		out := buf[:n]
		clear(out[len(buf):])
		return out
	}
	out := make([]T, n)
	copy(out, buf)
	return out
}
