package domain

// Fields is the mutable mapping a log message is assembled from.
// Values are opaque to the core; serialization is the destination's job.
type Fields map[string]any

// Clone returns a shallow copy so callers can't mutate shared state
// through a retained reference.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Merge copies every entry of other into f, last write wins per key.
func (f Fields) Merge(other Fields) {
	for k, v := range other {
		f[k] = v
	}
}
