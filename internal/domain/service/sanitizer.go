package service

// Sanitizer strips unsafe markup from user-submitted text before it is
// persisted or rendered.
type Sanitizer interface {
	Sanitize(input string) string
}
