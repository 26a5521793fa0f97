package config

// Error is a configuration error: a schema or semantic violation in
// genrepo.yaml. All Error values are fatal to the invocation.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "invalid configuration: " + e.Reason
}
