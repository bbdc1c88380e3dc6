package typereg

// settings hold construction-time registry behavior. The zero value is a
// case-sensitive registry.
type settings struct {
	caseInsensitive bool
}

// Option configures a Registry at construction time.
type Option func(*settings)

// WithCaseInsensitive folds every key to lower case before each store and
// lookup. The fold is fixed for the registry's lifetime.
func WithCaseInsensitive() Option {
	return func(s *settings) { s.caseInsensitive = true }
}
