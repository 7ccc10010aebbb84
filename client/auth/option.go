package auth

type Option func(*Service)

// WithLoginPath overrides the login destination
func WithLoginPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.loginPath = path
		}
	}
}

// WithLogger sets the log function, nil silences logging.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(s *Service) {
		if logf == nil {
			logf = func(string, ...any) {}
		}
		s.logf = logf
	}
}
