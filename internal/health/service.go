package health

// Service encapsulates health-related checks.
type Service struct {
	env string
}

// NewService constructs a health service tagged with the deployment
// environment.
func NewService(env string) *Service {
	return &Service{env: env}
}

// Status returns the liveness payload.
func (s *Service) Status() map[string]string {
	return map[string]string{
		"status":      "healthy",
		"environment": s.env,
	}
}
