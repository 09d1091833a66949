package health

// Status represents the coarse health verdict for the service.
type Status int

const (
	// StatusHealthy indicates no classification rule triggered.
	StatusHealthy Status = iota
	// StatusDegraded indicates one or two rules triggered.
	StatusDegraded
	// StatusUnhealthy indicates three or more rules triggered.
	StatusUnhealthy
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "healthy"
	case StatusDegraded:
		return "degraded"
	case StatusUnhealthy:
		return "unhealthy"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the status as its lowercase name.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}
