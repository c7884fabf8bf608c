package dtos

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

type HealthReport struct {
	Status     string            `json:"status"`
	Region     string            `json:"region,omitempty"`
	ClientId   string            `json:"clientId,omitempty"`
	Components []ComponentHealth `json:"components,omitempty"`
}

type ComponentHealth struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (r HealthReport) Up() bool {
	return r.Status == StatusUp
}
