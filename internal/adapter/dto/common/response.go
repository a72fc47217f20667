package common

// SuccessResponse is the envelope of every successful response
type SuccessResponse struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope of every failed response
type ErrorResponse struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse represents the health check body
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Projects    int    `json:"projects"`
	ViewStore   string `json:"view_store"`
}
