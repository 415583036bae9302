package models

// Response statuses used in every JSON envelope.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// DataResponse is the standard success envelope:
// {"status":"success","results":n,"data":{...}}.
type DataResponse struct {
	Status  string         `json:"status"`
	Results *int           `json:"results,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// NewDataResponse wraps a single named document.
func NewDataResponse(key string, value any) DataResponse {
	return DataResponse{Status: StatusSuccess, Data: map[string]any{key: value}}
}

// NewListResponse wraps a named list and reports its length.
func NewListResponse[T any](key string, items []T) DataResponse {
	n := len(items)
	if items == nil {
		items = []T{}
	}
	return DataResponse{Status: StatusSuccess, Results: &n, Data: map[string]any{key: items}}
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Status string         `json:"status"`
	Token  string         `json:"token"`
	Data   map[string]any `json:"data"`
}

// CheckoutSessionResponse is the body of the checkout-session endpoint.
type CheckoutSessionResponse struct {
	Status  string          `json:"status"`
	Session CheckoutSession `json:"session"`
}

// ErrorResponse is the production error body.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DevErrorResponse is the development error body; it carries the wrapped
// error chain and the stack captured when the error was created.
type DevErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// WebhookResponse acknowledges a processed webhook delivery.
type WebhookResponse struct {
	Received bool `json:"received"`
}
