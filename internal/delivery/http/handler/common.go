package handler

// ErrorResponse is the error body shared by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}
