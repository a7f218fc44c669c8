package dto

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope wraps every successful payload.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    any             `json:"data,omitempty"`
	Tokens  *TokensResponse `json:"tokens,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Success builds an envelope with data.
func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// Failure builds an error body.
func Failure(code, message string) ErrorResponse {
	return ErrorResponse{Status: StatusError, Code: code, Message: message}
}
