package middleware

// Context keys used to store request metadata.
const (
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
)

// HeaderRequestID carries the request identifier in both directions.
const HeaderRequestID = "X-Request-ID"

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func reject(message string) errorBody {
	return errorBody{Success: false, Message: message}
}
