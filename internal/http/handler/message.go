package handler

// oopsErr is the plain text body sent when a response cannot be encoded.
const oopsErr = "Oops! Something went wrong. Please try again later."

// Response is the body of every failed request. Successful requests are
// answered with their view directly.
type Response struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
