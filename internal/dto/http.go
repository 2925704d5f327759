package dto

// MessageResponse is the envelope for acknowledgements and every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

func NewMessageResponse(message string) *MessageResponse {
	return &MessageResponse{Message: message}
}
