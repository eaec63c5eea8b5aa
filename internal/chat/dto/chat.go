package dto

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse is the answer returned to the chat client.
type ChatResponse struct {
	Answer string `json:"answer"`
}
