package models

// ContactRequest represents an incoming contact form submission.
type ContactRequest struct {
	Name    Text `json:"name"`
	Email   Text `json:"email"`
	Message Text `json:"message"`
}

// ContactMessage is a validated contact form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}
