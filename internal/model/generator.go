package model

// GenerateRequest represents a suggested-password request. A zero length selects the default.
type GenerateRequest struct {
	Length int `json:"length"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
