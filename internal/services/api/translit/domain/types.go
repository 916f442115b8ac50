// Package domain holds DTOs for the transliteration endpoints
package domain

// ConvertInput is the body of POST / and GET /
// from and to may be omitted only when text is empty
type ConvertInput struct {
	From string `json:"from" validate:"omitempty,script_tag" example:"Deva"`
	To   string `json:"to" validate:"omitempty,script_tag" example:"Taml"`
	Text string `json:"text" validate:"max=100000" example:"नमस्ते"`
}
