// Package domain holds DTOs for the word list endpoints
package domain

import (
	"scriptdrill/internal/core/corpus"
	"scriptdrill/internal/core/direction"
)

// Autodetect as the source script means the bucket's own script
const Autodetect = "autodetect"

// Request is the body of POST /wordlist and GET /wordlist.
// The feature switches take 0 exclude, 1 no constraint, 2 require and default to 1
type Request struct {
	To              string `json:"to" validate:"required,script_tag" example:"ISO"`
	Lang            string `json:"lang" validate:"required,max=64" example:"hi"`
	Script          string `json:"script" validate:"required,script_tag" example:"Deva"`
	From            string `json:"from" validate:"omitempty,script_tag" example:"autodetect"`
	WithConjuncts   *int   `json:"withConjuncts" validate:"omitempty,oneof=0 1 2" example:"1"`
	WithIndepVowels *int   `json:"withIndepVowels" validate:"omitempty,oneof=0 1 2" example:"1"`
}

// Side describes one column of the drill
type Side struct {
	Script string        `json:"script" example:"Deva"`
	Dir    direction.Dir `json:"dir" example:"ltr"`
	Fonts  []string      `json:"fonts"`
}

// Pair is a (source form, target form) row, encoded as a two element array
type Pair [2]string

// Response is the word list document
type Response struct {
	From     Side   `json:"from"`
	To       Side   `json:"to"`
	Wordlist []Pair `json:"wordlist"`
}

// LocaleInfo is one entry of GET /locales
type LocaleInfo = corpus.LocaleInfo
