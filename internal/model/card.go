package model

import "fmt"

// Card is one entry of the threat catalog
type Card struct {
	Rank        string `json:"rank"`
	RankWord    string `json:"rank_word"`
	Description string `json:"description"`
	Suit        string `json:"suit"`
}

// Title returns the spoken name of the card, e.g. "the five of tampering"
func (c Card) Title() string {
	return fmt.Sprintf("the %s of %s", c.RankWord, c.Suit)
}
