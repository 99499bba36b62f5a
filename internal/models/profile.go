package models

// Reading is a single generated stat of a subject
type Reading struct {
	Kind  Kind   `json:"kind"`
	Value int    `json:"value"`
	Tag   string `json:"tag"`
}

// Profile is the context passed to artifact generators: the four readings
// of a subject plus a display name
type Profile struct {
	Name   string  `json:"name"`
	Weight Reading `json:"weight"`
	Length Reading `json:"length"`
	IQ     Reading `json:"iq"`
	Height Reading `json:"height"`
}

// Readings returns the profile readings in display order
func (p Profile) Readings() []Reading {
	return []Reading{p.Weight, p.Length, p.IQ, p.Height}
}

// SearchResult is one item returned by the web search endpoint
type SearchResult struct {
	Link    string `json:"link"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}
