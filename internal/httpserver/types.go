package httpserver

import "go-psi-bot/internal/models"

const maxRequestBody = 64 << 10

// ProfileResponse carries every reading of a subject
type ProfileResponse struct {
	Success bool           `json:"success"`
	Profile models.Profile `json:"profile"`
	Caption string         `json:"caption"`
}

// ReadingResponse carries a single reading
type ReadingResponse struct {
	Success bool           `json:"success"`
	Reading models.Reading `json:"reading"`
	Text    string         `json:"text"`
}

// ProofRequest is the body of POST /proof
type ProofRequest struct {
	Text string `json:"text"`
}

// ProofResponse carries the proof answer
type ProofResponse struct {
	Success bool   `json:"success"`
	Answer  string `json:"answer"`
}

// QuotaResponse reports today's quota usage
type QuotaResponse struct {
	Success   bool   `json:"success"`
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
}
