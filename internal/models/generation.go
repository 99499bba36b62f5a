package models

// GenerationTier names the path of the artifact generation policy that produced an image
type GenerationTier string

const (
	TierPrimary   GenerationTier = "primary"
	TierSanitized GenerationTier = "sanitized"
	TierLocal     GenerationTier = "local"
)

// TextRequest is a prompt for the text generation endpoint
type TextRequest struct {
	Prompt      string
	Temperature float64
	// RelaxSafety lowers the remote harm thresholds, used when summarizing
	// third-party page content
	RelaxSafety bool
}
