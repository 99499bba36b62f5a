package generation

import (
	"fmt"

	"go-psi-bot/internal/models"
)

// PrimaryPrompt describes the full profile to the image model
func PrimaryPrompt(p models.Profile) string {
	return fmt.Sprintf(
		"Draw a clean flat cartoon avatar, transparent PNG. "+
			"Height %d cm, weight %d kg. "+
			"Floating yellow tape-measure on the right shows \"%d cm\". "+
			"Thought bubble: \"IQ %d\". "+
			"Write \"%s\" under the feet. Fully clothed. No nudity.",
		p.Height.Value, p.Weight.Value, p.Length.Value, p.IQ.Value, p.Name)
}

// SanitizedPrompt omits the length attribute, the one most often refused
func SanitizedPrompt(p models.Profile) string {
	return fmt.Sprintf(
		"Draw a clean flat cartoon avatar, transparent PNG. "+
			"Height %d cm, weight %d kg. "+
			"Thought bubble: \"IQ %d\". "+
			"Write \"%s\" under the feet. Fully clothed.",
		p.Height.Value, p.Weight.Value, p.IQ.Value, p.Name)
}
