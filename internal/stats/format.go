package stats

import (
	"fmt"
	"strings"

	"go-psi-bot/internal/models"
)

// FormatValue renders a reading as "value unit tag"
func FormatValue(r models.Reading) string {
	rng := r.Kind.Range()
	parts := []string{fmt.Sprint(r.Value)}
	if rng.Unit != "" {
		parts = append(parts, rng.Unit)
	}
	if r.Tag != "" {
		parts = append(parts, r.Tag)
	}
	return strings.Join(parts, " ")
}

// FormatReading renders "My label: value unit tag"
func FormatReading(r models.Reading) string {
	return fmt.Sprintf("My %s: %s", r.Kind.Range().Label, FormatValue(r))
}

// FormatGreeting renders "name, your label: value unit tag"
func FormatGreeting(name string, r models.Reading) string {
	return fmt.Sprintf("%s, your %s: %s", name, r.Kind.Range().Label, FormatValue(r))
}

// FormatCaption renders every reading of the profile, one per line
func FormatCaption(p models.Profile) string {
	readings := p.Readings()
	lines := make([]string, len(readings))
	for i, r := range readings {
		lines[i] = FormatReading(r)
	}
	return strings.Join(lines, "\n")
}
