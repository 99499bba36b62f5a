package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind represents one of the generated personal stats
type Kind string

const (
	KindWeight Kind = "weight"
	KindLength Kind = "length"
	KindIQ     Kind = "iq"
	KindHeight Kind = "height"
)

// AllKinds lists the kinds in display order
var AllKinds = []Kind{KindWeight, KindLength, KindIQ, KindHeight}

// TagRange maps an inclusive value range to a tag
type TagRange struct {
	Lower int
	Upper int
	Tag   string
}

// KindRange holds the bounded range and the tag table of a kind
type KindRange struct {
	Min   int
	Max   int
	Unit  string
	Label string
	Tags  []TagRange
}

var (
	weightRange = KindRange{
		Min: 0, Max: 250, Unit: "kg", Label: "weight",
		Tags: []TagRange{
			{0, 0, "🪶"},
			{1, 49, "🦴"},
			{50, 99, "⚖️"},
			{100, 149, "🏋️"},
			{150, 199, "🐖"},
			{200, 249, "🤯"},
			{250, 250, "🐘"},
		},
	}
	lengthRange = KindRange{
		Min: 0, Max: 50, Unit: "cm", Label: "length",
		Tags: []TagRange{
			{0, 0, "🤤"},
			{1, 9, "🤮"},
			{10, 19, "🥴"},
			{20, 29, "😐"},
			{30, 39, "😲"},
			{40, 49, "🤯"},
			{50, 50, "🫡"},
		},
	}
	iqRange = KindRange{
		Min: 50, Max: 200, Unit: "", Label: "IQ",
		Tags: []TagRange{
			{50, 69, "🤡"},
			{70, 89, "😕"},
			{90, 109, "🙂"},
			{110, 129, "😎"},
			{130, 149, "🤓"},
			{150, 199, "🧠"},
			{200, 200, "👨‍🔬"},
		},
	}
	heightRange = KindRange{
		Min: 140, Max: 220, Unit: "cm", Label: "height",
		Tags: []TagRange{
			{140, 149, "🦗"},
			{150, 169, "🙂"},
			{170, 189, "😃"},
			{190, 219, "🏀"},
			{220, 220, "🗼"},
		},
	}
)

// ParseKind converts a string into a Kind
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindWeight, KindLength, KindIQ, KindHeight:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for Kind
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}

	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Range returns the range and tag table for the kind.
// An unknown kind is a programming error and panics.
func (k Kind) Range() KindRange {
	switch k {
	case KindWeight:
		return weightRange
	case KindLength:
		return lengthRange
	case KindIQ:
		return iqRange
	case KindHeight:
		return heightRange
	default:
		panic(fmt.Sprintf("models: unknown kind %q", string(k)))
	}
}

// TagFor returns the tag of the first range containing v, or "" when none does
func (s KindRange) TagFor(v int) string {
	for _, r := range s.Tags {
		if r.Lower <= v && v <= r.Upper {
			return r.Tag
		}
	}
	return ""
}
