package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// legacyTimestampLayout matches naive ISO-8601 timestamps without an offset
const legacyTimestampLayout = "2006-01-02T15:04:05.999999999"

// ValueKey identifies a value cache entry
type ValueKey struct {
	Kind    Kind
	Subject string
}

// String renders the key as "{kind}_{subject}"
func (k ValueKey) String() string {
	return fmt.Sprintf("%s_%s", k.Kind, k.Subject)
}

// ParseValueKey parses a "{kind}_{subject}" key
func ParseValueKey(s string) (ValueKey, error) {
	kindPart, subject, ok := strings.Cut(s, "_")
	if !ok || subject == "" {
		return ValueKey{}, fmt.Errorf("malformed value key %q", s)
	}

	kind, err := ParseKind(kindPart)
	if err != nil {
		return ValueKey{}, err
	}

	return ValueKey{Kind: kind, Subject: subject}, nil
}

// ValueEntry is a generated value with its tag and creation time
type ValueEntry struct {
	Value     int
	Tag       string
	CreatedAt time.Time
}

// IsFresh reports whether the entry is still within ttl at now
func (e ValueEntry) IsFresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.CreatedAt) <= ttl
}

// MarshalJSON encodes the entry as [timestamp, value, tag]
func (e ValueEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
		e.Value,
		e.Tag,
	})
}

// UnmarshalJSON decodes the [timestamp, value, tag] tuple
func (e *ValueEntry) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 3 {
		return fmt.Errorf("value entry must have 3 elements, got %d", len(tuple))
	}

	var ts string
	if err := json.Unmarshal(tuple[0], &ts); err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}
	createdAt, err := parseTimestamp(ts)
	if err != nil {
		return err
	}

	var value int
	if err := json.Unmarshal(tuple[1], &value); err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}

	var tag string
	if err := json.Unmarshal(tuple[2], &tag); err != nil {
		return fmt.Errorf("invalid tag: %w", err)
	}

	e.CreatedAt = createdAt
	e.Value = value
	e.Tag = tag
	return nil
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(legacyTimestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// DayLayout is the layout of QuotaCounter dates
const DayLayout = "2006-01-02"

// QuotaCounter is the persisted daily counter of quota-limited calls
type QuotaCounter struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Day returns the UTC calendar day of t in DayLayout
func Day(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// ForDay returns the counter for day, resetting it when the stored date differs
func (c QuotaCounter) ForDay(day string) QuotaCounter {
	if c.Date != day || c.Count < 0 {
		return QuotaCounter{Date: day}
	}
	return c
}
