package models

import (
	"encoding/json"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// Timestamp decodes the backend's ISO date strings leniently: null, "" and
// values in none of the known layouts decode to the zero time instead of
// failing the whole payload.
type Timestamp time.Time

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*t = Timestamp{}
	if raw == nil {
		return nil
	}

	value := strings.TrimSpace(*raw)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			*t = Timestamp(parsed)
			return nil
		}
	}

	return nil
}

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}
