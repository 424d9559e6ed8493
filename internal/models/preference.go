package models

import (
	"strings"
	"time"
)

// Preference is a persisted key-value UI preference.
type Preference struct {
	Key       string    `json:"key" yaml:"key"`
	Value     string    `json:"value" yaml:"value"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Validate checks if the preference is valid.
func (p *Preference) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(p.Key) == "" {
		validation.AddMessage("key", "preference key is required")
	}
	return validation.Err()
}
