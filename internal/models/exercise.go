package models

import "time"

// Exercise is a catalog entry describing a movement. Catalog rows are
// read-only to the session engine; only custom exercises are ever created
// at runtime.
type Exercise struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	PrimaryMuscle    string    `json:"primaryMuscle"`
	SecondaryMuscles []string  `json:"secondaryMuscles,omitempty"`
	Equipment        string    `json:"equipment"`
	Difficulty       string    `json:"difficulty"`
	Category         string    `json:"category"`
	Instructions     []string  `json:"instructions,omitempty"`
	Tips             []string  `json:"tips,omitempty"`
	IsCustom         bool      `json:"isCustom"`
	CreatedAt        time.Time `json:"createdAt"`
}
