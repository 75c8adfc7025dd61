package models

import (
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Coordinates is a WGS84 point for map markers.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Attraction is a verified Chiapas place attached to a bot response. Only the
// location matcher produces these; coordinates always come from the static
// catalog, never from the model output.
type Attraction struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Coordinates Coordinates `json:"coordinates"`
}

// Message is one transcript entry. Placeholder marks the transient "typing"
// entry that exists only while a submit is in flight.
type Message struct {
	ID          uuid.UUID    `json:"id"`
	Content     string       `json:"content"`
	Sender      Sender       `json:"sender"`
	Timestamp   time.Time    `json:"timestamp"`
	Attractions []Attraction `json:"attractions,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
	Placeholder bool         `json:"-"`
}

// ChatTurn is a prior exchange entry in the shape the completion API expects.
type ChatTurn struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}
