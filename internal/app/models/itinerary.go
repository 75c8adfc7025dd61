package models

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary is the structured multi-day plan returned by the planning
// endpoint. It is produced wholesale by one completion call and treated as an
// immutable value afterwards; every optional field may be absent.
type Itinerary struct {
	Title               string          `json:"title"`
	SeasonInfo          *SeasonInfo     `json:"seasonInfo,omitempty"`
	Days                []Day           `json:"days"`
	Recommendations     []string        `json:"recommendations"`
	HiddenGems          []string        `json:"hiddenGems,omitempty"`
	TotalBudgetEstimate *BudgetEstimate `json:"totalBudgetEstimate,omitempty"`
}

type SeasonInfo struct {
	BestTime      string `json:"bestTime,omitempty"`
	CurrentSeason string `json:"currentSeason,omitempty"`
	WeatherTips   string `json:"weatherTips,omitempty"`
}

type Day struct {
	Day            int             `json:"day"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Accommodation  *Accommodation  `json:"accommodation,omitempty"`
	Meals          []Meal          `json:"meals,omitempty"`
	Transportation *Transportation `json:"transportation,omitempty"`
}

type Accommodation struct {
	Name       string `json:"name"`
	PriceRange string `json:"priceRange,omitempty"`
	Type       string `json:"type,omitempty"`
}

type Meal struct {
	Type           string `json:"type"`
	Recommendation string `json:"recommendation"`
	Dish           string `json:"dish,omitempty"`
	PriceRange     string `json:"priceRange,omitempty"`
}

type Transportation struct {
	Type     string `json:"type"`
	Duration string `json:"duration,omitempty"`
	Cost     string `json:"cost,omitempty"`
}

type BudgetEstimate struct {
	Accommodation  string `json:"accommodation,omitempty"`
	Food           string `json:"food,omitempty"`
	Transportation string `json:"transportation,omitempty"`
	Activities     string `json:"activities,omitempty"`
	Total          string `json:"total,omitempty"`
}

// SavedItinerary is the persisted row wrapping a generated plan together with
// the request parameters that produced it.
type SavedItinerary struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Content        Itinerary `json:"content"`
	ExperienceType string    `json:"experienceType"`
	Duration       string    `json:"duration"`
	Budget         string    `json:"budget"`
	Destinations   string    `json:"destinations,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Subscription is one newsletter signup.
type Subscription struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Active    bool      `json:"active"`
}
