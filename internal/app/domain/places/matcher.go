// Package places maps free text to the fixed catalog of Chiapas
// destinations used for map markers.
package places

import (
	"strings"
	"unicode"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
)

// maxAttractions bounds how many markers one response may carry.
const maxAttractions = 3

const attractionLocation = "Chiapas, México"

// Matcher scans text for catalog triggers. It is immutable after
// construction and safe for concurrent use.
type Matcher struct {
	places       []Place
	automaton    ahocorasick.AhoCorasick
	patternPlace []int
}

func NewMatcher() *Matcher {
	var patterns []string
	var patternPlace []int
	for i, place := range Catalog {
		for _, trigger := range place.Triggers {
			patterns = append(patterns, trigger)
			patternPlace = append(patternPlace, i)
		}
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		MatchOnlyWholeWords: false,
		MatchKind:           ahocorasick.LeftMostLongestMatch,
		DFA:                 true,
	})

	return &Matcher{
		places:       Catalog,
		automaton:    builder.Build(patterns),
		patternPlace: patternPlace,
	}
}

// Match returns the attractions mentioned in text, deduplicated by name in
// catalog order and capped at three. When nothing matches, the default place
// is returned so the result is never empty.
func (m *Matcher) Match(text string) []models.Attraction {
	matched := make(map[int]bool)
	for _, hit := range m.automaton.FindAll(Fold(text)) {
		matched[m.patternPlace[hit.Pattern()]] = true
	}

	var attractions []models.Attraction
	for i, place := range m.places {
		if !matched[i] {
			continue
		}
		attractions = append(attractions, toAttraction(place))
		if len(attractions) == maxAttractions {
			break
		}
	}

	if len(attractions) == 0 {
		for _, place := range m.places {
			if place.Name == DefaultPlaceName {
				attractions = append(attractions, toAttraction(place))
				break
			}
		}
	}

	return attractions
}

func toAttraction(place Place) models.Attraction {
	return models.Attraction{
		Name:        place.Name,
		Description: place.Description,
		Location:    attractionLocation,
		Coordinates: place.Coordinates,
	}
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases text and strips combining marks, so "San Cristóbal" and
// "san cristobal" compare equal against the unaccented trigger lists.
func Fold(text string) string {
	folded, _, err := transform.String(foldTransformer, strings.ToLower(text))
	if err != nil {
		return strings.ToLower(text)
	}
	return folded
}
