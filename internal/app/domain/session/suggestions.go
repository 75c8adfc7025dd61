package session

import "strings"

var defaultSuggestions = []string{
	"¿Qué lugares visitar en Chiapas?",
	"¿Cuáles son las mejores cascadas?",
	"¿Cómo es el clima en San Cristóbal?",
}

var fallbackSuggestions = []string{
	"¿Qué lugares recomiendas visitar en Chiapas?",
	"¿Cómo moverme por Chiapas?",
	"¿Mejor época para visitar Chiapas?",
}

// placeSuggestions is keyed by the place component of the conversation
// context.
var placeSuggestions = map[string][]string{
	"san_cristobal": {
		"¿Dónde comer en San Cristóbal?",
		"¿Cómo es el clima en San Cristóbal?",
		"¿Qué comunidades indígenas visitar cerca?",
	},
	"palenque": {
		"¿Cómo llegar a Palenque desde San Cristóbal?",
		"¿Qué más hay para ver cerca de Palenque?",
		"¿Dónde alojarse en Palenque?",
	},
	"canon_sumidero": {
		"¿Dónde salen las lanchas para el Cañón?",
		"¿Qué más hay para ver en Tuxtla?",
		"¿Cómo es el clima en Tuxtla?",
	},
	"cascadas": {
		"¿Se puede nadar en las cascadas?",
		"¿Cuál es la mejor época para visitar las cascadas?",
		"¿Cómo llegar a las cascadas desde San Cristóbal?",
	},
	"comunidades_indigenas": {
		"¿Puedo tomar fotos en San Juan Chamula?",
		"¿Qué significan sus trajes tradicionales?",
		"¿Qué artesanías puedo comprar ahí?",
	},
}

// suggestionsFor picks the canned follow-up questions for a context. The
// context may carry a topic suffix (palenque_transporte), so the lookup is
// by longest matching place prefix.
func suggestionsFor(context string) []string {
	if context == "" {
		return defaultSuggestions
	}
	for place, suggestions := range placeSuggestions {
		if context == place || strings.HasPrefix(context, place+"_") {
			return suggestions
		}
	}
	return fallbackSuggestions
}
