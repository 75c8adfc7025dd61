package itinerary

import (
	"fmt"
	"strings"
)

const plannerSystemPrompt = "Eres un experto en turismo en Chiapas, México, con amplio conocimiento sobre sus destinos, cultura, gastronomía y opciones de viaje."

const plannerPromptTemplate = `Eres un experto en turismo en Chiapas, México. Genera un itinerario personalizado para un viaje con las siguientes características:

- Tipo de experiencia: %s
- Duración: %s días
- Destinos específicos solicitados: %s
- Presupuesto: %s

Por favor, estructura tu respuesta en formato JSON con la siguiente estructura:
{
  "itinerary": {
    "title": "Título del itinerario",
    "seasonInfo": {
      "bestTime": "Mejor época para visitar",
      "currentSeason": "Información sobre la temporada actual",
      "weatherTips": "Consejos considerando el clima actual"
    },
    "days": [
      {
        "day": 1,
        "title": "Título del día 1",
        "description": "Descripción detallada de las actividades del día 1",
        "accommodation": {
          "name": "Nombre del alojamiento",
          "priceRange": "Rango de precios (MXN)",
          "type": "Tipo de alojamiento"
        },
        "meals": [
          {
            "type": "Desayuno/Comida/Cena",
            "recommendation": "Nombre del lugar recomendado",
            "dish": "Platillo típico recomendado",
            "priceRange": "Rango de precios (MXN)"
          }
        ],
        "transportation": {
          "type": "Tipo de transporte",
          "duration": "Duración aproximada",
          "cost": "Costo aproximado (MXN)"
        }
      }
    ],
    "recommendations": [
      "Recomendación 1",
      "Recomendación 2"
    ],
    "hiddenGems": [
      "Lugar poco conocido 1 y por qué visitarlo",
      "Lugar poco conocido 2 y por qué visitarlo"
    ],
    "totalBudgetEstimate": {
      "accommodation": "Estimado total en alojamiento (MXN)",
      "food": "Estimado total en comida (MXN)",
      "transportation": "Estimado total en transporte (MXN)",
      "activities": "Estimado total en actividades (MXN)",
      "total": "Presupuesto total estimado (MXN)"
    }
  }
}

Incluye información real y precisa sobre los destinos de Chiapas, incorporando detalles sobre:
- Duración recomendada para cada lugar (horas o días)
- Costos aproximados de transporte y hospedaje en MXN
- Lugares menos conocidos pero valiosos para visitar
- Opciones de gastronomía local con precios orientativos
- Mejor época para visitar cada destino
- Consideraciones de clima y temporada para cada actividad
- Si es temporada alta o baja, y cómo afecta a precios y experiencia
- Si llueve o hay mal clima, incluir alternativas de actividades bajo techo

El itinerario debe ser realista en términos de tiempos de desplazamiento y actividades posibles.`

func plannerPrompt(params GenerateParams) string {
	destinations := strings.TrimSpace(params.Destinations)
	if destinations == "" {
		destinations = "No especificados, sugiere los mejores"
	}
	return fmt.Sprintf(plannerPromptTemplate, params.ExperienceType, params.Duration, destinations, params.Budget)
}
