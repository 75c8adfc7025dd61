package itinerary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
)

func samplePlan() models.Itinerary {
	return models.Itinerary{
		Title: "Aventura en Chiapas: 3 días",
		SeasonInfo: &models.SeasonInfo{
			BestTime:    "Noviembre a abril",
			WeatherTips: "Lleva impermeable para la selva",
		},
		Days: []models.Day{
			{
				Day:         1,
				Title:       "San Cristóbal de las Casas",
				Description: "Recorrido por el centro histórico y los mercados.",
				Accommodation: &models.Accommodation{
					Name:       "Hotel Posada del Carmen",
					PriceRange: "800-1200 MXN",
					Type:       "Hotel boutique",
				},
				Meals: []models.Meal{
					{Type: "Desayuno", Recommendation: "Mercado de dulces", Dish: "Tamales chiapanecos", PriceRange: "50-80 MXN"},
				},
				Transportation: &models.Transportation{Type: "A pie", Duration: "Todo el día"},
			},
			{
				Day:         2,
				Title:       "Cañón del Sumidero",
				Description: "Paseo en lancha desde Chiapa de Corzo.",
			},
			{
				Day:         3,
				Title:       "Cascadas de Agua Azul",
				Description: "Día completo entre cascadas y pozas.",
			},
		},
		Recommendations: []string{"Lleva efectivo", "Contrata guías locales"},
		HiddenGems:      []string{"El Aguacero y su escalinata al cañón"},
		TotalBudgetEstimate: &models.BudgetEstimate{
			Accommodation: "2400 MXN",
			Total:         "5500 MXN",
		},
	}
}

func TestRenderMarkdownIsDeterministic(t *testing.T) {
	plan := samplePlan()
	first := RenderMarkdown(plan)
	second := RenderMarkdown(plan)
	assert.Equal(t, first, second)
}

func TestRenderMarkdownLayout(t *testing.T) {
	md := RenderMarkdown(samplePlan())

	assert.True(t, strings.HasPrefix(md, "# Aventura en Chiapas: 3 días\n"))
	assert.Contains(t, md, "## Día 1: San Cristóbal de las Casas")
	assert.Contains(t, md, "## Día 3: Cascadas de Agua Azul")
	assert.Contains(t, md, "**Alojamiento:** Hotel Posada del Carmen (Hotel boutique)")
	assert.Contains(t, md, "- Desayuno: Mercado de dulces, Tamales chiapanecos (50-80 MXN)")
	assert.Contains(t, md, "## Joyas escondidas")
	assert.Contains(t, md, "**Total:** 5500 MXN")
}

func TestRenderMarkdownOmitsAbsentSections(t *testing.T) {
	md := RenderMarkdown(models.Itinerary{
		Title: "Escapada corta",
		Days:  []models.Day{{Day: 1, Title: "Tuxtla", Description: "Un día en la capital."}},
	})

	assert.NotContains(t, md, "## Temporada")
	assert.NotContains(t, md, "## Joyas escondidas")
	assert.NotContains(t, md, "## Presupuesto estimado")
	assert.NotContains(t, md, "**Alojamiento:**")
}

func TestRenderPDFProducesDocument(t *testing.T) {
	pdf, err := RenderPDF(samplePlan())
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}

func TestRenderPDFMinimalPlan(t *testing.T) {
	pdf, err := RenderPDF(models.Itinerary{
		Title: "Escapada corta",
		Days:  []models.Day{{Day: 1, Title: "Tuxtla", Description: "Un día en la capital."}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}
