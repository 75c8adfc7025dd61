package itinerary

import (
	"fmt"
	"strings"

	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
)

// RenderMarkdown turns a plan into a markdown document. The output is a pure
// function of the value, so two renders of the same plan are byte-identical.
func RenderMarkdown(plan models.Itinerary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", plan.Title)

	if si := plan.SeasonInfo; si != nil {
		b.WriteString("## Temporada\n\n")
		if si.BestTime != "" {
			fmt.Fprintf(&b, "- **Mejor época:** %s\n", si.BestTime)
		}
		if si.CurrentSeason != "" {
			fmt.Fprintf(&b, "- **Temporada actual:** %s\n", si.CurrentSeason)
		}
		if si.WeatherTips != "" {
			fmt.Fprintf(&b, "- **Consejos de clima:** %s\n", si.WeatherTips)
		}
		b.WriteString("\n")
	}

	for _, day := range plan.Days {
		fmt.Fprintf(&b, "## Día %d: %s\n\n%s\n\n", day.Day, day.Title, day.Description)

		if acc := day.Accommodation; acc != nil {
			fmt.Fprintf(&b, "**Alojamiento:** %s", acc.Name)
			if acc.Type != "" {
				fmt.Fprintf(&b, " (%s)", acc.Type)
			}
			if acc.PriceRange != "" {
				fmt.Fprintf(&b, " - %s", acc.PriceRange)
			}
			b.WriteString("\n\n")
		}

		if len(day.Meals) > 0 {
			b.WriteString("**Comidas:**\n\n")
			for _, meal := range day.Meals {
				fmt.Fprintf(&b, "- %s: %s", meal.Type, meal.Recommendation)
				if meal.Dish != "" {
					fmt.Fprintf(&b, ", %s", meal.Dish)
				}
				if meal.PriceRange != "" {
					fmt.Fprintf(&b, " (%s)", meal.PriceRange)
				}
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}

		if tr := day.Transportation; tr != nil {
			fmt.Fprintf(&b, "**Transporte:** %s", tr.Type)
			if tr.Duration != "" {
				fmt.Fprintf(&b, ", %s", tr.Duration)
			}
			if tr.Cost != "" {
				fmt.Fprintf(&b, " (%s)", tr.Cost)
			}
			b.WriteString("\n\n")
		}
	}

	if len(plan.Recommendations) > 0 {
		b.WriteString("## Recomendaciones\n\n")
		for _, rec := range plan.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	if len(plan.HiddenGems) > 0 {
		b.WriteString("## Joyas escondidas\n\n")
		for _, gem := range plan.HiddenGems {
			fmt.Fprintf(&b, "- %s\n", gem)
		}
		b.WriteString("\n")
	}

	if est := plan.TotalBudgetEstimate; est != nil {
		b.WriteString("## Presupuesto estimado\n\n")
		for _, row := range [][2]string{
			{"Alojamiento", est.Accommodation},
			{"Comida", est.Food},
			{"Transporte", est.Transportation},
			{"Actividades", est.Activities},
			{"Total", est.Total},
		} {
			if row[1] != "" {
				fmt.Fprintf(&b, "- **%s:** %s\n", row[0], row[1])
			}
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
