package itinerary

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
)

// RenderPDF lays the plan out as an A4 document straight from the structured
// value. The core fonts are cp1252, so text runs through the unicode
// translator to keep the Spanish accents intact.
func RenderPDF(plan models.Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.MultiCell(0, 9, tr(plan.Title), "", "L", false)
	pdf.Ln(4)

	if si := plan.SeasonInfo; si != nil {
		writeHeading(pdf, tr, "Temporada")
		pdf.SetFont("Arial", "", 11)
		for _, line := range []string{si.BestTime, si.CurrentSeason, si.WeatherTips} {
			if line != "" {
				pdf.MultiCell(0, 6, tr("- "+line), "", "L", false)
			}
		}
		pdf.Ln(3)
	}

	for _, day := range plan.Days {
		writeHeading(pdf, tr, fmt.Sprintf("Día %d: %s", day.Day, day.Title))
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(day.Description), "", "L", false)

		if acc := day.Accommodation; acc != nil {
			line := "Alojamiento: " + acc.Name
			if acc.PriceRange != "" {
				line += " (" + acc.PriceRange + ")"
			}
			writeDetail(pdf, tr, line)
		}
		for _, meal := range day.Meals {
			line := meal.Type + ": " + meal.Recommendation
			if meal.Dish != "" {
				line += ", " + meal.Dish
			}
			writeDetail(pdf, tr, line)
		}
		if t := day.Transportation; t != nil {
			line := "Transporte: " + t.Type
			if t.Cost != "" {
				line += " (" + t.Cost + ")"
			}
			writeDetail(pdf, tr, line)
		}
		pdf.Ln(3)
	}

	if len(plan.Recommendations) > 0 {
		writeHeading(pdf, tr, "Recomendaciones")
		pdf.SetFont("Arial", "", 11)
		for _, rec := range plan.Recommendations {
			pdf.MultiCell(0, 6, tr("- "+rec), "", "L", false)
		}
		pdf.Ln(3)
	}

	if len(plan.HiddenGems) > 0 {
		writeHeading(pdf, tr, "Joyas escondidas")
		pdf.SetFont("Arial", "", 11)
		for _, gem := range plan.HiddenGems {
			pdf.MultiCell(0, 6, tr("- "+gem), "", "L", false)
		}
		pdf.Ln(3)
	}

	if est := plan.TotalBudgetEstimate; est != nil {
		writeHeading(pdf, tr, "Presupuesto estimado")
		pdf.SetFont("Arial", "", 11)
		for _, row := range [][2]string{
			{"Alojamiento", est.Accommodation},
			{"Comida", est.Food},
			{"Transporte", est.Transportation},
			{"Actividades", est.Activities},
			{"Total", est.Total},
		} {
			if row[1] != "" {
				pdf.MultiCell(0, 6, tr(fmt.Sprintf("- %s: %s", row[0], row[1])), "", "L", false)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering itinerary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeading(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.MultiCell(0, 7, tr(text), "", "L", false)
	pdf.Ln(1)
}

func writeDetail(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, tr(text), "", "L", false)
}
