package session

import "strings"

// Topic and place keyword tables for conversation-context tracking. Both
// lists are ordered; the first hit wins.
var contextTopics = []struct {
	name     string
	keywords []string
}{
	{"transporte", []string{"autobús", "autobus", "colectivo", "taxi", "carro", "combi", "avión", "avion", "llegar", "viajar", "boleto", "terminal"}},
	{"hospedaje", []string{"hotel", "hostal", "airbnb", "alojamiento", "hospedaje", "habitación", "habitacion", "dormir", "albergar", "posada"}},
	{"gastronomía", []string{"comida", "restaurante", "plato", "típico", "típica", "tipico", "tipica", "sabor", "comer", "probar", "desayuno", "almuerzo", "cena"}},
	{"clima", []string{"lluvia", "temperatura", "calor", "frío", "frio", "clima", "temporada", "época", "humedad", "soleado", "nublado"}},
}

var contextPlaces = []struct {
	name     string
	keywords []string
}{
	{"san_cristobal", []string{"san cristóbal", "san cristobal", "sancris"}},
	{"palenque", []string{"palenque", "ruinas"}},
	{"canon_sumidero", []string{"sumidero", "cañón", "canon"}},
	{"cascadas", []string{"cascada", "cascadas", "agua azul", "el chiflón", "chiflon"}},
	{"comunidades_indigenas", []string{"chamula", "tzotzil", "indígen", "indigena", "zinacant", "zinacantan"}},
	{"montebello", []string{"montebello", "lagos"}},
	{"selva_lacandona", []string{"selva", "lacandona"}},
	{"tuxtla", []string{"tuxtla", "capital"}},
	{"comitan", []string{"comitán", "comitan"}},
	{"chiapa_corzo", []string{"chiapa de corzo"}},
}

// deriveContext updates the conversation context after a completed turn.
// place_topic when both are detected, the one that was detected otherwise,
// and the previous context when neither shows up, so a short follow-up like
// "¿y cuánto cuesta?" keeps the thread.
func deriveContext(question, response, previous string) string {
	text := strings.ToLower(question) + " " + strings.ToLower(response)

	topic := ""
	for _, t := range contextTopics {
		if containsAny(text, t.keywords) {
			topic = t.name
			break
		}
	}

	place := ""
	for _, p := range contextPlaces {
		if containsAny(text, p.keywords) {
			place = p.name
			break
		}
	}

	switch {
	case place != "" && topic != "":
		return place + "_" + topic
	case place != "":
		return place
	case topic != "":
		return topic
	default:
		return previous
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
