package places

import "github.com/descubrechiapas/chiapas-guide/internal/app/models"

// Place is one verified Chiapas destination. Triggers are matched against
// folded (lowercase, accent-stripped) text, so they are written unaccented.
type Place struct {
	Name        string
	Description string
	Coordinates models.Coordinates
	Triggers    []string
}

// DefaultPlaceName is attached when a response mentions no known place, so
// the envelope is never attraction-less.
const DefaultPlaceName = "San Cristóbal de las Casas"

// Catalog is the fixed list of destinations the assistant may pin on the
// map. Order matters: matches are reported in catalog order.
var Catalog = []Place{
	{
		Name:        "San Cristóbal de las Casas",
		Description: "Ciudad colonial en los altos de Chiapas",
		Coordinates: models.Coordinates{Lat: 16.737, Lng: -92.6376},
		Triggers:    []string{"san cristobal", "sancris", "altos de chiapas"},
	},
	{
		Name:        "Palenque",
		Description: "Zona arqueológica maya en la selva",
		Coordinates: models.Coordinates{Lat: 17.4838, Lng: -92.0436},
		Triggers:    []string{"palenque", "ruinas", "zona arqueologica", "templo de las inscripciones"},
	},
	{
		Name:        "Tuxtla Gutiérrez",
		Description: "Capital de Chiapas",
		Coordinates: models.Coordinates{Lat: 16.7521, Lng: -93.1152},
		Triggers:    []string{"tuxtla", "capital"},
	},
	{
		Name:        "Cañón del Sumidero",
		Description: "Impresionante cañón con paredes de hasta 1000 metros",
		Coordinates: models.Coordinates{Lat: 16.8513, Lng: -93.0777},
		Triggers:    []string{"sumidero", "canon", "mirador", "lancha", "paseo en lancha"},
	},
	{
		Name:        "Cascadas de Agua Azul",
		Description: "Cascadas turquesas cerca de Palenque",
		Coordinates: models.Coordinates{Lat: 17.2514, Lng: -92.1133},
		Triggers:    []string{"agua azul", "cascada", "cataratas", "cascadas", "aguas turquesas"},
	},
	{
		Name:        "Chiapa de Corzo",
		Description: "Pueblo Mágico junto al Grijalva",
		Coordinates: models.Coordinates{Lat: 16.7068, Lng: -93.015},
		Triggers:    []string{"chiapa de corzo", "pueblo magico", "fiesta grande", "grijalva", "embarcadero"},
	},
	{
		Name:        "San Juan Chamula",
		Description: "Comunidad indígena con tradiciones únicas",
		Coordinates: models.Coordinates{Lat: 16.79, Lng: -92.6882},
		Triggers:    []string{"chamula", "tzotzil", "comunidad indigena", "iglesia de chamula", "rituales"},
	},
	{
		Name:        "Lagos de Montebello",
		Description: "Lagos multicolores en la frontera con Guatemala",
		Coordinates: models.Coordinates{Lat: 16.1119, Lng: -91.6767},
		Triggers:    []string{"montebello", "lagos", "lagos de colores", "lagunas", "parque nacional"},
	},
	{
		Name:        "Comitán de Domínguez",
		Description: "Ciudad colonial cerca de la frontera",
		Coordinates: models.Coordinates{Lat: 16.2548, Lng: -92.1336},
		Triggers:    []string{"comitan", "belisario"},
	},
	{
		Name:        "Selva Lacandona",
		Description: "Una de las selvas tropicales más importantes de México",
		Coordinates: models.Coordinates{Lat: 16.8821, Lng: -91.1196},
		Triggers:    []string{"lacandona", "selva", "comunidad lacandona", "montes azules", "reserva de la biosfera"},
	},
	{
		Name:        "Cascadas El Chiflón",
		Description: "Impresionantes cascadas con aguas color turquesa",
		Coordinates: models.Coordinates{Lat: 16.0049, Lng: -92.2633},
		Triggers:    []string{"chiflon", "velo de novia"},
	},
	{
		Name:        "Zinacantán",
		Description: "Pueblo indígena famoso por sus textiles",
		Coordinates: models.Coordinates{Lat: 16.7676, Lng: -92.7085},
		Triggers:    []string{"zinacantan", "textiles", "tzotziles", "telar"},
	},
	{
		Name:        "Bonampak",
		Description: "Sitio arqueológico con murales mayas",
		Coordinates: models.Coordinates{Lat: 16.7042, Lng: -91.0648},
		Triggers:    []string{"bonampak", "murales", "murales mayas", "sitio arqueologico"},
	},
	{
		Name:        "Yaxchilán",
		Description: "Antigua ciudad maya en la selva junto al río Usumacinta",
		Coordinates: models.Coordinates{Lat: 16.8967, Lng: -90.9639},
		Triggers:    []string{"yaxchilan", "usumacinta", "frontera guatemala"},
	},
	{
		Name:        "Tapachula",
		Description: "Ciudad fronteriza con Guatemala y puerta al Soconusco",
		Coordinates: models.Coordinates{Lat: 14.9108, Lng: -92.2571},
		Triggers:    []string{"tapachula", "soconusco", "frontera sur", "plantaciones"},
	},
}
