package dataset

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type syntheticPark struct {
	id        float64
	name      string
	district  float64
	address   string
	area      float64
	category  string
	equipment string
	hours     string
	at        orb.Point
}

var syntheticParks = []syntheticPark{
	{1, "Stadtpark", 1, "Parkring, 1010 Wien", 65000, "Stadtpark", "Kursalon, Denkmäler, Spielplatz", "24h", orb.Point{16.3738, 48.2082}},
	{2, "Burggarten", 1, "Burgring, 1010 Wien", 38000, "Schlosspark", "Schmetterlingshaus, Palmenhaus", "6:00-22:00", orb.Point{16.3644, 48.2014}},
	{3, "Volksgarten", 1, "Burgring, 1010 Wien", 40000, "Volksgarten", "Rosengarten, Theseus-Tempel", "6:00-22:00", orb.Point{16.3586, 48.2066}},
	{4, "Augarten", 2, "Obere Augartenstraße, 1020 Wien", 520000, "Barockpark", "Porzellanmanufaktur, Flaktürme", "6:30-22:00", orb.Point{16.3947, 48.2318}},
	{5, "Schönbrunner Schlosspark", 13, "Schönbrunner Schloßstraße, 1130 Wien", 1600000, "Schlosspark", "Tiergarten, Gloriette, Irrgarten", "6:30-17:30", orb.Point{16.3019, 48.1858}},
}

// Synthetic：远程数据不可用时的内置五个公园
// 约束：每次调用返回新的要素，调用方可自由修改
func Synthetic() []*geojson.Feature {
	out := make([]*geojson.Feature, 0, len(syntheticParks))
	for _, p := range syntheticParks {
		f := geojson.NewFeature(p.at)
		f.Properties = geojson.Properties{
			"OBJECTID":        p.id,
			"PARKNAME":        p.name,
			"BEZIRK":          p.district,
			"ADRESSE":         p.address,
			"FLAECHE_M2":      p.area,
			"KATEGORIE":       p.category,
			"AUSSTATTUNG":     p.equipment,
			"OEFFNUNGSZEITEN": p.hours,
			"WEBLINK":         "",
		}
		out = append(out, f)
	}
	return out
}
