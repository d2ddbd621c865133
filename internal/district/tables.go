package district

var names = [Count]string{
	"Innere Stadt",
	"Leopoldstadt",
	"Landstraße",
	"Wieden",
	"Margareten",
	"Mariahilf",
	"Neubau",
	"Josefstadt",
	"Alsergrund",
	"Favoriten",
	"Simmering",
	"Meidling",
	"Hietzing",
	"Penzing",
	"Rudolfsheim-Fünfhaus",
	"Ottakring",
	"Hernals",
	"Währing",
	"Döbling",
	"Brigittenau",
	"Floridsdorf",
	"Donaustadt",
	"Liesing",
}

// 区面积（平方米），用于绿地覆盖率统计
var areas = [Count]float64{
	3.0e6, 19.2e6, 7.4e6, 1.8e6, 2.2e6, 1.5e6, 2.1e6, 1.1e6, 1.6e6, 31.8e6, 23.7e6, 8.2e6,
	37.7e6, 33.8e6, 3.8e6, 7.3e6, 11.3e6, 6.3e6, 24.9e6, 5.6e6, 44.5e6, 102.2e6, 32.0e6,
}

// Name：区名；非法区号返回空串
func Name(d int) string {
	if !Valid(d) {
		return ""
	}
	return names[d-1]
}

// Area：区面积（平方米）；非法区号返回 0
func Area(d int) float64 {
	if !Valid(d) {
		return 0
	}
	return areas[d-1]
}

// TotalArea：全市面积
func TotalArea() float64 {
	var sum float64
	for _, a := range areas {
		sum += a
	}
	return sum
}

// Info：对外列出的区信息
type Info struct {
	Number int     `json:"number"`
	Name   string  `json:"name"`
	Area   float64 `json:"area"`
}

// All：按区号顺序返回全部区信息
func All() []Info {
	out := make([]Info, 0, Count)
	for i := 0; i < Count; i++ {
		out = append(out, Info{Number: i + 1, Name: names[i], Area: areas[i]})
	}
	return out
}
