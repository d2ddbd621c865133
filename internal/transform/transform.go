package transform

import (
	"fmt"
	"strings"

	"parks-api/internal/district"
	"parks-api/internal/logger"
	"parks-api/internal/override"
	"parks-api/internal/park"
	"parks-api/internal/slug"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// 默认文案
const (
	DefaultName            = "Grünfläche"
	DefaultCategory        = "Park"
	DefaultDescription     = "Öffentliche Grünfläche in Wien"
	DefaultOpeningHours    = "Täglich geöffnet"
	AllDayOpeningHours     = "Täglich 24h geöffnet"
	DefaultAccessibility   = "Barrierefreiheit nicht spezifiziert"
	DefaultPublicTransport = "Öffentliche Verkehrsmittel in der Nähe verfügbar"
)

// 设施标签
const (
	AmenityGreen      = "Grünfläche"
	AmenityPlayground = "Spielplatz"
	AmenityWater      = "Wasserspiele"
	AmenityDogs       = "Hundebereich"
	AmenitySeating    = "Sitzgelegenheiten"
)

// Transformer：单条要素到公园记录的纯函数式转换，依赖只读的补充数据表
type Transformer struct {
	overrides *override.Store
}

// New：overrides 可为 nil，此时不做人工补充
func New(overrides *override.Store) *Transformer {
	return &Transformer{overrides: overrides}
}

// Transform：转换单条要素
// 顺序：坐标、标识、名称、补充数据、区号、面积、地址、设施、其余字段
func (t *Transformer) Transform(f *geojson.Feature) park.Park {
	raw := ParseRaw(f)
	var geom orb.Geometry
	if f != nil {
		geom = f.Geometry
	}
	coords := Centroid(geom)

	name := raw.Name
	if name == "" {
		name = DefaultName
	}
	id := raw.ID
	if id == "" {
		id = DeriveID(name, coords)
	}

	o, ok := t.overrides.Get(id)
	if !ok {
		o, _ = t.overrides.Get(slug.Slugify(name))
	}

	d := raw.District
	if district.Valid(o.District) {
		d = o.District
	}
	if d == 0 {
		d = district.Resolve(coords)
	}

	area := ParseArea(raw.AreaText)
	if raw.HasAreaValue {
		area = AreaFromNumber(raw.AreaValue)
	}

	address := o.Address
	if address == "" {
		address = fmt.Sprintf("%s, %d. Bezirk, Wien", name, d)
	}

	category := raw.Category
	if category == "" {
		category = DefaultCategory
	}

	p := park.Park{
		ID:                 id,
		Name:               name,
		Address:            address,
		District:           d,
		Area:               area,
		Coordinates:        coords,
		Amenities:          amenities(raw, name, o),
		Category:           category,
		Description:        firstNonEmpty(o.Description, category, DefaultDescription),
		DescriptionLicense: o.DescriptionLicense,
		OpeningHours:       FormatOpeningHours(raw.OpeningHours),
		Accessibility:      firstNonEmpty(o.Accessibility, DefaultAccessibility),
		PublicTransport:    []string{DefaultPublicTransport},
		Tips:               []string{},
		Website:            raw.Website,
		Phone:              raw.Phone,
	}
	if o.Name != "" {
		p.Name = o.Name
	}
	if len(o.PublicTransport) > 0 {
		p.PublicTransport = append([]string(nil), o.PublicTransport...)
	}
	if len(o.Tips) > 0 {
		p.Tips = append([]string(nil), o.Tips...)
	}
	if len(o.Links) > 0 {
		p.Links = append([]park.Link(nil), o.Links...)
	}
	return p
}

// TransformAll：批量转换；不满足不变量的记录记录日志后丢弃
func (t *Transformer) TransformAll(fs []*geojson.Feature) []park.Park {
	out := make([]park.Park, 0, len(fs))
	for i, f := range fs {
		if f == nil {
			continue
		}
		p := t.Transform(f)
		if err := park.Validate(p); err != nil {
			logger.L().Warn("transform_invalid_park", "index", i, "err", err)
			continue
		}
		out = append(out, p)
	}
	return out
}

// Centroid：点直接使用；多边形取第一环全部顶点（含闭合点）的算术平均；多面取第一个多边形
// 其余几何或空环返回 {0,0}
func Centroid(g orb.Geometry) park.Coordinates {
	switch v := g.(type) {
	case orb.Point:
		return park.Coordinates{Lat: v.Lat(), Lng: v.Lon()}
	case orb.Polygon:
		if len(v) == 0 {
			return park.Coordinates{}
		}
		return ringMean(v[0])
	case orb.MultiPolygon:
		if len(v) == 0 || len(v[0]) == 0 {
			return park.Coordinates{}
		}
		return ringMean(v[0][0])
	}
	return park.Coordinates{}
}

func ringMean(r orb.Ring) park.Coordinates {
	if len(r) == 0 {
		return park.Coordinates{}
	}
	var lat, lng float64
	for _, p := range r {
		lng += p.Lon()
		lat += p.Lat()
	}
	n := float64(len(r))
	return park.Coordinates{Lat: lat / n, Lng: lng / n}
}

// FormatOpeningHours：空值表示全天开放的默认文案，"0:00-24:00" 统一为 24h 文案
func FormatOpeningHours(h string) string {
	switch strings.TrimSpace(h) {
	case "":
		return DefaultOpeningHours
	case "0:00-24:00":
		return AllDayOpeningHours
	}
	return h
}

func amenities(raw Raw, name string, o override.Override) []string {
	if len(o.Amenities) > 0 {
		return append([]string(nil), o.Amenities...)
	}
	var out []string
	add := func(a string) {
		for _, x := range out {
			if x == a {
				return
			}
		}
		out = append(out, a)
	}
	if raw.Playground {
		add(AmenityPlayground)
	}
	if raw.Water {
		add(AmenityWater)
	}
	if raw.Dogs {
		add(AmenityDogs)
	}
	add(AmenityGreen)
	lower := strings.ToLower(name)
	if strings.Contains(lower, "spielplatz") {
		add(AmenityPlayground)
	}
	if strings.Contains(lower, "park") {
		add(AmenitySeating)
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
