// 包 stats：绿地面积统计与极值公园
package stats

import (
	"math"
	"sort"

	"parks-api/internal/district"
	"parks-api/internal/park"

	"github.com/shopspring/decimal"
)

const topN = 5

// DistrictStats：单区汇总
type DistrictStats struct {
	District    int     `json:"district"`
	Name        string  `json:"name"`
	TotalArea   int     `json:"totalArea"`
	ParkCount   int     `json:"parkCount"`
	Percentage  float64 `json:"percentage"`
	AvgParkSize float64 `json:"avgParkSize"`
}

// Summary：统计页全部数据；无公园时极值字段为 nil
type Summary struct {
	ParkCount       int             `json:"parkCount"`
	TotalArea       int             `json:"totalArea"`
	AverageArea     float64         `json:"averageArea"`
	Coverage        float64         `json:"coverage"`
	Districts       []DistrictStats `json:"districts"`
	TopByPercentage []DistrictStats `json:"topDistrictsByPercentage"`
	TopByArea       []DistrictStats `json:"topDistrictsByArea"`
	LargestParks    []park.Park     `json:"largestParks"`
	Northernmost    *park.Park      `json:"northernmost"`
	Southernmost    *park.Park      `json:"southernmost"`
	Easternmost     *park.Park      `json:"easternmost"`
	Westernmost     *park.Park      `json:"westernmost"`
	MostCentered    *park.Park      `json:"mostCentered"`
	Smallest        *park.Park      `json:"smallest"`
	Largest         *park.Park      `json:"largest"`
	Median          *park.Park      `json:"median"`
}

// Compute：计算统计
// 约束：并列时取先出现者；中位数在偶数个时取较小的中间值
func Compute(parks []park.Park) Summary {
	s := Summary{
		ParkCount:       len(parks),
		Districts:       []DistrictStats{},
		TopByPercentage: []DistrictStats{},
		TopByArea:       []DistrictStats{},
		LargestParks:    []park.Park{},
	}
	if len(parks) == 0 {
		return s
	}
	for _, p := range parks {
		s.TotalArea += p.Area
	}
	s.AverageArea = float64(s.TotalArea) / float64(len(parks))
	s.Coverage = float64(s.TotalArea) / district.TotalArea() * 100
	s.Districts = perDistrict(parks)

	s.TopByPercentage = append([]DistrictStats(nil), s.Districts...)
	sort.SliceStable(s.TopByPercentage, func(i, j int) bool {
		return s.TopByPercentage[i].Percentage > s.TopByPercentage[j].Percentage
	})
	s.TopByPercentage = head(s.TopByPercentage)
	s.TopByArea = append([]DistrictStats(nil), s.Districts...)
	sort.SliceStable(s.TopByArea, func(i, j int) bool { return s.TopByArea[i].TotalArea > s.TopByArea[j].TotalArea })
	s.TopByArea = head(s.TopByArea)

	byAreaDesc := append([]park.Park(nil), parks...)
	sort.SliceStable(byAreaDesc, func(i, j int) bool { return byAreaDesc[i].Area > byAreaDesc[j].Area })
	if len(byAreaDesc) > topN {
		byAreaDesc = byAreaDesc[:topN]
	}
	s.LargestParks = byAreaDesc

	s.Northernmost = pick(parks, func(a, b park.Park) bool { return a.Coordinates.Lat > b.Coordinates.Lat })
	s.Southernmost = pick(parks, func(a, b park.Park) bool { return a.Coordinates.Lat < b.Coordinates.Lat })
	s.Easternmost = pick(parks, func(a, b park.Park) bool { return a.Coordinates.Lng > b.Coordinates.Lng })
	s.Westernmost = pick(parks, func(a, b park.Park) bool { return a.Coordinates.Lng < b.Coordinates.Lng })
	s.Smallest = pick(parks, func(a, b park.Park) bool { return a.Area < b.Area })
	s.Largest = pick(parks, func(a, b park.Park) bool { return a.Area > b.Area })
	s.MostCentered = mostCentered(parks)

	byAreaAsc := append([]park.Park(nil), parks...)
	sort.SliceStable(byAreaAsc, func(i, j int) bool { return byAreaAsc[i].Area < byAreaAsc[j].Area })
	mid := len(byAreaAsc) / 2
	if len(byAreaAsc)%2 == 0 {
		mid--
	}
	m := byAreaAsc[mid]
	s.Median = &m
	return s
}

func perDistrict(parks []park.Park) []DistrictStats {
	acc := make(map[int]*DistrictStats)
	for _, p := range parks {
		d, ok := acc[p.District]
		if !ok {
			d = &DistrictStats{District: p.District, Name: district.Name(p.District)}
			acc[p.District] = d
		}
		d.TotalArea += p.Area
		d.ParkCount++
	}
	out := make([]DistrictStats, 0, len(acc))
	for _, d := range acc {
		area := district.Area(d.District)
		if area == 0 {
			area = 1
		}
		d.Percentage = float64(d.TotalArea) / area * 100
		d.AvgParkSize = float64(d.TotalArea) / float64(d.ParkCount)
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].District < out[j].District })
	return out
}

func head(ds []DistrictStats) []DistrictStats {
	if len(ds) > topN {
		return ds[:topN]
	}
	return ds
}

// pick：better(a,b) 为真时 a 取代当前值
func pick(parks []park.Park, better func(a, b park.Park) bool) *park.Park {
	best := parks[0]
	for _, p := range parks[1:] {
		if better(p, best) {
			best = p
		}
	}
	return &best
}

// mostCentered：距所有公园坐标均值最近者（经纬度平面欧氏距离）
func mostCentered(parks []park.Park) *park.Park {
	var lat, lng float64
	for _, p := range parks {
		lat += p.Coordinates.Lat
		lng += p.Coordinates.Lng
	}
	lat /= float64(len(parks))
	lng /= float64(len(parks))
	dist := func(p park.Park) float64 { return math.Hypot(p.Coordinates.Lat-lat, p.Coordinates.Lng-lng) }
	return pick(parks, func(a, b park.Park) bool { return dist(a) < dist(b) })
}

// FormatArea：≥1 km² 用 km²，≥1 ha 用 ha，否则 m²
func FormatArea(area float64) string {
	d := decimal.NewFromFloat(area)
	switch {
	case area >= 1e6:
		return d.Div(decimal.NewFromInt(1_000_000)).StringFixed(2) + " km²"
	case area >= 1e4:
		return d.Div(decimal.NewFromInt(10_000)).StringFixed(2) + " ha"
	}
	return d.StringFixed(0) + " m²"
}
