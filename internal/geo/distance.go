// 包 geo：球面距离与按距离排序
package geo

import (
	"sort"

	"parks-api/internal/park"

	"github.com/golang/geo/s2"
)

// EarthRadiusKm：平均地球半径
const EarthRadiusKm = 6371.0

// DistanceKm：两点大圆距离（公里）
func DistanceKm(a, b park.Coordinates) float64 {
	pa := s2.LatLngFromDegrees(a.Lat, a.Lng)
	pb := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return pa.Distance(pb).Radians() * EarthRadiusKm
}

// Ranked：带距离的公园
type Ranked struct {
	Park       park.Park `json:"park"`
	DistanceKm float64   `json:"distanceKm"`
}

// RankByDistance：按到 origin 的距离升序，距离相同保持原顺序
func RankByDistance(parks []park.Park, origin park.Coordinates) []Ranked {
	out := make([]Ranked, 0, len(parks))
	for _, p := range parks {
		out = append(out, Ranked{Park: p, DistanceKm: DistanceKm(origin, p.Coordinates)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out
}

// Nearest：最近的公园；列表为空时 ok=false
func Nearest(parks []park.Park, origin park.Coordinates) (Ranked, bool) {
	if len(parks) == 0 {
		return Ranked{}, false
	}
	best := Ranked{Park: parks[0], DistanceKm: DistanceKm(origin, parks[0].Coordinates)}
	for _, p := range parks[1:] {
		if d := DistanceKm(origin, p.Coordinates); d < best.DistanceKm {
			best = Ranked{Park: p, DistanceKm: d}
		}
	}
	return best, true
}
