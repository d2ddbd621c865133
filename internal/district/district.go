// 包 district：按坐标粗略推断维也纳行政区（1..23）
package district

import (
	"parks-api/internal/park"

	"github.com/paulmach/orb"
)

// Default：无任何区框命中时的回退区号
const Default = 1

// Count：行政区数量
const Count = 23

// 区框按区号顺序排列；Min 为 (lngMin, latMin)，Max 为 (lngMax, latMax)
// 约束：相邻区框存在重叠，先命中者优先，顺序不可调整
var boxes = [Count]orb.Bound{
	{Min: orb.Point{16.36, 48.20}, Max: orb.Point{16.38, 48.22}},
	{Min: orb.Point{16.38, 48.20}, Max: orb.Point{16.43, 48.23}},
	{Min: orb.Point{16.38, 48.18}, Max: orb.Point{16.41, 48.21}},
	{Min: orb.Point{16.36, 48.19}, Max: orb.Point{16.38, 48.20}},
	{Min: orb.Point{16.34, 48.18}, Max: orb.Point{16.36, 48.20}},
	{Min: orb.Point{16.34, 48.19}, Max: orb.Point{16.36, 48.20}},
	{Min: orb.Point{16.33, 48.20}, Max: orb.Point{16.35, 48.21}},
	{Min: orb.Point{16.34, 48.21}, Max: orb.Point{16.36, 48.22}},
	{Min: orb.Point{16.35, 48.22}, Max: orb.Point{16.37, 48.23}},
	{Min: orb.Point{16.36, 48.15}, Max: orb.Point{16.40, 48.18}},
	{Min: orb.Point{16.40, 48.15}, Max: orb.Point{16.48, 48.18}},
	{Min: orb.Point{16.31, 48.16}, Max: orb.Point{16.34, 48.18}},
	{Min: orb.Point{16.25, 48.16}, Max: orb.Point{16.31, 48.19}},
	{Min: orb.Point{16.22, 48.19}, Max: orb.Point{16.30, 48.22}},
	{Min: orb.Point{16.31, 48.19}, Max: orb.Point{16.34, 48.20}},
	{Min: orb.Point{16.29, 48.20}, Max: orb.Point{16.33, 48.22}},
	{Min: orb.Point{16.31, 48.22}, Max: orb.Point{16.34, 48.24}},
	{Min: orb.Point{16.33, 48.22}, Max: orb.Point{16.36, 48.24}},
	{Min: orb.Point{16.34, 48.24}, Max: orb.Point{16.38, 48.28}},
	{Min: orb.Point{16.36, 48.23}, Max: orb.Point{16.39, 48.25}},
	{Min: orb.Point{16.38, 48.25}, Max: orb.Point{16.45, 48.32}},
	{Min: orb.Point{16.42, 48.20}, Max: orb.Point{16.55, 48.25}},
	{Min: orb.Point{16.25, 48.12}, Max: orb.Point{16.35, 48.16}},
}

// strictlyInside：四条边均为严格不等式，边界上的点不属于该区框
// orb.Bound.Contains 含边界，这里不能直接使用
func strictlyInside(b orb.Bound, p orb.Point) bool {
	return p.Lon() > b.Min.Lon() && p.Lon() < b.Max.Lon() &&
		p.Lat() > b.Min.Lat() && p.Lat() < b.Max.Lat()
}

// ResolveExact：返回首个严格包含该点的区号；未命中时 ok=false
func ResolveExact(c park.Coordinates) (int, bool) {
	p := orb.Point{c.Lng, c.Lat}
	for i, b := range boxes {
		if strictlyInside(b, p) {
			return i + 1, true
		}
	}
	return 0, false
}

// Resolve：同 ResolveExact，未命中回退到 Default；结果恒在 1..23
func Resolve(c park.Coordinates) int {
	if d, ok := ResolveExact(c); ok {
		return d
	}
	return Default
}

// Bound：区号对应的近似区框
func Bound(d int) (orb.Bound, bool) {
	if !Valid(d) {
		return orb.Bound{}, false
	}
	return boxes[d-1], true
}

// Valid：区号是否在 1..23
func Valid(d int) bool { return d >= 1 && d <= Count }
