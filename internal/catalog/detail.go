package catalog

import (
	"parks-api/internal/geo"
	"parks-api/internal/override"
	"parks-api/internal/park"
	"parks-api/internal/slug"
)

// DefaultNearby：详情页附近公园数量
const DefaultNearby = 5

// Find：先按 id，再按名称 slug 查找
func Find(parks []park.Park, idOrSlug string) (park.Park, bool) {
	for _, p := range parks {
		if p.ID == idOrSlug {
			return p, true
		}
	}
	for _, p := range parks {
		if slug.Slugify(p.Name) == idOrSlug {
			return p, true
		}
	}
	return park.Park{}, false
}

// Merge：详情展示前再叠加一次人工覆盖，返回副本
// 约束：转换阶段已应用过同一覆盖，重复应用幂等
func Merge(p park.Park, store *override.Store) park.Park {
	if o, ok := store.Get(p.ID); ok {
		return override.Apply(p, o)
	}
	if o, ok := store.Get(slug.Slugify(p.Name)); ok {
		return override.Apply(p, o)
	}
	return p.Clone()
}

// Nearby：除自身外距离最近的 n 个公园（n<=0 取默认值），各自叠加覆盖
func Nearby(parks []park.Park, current park.Park, n int, store *override.Store) []geo.Ranked {
	if n <= 0 {
		n = DefaultNearby
	}
	others := make([]park.Park, 0, len(parks))
	for _, p := range parks {
		if p.ID == current.ID {
			continue
		}
		others = append(others, Merge(p, store))
	}
	ranked := geo.RankByDistance(others, current.Coordinates)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
