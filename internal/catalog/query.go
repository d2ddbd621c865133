// 包 catalog：列表筛选排序、详情查找与附近公园
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"parks-api/internal/geo"
	"parks-api/internal/park"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort：列表排序方式
type Sort string

const (
	SortNone     Sort = "none"
	SortAreaAsc  Sort = "asc"
	SortAreaDesc Sort = "desc"
	SortNameAsc  Sort = "name_asc"
	SortNameDesc Sort = "name_desc"
	SortDistrict Sort = "district_asc"
	SortNearest  Sort = "nearest"
)

// DefaultSort：面积从大到小
const DefaultSort = SortAreaDesc

// ParseSort：空串取默认值，未知取值报错
func ParseSort(s string) (Sort, error) {
	switch v := Sort(strings.TrimSpace(s)); v {
	case "":
		return DefaultSort, nil
	case SortNone, SortAreaAsc, SortAreaDesc, SortNameAsc, SortNameDesc, SortDistrict, SortNearest:
		return v, nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// Query：列表查询条件
// District 为 0 表示不限；Amenities 需全部满足；Origin 仅用于 nearest
type Query struct {
	Search    string
	District  int
	Amenities []string
	Sort      Sort
	Origin    *park.Coordinates
}

// Apply：筛选后稳定排序，返回新切片
// 约束：nearest 无 Origin 时保持原顺序
func Apply(parks []park.Park, q Query) []park.Park {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]park.Park, 0, len(parks))
	for _, p := range parks {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) && !strings.Contains(strings.ToLower(p.Address), term) {
			continue
		}
		if q.District != 0 && p.District != q.District {
			continue
		}
		if !hasAll(p, q.Amenities) {
			continue
		}
		out = append(out, p)
	}
	sortParks(out, q.Sort, q.Origin)
	return out
}

func hasAll(p park.Park, amenities []string) bool {
	for _, a := range amenities {
		if !p.HasAmenity(a) {
			return false
		}
	}
	return true
}

func sortParks(ps []park.Park, by Sort, origin *park.Coordinates) {
	switch by {
	case SortAreaAsc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Area < ps[j].Area })
	case SortAreaDesc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Area > ps[j].Area })
	case SortNameAsc, SortNameDesc:
		c := collate.New(language.German)
		sign := 1
		if by == SortNameDesc {
			sign = -1
		}
		sort.SliceStable(ps, func(i, j int) bool { return sign*c.CompareString(ps[i].Name, ps[j].Name) < 0 })
	case SortDistrict:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].District < ps[j].District })
	case SortNearest:
		if origin == nil {
			return
		}
		ranked := geo.RankByDistance(ps, *origin)
		for i, r := range ranked {
			ps[i] = r.Park
		}
	}
}

// Districts：出现过的区号，升序去重
func Districts(parks []park.Park) []int {
	seen := make(map[int]struct{})
	out := []int{}
	for _, p := range parks {
		if _, ok := seen[p.District]; ok {
			continue
		}
		seen[p.District] = struct{}{}
		out = append(out, p.District)
	}
	sort.Ints(out)
	return out
}

// Amenities：出现过的设施标签，按德语排序规则去重排序
func Amenities(parks []park.Park) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range parks {
		for _, a := range p.Amenities {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}
	collate.New(language.German).SortStrings(out)
	return out
}
