// 包 override：人工维护的公园补充数据，按源 ID 或名称 slug 检索
package override

import (
	"parks-api/internal/district"
	"parks-api/internal/park"
	"parks-api/internal/slug"
)

// 文档注释：单条人工补充数据
// 背景：上游数据集缺失描述、交通、链接等字段，或个别字段需要人工纠正。
// 约束：全部字段可选；零值表示"沿用上游数据"。
type Override struct {
	Name               string
	District           int
	Address            string
	Amenities          []string
	Description        string
	DescriptionLicense string
	PublicTransport    []string
	Accessibility      string
	Tips               []string
	Links              []park.Link
	Coordinates        *park.Coordinates
}

// Store：只读查找表，构造后不再修改，可并发读取
type Store struct {
	m map[string]Override
}

// New：用给定条目构造查找表（条目被复制）
func New(entries map[string]Override) *Store {
	m := make(map[string]Override, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &Store{m: m}
}

// Get：先按原样精确匹配，未命中再对输入做 slug 规范化后重试
func (s *Store) Get(idOrSlug string) (Override, bool) {
	if s == nil {
		return Override{}, false
	}
	if o, ok := s.m[idOrSlug]; ok {
		return o, true
	}
	o, ok := s.m[slug.Slugify(idOrSlug)]
	return o, ok
}

// Len：条目数量
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Keys：全部键（无序）
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	return out
}

// Apply：把补充数据浅合并到记录副本上，存在的字段覆盖原值
// 约束：不修改入参；切片字段整体替换
func Apply(p park.Park, o Override) park.Park {
	out := p.Clone()
	if o.Name != "" {
		out.Name = o.Name
	}
	if district.Valid(o.District) {
		out.District = o.District
	}
	if o.Address != "" {
		out.Address = o.Address
	}
	if len(o.Amenities) > 0 {
		out.Amenities = append([]string(nil), o.Amenities...)
	}
	if o.Description != "" {
		out.Description = o.Description
	}
	if o.DescriptionLicense != "" {
		out.DescriptionLicense = o.DescriptionLicense
	}
	if len(o.PublicTransport) > 0 {
		out.PublicTransport = append([]string(nil), o.PublicTransport...)
	}
	if o.Accessibility != "" {
		out.Accessibility = o.Accessibility
	}
	if len(o.Tips) > 0 {
		out.Tips = append([]string(nil), o.Tips...)
	}
	if len(o.Links) > 0 {
		out.Links = append([]park.Link(nil), o.Links...)
	}
	if o.Coordinates != nil {
		out.Coordinates = *o.Coordinates
	}
	return out
}
