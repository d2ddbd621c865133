// 包 park：归一化公园记录的数据模型，列表、详情、地图、统计均消费同一结构
package park

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// LinkType：外部链接类别
type LinkType string

const (
	LinkOfficial LinkType = "official"
	LinkWiki     LinkType = "wiki"
	LinkInfo     LinkType = "info"
	LinkEvent    LinkType = "event"
)

// Link：详情页附带的外部链接
type Link struct {
	Title string   `json:"title"`
	URL   string   `json:"url" validate:"required"`
	Type  LinkType `json:"type" validate:"omitempty,oneof=official wiki info event"`
}

// Coordinates：WGS84 点，纬度在前
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero：是否为未知位置（{0,0}）
func (c Coordinates) IsZero() bool { return c.Lat == 0 && c.Lng == 0 }

// 文档注释：归一化公园记录
// 约束：创建后不可修改；合并覆盖数据时必须产生副本（见 Clone）。
// District 恒在 1..23；Area 为非负整数平方米；Amenities 至少包含一个元素。
type Park struct {
	ID                 string      `json:"id" validate:"required"`
	Name               string      `json:"name" validate:"required"`
	Address            string      `json:"address"`
	District           int         `json:"district" validate:"min=1,max=23"`
	Area               int         `json:"area" validate:"gte=0"`
	Coordinates        Coordinates `json:"coordinates"`
	Amenities          []string    `json:"amenities" validate:"min=1"`
	Category           string      `json:"category"`
	Description        string      `json:"description,omitempty"`
	DescriptionLicense string      `json:"descriptionLicense,omitempty"`
	OpeningHours       string      `json:"openingHours,omitempty"`
	Accessibility      string      `json:"accessibility,omitempty"`
	PublicTransport    []string    `json:"publicTransport,omitempty"`
	Tips               []string    `json:"tips"`
	Links              []Link      `json:"links,omitempty" validate:"dive"`
	Website            string      `json:"website,omitempty"`
	Phone              string      `json:"phone,omitempty"`
}

// Clone：深拷贝切片字段，保证副本与原记录互不影响
func (p Park) Clone() Park {
	out := p
	out.Amenities = cloneStrings(p.Amenities)
	out.PublicTransport = cloneStrings(p.PublicTransport)
	out.Tips = cloneStrings(p.Tips)
	if p.Links != nil {
		out.Links = append([]Link(nil), p.Links...)
	}
	return out
}

// HasAmenity：精确匹配设施名称
func (p Park) HasAmenity(a string) bool {
	for _, x := range p.Amenities {
		if x == a {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validate：检查记录满足不变量
func Validate(p Park) error {
	validateOnce.Do(func() { validate = validator.New() })
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("park %q: %w", p.ID, err)
	}
	return nil
}
