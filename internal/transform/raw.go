// 包 transform：把 WFS 原始要素转换为归一化的公园记录
package transform

import (
	"math"
	"strconv"
	"strings"

	"parks-api/internal/district"

	"github.com/paulmach/orb/geojson"
)

// 上游属性名随数据集版本变化；每个逻辑字段按顺序列出全部已知名称，首个有值者生效
var (
	idFields       = []string{"OBJECTID", "ID", "FID"}
	nameFields     = []string{"ANL_NAME", "PARKNAME", "NAME"}
	districtFields = []string{"BEZIRK", "BEZIRKSNUMMER"}
	areaFields     = []string{"FLAECHE", "FLAECHE_M2"}
	categoryFields = []string{"KATEGORIE", "TYP"}
	hoursFields    = []string{"OEFF_ZEITEN", "OEFFNUNGSZEITEN"}
	websiteFields  = []string{"WEBLINK1", "WEBLINK"}
	phoneFields    = []string{"TELEFON"}
)

const (
	playgroundField = "SPIELEN_IM_PARK"
	waterField      = "WASSER_IM_PARK"
	dogsField       = "HUNDE_IM_PARK"
	flagYes         = "Ja"
)

// 文档注释：原始记录的类型化中间结构
// 约束：缺失字段保持零值；District 仅在 1..23 时非零
type Raw struct {
	ID           string
	Name         string
	District     int
	AreaText     string
	AreaValue    float64
	HasAreaValue bool
	Category     string
	Playground   bool
	Water        bool
	Dogs         bool
	OpeningHours string
	Website      string
	Phone        string
}

// ParseRaw：从要素属性中提取各逻辑字段
func ParseRaw(f *geojson.Feature) Raw {
	var props geojson.Properties
	if f != nil {
		props = f.Properties
	}
	r := Raw{
		ID:           firstText(props, idFields),
		Name:         firstText(props, nameFields),
		District:     firstDistrict(props, districtFields),
		Category:     firstText(props, categoryFields),
		Playground:   props[playgroundField] == flagYes,
		Water:        props[waterField] == flagYes,
		Dogs:         props[dogsField] == flagYes,
		OpeningHours: firstText(props, hoursFields),
		Website:      firstText(props, websiteFields),
		Phone:        firstText(props, phoneFields),
	}
	for _, k := range areaFields {
		switch v := props[k].(type) {
		case string:
			if v != "" {
				r.AreaText = v
				return r
			}
		case float64:
			if v != 0 && !math.IsNaN(v) {
				r.AreaValue, r.HasAreaValue = v, true
				return r
			}
		case int:
			if v != 0 {
				r.AreaValue, r.HasAreaValue = float64(v), true
				return r
			}
		}
	}
	return r
}

// firstText：首个非空字符串或非零数字（数字按最短十进制形式转文本）
func firstText(props geojson.Properties, keys []string) string {
	for _, k := range keys {
		switch v := props[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			if v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
				return strconv.FormatFloat(v, 'f', -1, 64)
			}
		case int:
			if v != 0 {
				return strconv.Itoa(v)
			}
		case int64:
			if v != 0 {
				return strconv.FormatInt(v, 10)
			}
		}
	}
	return ""
}

// firstDistrict：首个落在 1..23 的区号；数字字符串同样接受
func firstDistrict(props geojson.Properties, keys []string) int {
	for _, k := range keys {
		var d int
		switch v := props[k].(type) {
		case float64:
			if v == math.Trunc(v) {
				d = int(v)
			}
		case int:
			d = v
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err == nil {
				d = n
			}
		}
		if district.Valid(d) {
			return d
		}
	}
	return 0
}
