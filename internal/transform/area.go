package transform

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	areaRun       = regexp.MustCompile(`[\d.,]+`)
	leadingNumber = regexp.MustCompile(`^\d*(\.\d*)?`)
)

// ParseArea：解析德语格式面积文本，如 "7.730 m²" 或 "1.234,5"
// 取首段数字，去掉千分位点，首个逗号视为小数点，按数值前缀精确解析后四舍五入；无法解析返回 0
func ParseArea(s string) int {
	m := areaRun.FindString(s)
	if m == "" {
		return 0
	}
	cleaned := strings.Replace(strings.ReplaceAll(m, ".", ""), ",", ".", 1)
	num := strings.TrimSuffix(leadingNumber.FindString(cleaned), ".")
	if num == "" {
		return 0
	}
	if strings.HasPrefix(num, ".") {
		num = "0" + num
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return 0
	}
	return roundArea(d)
}

// AreaFromNumber：数值型面积同样四舍五入并下限为 0
func AreaFromNumber(v float64) int {
	return roundArea(decimal.NewFromFloat(v))
}

var maxArea = decimal.NewFromInt(math.MaxInt)

// 约束：超出 int 范围的值截断为 math.MaxInt，不回绕
func roundArea(d decimal.Decimal) int {
	r := d.Round(0)
	if r.IsNegative() {
		return 0
	}
	if r.GreaterThan(maxArea) {
		return math.MaxInt
	}
	return int(r.IntPart())
}
