// 包 slug：把公园名称转为 URL 与查找键使用的规范标识
package slug

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var umlauts = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss")

// Slugify：小写，德语变音转写，非 [a-z0-9] 的连续字符折叠为单个 "-"，去掉首尾 "-"
// 约束：幂等；与区域设置无关
func Slugify(name string) string {
	s := umlauts.Replace(strings.ToLower(norm.NFC.String(name)))
	var b strings.Builder
	b.Grow(len(s))
	dash := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteByte(c)
			continue
		}
		dash = true
	}
	return b.String()
}
