package transform

import (
	"parks-api/internal/park"

	"github.com/google/uuid"
)

var base32 = []byte("0123456789bcdefghjkmnpqrstuvwxyz")

// geohash：base32 geohash 编码，经度位在前
func geohash(lat, lon float64, precision int) string {
	latLo, latHi := -90.0, 90.0
	lonLo, lonHi := -180.0, 180.0
	out := make([]byte, 0, precision)
	bit, ch := 0, 0
	even := true
	for len(out) < precision {
		if even {
			mid := (lonLo + lonHi) / 2
			if lon >= mid {
				ch |= 1 << (4 - bit)
				lonLo = mid
			} else {
				lonHi = mid
			}
		} else {
			mid := (latLo + latHi) / 2
			if lat >= mid {
				ch |= 1 << (4 - bit)
				latLo = mid
			} else {
				latHi = mid
			}
		}
		even = !even
		if bit < 4 {
			bit++
			continue
		}
		out = append(out, base32[ch])
		bit, ch = 0, 0
	}
	return string(out)
}

// 约 38m 精度，同名公园的不同地块可区分
const idGeohashPrecision = 8

var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://data.wien.gv.at/daten/geo#PARKINFOOGD"))

// DeriveID：源数据缺少标识时，由名称与位置推导稳定 ID
// 约束：相同输入在任意进程中得到相同结果
func DeriveID(name string, c park.Coordinates) string {
	key := name + "|" + geohash(c.Lat, c.Lng, idGeohashPrecision)
	return "p-" + uuid.NewSHA1(idNamespace, []byte(key)).String()
}
