// 包 locate：按客户端 IP 估算位置，供最近公园排序在未提供经纬度时使用
package locate

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"parks-api/internal/logger"
	"parks-api/internal/park"
	"parks-api/internal/utils"

	"github.com/oschwald/geoip2-golang"
)

// Locator：GeoLite2/GeoIP2 City 数据库；nil 表示未配置，所有查询返回未命中
type Locator struct {
	db *geoip2.Reader
}

func Open(path string) (*Locator, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip db %s: %w", path, err)
	}
	logger.L().Info("geoip_open", "path", path)
	return &Locator{db: db}, nil
}

// OpenFromEnv：GEOIP_CITY_DB 为空时返回 nil, nil
func OpenFromEnv() (*Locator, error) {
	path := utils.EnvString("GEOIP_CITY_DB", "")
	if path == "" {
		return nil, nil
	}
	return Open(path)
}

// Locate：私网、回环与无坐标记录均视为未命中
func (l *Locator) Locate(ip string) (park.Coordinates, bool) {
	if l == nil || l.db == nil {
		return park.Coordinates{}, false
	}
	addr := net.ParseIP(strings.TrimSpace(ip))
	if addr == nil || addr.IsLoopback() || addr.IsPrivate() || addr.IsUnspecified() {
		return park.Coordinates{}, false
	}
	rec, err := l.db.City(addr)
	if err != nil {
		logger.L().Debug("geoip_lookup_fail", "ip", ip, "err", err)
		return park.Coordinates{}, false
	}
	c := park.Coordinates{Lat: rec.Location.Latitude, Lng: rec.Location.Longitude}
	if c.IsZero() {
		return park.Coordinates{}, false
	}
	return c, true
}

func (l *Locator) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

// ClientIP：查询参数 ip 优先，其次常见代理头，最后取连接地址
// 约束：代理头可被伪造，部署于不受信任链路时需由网关过滤
func ClientIP(r *http.Request) string {
	if q := r.URL.Query().Get("ip"); q != "" {
		return q
	}
	h := r.Header
	if x := h.Get("x-forwarded-for"); x != "" {
		return strings.TrimSpace(strings.Split(x, ",")[0])
	}
	for _, name := range []string{"cf-connecting-ip", "x-real-ip", "x-client-ip"} {
		if x := h.Get(name); x != "" {
			return x
		}
	}
	if x := h.Get("forwarded"); x != "" {
		if i := strings.Index(strings.ToLower(x), "for="); i >= 0 {
			y := strings.Trim(x[i+4:], "\" ")
			if p := strings.IndexAny(y, ";,"); p >= 0 {
				y = y[:p]
			}
			return strings.Trim(y, "\"")
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
