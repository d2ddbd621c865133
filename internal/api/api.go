// 包 api：集中注册 HTTP API 路由以解耦主入口，便于后续扩展与替换
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"parks-api/internal/catalog"
	"parks-api/internal/district"
	"parks-api/internal/geo"
	"parks-api/internal/locate"
	"parks-api/internal/logger"
	"parks-api/internal/metrics"
	"parks-api/internal/override"
	"parks-api/internal/park"
	"parks-api/internal/prefs"
	"parks-api/internal/sitemap"
	"parks-api/internal/stats"

	"github.com/goccy/go-json"
)

// Parks：数据服务对外能力，service.DataService 即为实现
type Parks interface {
	GetParks(ctx context.Context) ([]park.Park, error)
	ClearCache(ctx context.Context) error
}

// Deps：路由依赖；Locator 可为 nil
type Deps struct {
	Parks       Parks
	Overrides   *override.Store
	Prefs       *prefs.Store
	Locator     *locate.Locator
	AdminToken  string
	SiteBaseURL string
	Now         func() time.Time
}

type handler struct {
	Deps
}

// 构建并返回 API 路由：独立 ServeMux 便于在主入口挂载到 /api 前缀
func BuildRoutes(d Deps) *http.ServeMux {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handler{Deps: d}
	mux := http.NewServeMux()
	route := func(pattern, name string, fn http.HandlerFunc) {
		mux.Handle(pattern, instrument(name, fn))
	}
	route("GET /parks", "parks_list", h.listParks)
	route("GET /parks/{idOrSlug}", "parks_detail", h.parkDetail)
	route("GET /stats", "stats", h.stats)
	route("GET /districts", "districts", h.districts)
	route("GET /sitemap.xml", "sitemap", h.sitemap)
	route("GET /favorites", "favorites_list", h.listFavorites)
	route("PUT /favorites/{id}", "favorites_add", h.addFavorite)
	route("DELETE /favorites/{id}", "favorites_remove", h.removeFavorite)
	route("POST /favorites/{id}/toggle", "favorites_toggle", h.toggleFavorite)
	route("GET /prefs", "prefs_get", h.getPrefs)
	route("PUT /prefs", "prefs_put", h.putPrefs)
	route("POST /refresh", "refresh", h.refresh)
	return mux
}

func instrument(name string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		metrics.RequestsTotal.WithLabelValues(name).Inc()
		metrics.RequestDurationMs.WithLabelValues(name).Observe(float64(time.Since(start).Milliseconds()))
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.Header().Set("cache-control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}

// loadParks：数据不可用时写 503 并返回 false
func (h *handler) loadParks(w http.ResponseWriter, r *http.Request) ([]park.Park, bool) {
	parks, err := h.Parks.GetParks(r.Context())
	if err != nil {
		logger.L().Error("api_parks_unavailable", "path", r.URL.Path, "err", err)
		writeError(w, http.StatusServiceUnavailable, "park data is currently unavailable")
		return nil, false
	}
	return parks, true
}

type listResponse struct {
	Count     int               `json:"count"`
	Parks     []park.Park       `json:"parks"`
	Districts []int             `json:"districts"`
	Amenities []string          `json:"amenities"`
	Sort      catalog.Sort      `json:"sort"`
	Origin    *park.Coordinates `json:"origin,omitempty"`
}

func (h *handler) listParks(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	parks, ok := h.loadParks(w, r)
	if !ok {
		return
	}
	out := catalog.Apply(parks, q)
	writeJSON(w, http.StatusOK, listResponse{
		Count:     len(out),
		Parks:     out,
		Districts: catalog.Districts(parks),
		Amenities: catalog.Amenities(parks),
		Sort:      q.Sort,
		Origin:    q.Origin,
	})
}

// parseQuery：search, district, amenities（逗号分隔）, sort, lat/lng
// 约束：nearest 未给坐标时尝试按客户端 IP 定位
func (h *handler) parseQuery(r *http.Request) (catalog.Query, error) {
	v := r.URL.Query()
	q := catalog.Query{Search: v.Get("search")}
	if s := v.Get("district"); s != "" && s != "all" {
		d, err := strconv.Atoi(s)
		if err != nil || !district.Valid(d) {
			return q, errors.New("district must be between 1 and 23")
		}
		q.District = d
	}
	for _, a := range strings.Split(v.Get("amenities"), ",") {
		if a = strings.TrimSpace(a); a != "" {
			q.Amenities = append(q.Amenities, a)
		}
	}
	sort, err := catalog.ParseSort(v.Get("sort"))
	if err != nil {
		return q, err
	}
	q.Sort = sort
	lat, lng := v.Get("lat"), v.Get("lng")
	if lat != "" || lng != "" {
		c, err := parseCoordinates(lat, lng)
		if err != nil {
			return q, err
		}
		q.Origin = &c
	} else if sort == catalog.SortNearest {
		if c, ok := h.Locator.Locate(locate.ClientIP(r)); ok {
			q.Origin = &c
		}
	}
	return q, nil
}

func parseCoordinates(lat, lng string) (park.Coordinates, error) {
	la, err1 := strconv.ParseFloat(lat, 64)
	ln, err2 := strconv.ParseFloat(lng, 64)
	if err1 != nil || err2 != nil || la < -90 || la > 90 || ln < -180 || ln > 180 {
		return park.Coordinates{}, errors.New("lat and lng must both be valid coordinates")
	}
	return park.Coordinates{Lat: la, Lng: ln}, nil
}

type detailResponse struct {
	Park     park.Park    `json:"park"`
	Nearby   []geo.Ranked `json:"nearby"`
	Favorite bool         `json:"favorite"`
}

func (h *handler) parkDetail(w http.ResponseWriter, r *http.Request) {
	parks, ok := h.loadParks(w, r)
	if !ok {
		return
	}
	p, found := catalog.Find(parks, r.PathValue("idOrSlug"))
	if !found {
		writeError(w, http.StatusNotFound, "park not found")
		return
	}
	merged := catalog.Merge(p, h.Overrides)
	resp := detailResponse{
		Park:   merged,
		Nearby: catalog.Nearby(parks, merged, catalog.DefaultNearby, h.Overrides),
	}
	if client := clientID(r); prefs.ValidClient(client) {
		fav, err := h.Prefs.IsFavorite(r.Context(), client, merged.ID)
		if err != nil {
			logger.L().Warn("api_favorite_lookup_fail", "err", err)
		}
		resp.Favorite = fav
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	parks, ok := h.loadParks(w, r)
	if !ok {
		return
	}
	s := stats.Compute(parks)
	writeJSON(w, http.StatusOK, struct {
		stats.Summary
		TotalAreaFormatted string `json:"totalAreaFormatted"`
	}{s, stats.FormatArea(float64(s.TotalArea))})
}

type districtEntry struct {
	district.Info
	ParkCount int `json:"parkCount"`
}

func (h *handler) districts(w http.ResponseWriter, r *http.Request) {
	parks, ok := h.loadParks(w, r)
	if !ok {
		return
	}
	counts := make(map[int]int)
	for _, p := range parks {
		counts[p.District]++
	}
	out := make([]districtEntry, 0, district.Count)
	for _, info := range district.All() {
		out = append(out, districtEntry{Info: info, ParkCount: counts[info.Number]})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) sitemap(w http.ResponseWriter, r *http.Request) {
	parks, ok := h.loadParks(w, r)
	if !ok {
		return
	}
	w.Header().Set("content-type", "application/xml; charset=utf-8")
	if err := sitemap.Write(w, sitemap.Build(h.SiteBaseURL, parks, h.Now())); err != nil {
		logger.L().Warn("api_sitemap_write_fail", "err", err)
	}
}
