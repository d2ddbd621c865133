package api

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"parks-api/internal/catalog"
	"parks-api/internal/logger"
	"parks-api/internal/park"
	"parks-api/internal/prefs"

	"github.com/goccy/go-json"
)

// clientID：偏好按 x-client-id 隔离
func clientID(r *http.Request) string {
	return r.Header.Get("x-client-id")
}

// requireClient：缺少或非法客户端标识时写 400
func requireClient(w http.ResponseWriter, r *http.Request) (string, bool) {
	c := clientID(r)
	if !prefs.ValidClient(c) {
		writeError(w, http.StatusBadRequest, "missing or invalid x-client-id header")
		return "", false
	}
	return c, true
}

func (h *handler) prefsFailed(w http.ResponseWriter, err error) {
	if errors.Is(err, prefs.ErrInvalidClient) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	logger.L().Error("api_prefs_error", "err", err)
	writeError(w, http.StatusInternalServerError, "preferences storage failed")
}

type favoritesResponse struct {
	IDs   []string    `json:"ids"`
	Parks []park.Park `json:"parks"`
}

// listFavorites：返回收藏 id 与仍存在于数据集中的公园
func (h *handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	client, ok := requireClient(w, r)
	if !ok {
		return
	}
	ids, err := h.Prefs.Favorites(r.Context(), client)
	if err != nil {
		h.prefsFailed(w, err)
		return
	}
	parks, ok := h.loadParks(w, r)
	if !ok {
		return
	}
	out := make([]park.Park, 0, len(ids))
	for _, id := range ids {
		if p, found := catalog.Find(parks, id); found {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, favoritesResponse{IDs: ids, Parks: out})
}

type favoriteState struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

func (h *handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	client, ok := requireClient(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	if err := h.Prefs.AddFavorite(r.Context(), client, id); err != nil {
		h.prefsFailed(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favoriteState{ID: id, Favorite: true})
}

func (h *handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	client, ok := requireClient(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	if err := h.Prefs.RemoveFavorite(r.Context(), client, id); err != nil {
		h.prefsFailed(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favoriteState{ID: id, Favorite: false})
}

func (h *handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	client, ok := requireClient(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	fav, err := h.Prefs.ToggleFavorite(r.Context(), client, id)
	if err != nil {
		h.prefsFailed(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favoriteState{ID: id, Favorite: fav})
}

func (h *handler) getPrefs(w http.ResponseWriter, r *http.Request) {
	client, ok := requireClient(w, r)
	if !ok {
		return
	}
	st, err := h.Prefs.UI(r.Context(), client)
	if err != nil {
		h.prefsFailed(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *handler) putPrefs(w http.ResponseWriter, r *http.Request) {
	client, ok := requireClient(w, r)
	if !ok {
		return
	}
	var st prefs.UIState
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&st); err != nil {
		writeError(w, http.StatusBadRequest, "invalid preferences body")
		return
	}
	if err := h.Prefs.SaveUI(r.Context(), client, st); err != nil {
		if errors.Is(err, prefs.ErrInvalidState) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.prefsFailed(w, err)
		return
	}
	saved, err := h.Prefs.UI(r.Context(), client)
	if err != nil {
		h.prefsFailed(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// refresh：清空缓存后立即重新加载
// 约束：需 x-admin-token 与 ADMIN_TOKEN 一致；未配置 ADMIN_TOKEN 时接口关闭
func (h *handler) refresh(w http.ResponseWriter, r *http.Request) {
	t := r.Header.Get("x-admin-token")
	if h.AdminToken == "" || subtle.ConstantTimeCompare([]byte(t), []byte(h.AdminToken)) != 1 {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	if err := h.Parks.ClearCache(r.Context()); err != nil {
		logger.L().Error("api_clear_cache_fail", "err", err)
		writeError(w, http.StatusInternalServerError, "clearing the cache failed")
		return
	}
	parks, ok := h.loadParks(w, r)
	if !ok {
		return
	}
	logger.L().Info("api_refresh_done", "parks", len(parks))
	writeJSON(w, http.StatusOK, map[string]int{"count": len(parks)})
}
