// 包 prefs：按客户端隔离的收藏与列表界面状态
package prefs

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"

	"parks-api/internal/catalog"
	"parks-api/internal/logger"
	"parks-api/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	KeyFavorites          = "wbi-favorite-parks"
	KeySearch             = "wbi-search-term"
	KeyDistrict           = "wbi-selected-district"
	KeySort               = "wbi-sort-order"
	KeyAmenities          = "wbi-selected-amenities"
	KeyLocationPermission = "wbi-location-permission"
)

var (
	ErrInvalidClient = errors.New("invalid client id")
	ErrInvalidState  = errors.New("invalid ui state")
	clientRe         = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	validate         = validator.New()
)

// UIState：列表页筛选与排序状态
// District 为 0 表示全部；LocationPermission 为 nil 表示尚未询问
type UIState struct {
	SearchTerm         string       `json:"searchTerm" validate:"max=200"`
	District           int          `json:"district" validate:"min=0,max=23"`
	SortOrder          catalog.Sort `json:"sortOrder" validate:"omitempty,oneof=none asc desc name_asc name_desc district_asc nearest"`
	Amenities          []string     `json:"amenities"`
	LocationPermission *bool        `json:"locationPermission"`
}

// Store：读改写在进程内串行
type Store struct {
	kv storage.KV
	mu sync.Mutex
}

func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// ValidClient：客户端标识只允许字母数字、下划线与连字符
func ValidClient(client string) bool {
	return clientRe.MatchString(client)
}

func key(base, client string) string {
	return base + ":" + client
}

// Favorites：收藏的公园 id，按加入顺序
func (s *Store) Favorites(ctx context.Context, client string) ([]string, error) {
	if !ValidClient(client) {
		return nil, ErrInvalidClient
	}
	return s.favorites(ctx, client)
}

func (s *Store) favorites(ctx context.Context, client string) ([]string, error) {
	raw, ok, err := s.kv.Get(ctx, key(KeyFavorites, client))
	if err != nil {
		return nil, fmt.Errorf("read favorites: %w", err)
	}
	ids := []string{}
	if !ok {
		return ids, nil
	}
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.L().Warn("prefs_favorites_corrupt", "client", client, "err", err)
		return []string{}, nil
	}
	return ids, nil
}

func (s *Store) IsFavorite(ctx context.Context, client, id string) (bool, error) {
	ids, err := s.Favorites(ctx, client)
	if err != nil {
		return false, err
	}
	return contains(ids, id), nil
}

// AddFavorite：已存在时不重复写入
func (s *Store) AddFavorite(ctx context.Context, client, id string) error {
	_, err := s.update(ctx, client, func(ids []string) ([]string, bool) {
		if contains(ids, id) {
			return ids, false
		}
		return append(ids, id), true
	})
	return err
}

func (s *Store) RemoveFavorite(ctx context.Context, client, id string) error {
	_, err := s.update(ctx, client, func(ids []string) ([]string, bool) {
		return remove(ids, id), true
	})
	return err
}

// ToggleFavorite：返回切换后的状态
func (s *Store) ToggleFavorite(ctx context.Context, client, id string) (bool, error) {
	var added bool
	_, err := s.update(ctx, client, func(ids []string) ([]string, bool) {
		if contains(ids, id) {
			added = false
			return remove(ids, id), true
		}
		added = true
		return append(ids, id), true
	})
	return added, err
}

func (s *Store) update(ctx context.Context, client string, fn func([]string) ([]string, bool)) ([]string, error) {
	if !ValidClient(client) {
		return nil, ErrInvalidClient
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ids, err := s.favorites(ctx, client)
	if err != nil {
		return nil, err
	}
	ids, changed := fn(ids)
	if !changed {
		return ids, nil
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("encode favorites: %w", err)
	}
	if err := s.kv.Set(ctx, key(KeyFavorites, client), string(b)); err != nil {
		return nil, fmt.Errorf("write favorites: %w", err)
	}
	return ids, nil
}

// UI：读取界面状态；未保存的字段取默认值（排序默认面积降序）
func (s *Store) UI(ctx context.Context, client string) (UIState, error) {
	st := UIState{SortOrder: catalog.DefaultSort, Amenities: []string{}}
	if !ValidClient(client) {
		return st, ErrInvalidClient
	}
	get := func(base string) (string, bool, error) { return s.kv.Get(ctx, key(base, client)) }

	if v, ok, err := get(KeySearch); err != nil {
		return st, fmt.Errorf("read ui state: %w", err)
	} else if ok {
		st.SearchTerm = v
	}
	if v, ok, err := get(KeyDistrict); err != nil {
		return st, fmt.Errorf("read ui state: %w", err)
	} else if ok {
		if d, perr := strconv.Atoi(v); perr == nil {
			st.District = d
		}
	}
	if v, ok, err := get(KeySort); err != nil {
		return st, fmt.Errorf("read ui state: %w", err)
	} else if ok && v != "" {
		if sort, perr := catalog.ParseSort(v); perr == nil {
			st.SortOrder = sort
		}
	}
	if v, ok, err := get(KeyAmenities); err != nil {
		return st, fmt.Errorf("read ui state: %w", err)
	} else if ok {
		var a []string
		if json.Unmarshal([]byte(v), &a) == nil && a != nil {
			st.Amenities = a
		}
	}
	if v, ok, err := get(KeyLocationPermission); err != nil {
		return st, fmt.Errorf("read ui state: %w", err)
	} else if ok {
		var granted bool
		if json.Unmarshal([]byte(v), &granted) == nil {
			st.LocationPermission = &granted
		}
	}
	return st, nil
}

// SaveUI：整体写入界面状态；LocationPermission 为 nil 时删除该键
func (s *Store) SaveUI(ctx context.Context, client string, st UIState) error {
	if !ValidClient(client) {
		return ErrInvalidClient
	}
	if err := validate.Struct(st); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	if st.SortOrder == "" {
		st.SortOrder = catalog.DefaultSort
	}
	if st.Amenities == nil {
		st.Amenities = []string{}
	}
	amenities, err := json.Marshal(st.Amenities)
	if err != nil {
		return fmt.Errorf("encode amenities: %w", err)
	}
	district := ""
	if st.District != 0 {
		district = strconv.Itoa(st.District)
	}
	values := [][2]string{
		{KeySearch, st.SearchTerm},
		{KeyDistrict, district},
		{KeySort, string(st.SortOrder)},
		{KeyAmenities, string(amenities)},
	}
	if st.LocationPermission != nil {
		values = append(values, [2]string{KeyLocationPermission, strconv.FormatBool(*st.LocationPermission)})
	} else if err := s.kv.Delete(ctx, key(KeyLocationPermission, client)); err != nil {
		return fmt.Errorf("write ui state: %w", err)
	}
	for _, kv := range values {
		if err := s.kv.Set(ctx, key(kv[0], client), kv[1]); err != nil {
			return fmt.Errorf("write ui state: %w", err)
		}
	}
	return nil
}

// Clear：删除该客户端全部偏好
func (s *Store) Clear(ctx context.Context, client string) error {
	if !ValidClient(client) {
		return ErrInvalidClient
	}
	keys := make([]string, 0, 6)
	for _, b := range []string{KeyFavorites, KeySearch, KeyDistrict, KeySort, KeyAmenities, KeyLocationPermission} {
		keys = append(keys, key(b, client))
	}
	return s.kv.Delete(ctx, keys...)
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}
