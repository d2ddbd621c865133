// 包 service：公园数据服务，负责缓存状态机（冷/新鲜/过期）与拉取、转换、持久化
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"parks-api/internal/dataset"
	"parks-api/internal/logger"
	"parks-api/internal/metrics"
	"parks-api/internal/park"
	"parks-api/internal/storage"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb/geojson"
)

const (
	KeyData      = "wbi-parks-data"
	KeyTimestamp = "wbi-parks-timestamp"
	DefaultTTL   = 7 * 24 * time.Hour
)

var (
	// ErrNoParks：既无缓存又拉取失败
	ErrNoParks = errors.New("no park data available")
	// ErrNoValidParks：拉取成功但没有一条记录通过校验
	ErrNoValidParks = errors.New("dataset produced no valid parks")
	errCorruptCache = errors.New("corrupt cache entry")
)

// Source：原始要素来源，dataset.Client 即为实现
type Source interface {
	Fetch(ctx context.Context) ([]*geojson.Feature, error)
}

// Transformer：要素到 Park 的批量转换
type Transformer interface {
	TransformAll(fs []*geojson.Feature) []park.Park
}

type Options struct {
	Store       storage.KV
	Source      Source
	Transformer Transformer
	// Synthetic：拉取降级时使用的数据集，默认 dataset.Synthetic
	Synthetic func() []*geojson.Feature
	Now       func() time.Time
	TTL       time.Duration
	Policy    *Policy
	Logger    *slog.Logger
}

// DataService：进程内唯一实例，由入口构造后传给各使用方
// 约束：并发调用不合并，各自完成一次拉取周期，后写者覆盖缓存
type DataService struct {
	kv        storage.KV
	src       Source
	tr        Transformer
	synthetic func() []*geojson.Feature
	now       func() time.Time
	ttl       time.Duration
	policy    Policy
	log       *slog.Logger
}

// Entry：缓存条目
type Entry struct {
	Parks     []park.Park
	FetchedAt time.Time
}

func New(o Options) (*DataService, error) {
	if o.Store == nil || o.Source == nil || o.Transformer == nil {
		return nil, errors.New("service: store, source and transformer are required")
	}
	s := &DataService{
		kv:        o.Store,
		src:       o.Source,
		tr:        o.Transformer,
		synthetic: o.Synthetic,
		now:       o.Now,
		ttl:       o.TTL,
		policy:    DefaultPolicy(),
		log:       o.Logger,
	}
	if s.synthetic == nil {
		s.synthetic = dataset.Synthetic
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	if o.Policy != nil {
		s.policy = *o.Policy
	}
	if s.log == nil {
		s.log = logger.L()
	}
	return s, nil
}

// GetParks：按缓存状态返回公园列表
// - 冷：拉取、转换、持久化后返回
// - 新鲜：直接返回缓存，不发起网络请求
// - 过期：重新拉取；失败时由策略决定返回旧数据
func (s *DataService) GetParks(ctx context.Context) ([]park.Park, error) {
	entry, err := s.read(ctx)
	if err != nil {
		s.degradeOrFail(Failure{Stage: StageCacheRead, Err: err})
		entry = nil
	}
	now := s.now()
	if entry != nil && now.Sub(entry.FetchedAt) < s.ttl {
		metrics.CacheStateTotal.WithLabelValues("fresh").Inc()
		s.log.Debug("parks_cache_fresh", "parks", len(entry.Parks), "age", now.Sub(entry.FetchedAt).String())
		return entry.Parks, nil
	}
	if entry == nil {
		metrics.CacheStateTotal.WithLabelValues("cold").Inc()
		s.log.Info("parks_cache_cold")
	} else {
		metrics.CacheStateTotal.WithLabelValues("stale").Inc()
		s.log.Info("parks_cache_stale", "fetched_at", entry.FetchedAt.UTC().Format(time.RFC3339))
	}
	return s.cycle(ctx, entry, false)
}

// Refresh：忽略缓存状态强制拉取并持久化
// 约束：失败时不写入，原有缓存保持不变
func (s *DataService) Refresh(ctx context.Context) ([]park.Park, error) {
	entry, err := s.read(ctx)
	if err != nil {
		s.degradeOrFail(Failure{Stage: StageCacheRead, Err: err, Forced: true})
		entry = nil
	}
	return s.cycle(ctx, entry, true)
}

// ClearCache：无条件删除数据与时间戳，下一次 GetParks 为冷启动
func (s *DataService) ClearCache(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyData, KeyTimestamp); err != nil {
		return fmt.Errorf("clear parks cache: %w", err)
	}
	s.log.Info("parks_cache_cleared")
	return nil
}

// Cached：读取当前缓存条目，不触发拉取；无条目时返回 nil
func (s *DataService) Cached(ctx context.Context) (*Entry, error) {
	return s.read(ctx)
}

func (s *DataService) cycle(ctx context.Context, entry *Entry, forced bool) ([]park.Park, error) {
	parks, err := s.load(ctx, forced)
	if err != nil {
		f := Failure{Stage: StageRefresh, Err: err, Cached: entry != nil, Forced: forced}
		if s.degradeOrFail(f) == Degrade {
			metrics.StaleFallbackTotal.Inc()
			return entry.Parks, nil
		}
		if forced {
			return nil, fmt.Errorf("refresh parks: %w", err)
		}
		return nil, fmt.Errorf("%w: %w", ErrNoParks, err)
	}
	if err := s.write(ctx, parks, s.now()); err != nil {
		if s.degradeOrFail(Failure{Stage: StageCacheWrite, Err: err, Forced: forced}) == Propagate {
			return nil, err
		}
	}
	return parks, nil
}

// load：拉取与转换；拉取失败交给策略决定是否改用合成数据
func (s *DataService) load(ctx context.Context, forced bool) ([]park.Park, error) {
	features, err := s.src.Fetch(ctx)
	if err != nil {
		if s.degradeOrFail(Failure{Stage: StageFetch, Err: err, Forced: forced}) == Propagate {
			return nil, err
		}
		metrics.SyntheticFallbackTotal.Inc()
		features = s.synthetic()
	}
	parks := s.tr.TransformAll(features)
	if len(parks) == 0 {
		return nil, ErrNoValidParks
	}
	metrics.ParksLoaded.Set(float64(len(parks)))
	s.log.Info("parks_loaded", "features", len(features), "parks", len(parks))
	return parks, nil
}

func (s *DataService) degradeOrFail(f Failure) Decision {
	d := s.policy.Decide(f)
	if d == Degrade {
		s.log.Warn("parks_stage_degraded", "stage", f.Stage.String(), "err", f.Err)
	} else {
		s.log.Error("parks_stage_failed", "stage", f.Stage.String(), "err", f.Err)
	}
	return d
}

// read：两个键都存在才算完整条目；缺任一键返回 nil
func (s *DataService) read(ctx context.Context) (*Entry, error) {
	rawTS, ok, err := s.kv.Get(ctx, KeyTimestamp)
	if err != nil || !ok {
		return nil, err
	}
	rawData, ok, err := s.kv.Get(ctx, KeyData)
	if err != nil || !ok {
		return nil, err
	}
	ms, err := strconv.ParseInt(rawTS, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: timestamp %q", errCorruptCache, rawTS)
	}
	var parks []park.Park
	if err := json.Unmarshal([]byte(rawData), &parks); err != nil {
		return nil, fmt.Errorf("%w: %w", errCorruptCache, err)
	}
	if len(parks) == 0 {
		return nil, fmt.Errorf("%w: empty park list", errCorruptCache)
	}
	return &Entry{Parks: parks, FetchedAt: time.UnixMilli(ms)}, nil
}

// write：先写数据再写时间戳，数据写入失败时不更新时间戳
func (s *DataService) write(ctx context.Context, parks []park.Park, at time.Time) error {
	b, err := json.Marshal(parks)
	if err != nil {
		return fmt.Errorf("encode parks: %w", err)
	}
	if err := s.kv.Set(ctx, KeyData, string(b)); err != nil {
		return fmt.Errorf("persist parks: %w", err)
	}
	if err := s.kv.Set(ctx, KeyTimestamp, strconv.FormatInt(at.UnixMilli(), 10)); err != nil {
		return fmt.Errorf("persist parks timestamp: %w", err)
	}
	s.log.Debug("parks_cache_written", "parks", len(parks), "bytes", len(b))
	return nil
}
