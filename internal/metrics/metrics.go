package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parks_api_requests_total",
		Help: "Total number of API requests by route",
	}, []string{"route"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parks_api_request_duration_ms",
		Help:    "API request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
	FetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parks_fetch_total",
		Help: "Total dataset fetches by result",
	}, []string{"result"})
	FetchDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "parks_fetch_duration_ms",
		Help:    "Dataset fetch duration in milliseconds",
		Buckets: []float64{50, 100, 200, 500, 1000, 2000, 5000, 10000},
	})
	ProxyRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parks_proxy_requests_total",
		Help: "Total proxy attempts by proxy and result",
	}, []string{"proxy", "result"})
	CacheStateTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parks_cache_state_total",
		Help: "Cache state observed on GetParks (cold, fresh, stale)",
	}, []string{"state"})
	SyntheticFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "parks_synthetic_fallback_total",
		Help: "Total fetches served from the built-in synthetic dataset",
	})
	StaleFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "parks_stale_fallback_total",
		Help: "Total refresh failures answered with expired cache data",
	})
	ParksLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "parks_loaded",
		Help: "Number of parks in the last transformed dataset",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(FetchTotal)
	prometheus.MustRegister(FetchDurationMs)
	prometheus.MustRegister(ProxyRequestsTotal)
	prometheus.MustRegister(CacheStateTotal)
	prometheus.MustRegister(SyntheticFallbackTotal)
	prometheus.MustRegister(StaleFallbackTotal)
	prometheus.MustRegister(ParksLoaded)
}

// 文档注释：返回 Prometheus 指标处理器
// 背景：统一暴露注册指标到 /metrics 路径，由主入口挂载。
func Handler() http.Handler { return promhttp.Handler() }
