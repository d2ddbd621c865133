// 包 dataset：获取维也纳开放数据 WFS 公园图层（PARKINFOOGD）的原始要素
package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parks-api/internal/logger"
	"parks-api/internal/metrics"

	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL：维也纳开放数据地理服务
const DefaultBaseURL = "https://data.wien.gv.at/daten/geo"

// 查询参数固定：图层、坐标系（WGS84）与输出格式不可配置
const query = "?service=WFS&request=GetFeature&version=1.1.0&typeName=ogdwien:PARKINFOOGD&srsName=EPSG:4326&outputFormat=json"

var (
	ErrDecode       = errors.New("dataset: response is not a GeoJSON feature collection")
	ErrEmptyDataset = errors.New("dataset: feature collection is empty")
)

// QueryURL：拼接 WFS 查询地址；base 为空时使用 DefaultBaseURL
func QueryURL(base string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "?") + query
}

// Getter：按地址取回响应体；proxychain.Chain 即为实现
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client：远程数据集客户端
type Client struct {
	getter Getter
	url    string
}

// NewClient：baseURL 为空时使用官方地址
func NewClient(g Getter, baseURL string) *Client {
	return &Client{getter: g, url: QueryURL(baseURL)}
}

// URL：实际请求的查询地址
func (c *Client) URL() string { return c.url }

// Fetch：取回并解析全部要素
// 约束：传输失败、解析失败与空集合都以错误返回，不在此层降级
func (c *Client) Fetch(ctx context.Context) ([]*geojson.Feature, error) {
	l := logger.L()
	start := time.Now()
	body, err := c.getter.Get(ctx, c.url)
	metrics.FetchDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.FetchTotal.WithLabelValues("transport").Inc()
		l.Warn("dataset_fetch_fail", "err", err)
		return nil, fmt.Errorf("fetch parks dataset: %w", err)
	}
	features, err := Decode(body)
	if err != nil {
		if errors.Is(err, ErrEmptyDataset) {
			metrics.FetchTotal.WithLabelValues("empty").Inc()
		} else {
			metrics.FetchTotal.WithLabelValues("decode").Inc()
		}
		l.Warn("dataset_decode_fail", "err", err, "bytes", len(body))
		return nil, err
	}
	metrics.FetchTotal.WithLabelValues("ok").Inc()
	l.Info("dataset_fetch_ok", "features", len(features), "duration_ms", time.Since(start).Milliseconds())
	return features, nil
}

// Decode：解析 GeoJSON FeatureCollection；features 为空视为失败
func Decode(body []byte) ([]*geojson.Feature, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrDecode
	}
	n := gjson.GetBytes(body, "features.#")
	if !n.Exists() || n.Int() == 0 {
		return nil, ErrEmptyDataset
	}
	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return fc.Features, nil
}
