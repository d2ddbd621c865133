// 包 proxychain：按顺序经由多个转发代理请求同一目标地址，首个成功响应即返回
package proxychain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parks-api/internal/logger"
	"parks-api/internal/metrics"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/jtacoma/uritemplates"
)

// 默认代理模板：{+url} 原样拼接目标地址，{url} 对目标地址做百分号编码
var DefaultTemplates = []string{
	"https://corsproxy.io/?{+url}",
	"https://api.allorigins.win/raw?url={url}",
	"https://cors-anywhere.herokuapp.com/{+url}",
}

// DirectTemplate：不经代理直连目标
const DirectTemplate = "{+url}"

// DefaultTimeout：单个代理的请求超时
const DefaultTimeout = 10 * time.Second

var (
	ErrNoProxies        = errors.New("proxychain: no proxies configured")
	ErrAllProxiesFailed = errors.New("proxychain: all proxies failed")
)

// StatusError：代理返回了错误状态码（>= 400）
type StatusError struct {
	Proxy string
	Code  int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("proxy %s: status %d", e.Proxy, e.Code)
}

// Proxy：一条已解析的代理模板
type Proxy struct {
	Name string
	tmpl *uritemplates.UriTemplate
}

// Parse：解析代理模板；name 为空时取模板主机名
func Parse(name, template string) (Proxy, error) {
	t, err := uritemplates.Parse(template)
	if err != nil {
		return Proxy{}, fmt.Errorf("parse proxy template %q: %w", template, err)
	}
	if name == "" {
		name = hostOf(template)
	}
	return Proxy{Name: name, tmpl: t}, nil
}

// ParseAll：依次解析模板列表，遇到第一个非法模板即返回错误
func ParseAll(templates []string) ([]Proxy, error) {
	out := make([]Proxy, 0, len(templates))
	for _, s := range templates {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		p, err := Parse("", s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Expand：生成经由该代理访问 target 的完整地址
func (p Proxy) Expand(target string) (string, error) {
	return p.tmpl.Expand(map[string]interface{}{"url": target})
}

func hostOf(template string) string {
	s := template
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if i := strings.IndexAny(s, "/?{"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "direct"
	}
	return s
}

// 文档注释：代理链
// 背景：上游开放数据接口在部分网络环境不可直连，需依次尝试多个转发代理。
// 约束：不做重试与退避；传输错误、超时与 >= 400 状态码均视为该代理失败并尝试下一个。
type Chain struct {
	proxies []Proxy
	client  *resty.Client
}

// New：以统一超时构造代理链；Accept 头固定为 application/json
func New(proxies []Proxy, timeout time.Duration) *Chain {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Chain{proxies: proxies, client: c}
}

// Proxies：链中代理名称（按尝试顺序）
func (c *Chain) Proxies() []string {
	out := make([]string, 0, len(c.proxies))
	for _, p := range c.proxies {
		out = append(out, p.Name)
	}
	return out
}

// Get：按顺序尝试各代理，返回首个成功响应体；全部失败时返回汇总错误
func (c *Chain) Get(ctx context.Context, target string) ([]byte, error) {
	if len(c.proxies) == 0 {
		return nil, ErrNoProxies
	}
	l := logger.L()
	var merr *multierror.Error
	for _, p := range c.proxies {
		if err := ctx.Err(); err != nil {
			merr = multierror.Append(merr, err)
			break
		}
		u, err := p.Expand(target)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("proxy %s: %w", p.Name, err))
			continue
		}
		start := time.Now()
		resp, err := c.client.R().SetContext(ctx).Get(u)
		if err != nil {
			l.Warn("proxy_attempt_fail", "proxy", p.Name, "err", err)
			metrics.ProxyRequestsTotal.WithLabelValues(p.Name, "error").Inc()
			merr = multierror.Append(merr, fmt.Errorf("proxy %s: %w", p.Name, err))
			continue
		}
		if !resp.IsSuccess() {
			l.Warn("proxy_attempt_status", "proxy", p.Name, "status", resp.StatusCode())
			metrics.ProxyRequestsTotal.WithLabelValues(p.Name, "status").Inc()
			merr = multierror.Append(merr, &StatusError{Proxy: p.Name, Code: resp.StatusCode()})
			continue
		}
		l.Debug("proxy_attempt_ok", "proxy", p.Name, "status", resp.StatusCode(), "bytes", len(resp.Body()), "duration_ms", time.Since(start).Milliseconds())
		metrics.ProxyRequestsTotal.WithLabelValues(p.Name, "ok").Inc()
		return resp.Body(), nil
	}
	return nil, fmt.Errorf("%w: %w", ErrAllProxiesFailed, merr.ErrorOrNil())
}
