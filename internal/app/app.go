// 包 app：按环境变量装配数据管线（代理链、数据集客户端、转换器、数据服务），供各入口共用
package app

import (
	"fmt"

	"parks-api/internal/dataset"
	"parks-api/internal/logger"
	"parks-api/internal/override"
	"parks-api/internal/proxychain"
	"parks-api/internal/service"
	"parks-api/internal/storage"
	"parks-api/internal/transform"
	"parks-api/internal/utils"
)

// NewChainFromEnv：PARKS_PROXIES 为逗号分隔的 URI 模板，未设置时使用内置代理列表
func NewChainFromEnv() (*proxychain.Chain, error) {
	templates := utils.EnvList("PARKS_PROXIES")
	if len(templates) == 0 {
		templates = proxychain.DefaultTemplates
	}
	proxies, err := proxychain.ParseAll(templates)
	if err != nil {
		return nil, fmt.Errorf("PARKS_PROXIES: %w", err)
	}
	chain := proxychain.New(proxies, utils.EnvDuration("PARKS_FETCH_TIMEOUT", proxychain.DefaultTimeout))
	logger.L().Debug("config_proxies", "proxies", chain.Proxies())
	return chain, nil
}

// NewDataService：kv 由调用方打开并负责关闭
func NewDataService(kv storage.KV, overrides *override.Store) (*service.DataService, error) {
	chain, err := NewChainFromEnv()
	if err != nil {
		return nil, err
	}
	client := dataset.NewClient(chain, utils.EnvString("PARKS_API_BASE", ""))
	policy := service.PolicyFromEnv()
	ttl := utils.EnvDuration("PARKS_CACHE_TTL", service.DefaultTTL)
	l := logger.L()
	l.Debug("config_dataset", "url", client.URL(), "ttl", ttl.String(), "synthetic_fallback", policy.SyntheticFallback, "overrides", overrides.Len())
	return service.New(service.Options{
		Store:       kv,
		Source:      client,
		Transformer: transform.New(overrides),
		TTL:         ttl,
		Policy:      &policy,
		Logger:      l,
	})
}
