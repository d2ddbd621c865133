package service

import "parks-api/internal/utils"

// Stage：数据管线中可能失败的环节
type Stage int

const (
	StageCacheRead Stage = iota
	StageFetch
	StageRefresh
	StageCacheWrite
)

func (s Stage) String() string {
	switch s {
	case StageCacheRead:
		return "cache_read"
	case StageFetch:
		return "fetch"
	case StageRefresh:
		return "refresh"
	case StageCacheWrite:
		return "cache_write"
	}
	return "unknown"
}

// Decision：失败的处理方式
type Decision int

const (
	Propagate Decision = iota
	Degrade
)

// Failure：交给策略裁决的失败上下文
type Failure struct {
	Stage  Stage
	Err    error
	Cached bool // 存在（可能已过期的）缓存条目
	Forced bool // 显式刷新，而非按需加载
}

// Policy：在一处决定哪些失败静默降级、哪些向上传递
// 约束：
// - 读缓存失败按冷启动处理；写缓存失败只记录
// - 拉取失败在开启 SyntheticFallback 时以内置数据集代替，显式刷新除外
// - 刷新失败时有旧缓存则返回旧数据，否则传递错误
type Policy struct {
	SyntheticFallback bool
}

// DefaultPolicy：开启合成数据兜底
func DefaultPolicy() Policy {
	return Policy{SyntheticFallback: true}
}

// PolicyFromEnv：FETCH_SYNTHETIC_FALLBACK=false 关闭合成数据兜底
func PolicyFromEnv() Policy {
	return Policy{SyntheticFallback: utils.EnvBool("FETCH_SYNTHETIC_FALLBACK", true)}
}

func (p Policy) Decide(f Failure) Decision {
	switch f.Stage {
	case StageCacheRead, StageCacheWrite:
		return Degrade
	case StageFetch:
		if p.SyntheticFallback && !f.Forced {
			return Degrade
		}
	case StageRefresh:
		if f.Cached && !f.Forced {
			return Degrade
		}
	}
	return Propagate
}
