// 包 storage：字符串键值存储抽象，缓存、收藏与界面状态共用
package storage

import "context"

// KV：键值存储
// 约束：Get 未命中返回 ok=false 且 err=nil；Delete 对不存在的键不报错
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
