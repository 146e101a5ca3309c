package cache

import (
	"context"
	"encoding/json"
	"time"
)

// nullValue 回源结果为空指针时落缓存的哨兵，读侧还原成 nil
const nullValue = "null"

// GetOrLoadJSON 以 JSON 编码包装 GetOrLoad；看板计数这类
// 结构化结果走这里，不用每个调用方自己编解码
func GetOrLoadJSON[T any](
	c *Cache,
	ctx context.Context,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	raw, err := c.GetOrLoad(ctx, key, ttl, func(ctx context.Context) ([]byte, error) {
		v, e := load(ctx)
		if e != nil {
			return nil, e
		}
		if v == nil {
			return []byte(nullValue), nil
		}
		return json.Marshal(v)
	})
	if err != nil {
		return nil, err
	}
	if string(raw) == nullValue {
		return nil, nil
	}
	out := new(T)
	if e := json.Unmarshal(raw, out); e != nil {
		return nil, e
	}
	return out, nil
}
