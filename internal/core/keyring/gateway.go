package keyring

import (
	"errors"
	"fmt"

	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/internal/core/metrics"
)

// 凭据操作名（指标标签）
const (
	opGet    = "get"
	opSet    = "set"
	opDelete = "delete"
)

// Gateway 凭据访问入口
//
// 每次调用先确保 Bootstrap 已完成，再在固定命名空间 Service 下操作。
// 条目不存在被归一化：Get 返回 found=false，Delete 视为成功。
type Gateway struct {
	bootstrap    *Bootstrap
	service      string
	maxValueSize int
	metrics      *metrics.Metrics
}

// NewGateway 创建 Gateway
//
// maxValueSize <= 0 时使用 config.DefaultMaxValueSize。m 可以为 nil。
func NewGateway(b *Bootstrap, maxValueSize int, m *metrics.Metrics) *Gateway {
	if maxValueSize <= 0 {
		maxValueSize = config.DefaultMaxValueSize
	}
	return &Gateway{
		bootstrap:    b,
		service:      Service,
		maxValueSize: maxValueSize,
		metrics:      m,
	}
}

// MaxValueSize 返回单个值的上限（字节）
func (g *Gateway) MaxValueSize() int {
	return g.maxValueSize
}

// Kind 返回已安装后端的类型，必要时触发初始化
func (g *Gateway) Kind() (string, error) {
	backend, err := g.bootstrap.EnsureInitialized()
	if err != nil {
		return "", err
	}
	return backend.Kind(), nil
}

// Set 写入（覆盖）凭据
func (g *Gateway) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidArgument)
	}
	if len(value) > g.maxValueSize {
		return fmt.Errorf("%w: value is %d bytes, limit %d", ErrInvalidArgument, len(value), g.maxValueSize)
	}

	backend, err := g.bootstrap.EnsureInitialized()
	if err != nil {
		return err
	}

	if err := backend.Set(g.service, key, value); err != nil {
		g.metrics.CredentialOp(opSet, metrics.ResultError)
		log.Warn("写入凭据失败", "key", key, "error", err)
		return fmt.Errorf("%w: set %q: %w", ErrBackend, key, err)
	}
	g.metrics.CredentialOp(opSet, metrics.ResultOK)
	log.Debug("写入凭据", "key", key)
	return nil
}

// Get 读取凭据
//
// 条目不存在时返回 ("", false, nil)。
func (g *Gateway) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, fmt.Errorf("%w: empty key", ErrInvalidArgument)
	}

	backend, err := g.bootstrap.EnsureInitialized()
	if err != nil {
		return "", false, err
	}

	value, err := backend.Get(g.service, key)
	switch {
	case err == nil:
		g.metrics.CredentialOp(opGet, metrics.ResultOK)
		return value, true, nil
	case errors.Is(err, ErrNotFound):
		g.metrics.CredentialOp(opGet, metrics.ResultNotFound)
		return "", false, nil
	default:
		g.metrics.CredentialOp(opGet, metrics.ResultError)
		log.Warn("读取凭据失败", "key", key, "error", err)
		return "", false, fmt.Errorf("%w: get %q: %w", ErrBackend, key, err)
	}
}

// Delete 删除凭据
//
// 条目不存在视为成功。
func (g *Gateway) Delete(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidArgument)
	}

	backend, err := g.bootstrap.EnsureInitialized()
	if err != nil {
		return err
	}

	err = backend.Delete(g.service, key)
	switch {
	case err == nil:
		g.metrics.CredentialOp(opDelete, metrics.ResultOK)
		return nil
	case errors.Is(err, ErrNotFound):
		g.metrics.CredentialOp(opDelete, metrics.ResultNotFound)
		return nil
	default:
		g.metrics.CredentialOp(opDelete, metrics.ResultError)
		log.Warn("删除凭据失败", "key", key, "error", err)
		return fmt.Errorf("%w: delete %q: %w", ErrBackend, key, err)
	}
}
