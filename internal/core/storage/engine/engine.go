package engine

import (
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
)

// InternalEngine 内部扩展接口
type InternalEngine interface {
	interfaces.StorageEngine // 嵌入公共接口

	// Sync 同步数据到磁盘
	//
	// 确保所有已写入的数据持久化到磁盘。
	Sync() error
}
