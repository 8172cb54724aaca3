// Package interfaces
package interfaces

import (
	"github.com/half-nothing/simple-flights/internal/interfaces/global"
)

type CleanerInterface interface {
	Init()
	Add(callable global.Callable)
	// Shutdown 逆序执行所有清理函数但不退出进程, 返回所有失败的合并错误
	Shutdown() error
	// Clean 执行 Shutdown 后关闭日志并退出进程
	Clean()
}
