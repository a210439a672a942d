package singleton

import (
	"errors"
	"fmt"
)

// 预定义的哨兵错误，可使用 errors.Is 进行判断。
//
// 示例:
//
//	_, err := h.Get(cfg)
//	if errors.Is(err, singleton.ErrCreateFailed) {
//	    // 构造失败，Holder 仍未初始化，可以稍后重试
//	}
var (
	// ErrNoCreator 表示 Holder 没有创建函数（New 时传入了 nil）。
	ErrNoCreator = errors.New("lazysingleton: no creator")

	// ErrCreateFailed 表示创建函数返回了错误。
	// 返回的错误同时包装了创建函数的原始错误。
	ErrCreateFailed = errors.New("lazysingleton: create failed")
)

// NewErrNoCreator 创建一个包含单例名称的无创建函数错误。
//
// 返回的错误可以通过 errors.Is(err, ErrNoCreator) 进行判断。
func NewErrNoCreator(name string) error {
	return fmt.Errorf("singleton %q: %w", name, ErrNoCreator)
}

// NewErrCreateFailed 创建一个包含单例名称和原始错误的构造失败错误。
//
// 返回的错误可以通过 errors.Is(err, ErrCreateFailed) 进行判断，
// 同时也可以通过 errors.Is / errors.As 判断原始错误。
func NewErrCreateFailed(name string, err error) error {
	return fmt.Errorf("create singleton %q failed: %w: %w", name, ErrCreateFailed, err)
}
