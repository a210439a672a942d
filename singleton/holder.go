package singleton

import (
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Creator 是单例的创建函数类型。
//
// Creator 只会在首次成功构造时被调用一次，参数来自真正执行构造的那次 Get 调用。
// 返回非 nil 的 error 表示构造失败，Holder 保持未初始化状态，后续调用可以重试。
//
// 类型参数:
//   - A: 创建参数类型
//   - T: 单例值类型
type Creator[A any, T any] func(arg A) (T, error)

// Holder 持有一个创建函数，并在首次访问时惰性构造单例值。
//
// Holder 的零值不可用，请使用 New 创建。
// Holder 创建后不应被复制。
//
// 类型参数:
//   - A: 创建参数类型
//   - T: 单例值类型
type Holder[A any, T any] struct {
	mu       sync.Mutex        // mu 只保护当前 Holder 的构造过程，不同 Holder 之间互不竞争
	instance atomic.Pointer[T] // instance 为 nil 表示尚未构造，快速路径只通过原子读访问
	creator  Creator[A, T]     // creator 只在持有 mu 时读写，构造成功后置为 nil
	opts     options           // opts 在 New 之后不再变化
}

// New 创建一个新的 Holder。
//
// 参数:
//   - creator: 单例创建函数（为 nil 时 Get 返回 ErrNoCreator）
//   - opts: 可选配置，见 WithName、WithLogger
func New[A any, T any](creator Creator[A, T], opts ...Option) *Holder[A, T] {
	return &Holder[A, T]{
		creator: creator,
		opts:    newOptions(opts),
	}
}

// Get 返回单例值，首次调用时触发构造。
//
// 实现采用双重检查锁定（Double-Checked Locking）模式：
//  1. 不加锁原子读取 instance，已构造则直接返回
//  2. 未构造时获取当前 Holder 的互斥锁
//  3. 持锁后再次检查 instance，其他 goroutine 可能已完成构造
//  4. 仍未构造则调用 creator，原子写入结果并释放 creator
//
// 只有真正执行构造的调用所传入的 arg 会被使用，其余调用的 arg 会被忽略。
//
// 可能返回的错误:
//   - ErrNoCreator: Holder 没有创建函数
//   - ErrCreateFailed: 创建函数返回错误（可通过 errors.Is 判断原始错误）
func (h *Holder[A, T]) Get(arg A) (T, error) {
	// 快速路径：无锁
	if p := h.instance.Load(); p != nil {
		return *p, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// 双重检查
	if p := h.instance.Load(); p != nil {
		return *p, nil
	}

	var zero T
	if h.creator == nil {
		return zero, NewErrNoCreator(h.opts.name)
	}

	log := h.opts.logger.WithValues("name", h.opts.name)
	log.V(1).Info("constructing singleton")
	start := time.Now()

	val, err := h.creator(arg)
	if err != nil {
		log.Error(err, "singleton construction failed")
		return zero, NewErrCreateFailed(h.opts.name, err)
	}

	h.instance.Store(&val)
	h.creator = nil
	log.V(1).Info("singleton constructed", "elapsed", time.Since(start))
	return val, nil
}

// MustGet 返回单例值，如果构造失败则触发 panic。
//
// 此方法是 Get 的便捷封装，适用于确定构造一定成功的场景。
func (h *Holder[A, T]) MustGet(arg A) T {
	val, err := h.Get(arg)
	if err != nil {
		panic(err)
	}
	return val
}

// Load 返回已构造的单例值，不会触发构造。
//
// 尚未构造时返回 T 的零值和 false。
func (h *Holder[A, T]) Load() (T, bool) {
	if p := h.instance.Load(); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Initialized 报告单例是否已构造完成。
func (h *Holder[A, T]) Initialized() bool {
	return h.instance.Load() != nil
}

// Name 返回通过 WithName 配置的名称。
func (h *Holder[A, T]) Name() string {
	return h.opts.name
}
