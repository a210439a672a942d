package singleton

// Args2 是双参数创建函数使用的复合参数。
type Args2[A any, B any] struct {
	First  A
	Second B
}

// Args3 是三参数创建函数使用的复合参数。
type Args3[A any, B any, C any] struct {
	First  A
	Second B
	Third  C
}

// Value 是无参数单例，使用 struct{} 作为核心 Holder 的参数类型。
type Value[T any] struct {
	h *Holder[struct{}, T]
}

// NewValue 创建一个无参数单例。
func NewValue[T any](creator func() (T, error), opts ...Option) *Value[T] {
	var c Creator[struct{}, T]
	if creator != nil {
		c = func(struct{}) (T, error) { return creator() }
	}
	return &Value[T]{h: New(c, opts...)}
}

// Get 返回单例值，首次调用时触发构造。
func (v *Value[T]) Get() (T, error) { return v.h.Get(struct{}{}) }

// MustGet 返回单例值，如果构造失败则触发 panic。
func (v *Value[T]) MustGet() T { return v.h.MustGet(struct{}{}) }

// Load 返回已构造的单例值，不会触发构造。
func (v *Value[T]) Load() (T, bool) { return v.h.Load() }

// Holder 返回底层的核心 Holder。
func (v *Value[T]) Holder() *Holder[struct{}, T] { return v.h }

// Pair 是双参数单例。
//
// Get 会把 (a, b) 打包为 Args2 后直接委托给核心 Holder，
// 自身不持有任何额外状态，也不加锁。
type Pair[A any, B any, T any] struct {
	h *Holder[Args2[A, B], T]
}

// NewPair 创建一个双参数单例。
func NewPair[A any, B any, T any](creator func(A, B) (T, error), opts ...Option) *Pair[A, B, T] {
	var c Creator[Args2[A, B], T]
	if creator != nil {
		c = func(args Args2[A, B]) (T, error) {
			return creator(args.First, args.Second)
		}
	}
	return &Pair[A, B, T]{h: New(c, opts...)}
}

// Get 返回单例值，首次调用时使用 (a, b) 触发构造。
//
// 构造完成后传入的参数会被忽略。
func (p *Pair[A, B, T]) Get(a A, b B) (T, error) {
	return p.h.Get(Args2[A, B]{First: a, Second: b})
}

// MustGet 返回单例值，如果构造失败则触发 panic。
func (p *Pair[A, B, T]) MustGet(a A, b B) T {
	return p.h.MustGet(Args2[A, B]{First: a, Second: b})
}

// Load 返回已构造的单例值，不会触发构造。
func (p *Pair[A, B, T]) Load() (T, bool) { return p.h.Load() }

// Holder 返回底层的核心 Holder。
func (p *Pair[A, B, T]) Holder() *Holder[Args2[A, B], T] { return p.h }

// Triple 是三参数单例，行为与 Pair 相同。
type Triple[A any, B any, C any, T any] struct {
	h *Holder[Args3[A, B, C], T]
}

// NewTriple 创建一个三参数单例。
func NewTriple[A any, B any, C any, T any](creator func(A, B, C) (T, error), opts ...Option) *Triple[A, B, C, T] {
	var c Creator[Args3[A, B, C], T]
	if creator != nil {
		c = func(args Args3[A, B, C]) (T, error) {
			return creator(args.First, args.Second, args.Third)
		}
	}
	return &Triple[A, B, C, T]{h: New(c, opts...)}
}

// Get 返回单例值，首次调用时使用 (a, b, c) 触发构造。
func (t *Triple[A, B, C, T]) Get(a A, b B, c C) (T, error) {
	return t.h.Get(Args3[A, B, C]{First: a, Second: b, Third: c})
}

// MustGet 返回单例值，如果构造失败则触发 panic。
func (t *Triple[A, B, C, T]) MustGet(a A, b B, c C) T {
	return t.h.MustGet(Args3[A, B, C]{First: a, Second: b, Third: c})
}

// Load 返回已构造的单例值，不会触发构造。
func (t *Triple[A, B, C, T]) Load() (T, bool) { return t.h.Load() }

// Holder 返回底层的核心 Holder。
func (t *Triple[A, B, C, T]) Holder() *Holder[Args3[A, B, C], T] { return t.h }
