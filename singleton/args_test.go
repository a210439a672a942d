package singleton

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// ============== Pair 测试 ==============

func TestPair_Get_Concurrent(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	sum := NewPair(func(x, y int) (int, error) {
		calls.Inc()
		return x + y, nil
	})

	results := make([]int, 50)
	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			v, err := sum.Get(2, 3)
			results[i] = v
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, v := range results {
		require.Equal(t, 5, v)
	}
	require.EqualValues(t, 1, calls.Load())
}

func TestPair_Get_MatchesCoreHolder(t *testing.T) {
	t.Parallel()

	f := func(x, y int) (int, error) { return x + y, nil }

	core := New(func(args Args2[int, int]) (int, error) {
		return f(args.First, args.Second)
	})
	want, err := core.Get(Args2[int, int]{First: 2, Second: 3})
	require.NoError(t, err)

	p := NewPair(f)
	got, err := p.Get(2, 3)
	require.NoError(t, err)
	require.Equal(t, want, got)

	v, ok := p.Holder().Load()
	require.True(t, ok)
	require.Equal(t, got, v)
}

func TestPair_Get_IgnoresLaterArguments(t *testing.T) {
	t.Parallel()

	p := NewPair(func(name string, n int) (string, error) {
		return fmt.Sprintf("%s-%d", name, n), nil
	})

	_, ok := p.Load()
	require.False(t, ok)

	require.Equal(t, "a-1", p.MustGet("a", 1))
	require.Equal(t, "a-1", p.MustGet("b", 2))

	v, ok := p.Load()
	require.True(t, ok)
	require.Equal(t, "a-1", v)
}

func TestPair_Get_ErrorIsRetryable(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	p := NewPair(func(x, y int) (int, error) {
		if calls.Inc() == 1 {
			return 0, errors.New("not yet")
		}
		return x * y, nil
	})

	_, err := p.Get(2, 3)
	require.ErrorIs(t, err, ErrCreateFailed)
	require.False(t, p.Holder().Initialized())

	v, err := p.Get(4, 5)
	require.NoError(t, err)
	require.Equal(t, 20, v)
}

func TestPair_MustGet_Panics(t *testing.T) {
	t.Parallel()

	p := NewPair(func(int, int) (int, error) {
		return 0, errors.New("always")
	})
	require.Panics(t, func() {
		p.MustGet(1, 1)
	})
}

// ============== Triple 测试 ==============

func TestTriple_Get(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	tr := NewTriple(func(host string, port int, tls bool) (string, error) {
		calls.Inc()
		scheme := "http"
		if tls {
			scheme = "https"
		}
		return fmt.Sprintf("%s://%s:%d", scheme, host, port), nil
	}, WithName("endpoint"))

	var g errgroup.Group
	for i := range 100 {
		g.Go(func() error {
			v, err := tr.Get("localhost", 8443, true)
			if err != nil {
				return err
			}
			if v != "https://localhost:8443" {
				return fmt.Errorf("goroutine %d got %q", i, v)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.EqualValues(t, 1, calls.Load())

	require.Equal(t, "https://localhost:8443", tr.MustGet("example.com", 80, false))
	require.True(t, tr.Holder().Initialized())
	require.Equal(t, "endpoint", tr.Holder().Name())

	v, ok := tr.Load()
	require.True(t, ok)
	require.Equal(t, "https://localhost:8443", v)
}

func TestTriple_Get_MatchesCoreHolder(t *testing.T) {
	t.Parallel()

	f := func(a, b, c int) (int, error) { return a*100 + b*10 + c, nil }

	core := New(func(args Args3[int, int, int]) (int, error) {
		return f(args.First, args.Second, args.Third)
	})
	want := core.MustGet(Args3[int, int, int]{First: 1, Second: 2, Third: 3})

	got := NewTriple(f).MustGet(1, 2, 3)
	require.Equal(t, want, got)
	require.Equal(t, 123, got)
}

// ============== Value 测试 ==============

func TestValue_Get(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	v := NewValue(func() (*testResource, error) {
		calls.Inc()
		return &testResource{Ready: true}, nil
	})

	_, ok := v.Load()
	require.False(t, ok)

	var g errgroup.Group
	results := make([]*testResource, 100)
	for i := range results {
		g.Go(func() error {
			res, err := v.Get()
			results[i] = res
			return err
		})
	}
	require.NoError(t, g.Wait())
	require.EqualValues(t, 1, calls.Load())
	for _, res := range results {
		require.Same(t, results[0], res)
	}
	require.Same(t, results[0], v.MustGet())
	require.True(t, v.Holder().Initialized())
}

// ============== 适配器空创建函数测试 ==============

func TestAdapters_NilCreator(t *testing.T) {
	t.Parallel()

	_, err := NewValue[int](nil).Get()
	require.ErrorIs(t, err, ErrNoCreator)

	_, err = NewPair[int, int, int](nil).Get(1, 2)
	require.ErrorIs(t, err, ErrNoCreator)

	_, err = NewTriple[int, int, int, int](nil).Get(1, 2, 3)
	require.ErrorIs(t, err, ErrNoCreator)
}
