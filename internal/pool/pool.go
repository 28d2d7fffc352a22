// Package pool recycles the buffers a parse allocates, chiefly the string
// accumulators behind array-kind values. ParseResult.Dispose returns its
// buffers here.
package pool

import "sync"

// Pool is a generic, type-safe object pool with an optional reset hook
// applied before reuse.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// NewPool creates a pool with the given factory function.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool whose reset hook runs on every Get.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// StringSlicePool pools string slices, resetting length but keeping capacity
// across uses.
type StringSlicePool struct {
	*Pool[[]string]
}

// NewStringSlicePool creates a string slice pool with the given default
// capacity for fresh slices.
func NewStringSlicePool(defaultCap int) *StringSlicePool {
	return &StringSlicePool{
		Pool: NewPoolWithReset(
			func() *[]string {
				slice := make([]string, 0, defaultCap)
				return &slice
			},
			func(slice *[]string) {
				*slice = (*slice)[:0]
			},
		),
	}
}

// GlobalStringSlicePool backs the parser's array accumulators.
var GlobalStringSlicePool = NewStringSlicePool(8)

func init() {
	// Pre-warm for the common case of a single open accumulator.
	for i := 0; i < 3; i++ {
		slice := GlobalStringSlicePool.Get()
		GlobalStringSlicePool.Put(slice)
	}
}

// GetStringSlice retrieves an accumulator from the global pool.
func GetStringSlice() *[]string {
	return GlobalStringSlicePool.Get()
}

// PutStringSlice returns an accumulator to the global pool.
func PutStringSlice(slice *[]string) {
	GlobalStringSlicePool.Put(slice)
}
