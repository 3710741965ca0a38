// seehuhn.de/go/raster - colour conversion core for raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package memory provides scoped scratch allocations for bulk pixel
// operations.
//
// A [Pool] hands out [Buffer] values which must be released when the
// caller is done with them:
//
//	buf := memory.Allocate[pixel.RGBA32](pool, n)
//	defer buf.Release()
//	scratch := buf.Data()
//
// Released storage is recycled through one [sync.Pool] per element type, so
// steady-state conversions do not allocate.
package memory

import (
	"reflect"
	"sync"
)

// DefaultMaxRetained is the largest number of elements a [Pool] keeps for
// reuse, unless configured otherwise.
const DefaultMaxRetained = 1 << 20

// Pool recycles scratch slices.  A Pool is safe for concurrent use.
// The zero value is ready to use.
type Pool struct {
	// MaxRetained limits the length of slices kept for reuse.  Larger
	// buffers are handed to the garbage collector on release.
	// If this is zero, DefaultMaxRetained is used.
	MaxRetained int

	pools sync.Map // reflect.Type -> *sync.Pool
}

// NewPool returns a new Pool with default settings.
func NewPool() *Pool {
	return &Pool{MaxRetained: DefaultMaxRetained}
}

// Buffer owns a contiguous slice of T obtained from a [Pool].
type Buffer[T any] struct {
	data  []T
	store *[]T
	pool  *sync.Pool
}

// Allocate returns a buffer holding n zero-valued elements of type T.
//
// If p is nil, the storage is allocated directly and Release only drops the
// reference.
func Allocate[T any](p *Pool, n int) *Buffer[T] {
	if n < 0 {
		panic("memory: negative allocation size")
	}
	if p == nil {
		return &Buffer[T]{data: make([]T, n)}
	}

	sp := p.typePool(reflect.TypeFor[T]())
	store, _ := sp.Get().(*[]T)
	if store == nil || cap(*store) < n {
		s := make([]T, n)
		store = &s
	}
	data := (*store)[:n]
	clear(data)

	b := &Buffer[T]{data: data, store: store}
	if n <= p.maxRetained() {
		b.pool = sp
	}
	return b
}

// Data returns the storage owned by the buffer.
// The slice must not be used after Release has been called.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Release returns the storage to its pool.  Calling Release more than once
// is allowed; only the first call has an effect.
func (b *Buffer[T]) Release() {
	if b.store == nil {
		b.data = nil
		return
	}
	if b.pool != nil {
		b.pool.Put(b.store)
	}
	b.data = nil
	b.store = nil
	b.pool = nil
}

func (p *Pool) typePool(t reflect.Type) *sync.Pool {
	if sp, ok := p.pools.Load(t); ok {
		return sp.(*sync.Pool)
	}
	sp, _ := p.pools.LoadOrStore(t, &sync.Pool{})
	return sp.(*sync.Pool)
}

func (p *Pool) maxRetained() int {
	if p.MaxRetained > 0 {
		return p.MaxRetained
	}
	return DefaultMaxRetained
}
