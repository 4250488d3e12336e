// Package status keeps cell diagnostics as named atomic metrics
package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Registry maps metric names to counters and text values
// Lookups lock; callers cache the returned pointers and update them lock-free
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	texts    map[string]*Text
}

// Text is an atomically replaced string value
// Zero value reads as ""
type Text struct {
	ptr atomic.Pointer[string]
}

func (t *Text) Store(v string) { t.ptr.Store(&v) }

func (t *Text) Load() string {
	if p := t.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		texts:    make(map[string]*Text),
	}
}

// Counter returns the counter for key, creating it on first use
func (r *Registry) Counter(key string) *atomic.Int64 {
	return getOrCreate(&r.mu, r.counters, key)
}

// Text returns the text value for key, creating it on first use
func (r *Registry) Text(key string) *Text {
	return getOrCreate(&r.mu, r.texts, key)
}

func getOrCreate[T any](mu *sync.RWMutex, m map[string]*T, key string) *T {
	mu.RLock()
	if ptr, ok := m[key]; ok {
		mu.RUnlock()
		return ptr
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	// Double-check after acquiring write lock
	if ptr, ok := m[key]; ok {
		return ptr
	}
	ptr := new(T)
	m[key] = ptr
	return ptr
}

// Counters returns a sorted snapshot of all counters
func (r *Registry) Counters() []Entry[int64] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry[int64], 0, len(r.counters))
	for k, v := range r.counters {
		out = append(out, Entry[int64]{Key: k, Value: v.Load()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Texts returns a sorted snapshot of all text values
func (r *Registry) Texts() []Entry[string] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry[string], 0, len(r.texts))
	for k, v := range r.texts {
		out = append(out, Entry[string]{Key: k, Value: v.Load()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Entry is one snapshot row
type Entry[T any] struct {
	Key   string
	Value T
}
