package registry

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/namekit/pkg/namekit/natsort"
	"github.com/randalmurphal/namekit/pkg/namekit/observability"
)

// Registry is an immutable index of entities by unique name.
// It is safe for concurrent use without locking.
type Registry[T Named] struct {
	id      string
	entries map[string]T
	order   []string
	renames []Rename
	logger  *slog.Logger
	metrics observability.MetricsRecorder
}

// Rename records an entity whose declared name was replaced during the build.
type Rename struct {
	// Position is the entity's index in the input slice.
	Position int
	// Declared is the name the entity had before the build ("" if unset).
	Declared string
	// Resolved is the name it was registered under.
	Resolved string
}

// New builds a registry from items. See Build.
func New[T Named](items []T, opts ...Option) *Registry[T] {
	return Build(context.Background(), items, opts...)
}

// Build indexes items by name, in input order.
//
// An entity with an empty name is given the name of its type. An entity
// whose name is already taken gets the first free name of the form
// name+"1", name+"2", ... Both cases call SetName on the entity, so the
// caller's objects carry the name they are registered under. Suffixed
// names skip any name another entity declared, so "a", "a", "a1" resolves
// to a, a2, a1.
//
// ctx only carries the build span and metrics. Build panics if an item is nil.
func Build[T Named](ctx context.Context, items []T, opts ...Option) *Registry[T] {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Registry[T]{
		id:      uuid.NewString(),
		entries: make(map[string]T, len(items)),
		order:   make([]string, 0, len(items)),
		metrics: cfg.metrics,
	}
	r.logger = observability.EnrichLogger(cfg.logger, r.id)

	// Declared names are reserved up front so a suffixed duplicate never
	// takes a name another entity declared.
	reserved := make(map[string]int, len(items))
	for i, item := range items {
		if isNil(item) {
			panic(fmt.Sprintf("registry: nil entity at position %d", i))
		}
		if name := item.Name(); name != "" {
			if _, dup := reserved[name]; !dup {
				reserved[name] = i
			}
		}
	}

	// next holds the lowest suffix per base that may still be free.
	next := make(map[string]int)

	done := observability.TimedOperation()
	ctx, span := cfg.spans.StartBuildSpan(ctx, r.id, len(items))

	for i, item := range items {
		declared := item.Name()
		base := declared
		if base == "" {
			base = TypeName(item)
		}

		resolved := base
		if !r.free(resolved, i, reserved) {
			start, ok := next[base]
			if !ok {
				start = cfg.suffixStart
			}
			var n int
			resolved, n = r.probe(base, start, i, reserved)
			next[base] = n + 1
		}

		if resolved != declared {
			item.SetName(resolved)
			r.renames = append(r.renames, Rename{Position: i, Declared: declared, Resolved: resolved})
			observability.LogNameResolved(r.logger, i, declared, resolved)
			cfg.spans.AddSpanEvent(ctx, "name.resolved",
				attribute.Int("position", i),
				attribute.String("declared", declared),
				attribute.String("resolved", resolved),
			)
		}

		r.entries[resolved] = item
		r.order = append(r.order, resolved)
	}

	elapsed := done()
	cfg.spans.EndSpanWithError(span, nil)
	cfg.metrics.RecordBuild(ctx, len(r.order), len(r.renames), elapsed)
	observability.LogRegistryBuilt(r.logger, len(r.order), len(r.renames), observability.Milliseconds(elapsed))

	return r
}

// free reports whether name can be given to the entity at position pos:
// nobody holds it yet and no other entity declared it.
func (r *Registry[T]) free(name string, pos int, reserved map[string]int) bool {
	if _, taken := r.entries[name]; taken {
		return false
	}
	owner, ok := reserved[name]
	return !ok || owner == pos
}

// probe returns the first free base+N for N >= start, and N.
// A candidate rejected once stays taken for every later entity with the
// same base, so Build resumes each base where its last probe stopped.
func (r *Registry[T]) probe(base string, start, pos int, reserved map[string]int) (string, int) {
	for n := start; ; n++ {
		if candidate := base + strconv.Itoa(n); r.free(candidate, pos, reserved) {
			return candidate, n
		}
	}
}

// Lookup returns the entity registered under name.
// Names match exactly and case-sensitively. An empty or unknown name returns
// a *LookupError matching ErrInvalidArgument.
func (r *Registry[T]) Lookup(name string) (T, error) {
	var zero T
	if name == "" {
		err := &LookupError{Reason: ErrEmptyName}
		r.miss(name, err)
		return zero, err
	}
	v, ok := r.entries[name]
	if !ok {
		err := &LookupError{Name: name, Reason: ErrNotFound}
		r.miss(name, err)
		return zero, err
	}
	r.metrics.RecordLookup(context.Background(), true)
	return v, nil
}

func (r *Registry[T]) miss(name string, err error) {
	r.metrics.RecordLookup(context.Background(), false)
	observability.LogLookupMiss(r.logger, name, err)
}

// TryLookup returns the entity registered under name and whether it exists.
// It never fails; a missing name yields the zero value and false.
func (r *Registry[T]) TryLookup(name string) (T, bool) {
	v, ok := r.entries[name]
	r.metrics.RecordLookup(context.Background(), ok)
	return v, ok
}

// MustLookup returns the entity registered under name, panicking if absent.
func (r *Registry[T]) MustLookup(name string) T {
	v, err := r.Lookup(name)
	if err != nil {
		panic("registry: " + err.Error())
	}
	return v
}

// Has returns true if an entity is registered under name.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Len returns the number of entries, which always equals the number of
// items the registry was built from.
func (r *Registry[T]) Len() int {
	return len(r.order)
}

// Names returns the registered names in input order.
func (r *Registry[T]) Names() []string {
	return slices.Clone(r.order)
}

// SortedNames returns the registered names in natural order
// ("x2" before "x10").
func (r *Registry[T]) SortedNames() []string {
	return natsort.Sorted(r.order)
}

// Range calls fn for each entry in input order until fn returns false.
func (r *Registry[T]) Range(fn func(name string, v T) bool) {
	for _, name := range r.order {
		if !fn(name, r.entries[name]) {
			return
		}
	}
}

// Renamed returns the renames performed during the build, in input order.
func (r *Registry[T]) Renamed() []Rename {
	return slices.Clone(r.renames)
}

// ID returns the registry's unique instance ID, as used in logs and spans.
func (r *Registry[T]) ID() string {
	return r.id
}
