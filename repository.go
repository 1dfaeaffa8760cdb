package layout

import (
	"sync"
	"sync/atomic"
)

// Hashable is the constraint for objects that can be interned.
type Hashable[T any] interface {
	Hash() uint64
	Equal(T) bool
}

// repoEntry is one interned object. Entries are never removed from their
// repository, so a Ptr stays valid as long as the repository is reachable.
type repoEntry[T Hashable[T]] struct {
	value T
	id    uint64
	repo  *Repository[T]
}

// entryIDs hands out process-wide unique entry ids so Ptr values from
// different repositories still have a total order.
var entryIDs atomic.Uint64

// Ptr is a non-owning reference to an object interned in a Repository.
// The zero value is the nil reference.
type Ptr[T Hashable[T]] struct {
	e *repoEntry[T]
}

// IsNil reports whether p refers to nothing.
func (p Ptr[T]) IsNil() bool {
	return p.e == nil
}

// Get returns the referenced object. It panics on a nil Ptr.
func (p Ptr[T]) Get() T {
	return p.e.value
}

// ID returns the unique id of the referenced entry, or 0 for nil.
func (p Ptr[T]) ID() uint64 {
	if p.e == nil {
		return 0
	}
	return p.e.id
}

// Repository returns the repository owning the referenced object.
func (p Ptr[T]) Repository() *Repository[T] {
	if p.e == nil {
		return nil
	}
	return p.e.repo
}

// Less orders references by entry id.
func (p Ptr[T]) Less(o Ptr[T]) bool {
	return p.ID() < o.ID()
}

// Repository interns objects so that equal objects share one instance.
// References into a repository are Ptr values.
//
// Repository is safe for concurrent use.
type Repository[T Hashable[T]] struct {
	mu      sync.Mutex
	buckets map[uint64][]*repoEntry[T]
	size    int
}

// NewRepository creates an empty repository.
func NewRepository[T Hashable[T]]() *Repository[T] {
	return &Repository[T]{buckets: make(map[uint64][]*repoEntry[T])}
}

// Intern returns the reference to the stored object equal to v,
// storing v first if no such object exists yet.
func (r *Repository[T]) Intern(v T) Ptr[T] {
	h := v.Hash()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.buckets[h] {
		if e.value.Equal(v) {
			return Ptr[T]{e: e}
		}
	}
	e := &repoEntry[T]{value: v, id: entryIDs.Add(1), repo: r}
	r.buckets[h] = append(r.buckets[h], e)
	r.size++
	return Ptr[T]{e: e}
}

// Len returns the number of distinct objects stored.
func (r *Repository[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// ShapeRepository bundles the repositories a layout shares among all
// shape containers of its cells.
type ShapeRepository struct {
	Polygons       *Repository[Polygon]
	SimplePolygons *Repository[SimplePolygon]
	Paths          *Repository[Path]
	Texts          *Repository[Text]
}

// NewShapeRepository creates a set of empty repositories.
func NewShapeRepository() *ShapeRepository {
	return &ShapeRepository{
		Polygons:       NewRepository[Polygon](),
		SimplePolygons: NewRepository[SimplePolygon](),
		Paths:          NewRepository[Path](),
		Texts:          NewRepository[Text](),
	}
}
