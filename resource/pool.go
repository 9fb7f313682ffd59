package resource

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texspec"
	"github.com/gogpu/texspec/internal/cache"
)

// Allocator creates and destroys backend textures for a Pool.
// vulkan.HALAllocator is the Vulkan implementation.
type Allocator interface {
	// CreateTexture creates a texture of the given size described by info.
	CreateTexture(size gputypes.Extent3D, info texspec.TextureInfo, label string) (texspec.BackendTexture, error)

	// DestroyTexture releases a texture made by CreateTexture.
	DestroyTexture(tex texspec.BackendTexture)
}

// Texture is a pooled texture. It is checked out from its pool by
// FindCompatible or FindOrCreate and handed back with Pool.Return.
type Texture struct {
	tex  texspec.BackendTexture
	key  bucketKey
	pool *Pool

	// Guarded by pool.mu.
	busy bool
	idle *cache.Node[*Texture]
}

// BackendTexture returns the wrapped texture.
func (t *Texture) BackendTexture() texspec.BackendTexture { return t.tex }

// Info returns the TextureInfo the texture was created with. It may carry
// more usage than the request that checked it out.
func (t *Texture) Info() texspec.TextureInfo { return t.tex.Info() }

// Size returns the texture dimensions.
func (t *Texture) Size() gputypes.Extent3D { return t.tex.Size() }

// bucketKey groups textures that may be compatible with each other.
// Textures compatible with a request always share its key.
type bucketKey struct {
	size gputypes.Extent3D
	hash uint64
}

func keyOf(size gputypes.Extent3D, info texspec.TextureInfo) bucketKey {
	return bucketKey{size: size, hash: info.CompatibilityHash()}
}

// Stats reports pool counters.
type Stats struct {
	// Textures is the number of live textures, idle or checked out.
	Textures int
	// Idle is the number of textures waiting for reuse.
	Idle int
	// Hits counts requests served by an existing texture.
	Hits uint64
	// Misses counts requests that found no compatible idle texture.
	Misses uint64
	// Created counts textures made through the allocator.
	Created uint64
	// Evictions counts idle textures destroyed to stay within capacity.
	Evictions uint64
}

// Busy returns the number of checked-out textures.
func (s Stats) Busy() int { return s.Textures - s.Idle }

// Pool reuses textures across requests. A request is served by any idle
// texture of the same size whose TextureInfo is compatible with it, so a
// texture created with extra usage bits can stand in for narrower requests.
//
// Pool is safe for concurrent use.
type Pool struct {
	alloc Allocator
	opts  poolOptions

	mu      sync.Mutex
	buckets map[bucketKey][]*Texture
	idle    *cache.List[*Texture]
	closed  bool
	stats   Stats
}

// NewPool creates a pool that allocates through alloc.
func NewPool(alloc Allocator, opts ...PoolOption) (*Pool, error) {
	if alloc == nil {
		return nil, ErrNilAllocator
	}
	o := defaultPoolOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pool{
		alloc:   alloc,
		opts:    o,
		buckets: make(map[bucketKey][]*Texture),
		idle:    cache.NewList[*Texture](),
	}, nil
}

func validRequest(size gputypes.Extent3D, request texspec.TextureInfo) bool {
	return request.IsValid() && size.Width > 0 && size.Height > 0
}

// FindCompatible checks out an idle texture of the given size that can
// serve request. It reports false if there is none or the pool is closed.
func (p *Pool) FindCompatible(size gputypes.Extent3D, request texspec.TextureInfo) (*Texture, bool) {
	if !validRequest(size, request) {
		return nil, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, false
	}
	t := p.findLocked(size, request)
	if t == nil {
		p.stats.Misses++
		return nil, false
	}
	p.stats.Hits++
	return t, true
}

// findLocked checks out a compatible idle texture, preferring one whose
// info equals the request.
// Caller must hold p.mu.
func (p *Pool) findLocked(size gputypes.Extent3D, request texspec.TextureInfo) *Texture {
	var best *Texture
	for _, t := range p.buckets[keyOf(size, request)] {
		if t.busy || !request.IsCompatible(t.tex.Info()) {
			continue
		}
		// Prefer an exact match so wide textures stay available.
		if request.Equal(t.tex.Info()) {
			best = t
			break
		}
		if best == nil {
			best = t
		}
	}
	if best != nil {
		p.idle.Remove(best.idle)
		best.idle = nil
		best.busy = true
	}
	return best
}

// FindOrCreate checks out a compatible idle texture, or creates one with
// exactly the requested TextureInfo.
func (p *Pool) FindOrCreate(size gputypes.Extent3D, request texspec.TextureInfo, label string) (*Texture, error) {
	if !validRequest(size, request) {
		return nil, fmt.Errorf("%w: %v %dx%d", ErrInvalidRequest, request, size.Width, size.Height)
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if t := p.findLocked(size, request); t != nil {
		p.stats.Hits++
		p.mu.Unlock()
		return t, nil
	}
	p.stats.Misses++
	p.mu.Unlock()

	// Allocation may be slow; other requests proceed meanwhile.
	tex, err := p.alloc.CreateTexture(size, request, label)
	if err != nil {
		return nil, fmt.Errorf("resource: create %q: %w", label, err)
	}

	t := &Texture{
		tex:  tex,
		key:  keyOf(size, tex.Info()),
		pool: p,
		busy: true,
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.alloc.DestroyTexture(tex)
		return nil, ErrPoolClosed
	}
	p.buckets[t.key] = append(p.buckets[t.key], t)
	p.stats.Created++
	p.mu.Unlock()

	p.opts.log().Debug("resource: texture created",
		"label", label,
		"width", size.Width,
		"height", size.Height,
		"info", tex.Info().String())
	return t, nil
}

// Return hands t back for reuse. Once the pool holds more idle textures
// than its capacity, the least recently returned ones are destroyed.
// Textures returned to a closed pool are destroyed immediately.
func (p *Pool) Return(t *Texture) error {
	if t == nil || t.pool != p {
		return ErrNotPooled
	}

	p.mu.Lock()
	if !t.busy {
		p.mu.Unlock()
		return ErrNotPooled
	}
	t.busy = false

	var victims []*Texture
	if p.closed {
		p.removeLocked(t)
		victims = append(victims, t)
	} else {
		t.idle = p.idle.PushFront(t)
		for p.idle.Len() > p.opts.capacity {
			oldest, _ := p.idle.PopBack()
			oldest.idle = nil
			p.removeLocked(oldest)
			p.stats.Evictions++
			victims = append(victims, oldest)
		}
	}
	p.mu.Unlock()

	p.destroy(victims, "evicted")
	return nil
}

// Purge destroys every idle texture. Checked-out textures are unaffected.
func (p *Pool) Purge() {
	p.mu.Lock()
	victims := p.drainIdleLocked()
	p.mu.Unlock()

	p.destroy(victims, "purged")
}

// Close destroys every idle texture and stops handing out textures.
// Checked-out textures are destroyed as they are returned.
// Close is idempotent.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	victims := p.drainIdleLocked()
	p.mu.Unlock()

	p.destroy(victims, "closed")
	return nil
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.stats
	s.Idle = p.idle.Len()
	for _, b := range p.buckets {
		s.Textures += len(b)
	}
	return s
}

// drainIdleLocked detaches every idle texture from the pool.
// Caller must hold p.mu.
func (p *Pool) drainIdleLocked() []*Texture {
	victims := p.idle.Drain()
	for _, t := range victims {
		t.idle = nil
		p.removeLocked(t)
	}
	return victims
}

// removeLocked drops t from its bucket. Caller must hold p.mu.
func (p *Pool) removeLocked(t *Texture) {
	bucket := p.buckets[t.key]
	if i := slices.Index(bucket, t); i >= 0 {
		bucket = slices.Delete(bucket, i, i+1)
	}
	if len(bucket) == 0 {
		delete(p.buckets, t.key)
	} else {
		p.buckets[t.key] = bucket
	}
}

func (p *Pool) destroy(victims []*Texture, reason string) {
	for _, t := range victims {
		p.alloc.DestroyTexture(t.tex)
	}
	if len(victims) > 0 {
		p.opts.log().Debug("resource: textures destroyed", "count", len(victims), "reason", reason)
	}
}
