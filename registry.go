package texspec

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/gogpu/gputypes"
)

// PayloadDecoder reads a backend payload written by TextureInfoData.Serialize.
type PayloadDecoder func(r io.Reader) (TextureInfoData, error)

// backendEntry is a registered backend.
type backendEntry struct {
	name   string
	decode PayloadDecoder
}

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[gputypes.Backend]backendEntry)
)

// RegisterBackend registers the name and payload decoder of a backend.
// This is typically called from init functions in backend packages.
// If the backend is already registered, it is replaced.
func RegisterBackend(backend gputypes.Backend, name string, decode PayloadDecoder) {
	registryMu.Lock()
	backends[backend] = backendEntry{name: name, decode: decode}
	registryMu.Unlock()

	Logger().Info("texspec: backend registered", "backend", name)
}

// UnregisterBackend removes a backend from the registry.
// This is useful for testing.
func UnregisterBackend(backend gputypes.Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, backend)
}

// IsRegistered reports whether a backend is registered.
func IsRegistered(backend gputypes.Backend) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[backend]
	return ok
}

// Available returns the registered backends in ascending order.
func Available() []gputypes.Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	list := make([]gputypes.Backend, 0, len(backends))
	for b := range backends {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// BackendName returns the registered name of a backend, or "backend(N)"
// if it is not registered.
func BackendName(backend gputypes.Backend) string {
	registryMu.RLock()
	e, ok := backends[backend]
	registryMu.RUnlock()
	if !ok {
		return fmt.Sprintf("backend(%d)", backend)
	}
	return e.name
}

// decoderFor returns the payload decoder of a backend.
func decoderFor(backend gputypes.Backend) (PayloadDecoder, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := backends[backend]
	if !ok || e.decode == nil {
		return nil, false
	}
	return e.decode, true
}
