package multipart

import (
	"os"
	"runtime"
	"sync"
)

// fileGuard owns a temp file's lifetime: it removes pathname unless
// disarmed. A finalizer is attached as a backstop for parts a caller
// drops without calling Part.Close/Part.Keep, per spec.md §5/§9; the
// deterministic paths (discardForm, Part.Close) are expected to run first
// in normal operation.
type fileGuard struct {
	mu       sync.Mutex
	pathname string
	armed    bool
}

func newFileGuard(pathname string) *fileGuard {
	g := &fileGuard{pathname: pathname, armed: true}
	runtime.SetFinalizer(g, (*fileGuard).finalize)
	return g
}

// release removes pathname if still armed, then disarms.
func (g *fileGuard) release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.armed {
		return
	}
	g.armed = false
	runtime.SetFinalizer(g, nil)
	os.Remove(g.pathname)
}

// disarm transfers ownership of the temp file to the caller without
// removing it.
func (g *fileGuard) disarm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.armed = false
	runtime.SetFinalizer(g, nil)
}

func (g *fileGuard) finalize() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.armed {
		os.Remove(g.pathname)
		g.armed = false
	}
}
