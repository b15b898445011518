package renderer

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLauncher hands out handles backed by plain cancellable contexts so the
// lifecycle can be tested without a real browser.
type fakeLauncher struct {
	launched int
	fail     error
}

func (f *fakeLauncher) launch() (*browserHandle, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.launched++
	ctx, cancel := context.WithCancel(context.Background())
	return &browserHandle{ctx: ctx, cancel: cancel, allocCancel: func() {}}, nil
}

func newTestService(t *testing.T, maxUses int) (*Service, *fakeLauncher) {
	t.Helper()
	s := NewService(Config{MaxBrowserUses: maxUses})
	f := &fakeLauncher{}
	s.launch = f.launch
	return s, f
}

func TestRenderRejectsEmptyHTML(t *testing.T) {
	s, f := newTestService(t, 10)

	for _, in := range []string{"", "   ", "\n\t"} {
		_, err := s.Render(context.Background(), in, Options{})
		var rerr *RenderError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, ErrCodeInvalidHTML, rerr.Code)
	}
	assert.Zero(t, f.launched, "invalid input must not launch a browser")
}

func TestAcquireLaunchesLazily(t *testing.T) {
	s, f := newTestService(t, 10)
	assert.Zero(t, f.launched)

	h, err := s.acquire()
	require.NoError(t, err)
	assert.Equal(t, 1, f.launched)
	assert.Equal(t, 1, h.uses)
	assert.Equal(t, 1, h.refs)
	s.release(h)
	assert.Zero(t, h.refs)
}

func TestAcquireReusesBrowserUntilMaxUses(t *testing.T) {
	s, f := newTestService(t, 3)

	var first *browserHandle
	for i := 0; i < 3; i++ {
		h, err := s.acquire()
		require.NoError(t, err)
		if first == nil {
			first = h
		}
		assert.Same(t, first, h, "render %d should reuse the browser", i)
		s.release(h)
	}
	assert.Equal(t, 1, f.launched)

	// Fourth acquire crosses the limit and recycles.
	h, err := s.acquire()
	require.NoError(t, err)
	assert.NotSame(t, first, h)
	assert.Equal(t, 2, f.launched)
	assert.True(t, first.retired)
	assert.Error(t, first.ctx.Err(), "retired idle browser must be closed")
	s.release(h)
}

func TestRecycleWaitsForInFlightRenders(t *testing.T) {
	s, _ := newTestService(t, 1)

	inflight, err := s.acquire()
	require.NoError(t, err)

	// Limit reached, so this acquire retires the first handle while the
	// first render is still holding it.
	next, err := s.acquire()
	require.NoError(t, err)
	assert.NotSame(t, inflight, next)
	assert.True(t, inflight.retired)
	assert.NoError(t, inflight.ctx.Err(), "retired browser stays alive while referenced")

	s.release(inflight)
	assert.Error(t, inflight.ctx.Err(), "last release closes the retired browser")

	s.release(next)
	assert.NoError(t, next.ctx.Err(), "current browser stays alive between renders")
}

func TestAcquireReleaseConcurrent(t *testing.T) {
	const (
		workers          = 20
		rendersPerWorker = 25
		maxUses          = 7
	)
	s, f := newTestService(t, maxUses)

	var (
		seenMu sync.Mutex
		seen   = make(map[*browserHandle]struct{})
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rendersPerWorker; i++ {
				h, err := s.acquire()
				if err != nil {
					t.Errorf("acquire: %v", err)
					return
				}
				if h.ctx.Err() != nil {
					t.Error("acquired an already-closed browser")
				}
				seenMu.Lock()
				seen[h] = struct{}{}
				seenMu.Unlock()

				runtime.Gosched()
				// The handle may have been retired by a concurrent
				// rotation, but it must stay alive while we hold it.
				if h.ctx.Err() != nil {
					t.Error("browser closed while a render held it")
				}
				s.release(h)
			}
		}()
	}
	wg.Wait()

	// Every handle serves exactly maxUses renders before rotation, so the
	// launch count is fixed regardless of interleaving.
	total := workers * rendersPerWorker
	wantLaunches := (total + maxUses - 1) / maxUses
	assert.Equal(t, wantLaunches, f.launched)
	assert.Len(t, seen, f.launched)

	// With everything released, only the current handle is still alive.
	for h := range seen {
		if h == s.handle {
			assert.NoError(t, h.ctx.Err())
			continue
		}
		assert.True(t, h.retired)
		assert.Error(t, h.ctx.Err(), "retired handle must be closed once unreferenced")
	}
}

func TestAcquireRelaunchesAfterBrowserDeath(t *testing.T) {
	s, f := newTestService(t, 10)

	h, err := s.acquire()
	require.NoError(t, err)
	s.release(h)

	// Simulate the browser process dying.
	h.cancel()

	h2, err := s.acquire()
	require.NoError(t, err)
	assert.NotSame(t, h, h2)
	assert.Equal(t, 2, f.launched)
	s.release(h2)
}

func TestAcquireSurfacesLaunchFailure(t *testing.T) {
	s, f := newTestService(t, 10)
	f.fail = errors.New("exec: chrome not found")

	_, err := s.acquire()
	require.Error(t, err)

	// A later acquire retries instead of caching the failure.
	f.fail = nil
	h, err := s.acquire()
	require.NoError(t, err)
	s.release(h)
}

func TestShutdownClosesIdleBrowser(t *testing.T) {
	s, _ := newTestService(t, 10)

	h, err := s.acquire()
	require.NoError(t, err)
	s.release(h)

	s.Shutdown()
	assert.Error(t, h.ctx.Err())

	// Rendering after shutdown starts over with a fresh browser.
	h2, err := s.acquire()
	require.NoError(t, err)
	assert.NotSame(t, h, h2)
	s.release(h2)
}

func TestShutdownWaitsForInFlightRender(t *testing.T) {
	s, _ := newTestService(t, 10)

	h, err := s.acquire()
	require.NoError(t, err)

	s.Shutdown()
	assert.NoError(t, h.ctx.Err(), "in-flight render keeps the browser alive")

	s.release(h)
	assert.Error(t, h.ctx.Err())
}

func TestClassifyTimeout(t *testing.T) {
	s, _ := newTestService(t, 10)
	h, err := s.acquire()
	require.NoError(t, err)
	defer s.release(h)

	runCtx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-runCtx.Done()

	err = s.classify(h, runCtx, runCtx.Err())
	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrCodeRenderTimeout, rerr.Code)
	assert.True(t, rerr.IsTimeout())
}

func TestClassifyBrowserDeath(t *testing.T) {
	s, _ := newTestService(t, 10)
	h, err := s.acquire()
	require.NoError(t, err)
	defer s.release(h)

	h.cancel()
	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = s.classify(h, runCtx, errors.New("websocket closed"))
	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrCodeBrowserFailed, rerr.Code)
}

func TestClassifyGenericFailure(t *testing.T) {
	s, _ := newTestService(t, 10)
	h, err := s.acquire()
	require.NoError(t, err)
	defer s.release(h)

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = s.classify(h, runCtx, errors.New("print failed"))
	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrCodeRenderFailed, rerr.Code)
	assert.NotEmpty(t, rerr.Error())
}

func TestOptionsDefaults(t *testing.T) {
	got := Options{}.withDefaults()
	assert.InDelta(t, 8.27, got.PaperWidth, 0.001)
	assert.InDelta(t, 11.7, got.PaperHeight, 0.001)

	custom := Options{PaperWidth: 5, PaperHeight: 7}.withDefaults()
	assert.Equal(t, 5.0, custom.PaperWidth)
	assert.Equal(t, 7.0, custom.PaperHeight)
}
