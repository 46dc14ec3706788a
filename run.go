package weave

import (
	"context"
	"io"
	"os"

	"github.com/kungfusheep/weave/reactive"
)

// Run mounts the tree returned by fn on a new runtime and drives it on
// the configured backend. It re-renders on start, on resize and after
// every batch of effects, and returns when ctx is done or the user
// presses Ctrl-C. The terminal is restored on every exit path.
func Run(ctx context.Context, cfg Config, fn func(cx *reactive.Scope) any) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ConfigureLogging(cfg.Log)
	SetWrapCacheSize(cfg.WrapCache)

	root := Mount(reactive.NewRuntime(), fn)
	defer root.Dispose()

	log.Infof("starting %s backend", cfg.Backend)
	switch cfg.Backend {
	case BackendTcell:
		return runTcell(ctx, root, nil, nil)
	case BackendTea:
		return runTea(ctx, cfg, root)
	}
	return runANSI(ctx, cfg, root, os.Stdin, os.Stdout)
}

// renderRequests coalesces render requests from any goroutine.
type renderRequests chan struct{}

func newRenderRequests() renderRequests {
	return make(renderRequests, 1)
}

// request marks that a render is needed. Safe to call from any goroutine.
func (r renderRequests) request() {
	select {
	case r <- struct{}{}:
	default:
		// already pending
	}
}

func runANSI(ctx context.Context, cfg Config, root *Root, in *os.File, out io.Writer) (err error) {
	session, err := OpenSession(in, out, cfg.AltScreen)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			log.Criticalf("panic while running: %v", r)
			session.Close()
			panic(r)
		}
		if cerr := session.Close(); err == nil {
			err = cerr
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen := NewScreen(out, int(in.Fd()))
	screen.WatchResize()
	defer screen.StopResize()

	renders := newRenderRequests()
	defer root.Runtime().AfterFlush(renders.request)()
	go watchInterrupt(in, cancel)

	draw := func() error {
		screen.Clear()
		root.Render(screen.Surface())
		if err := screen.Flush(); err != nil {
			return &Error{Op: "weave.Run", Kind: KindBackend, Err: err}
		}
		return nil
	}
	if err := draw(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case size := <-screen.ResizeChan():
			screen.Resize(size)
		case <-renders:
		}
		if err := draw(); err != nil {
			return err
		}
	}
}

// watchInterrupt reads raw input and calls cancel on Ctrl-C or EOF.
func watchInterrupt(in io.Reader, cancel context.CancelFunc) {
	buf := make([]byte, 64)
	for {
		n, err := in.Read(buf)
		for _, b := range buf[:n] {
			if b == 0x03 {
				cancel()
				return
			}
		}
		if err != nil {
			cancel()
			return
		}
	}
}
