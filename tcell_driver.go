package weave

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// runTcell drives root on screen, or on a new terminal screen when
// screen is nil. Effect flushes and context cancellation reach the
// event loop as interrupt events. onDraw, when set, runs on the event
// loop after each frame is shown.
func runTcell(ctx context.Context, root *Root, screen tcell.Screen, onDraw func()) error {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return &Error{Op: "weave.Run", Kind: KindTerminal, Err: err}
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return &Error{Op: "weave.Run", Kind: KindTerminal, Err: err}
	}
	fini := sync.OnceFunc(screen.Fini)
	defer fini()
	defer func() {
		if r := recover(); r != nil {
			log.Criticalf("panic while running: %v", r)
			fini()
			panic(r)
		}
	}()
	screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()
	defer root.Runtime().AfterFlush(func() {
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	})()

	surface := NewTcellSurface(screen)
	draw := func() {
		screen.Clear()
		surface.Reset()
		root.Render(surface)
		screen.Show()
		if onDraw != nil {
			onDraw()
		}
	}

	draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			draw()
			log.Debugf("tcell screen resized to %v", surface.Size())
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
			draw()
		}
	}
}
