package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kungfusheep/weave"
	"github.com/kungfusheep/weave/reactive"
)

var (
	configPath = flag.String("config", "", "path to a .toml or .yaml config file")
	backend    = flag.String("backend", "", "render backend: ansi, tcell or tea")
	interval   = flag.Duration("tick", time.Second, "counter interval")
)

func main() {
	flag.Parse()

	cfg, err := weave.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *backend != "" {
		cfg.Backend = weave.Backend(*backend)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = weave.Run(ctx, cfg, func(cx *reactive.Scope) any {
		ticks := reactive.CreateSignal(cx, 0)
		go tick(ctx, *interval, ticks)

		return weave.NewCenter().Child(
			weave.VStack(cx,
				weave.NewText("weave demo").Styled(weave.DefaultStyle().Bold()),
				weave.Dyn(func() string {
					return fmt.Sprintf("ticks: %d", ticks.Get())
				}),
				weave.Dyn(func() any {
					return weave.NewButton("quit with ctrl-c").Focus(ticks.Get()%2 == 1)
				}),
			).Gap(1).IntoView(cx),
		)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func tick(ctx context.Context, every time.Duration, ticks *reactive.Signal[int]) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			ticks.Update(func(n int) int { return n + 1 })
		}
	}
}
