//go:build release

package reactive

import "sync"

type mutex = sync.Mutex
