//go:build !release

package reactive

import "github.com/sasha-s/go-deadlock"

// mutex reports stuck acquisitions and lock-order problems in debug
// builds. Build with -tags release for plain sync.Mutex.
type mutex = deadlock.Mutex
