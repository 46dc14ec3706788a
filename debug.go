//go:build !release

package weave

import (
	"fmt"
	"runtime"

	"github.com/sasha-s/go-deadlock"
)

// debugChecks enables layout and region assertions. Build with
// -tags release to compile them out.
const debugChecks = true

// mutex guards shared nodes. Debug builds report lock-order problems
// and stuck acquisitions instead of hanging.
type mutex = deadlock.Mutex

// callerSite returns file:line for the caller skip frames above it.
func callerSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
