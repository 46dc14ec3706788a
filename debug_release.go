//go:build release

package weave

import "sync"

const debugChecks = false

type mutex = sync.Mutex

func callerSite(int) string {
	return ""
}
