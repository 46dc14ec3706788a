package weave

import (
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("weave")

// ConfigureLogging routes diagnostics to cfg.Path, or turns them off
// when no path is set.
func ConfigureLogging(cfg LogConfig) {
	if cfg.Path == "" {
		commonlog.Configure(-4, nil)
		return
	}
	path := cfg.Path
	commonlog.Configure(cfg.Verbosity, &path)
}
