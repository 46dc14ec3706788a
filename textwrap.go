package weave

import (
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
)

// DefaultWrapCacheSize is the number of wrapped strings kept by default.
const DefaultWrapCacheSize = 256

type wrapKey struct {
	text  string
	width int
}

var (
	wrapMu    sync.Mutex
	wrapCache *lru.Cache[wrapKey, []string]
)

// SetWrapCacheSize resizes the cache of wrapped text. Zero disables it.
func SetWrapCacheSize(n int) {
	wrapMu.Lock()
	defer wrapMu.Unlock()
	if n <= 0 {
		wrapCache = nil
		return
	}
	if wrapCache == nil {
		wrapCache, _ = lru.New[wrapKey, []string](n)
		return
	}
	wrapCache.Resize(n)
}

func init() {
	SetWrapCacheSize(DefaultWrapCacheSize)
}

// wrapText breaks text into lines no wider than width display cells.
// Lines break at word boundaries where possible; words wider than width
// are split. Trailing blanks are dropped. The returned slice is shared
// and must not be modified.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	key := wrapKey{text: text, width: width}
	wrapMu.Lock()
	cache := wrapCache
	wrapMu.Unlock()
	if cache != nil {
		if lines, ok := cache.Get(key); ok {
			return lines
		}
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimRight(para, " \t\r")
		if para == "" {
			lines = append(lines, "")
			continue
		}
		for _, line := range strings.Split(wordwrap.WrapString(para, uint(width)), "\n") {
			line = strings.TrimRight(line, " \t")
			if runewidth.StringWidth(line) <= width {
				lines = append(lines, line)
				continue
			}
			lines = append(lines, breakLine(line, width)...)
		}
	}

	if cache != nil {
		cache.Add(key, lines)
	}
	return lines
}

// breakLine splits line into chunks of at most width cells. Runes wider
// than width are dropped.
func breakLine(line string, width int) []string {
	var out []string
	var cur strings.Builder
	used := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if w > width {
			continue
		}
		if used+w > width {
			out = append(out, cur.String())
			cur.Reset()
			used = 0
		}
		cur.WriteRune(r)
		used += w
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

// lineWidth returns the widest line in display cells.
func lineWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l))
	}
	return w
}
