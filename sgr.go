package weave

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sgr returns the escape sequence selecting style, or "" for the
// default style.
func sgr(style Style) string {
	if style.IsDefault() {
		return ""
	}
	params := make([]string, 0, 8)
	for _, a := range []struct {
		attr Attribute
		code string
	}{
		{AttrBold, "1"},
		{AttrDim, "2"},
		{AttrItalic, "3"},
		{AttrUnderline, "4"},
		{AttrBlink, "5"},
		{AttrInverse, "7"},
		{AttrStrikethrough, "9"},
	} {
		if style.Attr.Has(a.attr) {
			params = append(params, a.code)
		}
	}
	params = appendColor(params, style.FG, true)
	params = appendColor(params, style.BG, false)
	return "\x1b[" + strings.Join(params, ";") + "m"
}

func appendColor(params []string, c Color, fg bool) []string {
	switch c.Mode {
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		if c.Index >= 8 {
			// bright
			return append(params, strconv.Itoa(base+60+int(c.Index-8)))
		}
		return append(params, strconv.Itoa(base+int(c.Index)))
	case Color256:
		prefix := "38;5;"
		if !fg {
			prefix = "48;5;"
		}
		return append(params, prefix+strconv.Itoa(int(c.Index)))
	case ColorRGB:
		prefix := "38;2;"
		if !fg {
			prefix = "48;2;"
		}
		return append(params, prefix+strconv.Itoa(int(c.R))+";"+strconv.Itoa(int(c.G))+";"+strconv.Itoa(int(c.B)))
	}
	return params
}

// styled wraps text in the sequence for style and a reset. Default
// styled text is returned unchanged.
func styled(text string, style Style) string {
	seq := sgr(style)
	if seq == "" {
		return text
	}
	return seq + text + ansi.ResetStyle
}
