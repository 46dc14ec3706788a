package weave

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kungfusheep/weave/reactive"
)

// streamOutput lays v out under limits and returns the size and the
// escape stream produced by drawing it on a surface of that size.
func streamOutput(t *testing.T, v View, limits Limits) (Size, string) {
	t.Helper()
	size := v.Layout(limits)
	var out bytes.Buffer
	s := NewStreamSurface(&out, size)
	v.Draw(s)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	return size, out.String()
}

// bufferOutput lays v out under limits and draws it into a buffer of the
// returned size.
func bufferOutput(v View, limits Limits) (Size, *Buffer) {
	size := v.Layout(limits)
	buf := NewBuffer(size.Width, size.Height)
	v.Draw(NewBufferSurface(buf))
	return size, buf
}

func newScope() *reactive.Scope {
	return reactive.NewRuntime().NewRoot()
}

// spyWidget records the limits it was given and answers with a fixed size.
type spyWidget struct {
	size   Size
	limits []Limits
	drawn  []Size
}

func (w *spyWidget) Name() string { return "Spy" }

func (w *spyWidget) Layout(limits Limits) Size {
	w.limits = append(w.limits, limits)
	return w.size
}

func (w *spyWidget) Draw(s DrawSurface) {
	w.drawn = append(w.drawn, s.Size())
	s.Write(XY{}, "#")
}

// simRows returns the displayed rows of a simulation screen.
func simRows(screen tcell.SimulationScreen) []string {
	cells, w, h := screen.GetContents()
	rows := make([]string, h)
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 || c.Runes[0] == 0 {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteRune(c.Runes[0])
		}
		rows[y] = sb.String()
	}
	return rows
}

// simRow returns row y of a simulation screen's displayed contents.
func simRow(screen tcell.SimulationScreen, y int) string {
	rows := simRows(screen)
	if y < 0 || y >= len(rows) {
		return ""
	}
	return rows[y]
}
