package weave

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// invalidateMsg asks the program to redraw after an effect flush.
type invalidateMsg struct{}

// teaModel adapts a mounted tree to a bubbletea program. Each View call
// renders the tree into a cell buffer and serializes it with lipgloss.
type teaModel struct {
	root    *Root
	buf     *Buffer
	surface *BufferSurface
}

func newTeaModel(root *Root, size Size) *teaModel {
	buf := NewBuffer(size.Width, size.Height)
	return &teaModel{root: root, buf: buf, surface: NewBufferSurface(buf)}
}

func (m *teaModel) Init() tea.Cmd {
	return nil
}

func (m *teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.buf.Resize(msg.Width, msg.Height)
		log.Debugf("window resized to %dx%d", msg.Width, msg.Height)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case invalidateMsg:
	}
	return m, nil
}

func (m *teaModel) View() string {
	m.buf.Clear()
	m.surface.Reset()
	m.root.Render(m.surface)
	return renderStyled(m.buf)
}

// renderStyled serializes buf row by row, styling runs of equal style.
func renderStyled(buf *Buffer) string {
	var sb strings.Builder
	var run strings.Builder
	for y := 0; y < buf.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		runStyle := Style{}
		for x := 0; x < buf.Width(); x++ {
			cell := buf.Get(x, y)
			if cell.Rune == 0 {
				continue
			}
			if cell.Style != runStyle {
				sb.WriteString(styleRun(run.String(), runStyle))
				run.Reset()
				runStyle = cell.Style
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(styleRun(run.String(), runStyle))
		run.Reset()
	}
	return sb.String()
}

func styleRun(text string, style Style) string {
	if text == "" || style.IsDefault() {
		return text
	}
	return lipglossStyle(style).Render(text)
}

func lipglossStyle(style Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c, ok := lipglossColor(style.FG); ok {
		st = st.Foreground(c)
	}
	if c, ok := lipglossColor(style.BG); ok {
		st = st.Background(c)
	}
	a := style.Attr
	return st.
		Bold(a.Has(AttrBold)).
		Faint(a.Has(AttrDim)).
		Italic(a.Has(AttrItalic)).
		Underline(a.Has(AttrUnderline)).
		Blink(a.Has(AttrBlink)).
		Reverse(a.Has(AttrInverse)).
		Strikethrough(a.Has(AttrStrikethrough))
}

func lipglossColor(c Color) (lipgloss.Color, bool) {
	switch c.Mode {
	case Color16, Color256:
		return lipgloss.Color(fmt.Sprint(c.Index)), true
	case ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), true
	}
	return "", false
}

func runTea(ctx context.Context, cfg Config, root *Root) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(newTeaModel(root, Size{}), opts...)

	// Send can block; a single goroutine forwards coalesced requests.
	renders := newRenderRequests()
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-renders:
				p.Send(invalidateMsg{})
			}
		}
	}()
	defer root.Runtime().AfterFlush(renders.request)()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return &Error{Op: "weave.Run", Kind: KindBackend, Err: err}
	}
	return nil
}
