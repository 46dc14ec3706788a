package weave

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		max, min Size
		wantSize Size
		wantOut  string
	}{
		{"fits", "hello", Size{5, 1}, Size{}, Size{5, 1}, "\x1b[1;1Hhello"},
		{"trailing spaces trimmed", "hello   ", Size{8, 1}, Size{}, Size{5, 1}, "\x1b[1;1Hhello"},
		{"single cell", "hello", Size{1, 1}, Size{}, Size{1, 1}, "\x1b[1;1Hh"},
		{"two lines", "hello\nthere", Size{5, 2}, Size{}, Size{5, 2}, "\x1b[1;1Hhello\x1b[2;1Hthere"},
		{"wraps at words", "hello there", Size{10, 5}, Size{}, Size{5, 2}, "\x1b[1;1Hhello\x1b[2;1Hthere"},
		{"height capped", "hello there", Size{10, 1}, Size{}, Size{5, 1}, "\x1b[1;1Hhello"},
		{"raised to minimum", "hi", Size{10, 10}, Size{4, 3}, Size{4, 3}, "\x1b[1;1Hhi"},
		{"no width", "hello", Size{0, 1}, Size{}, Size{0, 0}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewText(tt.text).IntoView(newScope())
			size, out := streamOutput(t, v, Between(tt.min, tt.max))
			if size != tt.wantSize {
				t.Errorf("size = %v, want %v", size, tt.wantSize)
			}
			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
		})
	}
}

func TestTextStyled(t *testing.T) {
	v := NewText("hi").Styled(DefaultStyle().Foreground(Red)).IntoView(newScope())
	_, buf := bufferOutput(v, Strict(2, 1))
	if got := buf.Get(0, 0).Style.FG; got != Red {
		t.Errorf("expected red foreground, got %+v", got)
	}
}

func TestTextf(t *testing.T) {
	if got := Textf("count: %d", 3).Content(); got != "count: 3" {
		t.Errorf("got %q", got)
	}
}

func TestMeasureText(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		limits Limits
		want   Size
	}{
		{"single line", "Hello", Between(Size{}, Size{10, 10}), Size{10, 1}},
		{"wraps", "Hello there", Between(Size{}, Size{10, 10}), Size{10, 2}},
		{"too tall", "Hello there", Between(Size{}, Size{10, 1}), Size{10, 1}},
		{"wide", "Hello there!\nHow are you?", Between(Size{}, Size{100, 100}), Size{100, 2}},
		{"narrow", "Hello there!\nHow are you?", Between(Size{}, Size{10, 100}), Size{10, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeasureText(tt.limits, tt.text); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
