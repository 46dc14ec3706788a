package weave

import "testing"

func TestSize(t *testing.T) {
	t.Run("Cmp", func(t *testing.T) {
		tests := []struct {
			a, b Size
			want int
		}{
			{Size{2, 2}, Size{3, 3}, -1},
			{Size{3, 3}, Size{2, 2}, 1},
			{Size{2, 3}, Size{3, 2}, 0},
			{Size{1, 6}, Size{2, 3}, 0},
			{Size{0, 10}, Size{1, 1}, -1},
		}
		for _, tt := range tests {
			if got := tt.a.Cmp(tt.b); got != tt.want {
				t.Errorf("%v.Cmp(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		}
	})

	t.Run("StrictLimitsRoundTrip", func(t *testing.T) {
		for _, s := range []Size{{0, 0}, {5, 1}, {80, 24}} {
			l := s.StrictLimits()
			if l.MaxSize() != s || l.MinSize() != s {
				t.Errorf("%v: got min %v max %v", s, l.MinSize(), l.MaxSize())
			}
			if !l.Contains(s) {
				t.Errorf("%v: strict limits should contain the size", s)
			}
		}
	})
}

func TestLimits(t *testing.T) {
	t.Run("ContainsIsPerAxis", func(t *testing.T) {
		l := Between(Size{0, 0}, Size{10, 1})
		tests := []struct {
			size Size
			want bool
		}{
			{Size{10, 1}, true},
			{Size{0, 0}, true},
			{Size{5, 2}, false},
			{Size{11, 0}, false},
			{Size{1, 10}, false},
		}
		for _, tt := range tests {
			if got := l.Contains(tt.size); got != tt.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", l, tt.size, got, tt.want)
			}
		}
	})

	t.Run("Minimums", func(t *testing.T) {
		l := Between(Size{3, 2}, Size{10, 10})
		if l.Contains(Size{2, 5}) {
			t.Error("width below minimum should be rejected")
		}
		if l.Contains(Size{5, 1}) {
			t.Error("height below minimum should be rejected")
		}
		if got := l.Loosen().MinSize(); got != (Size{}) {
			t.Errorf("Loosen min = %v, want 0x0", got)
		}
	})

	t.Run("Constrain", func(t *testing.T) {
		l := Between(Size{2, 2}, Size{8, 4})
		if got := l.Constrain(Size{1, 9}); got != (Size{2, 4}) {
			t.Errorf("got %v, want 2x4", got)
		}
	})
}

func TestXYAdd(t *testing.T) {
	if got := (XY{1, 2}).Add(XY{3, 4}); got != (XY{4, 6}) {
		t.Errorf("got %+v", got)
	}
}
