package mills

import "testing"

func TestScale(t *testing.T) {
	tests := []struct {
		s        Scale
		digits   int
		rounding Rounding
	}{
		{Mill{}, 3, HalfEven},
		{Cent{}, 2, HalfEven},
		{CentHalfUp{}, 2, HalfUp},
		{CentUp{}, 2, Up},
	}
	for _, tt := range tests {
		if got := tt.s.Digits(); got != tt.digits {
			t.Errorf("%T.Digits() = %v, want %v", tt.s, got, tt.digits)
		}
		if got := tt.s.Rounding(); got != tt.rounding {
			t.Errorf("%T.Rounding() = %v, want %v", tt.s, got, tt.rounding)
		}
		if got := tt.s.Symbol(); got != "$" {
			t.Errorf("%T.Symbol() = %q, want %q", tt.s, got, "$")
		}
	}
}

// wide is a scale with more digits than an int64 unit can hold.
type wide struct{}

func (wide) Digits() int        { return MaxDigits + 1 }
func (wide) Rounding() Rounding { return HalfEven }
func (wide) Symbol() string     { return "" }

func TestDigitsOf(t *testing.T) {
	if got := digitsOf[Mill](); got != 3 {
		t.Errorf("digitsOf[Mill]() = %v, want 3", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("digitsOf[wide]() did not panic")
		}
	}()
	digitsOf[wide]()
}

func TestRounding_String(t *testing.T) {
	tests := []struct {
		m    Rounding
		want string
	}{
		{HalfEven, "half-even"},
		{HalfUp, "half-up"},
		{Up, "up"},
		{Down, "down"},
		{Rounding(9), "Rounding(9)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Rounding(%d).String() = %q, want %q", uint8(tt.m), got, tt.want)
		}
	}
}

func TestRoundsAway(t *testing.T) {
	tests := []struct {
		q, rem, div            Int64
		even, halfUp, up, down bool
	}{
		{0, 0, 1000, false, false, false, false},
		{0, 1, 1000, false, false, true, false},
		{0, 499, 1000, false, false, true, false},
		{0, 500, 1000, false, true, true, false},
		{1, 500, 1000, true, true, true, false},
		{2, 500, 1000, false, true, true, false},
		{-1, 500, 1000, true, true, true, false},
		{0, 501, 1000, true, true, true, false},
		{1, 1, 3, false, false, true, false},
		{1, 2, 3, true, true, true, false},
	}
	for _, tt := range tests {
		if got := roundsAway(HalfEven, tt.q, tt.rem, tt.div); got != tt.even {
			t.Errorf("roundsAway(HalfEven, %v, %v, %v) = %v, want %v", tt.q, tt.rem, tt.div, got, tt.even)
		}
		if got := roundsAway(HalfUp, tt.q, tt.rem, tt.div); got != tt.halfUp {
			t.Errorf("roundsAway(HalfUp, %v, %v, %v) = %v, want %v", tt.q, tt.rem, tt.div, got, tt.halfUp)
		}
		if got := roundsAway(Up, tt.q, tt.rem, tt.div); got != tt.up {
			t.Errorf("roundsAway(Up, %v, %v, %v) = %v, want %v", tt.q, tt.rem, tt.div, got, tt.up)
		}
		if got := roundsAway(Down, tt.q, tt.rem, tt.div); got != tt.down {
			t.Errorf("roundsAway(Down, %v, %v, %v) = %v, want %v", tt.q, tt.rem, tt.div, got, tt.down)
		}
	}
}
