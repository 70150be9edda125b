package mills

import (
	"math"
	"testing"
)

func TestInt64(t *testing.T) {
	t.Run("arithmetic", func(t *testing.T) {
		x, y := Int64(-7), Int64(2)
		if got := x.Quo(y); got != -3 {
			t.Errorf("%v.Quo(%v) = %v, want -3", x, y, got)
		}
		if got := x.Rem(y); got != -1 {
			t.Errorf("%v.Rem(%v) = %v, want -1", x, y, got)
		}
		if got := Int64(math.MaxInt64).Add(1); got != math.MinInt64 {
			t.Errorf("MaxInt64.Add(1) = %v, want %v", got, int64(math.MinInt64))
		}
	})

	t.Run("predicates", func(t *testing.T) {
		tests := []struct {
			x         Int64
			sign      int
			odd, zero bool
		}{
			{-3, -1, true, false},
			{-2, -1, false, false},
			{0, 0, false, true},
			{7, 1, true, false},
		}
		for _, tt := range tests {
			if got := tt.x.Sign(); got != tt.sign {
				t.Errorf("%v.Sign() = %v, want %v", tt.x, got, tt.sign)
			}
			if got := tt.x.IsOdd(); got != tt.odd {
				t.Errorf("%v.IsOdd() = %v, want %v", tt.x, got, tt.odd)
			}
			if got := tt.x.IsZero(); got != tt.zero {
				t.Errorf("%v.IsZero() = %v, want %v", tt.x, got, tt.zero)
			}
		}
	})

	t.Run("conversions", func(t *testing.T) {
		var z Int64
		if _, ok := z.FromUint64(math.MaxInt64 + 1); ok {
			t.Errorf("FromUint64(MaxInt64 + 1) did not fail")
		}
		tests := []struct {
			f  float64
			ok bool
		}{
			{0, true},
			{-9.223372036854775808e18, true},
			{9.2233720368547748e18, true},
			{9.223372036854775808e18, false},
			{-1e19, false},
			{math.NaN(), false},
			{math.Inf(1), false},
		}
		for _, tt := range tests {
			if _, ok := z.FromFloat64(tt.f); ok != tt.ok {
				t.Errorf("FromFloat64(%v) = %v, want %v", tt.f, ok, tt.ok)
			}
		}
	})
}

func TestUint64(t *testing.T) {
	var z Uint64
	if got := z.Sub(1); got != math.MaxUint64 {
		t.Errorf("0.Sub(1) = %v, want %v", got, uint64(math.MaxUint64))
	}
	if got := Uint64(5).Neg().Add(5); got != 0 {
		t.Errorf("5.Neg().Add(5) = %v, want 0", got)
	}
	if got := Uint64(math.MaxUint64).Sign(); got != 1 {
		t.Errorf("MaxUint64.Sign() = %v, want 1", got)
	}
	tests := []struct {
		f  float64
		ok bool
	}{
		{0, true},
		{1.8e19, true},
		{1.9e19, false},
		{-1, false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		if _, ok := z.FromFloat64(tt.f); ok != tt.ok {
			t.Errorf("FromFloat64(%v) = %v, want %v", tt.f, ok, tt.ok)
		}
	}
}

func TestInt128(t *testing.T) {
	t.Run("arithmetic", func(t *testing.T) {
		x, y := Int128From64(-7), Int128From64(2)
		if got, want := x.Quo(y), Int128From64(-3); got != want {
			t.Errorf("%v.Quo(%v) = %v, want %v", x, y, got, want)
		}
		if got, want := x.Rem(y), Int128From64(-1); got != want {
			t.Errorf("%v.Rem(%v) = %v, want %v", x, y, got, want)
		}
		if got, want := x.Mul(y).Sub(y), Int128From64(-16); got != want {
			t.Errorf("%v * %v - %v = %v, want %v", x, y, y, got, want)
		}
		big := Int128From64(math.MaxInt64).Mul(Int128From64(10))
		if got, want := big.String(), "92233720368547758070"; got != want {
			t.Errorf("MaxInt64 * 10 = %v, want %v", got, want)
		}
	})

	t.Run("predicates", func(t *testing.T) {
		tests := []struct {
			x         int64
			sign      int
			odd, zero bool
		}{
			{-3, -1, true, false},
			{-2, -1, false, false},
			{0, 0, false, true},
			{7, 1, true, false},
		}
		for _, tt := range tests {
			x := Int128From64(tt.x)
			if got := x.Sign(); got != tt.sign {
				t.Errorf("%v.Sign() = %v, want %v", x, got, tt.sign)
			}
			if got := x.IsOdd(); got != tt.odd {
				t.Errorf("%v.IsOdd() = %v, want %v", x, got, tt.odd)
			}
			if got := x.IsZero(); got != tt.zero {
				t.Errorf("%v.IsZero() = %v, want %v", x, got, tt.zero)
			}
		}
	})

	t.Run("conversions", func(t *testing.T) {
		var z Int128
		if got, ok := z.FromUint64(math.MaxUint64); !ok || got.String() != "18446744073709551615" {
			t.Errorf("FromUint64(MaxUint64) = %v, %v, want 18446744073709551615", got, ok)
		}
		tests := []struct {
			f    float64
			want string
			ok   bool
		}{
			{0, "0", true},
			{-4560, "-4560", true},
			{1e20, "100000000000000000000", true},
			{-1e20, "-100000000000000000000", true},
			{1e39, "", false},
			{-1e39, "", false},
			{math.NaN(), "", false},
		}
		for _, tt := range tests {
			got, ok := z.FromFloat64(tt.f)
			if ok != tt.ok {
				t.Errorf("FromFloat64(%v) = %v, want %v", tt.f, ok, tt.ok)
				continue
			}
			if ok && got.String() != tt.want {
				t.Errorf("FromFloat64(%v) = %v, want %v", tt.f, got, tt.want)
			}
		}
	})
}

func TestUint128(t *testing.T) {
	var z Uint128
	if got := z.Sub(Uint128From64(1)).String(); got != "340282366920938463463374607431768211455" {
		t.Errorf("0.Sub(1) = %v, want MaxU128", got)
	}
	if got := Uint128From64(5).Neg().Add(Uint128From64(5)); !got.IsZero() {
		t.Errorf("5.Neg().Add(5) = %v, want 0", got)
	}
	if got := Uint128From64(9).IsOdd(); !got {
		t.Errorf("9.IsOdd() = false, want true")
	}
	if got := z.Sign(); got != 0 {
		t.Errorf("0.Sign() = %v, want 0", got)
	}
	if got := Uint128From64(4560).Float64(); got != 4560 {
		t.Errorf("4560.Float64() = %v, want 4560", got)
	}
	tests := []struct {
		f  float64
		ok bool
	}{
		{0, true},
		{1e38, true},
		{1e39, false},
		{-1, false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		if _, ok := z.FromFloat64(tt.f); ok != tt.ok {
			t.Errorf("FromFloat64(%v) = %v, want %v", tt.f, ok, tt.ok)
		}
	}
}
