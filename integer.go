package mills

import (
	"math"
	"strconv"

	num "github.com/shabbyrobe/go-num"
)

// Integer is the set of primitive operations a [Value] needs from its
// underlying scaled integer. The interface is closed: the package provides
// [Int64], [Uint64], [Int128] and [Uint128].
//
// Quo and Rem truncate toward zero, and the remainder has the sign of the
// dividend. Add, Sub, Mul and Neg wrap around on overflow, the same way
// native Go integers do.
type Integer[R any] interface {
	comparable
	Add(y R) R
	Sub(y R) R
	Mul(y R) R
	Quo(y R) R
	Rem(y R) R
	Neg() R
	Cmp(y R) int
	Sign() int
	IsZero() bool
	IsOdd() bool
	Float64() float64
	String() string

	// FromUint64 and FromFloat64 are called on the zero value and return
	// false if v cannot be represented.
	FromUint64(v uint64) (R, bool)
	FromFloat64(v float64) (R, bool)
}

// Int64 is a signed 64-bit representation.
type Int64 int64

func (x Int64) Add(y Int64) Int64 { return x + y }
func (x Int64) Sub(y Int64) Int64 { return x - y }
func (x Int64) Mul(y Int64) Int64 { return x * y }
func (x Int64) Quo(y Int64) Int64 { return x / y }
func (x Int64) Rem(y Int64) Int64 { return x % y }
func (x Int64) Neg() Int64        { return -x }
func (x Int64) IsZero() bool      { return x == 0 }
func (x Int64) IsOdd() bool       { return x&1 == 1 }
func (x Int64) Float64() float64  { return float64(x) }
func (x Int64) String() string    { return strconv.FormatInt(int64(x), 10) }

func (x Int64) Cmp(y Int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func (x Int64) Sign() int {
	return x.Cmp(0)
}

func (Int64) FromUint64(v uint64) (Int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return Int64(v), true
}

func (Int64) FromFloat64(v float64) (Int64, bool) {
	// -2^63 is exact, 2^63 is the first float above MaxInt64.
	if math.IsNaN(v) || v < math.MinInt64 || v >= -math.MinInt64 {
		return 0, false
	}
	return Int64(v), true
}

// Uint64 is an unsigned 64-bit representation.
// Its sign is never negative, and subtraction below zero wraps around.
type Uint64 uint64

func (x Uint64) Add(y Uint64) Uint64 { return x + y }
func (x Uint64) Sub(y Uint64) Uint64 { return x - y }
func (x Uint64) Mul(y Uint64) Uint64 { return x * y }
func (x Uint64) Quo(y Uint64) Uint64 { return x / y }
func (x Uint64) Rem(y Uint64) Uint64 { return x % y }
func (x Uint64) Neg() Uint64         { return -x }
func (x Uint64) IsZero() bool        { return x == 0 }
func (x Uint64) IsOdd() bool         { return x&1 == 1 }
func (x Uint64) Float64() float64    { return float64(x) }
func (x Uint64) String() string      { return strconv.FormatUint(uint64(x), 10) }

func (x Uint64) Cmp(y Uint64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func (x Uint64) Sign() int {
	if x == 0 {
		return 0
	}
	return 1
}

func (Uint64) FromUint64(v uint64) (Uint64, bool) {
	return Uint64(v), true
}

func (Uint64) FromFloat64(v float64) (Uint64, bool) {
	// 2^64 is the first float above MaxUint64.
	if math.IsNaN(v) || v < 0 || v >= 1<<64 {
		return 0, false
	}
	return Uint64(v), true
}

// Int128 is a signed 128-bit representation.
// It gives 64-bit logical amounts enough headroom for [Value.Mul] and [Value.Quo].
type Int128 num.I128

// Int128From64 converts an int64 to an Int128.
func Int128From64(v int64) Int128 {
	return Int128(num.I128From64(v))
}

var (
	i128Zero = num.I128{}
	i128Two  = num.I128From64(2)
)

func (x Int128) Add(y Int128) Int128 { return Int128(num.I128(x).Add(num.I128(y))) }
func (x Int128) Sub(y Int128) Int128 { return Int128(num.I128(x).Sub(num.I128(y))) }
func (x Int128) Mul(y Int128) Int128 { return Int128(num.I128(x).Mul(num.I128(y))) }
func (x Int128) Quo(y Int128) Int128 { return Int128(num.I128(x).Quo(num.I128(y))) }
func (x Int128) Rem(y Int128) Int128 { return Int128(num.I128(x).Rem(num.I128(y))) }
func (x Int128) Neg() Int128         { return Int128(num.I128(x).Neg()) }
func (x Int128) Cmp(y Int128) int    { return num.I128(x).Cmp(num.I128(y)) }
func (x Int128) Sign() int           { return num.I128(x).Cmp(i128Zero) }
func (x Int128) IsZero() bool        { return num.I128(x) == i128Zero }
func (x Int128) IsOdd() bool         { return num.I128(x).Rem(i128Two) != i128Zero }
func (x Int128) Float64() float64    { return num.I128(x).AsFloat64() }
func (x Int128) String() string      { return num.I128(x).String() }

func (Int128) FromUint64(v uint64) (Int128, bool) {
	return Int128(num.I128FromRaw(0, v)), true
}

func (Int128) FromFloat64(v float64) (Int128, bool) {
	if math.IsNaN(v) {
		return Int128{}, false
	}
	// Converted by magnitude, so negative floats never pass through uint64.
	i, ok := num.I128FromFloat64(math.Abs(v))
	if !ok {
		return Int128{}, false
	}
	if v < 0 {
		i = i.Neg()
	}
	return Int128(i), true
}

// Uint128 is an unsigned 128-bit representation.
type Uint128 num.U128

// Uint128From64 converts a uint64 to a Uint128.
func Uint128From64(v uint64) Uint128 {
	return Uint128(num.U128From64(v))
}

var (
	u128Zero = num.U128{}
	u128Two  = num.U128From64(2)
)

func (x Uint128) Add(y Uint128) Uint128 { return Uint128(num.U128(x).Add(num.U128(y))) }
func (x Uint128) Sub(y Uint128) Uint128 { return Uint128(num.U128(x).Sub(num.U128(y))) }
func (x Uint128) Mul(y Uint128) Uint128 { return Uint128(num.U128(x).Mul(num.U128(y))) }
func (x Uint128) Quo(y Uint128) Uint128 { return Uint128(num.U128(x).Quo(num.U128(y))) }
func (x Uint128) Rem(y Uint128) Uint128 { return Uint128(num.U128(x).Rem(num.U128(y))) }
func (x Uint128) Neg() Uint128          { return Uint128(u128Zero.Sub(num.U128(x))) }
func (x Uint128) Cmp(y Uint128) int     { return num.U128(x).Cmp(num.U128(y)) }
func (x Uint128) IsZero() bool          { return num.U128(x) == u128Zero }
func (x Uint128) IsOdd() bool           { return num.U128(x).Rem(u128Two) != u128Zero }
func (x Uint128) Float64() float64      { return num.U128(x).AsFloat64() }
func (x Uint128) String() string        { return num.U128(x).String() }

func (x Uint128) Sign() int {
	if x.IsZero() {
		return 0
	}
	return 1
}

func (Uint128) FromUint64(v uint64) (Uint128, bool) {
	return Uint128From64(v), true
}

func (Uint128) FromFloat64(v float64) (Uint128, bool) {
	if math.IsNaN(v) || v < 0 {
		return Uint128{}, false
	}
	u, ok := num.U128FromFloat64(v)
	if !ok {
		return Uint128{}, false
	}
	return Uint128(u), true
}
