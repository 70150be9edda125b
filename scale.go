package mills

import "fmt"

//go:generate go run scripts/aliases/codegen.go

// Scale describes how a [Value] maps its scaled integer to a logical amount.
// Implementations are zero-size types used as type parameters, so the scale
// is fixed at compile time and costs nothing at run time.
//
// Digits returns the number of fractional digits; a value stores
// amount × 10^Digits. It must be between 0 and [MaxDigits].
//
// Rounding returns the policy used when [Value.Mul], [Value.Quo] or
// [NewFromDecimal] have to drop digits.
//
// Symbol returns the prefix used by [Value.String], e.g. "$".
type Scale interface {
	Digits() int
	Rounding() Rounding
	Symbol() string
}

// MaxDigits is the largest number of fractional digits a [Scale] may use.
// 10^MaxDigits still fits into an int64.
const MaxDigits = 18

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// digitsOf returns the number of fractional digits of scale S.
// It panics if S reports an unsupported number of digits.
func digitsOf[S Scale]() int {
	var s S
	n := s.Digits()
	if n < 0 || n > MaxDigits {
		panic(fmt.Sprintf("%T.Digits() = %v, want a value between 0 and %v", s, n, MaxDigits))
	}
	return n
}

// Mill is the scale of thousandths of a dollar, rounded half to even.
type Mill struct{}

func (Mill) Digits() int        { return 3 }
func (Mill) Rounding() Rounding { return HalfEven }
func (Mill) Symbol() string     { return "$" }

// Cent is the scale of hundredths of a dollar, rounded half to even.
type Cent struct{}

func (Cent) Digits() int        { return 2 }
func (Cent) Rounding() Rounding { return HalfEven }
func (Cent) Symbol() string     { return "$" }

// CentHalfUp is like [Cent] but rounds ties away from zero.
type CentHalfUp struct{}

func (CentHalfUp) Digits() int        { return 2 }
func (CentHalfUp) Rounding() Rounding { return HalfUp }
func (CentHalfUp) Symbol() string     { return "$" }

// CentUp is like [Cent] but rounds any dropped fraction away from zero.
type CentUp struct{}

func (CentUp) Digits() int        { return 2 }
func (CentUp) Rounding() Rounding { return Up }
func (CentUp) Symbol() string     { return "$" }

// Rounding is a policy for dropping digits that a scale cannot hold.
type Rounding uint8

const (
	// HalfEven rounds to the nearest value and ties to the even neighbour
	// ([rounding half to even], banker's rounding).
	//
	// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
	HalfEven Rounding = iota
	// HalfUp rounds to the nearest value and ties away from zero.
	HalfUp
	// Up rounds away from zero whenever a non-zero fraction is dropped.
	Up
	// Down truncates toward zero.
	Down
)

// String implements the [fmt.Stringer] interface.
func (m Rounding) String() string {
	switch m {
	case HalfEven:
		return "half-even"
	case HalfUp:
		return "half-up"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Rounding(%d)", uint8(m))
}

// roundsAway reports whether a quotient q, truncated toward zero, should be
// moved one unit away from zero.
// rem and div are the magnitudes of the dropped remainder and of the divisor,
// so rem is a tie when it equals div - rem.
func roundsAway[R Integer[R]](m Rounding, q, rem, div R) bool {
	if rem.IsZero() {
		return false
	}
	switch m {
	case HalfEven:
		switch c := rem.Cmp(div.Sub(rem)); {
		case c > 0:
			return true
		case c == 0:
			return q.IsOdd()
		}
		return false
	case HalfUp:
		return rem.Cmp(div.Sub(rem)) >= 0
	case Up:
		return true
	}
	return false
}
