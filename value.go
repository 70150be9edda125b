package mills

import (
	"errors"
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

var (
	// ErrDivisionByZero is returned by [Value.Quo] and [Value.Rem] when the
	// divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOutOfRange is returned when a result cannot be held by the
	// representation of a [Value].
	ErrOutOfRange = errors.New("value out of range")
)

// Value is a fixed-point amount stored as a single scaled integer of type R.
// The integer equals amount × 10^S.Digits(), so a Value[Int64, Mill] holding
// 1234 represents $1.234.
// The zero value is 0.
//
// Value is immutable, comparable with ==, and safe for concurrent use by
// multiple goroutines.
//
// Add, Sub and Mul inherit the overflow behaviour of R: they wrap around.
// Mul needs room for the raw product of both operands, roughly
// amount² × 10^(2 × digits); choose a 128-bit representation when products
// of large 64-bit amounts are expected.
type Value[R Integer[R], S Scale] struct {
	raw R // amount × 10^digits
}

// New returns a value wrapping an already scaled integer.
// No conversion is done: New[Int64, Mill](1234) is $1.234.
func New[R Integer[R], S Scale](raw R) Value[R, S] {
	return Value[R, S]{raw: raw}
}

// NewFromLowerScale converts an integer expressed at a coarser scale to a
// value by multiplying it by ratio, the quotient of both scales' units.
// For example, cents are converted to mills with a ratio of 10.
// See also [NewFromCents].
func NewFromLowerScale[R Integer[R], S Scale](value, ratio R) Value[R, S] {
	return New[R, S](value.Mul(ratio))
}

// NewFromCents converts an integer number of cents to a value.
//
// NewFromCents panics if the scale has fewer than 2 digits.
func NewFromCents[R Integer[R], S Scale](cents R) Value[R, S] {
	digits := digitsOf[S]()
	if digits < 2 {
		var s S
		panic(fmt.Sprintf("NewFromCents(%v) failed: scale %T is coarser than cents", cents, s))
	}
	return NewFromLowerScale[R, S](cents, smallInt[R](pow10[digits-2]))
}

// NewFromFloat64 converts a float to a value.
// The float is multiplied by the scale's unit and rounded half away from zero,
// see [math.Round].
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the rounded result does not fit into R, in which case the error
//     wraps [ErrOutOfRange].
func NewFromFloat64[R Integer[R], S Scale](f float64) (Value[R, S], error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value[R, S]{}, fmt.Errorf("converting float: special value %v", f)
	}
	var z R
	raw, ok := z.FromFloat64(math.Round(f * float64(pow10[digitsOf[S]()])))
	if !ok {
		return Value[R, S]{}, fmt.Errorf("converting float %v: %w", f, ErrOutOfRange)
	}
	return New[R, S](raw), nil
}

// NewFromFloat32 is like [NewFromFloat64] but converts a float32.
func NewFromFloat32[R Integer[R], S Scale](f float32) (Value[R, S], error) {
	return NewFromFloat64[R, S](float64(f))
}

// MustNewFromFloat64 is like [NewFromFloat64] but panics if the float cannot
// be converted.
// It simplifies safe initialization of global variables holding values.
func MustNewFromFloat64[R Integer[R], S Scale](f float64) Value[R, S] {
	v, err := NewFromFloat64[R, S](f)
	if err != nil {
		panic(fmt.Sprintf("NewFromFloat64(%v) failed: %v", f, err))
	}
	return v
}

// MustNewFromFloat32 is like [NewFromFloat32] but panics if the float cannot
// be converted.
func MustNewFromFloat32[R Integer[R], S Scale](f float32) Value[R, S] {
	v, err := NewFromFloat32[R, S](f)
	if err != nil {
		panic(fmt.Sprintf("NewFromFloat32(%v) failed: %v", f, err))
	}
	return v
}

// NewFromDecimal converts a decimal to a value.
// Digits beyond the scale are dropped using the scale's [Rounding].
// See also method [Value.Decimal].
//
// NewFromDecimal returns an error wrapping [ErrOutOfRange] if the result does
// not fit into R, including negative decimals with an unsigned R.
func NewFromDecimal[R Integer[R], S Scale](d decimal.Decimal) (Value[R, S], error) {
	v, err := newFromDecimal[R, S](d)
	if err != nil {
		return Value[R, S]{}, fmt.Errorf("converting decimal %v: %w", d, err)
	}
	return v, nil
}

func newFromDecimal[R Integer[R], S Scale](d decimal.Decimal) (Value[R, S], error) {
	var s S
	digits := digitsOf[S]()

	// Coefficient at the scale
	var coef uint64
	if d.Scale() <= digits {
		e := d.Pad(digits)
		if e.Scale() != digits {
			return Value[R, S]{}, ErrOutOfRange
		}
		coef = e.Coef()
	} else {
		unit := Uint64(pow10[d.Scale()-digits])
		x := Uint64(d.Coef())
		q, r := x.Quo(unit), x.Rem(unit)
		if roundsAway(s.Rounding(), q, r, unit) {
			q++
		}
		coef = uint64(q)
	}

	// Representation
	var z R
	raw, ok := z.FromUint64(coef)
	if !ok {
		return Value[R, S]{}, ErrOutOfRange
	}
	if d.IsNeg() && coef != 0 {
		raw = raw.Neg()
		if raw.Sign() >= 0 {
			return Value[R, S]{}, ErrOutOfRange
		}
	}
	return New[R, S](raw), nil
}

// Parse converts a plain decimal string, such as "-1.234", to a value.
// Digits beyond the scale are dropped using the scale's [Rounding].
// Parsing is limited to the 19 significant digits of [decimal.Decimal].
// Currency symbols and digit separators are not accepted.
func Parse[R Integer[R], S Scale](s string) (Value[R, S], error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Value[R, S]{}, fmt.Errorf("parsing value: %w", err)
	}
	return NewFromDecimal[R, S](d)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding values.
func MustParse[R Integer[R], S Scale](s string) Value[R, S] {
	v, err := Parse[R, S](s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return v
}

// smallInt converts a constant known to fit every representation.
func smallInt[R Integer[R]](v uint64) R {
	var z R
	r, ok := z.FromUint64(v)
	if !ok {
		panic(fmt.Sprintf("%T cannot hold %v", z, v))
	}
	return r
}

// Raw returns the scaled integer, amount × 10^digits.
func (v Value[R, S]) Raw() R {
	return v.raw
}

// Unit returns the scaled integer of 1, that is 10^digits.
func (v Value[R, S]) Unit() R {
	return smallInt[R](pow10[digitsOf[S]()])
}

// Rounding returns the rounding policy of the scale.
func (v Value[R, S]) Rounding() Rounding {
	var s S
	return s.Rounding()
}

// Float64 returns the nearest binary floating-point number.
// This conversion may lose data.
func (v Value[R, S]) Float64() float64 {
	return v.raw.Float64() / float64(pow10[digitsOf[S]()])
}

// Decimal returns the decimal representation of the value, with a scale
// equal to the number of digits of S.
// See also constructor [NewFromDecimal].
//
// Decimal returns an error if the value has more than [decimal.MaxPrec]
// significant digits.
func (v Value[R, S]) Decimal() (decimal.Decimal, error) {
	d, err := decimal.Parse(string(v.appendPlain(nil, "")))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", v, err)
	}
	if d.Scale() != digitsOf[S]() {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", v, ErrOutOfRange)
	}
	return d, nil
}

// Sign returns:
//
//	-1 if v < 0
//	 0 if v = 0
//	+1 if v > 0
func (v Value[R, S]) Sign() int {
	return v.raw.Sign()
}

// IsZero returns true if v = 0.
func (v Value[R, S]) IsZero() bool {
	return v.raw.IsZero()
}

// IsNeg returns true if v < 0.
func (v Value[R, S]) IsNeg() bool {
	return v.raw.Sign() < 0
}

// IsPos returns true if v > 0.
func (v Value[R, S]) IsPos() bool {
	return v.raw.Sign() > 0
}

// Neg returns a value with the opposite sign.
// For unsigned representations the result wraps around.
func (v Value[R, S]) Neg() Value[R, S] {
	return New[R, S](v.raw.Neg())
}

// Abs returns the absolute value.
func (v Value[R, S]) Abs() Value[R, S] {
	if v.IsNeg() {
		return v.Neg()
	}
	return v
}

// Add returns the exact sum v + w.
func (v Value[R, S]) Add(w Value[R, S]) Value[R, S] {
	return New[R, S](v.raw.Add(w.raw))
}

// Sub returns the exact difference v - w.
func (v Value[R, S]) Sub(w Value[R, S]) Value[R, S] {
	return New[R, S](v.raw.Sub(w.raw))
}

// Mul returns the product v × w rounded to the scale.
//
// The raw product carries twice the scale's digits. It is divided by the unit
// and the dropped digits are rounded by the scale's [Rounding]: with
// [HalfEven], remainders above half a unit round away from zero, and a
// remainder of exactly half rounds to the even neighbour.
//
// For example, for [Mill] the raw product of 1.234 and 4.567 is 5635678,
// which rounds to 5636, or $5.636.
// Negative products are rounded by magnitude, so -1.234 × 4.567 is -5.636.
func (v Value[R, S]) Mul(w Value[R, S]) Value[R, S] {
	return New[R, S](quoRound(v.Rounding(), v.raw.Mul(w.raw), v.Unit()))
}

// Quo returns the quotient v / w rounded to the scale.
// The numerator is widened by two units, so the truncated quotient carries
// twice the scale's digits, and it is then rounded back to the scale the same
// way as in [Value.Mul]. Digits below the doubled scale are dropped before
// rounding: for [Mill], 0.001 / 1.999 gives an intermediate of exactly 500,
// a tie, which rounds to $0.000.
// For scales without fractional digits the quotient is truncated.
//
// The numerator times the square of the unit must fit into R.
//
// Quo returns an error wrapping [ErrDivisionByZero] if w is zero.
func (v Value[R, S]) Quo(w Value[R, S]) (Value[R, S], error) {
	if w.IsZero() {
		return Value[R, S]{}, fmt.Errorf("computing [%v / %v]: %w", v, w, ErrDivisionByZero)
	}
	unit := v.Unit()
	x := v.raw.Mul(unit).Mul(unit).Quo(w.raw)
	return New[R, S](quoRound(v.Rounding(), x, unit)), nil
}

// Rem returns the exact remainder of v / w.
// The result has the sign of v.
//
// Rem returns an error wrapping [ErrDivisionByZero] if w is zero.
func (v Value[R, S]) Rem(w Value[R, S]) (Value[R, S], error) {
	if w.IsZero() {
		return Value[R, S]{}, fmt.Errorf("computing [%v %% %v]: %w", v, w, ErrDivisionByZero)
	}
	return New[R, S](v.raw.Rem(w.raw)), nil
}

// quoRound returns x / y rounded to an integer using policy m.
// Signs are handled by magnitude, so rounding is symmetric around zero.
func quoRound[R Integer[R]](m Rounding, x, y R) R {
	q, r := x.Quo(y), x.Rem(y)
	neg := x.Sign()*y.Sign() < 0
	if r.Sign() < 0 {
		r = r.Neg()
	}
	if y.Sign() < 0 {
		y = y.Neg()
	}
	if !roundsAway(m, q, r, y) {
		return q
	}
	one := smallInt[R](1)
	if neg {
		return q.Sub(one)
	}
	return q.Add(one)
}

// Split returns a slice of values that sum up to v, as equal as possible.
// If v cannot be divided equally, the remaining units are distributed among
// the first parts of the slice.
//
// Split returns an error if the number of parts is not a positive integer.
func (v Value[R, S]) Split(parts int) ([]Value[R, S], error) {
	if parts <= 0 {
		return nil, fmt.Errorf("splitting %v into %v parts: number of parts must be positive", v, parts)
	}
	n := smallInt[R](uint64(parts))
	quo, rem := v.raw.Quo(n), v.raw.Rem(n)
	ulp := smallInt[R](1)
	if rem.Sign() < 0 {
		ulp = ulp.Neg()
	}
	res := make([]Value[R, S], parts)
	for i := range res {
		res[i] = New[R, S](quo)
		// Remainder distribution
		if !rem.IsZero() {
			rem = rem.Sub(ulp)
			res[i] = New[R, S](quo.Add(ulp))
		}
	}
	return res, nil
}

// Cmp compares values and returns:
//
//	-1 if v < w
//	 0 if v = w
//	+1 if v > w
func (v Value[R, S]) Cmp(w Value[R, S]) int {
	return v.raw.Cmp(w.raw)
}

// Min returns the smaller value.
func (v Value[R, S]) Min(w Value[R, S]) Value[R, S] {
	if v.Cmp(w) <= 0 {
		return v
	}
	return w
}

// Max returns the larger value.
func (v Value[R, S]) Max(w Value[R, S]) Value[R, S] {
	if v.Cmp(w) >= 0 {
		return v
	}
	return w
}

// appendPlain appends the value as [-]<symbol><whole>.<fraction>, with the
// fraction zero-padded to the scale's digits.
func (v Value[R, S]) appendPlain(buf []byte, symbol string) []byte {
	digits := digitsOf[S]()
	unit := v.Unit()
	whole, frac := v.raw.Quo(unit), v.raw.Rem(unit)

	// Sign
	if v.IsNeg() {
		buf = append(buf, '-')
		whole, frac = whole.Neg(), frac.Neg()
	}

	// Currency symbol
	buf = append(buf, symbol...)

	// Integer digits
	buf = append(buf, whole.String()...)

	// Fractional digits
	if digits > 0 {
		buf = append(buf, '.')
		f := frac.String()
		for i := 0; i < digits-len(f); i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, f...)
	}
	return buf
}

// String implements the [fmt.Stringer] interface and returns a string
// such as "$1.234" or "-$1.234". Zero is never signed.
// See also method [Value.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Value[R, S]) String() string {
	var s S
	return string(v.appendPlain(make([]byte, 0, 32), s.Symbol()))
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example  | Description              |
//	| ------ | -------- | ------------------------ |
//	| %s, %v | $5.678   | Symbol and amount        |
//	| %q     | "$5.678" | Quoted symbol and amount |
//	| %f     | 5.678    | Amount                   |
//	| %d     | 5678     | Scaled integer           |
//
// The '+' flag prints a plus sign for non-negative values.
// The '-' flag pads with spaces on the right instead of the left.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (v Value[R, S]) Format(state fmt.State, verb rune) {
	var s S
	buf := make([]byte, 0, 32)

	// Opening quote
	if verb == 'q' {
		buf = append(buf, '"')
	}

	// Arithmetic sign
	if state.Flag('+') && !v.IsNeg() {
		buf = append(buf, '+')
	}

	// Amount
	switch verb {
	case 's', 'v', 'q':
		buf = v.appendPlain(buf, s.Symbol())
	case 'f':
		buf = v.appendPlain(buf, "")
	case 'd':
		buf = append(buf, v.raw.String()...)
	}

	// Closing quote
	if verb == 'q' {
		buf = append(buf, '"')
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(buf) {
		pad := make([]byte, w-len(buf))
		for i := range pad {
			pad[i] = ' '
		}
		if state.Flag('-') {
			buf = append(buf, pad...)
		} else {
			buf = append(pad, buf...)
		}
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 's', 'v', 'q', 'f', 'd':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(mills.Value="))
		state.Write(v.appendPlain(nil, s.Symbol()))
		state.Write([]byte(")"))
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// The text is a plain decimal without symbol, such as "-1.234".
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (v Value[R, S]) MarshalText() ([]byte, error) {
	return v.appendPlain(nil, ""), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (v *Value[R, S]) UnmarshalText(text []byte) error {
	var err error
	*v, err = Parse[R, S](string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", v, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The value is encoded as a quoted plain decimal, such as "1.234".
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (v Value[R, S]) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 34)
	text = append(text, '"')
	text = v.appendPlain(text, "")
	text = append(text, '"')
	return text, nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted strings and bare numbers are accepted; null leaves v unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (v *Value[R, S]) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return v.UnmarshalText(text)
}
