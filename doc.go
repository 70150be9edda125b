/*
Package mills implements fixed-point monetary values stored as scaled integers.
A [Value] wraps a single integer equal to the amount multiplied by a fixed
power of ten, so sums and differences are exact and products and quotients
are rounded in a controlled way instead of drifting like binary floats.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Signed and unsigned 64-bit and 128-bit representations
  - Scales and rounding policies fixed at compile time through type parameters
  - Banker's rounding for products and quotients of mills and cents
  - Conversions from floats, cents and [decimal.Decimal] values

# Representation

A Value has two type parameters. The representation R is one of [Int64],
[Uint64], [Int128] or [Uint128]; all of them implement the closed [Integer]
interface. The scale S is a zero-size type implementing [Scale], which fixes
the number of fractional digits, the [Rounding] policy and the display symbol.
[Mill] stores thousandths and [Cent] stores hundredths of a dollar.

Named instantiations such as [Milli64] (Value[Int64, Mill]) and [Centu128]
(Value[Uint128, Cent]) are generated for the common combinations.

# Operations

[Value.Add], [Value.Sub] and [Value.Rem] work directly on the scaled integers
and never round.

[Value.Mul] multiplies the scaled integers, which yields twice the scale's
digits, and rounds the product back to the scale.
[Value.Quo] widens the numerator by two units, truncates the quotient at
twice the scale's digits and rounds it back to the scale the same way.
With [HalfEven], a remainder of exactly half a unit rounds to the even
neighbour, so long sums of rounded products carry no upward bias.

# Supported Ranges

Add, Sub and Mul wrap around on overflow, like the underlying integer.
The raw product in Mul must fit into R: with [Milli64], factors of about
$3,000,000 each already overflow. Quo needs the same room for the numerator
times the square of the unit, about $9,000,000,000 for [Milli64].
Use [Milli128] when large products or quotients are expected.

# Errors

[Value.Quo] and [Value.Rem] return an error wrapping [ErrDivisionByZero] for
a zero divisor. Float and decimal conversions return an error wrapping
[ErrOutOfRange] when the result does not fit into R.
The Must variants of the constructors panic instead.
*/
package mills
