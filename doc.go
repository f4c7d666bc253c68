/*
Package moneta implements exact monetary values in decimal and non-decimal
currencies.
A monetary value is an arbitrary-precision integer amount of the smallest
subdivision of a [Currency] together with a scale, so no floating-point
arithmetic is ever involved.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Arbitrary-precision amounts backed by [math/big]
  - Currencies with a single radix, such as US Dollars, and with several
    radices, such as the pre-decimal pound sterling
  - Scale transformations with pluggable rounding strategies
  - Allocation of amounts by ratios without losing a single unit
  - Decomposition of amounts into major and minor units
  - JSON and MessagePack encodings

# Representation

A [Money] consists of an amount, a [Currency] and a scale.
Its value equals amount / EffectiveRadix^scale major units, where the effective
radix is the radix of a single-radix currency or the product of the radices
of a multi-radix one.
For example, {1045, USD, 2} is 10.45 US Dollars and {267, GBP with radices
[20, 12], 1} is 1 pound, 2 shillings and 3 pence.

Currencies are made available by code through a [Registry].
There is no global catalogue: the built-in currencies are returned by
[DefaultRegistry] and custom ones are added with [Registry.With].

# Operations

Moneys in compatible currencies can be added, subtracted and compared,
the operands are brought to the largest of their scales first.
Moneys can be multiplied by integers and by a [ScaledAmount], which expresses
fractional multipliers and ratios without floats.
[Money.Allocate] distributes an amount by ratios using the largest remainder
method, and the parts always sum up to the original amount.

# Scale and Rounding

[Money.TransformScale] changes the scale of a money.
Raising the scale is always exact, lowering it uses a [Rounding] strategy,
such as [HalfEven], or a custom divide function, see [Custom].
[Money.TrimScale] removes trailing zero digits down to the exponent of the
currency.

Equality is structural: {100, USD, 2} and {1000, USD, 3} represent the same
quantity but are not [Money.Equal].
Use [Money.SameAmount] or [Money.Cmp] to compare quantities.

# Errors

Operations return errors that wrap one of the exported sentinels, such as
[ErrUnequalCurrencies] or [ErrInvalidScale]; use [errors.Is] to match them.
Must functions panic instead of returning errors, they simplify safe
initialization of global variables.
*/
package moneta
