package moneta

import (
	"fmt"
	"math/big"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a plain view of the fields of a money.
// Modifying the snapshot does not affect the money.
type Snapshot struct {
	Amount   *big.Int
	Currency Currency
	Scale    int
}

// Snapshot returns the fields of the money.
func (m Money) Snapshot() Snapshot {
	return Snapshot{Amount: m.Amount(), Currency: m.Curr(), Scale: m.Scale()}
}

// wireMoney is the serialized form of a money, e.g.
// {"amount":"5000n","currency":"USD","scale":2}.
type wireMoney struct {
	Amount   *string `json:"amount" msgpack:"amount"`
	Currency string  `json:"currency" msgpack:"currency"`
	Scale    *int    `json:"scale" msgpack:"scale"`
}

func (m Money) wire() wireMoney {
	amount := m.amt().String() + string(amountMarker)
	scale := m.Scale()
	return wireMoney{Amount: &amount, Currency: m.Curr().Code(), Scale: &scale}
}

// money converts the serialized form back to a money.
// A missing amount or scale is treated as 0.
func (w wireMoney) money(r *Registry) (Money, error) {
	c, err := r.Resolve(ByCode(w.Currency))
	if err != nil {
		return Money{}, err
	}
	amount, scale := "0", 0
	if w.Amount != nil {
		amount = *w.Amount
	}
	if w.Scale != nil {
		scale = *w.Scale
	}
	return Parse(c, amount, scale)
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is encoded as a string with the marker 'n' and the currency
// as its code, e.g. {"amount":"5000n","currency":"USD","scale":2}.
// Decoding requires a registry, see [Registry.DecodeJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(m.wire())
	if err != nil {
		return nil, fmt.Errorf("encoding %v: %w", m, err)
	}
	return data, nil
}

// DecodeJSON decodes a money produced by [Money.MarshalJSON].
// The amount may be a bare integer string such as "5000".
//
// DecodeJSON returns an error if the data is not a JSON object,
// the amount is not an integer string, the currency code is absent from
// the registry, or the scale is negative.
func (r *Registry) DecodeJSON(data []byte) (Money, error) {
	var w wireMoney
	if err := json.Unmarshal(data, &w); err != nil {
		return Money{}, fmt.Errorf("decoding money: %w", err)
	}
	m, err := w.money(r)
	if err != nil {
		return Money{}, fmt.Errorf("decoding money: %w", err)
	}
	return m, nil
}

// EncodeMsgpack implements the [msgpack.CustomEncoder] interface.
// The money is encoded as a map with the same keys and values as in
// [Money.MarshalJSON].
//
// [msgpack.CustomEncoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomEncoder
func (m Money) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(m.wire())
}

// DecodeMsgpack decodes a money produced by [Money.EncodeMsgpack].
func (r *Registry) DecodeMsgpack(data []byte) (Money, error) {
	var w wireMoney
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return Money{}, fmt.Errorf("decoding money: %w", err)
	}
	m, err := w.money(r)
	if err != nil {
		return Money{}, fmt.Errorf("decoding money: %w", err)
	}
	return m, nil
}
