package moneta

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

func TestCodec_Interfaces(t *testing.T) {
	var i any = Money{}
	if _, ok := i.(json.Marshaler); !ok {
		t.Errorf("%T does not implement json.Marshaler", i)
	}
	if _, ok := i.(msgpack.CustomEncoder); !ok {
		t.Errorf("%T does not implement msgpack.CustomEncoder", i)
	}

	i = &Registry{}
	if _, ok := i.(json.Unmarshaler); ok {
		t.Errorf("%T implements json.Unmarshaler", i)
	}
	if _, ok := i.(msgpack.Unmarshaler); ok {
		t.Errorf("%T implements msgpack.Unmarshaler", i)
	}
}

func TestMoney_Snapshot(t *testing.T) {
	m := NewDefault(USD, 5000)
	s := m.Snapshot()
	if s.Amount.Int64() != 5000 || !s.Currency.Equal(USD) || s.Scale != 2 {
		t.Errorf("%v.Snapshot() = %+v", m, s)
	}
	s.Amount.SetInt64(1)
	if m.Amount().Int64() != 5000 {
		t.Errorf("modifying the snapshot changed %v", m)
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{NewDefault(USD, 5000), `{"amount":"5000n","currency":"USD","scale":2}`},
		{NewDefault(USD, -5000), `{"amount":"-5000n","currency":"USD","scale":2}`},
		{MustNewFromInt64(JPY, 0, 0), `{"amount":"0n","currency":"JPY","scale":0}`},
		{MustParse(USD, "123456789012345678901234567890", 7), `{"amount":"123456789012345678901234567890n","currency":"USD","scale":7}`},
	}
	for _, tt := range tests {
		got, err := tt.m.MarshalJSON()
		if err != nil {
			t.Errorf("%v.MarshalJSON() failed: %v", tt.m, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("%v.MarshalJSON() = %s, want %s", tt.m, got, tt.want)
		}
	}
}

func TestRegistry_DecodeJSON(t *testing.T) {
	gbp := MustNewMultiRadixCurrency("GBP", []int64{20, 12}, 1)
	r, err := DefaultRegistry().With(gbp)
	if err != nil {
		t.Fatalf("With(%v) failed: %v", gbp, err)
	}

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			data string
			want Money
		}{
			{`{"amount":"5000n","currency":"USD","scale":2}`, NewDefault(USD, 5000)},
			{`{"amount":"5000","currency":"USD","scale":2}`, NewDefault(USD, 5000)},
			{`{"amount":"-5000n","currency":"USD","scale":3}`, MustNewFromInt64(USD, -5000, 3)},
			{`{"scale":2,"currency":"EUR","amount":"1"}`, NewDefault(EUR, 1)},
			{`{"amount":"267n","currency":"GBP","scale":1}`, NewDefault(gbp, 267)},
			{`{"currency":"USD","scale":2}`, NewDefault(USD, 0)},
			{`{"amount":"7n","currency":"USD"}`, MustNewFromInt64(USD, 7, 0)},
		}
		for _, tt := range tests {
			got, err := r.DecodeJSON([]byte(tt.data))
			if err != nil {
				t.Errorf("DecodeJSON(%s) failed: %v", tt.data, err)
				continue
			}
			if !got.Equal(tt.want) || !got.Curr().Compatible(tt.want.Curr()) {
				t.Errorf("DecodeJSON(%s) = %v at scale %v, want %v at scale %v", tt.data, got, got.Scale(), tt.want, tt.want.Scale())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			data string
			want error
		}{
			"decimal amount":  {`{"amount":"10.45","currency":"USD","scale":2}`, ErrInvalidAmount},
			"signed amount":   {`{"amount":"+1","currency":"USD","scale":2}`, ErrInvalidAmount},
			"empty amount":    {`{"amount":"","currency":"USD","scale":2}`, ErrInvalidAmount},
			"marker only":     {`{"amount":"n","currency":"USD","scale":2}`, ErrInvalidAmount},
			"unknown code":    {`{"amount":"1n","currency":"XTS","scale":2}`, ErrUnknownCurrencyCode},
			"missing code":    {`{"amount":"1n","scale":2}`, ErrUnknownCurrencyCode},
			"negative scale":  {`{"amount":"1n","currency":"USD","scale":-1}`, ErrInvalidScale},
			"numeric amount":  {`{"amount":1,"currency":"USD","scale":2}`, nil},
			"fraction scale":  {`{"amount":"1n","currency":"USD","scale":1.5}`, nil},
			"not an object":   {`"USD 10.45"`, nil},
			"malformed input": {`{"amount":`, nil},
		}
		for name, tt := range tests {
			_, err := r.DecodeJSON([]byte(tt.data))
			if err == nil {
				t.Errorf("%v: DecodeJSON(%s) did not fail", name, tt.data)
				continue
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("%v: DecodeJSON(%s) = %v, want %v", name, tt.data, err, tt.want)
			}
		}
	})
}

func TestMoney_JSON_RoundTrip(t *testing.T) {
	r := DefaultRegistry()
	tests := []Money{
		NewDefault(USD, 1045),
		NewDefault(JPY, -1),
		MustNewFromInt64(MGA, 13, 4),
		MustParse(CHF, "-98765432109876543210", 9),
	}
	for _, m := range tests {
		data, err := m.MarshalJSON()
		if err != nil {
			t.Errorf("%v.MarshalJSON() failed: %v", m, err)
			continue
		}
		got, err := r.DecodeJSON(data)
		if err != nil {
			t.Errorf("DecodeJSON(%s) failed: %v", data, err)
			continue
		}
		if !got.Equal(m) {
			t.Errorf("DecodeJSON(%v.MarshalJSON()) = %v, want %v", m, got, m)
		}
	}
}

func TestMoney_Msgpack(t *testing.T) {
	r := DefaultRegistry()
	t.Run("success", func(t *testing.T) {
		tests := []Money{
			NewDefault(USD, 5000),
			NewDefault(EUR, -1),
			MustNewFromInt64(MGA, 26, 2),
			MustParse(USD, "123456789012345678901234567890", 2),
		}
		for _, m := range tests {
			data, err := msgpack.Marshal(m)
			if err != nil {
				t.Errorf("msgpack.Marshal(%v) failed: %v", m, err)
				continue
			}
			got, err := r.DecodeMsgpack(data)
			if err != nil {
				t.Errorf("DecodeMsgpack(%v) failed: %v", m, err)
				continue
			}
			if !got.Equal(m) {
				t.Errorf("DecodeMsgpack(msgpack.Marshal(%v)) = %v, want %v", m, got, m)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		data, err := msgpack.Marshal(map[string]any{"amount": "1.5", "currency": "USD", "scale": 2})
		if err != nil {
			t.Fatalf("msgpack.Marshal failed: %v", err)
		}
		if _, err := r.DecodeMsgpack(data); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("DecodeMsgpack(%x) = %v, want %v", data, err, ErrInvalidAmount)
		}
		if _, err := r.DecodeMsgpack([]byte{0xc1}); err == nil {
			t.Errorf("DecodeMsgpack(0xc1) did not fail")
		}
	})
}
