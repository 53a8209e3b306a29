package uint128

import (
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/tidwall/gjson"
)

func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText accepts anything FromString does. Unlike Parse, malformed or
// out of range text is an error.
func (u *Uint128) UnmarshalText(bts []byte) (err error) {
	v, err := fromText(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalJSON encodes u as a quoted decimal string, as most JSON decoders
// cannot represent integers this large.
func (u Uint128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON string or a bare JSON number.
func (u *Uint128) UnmarshalJSON(bts []byte) (err error) {
	if !gjson.ValidBytes(bts) {
		return fmt.Errorf("uint128: invalid JSON %q", string(bts))
	}

	var s string
	switch result := gjson.ParseBytes(bts); result.Type {
	case gjson.String:
		s = result.Str
	case gjson.Number:
		s = result.Raw
	default:
		return fmt.Errorf("uint128: invalid JSON %q", string(bts))
	}

	v, err := fromText(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func fromText(s string) (Uint128, error) {
	v, accurate, err := FromString(s)
	if err != nil {
		return v, err
	} else if !accurate {
		return v, fmt.Errorf("uint128: string %q overflows", s)
	}
	return v, nil
}

// MarshalWithEncoder implements bin.BinaryMarshaler, writing u as 16
// little-endian bytes (low limb first), the Borsh layout for u128.
func (u Uint128) MarshalWithEncoder(encoder *bin.Encoder) error {
	return encoder.WriteUint128(u.AsBin(), binary.LittleEndian)
}

// UnmarshalWithDecoder implements bin.BinaryUnmarshaler; see
// MarshalWithEncoder for the layout.
func (u *Uint128) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	v, err := decoder.ReadUint128(binary.LittleEndian)
	if err != nil {
		return fmt.Errorf("uint128: decode: %w", err)
	}
	*u = FromBin(v)
	return nil
}
