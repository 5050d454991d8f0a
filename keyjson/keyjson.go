// Package keyjson implements the canonical textual encodings of secret and
// public keys. A secret key is written as a single hex string carrying its
// scalar; a public key is written as a {"x","y"} record of hex coordinate
// strings. The wrapper types SecretKey and PublicKey plug these encodings
// into encoding/json so keys can be embedded in larger serialized structures.
//
// The codecs are stateless pure transforms: they never retain or mutate the
// keys they encode, and every decode builds a fresh key through the
// cryptographic core's constructors.
package keyjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/Polkadex-Substrate/curv/curves"
	"github.com/Polkadex-Substrate/curv/hexenc"
)

var (
	// ErrUnknownField is returned when a public key record carries a field
	// other than "x" and "y".
	ErrUnknownField = errors.New("keyjson: unknown field in public key record")

	// ErrKeyConstruction is returned when the cryptographic core rejects a
	// syntactically valid scalar or point.
	ErrKeyConstruction = errors.New("keyjson: key construction rejected")
)

// EncodeSecretKey returns the canonical hex form of the key's scalar.
func EncodeSecretKey(sk curves.SecretKey) string {
	return hexenc.ToHex(sk.Scalar())
}

// DecodeSecretKey parses text as a hex scalar and builds a secret key on the
// given curve. Malformed hex yields an error satisfying
// errors.Is(err, hexenc.ErrParse); a rejection by the core yields an error
// satisfying errors.Is(err, ErrKeyConstruction).
func DecodeSecretKey(c curves.Curve, text string) (curves.SecretKey, error) {
	scalar, err := hexenc.FromHex(text)
	if err != nil {
		return nil, fmt.Errorf("keyjson: secret key: %w", err)
	}
	sk, err := c.SecretKeyFromScalar(scalar)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyConstruction, err)
	}
	return sk, nil
}

// EncodedPublicKey is the two-field record form of a public key.
type EncodedPublicKey struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// EncodePublicKey returns the record form of the key's affine coordinates.
func EncodePublicKey(pk curves.PublicKey) EncodedPublicKey {
	p := pk.Point()
	return EncodedPublicKey{X: hexenc.ToHex(p.X), Y: hexenc.ToHex(p.Y)}
}

// DecodePublicKey parses data as a {"x","y"} record and builds a public key
// on the given curve. The record's fields are consumed one by one, in any
// order; a duplicate field overwrites the earlier value. A coordinate never
// seen defaults to zero and is left for the curve's point validation to
// reject. A field other than "x" and "y" yields an error satisfying
// errors.Is(err, ErrUnknownField).
func DecodePublicKey(c curves.Curve, data []byte) (curves.PublicKey, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("keyjson: public key: %w", err)
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("keyjson: public key: expected object, got %v", tok)
	}

	point := curves.Point{X: new(big.Int), Y: new(big.Int)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("keyjson: public key: %w", err)
		}
		name := tok.(string) // inside an object, keys are always strings

		var coord *big.Int
		switch name {
		case "x":
			coord = point.X
		case "y":
			coord = point.Y
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}

		var text string
		if err := dec.Decode(&text); err != nil {
			return nil, fmt.Errorf("keyjson: public key field %q: %w", name, err)
		}
		value, err := hexenc.FromHex(text)
		if err != nil {
			return nil, fmt.Errorf("keyjson: public key field %q: %w", name, err)
		}
		coord.Set(value)
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, fmt.Errorf("keyjson: public key: %w", err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("keyjson: public key: unexpected trailing data %v", tok)
	}

	pk, err := c.PublicKeyFromPoint(point)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyConstruction, err)
	}
	return pk, nil
}
