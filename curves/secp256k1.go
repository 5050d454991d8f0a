package curves

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 is the curve y² = x³ + 7 used by Bitcoin and Ethereum, backed by
// the decred secp256k1 package.
var Secp256k1 Curve = secp256k1Curve{}

const secp256k1CoordinateLength = 32

type secp256k1Curve struct{}

func (secp256k1Curve) Name() string { return "secp256k1" }

func (c secp256k1Curve) SecretKeyFromScalar(v *big.Int) (SecretKey, error) {
	b, err := scalarBytes(v, secp256k1CoordinateLength)
	if err != nil {
		return nil, err
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow {
		return nil, fmt.Errorf("curves: scalar is not smaller than the secp256k1 group order")
	}
	if s.IsZero() {
		return nil, fmt.Errorf("curves: scalar is zero")
	}
	return &secp256k1SecretKey{secp256k1.NewPrivateKey(&s)}, nil
}

func (c secp256k1Curve) PublicKeyFromPoint(p Point) (PublicKey, error) {
	encoded, err := encodeUncompressed(p, secp256k1CoordinateLength)
	if err != nil {
		return nil, err
	}
	key, err := secp256k1.ParsePubKey(encoded)
	if err != nil {
		return nil, fmt.Errorf("curves: point is not on the secp256k1 curve: %w", err)
	}
	return &secp256k1PublicKey{key}, nil
}

type secp256k1SecretKey struct {
	key *secp256k1.PrivateKey
}

func (sk *secp256k1SecretKey) Curve() Curve { return Secp256k1 }

func (sk *secp256k1SecretKey) Scalar() *big.Int {
	return new(big.Int).SetBytes(sk.key.Serialize())
}

func (sk *secp256k1SecretKey) PublicKey() PublicKey {
	return &secp256k1PublicKey{sk.key.PubKey()}
}

func (sk *secp256k1SecretKey) Equal(other SecretKey) bool {
	o, ok := other.(*secp256k1SecretKey)
	return ok && sk.key.Key.Equals(&o.key.Key)
}

type secp256k1PublicKey struct {
	key *secp256k1.PublicKey
}

func (pk *secp256k1PublicKey) Curve() Curve { return Secp256k1 }

func (pk *secp256k1PublicKey) Point() Point {
	encoded := pk.key.SerializeUncompressed()
	return Point{
		X: new(big.Int).SetBytes(encoded[1 : 1+secp256k1CoordinateLength]),
		Y: new(big.Int).SetBytes(encoded[1+secp256k1CoordinateLength:]),
	}
}

func (pk *secp256k1PublicKey) Equal(other PublicKey) bool {
	o, ok := other.(*secp256k1PublicKey)
	return ok && pk.key.IsEqual(o.key)
}
