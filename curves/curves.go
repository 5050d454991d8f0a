// Package curves defines the boundary to the cryptographic core: opaque
// secret and public key handles over a fixed elliptic curve, constructed and
// validated by a concrete Curve implementation. Two cores are shipped,
// Secp256k1 and P256; the key codecs in package keyjson work against any
// implementation of these interfaces.
package curves

import (
	"fmt"
	"math/big"
)

// Point is an affine curve point. Coordinates are non-negative integers;
// validation against the curve equation happens in Curve.PublicKeyFromPoint.
type Point struct {
	X *big.Int
	Y *big.Int
}

// Curve constructs and validates key material for one fixed elliptic curve.
type Curve interface {
	// Name returns the curve's identifier, usable with ByName.
	Name() string

	// SecretKeyFromScalar builds a secret key from the given scalar.
	// Implementations reject scalars outside [1, order-1].
	SecretKeyFromScalar(v *big.Int) (SecretKey, error)

	// PublicKeyFromPoint builds a public key from the given affine point.
	// Implementations reject points that do not lie on the curve, including
	// the point at infinity.
	PublicKeyFromPoint(p Point) (PublicKey, error)
}

// SecretKey is an opaque handle to a private scalar.
type SecretKey interface {
	Curve() Curve

	// Scalar returns the key's underlying scalar as a fresh big.Int.
	Scalar() *big.Int

	// PublicKey derives the corresponding public key, the scalar multiple of
	// the curve's base point.
	PublicKey() PublicKey

	Equal(other SecretKey) bool
}

// PublicKey is an opaque handle to a validated curve point.
type PublicKey interface {
	Curve() Curve

	// Point returns the key's affine coordinates as fresh big.Ints.
	Point() Point

	Equal(other PublicKey) bool
}

// Supported lists the curves shipped with this module.
var Supported = []Curve{Secp256k1, P256}

// ByName returns the supported curve with the given name, or nil if there is
// none.
func ByName(name string) Curve {
	for _, c := range Supported {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// scalarBytes returns the fixed-length big-endian encoding of v, or an error
// if v is negative or does not fit in size bytes.
func scalarBytes(v *big.Int, size int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, fmt.Errorf("curves: scalar must be non-negative")
	}
	if (v.BitLen()+7)/8 > size {
		return nil, fmt.Errorf("curves: scalar exceeds %d bytes", size)
	}
	b := make([]byte, size)
	v.FillBytes(b)
	return b, nil
}

// encodeUncompressed builds the SEC 1 uncompressed encoding (0x04 || X || Y)
// of p with size-byte coordinates. On-curve validation is left to the curve
// implementation parsing the result.
func encodeUncompressed(p Point, size int) ([]byte, error) {
	if p.X == nil || p.Y == nil {
		return nil, fmt.Errorf("curves: point with nil coordinate")
	}
	if p.X.Sign() < 0 || p.Y.Sign() < 0 {
		return nil, fmt.Errorf("curves: point coordinates must be non-negative")
	}
	if (p.X.BitLen()+7)/8 > size || (p.Y.BitLen()+7)/8 > size {
		return nil, fmt.Errorf("curves: point coordinate exceeds %d bytes", size)
	}
	encoded := make([]byte, 1+2*size)
	encoded[0] = 4 // SEC 1, Section 2.3.3, uncompressed form
	p.X.FillBytes(encoded[1 : 1+size])
	p.Y.FillBytes(encoded[1+size:])
	return encoded, nil
}
