package curves

import (
	"crypto/subtle"
	"fmt"
	"math/big"

	"filippo.io/nistec"
	"github.com/Polkadex-Substrate/curv/internal/modulus"
)

// P256 is the NIST P-256 curve, backed by the filippo.io/nistec package.
// Scalars are range-checked against the group order; points are validated by
// nistec when parsing the SEC 1 uncompressed encoding.
var P256 Curve = p256Curve{}

// NIST 800-186, Section 3.2.1.3
var p256Order = modulus.New("115792089210356248762697446949407573529996955224135760342422259061068512044369")

type p256Curve struct{}

func (p256Curve) Name() string { return "P256" }

func (c p256Curve) SecretKeyFromScalar(v *big.Int) (SecretKey, error) {
	b, err := scalarBytes(v, p256Order.Size())
	if err != nil {
		return nil, err
	}
	if err := p256Order.Check(b); err != nil {
		return nil, fmt.Errorf("curves: scalar is not smaller than the P256 group order: %w", err)
	}
	if v.Sign() == 0 {
		return nil, fmt.Errorf("curves: scalar is zero")
	}
	return &p256SecretKey{b}, nil
}

func (c p256Curve) PublicKeyFromPoint(p Point) (PublicKey, error) {
	encoded, err := encodeUncompressed(p, p256Order.Size())
	if err != nil {
		return nil, err
	}
	value, err := nistec.NewP256Point().SetBytes(encoded)
	if err != nil {
		return nil, fmt.Errorf("curves: point is not on the P256 curve: %w", err)
	}
	return &p256PublicKey{value, encoded}, nil
}

type p256SecretKey struct {
	scalar []byte // 32 bytes, big-endian, in [1, order-1]
}

func (sk *p256SecretKey) Curve() Curve { return P256 }

func (sk *p256SecretKey) Scalar() *big.Int {
	return new(big.Int).SetBytes(sk.scalar)
}

func (sk *p256SecretKey) PublicKey() PublicKey {
	value, err := nistec.NewP256Point().ScalarBaseMult(sk.scalar)
	if err != nil {
		// The scalar's length and range are fixed at construction time.
		panic("curves: " + err.Error())
	}
	return &p256PublicKey{value, value.Bytes()}
}

func (sk *p256SecretKey) Equal(other SecretKey) bool {
	o, ok := other.(*p256SecretKey)
	return ok && subtle.ConstantTimeCompare(sk.scalar, o.scalar) == 1
}

type p256PublicKey struct {
	value   *nistec.P256Point
	encoded []byte // 65 bytes, SEC 1 uncompressed encoding (cached)
}

func (pk *p256PublicKey) Curve() Curve { return P256 }

func (pk *p256PublicKey) Point() Point {
	size := p256Order.Size()
	return Point{
		X: new(big.Int).SetBytes(pk.encoded[1 : 1+size]),
		Y: new(big.Int).SetBytes(pk.encoded[1+size:]),
	}
}

func (pk *p256PublicKey) Equal(other PublicKey) bool {
	o, ok := other.(*p256PublicKey)
	return ok && subtle.ConstantTimeCompare(pk.encoded, o.encoded) == 1
}
