package keyjson

import (
	"errors"
	"math/big"

	"github.com/Polkadex-Substrate/curv/curves"
)

// fakeCurve is an unvalidating stand-in for a cryptographic core so the
// codecs can be tested independently of real curve arithmetic. Rejections
// can be forced to exercise the construction-error paths.
type fakeCurve struct {
	rejectScalars bool
	rejectPoints  bool
}

func (c *fakeCurve) Name() string { return "fake" }

func (c *fakeCurve) SecretKeyFromScalar(v *big.Int) (curves.SecretKey, error) {
	if c.rejectScalars {
		return nil, errors.New("fake: scalar rejected")
	}
	return &fakeSecretKey{c, new(big.Int).Set(v)}, nil
}

func (c *fakeCurve) PublicKeyFromPoint(p curves.Point) (curves.PublicKey, error) {
	if c.rejectPoints {
		return nil, errors.New("fake: point rejected")
	}
	return &fakePublicKey{c, curves.Point{
		X: new(big.Int).Set(p.X),
		Y: new(big.Int).Set(p.Y),
	}}, nil
}

type fakeSecretKey struct {
	curve  *fakeCurve
	scalar *big.Int
}

func (k *fakeSecretKey) Curve() curves.Curve { return k.curve }

func (k *fakeSecretKey) Scalar() *big.Int { return new(big.Int).Set(k.scalar) }

func (k *fakeSecretKey) PublicKey() curves.PublicKey {
	return &fakePublicKey{k.curve, curves.Point{
		X: new(big.Int).Set(k.scalar),
		Y: new(big.Int).Set(k.scalar),
	}}
}

func (k *fakeSecretKey) Equal(other curves.SecretKey) bool {
	o, ok := other.(*fakeSecretKey)
	return ok && k.scalar.Cmp(o.scalar) == 0
}

type fakePublicKey struct {
	curve *fakeCurve
	point curves.Point
}

func (k *fakePublicKey) Curve() curves.Curve { return k.curve }

func (k *fakePublicKey) Point() curves.Point {
	return curves.Point{
		X: new(big.Int).Set(k.point.X),
		Y: new(big.Int).Set(k.point.Y),
	}
}

func (k *fakePublicKey) Equal(other curves.PublicKey) bool {
	o, ok := other.(*fakePublicKey)
	return ok && k.point.X.Cmp(o.point.X) == 0 && k.point.Y.Cmp(o.point.Y) == 0
}
