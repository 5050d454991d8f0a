// Package modulus wraps filippo.io/bigmod moduli for range checks of scalar
// values against a curve's group order.
package modulus

import (
	"math/big"

	"filippo.io/bigmod"
)

type Modulus struct {
	value bigmod.Modulus
}

// New builds a modulus from its decimal representation. It panics on invalid
// input and is intended for package-level initialization only.
func New(decimal string) *Modulus {
	n, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic("modulus: invalid decimal value: " + decimal)
	}
	m, err := bigmod.NewModulusFromBig(n)
	if err != nil {
		panic("modulus: invalid decimal value: " + decimal + ", error: " + err.Error())
	}
	return &Modulus{*m}
}

// Size returns the length in bytes of the modulus.
func (m *Modulus) Size() int {
	return (&m.value).Size()
}

// Check verifies that b, a big-endian integer of exactly Size() bytes, is
// smaller than the modulus.
func (m *Modulus) Check(b []byte) error {
	_, err := bigmod.NewNat().SetBytes(b, &m.value)
	return err
}
