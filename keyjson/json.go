package keyjson

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Polkadex-Substrate/curv/curves"
)

// SecretKey embeds a secret key in a JSON structure, serialized as its
// canonical hex string. Curve must be set before unmarshaling; it selects
// the cryptographic core used to rebuild the key.
type SecretKey struct {
	Curve curves.Curve
	Key   curves.SecretKey
}

func (k SecretKey) MarshalJSON() ([]byte, error) {
	if k.Key == nil {
		return nil, errors.New("keyjson: marshaling zero-valued secret key")
	}
	return json.Marshal(EncodeSecretKey(k.Key))
}

func (k *SecretKey) UnmarshalJSON(data []byte) error {
	if k.Curve == nil {
		return errors.New("keyjson: unmarshaling secret key without a curve")
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("keyjson: secret key: %w", err)
	}
	key, err := DecodeSecretKey(k.Curve, text)
	if err != nil {
		return err
	}
	k.Key = key
	return nil
}

// PublicKey embeds a public key in a JSON structure, serialized as its
// {"x","y"} record. Curve must be set before unmarshaling.
type PublicKey struct {
	Curve curves.Curve
	Key   curves.PublicKey
}

func (k PublicKey) MarshalJSON() ([]byte, error) {
	if k.Key == nil {
		return nil, errors.New("keyjson: marshaling zero-valued public key")
	}
	return json.Marshal(EncodePublicKey(k.Key))
}

func (k *PublicKey) UnmarshalJSON(data []byte) error {
	if k.Curve == nil {
		return errors.New("keyjson: unmarshaling public key without a curve")
	}
	key, err := DecodePublicKey(k.Curve, data)
	if err != nil {
		return err
	}
	k.Key = key
	return nil
}
