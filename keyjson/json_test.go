package keyjson

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Polkadex-Substrate/curv/curves"
)

func TestSecretKeyEmbeddedJSON(t *testing.T) {
	sk, err := curves.Secp256k1.SecretKeyFromScalar(big.NewInt(123456))
	require.NoError(t, err)

	msg := struct {
		SK SecretKey `json:"sk"`
	}{SK: SecretKey{Curve: curves.Secp256k1, Key: sk}}

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Equal(t, `{"sk":"1e240"}`, string(data))

	decoded := struct {
		SK SecretKey `json:"sk"`
	}{SK: SecretKey{Curve: curves.Secp256k1}}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, sk.Equal(decoded.SK.Key))
}

func TestPublicKeyEmbeddedJSON(t *testing.T) {
	pk := testPublicKey(t)

	msg := struct {
		PK PublicKey `json:"pk"`
	}{PK: PublicKey{Curve: curves.Secp256k1, Key: pk}}

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Equal(t, `{"pk":{"x":"`+testPointX+`","y":"`+testPointY+`"}}`, string(data))

	decoded := struct {
		PK PublicKey `json:"pk"`
	}{PK: PublicKey{Curve: curves.Secp256k1}}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, pk.Equal(decoded.PK.Key))

	// Re-encoding the decoded structure reproduces byte-identical output.
	reencoded, err := json.Marshal(struct {
		PK PublicKey `json:"pk"`
	}{PK: PublicKey{Curve: curves.Secp256k1, Key: decoded.PK.Key}})
	require.NoError(t, err)
	assert.Equal(t, string(data), string(reencoded))
}

func TestUnmarshalWithoutCurveFails(t *testing.T) {
	var sk SecretKey
	require.Error(t, json.Unmarshal([]byte(`"1e240"`), &sk))

	var pk PublicKey
	require.Error(t, json.Unmarshal([]byte(`{"x":"1","y":"2"}`), &pk))
}

func TestMarshalZeroValuedKeyFails(t *testing.T) {
	_, err := json.Marshal(SecretKey{Curve: curves.Secp256k1})
	require.Error(t, err)

	_, err = json.Marshal(PublicKey{Curve: curves.Secp256k1})
	require.Error(t, err)
}

func TestUnmarshalErrorIdentifiesFailingField(t *testing.T) {
	decoded := struct {
		PK PublicKey `json:"pk"`
	}{PK: PublicKey{Curve: curves.Secp256k1}}

	err := json.Unmarshal([]byte(`{"pk":{"x":"nothex","y":"2"}}`), &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestUnmarshalUnknownFieldIsRecoverable(t *testing.T) {
	decoded := struct {
		PK PublicKey `json:"pk"`
	}{PK: PublicKey{Curve: curves.Secp256k1}}

	err := json.Unmarshal([]byte(`{"pk":{"x":"1","extra":"2"}}`), &decoded)
	require.ErrorIs(t, err, ErrUnknownField)
}
