package namecoin

import (
	"encoding/base64"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nameid/nameid/internal/domain/identity"
	apperrors "github.com/nameid/nameid/internal/errors"
)

// signedRecord generates a fresh keypair, derives the owner address from it,
// and returns the record plus a valid signature over message.
func signedRecord(t *testing.T, v *Verifier, name, message string, compressed bool) (identity.Record, string) {
	t.Helper()

	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	var serialized []byte
	if compressed {
		serialized = priv.PubKey().SerializeCompressed()
	} else {
		serialized = priv.PubKey().SerializeUncompressed()
	}

	record := identity.Record{
		Name:    name,
		Address: AddressForKey(serialized, MainnetP2PKHVersion),
	}
	sig := ecdsa.SignCompact(priv, v.messageDigest(message), compressed)
	return record, base64.StdEncoding.EncodeToString(sig)
}

func TestVerify_CompressedKey(t *testing.T) {
	v := NewVerifier()
	record, sig := signedRecord(t, v, "alice", "challenge-message", true)
	assert.NoError(t, v.Verify(record, "challenge-message", sig))
}

func TestVerify_UncompressedKey(t *testing.T) {
	v := NewVerifier()
	record, sig := signedRecord(t, v, "alice", "challenge-message", false)
	assert.NoError(t, v.Verify(record, "challenge-message", sig))
}

func TestVerify_WrongMessage(t *testing.T) {
	v := NewVerifier()
	record, sig := signedRecord(t, v, "alice", "challenge-message", true)

	err := v.Verify(record, "a different message", sig)
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestVerify_WrongAddress(t *testing.T) {
	v := NewVerifier()
	record, sig := signedRecord(t, v, "alice", "challenge-message", true)

	other, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	record.Address = AddressForKey(other.PubKey().SerializeCompressed(), MainnetP2PKHVersion)

	verifyErr := v.Verify(record, "challenge-message", sig)
	assert.True(t, apperrors.IsAuthentication(verifyErr))
}

func TestVerify_WrongMagic(t *testing.T) {
	signer := NewVerifierWithMagic("Other Chain Signed Message:\n")
	record, sig := signedRecord(t, signer, "alice", "challenge-message", true)

	err := NewVerifier().Verify(record, "challenge-message", sig)
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestVerify_MalformedSignatures(t *testing.T) {
	v := NewVerifier()
	record, _ := signedRecord(t, v, "alice", "challenge-message", true)

	for _, sig := range []string{
		"",
		"%%%not-base64%%%",
		base64.StdEncoding.EncodeToString([]byte("too short")),
	} {
		err := v.Verify(record, "challenge-message", sig)
		assert.True(t, apperrors.IsAuthentication(err), "signature %q", sig)
	}
}

func TestVerify_MissingAddress(t *testing.T) {
	err := NewVerifier().Verify(identity.Record{Name: "alice"}, "msg", "sig")
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestVerify_BadAddressEncoding(t *testing.T) {
	v := NewVerifier()
	record, sig := signedRecord(t, v, "alice", "challenge-message", true)
	record.Address = "0OIl-not-base58check"

	err := v.Verify(record, "challenge-message", sig)
	assert.True(t, apperrors.IsAuthentication(err))
}
