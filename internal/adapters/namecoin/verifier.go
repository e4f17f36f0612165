package namecoin

// Package namecoin verifies signed-message login signatures against the
// registry address that owns an identity name. The scheme is the daemon's
// signmessage convention: an ECDSA compact signature over the double-SHA256
// of the magic-prefixed message, recoverable to the signing public key.

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/nameid/nameid/internal/domain/identity"
	apperrors "github.com/nameid/nameid/internal/errors"
)

// messageMagic is the prefix the daemon mixes into every signed message so
// signatures can never be replayed as transactions.
const messageMagic = "Namecoin Signed Message:\n"

// compactSigLen is the length of a recoverable compact signature.
const compactSigLen = 65

// Verifier implements ports.SignatureVerifier for signmessage signatures.
type Verifier struct {
	magic string
}

// NewVerifier creates a signed-message verifier with the standard magic.
func NewVerifier() *Verifier {
	return &Verifier{magic: messageMagic}
}

// NewVerifierWithMagic creates a verifier for a chain with a different
// message magic.
func NewVerifierWithMagic(magic string) *Verifier {
	return &Verifier{magic: magic}
}

// Verify checks that signature is a valid signed-message signature over
// message by the key behind the record's owner address. Every failure mode
// maps to an authentication error; callers never distinguish malformed from
// merely wrong signatures.
func (v *Verifier) Verify(record identity.Record, message, signature string) error {
	if record.Address == "" {
		return apperrors.Authentication("identity record has no owner address")
	}

	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeAuthentication, "signature is not valid base64")
	}
	if len(sig) != compactSigLen {
		return apperrors.Authenticationf("signature has %d bytes, want %d", len(sig), compactSigLen)
	}

	pubKey, compressed, err := ecdsa.RecoverCompact(sig, v.messageDigest(message))
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeAuthentication, "signature does not recover a public key")
	}

	var serialized []byte
	if compressed {
		serialized = pubKey.SerializeCompressed()
	} else {
		serialized = pubKey.SerializeUncompressed()
	}

	wantHash, _, err := base58.CheckDecode(record.Address)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeAuthentication, "owner address is not valid base58check")
	}
	if !bytes.Equal(hash160(serialized), wantHash) {
		return apperrors.Authenticationf("signature was not made by the owner of %q", record.Name)
	}
	return nil
}

// messageDigest computes doubleSHA256(varstr(magic) || varstr(message)).
func (v *Verifier) messageDigest(message string) []byte {
	var buf bytes.Buffer
	writeVarString(&buf, v.magic)
	writeVarString(&buf, message)
	first := sha256.Sum256(buf.Bytes())
	second := sha256.Sum256(first[:])
	return second[:]
}

// writeVarString writes a compact-size length prefix followed by the bytes.
func writeVarString(buf *bytes.Buffer, s string) {
	n := uint64(len(s))
	switch {
	case n < 0xfd:
		buf.WriteByte(byte(n))
	case n <= 0xffff:
		buf.WriteByte(0xfd)
		_ = binary.Write(buf, binary.LittleEndian, uint16(n))
	case n <= 0xffffffff:
		buf.WriteByte(0xfe)
		_ = binary.Write(buf, binary.LittleEndian, uint32(n))
	default:
		buf.WriteByte(0xff)
		_ = binary.Write(buf, binary.LittleEndian, n)
	}
	buf.WriteString(s)
}

// hash160 is RIPEMD160(SHA256(b)), the address hash of a public key.
func hash160(b []byte) []byte {
	sha := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

// AddressForKey derives the base58check address for a serialized public key
// under the given version byte. Exposed for tests and tooling.
func AddressForKey(serializedPubKey []byte, version byte) string {
	return base58.CheckEncode(hash160(serializedPubKey), version)
}

// MainnetP2PKHVersion is the mainnet pay-to-pubkey-hash address version.
const MainnetP2PKHVersion byte = 52
