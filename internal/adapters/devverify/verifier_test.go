package devverify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nameid/nameid/internal/domain/identity"
	apperrors "github.com/nameid/nameid/internal/errors"
)

func TestVerify(t *testing.T) {
	v := NewVerifier()
	record := identity.Record{Name: "alice", Address: "N1alice"}

	assert.NoError(t, v.Verify(record, "any message", "dev:alice"))

	for _, sig := range []string{"", "dev:bob", "alice", "DEV:alice"} {
		err := v.Verify(record, "any message", sig)
		assert.True(t, apperrors.IsAuthentication(err), "signature %q", sig)
	}
}
