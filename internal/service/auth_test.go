package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/nameid/nameid/internal/domain/auth"
	"github.com/nameid/nameid/internal/domain/identity"
	apperrors "github.com/nameid/nameid/internal/errors"
	"github.com/nameid/nameid/internal/mocks"
	"github.com/nameid/nameid/internal/ports"
)

const testBaseURL = "https://id.example.com/"

type authFixture struct {
	registry *mocks.MockNameRegistry
	verifier *mocks.MockSignatureVerifier
	audit    *mocks.MockLoginAuditRepository
	svc      *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &authFixture{
		registry: mocks.NewMockNameRegistry(ctrl),
		verifier: mocks.NewMockSignatureVerifier(ctrl),
		audit:    mocks.NewMockLoginAuditRepository(ctrl),
	}
	f.svc = NewAuthService(AuthServiceOptions{
		Resolver: NewResolverService(f.registry),
		Verifier: f.verifier,
		Audit:    f.audit,
		BaseURL:  testBaseURL,
	})
	return f
}

func TestChallenge(t *testing.T) {
	f := newAuthFixture(t)
	assert.Equal(t,
		"https://id.example.com/?login=alice&nonce=n1",
		f.svc.Challenge("alice", "n1"))
	assert.Equal(t,
		"https://id.example.com/?login=d%2Fweird+name&nonce=n2",
		f.svc.Challenge("d/weird name", "n2"))
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture(t)
	record := identity.Record{Name: "alice", Address: "N1alice"}

	f.registry.EXPECT().Resolve(gomock.Any(), "alice").Return(record, nil)
	f.verifier.EXPECT().
		Verify(record, f.svc.Challenge("alice", "n1"), "valid-sig").
		Return(nil)
	f.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, attempt ports.LoginAttempt) error {
			assert.Equal(t, "alice", attempt.Name)
			assert.True(t, attempt.Succeeded)
			assert.Empty(t, attempt.Remark)
			assert.NotEmpty(t, attempt.ID)
			return nil
		})

	sess := &domainauth.Session{Token: "tok", Nonce: "n1"}
	err := f.svc.Login(context.Background(), sess, LoginInput{
		Name: "alice", Signature: "valid-sig", Nonce: "n1",
	})
	require.NoError(t, err)
	require.NotNil(t, sess.User)
	assert.Equal(t, "alice", sess.User.Name)
	assert.Empty(t, sess.Nonce, "nonce is consumed")
}

func TestLogin_BadSignature(t *testing.T) {
	f := newAuthFixture(t)
	record := identity.Record{Name: "alice", Address: "N1alice"}

	f.registry.EXPECT().Resolve(gomock.Any(), "alice").Return(record, nil)
	f.verifier.EXPECT().
		Verify(record, gomock.Any(), "bad-sig").
		Return(apperrors.Authentication("signature mismatch"))
	f.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, attempt ports.LoginAttempt) error {
			assert.False(t, attempt.Succeeded)
			assert.NotEmpty(t, attempt.Remark)
			return nil
		})

	sess := &domainauth.Session{Token: "tok", Nonce: "n1"}
	err := f.svc.Login(context.Background(), sess, LoginInput{
		Name: "alice", Signature: "bad-sig", Nonce: "n1",
	})
	assert.True(t, apperrors.IsAuthentication(err))
	assert.Nil(t, sess.User)
}

func TestLogin_NonceConsumedEvenOnFailure(t *testing.T) {
	f := newAuthFixture(t)
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	sess := &domainauth.Session{Token: "tok", Nonce: "n1"}
	err := f.svc.Login(context.Background(), sess, LoginInput{
		Name: "alice", Signature: "sig", Nonce: "stale",
	})
	assert.True(t, apperrors.IsAuthentication(err))
	assert.Empty(t, sess.Nonce, "a failed attempt still burns the nonce")
}

func TestLogin_NoIssuedNonce(t *testing.T) {
	f := newAuthFixture(t)
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	sess := &domainauth.Session{Token: "tok"}
	err := f.svc.Login(context.Background(), sess, LoginInput{
		Name: "alice", Signature: "sig", Nonce: "n1",
	})
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestLogin_MissingFields(t *testing.T) {
	f := newAuthFixture(t)
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	sess := &domainauth.Session{Token: "tok", Nonce: "n1"}
	err := f.svc.Login(context.Background(), sess, LoginInput{Signature: "sig", Nonce: "n1"})
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "identity", apperrors.GetField(err))

	sess.Nonce = "n2"
	err = f.svc.Login(context.Background(), sess, LoginInput{Name: "alice", Nonce: "n2"})
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "signature", apperrors.GetField(err))
}

func TestLogin_UnregisteredName(t *testing.T) {
	f := newAuthFixture(t)
	f.registry.EXPECT().
		Resolve(gomock.Any(), "nobody").
		Return(identity.Record{}, apperrors.NotFound("no record"))
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	sess := &domainauth.Session{Token: "tok", Nonce: "n1"}
	err := f.svc.Login(context.Background(), sess, LoginInput{
		Name: "nobody", Signature: "sig", Nonce: "n1",
	})
	assert.True(t, apperrors.IsAuthentication(err), "unregistered names read as login failures")
}

func TestLogin_RegistryUnavailable(t *testing.T) {
	f := newAuthFixture(t)
	f.registry.EXPECT().
		Resolve(gomock.Any(), "alice").
		Return(identity.Record{}, apperrors.Unavailable("daemon unreachable"))
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	sess := &domainauth.Session{Token: "tok", Nonce: "n1"}
	err := f.svc.Login(context.Background(), sess, LoginInput{
		Name: "alice", Signature: "sig", Nonce: "n1",
	})
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestLogin_AuditFailureDoesNotChangeOutcome(t *testing.T) {
	f := newAuthFixture(t)
	record := identity.Record{Name: "alice", Address: "N1alice"}

	f.registry.EXPECT().Resolve(gomock.Any(), "alice").Return(record, nil)
	f.verifier.EXPECT().Verify(record, gomock.Any(), "valid-sig").Return(nil)
	f.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(apperrors.Unavailable("database down"))

	sess := &domainauth.Session{Token: "tok", Nonce: "n1"}
	err := f.svc.Login(context.Background(), sess, LoginInput{
		Name: "alice", Signature: "valid-sig", Nonce: "n1",
	})
	assert.NoError(t, err)
	assert.NotNil(t, sess.User)
}

func TestLogin_WithoutAuditRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockNameRegistry(ctrl)
	verifier := mocks.NewMockSignatureVerifier(ctrl)
	record := identity.Record{Name: "alice", Address: "N1alice"}
	registry.EXPECT().Resolve(gomock.Any(), "alice").Return(record, nil)
	verifier.EXPECT().Verify(record, gomock.Any(), "valid-sig").Return(nil)

	svc := NewAuthService(AuthServiceOptions{
		Resolver: NewResolverService(registry),
		Verifier: verifier,
		BaseURL:  testBaseURL,
	})

	sess := &domainauth.Session{Token: "tok", Nonce: "n1"}
	err := svc.Login(context.Background(), sess, LoginInput{
		Name: "alice", Signature: "valid-sig", Nonce: "n1",
	})
	assert.NoError(t, err)
}

func TestLogout(t *testing.T) {
	f := newAuthFixture(t)
	sess := &domainauth.Session{User: &identity.Record{Name: "alice"}}

	f.svc.Logout(sess)
	assert.Nil(t, sess.User)

	f.svc.Logout(sess)
	assert.Nil(t, sess.User)
}
