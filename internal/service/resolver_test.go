package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nameid/nameid/internal/domain/identity"
	apperrors "github.com/nameid/nameid/internal/errors"
	"github.com/nameid/nameid/internal/mocks"
)

func TestResolve_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockNameRegistry(ctrl)
	registry.EXPECT().
		Resolve(gomock.Any(), "alice").
		Return(identity.Record{Name: "alice", Address: "N1alice"}, nil)

	svc := NewResolverService(registry)
	rec, err := svc.Resolve(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", rec.Name)
}

func TestResolve_TrimsWhitespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockNameRegistry(ctrl)
	registry.EXPECT().
		Resolve(gomock.Any(), "alice").
		Return(identity.Record{Name: "alice"}, nil)

	svc := NewResolverService(registry)
	_, err := svc.Resolve(context.Background(), "  alice\n")
	assert.NoError(t, err)
}

func TestResolve_EmptyNameSkipsRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT calls: the registry must not be touched.
	registry := mocks.NewMockNameRegistry(ctrl)

	svc := NewResolverService(registry)
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.Resolve(context.Background(), name)
		assert.True(t, apperrors.IsNotFound(err), "name %q", name)
	}
}

func TestResolve_PropagatesRegistryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockNameRegistry(ctrl)
	registry.EXPECT().
		Resolve(gomock.Any(), "alice").
		Return(identity.Record{}, apperrors.Unavailable("daemon unreachable"))

	svc := NewResolverService(registry)
	_, err := svc.Resolve(context.Background(), "alice")
	assert.True(t, apperrors.IsUnavailable(err))
}
