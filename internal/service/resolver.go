package service

import (
	"context"
	"strings"

	"github.com/nameid/nameid/internal/domain/identity"
	apperrors "github.com/nameid/nameid/internal/errors"
	"github.com/nameid/nameid/internal/ports"
)

// ResolverService turns a requested name into an identity record. It is a
// pure delegation to the registry port with input hygiene on top: the
// registry is treated as authoritative and immediately consistent, so there
// are no retries and no caching across requests.
type ResolverService struct {
	registry ports.NameRegistry
}

// NewResolverService constructs a ResolverService.
func NewResolverService(registry ports.NameRegistry) *ResolverService {
	return &ResolverService{registry: registry}
}

// Resolve looks up name in the registry. Empty or whitespace names resolve
// to NotFound without a registry round trip.
func (s *ResolverService) Resolve(ctx context.Context, name string) (identity.Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return identity.Record{}, apperrors.NotFound("empty identity name")
	}
	return s.registry.Resolve(ctx, name)
}
