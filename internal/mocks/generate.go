// Package mocks provides mock implementations for testing the provider.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the port interfaces. Regenerate them after interface changes with:
//
//	go generate ./internal/mocks
//
// Hand-written doubles live in the auth subpackage and cover the cases where
// stateful behavior (an in-memory session store) reads better than
// expectation chains.
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=name_registry_mock.go github.com/nameid/nameid/internal/ports NameRegistry

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/nameid/nameid/internal/ports SessionStore

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=signature_verifier_mock.go github.com/nameid/nameid/internal/ports SignatureVerifier

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=protocol_engine_mock.go github.com/nameid/nameid/internal/ports ProtocolEngine

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=login_audit_repository_mock.go github.com/nameid/nameid/internal/ports LoginAuditRepository
