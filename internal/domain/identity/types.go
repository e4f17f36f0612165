package identity

// Package identity contains domain-level types for registry-backed identities.
// It is pure and free of transport/adapter concerns.

import (
	"encoding/json"
	"strings"
)

// Record is the resolved state of a name in the registry. It is immutable
// once resolved and never cached across requests: the registry is treated
// as authoritative for every dispatch.
type Record struct {
	// Name is the bare identity name, without the namespace prefix.
	Name string `json:"name"`

	// Address is the registry address that currently owns the name.
	// Login signatures must verify against this address.
	Address string `json:"address"`

	// Value is the raw value stored at the name, usually a JSON profile.
	Value string `json:"value"`
}

// Profile is the conventional JSON shape stored at an identity name.
// All fields are optional; unknown fields are ignored.
type Profile struct {
	DisplayName string `json:"name"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	GPGFinger   string `json:"gpg"`
	Bitmessage  string `json:"bitmessage"`
	OTR         string `json:"otr"`
}

// Profile decodes the record value as a profile. A value that is not a JSON
// object yields an empty profile, not an error: arbitrary values are legal
// in the registry and still identify their owner.
func (r Record) Profile() Profile {
	var p Profile
	trimmed := strings.TrimSpace(r.Value)
	if !strings.HasPrefix(trimmed, "{") {
		return Profile{}
	}
	if err := json.Unmarshal([]byte(trimmed), &p); err != nil {
		return Profile{}
	}
	return p
}

// Namespace is the registry namespace identities live under.
const Namespace = "id/"

// Key returns the full registry key for an identity name.
func Key(name string) string {
	return Namespace + name
}
