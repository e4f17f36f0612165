package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "id/alice", Key("alice"))
}

func TestProfile_JSONValue(t *testing.T) {
	r := Record{
		Name:    "alice",
		Address: "N1alice",
		Value:   `{"name":"Alice Example","email":"alice@example.com","website":"https://alice.example.com"}`,
	}

	p := r.Profile()
	assert.Equal(t, "Alice Example", p.DisplayName)
	assert.Equal(t, "alice@example.com", p.Email)
	assert.Equal(t, "https://alice.example.com", p.Website)
}

func TestProfile_IgnoresUnknownFields(t *testing.T) {
	r := Record{Value: `{"name":"Bob","custom":"ignored","nested":{"a":1}}`}
	p := r.Profile()
	assert.Equal(t, "Bob", p.DisplayName)
}

func TestProfile_NonJSONValue(t *testing.T) {
	for _, value := range []string{"", "just a string", "[1,2,3]", "{broken"} {
		r := Record{Value: value}
		assert.Equal(t, Profile{}, r.Profile(), "value %q", value)
	}
}

func TestProfile_LeadingWhitespace(t *testing.T) {
	r := Record{Value: "  \n\t{\"name\":\"Carol\"}"}
	assert.Equal(t, "Carol", r.Profile().DisplayName)
}
