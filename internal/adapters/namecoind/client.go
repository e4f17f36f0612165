package namecoind

// Package namecoind provides the JSON-RPC client for the name-registry
// daemon. It implements the ports.NameRegistry lookup contract.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nameid/nameid/internal/domain/identity"
	apperrors "github.com/nameid/nameid/internal/errors"
)

// rpcCodeNameNotFound is the daemon error code for a name without a record.
const rpcCodeNameNotFound = -4

// Client talks JSON-RPC 1.0 to a registry daemon (namecoind name_show).
type Client struct {
	url        string
	user       string
	password   string
	httpClient *http.Client
}

// Config holds connection settings for the registry daemon.
type Config struct {
	URL      string
	User     string
	Password string
	Timeout  time.Duration // defaults to 10s when zero
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// NewClient creates a registry client from Config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, apperrors.Validation("registry RPC URL is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		url:        cfg.URL,
		user:       cfg.User,
		password:   cfg.Password,
		httpClient: httpClient,
	}, nil
}

type rpcRequest struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
	ID     int    `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("registry rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// nameShowResult is the subset of the name_show reply we consume.
type nameShowResult struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Address string `json:"address"`
	Expired bool   `json:"expired"`
}

// Resolve looks up the identity record stored at a name. A missing or
// expired name yields a NotFound error; transport and daemon failures
// yield Unavailable, which is fatal for the request and not retried.
func (c *Client) Resolve(ctx context.Context, name string) (identity.Record, error) {
	var result nameShowResult
	if err := c.call(ctx, "name_show", []any{identity.Key(name)}, &result); err != nil {
		var rpcErr *rpcError
		if errors.As(err, &rpcErr) && rpcErr.Code == rpcCodeNameNotFound {
			return identity.Record{}, apperrors.NotFoundf("name %q has no registry record", name)
		}
		return identity.Record{}, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "registry lookup failed")
	}
	if result.Expired {
		return identity.Record{}, apperrors.NotFoundf("name %q is expired", name)
	}

	return identity.Record{
		Name:    name,
		Address: result.Address,
		Value:   result.Value,
	}, nil
}

// call performs one JSON-RPC round trip and decodes the result into out.
func (c *Client) call(ctx context.Context, method string, params []any, out any) error {
	body, err := json.Marshal(rpcRequest{Method: method, Params: params, ID: 1})
	if err != nil {
		return fmt.Errorf("marshal rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.user != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("registry rpc: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	// The daemon answers RPC errors with non-200 statuses but still carries
	// a JSON body describing the error; decode before checking the status.
	var rpcResp rpcResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&rpcResp); decodeErr != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("registry rpc: unexpected status %d", resp.StatusCode)
		}
		return fmt.Errorf("decode rpc response: %w", decodeErr)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if out != nil {
		if unmarshalErr := json.Unmarshal(rpcResp.Result, out); unmarshalErr != nil {
			return fmt.Errorf("decode rpc result: %w", unmarshalErr)
		}
	}
	return nil
}
