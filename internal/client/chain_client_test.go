package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fheVoting/internal/config"
	"fheVoting/internal/lib/logger/handlers/slogdiscard"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

// newNodeStub answers eth_chainId and eth_blockNumber like a JSON-RPC node.
func newNodeStub(t *testing.T, chainIDHex, blockHex string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var result string
		switch req.Method {
		case "eth_chainId":
			result = chainIDHex
		case "eth_blockNumber":
			result = blockHex
		default:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error":   map[string]any{"code": -32601, "message": "method not found"},
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestStatusExpectedChain(t *testing.T) {
	node := newNodeStub(t, "0xa455", "0x10")

	c, err := NewChainClient(config.Blockchain{RPCURL: node.URL, ChainID: 42069}, slogdiscard.NewDiscardLogger())
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42069), status.ChainID.Int64())
	assert.Equal(t, uint64(16), status.BlockNumber)
	assert.True(t, status.ExpectedChain)
}

func TestStatusUnexpectedChain(t *testing.T) {
	node := newNodeStub(t, "0x1", "0x2")

	c, err := NewChainClient(config.Blockchain{RPCURL: node.URL, ChainID: 42069}, slogdiscard.NewDiscardLogger())
	require.NoError(t, err)
	defer c.Close()

	status, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.ChainID.Int64())
	assert.False(t, status.ExpectedChain)
}

func TestUnreachableNodeDoesNotFailConstruction(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewChainClient(config.Blockchain{RPCURL: url, ChainID: 42069}, slogdiscard.NewDiscardLogger())
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err = c.Status(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain id")
}

func TestNewChainClientAddsScheme(t *testing.T) {
	c, err := NewChainClient(config.Blockchain{RPCURL: "127.0.0.1:8545", ChainID: 42069}, slogdiscard.NewDiscardLogger())
	require.NoError(t, err)
	defer c.Close()

	assert.True(t, strings.HasPrefix(c.RPCURL(), "http://"))
}

func TestNewChainClientErrors(t *testing.T) {
	_, err := NewChainClient(config.Blockchain{}, slogdiscard.NewDiscardLogger())
	require.Error(t, err)

	_, err = NewChainClient(config.Blockchain{RPCURL: "ftp://node:21"}, slogdiscard.NewDiscardLogger())
	require.Error(t, err)
}

func TestStatusOnNilClient(t *testing.T) {
	var c *ChainClient

	_, err := c.Status(context.Background())
	require.Error(t, err)
}
