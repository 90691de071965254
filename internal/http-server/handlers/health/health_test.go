package health

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fheVoting/internal/client"
	"fheVoting/internal/lib/logger/handlers/slogdiscard"
)

type fakeChain struct {
	status   client.NetworkStatus
	err      error
	deadline time.Time
}

func (f *fakeChain) Status(ctx context.Context) (client.NetworkStatus, error) {
	f.deadline, _ = ctx.Deadline()
	return f.status, f.err
}

func TestHealthOK(t *testing.T) {
	chain := &fakeChain{status: client.NetworkStatus{
		ChainID:       big.NewInt(42069),
		BlockNumber:   1234,
		ExpectedChain: true,
	}}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	New(slogdiscard.NewDiscardLogger(), chain).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"status":"OK","chain":{"chainId":"42069","blockNumber":1234,"expectedChain":true}}`,
		w.Body.String(),
	)
	assert.False(t, chain.deadline.IsZero())
	assert.WithinDuration(t, time.Now().Add(probeTimeout), chain.deadline, probeTimeout)
}

func TestHealthUnreachable(t *testing.T) {
	chain := &fakeChain{err: errors.New("dial tcp: connection refused")}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	New(slogdiscard.NewDiscardLogger(), chain).ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"Error","error":"chain node unreachable"}`, w.Body.String())
}
