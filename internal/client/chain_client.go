package client

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/ethclient"

	"fheVoting/internal/config"
	"fheVoting/internal/lib/logger/sl"
)

// NetworkStatus — то, что нода сообщает о себе
type NetworkStatus struct {
	ChainID       *big.Int
	BlockNumber   uint64
	ExpectedChain bool
}

// ChainClient держит единственное подключение к ноде Fhenix.
// Создается один раз при старте и дальше только читается.
type ChainClient struct {
	client          *ethclient.Client
	rpcURL          string
	expectedChainID *big.Int
	log             *slog.Logger
}

// NewChainClient подключается к RPC. Для http(s) подключение ленивое:
// недоступная нода не мешает старту, ошибку вернет первый запрос.
func NewChainClient(cfg config.Blockchain, log *slog.Logger) (*ChainClient, error) {
	const op = "client.NewChainClient"

	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("%s: invalid configuration: RPC URL is required", op)
	}

	rpcURL := cfg.RPCURL
	if !strings.Contains(rpcURL, "://") {
		rpcURL = "http://" + rpcURL
	}

	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to node at %s: %w", op, rpcURL, err)
	}

	log = log.With(slog.String("component", "client/chain"))
	log.Info("chain client initialized", slog.String("rpc_url", rpcURL), slog.Int64("chain_id", cfg.ChainID))

	return &ChainClient{
		client:          client,
		rpcURL:          rpcURL,
		expectedChainID: big.NewInt(cfg.ChainID),
		log:             log,
	}, nil
}

func (c *ChainClient) RPCURL() string {
	return c.rpcURL
}

// Status опрашивает eth_chainId и eth_blockNumber.
func (c *ChainClient) Status(ctx context.Context) (NetworkStatus, error) {
	const op = "client.ChainClient.Status"

	if c == nil || c.client == nil {
		return NetworkStatus{}, fmt.Errorf("%s: chain client is not properly initialized", op)
	}

	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		c.log.Error("eth_chainId failed", sl.Err(err))
		return NetworkStatus{}, fmt.Errorf("%s: chain id: %w", op, err)
	}

	block, err := c.client.BlockNumber(ctx)
	if err != nil {
		c.log.Error("eth_blockNumber failed", sl.Err(err))
		return NetworkStatus{}, fmt.Errorf("%s: block number: %w", op, err)
	}

	expected := chainID.Cmp(c.expectedChainID) == 0
	if !expected {
		c.log.Warn("node reports unexpected chain id",
			slog.String("chain_id", chainID.String()),
			slog.String("expected_chain_id", c.expectedChainID.String()),
		)
	}

	return NetworkStatus{
		ChainID:       chainID,
		BlockNumber:   block,
		ExpectedChain: expected,
	}, nil
}

func (c *ChainClient) Close() {
	if c == nil || c.client == nil {
		return
	}
	c.client.Close()
	c.log.Info("chain client closed")
}
