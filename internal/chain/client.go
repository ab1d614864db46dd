package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/rwalabs/rwa-indexer/internal/adapter"
	"github.com/rwalabs/rwa-indexer/internal/domain"
)

// ConsensusStatus is the node's view of the finalized chain tip.
type ConsensusStatus struct {
	LastFinalizedHeight uint64           `json:"lastFinalizedHeight"`
	LastFinalizedHash   domain.BlockHash `json:"lastFinalizedHash"`
}

// ChunkResult is one batch pulled from a finalized block stream.
type ChunkResult struct {
	EndOfStream bool
	Blocks      []BlockHandle
}

// BlockStream yields finalized block handles in strict height order.
//
//go:generate mockgen -source=client.go -destination=../mocks/chain_client.go -package=mocks -mock_names=Client=MockChainClient,BlockStream=MockBlockStream
type BlockStream interface {
	// NextChunkWithTimeout blocks until at least one finalized block is
	// available, the timeout elapses, or the stream ends. A timeout is
	// reported as a retryable stream-stall error.
	NextChunkWithTimeout(ctx context.Context, maxBlocks int, timeout time.Duration) (*ChunkResult, error)
	Close()
}

// Client is the node read surface the pipeline consumes.
type Client interface {
	// GetConsensusStatus returns the finalized chain tip.
	GetConsensusStatus(ctx context.Context) (*ConsensusStatus, error)
	// GetFinalizedBlocksFrom opens a stream of finalized block handles
	// starting at the given height, inclusive.
	GetFinalizedBlocksFrom(ctx context.Context, height uint64) (BlockStream, error)
	// GetBlockInfo returns per-block metadata for a finalized block.
	GetBlockInfo(ctx context.Context, hash domain.BlockHash) (*BlockInfo, error)
	// GetBlockTransactionOutcomes returns the block's transaction
	// outcomes in chain-assigned index order.
	GetBlockTransactionOutcomes(ctx context.Context, hash domain.BlockHash) ([]TransactionOutcome, error)
}

// nodeClient is the concrete HTTP implementation of Client against the
// node's REST gateway.
type nodeClient struct {
	baseURL      string
	httpClient   adapter.HTTPClient
	clock        adapter.Clock
	pollInterval time.Duration
}

// Config holds the configuration for the node client
type Config struct {
	BaseURL      string
	PollInterval time.Duration // How often the stream polls for new finalized blocks
}

// NewNodeClient creates a new node gateway client
func NewNodeClient(cfg Config, httpClient adapter.HTTPClient, clock adapter.Clock) Client {
	pollInterval := cfg.PollInterval
	if pollInterval == 0 {
		pollInterval = 2 * time.Second
	}
	return &nodeClient{
		baseURL:      cfg.BaseURL,
		httpClient:   httpClient,
		clock:        clock,
		pollInterval: pollInterval,
	}
}

// GetConsensusStatus returns the finalized chain tip
func (c *nodeClient) GetConsensusStatus(ctx context.Context) (*ConsensusStatus, error) {
	url := fmt.Sprintf("%s/v1/consensus/status", c.baseURL)

	var status ConsensusStatus
	if err := c.httpClient.Get(ctx, url, &status); err != nil {
		return nil, fmt.Errorf("failed to get consensus status: %w", err)
	}

	return &status, nil
}

// GetFinalizedBlocksFrom opens a polling stream of finalized block handles
func (c *nodeClient) GetFinalizedBlocksFrom(ctx context.Context, height uint64) (BlockStream, error) {
	return newBlockStream(c, height), nil
}

// GetBlockInfo returns per-block metadata for a finalized block
func (c *nodeClient) GetBlockInfo(ctx context.Context, hash domain.BlockHash) (*BlockInfo, error) {
	url := fmt.Sprintf("%s/v1/blocks/%s", c.baseURL, hash)

	var info BlockInfo
	if err := c.httpClient.Get(ctx, url, &info); err != nil {
		return nil, fmt.Errorf("failed to get block info %s: %w", hash, err)
	}

	return &info, nil
}

// GetBlockTransactionOutcomes returns the block's transaction outcomes
func (c *nodeClient) GetBlockTransactionOutcomes(ctx context.Context, hash domain.BlockHash) ([]TransactionOutcome, error) {
	url := fmt.Sprintf("%s/v1/blocks/%s/outcomes", c.baseURL, hash)

	var outcomes []TransactionOutcome
	if err := c.httpClient.Get(ctx, url, &outcomes); err != nil {
		return nil, fmt.Errorf("failed to get transaction outcomes for block %s: %w", hash, err)
	}

	return outcomes, nil
}

// GetFinalizedBlockRange returns finalized block handles in
// [from, to], inclusive on both ends.
func (c *nodeClient) GetFinalizedBlockRange(ctx context.Context, from, to uint64) ([]BlockHandle, error) {
	url := fmt.Sprintf("%s/v1/blocks?from=%d&to=%d", c.baseURL, from, to)

	var handles []BlockHandle
	if err := c.httpClient.Get(ctx, url, &handles); err != nil {
		return nil, fmt.Errorf("failed to get finalized blocks %d-%d: %w", from, to, err)
	}

	return handles, nil
}
