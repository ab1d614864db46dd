package listener

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rwalabs/rwa-indexer/internal/adapter"
	"github.com/rwalabs/rwa-indexer/internal/chain"
	"github.com/rwalabs/rwa-indexer/internal/domain"
	"github.com/rwalabs/rwa-indexer/internal/logger"
	"github.com/rwalabs/rwa-indexer/internal/messaging"
	"github.com/rwalabs/rwa-indexer/internal/parser"
	"github.com/rwalabs/rwa-indexer/internal/processor"
	"github.com/rwalabs/rwa-indexer/internal/store"
)

const (
	DEFAULT_CHUNK_SIZE       = 64
	DEFAULT_CHUNK_TIMEOUT    = 2 * time.Minute
	DEFAULT_METRICS_INTERVAL = 30 * time.Second
	DEFAULT_PREFETCH_WORKERS = 8
)

// Config holds the configuration for the block listener
type Config struct {
	// StartHeight overrides the durable resume height when nonzero.
	StartHeight     uint64
	ChunkSize       int
	ChunkTimeout    time.Duration
	MetricsInterval time.Duration
	// PrefetchWorkers bounds the concurrent block-info lookups per chunk.
	PrefetchWorkers int
}

// Listener drives the ingestion pipeline: it pulls finalized blocks in
// height order and hands each one to the block processor, sequentially.
type Listener interface {
	// Run consumes finalized blocks until ctx is cancelled or a fatal
	// error surfaces. Retryable failures restart consumption from the
	// last durably persisted height.
	Run(ctx context.Context) error
}

type listener struct {
	client    chain.Client
	parser    parser.BlockParser
	processor processor.BlockProcessor
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	config    Config
	prefetch  pond.ResultPool[*chain.BlockInfo]

	// Written by the consume loop, read by the metrics goroutine.
	blocksProcessed atomic.Uint64
	txnsProcessed   atomic.Uint64
}

// NewListener creates a new block listener. publisher may be nil when
// block notifications are disabled.
func NewListener(
	client chain.Client,
	blockParser parser.BlockParser,
	blockProcessor processor.BlockProcessor,
	st store.Store,
	publisher messaging.Publisher,
	clock adapter.Clock,
	cfg Config,
) Listener {
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = DEFAULT_CHUNK_SIZE
	}
	if cfg.ChunkTimeout == 0 {
		cfg.ChunkTimeout = DEFAULT_CHUNK_TIMEOUT
	}
	if cfg.MetricsInterval == 0 {
		cfg.MetricsInterval = DEFAULT_METRICS_INTERVAL
	}
	if cfg.PrefetchWorkers == 0 {
		cfg.PrefetchWorkers = DEFAULT_PREFETCH_WORKERS
	}

	return &listener{
		client:    client,
		parser:    blockParser,
		processor: blockProcessor,
		store:     st,
		publisher: publisher,
		clock:     clock,
		config:    cfg,
		prefetch:  pond.NewResultPool[*chain.BlockInfo](cfg.PrefetchWorkers),
	}
}

// Run supervises the consumption loop. Retryable errors restart it with
// exponential backoff; fatal errors terminate.
func (l *listener) Run(ctx context.Context) error {
	metricsTicker := l.clock.NewTicker(l.config.MetricsInterval)
	defer metricsTicker.Stop()
	defer func() { _ = l.prefetch.Stop() }()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-metricsTicker.C:
				logger.InfoCtx(ctx, "Listener metrics",
					zap.Uint64("blocks_processed", l.blocksProcessed.Load()),
					zap.Uint64("transactions_processed", l.txnsProcessed.Load()))
			}
		}
	}()

	operation := func() error {
		err := l.consume(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		if domain.IsRetryable(err) {
			logger.WarnCtx(ctx, "Consumption interrupted, restarting from last persisted height", zap.Error(err))
			return err
		}
		return backoff.Permanent(err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 1 * time.Minute
	b.MaxElapsedTime = 0 // retry until cancelled or fatal

	return backoff.Retry(operation, backoff.WithContext(b, ctx))
}

// consume runs one consumption session: resolve the start height, open
// the stream, and process chunks until cancellation or failure.
func (l *listener) consume(ctx context.Context) error {
	runID := uuid.NewString()

	startHeight, err := l.resolveStartHeight(ctx)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Starting block consumption",
		zap.String("run_id", runID),
		zap.Uint64("start_height", startHeight))

	stream, err := l.client.GetFinalizedBlocksFrom(ctx, startHeight)
	if err != nil {
		return domain.Retryable(fmt.Errorf("failed to open block stream: %w", err))
	}
	defer stream.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		chunk, err := stream.NextChunkWithTimeout(ctx, l.config.ChunkSize, l.config.ChunkTimeout)
		if err != nil {
			return err
		}
		if chunk.EndOfStream {
			return domain.Retryable(domain.ErrStreamEnded)
		}

		infos, err := l.prefetchBlockInfos(ctx, chunk.Blocks)
		if err != nil {
			return err
		}

		for i := range infos {
			// Cancellable between blocks, never mid-transaction.
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := l.processBlock(ctx, infos[i]); err != nil {
				return err
			}
		}
	}
}

// prefetchBlockInfos fetches block metadata for a whole chunk with
// bounded concurrency. Results come back in handle order; processing
// itself stays strictly sequential.
func (l *listener) prefetchBlockInfos(ctx context.Context, handles []chain.BlockHandle) ([]*chain.BlockInfo, error) {
	tasks := make([]pond.Result[*chain.BlockInfo], len(handles))
	for i := range handles {
		hash := handles[i].Hash
		tasks[i] = l.prefetch.SubmitErr(func() (*chain.BlockInfo, error) {
			return l.client.GetBlockInfo(ctx, hash)
		})
	}

	infos := make([]*chain.BlockInfo, len(handles))
	for i, task := range tasks {
		info, err := task.Wait()
		if err != nil {
			return nil, domain.Retryable(err)
		}
		infos[i] = info
	}
	return infos, nil
}

// resolveStartHeight prefers the configured override, then the durable
// resume marker, then the chain tip.
func (l *listener) resolveStartHeight(ctx context.Context) (uint64, error) {
	if l.config.StartHeight > 0 {
		return l.config.StartHeight, nil
	}

	height, found, err := l.store.GetLastProcessedBlockHeight(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve resume height: %w", err)
	}
	if found {
		return height + 1, nil
	}

	status, err := l.client.GetConsensusStatus(ctx)
	if err != nil {
		return 0, domain.Retryable(fmt.Errorf("failed to get consensus status: %w", err))
	}
	return status.LastFinalizedHeight, nil
}

// processBlock parses and commits one finalized block.
func (l *listener) processBlock(ctx context.Context, info *chain.BlockInfo) error {
	// Blocks without transactions carry no contract activity.
	if info.TransactionCount == 0 {
		return nil
	}

	outcomes, err := l.client.GetBlockTransactionOutcomes(ctx, info.Hash)
	if err != nil {
		return domain.Retryable(err)
	}

	block, err := l.parser.ParseBlock(info, outcomes)
	if err != nil {
		return err
	}

	result, err := l.processor.ProcessBlock(ctx, block)
	if err != nil {
		return err
	}
	if result.Duplicate {
		return nil
	}

	l.blocksProcessed.Add(1)
	l.txnsProcessed.Add(uint64(result.ProcessedTransactions))

	if l.publisher != nil && result.ProcessedTransactions > 0 {
		// Notification failures do not abort ingestion; the block is
		// already committed.
		if err := l.publisher.PublishBlockProcessed(ctx, &domain.BlockNotification{
			Hash:                  block.Hash,
			Height:                block.Height,
			SlotTime:              block.SlotTime,
			ProcessedTransactions: result.ProcessedTransactions,
		}); err != nil {
			logger.WarnCtx(ctx, "Failed to publish block notification",
				zap.Uint64("height", block.Height),
				zap.Error(err))
		}
	}

	return nil
}
