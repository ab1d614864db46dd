package chain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rwalabs/rwa-indexer/internal/domain"
)

// blockStream polls the node gateway for finalized blocks above the
// cursor height. The chain only ever appends finalized blocks, so
// polling the tip and ranging up to it preserves strict height order.
type blockStream struct {
	client *nodeClient
	next   uint64

	mu     sync.Mutex
	closed bool
}

func newBlockStream(client *nodeClient, from uint64) *blockStream {
	return &blockStream{
		client: client,
		next:   from,
	}
}

// NextChunkWithTimeout blocks until at least one finalized block at or
// above the cursor is available, then returns up to maxBlocks handles
// and advances the cursor. Exceeding the timeout returns a retryable
// stream-stall error so the supervisor can restart consumption.
func (s *blockStream) NextChunkWithTimeout(ctx context.Context, maxBlocks int, timeout time.Duration) (*ChunkResult, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return &ChunkResult{EndOfStream: true}, nil
	}
	s.mu.Unlock()

	deadline := s.client.clock.Now().Add(timeout)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		status, err := s.client.GetConsensusStatus(ctx)
		if err != nil {
			return nil, domain.Retryable(fmt.Errorf("failed to poll consensus status: %w", err))
		}

		if status.LastFinalizedHeight >= s.next {
			to := status.LastFinalizedHeight
			if maxBlocks > 0 && to-s.next+1 > uint64(maxBlocks) {
				to = s.next + uint64(maxBlocks) - 1
			}

			handles, err := s.client.GetFinalizedBlockRange(ctx, s.next, to)
			if err != nil {
				return nil, domain.Retryable(err)
			}
			if len(handles) == 0 {
				return nil, domain.Retryable(fmt.Errorf("node returned empty range %d-%d: %w", s.next, to, domain.ErrStreamEnded))
			}

			s.next = handles[len(handles)-1].Height + 1
			return &ChunkResult{Blocks: handles}, nil
		}

		if s.client.clock.Now().After(deadline) {
			return nil, domain.Retryable(fmt.Errorf("no finalized block at or above %d within %s: %w", s.next, timeout, domain.ErrStreamStalled))
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.client.clock.After(s.client.pollInterval):
		}
	}
}

// Close marks the stream ended; subsequent chunks report end of stream.
func (s *blockStream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
