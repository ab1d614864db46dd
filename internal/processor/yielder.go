package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/rwalabs/rwa-indexer/internal/domain"
	"github.com/rwalabs/rwa-indexer/internal/registry"
	"github.com/rwalabs/rwa-indexer/internal/store"
	"github.com/rwalabs/rwa-indexer/internal/store/schema"
)

// YielderEventKind enumerates the yielder events.
type YielderEventKind string

const (
	YielderYieldAdded       YielderEventKind = "yield_added"
	YielderYieldRemoved     YielderEventKind = "yield_removed"
	YielderYieldDistributed YielderEventKind = "yield_distributed"
)

// YielderEvent is the tagged union of yielder event payloads.
type YielderEvent struct {
	Kind             YielderEventKind       `json:"kind"`
	YieldAdded       *YieldAddedEvent       `json:"yield_added,omitempty"`
	YieldRemoved     *YieldRemovedEvent     `json:"yield_removed,omitempty"`
	YieldDistributed *YieldDistributedEvent `json:"yield_distributed,omitempty"`
}

type YieldAddedEvent struct {
	TokenContract domain.ContractAddress `json:"token_contract"`
	TokenID       string                 `json:"token_id"`
	Rate          domain.Amount          `json:"rate"`
}

type YieldRemovedEvent struct {
	TokenContract domain.ContractAddress `json:"token_contract"`
	TokenID       string                 `json:"token_id"`
}

type YieldDistributedEvent struct {
	TokenContract domain.ContractAddress `json:"token_contract"`
	TokenID       string                 `json:"token_id"`
	Recipient     domain.Address         `json:"recipient"`
	Amount        domain.Amount          `json:"amount"`
}

// NewYielderProcessor returns the processor for the yielder kind.
func NewYielderProcessor() registry.ProcessorFn {
	return applyYielderEvents
}

func applyYielderEvents(ctx context.Context, tx store.Store, call *registry.CallContext) error {
	for i, raw := range call.Events {
		var event YielderEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return fmt.Errorf("event %d of %s: %v: %w", i, call.ContractAddress, err, domain.ErrEventDecode)
		}

		if err := applyYielderEvent(ctx, tx, call, raw, &event); err != nil {
			return fmt.Errorf("event %d (%s) of %s: %w", i, event.Kind, call.ContractAddress, err)
		}
	}
	return nil
}

func applyYielderEvent(ctx context.Context, tx store.Store, call *registry.CallContext, raw domain.RawEvent, event *YielderEvent) error {
	contract := string(call.ContractAddress.Address())

	switch event.Kind {
	case YielderYieldAdded:
		if event.YieldAdded == nil {
			return fmt.Errorf("yield_added payload missing: %w", domain.ErrEventDecode)
		}
		added := event.YieldAdded
		return tx.UpsertYield(ctx, &schema.Yield{
			ContractAddress: contract,
			TokenContract:   string(added.TokenContract.Address()),
			TokenID:         added.TokenID,
			Rate:            added.Rate,
			CreatedAt:       call.BlockTime,
			UpdatedAt:       call.BlockTime,
		})

	case YielderYieldRemoved:
		if event.YieldRemoved == nil {
			return fmt.Errorf("yield_removed payload missing: %w", domain.ErrEventDecode)
		}
		removed := event.YieldRemoved
		deleted, err := tx.DeleteYield(ctx, contract, string(removed.TokenContract.Address()), removed.TokenID)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("removal of yield for token %s: not found: %w", removed.TokenID, domain.ErrEventDecode)
		}
		return nil

	case YielderYieldDistributed:
		if event.YieldDistributed == nil {
			return fmt.Errorf("yield_distributed payload missing: %w", domain.ErrEventDecode)
		}
		dist := event.YieldDistributed
		return tx.CreateYieldDistribution(ctx, &schema.YieldDistribution{
			ContractAddress: contract,
			TokenContract:   string(dist.TokenContract.Address()),
			TokenID:         dist.TokenID,
			Recipient:       string(dist.Recipient),
			Amount:          dist.Amount,
			BlockHeight:     call.BlockHeight,
			Raw:             datatypes.JSON(raw),
			SlotTime:        call.BlockTime,
		})
	}

	return fmt.Errorf("unknown event kind %q: %w", event.Kind, domain.ErrEventDecode)
}
