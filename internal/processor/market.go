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

// MarketEventKind enumerates the P2P market events.
type MarketEventKind string

const (
	MarketListed    MarketEventKind = "listed"
	MarketDelisted  MarketEventKind = "delisted"
	MarketExchanged MarketEventKind = "exchanged"
)

// MarketEvent is the tagged union of market event payloads.
type MarketEvent struct {
	Kind      MarketEventKind `json:"kind"`
	Listed    *ListedEvent    `json:"listed,omitempty"`
	Delisted  *DelistedEvent  `json:"delisted,omitempty"`
	Exchanged *ExchangedEvent `json:"exchanged,omitempty"`
}

type ListedEvent struct {
	TokenContract domain.ContractAddress `json:"token_contract"`
	TokenID       string                 `json:"token_id"`
	Seller        domain.Address         `json:"seller"`
	Amount        domain.Amount          `json:"amount"`
	Rate          domain.Amount          `json:"rate"`
}

type DelistedEvent struct {
	TokenContract domain.ContractAddress `json:"token_contract"`
	TokenID       string                 `json:"token_id"`
	Seller        domain.Address         `json:"seller"`
}

type ExchangedEvent struct {
	TokenContract  domain.ContractAddress `json:"token_contract"`
	TokenID        string                 `json:"token_id"`
	Seller         domain.Address         `json:"seller"`
	Buyer          domain.Address         `json:"buyer"`
	TokenAmount    domain.Amount          `json:"token_amount"`
	CurrencyAmount domain.Amount          `json:"currency_amount"`
}

// NewMarketProcessor returns the processor for the P2P market kind.
func NewMarketProcessor() registry.ProcessorFn {
	return applyMarketEvents
}

func applyMarketEvents(ctx context.Context, tx store.Store, call *registry.CallContext) error {
	for i, raw := range call.Events {
		var event MarketEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return fmt.Errorf("event %d of %s: %v: %w", i, call.ContractAddress, err, domain.ErrEventDecode)
		}

		if err := applyMarketEvent(ctx, tx, call, raw, &event); err != nil {
			return fmt.Errorf("event %d (%s) of %s: %w", i, event.Kind, call.ContractAddress, err)
		}
	}
	return nil
}

func applyMarketEvent(ctx context.Context, tx store.Store, call *registry.CallContext, raw domain.RawEvent, event *MarketEvent) error {
	contract := string(call.ContractAddress.Address())

	switch event.Kind {
	case MarketListed:
		if event.Listed == nil {
			return fmt.Errorf("listed payload missing: %w", domain.ErrEventDecode)
		}
		listed := event.Listed
		return tx.UpsertMarketListing(ctx, &schema.MarketListing{
			ContractAddress: contract,
			TokenContract:   string(listed.TokenContract.Address()),
			TokenID:         listed.TokenID,
			Seller:          string(listed.Seller),
			Amount:          listed.Amount,
			Rate:            listed.Rate,
			CreatedAt:       call.BlockTime,
			UpdatedAt:       call.BlockTime,
		})

	case MarketDelisted:
		if event.Delisted == nil {
			return fmt.Errorf("delisted payload missing: %w", domain.ErrEventDecode)
		}
		delisted := event.Delisted
		deleted, err := tx.DeleteMarketListing(ctx, contract, string(delisted.TokenContract.Address()), delisted.TokenID, string(delisted.Seller))
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("delist of token %s by %s: listing not found: %w", delisted.TokenID, delisted.Seller, domain.ErrEventDecode)
		}
		return nil

	case MarketExchanged:
		if event.Exchanged == nil {
			return fmt.Errorf("exchanged payload missing: %w", domain.ErrEventDecode)
		}
		return applyExchanged(ctx, tx, call, raw, event.Exchanged)
	}

	return fmt.Errorf("unknown event kind %q: %w", event.Kind, domain.ErrEventDecode)
}

// applyExchanged reduces the listing by the traded amount, dropping it
// once fully consumed, and appends the trade ledger row.
func applyExchanged(ctx context.Context, tx store.Store, call *registry.CallContext, raw domain.RawEvent, exchanged *ExchangedEvent) error {
	contract := string(call.ContractAddress.Address())
	tokenContract := string(exchanged.TokenContract.Address())

	listing, err := tx.GetMarketListing(ctx, contract, tokenContract, exchanged.TokenID, string(exchanged.Seller))
	if err != nil {
		return err
	}
	if listing == nil {
		return fmt.Errorf("exchange of token %s by %s: listing not found: %w", exchanged.TokenID, exchanged.Seller, domain.ErrEventDecode)
	}

	remaining := listing.Amount.Sub(exchanged.TokenAmount)
	if remaining.IsNegative() {
		return fmt.Errorf("exchange of %s exceeds listed amount %s: %w", exchanged.TokenAmount, listing.Amount, domain.ErrBalanceUnderflow)
	}

	if remaining.IsZero() {
		if _, err := tx.DeleteMarketListing(ctx, contract, tokenContract, exchanged.TokenID, string(exchanged.Seller)); err != nil {
			return err
		}
	} else {
		listing.Amount = remaining
		listing.UpdatedAt = call.BlockTime
		if err := tx.UpsertMarketListing(ctx, listing); err != nil {
			return err
		}
	}

	return tx.CreateMarketTrade(ctx, &schema.MarketTrade{
		ContractAddress: contract,
		TokenContract:   tokenContract,
		TokenID:         exchanged.TokenID,
		Seller:          string(exchanged.Seller),
		Buyer:           string(exchanged.Buyer),
		TokenAmount:     exchanged.TokenAmount,
		CurrencyAmount:  exchanged.CurrencyAmount,
		BlockHeight:     call.BlockHeight,
		Raw:             datatypes.JSON(raw),
		SlotTime:        call.BlockTime,
	})
}
