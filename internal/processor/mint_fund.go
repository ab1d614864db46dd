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

// MintFundEventKind enumerates the investment fund events.
type MintFundEventKind string

const (
	MintFundFundAdded           MintFundEventKind = "fund_added"
	MintFundFundRemoved         MintFundEventKind = "fund_removed"
	MintFundInvested            MintFundEventKind = "invested"
	MintFundClaimed             MintFundEventKind = "claimed"
	MintFundInvestmentCancelled MintFundEventKind = "investment_cancelled"
)

// MintFundEvent is the tagged union of fund event payloads.
type MintFundEvent struct {
	Kind                MintFundEventKind    `json:"kind"`
	FundAdded           *FundAddedEvent      `json:"fund_added,omitempty"`
	FundRemoved         *FundRemovedEvent    `json:"fund_removed,omitempty"`
	Invested            *FundInvestmentEvent `json:"invested,omitempty"`
	Claimed             *FundInvestmentEvent `json:"claimed,omitempty"`
	InvestmentCancelled *FundInvestmentEvent `json:"investment_cancelled,omitempty"`
}

type FundAddedEvent struct {
	TokenContract domain.ContractAddress `json:"token_contract"`
	TokenID       string                 `json:"token_id"`
	Rate          domain.Amount          `json:"rate"`
}

type FundRemovedEvent struct {
	TokenID string `json:"token_id"`
}

type FundInvestmentEvent struct {
	TokenID        string         `json:"token_id"`
	Investor       domain.Address `json:"investor"`
	CurrencyAmount domain.Amount  `json:"currency_amount"`
	TokenAmount    domain.Amount  `json:"token_amount"`
}

// NewMintFundProcessor returns the processor for the mint fund kind.
func NewMintFundProcessor() registry.ProcessorFn {
	return applyMintFundEvents
}

func applyMintFundEvents(ctx context.Context, tx store.Store, call *registry.CallContext) error {
	for i, raw := range call.Events {
		var event MintFundEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return fmt.Errorf("event %d of %s: %v: %w", i, call.ContractAddress, err, domain.ErrEventDecode)
		}

		if err := applyMintFundEvent(ctx, tx, call, raw, &event); err != nil {
			return fmt.Errorf("event %d (%s) of %s: %w", i, event.Kind, call.ContractAddress, err)
		}
	}
	return nil
}

func applyMintFundEvent(ctx context.Context, tx store.Store, call *registry.CallContext, raw domain.RawEvent, event *MintFundEvent) error {
	contract := string(call.ContractAddress.Address())

	switch event.Kind {
	case MintFundFundAdded:
		if event.FundAdded == nil {
			return fmt.Errorf("fund_added payload missing: %w", domain.ErrEventDecode)
		}
		added := event.FundAdded

		fund, err := tx.GetFund(ctx, contract, added.TokenID)
		if err != nil {
			return err
		}
		totalInvested := domain.NewAmount(0)
		createdAt := call.BlockTime
		if fund != nil {
			// Re-adding a removed fund keeps its investment history.
			totalInvested = fund.TotalInvested
			createdAt = fund.CreatedAt
		}

		return tx.UpsertFund(ctx, &schema.Fund{
			ContractAddress: contract,
			TokenID:         added.TokenID,
			TokenContract:   string(added.TokenContract.Address()),
			Rate:            added.Rate,
			TotalInvested:   totalInvested,
			IsRemoved:       false,
			CreatedAt:       createdAt,
			UpdatedAt:       call.BlockTime,
		})

	case MintFundFundRemoved:
		if event.FundRemoved == nil {
			return fmt.Errorf("fund_removed payload missing: %w", domain.ErrEventDecode)
		}
		fund, err := tx.GetFund(ctx, contract, event.FundRemoved.TokenID)
		if err != nil {
			return err
		}
		if fund == nil {
			return fmt.Errorf("removal of fund %s: %w", event.FundRemoved.TokenID, domain.ErrContractNotFound)
		}
		fund.IsRemoved = true
		fund.UpdatedAt = call.BlockTime
		return tx.UpsertFund(ctx, fund)

	case MintFundInvested:
		if event.Invested == nil {
			return fmt.Errorf("invested payload missing: %w", domain.ErrEventDecode)
		}
		return applyFundInvestment(ctx, tx, call, raw, event.Invested, schema.FundInvestmentKindInvested)

	case MintFundClaimed:
		if event.Claimed == nil {
			return fmt.Errorf("claimed payload missing: %w", domain.ErrEventDecode)
		}
		return applyFundInvestment(ctx, tx, call, raw, event.Claimed, schema.FundInvestmentKindClaimed)

	case MintFundInvestmentCancelled:
		if event.InvestmentCancelled == nil {
			return fmt.Errorf("investment_cancelled payload missing: %w", domain.ErrEventDecode)
		}
		return applyFundInvestment(ctx, tx, call, raw, event.InvestmentCancelled, schema.FundInvestmentKindCancelled)
	}

	return fmt.Errorf("unknown event kind %q: %w", event.Kind, domain.ErrEventDecode)
}

// applyFundInvestment updates the fund's running total and appends one
// investment ledger row. Cancellations reduce the total; claims leave
// it standing.
func applyFundInvestment(ctx context.Context, tx store.Store, call *registry.CallContext, raw domain.RawEvent, investment *FundInvestmentEvent, kind schema.FundInvestmentKind) error {
	contract := string(call.ContractAddress.Address())

	fund, err := tx.GetFund(ctx, contract, investment.TokenID)
	if err != nil {
		return err
	}
	if fund == nil {
		return fmt.Errorf("investment in fund %s: %w", investment.TokenID, domain.ErrContractNotFound)
	}

	switch kind {
	case schema.FundInvestmentKindInvested:
		fund.TotalInvested = fund.TotalInvested.Add(investment.CurrencyAmount)
	case schema.FundInvestmentKindCancelled:
		fund.TotalInvested = fund.TotalInvested.Sub(investment.CurrencyAmount)
		if fund.TotalInvested.IsNegative() {
			return fmt.Errorf("cancellation of %s exceeds fund total: %w", investment.CurrencyAmount, domain.ErrBalanceUnderflow)
		}
	case schema.FundInvestmentKindClaimed:
		// Claims convert investment into tokens; the total stands.
	}

	fund.UpdatedAt = call.BlockTime
	if err := tx.UpsertFund(ctx, fund); err != nil {
		return err
	}

	return tx.CreateFundInvestment(ctx, &schema.FundInvestment{
		ContractAddress: contract,
		TokenID:         investment.TokenID,
		Investor:        string(investment.Investor),
		Kind:            kind,
		CurrencyAmount:  investment.CurrencyAmount,
		TokenAmount:     investment.TokenAmount,
		BlockHeight:     call.BlockHeight,
		Raw:             datatypes.JSON(raw),
		SlotTime:        call.BlockTime,
	})
}
