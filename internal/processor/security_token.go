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

// SecurityTokenEventKind enumerates the CIS2 security token events.
type SecurityTokenEventKind string

const (
	SecurityTokenMint                  SecurityTokenEventKind = "mint"
	SecurityTokenBurn                  SecurityTokenEventKind = "burn"
	SecurityTokenTransfer              SecurityTokenEventKind = "transfer"
	SecurityTokenTokenMetadata         SecurityTokenEventKind = "token_metadata"
	SecurityTokenUpdateOperator        SecurityTokenEventKind = "update_operator"
	SecurityTokenTokenRemoved          SecurityTokenEventKind = "token_removed"
	SecurityTokenAgentAdded            SecurityTokenEventKind = "agent_added"
	SecurityTokenAgentRemoved          SecurityTokenEventKind = "agent_removed"
	SecurityTokenComplianceAdded       SecurityTokenEventKind = "compliance_added"
	SecurityTokenIdentityRegistryAdded SecurityTokenEventKind = "identity_registry_added"
	SecurityTokenPaused                SecurityTokenEventKind = "paused"
	SecurityTokenUnPaused              SecurityTokenEventKind = "un_paused"
	SecurityTokenRecovered             SecurityTokenEventKind = "recovered"
	SecurityTokenTokenFrozen           SecurityTokenEventKind = "token_frozen"
	SecurityTokenTokenUnFrozen         SecurityTokenEventKind = "token_un_frozen"
)

// OperatorAction is the update_operator sub-action.
type OperatorAction string

const (
	OperatorActionAdd    OperatorAction = "add"
	OperatorActionRemove OperatorAction = "remove"
)

// SecurityTokenEvent is the tagged union of security token event
// payloads. Exactly one payload field matching Kind is non-nil.
type SecurityTokenEvent struct {
	Kind                  SecurityTokenEventKind      `json:"kind"`
	Mint                  *MintEvent                  `json:"mint,omitempty"`
	Burn                  *BurnEvent                  `json:"burn,omitempty"`
	Transfer              *TransferEvent              `json:"transfer,omitempty"`
	TokenMetadata         *TokenMetadataEvent         `json:"token_metadata,omitempty"`
	UpdateOperator        *UpdateOperatorEvent        `json:"update_operator,omitempty"`
	TokenRemoved          *TokenRemovedEvent          `json:"token_removed,omitempty"`
	AgentAdded            *AgentEvent                 `json:"agent_added,omitempty"`
	AgentRemoved          *AgentEvent                 `json:"agent_removed,omitempty"`
	ComplianceAdded       *ComplianceAddedEvent       `json:"compliance_added,omitempty"`
	IdentityRegistryAdded *IdentityRegistryAddedEvent `json:"identity_registry_added,omitempty"`
	Paused                *PauseEvent                 `json:"paused,omitempty"`
	UnPaused              *PauseEvent                 `json:"un_paused,omitempty"`
	Recovered             *RecoveredEvent             `json:"recovered,omitempty"`
	TokenFrozen           *FreezeEvent                `json:"token_frozen,omitempty"`
	TokenUnFrozen         *FreezeEvent                `json:"token_un_frozen,omitempty"`
}

type MintEvent struct {
	TokenID string         `json:"token_id"`
	Owner   domain.Address `json:"owner"`
	Amount  domain.Amount  `json:"amount"`
}

type BurnEvent struct {
	TokenID string         `json:"token_id"`
	Owner   domain.Address `json:"owner"`
	Amount  domain.Amount  `json:"amount"`
}

type TransferEvent struct {
	TokenID string         `json:"token_id"`
	From    domain.Address `json:"from"`
	To      domain.Address `json:"to"`
	Amount  domain.Amount  `json:"amount"`
}

type TokenMetadataEvent struct {
	TokenID string  `json:"token_id"`
	URL     string  `json:"url"`
	Hash    *string `json:"hash,omitempty"`
}

type UpdateOperatorEvent struct {
	Owner    domain.Address `json:"owner"`
	Operator domain.Address `json:"operator"`
	Action   OperatorAction `json:"action"`
}

type TokenRemovedEvent struct {
	TokenID string `json:"token_id"`
}

type AgentEvent struct {
	Agent domain.Address `json:"agent"`
	Roles []string       `json:"roles,omitempty"`
}

type ComplianceAddedEvent struct {
	Compliance domain.Address `json:"compliance"`
}

type IdentityRegistryAddedEvent struct {
	Registry domain.Address `json:"registry"`
}

type PauseEvent struct {
	TokenID string `json:"token_id"`
}

type RecoveredEvent struct {
	LostAccount domain.Address `json:"lost_account"`
	NewAccount  domain.Address `json:"new_account"`
}

type FreezeEvent struct {
	TokenID string         `json:"token_id"`
	Address domain.Address `json:"address"`
	Amount  domain.Amount  `json:"amount"`
}

// NewSecurityTokenProcessor returns the processor for the CIS2 security
// token kind.
func NewSecurityTokenProcessor() registry.ProcessorFn {
	return applySecurityTokenEvents
}

func applySecurityTokenEvents(ctx context.Context, tx store.Store, call *registry.CallContext) error {
	for i, raw := range call.Events {
		var event SecurityTokenEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return fmt.Errorf("event %d of %s: %v: %w", i, call.ContractAddress, err, domain.ErrEventDecode)
		}

		if err := applySecurityTokenEvent(ctx, tx, call, raw, &event); err != nil {
			return fmt.Errorf("event %d (%s) of %s: %w", i, event.Kind, call.ContractAddress, err)
		}
	}
	return nil
}

func applySecurityTokenEvent(ctx context.Context, tx store.Store, call *registry.CallContext, raw domain.RawEvent, event *SecurityTokenEvent) error {
	contract := string(call.ContractAddress.Address())

	switch event.Kind {
	case SecurityTokenMint:
		if event.Mint == nil {
			return fmt.Errorf("mint payload missing: %w", domain.ErrEventDecode)
		}
		return applyMint(ctx, tx, call, raw, event.Mint)

	case SecurityTokenBurn:
		if event.Burn == nil {
			return fmt.Errorf("burn payload missing: %w", domain.ErrEventDecode)
		}
		return applyBurn(ctx, tx, call, raw, event.Burn)

	case SecurityTokenTransfer:
		if event.Transfer == nil {
			return fmt.Errorf("transfer payload missing: %w", domain.ErrEventDecode)
		}
		return applyTransfer(ctx, tx, call, raw, event.Transfer)

	case SecurityTokenTokenMetadata:
		if event.TokenMetadata == nil {
			return fmt.Errorf("token_metadata payload missing: %w", domain.ErrEventDecode)
		}
		return applyTokenMetadata(ctx, tx, call, event.TokenMetadata)

	case SecurityTokenUpdateOperator:
		if event.UpdateOperator == nil {
			return fmt.Errorf("update_operator payload missing: %w", domain.ErrEventDecode)
		}
		return applyUpdateOperator(ctx, tx, call, event.UpdateOperator)

	case SecurityTokenTokenRemoved:
		if event.TokenRemoved == nil {
			return fmt.Errorf("token_removed payload missing: %w", domain.ErrEventDecode)
		}
		deleted, err := tx.DeleteToken(ctx, contract, event.TokenRemoved.TokenID)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("remove token %s: %w", event.TokenRemoved.TokenID, domain.ErrTokenNotFound)
		}
		return nil

	case SecurityTokenAgentAdded:
		if event.AgentAdded == nil {
			return fmt.Errorf("agent_added payload missing: %w", domain.ErrEventDecode)
		}
		roles, err := json.Marshal(event.AgentAdded.Roles)
		if err != nil {
			return fmt.Errorf("failed to marshal agent roles: %w", err)
		}
		return tx.UpsertAgent(ctx, &schema.Agent{
			ContractAddress: contract,
			AgentAddress:    string(event.AgentAdded.Agent),
			Roles:           datatypes.JSON(roles),
			CreatedAt:       call.BlockTime,
			UpdatedAt:       call.BlockTime,
		})

	case SecurityTokenAgentRemoved:
		if event.AgentRemoved == nil {
			return fmt.Errorf("agent_removed payload missing: %w", domain.ErrEventDecode)
		}
		return tx.RemoveAgent(ctx, contract, string(event.AgentRemoved.Agent))

	case SecurityTokenComplianceAdded:
		if event.ComplianceAdded == nil {
			return fmt.Errorf("compliance_added payload missing: %w", domain.ErrEventDecode)
		}
		return tx.UpsertComplianceLink(ctx, &schema.ComplianceLink{
			ContractAddress:   contract,
			ComplianceAddress: string(event.ComplianceAdded.Compliance),
			UpdatedAt:         call.BlockTime,
		})

	case SecurityTokenIdentityRegistryAdded:
		if event.IdentityRegistryAdded == nil {
			return fmt.Errorf("identity_registry_added payload missing: %w", domain.ErrEventDecode)
		}
		return tx.UpsertIdentityRegistryLink(ctx, &schema.IdentityRegistryLink{
			ContractAddress: contract,
			RegistryAddress: string(event.IdentityRegistryAdded.Registry),
			UpdatedAt:       call.BlockTime,
		})

	case SecurityTokenPaused:
		if event.Paused == nil {
			return fmt.Errorf("paused payload missing: %w", domain.ErrEventDecode)
		}
		return setTokenPaused(ctx, tx, call, event.Paused.TokenID, true)

	case SecurityTokenUnPaused:
		if event.UnPaused == nil {
			return fmt.Errorf("un_paused payload missing: %w", domain.ErrEventDecode)
		}
		return setTokenPaused(ctx, tx, call, event.UnPaused.TokenID, false)

	case SecurityTokenRecovered:
		if event.Recovered == nil {
			return fmt.Errorf("recovered payload missing: %w", domain.ErrEventDecode)
		}
		return applyRecovered(ctx, tx, call, event.Recovered)

	case SecurityTokenTokenFrozen:
		if event.TokenFrozen == nil {
			return fmt.Errorf("token_frozen payload missing: %w", domain.ErrEventDecode)
		}
		return applyFreeze(ctx, tx, call, raw, event.TokenFrozen, true)

	case SecurityTokenTokenUnFrozen:
		if event.TokenUnFrozen == nil {
			return fmt.Errorf("token_un_frozen payload missing: %w", domain.ErrEventDecode)
		}
		return applyFreeze(ctx, tx, call, raw, event.TokenUnFrozen, false)
	}

	return fmt.Errorf("unknown event kind %q: %w", event.Kind, domain.ErrEventDecode)
}

func applyMint(ctx context.Context, tx store.Store, call *registry.CallContext, raw domain.RawEvent, mint *MintEvent) error {
	contract := string(call.ContractAddress.Address())

	token, err := tx.GetToken(ctx, contract, mint.TokenID)
	if err != nil {
		return err
	}
	if token == nil {
		return fmt.Errorf("mint of token %s: %w", mint.TokenID, domain.ErrTokenNotFound)
	}

	token.Supply = token.Supply.Add(mint.Amount)
	token.UpdatedAt = call.BlockTime
	if err := tx.SaveToken(ctx, token); err != nil {
		return err
	}

	return creditHolder(ctx, tx, call, raw, mint.TokenID, mint.Owner, mint.Amount, schema.BalanceUpdateKindMint)
}

func applyBurn(ctx context.Context, tx store.Store, call *registry.CallContext, raw domain.RawEvent, burn *BurnEvent) error {
	contract := string(call.ContractAddress.Address())

	token, err := tx.GetToken(ctx, contract, burn.TokenID)
	if err != nil {
		return err
	}
	if token == nil {
		return fmt.Errorf("burn of token %s: %w", burn.TokenID, domain.ErrTokenNotFound)
	}

	newSupply := token.Supply.Sub(burn.Amount)
	if newSupply.IsNegative() {
		return fmt.Errorf("burn of token %s exceeds supply %s: %w", burn.TokenID, token.Supply, domain.ErrBalanceUnderflow)
	}
	token.Supply = newSupply
	token.UpdatedAt = call.BlockTime
	if err := tx.SaveToken(ctx, token); err != nil {
		return err
	}

	return debitHolder(ctx, tx, call, raw, burn.TokenID, burn.Owner, burn.Amount, schema.BalanceUpdateKindBurn)
}

func applyTransfer(ctx context.Context, tx store.Store, call *registry.CallContext, raw domain.RawEvent, transfer *TransferEvent) error {
	if err := debitHolder(ctx, tx, call, raw, transfer.TokenID, transfer.From, transfer.Amount, schema.BalanceUpdateKindTransferOut); err != nil {
		return err
	}
	return creditHolder(ctx, tx, call, raw, transfer.TokenID, transfer.To, transfer.Amount, schema.BalanceUpdateKindTransferIn)
}

func applyTokenMetadata(ctx context.Context, tx store.Store, call *registry.CallContext, metadata *TokenMetadataEvent) error {
	contract := string(call.ContractAddress.Address())

	token, err := tx.GetToken(ctx, contract, metadata.TokenID)
	if err != nil {
		return err
	}

	if token == nil {
		return tx.CreateToken(ctx, &schema.Token{
			ContractAddress: contract,
			TokenID:         metadata.TokenID,
			Supply:          domain.NewAmount(0),
			MetadataURL:     metadata.URL,
			MetadataHash:    metadata.Hash,
			CreatedAt:       call.BlockTime,
			UpdatedAt:       call.BlockTime,
		})
	}

	// Supply and pause state survive metadata updates.
	token.MetadataURL = metadata.URL
	token.MetadataHash = metadata.Hash
	token.UpdatedAt = call.BlockTime
	return tx.SaveToken(ctx, token)
}

func applyUpdateOperator(ctx context.Context, tx store.Store, call *registry.CallContext, update *UpdateOperatorEvent) error {
	contract := string(call.ContractAddress.Address())

	switch update.Action {
	case OperatorActionAdd:
		return tx.AddOperator(ctx, &schema.Operator{
			ContractAddress: contract,
			Owner:           string(update.Owner),
			OperatorAddress: string(update.Operator),
			CreatedAt:       call.BlockTime,
		})
	case OperatorActionRemove:
		return tx.RemoveOperator(ctx, contract, string(update.Owner), string(update.Operator))
	}
	return fmt.Errorf("unknown operator action %q: %w", update.Action, domain.ErrEventDecode)
}

func setTokenPaused(ctx context.Context, tx store.Store, call *registry.CallContext, tokenID string, paused bool) error {
	contract := string(call.ContractAddress.Address())

	token, err := tx.GetToken(ctx, contract, tokenID)
	if err != nil {
		return err
	}
	if token == nil {
		return fmt.Errorf("pause of token %s: %w", tokenID, domain.ErrTokenNotFound)
	}

	token.IsPaused = paused
	token.UpdatedAt = call.BlockTime
	return tx.SaveToken(ctx, token)
}

// applyRecovered moves every holder row of the lost account to the new
// account and records the recovery, both under one nested transaction.
func applyRecovered(ctx context.Context, tx store.Store, call *registry.CallContext, recovered *RecoveredEvent) error {
	contract := string(call.ContractAddress.Address())

	return tx.Transaction(ctx, func(nested store.Store) error {
		moved, err := nested.RekeyTokenHolders(ctx, contract, string(recovered.LostAccount), string(recovered.NewAccount))
		if err != nil {
			return err
		}

		return nested.CreateRecoveryRecord(ctx, &schema.RecoveryRecord{
			ContractAddress: contract,
			LostAddress:     string(recovered.LostAccount),
			NewAddress:      string(recovered.NewAccount),
			HoldersMoved:    moved,
			CreatedAt:       call.BlockTime,
		})
	})
}

// applyFreeze moves amount between the unfrozen and frozen balance of
// one holder and appends the matching ledger row.
func applyFreeze(ctx context.Context, tx store.Store, call *registry.CallContext, raw domain.RawEvent, freeze *FreezeEvent, frozen bool) error {
	contract := string(call.ContractAddress.Address())

	holder, err := tx.GetTokenHolder(ctx, contract, freeze.TokenID, string(freeze.Address))
	if err != nil {
		return err
	}
	if holder == nil {
		return fmt.Errorf("freeze for holder %s: %w", freeze.Address, domain.ErrHolderNotFound)
	}

	kind := schema.BalanceUpdateKindFreeze
	if frozen {
		holder.UnfrozenBalance = holder.UnfrozenBalance.Sub(freeze.Amount)
		holder.FrozenBalance = holder.FrozenBalance.Add(freeze.Amount)
		if holder.UnfrozenBalance.IsNegative() {
			return fmt.Errorf("freeze of %s for holder %s: %w", freeze.Amount, freeze.Address, domain.ErrBalanceUnderflow)
		}
	} else {
		kind = schema.BalanceUpdateKindUnFreeze
		holder.FrozenBalance = holder.FrozenBalance.Sub(freeze.Amount)
		holder.UnfrozenBalance = holder.UnfrozenBalance.Add(freeze.Amount)
		if holder.FrozenBalance.IsNegative() {
			return fmt.Errorf("unfreeze of %s for holder %s: %w", freeze.Amount, freeze.Address, domain.ErrBalanceUnderflow)
		}
	}

	holder.UpdatedAt = call.BlockTime
	if err := tx.UpsertTokenHolder(ctx, holder); err != nil {
		return err
	}

	return appendBalanceUpdate(ctx, tx, call, raw, holder, kind, freeze.Amount)
}

// creditHolder adds amount to the holder's unfrozen balance, creating
// the row on first credit, and appends the ledger row.
func creditHolder(ctx context.Context, tx store.Store, call *registry.CallContext, raw domain.RawEvent, tokenID string, address domain.Address, amount domain.Amount, kind schema.BalanceUpdateKind) error {
	contract := string(call.ContractAddress.Address())

	holder, err := tx.GetTokenHolder(ctx, contract, tokenID, string(address))
	if err != nil {
		return err
	}
	if holder == nil {
		holder = &schema.TokenHolder{
			ContractAddress: contract,
			TokenID:         tokenID,
			HolderAddress:   string(address),
			FrozenBalance:   domain.NewAmount(0),
			UnfrozenBalance: domain.NewAmount(0),
			CreatedAt:       call.BlockTime,
		}
	}

	holder.UnfrozenBalance = holder.UnfrozenBalance.Add(amount)
	holder.UpdatedAt = call.BlockTime
	if err := tx.UpsertTokenHolder(ctx, holder); err != nil {
		return err
	}

	return appendBalanceUpdate(ctx, tx, call, raw, holder, kind, amount)
}

// debitHolder subtracts amount from the holder's unfrozen balance and
// appends the ledger row. A missing holder or a balance that would go
// negative is fatal.
func debitHolder(ctx context.Context, tx store.Store, call *registry.CallContext, raw domain.RawEvent, tokenID string, address domain.Address, amount domain.Amount, kind schema.BalanceUpdateKind) error {
	contract := string(call.ContractAddress.Address())

	holder, err := tx.GetTokenHolder(ctx, contract, tokenID, string(address))
	if err != nil {
		return err
	}
	if holder == nil {
		return fmt.Errorf("debit of holder %s for token %s: %w", address, tokenID, domain.ErrHolderNotFound)
	}

	holder.UnfrozenBalance = holder.UnfrozenBalance.Sub(amount)
	if holder.UnfrozenBalance.IsNegative() {
		return fmt.Errorf("debit of %s exceeds balance of holder %s: %w", amount, address, domain.ErrBalanceUnderflow)
	}
	holder.UpdatedAt = call.BlockTime
	if err := tx.UpsertTokenHolder(ctx, holder); err != nil {
		return err
	}

	return appendBalanceUpdate(ctx, tx, call, raw, holder, kind, amount.Neg())
}

// appendBalanceUpdate writes the audit ledger row with the post-event
// balances.
func appendBalanceUpdate(ctx context.Context, tx store.Store, call *registry.CallContext, raw domain.RawEvent, holder *schema.TokenHolder, kind schema.BalanceUpdateKind, delta domain.Amount) error {
	return tx.CreateBalanceUpdate(ctx, &schema.TokenHolderBalanceUpdate{
		ContractAddress:  holder.ContractAddress,
		TokenID:          holder.TokenID,
		HolderAddress:    holder.HolderAddress,
		Kind:             kind,
		Delta:            delta,
		FrozenBalance:    holder.FrozenBalance,
		UnfrozenBalance:  holder.UnfrozenBalance,
		Sender:           string(call.Sender),
		Instigator:       string(call.Instigator),
		BlockHeight:      call.BlockHeight,
		TransactionIndex: call.TransactionIndex,
		Raw:              datatypes.JSON(raw),
		SlotTime:         call.BlockTime,
	})
}
