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

// IdentityRegistryEventKind enumerates the identity registry events.
type IdentityRegistryEventKind string

const (
	IdentityRegistered        IdentityRegistryEventKind = "identity_registered"
	IdentityRemoved           IdentityRegistryEventKind = "identity_removed"
	IdentityRegistryAgentAdd  IdentityRegistryEventKind = "agent_added"
	IdentityRegistryAgentRemv IdentityRegistryEventKind = "agent_removed"
)

// IdentityRegistryEvent is the tagged union of identity registry event
// payloads.
type IdentityRegistryEvent struct {
	Kind               IdentityRegistryEventKind `json:"kind"`
	IdentityRegistered *IdentityEvent            `json:"identity_registered,omitempty"`
	IdentityRemoved    *IdentityEvent            `json:"identity_removed,omitempty"`
	AgentAdded         *AgentEvent               `json:"agent_added,omitempty"`
	AgentRemoved       *AgentEvent               `json:"agent_removed,omitempty"`
}

type IdentityEvent struct {
	Address domain.Address `json:"address"`
}

// NewIdentityRegistryProcessor returns the processor for the identity
// registry kind.
func NewIdentityRegistryProcessor() registry.ProcessorFn {
	return applyIdentityRegistryEvents
}

func applyIdentityRegistryEvents(ctx context.Context, tx store.Store, call *registry.CallContext) error {
	for i, raw := range call.Events {
		var event IdentityRegistryEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return fmt.Errorf("event %d of %s: %v: %w", i, call.ContractAddress, err, domain.ErrEventDecode)
		}

		if err := applyIdentityRegistryEvent(ctx, tx, call, &event); err != nil {
			return fmt.Errorf("event %d (%s) of %s: %w", i, event.Kind, call.ContractAddress, err)
		}
	}
	return nil
}

func applyIdentityRegistryEvent(ctx context.Context, tx store.Store, call *registry.CallContext, event *IdentityRegistryEvent) error {
	contract := string(call.ContractAddress.Address())

	switch event.Kind {
	case IdentityRegistered:
		if event.IdentityRegistered == nil {
			return fmt.Errorf("identity_registered payload missing: %w", domain.ErrEventDecode)
		}
		return tx.AddIdentity(ctx, &schema.Identity{
			ContractAddress: contract,
			HolderAddress:   string(event.IdentityRegistered.Address),
			CreatedAt:       call.BlockTime,
		})

	case IdentityRemoved:
		if event.IdentityRemoved == nil {
			return fmt.Errorf("identity_removed payload missing: %w", domain.ErrEventDecode)
		}
		return tx.RemoveIdentity(ctx, contract, string(event.IdentityRemoved.Address))

	case IdentityRegistryAgentAdd:
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

	case IdentityRegistryAgentRemv:
		if event.AgentRemoved == nil {
			return fmt.Errorf("agent_removed payload missing: %w", domain.ErrEventDecode)
		}
		return tx.RemoveAgent(ctx, contract, string(event.AgentRemoved.Agent))
	}

	return fmt.Errorf("unknown event kind %q: %w", event.Kind, domain.ErrEventDecode)
}
