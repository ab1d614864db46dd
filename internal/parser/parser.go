package parser

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rwalabs/rwa-indexer/internal/chain"
	"github.com/rwalabs/rwa-indexer/internal/domain"
	"github.com/rwalabs/rwa-indexer/internal/logger"
)

const initNamePrefix = "init_"

// BlockParser normalizes one block's raw transaction outcomes into a
// ParsedBlock, folding interrupt/resume trace fragments into the owning
// update call.
//
//go:generate mockgen -source=parser.go -destination=../mocks/parser.go -package=mocks -mock_names=BlockParser=MockBlockParser
type BlockParser interface {
	ParseBlock(info *chain.BlockInfo, outcomes []chain.TransactionOutcome) (*domain.ParsedBlock, error)
}

type blockParser struct{}

// NewBlockParser creates a new block parser
func NewBlockParser() BlockParser {
	return &blockParser{}
}

// ParseBlock converts raw ordered transaction outcomes into a
// ParsedBlock. Chain ordering is preserved: transactions keep their
// index order, calls their execution order, events their emission order.
func (p *blockParser) ParseBlock(info *chain.BlockInfo, outcomes []chain.TransactionOutcome) (*domain.ParsedBlock, error) {
	block := &domain.ParsedBlock{
		Hash:     info.Hash,
		Height:   info.Height,
		SlotTime: info.SlotTime,
	}

	for i := range outcomes {
		outcome := outcomes[i]

		// Non-account outcomes (chain housekeeping) carry no contract
		// activity and are dropped.
		if outcome.Kind != chain.OutcomeAccountTransaction || outcome.Effect == nil {
			continue
		}

		calls, err := p.parseEffect(outcome)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction %s: %w", outcome.Hash, err)
		}
		if len(calls) == 0 {
			continue
		}

		block.Transactions = append(block.Transactions, domain.ParsedTransaction{
			Hash:   outcome.Hash,
			Index:  outcome.Index,
			Sender: outcome.Sender,
			Calls:  calls,
		})
	}

	return block, nil
}

func (p *blockParser) parseEffect(outcome chain.TransactionOutcome) ([]domain.ContractCall, error) {
	effect := outcome.Effect

	switch effect.Kind {
	case chain.EffectContractInitialized:
		if effect.ContractInitialized == nil {
			return nil, fmt.Errorf("contract initialized effect without payload")
		}
		call, err := p.parseInit(effect.ContractInitialized)
		if err != nil {
			return nil, err
		}
		return []domain.ContractCall{*call}, nil

	case chain.EffectContractUpdateIssued:
		if effect.ContractUpdateIssued == nil {
			return nil, fmt.Errorf("contract update effect without payload")
		}
		return p.foldTrace(outcome, effect.ContractUpdateIssued.Trace)
	}

	// Effect kinds the indexer does not track.
	return nil, nil
}

func (p *blockParser) parseInit(init *chain.ContractInitialized) (*domain.ContractCall, error) {
	name, ok := strings.CutPrefix(init.InitName, initNamePrefix)
	if !ok || name == "" {
		return nil, fmt.Errorf("malformed init name %q", init.InitName)
	}

	return &domain.ContractCall{
		Kind: domain.CallKindInit,
		Init: &domain.InitCall{
			Address:         init.Address,
			ModuleReference: init.ModuleReference,
			ContractName:    domain.ContractName(name),
			Amount:          init.Amount,
			Events:          init.Events,
		},
	}, nil
}

// foldTrace reconstructs contract calls from the raw execution trace.
// Interrupted elements buffer their events per address; the next Updated
// element for that address consumes the buffer and prepends it to its
// own events, so event order reads as if all interrupt events happened
// immediately before the resuming update.
func (p *blockParser) foldTrace(outcome chain.TransactionOutcome, trace []chain.TraceElement) ([]domain.ContractCall, error) {
	var calls []domain.ContractCall
	pending := make(map[domain.ContractAddress][]domain.RawEvent)

	for i := range trace {
		elem := trace[i]

		switch elem.Kind {
		case chain.TraceInterrupted:
			if elem.Interrupted == nil {
				return nil, fmt.Errorf("interrupted trace element without payload")
			}
			addr := elem.Interrupted.Address
			pending[addr] = append(pending[addr], elem.Interrupted.Events...)

		case chain.TraceUpdated:
			if elem.Updated == nil {
				return nil, fmt.Errorf("updated trace element without payload")
			}
			updated := elem.Updated

			events := updated.Events
			if buffered, ok := pending[updated.Address]; ok {
				events = append(buffered, updated.Events...)
				delete(pending, updated.Address)
			}

			entrypoint, err := parseReceiveName(updated.ReceiveName)
			if err != nil {
				return nil, err
			}

			calls = append(calls, domain.ContractCall{
				Kind: domain.CallKindUpdate,
				Update: &domain.UpdateCall{
					Address:    updated.Address,
					Entrypoint: entrypoint,
					Sender:     updated.Instigator,
					Amount:     updated.Amount,
					Events:     events,
				},
			})

		case chain.TraceUpgraded:
			if elem.Upgraded == nil {
				return nil, fmt.Errorf("upgraded trace element without payload")
			}
			calls = append(calls, domain.ContractCall{
				Kind: domain.CallKindUpgraded,
				Upgraded: &domain.UpgradedCall{
					Address: elem.Upgraded.Address,
					From:    elem.Upgraded.From,
					To:      elem.Upgraded.To,
				},
			})

		case chain.TraceResumed, chain.TraceTransferred:
			// Carry no events of their own.

		default:
			return nil, fmt.Errorf("unknown trace element kind %q", elem.Kind)
		}
	}

	// A well-formed trace reclaims every interrupt buffer. Leftovers
	// mean the interrupted contract never resumed with an update in
	// this transaction; their events are dropped.
	for addr, events := range pending {
		logger.Warn("discarding unreclaimed interrupt events",
			zap.String("tx_hash", string(outcome.Hash)),
			zap.String("contract", addr.String()),
			zap.Int("event_count", len(events)))
	}

	return calls, nil
}

// parseReceiveName splits "<contract>.<entrypoint>" and returns the
// entrypoint part.
func parseReceiveName(receiveName string) (string, error) {
	_, entrypoint, ok := strings.Cut(receiveName, ".")
	if !ok || entrypoint == "" {
		return "", fmt.Errorf("malformed receive name %q", receiveName)
	}
	return entrypoint, nil
}
