package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rwalabs/rwa-indexer/internal/domain"
	"github.com/rwalabs/rwa-indexer/internal/logger"
	"github.com/rwalabs/rwa-indexer/internal/registry"
	"github.com/rwalabs/rwa-indexer/internal/store"
	"github.com/rwalabs/rwa-indexer/internal/store/schema"
)

// errDuplicateBlock aborts the block transaction when the resume marker
// insert affects zero rows. It never escapes ProcessBlock.
var errDuplicateBlock = errors.New("block already processed")

// BlockResult summarizes one committed (or replayed) block.
type BlockResult struct {
	// Duplicate is true when the block was already processed and the
	// whole transaction rolled back as a benign no-op.
	Duplicate             bool
	ProcessedTransactions int
	ProcessedCalls        int
}

// BlockProcessor applies one parsed block as a single atomic storage
// transaction, with duplicate-block detection for idempotent resume.
//
//go:generate mockgen -source=processor.go -destination=../mocks/block_processor.go -package=mocks -mock_names=BlockProcessor=MockBlockProcessor
type BlockProcessor interface {
	ProcessBlock(ctx context.Context, block *domain.ParsedBlock) (*BlockResult, error)
}

// blockProcessor is the transactional orchestrator
type blockProcessor struct {
	store      store.Store
	registry   registry.ProcessorRegistry
	deployment registry.DeploymentRegistry
}

// NewBlockProcessor creates a new block processor
func NewBlockProcessor(st store.Store, reg registry.ProcessorRegistry, deployment registry.DeploymentRegistry) BlockProcessor {
	return &blockProcessor{
		store:      st,
		registry:   reg,
		deployment: deployment,
	}
}

// ProcessBlock runs one storage transaction covering every contract
// call in the block, the processed-transaction ledger, and the resume
// marker. Any processor error aborts the whole block.
func (p *blockProcessor) ProcessBlock(ctx context.Context, block *domain.ParsedBlock) (*BlockResult, error) {
	result := &BlockResult{}

	err := p.store.Transaction(ctx, func(tx store.Store) error {
		for i := range block.Transactions {
			txn := block.Transactions[i]

			processedCalls, err := p.processTransaction(ctx, tx, block, &txn)
			if err != nil {
				return fmt.Errorf("failed to process transaction %s: %w", txn.Hash, err)
			}

			if processedCalls == 0 {
				continue
			}

			if err := tx.CreateProcessedTransaction(ctx, &schema.ProcessedTransaction{
				TransactionHash:  string(txn.Hash),
				BlockHash:        string(block.Hash),
				BlockHeight:      block.Height,
				TransactionIndex: txn.Index,
			}); err != nil {
				return err
			}

			result.ProcessedTransactions++
			result.ProcessedCalls += processedCalls
		}

		inserted, err := tx.InsertLastProcessedBlock(ctx, &schema.LastProcessedBlock{
			Height:    block.Height,
			BlockHash: string(block.Hash),
			SlotTime:  block.SlotTime,
		})
		if err != nil {
			return err
		}
		if !inserted {
			return errDuplicateBlock
		}

		return nil
	})

	if errors.Is(err, errDuplicateBlock) {
		logger.InfoCtx(ctx, "Skipping already processed block",
			zap.Uint64("height", block.Height),
			zap.String("hash", string(block.Hash)))
		return &BlockResult{Duplicate: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to process block %d: %w", block.Height, err)
	}

	return result, nil
}

// processTransaction applies one transaction's contract calls in
// execution order and returns how many produced a ledger row.
func (p *blockProcessor) processTransaction(ctx context.Context, tx store.Store, block *domain.ParsedBlock, txn *domain.ParsedTransaction) (int, error) {
	processed := 0

	for i := range txn.Calls {
		call := txn.Calls[i]

		var (
			ok  bool
			err error
		)
		switch call.Kind {
		case domain.CallKindInit:
			ok, err = p.processInit(ctx, tx, block, txn, call.Init)
		case domain.CallKindUpdate:
			ok, err = p.processUpdate(ctx, tx, block, txn, call.Update)
		case domain.CallKindUpgraded:
			ok, err = p.processUpgraded(ctx, tx, txn, call.Upgraded)
		default:
			err = fmt.Errorf("unknown call kind %q", call.Kind)
		}
		if err != nil {
			return 0, err
		}
		if ok {
			processed++
		}
	}

	return processed, nil
}

// processInit registers a new contract instance. Only init calls signed
// by a trusted deployer for a known (module, name) pair are tracked;
// everything else is skipped silently.
func (p *blockProcessor) processInit(ctx context.Context, tx store.Store, block *domain.ParsedBlock, txn *domain.ParsedTransaction, init *domain.InitCall) (bool, error) {
	if !p.deployment.IsTrustedDeployer(txn.Sender) {
		logger.DebugCtx(ctx, "Skipping init from untrusted deployer",
			zap.String("sender", string(txn.Sender)),
			zap.String("contract", init.Address.String()))
		return false, nil
	}

	kind, found := p.registry.KindFor(init.ModuleReference, init.ContractName)
	if !found {
		logger.DebugCtx(ctx, "Skipping init of unknown contract kind",
			zap.String("module_ref", string(init.ModuleReference)),
			zap.String("contract_name", string(init.ContractName)))
		return false, nil
	}

	existing, err := tx.GetContract(ctx, string(init.Address.Address()))
	if err != nil {
		return false, err
	}
	if existing != nil {
		// A second init on the same address means the chain data or the
		// indexer state is corrupt.
		return false, fmt.Errorf("init of %s: %w", init.Address, domain.ErrContractExists)
	}

	if err := tx.CreateContract(ctx, &schema.Contract{
		Address:         string(init.Address.Address()),
		ModuleReference: string(init.ModuleReference),
		ContractName:    string(init.ContractName),
		Owner:           string(txn.Sender),
		Kind:            kind,
		CreatedAt:       block.SlotTime,
	}); err != nil {
		return false, err
	}

	logger.InfoCtx(ctx, "Registered new contract",
		zap.String("contract", init.Address.String()),
		zap.String("kind", string(kind)),
		zap.String("owner", string(txn.Sender)))

	callRow := &schema.ProcessedContractCall{
		ContractAddress: string(init.Address.Address()),
		TransactionHash: string(txn.Hash),
		CallKind:        domain.CallKindInit,
		Sender:          string(txn.Sender),
		Instigator:      string(txn.Sender),
		Amount:          init.Amount,
		EventCount:      len(init.Events),
	}
	if err := tx.CreateProcessedContractCall(ctx, callRow); err != nil {
		return false, err
	}

	if len(init.Events) > 0 {
		if err := p.applyEvents(ctx, tx, kind, callRow.ID, &registry.CallContext{
			BlockHeight:      block.Height,
			BlockTime:        block.SlotTime,
			TransactionIndex: txn.Index,
			Sender:           txn.Sender,
			Instigator:       domain.Address(txn.Sender),
			ContractAddress:  init.Address,
			Events:           init.Events,
		}); err != nil {
			return false, err
		}
	}

	return true, nil
}

// processUpdate applies an update call against a tracked contract.
// Updates of untracked contracts are normal and skipped without a row.
func (p *blockProcessor) processUpdate(ctx context.Context, tx store.Store, block *domain.ParsedBlock, txn *domain.ParsedTransaction, update *domain.UpdateCall) (bool, error) {
	contract, err := tx.GetContract(ctx, string(update.Address.Address()))
	if err != nil {
		return false, err
	}
	if contract == nil {
		return false, nil
	}

	callRow := &schema.ProcessedContractCall{
		ContractAddress: string(update.Address.Address()),
		TransactionHash: string(txn.Hash),
		CallKind:        domain.CallKindUpdate,
		Sender:          string(txn.Sender),
		Instigator:      string(update.Sender),
		Amount:          update.Amount,
		Entrypoint:      update.Entrypoint,
		EventCount:      len(update.Events),
	}
	if err := tx.CreateProcessedContractCall(ctx, callRow); err != nil {
		return false, err
	}

	if len(update.Events) > 0 {
		if err := p.applyEvents(ctx, tx, contract.Kind, callRow.ID, &registry.CallContext{
			BlockHeight:      block.Height,
			BlockTime:        block.SlotTime,
			TransactionIndex: txn.Index,
			Sender:           txn.Sender,
			Instigator:       update.Sender,
			ContractAddress:  update.Address,
			Events:           update.Events,
		}); err != nil {
			return false, err
		}
	}

	return true, nil
}

// processUpgraded records a module swap on a tracked contract.
func (p *blockProcessor) processUpgraded(ctx context.Context, tx store.Store, txn *domain.ParsedTransaction, upgraded *domain.UpgradedCall) (bool, error) {
	contract, err := tx.GetContract(ctx, string(upgraded.Address.Address()))
	if err != nil {
		return false, err
	}
	if contract == nil {
		return false, nil
	}

	if err := tx.UpdateContractModuleReference(ctx, contract.Address, string(upgraded.To)); err != nil {
		return false, err
	}

	logger.InfoCtx(ctx, "Contract module upgraded",
		zap.String("contract", upgraded.Address.String()),
		zap.String("from", string(upgraded.From)),
		zap.String("to", string(upgraded.To)))

	if err := tx.CreateProcessedContractCall(ctx, &schema.ProcessedContractCall{
		ContractAddress: string(upgraded.Address.Address()),
		TransactionHash: string(txn.Hash),
		CallKind:        domain.CallKindUpgraded,
		Sender:          string(txn.Sender),
		Instigator:      string(txn.Sender),
	}); err != nil {
		return false, err
	}

	return true, nil
}

// applyEvents resolves the kind's processor, runs it, and flips the
// call row's processed flag. A missing processor for a known kind is a
// configuration gap, logged and skipped.
func (p *blockProcessor) applyEvents(ctx context.Context, tx store.Store, kind domain.ContractKind, callID uint64, call *registry.CallContext) error {
	fn, found := p.registry.ProcessorFor(kind)
	if !found {
		logger.WarnCtx(ctx, "No processor registered for contract kind",
			zap.String("kind", string(kind)),
			zap.String("contract", call.ContractAddress.String()))
		return nil
	}

	start := time.Now()
	if err := fn(ctx, tx, call); err != nil {
		return fmt.Errorf("processor %s failed for %s: %w", kind, call.ContractAddress, err)
	}

	logger.DebugCtx(ctx, "Applied contract events",
		zap.String("kind", string(kind)),
		zap.String("contract", call.ContractAddress.String()),
		zap.Int("event_count", len(call.Events)),
		zap.Duration("took", time.Since(start)))

	return tx.MarkContractCallProcessed(ctx, callID)
}
