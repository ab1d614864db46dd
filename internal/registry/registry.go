package registry

import (
	"context"
	"time"

	"github.com/rwalabs/rwa-indexer/internal/domain"
	"github.com/rwalabs/rwa-indexer/internal/store"
)

// CallContext carries the block and call coordinates a processor needs
// to materialize ledger rows.
type CallContext struct {
	BlockHeight      uint64
	BlockTime        time.Time
	TransactionIndex uint64
	// Sender is the account that signed the enclosing transaction.
	Sender domain.AccountAddress
	// Instigator is the immediate caller, an account or a contract.
	Instigator      domain.Address
	ContractAddress domain.ContractAddress
	Events          []domain.RawEvent
}

// ProcessorFn applies one call's events to materialized state inside
// the enclosing storage transaction.
type ProcessorFn func(ctx context.Context, tx store.Store, call *CallContext) error

// ContractBinding maps a deployed module and declared contract name to
// the kind whose state machine applies.
type ContractBinding struct {
	ModuleReference domain.ModuleReference `json:"module_ref"`
	ContractName    domain.ContractName    `json:"contract_name"`
	Kind            domain.ContractKind    `json:"kind"`
}

// ProcessorRegistry is the static dispatch table built once at startup:
// (module reference, contract name) resolves a contract kind, and a
// kind resolves its processor.
//
//go:generate mockgen -source=registry.go -destination=../mocks/processor_registry.go -package=mocks -mock_names=ProcessorRegistry=MockProcessorRegistry
type ProcessorRegistry interface {
	// KindFor resolves the contract kind for a (module, name) pair.
	// Unknown pairs are not an error; their init calls are ignored.
	KindFor(moduleRef domain.ModuleReference, name domain.ContractName) (domain.ContractKind, bool)

	// ProcessorFor resolves the processor for a contract kind.
	ProcessorFor(kind domain.ContractKind) (ProcessorFn, bool)
}

type bindingKey struct {
	moduleRef domain.ModuleReference
	name      domain.ContractName
}

// processorRegistry is the internal implementation of ProcessorRegistry
type processorRegistry struct {
	kinds      map[bindingKey]domain.ContractKind
	processors map[domain.ContractKind]ProcessorFn
}

// NewProcessorRegistry builds the immutable dispatch table from the
// deployment's contract bindings and the registered processors.
func NewProcessorRegistry(bindings []ContractBinding, processors map[domain.ContractKind]ProcessorFn) ProcessorRegistry {
	kinds := make(map[bindingKey]domain.ContractKind, len(bindings))
	for _, b := range bindings {
		kinds[bindingKey{moduleRef: b.ModuleReference, name: b.ContractName}] = b.Kind
	}

	procs := make(map[domain.ContractKind]ProcessorFn, len(processors))
	for kind, fn := range processors {
		procs[kind] = fn
	}

	return &processorRegistry{
		kinds:      kinds,
		processors: procs,
	}
}

// KindFor resolves the contract kind for a (module, name) pair
func (r *processorRegistry) KindFor(moduleRef domain.ModuleReference, name domain.ContractName) (domain.ContractKind, bool) {
	kind, ok := r.kinds[bindingKey{moduleRef: moduleRef, name: name}]
	return kind, ok
}

// ProcessorFor resolves the processor for a contract kind
func (r *processorRegistry) ProcessorFor(kind domain.ContractKind) (ProcessorFn, bool) {
	fn, ok := r.processors[kind]
	return fn, ok
}
