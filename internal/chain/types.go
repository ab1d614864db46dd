package chain

import (
	"time"

	"github.com/rwalabs/rwa-indexer/internal/domain"
)

// OutcomeKind is the transaction outcome class reported by the node.
type OutcomeKind string

const (
	OutcomeAccountTransaction OutcomeKind = "accountTransaction"
)

// EffectKind is the effect class of an account transaction outcome.
type EffectKind string

const (
	EffectContractInitialized  EffectKind = "contractInitialized"
	EffectContractUpdateIssued EffectKind = "contractUpdateIssued"
)

// TraceKind is the kind of one contract trace element.
type TraceKind string

const (
	TraceUpdated     TraceKind = "updated"
	TraceInterrupted TraceKind = "interrupted"
	TraceResumed     TraceKind = "resumed"
	TraceUpgraded    TraceKind = "upgraded"
	TraceTransferred TraceKind = "transferred"
)

// BlockHandle identifies one finalized block in the stream.
type BlockHandle struct {
	Height uint64           `json:"height"`
	Hash   domain.BlockHash `json:"hash"`
}

// BlockInfo is the per-block metadata needed to decide whether the
// block carries any work.
type BlockInfo struct {
	Hash             domain.BlockHash `json:"hash"`
	Height           uint64           `json:"height"`
	SlotTime         time.Time        `json:"slotTime"`
	TransactionCount int              `json:"transactionCount"`
}

// TransactionOutcome is one transaction's outcome as reported by the
// node. Effect is nil for outcome kinds the indexer ignores.
type TransactionOutcome struct {
	Hash   domain.TransactionHash `json:"hash"`
	Index  uint64                 `json:"index"`
	Sender domain.AccountAddress  `json:"sender"`
	Kind   OutcomeKind            `json:"kind"`
	Effect *TransactionEffect     `json:"effect,omitempty"`
}

// TransactionEffect is the tagged union of effect payloads. Exactly one
// payload field matching Kind is non-nil.
type TransactionEffect struct {
	Kind                 EffectKind            `json:"kind"`
	ContractInitialized  *ContractInitialized  `json:"contractInitialized,omitempty"`
	ContractUpdateIssued *ContractUpdateIssued `json:"contractUpdateIssued,omitempty"`
}

// ContractInitialized is the effect of instantiating a contract.
type ContractInitialized struct {
	Address         domain.ContractAddress `json:"address"`
	ModuleReference domain.ModuleReference `json:"moduleRef"`
	InitName        string                 `json:"initName"`
	Amount          domain.Amount          `json:"amount"`
	Events          []domain.RawEvent      `json:"events"`
}

// ContractUpdateIssued carries the raw execution trace of a top-level
// contract update, in execution order.
type ContractUpdateIssued struct {
	Trace []TraceElement `json:"trace"`
}

// TraceElement is one element of a contract execution trace. Exactly
// one payload field matching Kind is non-nil; transferred and resumed
// elements carry no payload the indexer uses.
type TraceElement struct {
	Kind        TraceKind           `json:"kind"`
	Updated     *UpdatedElement     `json:"updated,omitempty"`
	Interrupted *InterruptedElement `json:"interrupted,omitempty"`
	Upgraded    *UpgradedElement    `json:"upgraded,omitempty"`
}

// UpdatedElement is the completion of one contract invocation.
type UpdatedElement struct {
	Address     domain.ContractAddress `json:"address"`
	Instigator  domain.Address         `json:"instigator"`
	Amount      domain.Amount          `json:"amount"`
	ReceiveName string                 `json:"receiveName"`
	Events      []domain.RawEvent      `json:"events"`
}

// InterruptedElement marks a contract handing control to another
// contract mid-invocation, with the events emitted so far.
type InterruptedElement struct {
	Address domain.ContractAddress `json:"address"`
	Events  []domain.RawEvent      `json:"events"`
}

// UpgradedElement records an in-place module swap.
type UpgradedElement struct {
	Address domain.ContractAddress `json:"address"`
	From    domain.ModuleReference `json:"from"`
	To      domain.ModuleReference `json:"to"`
}
