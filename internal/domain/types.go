package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Address is an opaque on-chain address. It is either an account address
// (base58 string) or the string form of a ContractAddress.
type Address string

// AccountAddress is an account-level address. Only accounts can sign
// transactions, so instigators and init senders are always accounts.
type AccountAddress string

// ModuleReference identifies a deployed contract module (hex hash).
type ModuleReference string

// BlockHash identifies a finalized block.
type BlockHash string

// TransactionHash identifies a transaction within a block.
type TransactionHash string

// ContractName is the declared name of a contract within its module
// (e.g. "init_security_token" stripped to "security_token").
type ContractName string

// ContractAddress is the coordinate pair addressing a contract instance.
type ContractAddress struct {
	Index    uint64 `json:"index"`
	Subindex uint64 `json:"subindex"`
}

var contractAddressRe = regexp.MustCompile(`^<(\d+),(\d+)>$`)

// String renders the canonical "<index,subindex>" form.
func (a ContractAddress) String() string {
	return fmt.Sprintf("<%d,%d>", a.Index, a.Subindex)
}

// Address returns the contract address as an opaque Address.
func (a ContractAddress) Address() Address {
	return Address(a.String())
}

// IsZero reports whether the address is the zero coordinate pair.
func (a ContractAddress) IsZero() bool {
	return a.Index == 0 && a.Subindex == 0
}

// ParseContractAddress parses the canonical "<index,subindex>" form.
func ParseContractAddress(s string) (ContractAddress, error) {
	m := contractAddressRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ContractAddress{}, fmt.Errorf("invalid contract address %q", s)
	}

	index, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return ContractAddress{}, fmt.Errorf("invalid contract index %q: %w", m[1], err)
	}
	subindex, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return ContractAddress{}, fmt.Errorf("invalid contract subindex %q: %w", m[2], err)
	}

	return ContractAddress{Index: index, Subindex: subindex}, nil
}

// ContractKind classifies a tracked contract and selects its event
// state machine. The kind set is fixed per indexer version.
type ContractKind string

const (
	KindSecurityToken    ContractKind = "security_token"
	KindIdentityRegistry ContractKind = "identity_registry"
	KindMintFund         ContractKind = "mint_fund"
	KindMarket           ContractKind = "market"
	KindYielder          ContractKind = "yielder"
)

// CallKind is the kind of a contract call within a transaction.
type CallKind string

const (
	CallKindInit     CallKind = "init"
	CallKindUpdate   CallKind = "update"
	CallKindUpgraded CallKind = "upgraded"
)

// RawEvent is one undecoded contract event payload as emitted on chain.
type RawEvent = hexutil.Bytes

// InitCall is a contract instantiation.
type InitCall struct {
	Address         ContractAddress
	ModuleReference ModuleReference
	ContractName    ContractName
	Amount          Amount
	Events          []RawEvent
}

// UpdateCall is an invocation of an existing contract instance, with the
// events of any interrupt/resume fragments folded in emission order.
type UpdateCall struct {
	Address    ContractAddress
	Entrypoint string
	Sender     Address
	Amount     Amount
	Events     []RawEvent
}

// UpgradedCall records a module swap on an existing contract instance.
type UpgradedCall struct {
	Address ContractAddress
	From    ModuleReference
	To      ModuleReference
}

// ContractCall is the tagged union of the three call kinds. Exactly one
// of the payload fields matching Kind is non-nil.
type ContractCall struct {
	Kind     CallKind
	Init     *InitCall
	Update   *UpdateCall
	Upgraded *UpgradedCall
}

// TargetAddress returns the contract instance the call addresses.
func (c ContractCall) TargetAddress() ContractAddress {
	switch c.Kind {
	case CallKindInit:
		return c.Init.Address
	case CallKindUpdate:
		return c.Update.Address
	case CallKindUpgraded:
		return c.Upgraded.Address
	}
	return ContractAddress{}
}

// ParsedTransaction is one account transaction with its contract calls
// in execution order.
type ParsedTransaction struct {
	Hash   TransactionHash
	Index  uint64
	Sender AccountAddress
	Calls  []ContractCall
}

// ParsedBlock is the normalized form of one finalized block.
type ParsedBlock struct {
	Hash         BlockHash
	Height       uint64
	SlotTime     time.Time
	Transactions []ParsedTransaction
}

// BlockNotification is the compact record published to downstream
// consumers after a block commits.
type BlockNotification struct {
	Hash                  BlockHash `json:"hash"`
	Height                uint64    `json:"height"`
	SlotTime              time.Time `json:"slot_time"`
	ProcessedTransactions int       `json:"processed_transactions"`
}
