package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/rwalabs/rwa-indexer/internal/domain"
)

// Token represents the tokens table - current state of one token id
// within a security-token contract. Supply always equals the sum of all
// holder balances (frozen plus unfrozen) for the same (contract, token)
type Token struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the owning contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_tokens_contract_token,priority:1"`
	// TokenID is the token id within the contract (text to support very large ids)
	TokenID string `gorm:"column:token_id;not null;type:text;uniqueIndex:idx_tokens_contract_token,priority:2"`
	// Supply is the total minted amount still outstanding
	Supply domain.Amount `gorm:"column:supply;not null;type:numeric(78,0)"`
	// IsPaused blocks transfers while set
	IsPaused bool `gorm:"column:is_paused;not null;default:false"`
	// MetadataURL points at the off-chain token metadata
	MetadataURL string `gorm:"column:metadata_url;type:text"`
	// MetadataHash is the optional integrity hash of the metadata document
	MetadataHash *string `gorm:"column:metadata_hash;type:text"`
	// CreatedAt is the slot time of the block that first mentioned the token
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamp"`
	// UpdatedAt is the slot time of the last event touching the token
	UpdatedAt time.Time `gorm:"column:updated_at;not null;type:timestamp"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}

// TokenHolder represents the token_holders table - current frozen and
// unfrozen balance per (contract, token, holder). Rows are created
// lazily on first credit; both balances are always non-negative
type TokenHolder struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the owning contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_holders_contract_token_addr,priority:1"`
	// TokenID is the token id within the contract
	TokenID string `gorm:"column:token_id;not null;type:text;uniqueIndex:idx_holders_contract_token_addr,priority:2"`
	// HolderAddress is the account holding the balance
	HolderAddress string `gorm:"column:holder_address;not null;type:text;uniqueIndex:idx_holders_contract_token_addr,priority:3"`
	// FrozenBalance is the non-transferable part of the balance
	FrozenBalance domain.Amount `gorm:"column:frozen_balance;not null;type:numeric(78,0)"`
	// UnfrozenBalance is the freely transferable part of the balance
	UnfrozenBalance domain.Amount `gorm:"column:unfrozen_balance;not null;type:numeric(78,0)"`
	// CreatedAt is the slot time of the first credit
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamp"`
	// UpdatedAt is the slot time of the last balance-affecting event
	UpdatedAt time.Time `gorm:"column:updated_at;not null;type:timestamp"`
}

// TableName specifies the table name for the TokenHolder model
func (TokenHolder) TableName() string {
	return "token_holders"
}

// BalanceUpdateKind identifies the balance-affecting event behind a
// ledger row
type BalanceUpdateKind string

const (
	BalanceUpdateKindMint        BalanceUpdateKind = "mint"
	BalanceUpdateKindBurn        BalanceUpdateKind = "burn"
	BalanceUpdateKindTransferIn  BalanceUpdateKind = "transfer_in"
	BalanceUpdateKindTransferOut BalanceUpdateKind = "transfer_out"
	BalanceUpdateKindFreeze      BalanceUpdateKind = "freeze"
	BalanceUpdateKindUnFreeze    BalanceUpdateKind = "unfreeze"
)

// TokenHolderBalanceUpdate represents the token_holder_balance_updates
// table - the append-only audit ledger from which holder state can be
// rebuilt. Rows are never mutated
type TokenHolderBalanceUpdate struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the owning contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;index:idx_balance_updates_contract_token,priority:1"`
	// TokenID is the token id within the contract
	TokenID string `gorm:"column:token_id;not null;type:text;index:idx_balance_updates_contract_token,priority:2"`
	// HolderAddress is the account whose balance the event touched
	HolderAddress string `gorm:"column:holder_address;not null;type:text"`
	// Kind is the balance-affecting event kind
	Kind BalanceUpdateKind `gorm:"column:kind;not null;type:text"`
	// Delta is the signed amount the event moved (negative for debits)
	Delta domain.Amount `gorm:"column:delta;not null;type:numeric(78,0)"`
	// FrozenBalance is the holder's frozen balance after the event
	FrozenBalance domain.Amount `gorm:"column:frozen_balance;not null;type:numeric(78,0)"`
	// UnfrozenBalance is the holder's unfrozen balance after the event
	UnfrozenBalance domain.Amount `gorm:"column:unfrozen_balance;not null;type:numeric(78,0)"`
	// Sender is the immediate caller of the triggering call
	Sender string `gorm:"column:sender;not null;type:text"`
	// Instigator is the account that signed the triggering transaction
	Instigator string `gorm:"column:instigator;not null;type:text"`
	// BlockHeight is the height of the block containing the event
	BlockHeight uint64 `gorm:"column:block_height;not null"`
	// TransactionIndex is the triggering transaction's position in the block
	TransactionIndex uint64 `gorm:"column:transaction_index;not null"`
	// Raw is the decoded event payload kept for debugging and rebuilds
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// SlotTime is the chain-clock time of the event
	SlotTime time.Time `gorm:"column:slot_time;not null;type:timestamp"`
	// CreatedAt is the wall-clock time the row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TokenHolderBalanceUpdate model
func (TokenHolderBalanceUpdate) TableName() string {
	return "token_holder_balance_updates"
}
