package schema

import (
	"time"

	"github.com/rwalabs/rwa-indexer/internal/domain"
)

// ProcessedTransaction represents the processed_transactions table -
// append-only audit trail of transactions that produced at least one
// successfully processed contract call
type ProcessedTransaction struct {
	// TransactionHash is the chain-assigned transaction hash
	TransactionHash string `gorm:"column:transaction_hash;primaryKey;type:text"`
	// BlockHash is the hash of the containing block
	BlockHash string `gorm:"column:block_hash;not null;type:text;index:idx_processed_txns_block"`
	// BlockHeight is the height of the containing block
	BlockHeight uint64 `gorm:"column:block_height;not null"`
	// TransactionIndex is the chain-assigned position within the block
	TransactionIndex uint64 `gorm:"column:transaction_index;not null"`
	// CreatedAt is the wall-clock time the row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProcessedTransaction model
func (ProcessedTransaction) TableName() string {
	return "processed_transactions"
}

// ProcessedContractCall represents the processed_contract_calls table -
// one row per contract call the indexer handled, append-only except for
// the processed flag
type ProcessedContractCall struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the target contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;index:idx_processed_calls_contract"`
	// TransactionHash is the containing transaction's hash
	TransactionHash string `gorm:"column:transaction_hash;not null;type:text;index:idx_processed_calls_txn"`
	// CallKind is init, update or upgraded
	CallKind domain.CallKind `gorm:"column:call_kind;not null;type:text"`
	// Sender is the account that signed the transaction
	Sender string `gorm:"column:sender;not null;type:text"`
	// Instigator is the immediate caller (account or contract)
	Instigator string `gorm:"column:instigator;not null;type:text"`
	// Amount is the native currency attached to the call
	Amount domain.Amount `gorm:"column:amount;not null;type:numeric(78,0)"`
	// Entrypoint is the invoked receive name, empty for init/upgraded
	Entrypoint string `gorm:"column:entrypoint;type:text"`
	// EventCount is the number of events the call emitted
	EventCount int `gorm:"column:event_count;not null"`
	// IsProcessed flips to true only after the call's events are fully applied
	IsProcessed bool `gorm:"column:is_processed;not null;default:false"`
	// CreatedAt is the wall-clock time the row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProcessedContractCall model
func (ProcessedContractCall) TableName() string {
	return "processed_contract_calls"
}

// LastProcessedBlock represents the last_processed_blocks table - the
// monotonic resume marker. Inserts succeed only for strictly greater
// heights; a zero-row insert signals an already-processed block
type LastProcessedBlock struct {
	// Height is the finalized block height
	Height uint64 `gorm:"column:height;primaryKey"`
	// BlockHash is the finalized block hash
	BlockHash string `gorm:"column:block_hash;not null;type:text"`
	// SlotTime is the chain-clock time of the block
	SlotTime time.Time `gorm:"column:slot_time;not null;type:timestamp"`
	// CreatedAt is the wall-clock time the row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LastProcessedBlock model
func (LastProcessedBlock) TableName() string {
	return "last_processed_blocks"
}
