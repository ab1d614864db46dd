package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/rwalabs/rwa-indexer/internal/domain"
)

// Yield represents the yields table - the yield schedule a yielder
// contract currently advertises per (token contract, token)
type Yield struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the yielder contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_yields_key,priority:1"`
	// TokenContract is the yielding token's contract
	TokenContract string `gorm:"column:token_contract;not null;type:text;uniqueIndex:idx_yields_key,priority:2"`
	// TokenID is the yielding token id
	TokenID string `gorm:"column:token_id;not null;type:text;uniqueIndex:idx_yields_key,priority:3"`
	// Rate is the yield per token unit per period
	Rate domain.Amount `gorm:"column:rate;not null;type:numeric(78,0)"`
	// CreatedAt is the slot time of the yield-added event
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamp"`
	// UpdatedAt is the slot time of the last schedule change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;type:timestamp"`
}

// TableName specifies the table name for the Yield model
func (Yield) TableName() string {
	return "yields"
}

// YieldDistribution represents the yield_distributions table -
// append-only ledger of executed distributions
type YieldDistribution struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the yielder contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;index:idx_yield_dist_contract"`
	// TokenContract is the yielding token's contract
	TokenContract string `gorm:"column:token_contract;not null;type:text"`
	// TokenID is the yielding token id
	TokenID string `gorm:"column:token_id;not null;type:text"`
	// Recipient is the account the yield was paid to
	Recipient string `gorm:"column:recipient;not null;type:text"`
	// Amount is the yield paid
	Amount domain.Amount `gorm:"column:amount;not null;type:numeric(78,0)"`
	// BlockHeight is the height of the block containing the distribution
	BlockHeight uint64 `gorm:"column:block_height;not null"`
	// Raw is the decoded event payload
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// SlotTime is the chain-clock time of the distribution
	SlotTime time.Time `gorm:"column:slot_time;not null;type:timestamp"`
	// CreatedAt is the wall-clock time the row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the YieldDistribution model
func (YieldDistribution) TableName() string {
	return "yield_distributions"
}
