package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/rwalabs/rwa-indexer/internal/domain"
)

// MarketListing represents the market_listings table - current P2P
// market listings keyed by (market contract, token contract, token,
// seller)
type MarketListing struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the market contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_listings_key,priority:1"`
	// TokenContract is the listed token's contract
	TokenContract string `gorm:"column:token_contract;not null;type:text;uniqueIndex:idx_listings_key,priority:2"`
	// TokenID is the listed token id
	TokenID string `gorm:"column:token_id;not null;type:text;uniqueIndex:idx_listings_key,priority:3"`
	// Seller is the listing account
	Seller string `gorm:"column:seller;not null;type:text;uniqueIndex:idx_listings_key,priority:4"`
	// Amount is the token quantity still on offer
	Amount domain.Amount `gorm:"column:amount;not null;type:numeric(78,0)"`
	// Rate is the asking price per token unit
	Rate domain.Amount `gorm:"column:rate;not null;type:numeric(78,0)"`
	// CreatedAt is the slot time of the listing event
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamp"`
	// UpdatedAt is the slot time of the last change to the listing
	UpdatedAt time.Time `gorm:"column:updated_at;not null;type:timestamp"`
}

// TableName specifies the table name for the MarketListing model
func (MarketListing) TableName() string {
	return "market_listings"
}

// MarketTrade represents the market_trades table - append-only ledger
// of executed exchanges
type MarketTrade struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the market contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;index:idx_trades_contract"`
	// TokenContract is the traded token's contract
	TokenContract string `gorm:"column:token_contract;not null;type:text"`
	// TokenID is the traded token id
	TokenID string `gorm:"column:token_id;not null;type:text"`
	// Seller is the account that sold
	Seller string `gorm:"column:seller;not null;type:text"`
	// Buyer is the account that bought
	Buyer string `gorm:"column:buyer;not null;type:text"`
	// TokenAmount is the token quantity exchanged
	TokenAmount domain.Amount `gorm:"column:token_amount;not null;type:numeric(78,0)"`
	// CurrencyAmount is the currency paid
	CurrencyAmount domain.Amount `gorm:"column:currency_amount;not null;type:numeric(78,0)"`
	// BlockHeight is the height of the block containing the trade
	BlockHeight uint64 `gorm:"column:block_height;not null"`
	// Raw is the decoded event payload
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// SlotTime is the chain-clock time of the trade
	SlotTime time.Time `gorm:"column:slot_time;not null;type:timestamp"`
	// CreatedAt is the wall-clock time the row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MarketTrade model
func (MarketTrade) TableName() string {
	return "market_trades"
}
