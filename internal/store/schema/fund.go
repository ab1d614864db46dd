package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/rwalabs/rwa-indexer/internal/domain"
)

// Fund represents the funds table - current state of one investment
// fund tracked by a mint-fund contract
type Fund struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the fund contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_funds_contract_token,priority:1"`
	// TokenID is the security token the fund mints into
	TokenID string `gorm:"column:token_id;not null;type:text;uniqueIndex:idx_funds_contract_token,priority:2"`
	// TokenContract is the security token contract receiving the mints
	TokenContract string `gorm:"column:token_contract;not null;type:text"`
	// Rate is the token units minted per currency unit invested
	Rate domain.Amount `gorm:"column:rate;not null;type:numeric(78,0)"`
	// TotalInvested is the cumulative currency received
	TotalInvested domain.Amount `gorm:"column:total_invested;not null;type:numeric(78,0)"`
	// IsRemoved marks funds withdrawn from offer
	IsRemoved bool `gorm:"column:is_removed;not null;default:false"`
	// CreatedAt is the slot time of the fund-added event
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamp"`
	// UpdatedAt is the slot time of the last fund event
	UpdatedAt time.Time `gorm:"column:updated_at;not null;type:timestamp"`
}

// TableName specifies the table name for the Fund model
func (Fund) TableName() string {
	return "funds"
}

// FundInvestmentKind identifies the investment ledger event
type FundInvestmentKind string

const (
	FundInvestmentKindInvested  FundInvestmentKind = "invested"
	FundInvestmentKindClaimed   FundInvestmentKind = "claimed"
	FundInvestmentKindCancelled FundInvestmentKind = "cancelled"
)

// FundInvestment represents the fund_investments table - append-only
// ledger of investor activity against a fund
type FundInvestment struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the fund contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;index:idx_fund_investments_contract,priority:1"`
	// TokenID is the security token the fund mints into
	TokenID string `gorm:"column:token_id;not null;type:text;index:idx_fund_investments_contract,priority:2"`
	// Investor is the investing account
	Investor string `gorm:"column:investor;not null;type:text"`
	// Kind is invested, claimed or cancelled
	Kind FundInvestmentKind `gorm:"column:kind;not null;type:text"`
	// CurrencyAmount is the currency moved by the event
	CurrencyAmount domain.Amount `gorm:"column:currency_amount;not null;type:numeric(78,0)"`
	// TokenAmount is the token units minted or returned by the event
	TokenAmount domain.Amount `gorm:"column:token_amount;not null;type:numeric(78,0)"`
	// BlockHeight is the height of the block containing the event
	BlockHeight uint64 `gorm:"column:block_height;not null"`
	// Raw is the decoded event payload
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// SlotTime is the chain-clock time of the event
	SlotTime time.Time `gorm:"column:slot_time;not null;type:timestamp"`
	// CreatedAt is the wall-clock time the row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the FundInvestment model
func (FundInvestment) TableName() string {
	return "fund_investments"
}
