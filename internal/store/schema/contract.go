package schema

import (
	"time"

	"github.com/rwalabs/rwa-indexer/internal/domain"
)

// Contract represents the contracts table - one row per tracked contract
// instance, created exactly once on a successful init call from an
// allow-listed deployer and never deleted
type Contract struct {
	// Address is the canonical "<index,subindex>" contract address
	Address string `gorm:"column:address;primaryKey;type:text"`
	// ModuleReference is the module hash currently backing the instance; mutated on upgrade calls only
	ModuleReference string `gorm:"column:module_reference;not null;type:text"`
	// ContractName is the declared contract name within the module
	ContractName string `gorm:"column:contract_name;not null;type:text"`
	// Owner is the account that sent the init transaction
	Owner string `gorm:"column:owner;not null;type:text"`
	// Kind selects the event state machine applied to this contract's events
	Kind domain.ContractKind `gorm:"column:kind;not null;type:text"`
	// CreatedAt is the slot time of the block containing the init call
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamp"`
}

// TableName specifies the table name for the Contract model
func (Contract) TableName() string {
	return "contracts"
}
