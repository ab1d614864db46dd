package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Operator represents the operators table - per-contract operator
// approvals granted by holders
type Operator struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the owning contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_operators_contract_owner_op,priority:1"`
	// Owner is the account granting the approval
	Owner string `gorm:"column:owner;not null;type:text;uniqueIndex:idx_operators_contract_owner_op,priority:2"`
	// OperatorAddress is the approved operator (account or contract)
	OperatorAddress string `gorm:"column:operator_address;not null;type:text;uniqueIndex:idx_operators_contract_owner_op,priority:3"`
	// CreatedAt is the slot time of the approving event
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamp"`
}

// TableName specifies the table name for the Operator model
func (Operator) TableName() string {
	return "operators"
}

// Agent represents the agents table - privileged accounts per contract
// with their role set
type Agent struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the owning contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_agents_contract_addr,priority:1"`
	// AgentAddress is the privileged account
	AgentAddress string `gorm:"column:agent_address;not null;type:text;uniqueIndex:idx_agents_contract_addr,priority:2"`
	// Roles is the JSON-encoded role list; replaced wholesale on re-add
	Roles datatypes.JSON `gorm:"column:roles;type:jsonb"`
	// CreatedAt is the slot time of the adding event
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamp"`
	// UpdatedAt is the slot time of the last role change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;type:timestamp"`
}

// TableName specifies the table name for the Agent model
func (Agent) TableName() string {
	return "agents"
}

// ComplianceLink represents the compliance_links table - the compliance
// contract currently in effect for a token contract, at most one per
// contract, last write wins
type ComplianceLink struct {
	// ContractAddress is the token contract's canonical address
	ContractAddress string `gorm:"column:contract_address;primaryKey;type:text"`
	// ComplianceAddress is the linked compliance contract
	ComplianceAddress string `gorm:"column:compliance_address;not null;type:text"`
	// UpdatedAt is the slot time of the last link event
	UpdatedAt time.Time `gorm:"column:updated_at;not null;type:timestamp"`
}

// TableName specifies the table name for the ComplianceLink model
func (ComplianceLink) TableName() string {
	return "compliance_links"
}

// IdentityRegistryLink represents the identity_registry_links table -
// the identity registry currently in effect for a token contract
type IdentityRegistryLink struct {
	// ContractAddress is the token contract's canonical address
	ContractAddress string `gorm:"column:contract_address;primaryKey;type:text"`
	// RegistryAddress is the linked identity registry contract
	RegistryAddress string `gorm:"column:registry_address;not null;type:text"`
	// UpdatedAt is the slot time of the last link event
	UpdatedAt time.Time `gorm:"column:updated_at;not null;type:timestamp"`
}

// TableName specifies the table name for the IdentityRegistryLink model
func (IdentityRegistryLink) TableName() string {
	return "identity_registry_links"
}

// RecoveryRecord represents the recovery_records table - append-only
// record of lost-account recoveries
type RecoveryRecord struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the owning contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;index:idx_recovery_contract"`
	// LostAddress is the account whose balances were recovered
	LostAddress string `gorm:"column:lost_address;not null;type:text"`
	// NewAddress is the account the balances were re-keyed to
	NewAddress string `gorm:"column:new_address;not null;type:text"`
	// HoldersMoved is the number of holder rows re-keyed
	HoldersMoved int64 `gorm:"column:holders_moved;not null"`
	// CreatedAt is the slot time of the recovery event
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamp"`
}

// TableName specifies the table name for the RecoveryRecord model
func (RecoveryRecord) TableName() string {
	return "recovery_records"
}

// Identity represents the identities table - registered identities in
// an identity-registry contract
type Identity struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the registry contract's canonical address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_identities_contract_addr,priority:1"`
	// HolderAddress is the identified account or contract
	HolderAddress string `gorm:"column:holder_address;not null;type:text;uniqueIndex:idx_identities_contract_addr,priority:2"`
	// CreatedAt is the slot time of the registering event
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamp"`
}

// TableName specifies the table name for the Identity model
func (Identity) TableName() string {
	return "identities"
}
