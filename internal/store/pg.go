package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rwalabs/rwa-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a
// GORM database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// Transaction runs fn against a transactional store. gorm opens a
// savepoint when the receiver is already transactional, which gives the
// nested-transaction semantics block processing relies on.
func (s *pgStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// GetLastProcessedBlockHeight returns the highest committed block height
func (s *pgStore) GetLastProcessedBlockHeight(ctx context.Context) (uint64, bool, error) {
	var block schema.LastProcessedBlock
	err := s.db.WithContext(ctx).Order("height DESC").First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get last processed block: %w", err)
	}
	return block.Height, true, nil
}

// InsertLastProcessedBlock inserts the resume marker only when the new
// height is strictly greater than every committed height. Zero rows
// affected means the block was already processed.
func (s *pgStore) InsertLastProcessedBlock(ctx context.Context, block *schema.LastProcessedBlock) (bool, error) {
	res := s.db.WithContext(ctx).Exec(
		`INSERT INTO last_processed_blocks (height, block_hash, slot_time, created_at)
		 SELECT ?, ?, ?, now()
		 WHERE NOT EXISTS (SELECT 1 FROM last_processed_blocks WHERE height >= ?)`,
		block.Height, block.BlockHash, block.SlotTime, block.Height,
	)
	if res.Error != nil {
		return false, fmt.Errorf("failed to insert last processed block: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GetContract retrieves a tracked contract by canonical address
func (s *pgStore) GetContract(ctx context.Context, address string) (*schema.Contract, error) {
	var contract schema.Contract
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return &contract, nil
}

// CreateContract inserts a new contract row. No conflict clause on
// purpose: a duplicate address must fail loudly.
func (s *pgStore) CreateContract(ctx context.Context, contract *schema.Contract) error {
	if err := s.db.WithContext(ctx).Create(contract).Error; err != nil {
		return fmt.Errorf("failed to create contract %s: %w", contract.Address, err)
	}
	return nil
}

// UpdateContractModuleReference records a module upgrade
func (s *pgStore) UpdateContractModuleReference(ctx context.Context, address string, moduleRef string) error {
	res := s.db.WithContext(ctx).
		Model(&schema.Contract{}).
		Where("address = ?", address).
		Update("module_reference", moduleRef)
	if res.Error != nil {
		return fmt.Errorf("failed to update contract module reference: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("failed to update contract module reference: contract %s not found", address)
	}
	return nil
}

// CreateProcessedTransaction appends one transaction audit row
func (s *pgStore) CreateProcessedTransaction(ctx context.Context, txn *schema.ProcessedTransaction) error {
	if err := s.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("failed to create processed transaction: %w", err)
	}
	return nil
}

// CreateProcessedContractCall appends one call audit row
func (s *pgStore) CreateProcessedContractCall(ctx context.Context, call *schema.ProcessedContractCall) error {
	if err := s.db.WithContext(ctx).Create(call).Error; err != nil {
		return fmt.Errorf("failed to create processed contract call: %w", err)
	}
	return nil
}

// MarkContractCallProcessed flips is_processed on a call audit row
func (s *pgStore) MarkContractCallProcessed(ctx context.Context, id uint64) error {
	res := s.db.WithContext(ctx).
		Model(&schema.ProcessedContractCall{}).
		Where("id = ?", id).
		Update("is_processed", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark contract call processed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("failed to mark contract call processed: call %d not found", id)
	}
	return nil
}

// GetToken retrieves a token row
func (s *pgStore) GetToken(ctx context.Context, contractAddress, tokenID string) (*schema.Token, error) {
	var token schema.Token
	err := s.db.WithContext(ctx).
		Where("contract_address = ? AND token_id = ?", contractAddress, tokenID).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return &token, nil
}

// CreateToken inserts a new token row
func (s *pgStore) CreateToken(ctx context.Context, token *schema.Token) error {
	if err := s.db.WithContext(ctx).Create(token).Error; err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}
	return nil
}

// SaveToken persists updated token state
func (s *pgStore) SaveToken(ctx context.Context, token *schema.Token) error {
	if err := s.db.WithContext(ctx).Save(token).Error; err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// DeleteToken removes a token row
func (s *pgStore) DeleteToken(ctx context.Context, contractAddress, tokenID string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("contract_address = ? AND token_id = ?", contractAddress, tokenID).
		Delete(&schema.Token{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete token: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GetTokenHolder retrieves a holder row
func (s *pgStore) GetTokenHolder(ctx context.Context, contractAddress, tokenID, holderAddress string) (*schema.TokenHolder, error) {
	var holder schema.TokenHolder
	err := s.db.WithContext(ctx).
		Where("contract_address = ? AND token_id = ? AND holder_address = ?", contractAddress, tokenID, holderAddress).
		First(&holder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token holder: %w", err)
	}
	return &holder, nil
}

// UpsertTokenHolder creates the holder row or updates its balances
func (s *pgStore) UpsertTokenHolder(ctx context.Context, holder *schema.TokenHolder) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "contract_address"}, {Name: "token_id"}, {Name: "holder_address"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"frozen_balance", "unfrozen_balance", "updated_at",
		}),
	}).Omit("id").Create(holder).Error
	if err != nil {
		return fmt.Errorf("failed to upsert token holder: %w", err)
	}
	return nil
}

// RekeyTokenHolders moves every holder row for lostAddress to newAddress
func (s *pgStore) RekeyTokenHolders(ctx context.Context, contractAddress, lostAddress, newAddress string) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&schema.TokenHolder{}).
		Where("contract_address = ? AND holder_address = ?", contractAddress, lostAddress).
		Update("holder_address", newAddress)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to rekey token holders: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// CreateBalanceUpdate appends one balance ledger row
func (s *pgStore) CreateBalanceUpdate(ctx context.Context, update *schema.TokenHolderBalanceUpdate) error {
	if err := s.db.WithContext(ctx).Create(update).Error; err != nil {
		return fmt.Errorf("failed to create balance update: %w", err)
	}
	return nil
}

// AddOperator inserts an operator approval, ignoring duplicates so
// replayed approvals stay idempotent
func (s *pgStore) AddOperator(ctx context.Context, operator *schema.Operator) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "contract_address"}, {Name: "owner"}, {Name: "operator_address"}},
		DoNothing: true,
	}).Create(operator).Error
	if err != nil {
		return fmt.Errorf("failed to add operator: %w", err)
	}
	return nil
}

// RemoveOperator deletes an operator approval
func (s *pgStore) RemoveOperator(ctx context.Context, contractAddress, owner, operatorAddress string) error {
	err := s.db.WithContext(ctx).
		Where("contract_address = ? AND owner = ? AND operator_address = ?", contractAddress, owner, operatorAddress).
		Delete(&schema.Operator{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove operator: %w", err)
	}
	return nil
}

// UpsertAgent creates or replaces an agent row including its roles
func (s *pgStore) UpsertAgent(ctx context.Context, agent *schema.Agent) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "contract_address"}, {Name: "agent_address"}},
		DoUpdates: clause.AssignmentColumns([]string{"roles", "updated_at"}),
	}).Omit("id").Create(agent).Error
	if err != nil {
		return fmt.Errorf("failed to upsert agent: %w", err)
	}
	return nil
}

// RemoveAgent deletes an agent row
func (s *pgStore) RemoveAgent(ctx context.Context, contractAddress, agentAddress string) error {
	err := s.db.WithContext(ctx).
		Where("contract_address = ? AND agent_address = ?", contractAddress, agentAddress).
		Delete(&schema.Agent{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove agent: %w", err)
	}
	return nil
}

// UpsertComplianceLink sets the compliance contract for a token contract
func (s *pgStore) UpsertComplianceLink(ctx context.Context, link *schema.ComplianceLink) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "contract_address"}},
		DoUpdates: clause.AssignmentColumns([]string{"compliance_address", "updated_at"}),
	}).Create(link).Error
	if err != nil {
		return fmt.Errorf("failed to upsert compliance link: %w", err)
	}
	return nil
}

// UpsertIdentityRegistryLink sets the identity registry for a token contract
func (s *pgStore) UpsertIdentityRegistryLink(ctx context.Context, link *schema.IdentityRegistryLink) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "contract_address"}},
		DoUpdates: clause.AssignmentColumns([]string{"registry_address", "updated_at"}),
	}).Create(link).Error
	if err != nil {
		return fmt.Errorf("failed to upsert identity registry link: %w", err)
	}
	return nil
}

// CreateRecoveryRecord appends one recovery audit row
func (s *pgStore) CreateRecoveryRecord(ctx context.Context, record *schema.RecoveryRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create recovery record: %w", err)
	}
	return nil
}

// AddIdentity registers an identity, ignoring duplicates
func (s *pgStore) AddIdentity(ctx context.Context, identity *schema.Identity) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "contract_address"}, {Name: "holder_address"}},
		DoNothing: true,
	}).Create(identity).Error
	if err != nil {
		return fmt.Errorf("failed to add identity: %w", err)
	}
	return nil
}

// RemoveIdentity deletes a registered identity
func (s *pgStore) RemoveIdentity(ctx context.Context, contractAddress, holderAddress string) error {
	err := s.db.WithContext(ctx).
		Where("contract_address = ? AND holder_address = ?", contractAddress, holderAddress).
		Delete(&schema.Identity{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove identity: %w", err)
	}
	return nil
}

// GetFund retrieves a fund row
func (s *pgStore) GetFund(ctx context.Context, contractAddress, tokenID string) (*schema.Fund, error) {
	var fund schema.Fund
	err := s.db.WithContext(ctx).
		Where("contract_address = ? AND token_id = ?", contractAddress, tokenID).
		First(&fund).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fund: %w", err)
	}
	return &fund, nil
}

// UpsertFund creates or updates a fund row
func (s *pgStore) UpsertFund(ctx context.Context, fund *schema.Fund) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "contract_address"}, {Name: "token_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"token_contract", "rate", "total_invested", "is_removed", "updated_at",
		}),
	}).Omit("id").Create(fund).Error
	if err != nil {
		return fmt.Errorf("failed to upsert fund: %w", err)
	}
	return nil
}

// CreateFundInvestment appends one investment ledger row
func (s *pgStore) CreateFundInvestment(ctx context.Context, investment *schema.FundInvestment) error {
	if err := s.db.WithContext(ctx).Create(investment).Error; err != nil {
		return fmt.Errorf("failed to create fund investment: %w", err)
	}
	return nil
}

// GetMarketListing retrieves a listing
func (s *pgStore) GetMarketListing(ctx context.Context, contractAddress, tokenContract, tokenID, seller string) (*schema.MarketListing, error) {
	var listing schema.MarketListing
	err := s.db.WithContext(ctx).
		Where("contract_address = ? AND token_contract = ? AND token_id = ? AND seller = ?",
			contractAddress, tokenContract, tokenID, seller).
		First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get market listing: %w", err)
	}
	return &listing, nil
}

// UpsertMarketListing creates or updates a listing
func (s *pgStore) UpsertMarketListing(ctx context.Context, listing *schema.MarketListing) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "contract_address"}, {Name: "token_contract"}, {Name: "token_id"}, {Name: "seller"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "rate", "updated_at"}),
	}).Omit("id").Create(listing).Error
	if err != nil {
		return fmt.Errorf("failed to upsert market listing: %w", err)
	}
	return nil
}

// DeleteMarketListing removes a listing
func (s *pgStore) DeleteMarketListing(ctx context.Context, contractAddress, tokenContract, tokenID, seller string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("contract_address = ? AND token_contract = ? AND token_id = ? AND seller = ?",
			contractAddress, tokenContract, tokenID, seller).
		Delete(&schema.MarketListing{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete market listing: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// CreateMarketTrade appends one trade ledger row
func (s *pgStore) CreateMarketTrade(ctx context.Context, trade *schema.MarketTrade) error {
	if err := s.db.WithContext(ctx).Create(trade).Error; err != nil {
		return fmt.Errorf("failed to create market trade: %w", err)
	}
	return nil
}

// UpsertYield creates or updates a yield schedule row
func (s *pgStore) UpsertYield(ctx context.Context, yield *schema.Yield) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "contract_address"}, {Name: "token_contract"}, {Name: "token_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Omit("id").Create(yield).Error
	if err != nil {
		return fmt.Errorf("failed to upsert yield: %w", err)
	}
	return nil
}

// DeleteYield removes a yield schedule row
func (s *pgStore) DeleteYield(ctx context.Context, contractAddress, tokenContract, tokenID string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("contract_address = ? AND token_contract = ? AND token_id = ?", contractAddress, tokenContract, tokenID).
		Delete(&schema.Yield{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete yield: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// CreateYieldDistribution appends one distribution ledger row
func (s *pgStore) CreateYieldDistribution(ctx context.Context, dist *schema.YieldDistribution) error {
	if err := s.db.WithContext(ctx).Create(dist).Error; err != nil {
		return fmt.Errorf("failed to create yield distribution: %w", err)
	}
	return nil
}
