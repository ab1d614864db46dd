package store

import (
	"context"

	"github.com/rwalabs/rwa-indexer/internal/store/schema"
)

// Store defines the interface for database operations. Block processing
// runs against a transactional Store obtained from Transaction; every
// mutation inside a block goes through that handle so nothing touches
// storage outside an active transaction.
type Store interface {
	// Transaction runs fn against a transactional Store and commits if
	// fn returns nil. Nested calls open savepoints.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	// GetLastProcessedBlockHeight returns the highest committed block
	// height and whether any block has been processed yet.
	GetLastProcessedBlockHeight(ctx context.Context) (uint64, bool, error)
	// InsertLastProcessedBlock inserts the resume marker, guarded by
	// height monotonicity. It reports whether a row was inserted; false
	// means the block was already processed.
	InsertLastProcessedBlock(ctx context.Context, block *schema.LastProcessedBlock) (bool, error)

	// GetContract retrieves a tracked contract by canonical address,
	// returning (nil, nil) when the contract is not tracked.
	GetContract(ctx context.Context, address string) (*schema.Contract, error)
	// CreateContract inserts a new contract row. A duplicate address is
	// an invariant violation and surfaces as an error.
	CreateContract(ctx context.Context, contract *schema.Contract) error
	// UpdateContractModuleReference records a module upgrade.
	UpdateContractModuleReference(ctx context.Context, address string, moduleRef string) error

	// CreateProcessedTransaction appends one audit row per transaction
	// that produced at least one processed call.
	CreateProcessedTransaction(ctx context.Context, txn *schema.ProcessedTransaction) error
	// CreateProcessedContractCall appends one call audit row and fills
	// in its generated ID.
	CreateProcessedContractCall(ctx context.Context, call *schema.ProcessedContractCall) error
	// MarkContractCallProcessed flips is_processed after the call's
	// events are fully applied.
	MarkContractCallProcessed(ctx context.Context, id uint64) error

	// GetToken retrieves a token row, returning (nil, nil) when absent.
	GetToken(ctx context.Context, contractAddress, tokenID string) (*schema.Token, error)
	// CreateToken inserts a new token row.
	CreateToken(ctx context.Context, token *schema.Token) error
	// SaveToken persists updated token state.
	SaveToken(ctx context.Context, token *schema.Token) error
	// DeleteToken removes a token row, reporting whether it existed.
	DeleteToken(ctx context.Context, contractAddress, tokenID string) (bool, error)

	// GetTokenHolder retrieves a holder row, returning (nil, nil) when absent.
	GetTokenHolder(ctx context.Context, contractAddress, tokenID, holderAddress string) (*schema.TokenHolder, error)
	// UpsertTokenHolder creates the holder row or updates its balances.
	UpsertTokenHolder(ctx context.Context, holder *schema.TokenHolder) error
	// RekeyTokenHolders moves every holder row for lostAddress on the
	// contract to newAddress, returning the number of rows moved.
	RekeyTokenHolders(ctx context.Context, contractAddress, lostAddress, newAddress string) (int64, error)
	// CreateBalanceUpdate appends one balance ledger row.
	CreateBalanceUpdate(ctx context.Context, update *schema.TokenHolderBalanceUpdate) error

	// AddOperator inserts an operator approval; duplicates are ignored.
	AddOperator(ctx context.Context, operator *schema.Operator) error
	// RemoveOperator deletes an operator approval.
	RemoveOperator(ctx context.Context, contractAddress, owner, operatorAddress string) error
	// UpsertAgent creates or replaces an agent row including its roles.
	UpsertAgent(ctx context.Context, agent *schema.Agent) error
	// RemoveAgent deletes an agent row.
	RemoveAgent(ctx context.Context, contractAddress, agentAddress string) error
	// UpsertComplianceLink sets the compliance contract for a token
	// contract, last write wins.
	UpsertComplianceLink(ctx context.Context, link *schema.ComplianceLink) error
	// UpsertIdentityRegistryLink sets the identity registry for a token
	// contract, last write wins.
	UpsertIdentityRegistryLink(ctx context.Context, link *schema.IdentityRegistryLink) error
	// CreateRecoveryRecord appends one recovery audit row.
	CreateRecoveryRecord(ctx context.Context, record *schema.RecoveryRecord) error

	// AddIdentity registers an identity; duplicates are ignored.
	AddIdentity(ctx context.Context, identity *schema.Identity) error
	// RemoveIdentity deletes a registered identity.
	RemoveIdentity(ctx context.Context, contractAddress, holderAddress string) error

	// GetFund retrieves a fund row, returning (nil, nil) when absent.
	GetFund(ctx context.Context, contractAddress, tokenID string) (*schema.Fund, error)
	// UpsertFund creates or updates a fund row.
	UpsertFund(ctx context.Context, fund *schema.Fund) error
	// CreateFundInvestment appends one investment ledger row.
	CreateFundInvestment(ctx context.Context, investment *schema.FundInvestment) error

	// GetMarketListing retrieves a listing, returning (nil, nil) when absent.
	GetMarketListing(ctx context.Context, contractAddress, tokenContract, tokenID, seller string) (*schema.MarketListing, error)
	// UpsertMarketListing creates or updates a listing.
	UpsertMarketListing(ctx context.Context, listing *schema.MarketListing) error
	// DeleteMarketListing removes a listing, reporting whether it existed.
	DeleteMarketListing(ctx context.Context, contractAddress, tokenContract, tokenID, seller string) (bool, error)
	// CreateMarketTrade appends one trade ledger row.
	CreateMarketTrade(ctx context.Context, trade *schema.MarketTrade) error

	// UpsertYield creates or updates a yield schedule row.
	UpsertYield(ctx context.Context, yield *schema.Yield) error
	// DeleteYield removes a yield schedule row, reporting whether it existed.
	DeleteYield(ctx context.Context, contractAddress, tokenContract, tokenID string) (bool, error)
	// CreateYieldDistribution appends one distribution ledger row.
	CreateYieldDistribution(ctx context.Context, dist *schema.YieldDistribution) error
}
