package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/rwalabs/rwa-indexer/internal/domain"
	"github.com/rwalabs/rwa-indexer/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var testSlotTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func buildTestContract(address string, kind domain.ContractKind) *schema.Contract {
	return &schema.Contract{
		Address:         address,
		ModuleReference: "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2",
		ContractName:    "security_token",
		Owner:           "3kBx2h5Y2veb4hZgAJWPrr8RyQESKm5TjzF3ti1QQ4VSYLwK1G",
		Kind:            kind,
		CreatedAt:       testSlotTime,
	}
}

func buildTestToken(contract, tokenID string, supply int64) *schema.Token {
	return &schema.Token{
		ContractAddress: contract,
		TokenID:         tokenID,
		Supply:          domain.NewAmount(supply),
		MetadataURL:     "https://metadata.example.com/" + tokenID,
		CreatedAt:       testSlotTime,
		UpdatedAt:       testSlotTime,
	}
}

func buildTestHolder(contract, tokenID, holder string, unfrozen int64) *schema.TokenHolder {
	return &schema.TokenHolder{
		ContractAddress: contract,
		TokenID:         tokenID,
		HolderAddress:   holder,
		FrozenBalance:   domain.NewAmount(0),
		UnfrozenBalance: domain.NewAmount(unfrozen),
		CreatedAt:       testSlotTime,
		UpdatedAt:       testSlotTime,
	}
}

func buildTestFund(contract, tokenID string, invested int64) *schema.Fund {
	return &schema.Fund{
		ContractAddress: contract,
		TokenID:         tokenID,
		TokenContract:   "<7000,0>",
		Rate:            domain.NewAmount(1000),
		TotalInvested:   domain.NewAmount(invested),
		CreatedAt:       testSlotTime,
		UpdatedAt:       testSlotTime,
	}
}

func buildTestListing(contract, tokenContract, tokenID, seller string, amount int64) *schema.MarketListing {
	return &schema.MarketListing{
		ContractAddress: contract,
		TokenContract:   tokenContract,
		TokenID:         tokenID,
		Seller:          seller,
		Amount:          domain.NewAmount(amount),
		Rate:            domain.NewAmount(5),
		CreatedAt:       testSlotTime,
		UpdatedAt:       testSlotTime,
	}
}

// =============================================================================
// Resume Marker
// =============================================================================

func testLastProcessedBlock(t *testing.T, store Store) {
	ctx := context.Background()

	height, found, err := store.GetLastProcessedBlockHeight(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, uint64(0), height)

	inserted, err := store.InsertLastProcessedBlock(ctx, &schema.LastProcessedBlock{
		Height:    100,
		BlockHash: "hash-100",
		SlotTime:  testSlotTime,
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	height, found, err = store.GetLastProcessedBlockHeight(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(100), height)

	// Replaying the same height is a no-op insert
	inserted, err = store.InsertLastProcessedBlock(ctx, &schema.LastProcessedBlock{
		Height:    100,
		BlockHash: "hash-100",
		SlotTime:  testSlotTime,
	})
	require.NoError(t, err)
	assert.False(t, inserted)

	// Lower heights never overwrite the marker
	inserted, err = store.InsertLastProcessedBlock(ctx, &schema.LastProcessedBlock{
		Height:    50,
		BlockHash: "hash-50",
		SlotTime:  testSlotTime,
	})
	require.NoError(t, err)
	assert.False(t, inserted)

	inserted, err = store.InsertLastProcessedBlock(ctx, &schema.LastProcessedBlock{
		Height:    101,
		BlockHash: "hash-101",
		SlotTime:  testSlotTime.Add(2 * time.Second),
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	height, _, err = store.GetLastProcessedBlockHeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(101), height)
}

// =============================================================================
// Contracts
// =============================================================================

func testContracts(t *testing.T, store Store) {
	ctx := context.Background()

	contract, err := store.GetContract(ctx, "<1000,0>")
	require.NoError(t, err)
	assert.Nil(t, contract)

	require.NoError(t, store.CreateContract(ctx, buildTestContract("<1000,0>", domain.KindSecurityToken)))

	contract, err = store.GetContract(ctx, "<1000,0>")
	require.NoError(t, err)
	require.NotNil(t, contract)
	assert.Equal(t, "security_token", contract.ContractName)
	assert.Equal(t, domain.KindSecurityToken, contract.Kind)

	// Duplicate init must surface a constraint violation
	err = store.CreateContract(ctx, buildTestContract("<1000,0>", domain.KindSecurityToken))
	assert.Error(t, err)
}

func testUpdateContractModuleReference(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateContract(ctx, buildTestContract("<1001,0>", domain.KindMarket)))

	newRef := "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	require.NoError(t, store.UpdateContractModuleReference(ctx, "<1001,0>", newRef))

	contract, err := store.GetContract(ctx, "<1001,0>")
	require.NoError(t, err)
	require.NotNil(t, contract)
	assert.Equal(t, newRef, contract.ModuleReference)

	// Upgrading an unknown contract is an error, not a silent miss
	err = store.UpdateContractModuleReference(ctx, "<9999,0>", newRef)
	assert.Error(t, err)
}

// =============================================================================
// Processed Transactions and Calls
// =============================================================================

func testProcessedCalls(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateProcessedTransaction(ctx, &schema.ProcessedTransaction{
		TransactionHash:  "txhash-1",
		BlockHash:        "blockhash-1",
		BlockHeight:      42,
		TransactionIndex: 0,
	}))

	call := &schema.ProcessedContractCall{
		ContractAddress: "<1000,0>",
		TransactionHash: "txhash-1",
		CallKind:        domain.CallKindUpdate,
		Sender:          "3kBx2h5Y2veb4hZgAJWPrr8RyQESKm5TjzF3ti1QQ4VSYLwK1G",
		Instigator:      "3kBx2h5Y2veb4hZgAJWPrr8RyQESKm5TjzF3ti1QQ4VSYLwK1G",
		Amount:          domain.NewAmount(0),
		Entrypoint:      "mint",
		EventCount:      2,
	}
	require.NoError(t, store.CreateProcessedContractCall(ctx, call))
	require.NotZero(t, call.ID)
	assert.False(t, call.IsProcessed)

	require.NoError(t, store.MarkContractCallProcessed(ctx, call.ID))

	// Marking an unknown call is an error
	err := store.MarkContractCallProcessed(ctx, call.ID+1000)
	assert.Error(t, err)
}

// =============================================================================
// Tokens and Holders
// =============================================================================

func testTokens(t *testing.T, store Store) {
	ctx := context.Background()

	token, err := store.GetToken(ctx, "<1000,0>", "01")
	require.NoError(t, err)
	assert.Nil(t, token)

	require.NoError(t, store.CreateToken(ctx, buildTestToken("<1000,0>", "01", 0)))

	token, err = store.GetToken(ctx, "<1000,0>", "01")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "0", token.Supply.String())
	assert.False(t, token.IsPaused)

	token.Supply = token.Supply.Add(domain.NewAmount(500))
	token.IsPaused = true
	require.NoError(t, store.SaveToken(ctx, token))

	token, err = store.GetToken(ctx, "<1000,0>", "01")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "500", token.Supply.String())
	assert.True(t, token.IsPaused)

	deleted, err := store.DeleteToken(ctx, "<1000,0>", "01")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteToken(ctx, "<1000,0>", "01")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func testTokenHolders(t *testing.T, store Store) {
	ctx := context.Background()

	holder, err := store.GetTokenHolder(ctx, "<1000,0>", "01", "holder-a")
	require.NoError(t, err)
	assert.Nil(t, holder)

	require.NoError(t, store.UpsertTokenHolder(ctx, buildTestHolder("<1000,0>", "01", "holder-a", 100)))

	holder, err = store.GetTokenHolder(ctx, "<1000,0>", "01", "holder-a")
	require.NoError(t, err)
	require.NotNil(t, holder)
	assert.Equal(t, "100", holder.UnfrozenBalance.String())
	assert.Equal(t, "0", holder.FrozenBalance.String())

	// Upsert on the same key replaces the balances
	updated := buildTestHolder("<1000,0>", "01", "holder-a", 70)
	updated.FrozenBalance = domain.NewAmount(30)
	updated.UpdatedAt = testSlotTime.Add(time.Minute)
	require.NoError(t, store.UpsertTokenHolder(ctx, updated))

	holder, err = store.GetTokenHolder(ctx, "<1000,0>", "01", "holder-a")
	require.NoError(t, err)
	require.NotNil(t, holder)
	assert.Equal(t, "70", holder.UnfrozenBalance.String())
	assert.Equal(t, "30", holder.FrozenBalance.String())
}

func testRekeyTokenHolders(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.UpsertTokenHolder(ctx, buildTestHolder("<1000,0>", "01", "lost-account", 100)))
	require.NoError(t, store.UpsertTokenHolder(ctx, buildTestHolder("<1000,0>", "02", "lost-account", 40)))
	require.NoError(t, store.UpsertTokenHolder(ctx, buildTestHolder("<2000,0>", "01", "lost-account", 7)))

	// Only the named contract's rows move
	moved, err := store.RekeyTokenHolders(ctx, "<1000,0>", "lost-account", "new-account")
	require.NoError(t, err)
	assert.Equal(t, int64(2), moved)

	holder, err := store.GetTokenHolder(ctx, "<1000,0>", "01", "new-account")
	require.NoError(t, err)
	require.NotNil(t, holder)
	assert.Equal(t, "100", holder.UnfrozenBalance.String())

	holder, err = store.GetTokenHolder(ctx, "<1000,0>", "01", "lost-account")
	require.NoError(t, err)
	assert.Nil(t, holder)

	holder, err = store.GetTokenHolder(ctx, "<2000,0>", "01", "lost-account")
	require.NoError(t, err)
	require.NotNil(t, holder)

	moved, err = store.RekeyTokenHolders(ctx, "<1000,0>", "nobody", "new-account")
	require.NoError(t, err)
	assert.Equal(t, int64(0), moved)
}

func testBalanceUpdates(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateBalanceUpdate(ctx, &schema.TokenHolderBalanceUpdate{
		ContractAddress:  "<1000,0>",
		TokenID:          "01",
		HolderAddress:    "holder-a",
		Kind:             schema.BalanceUpdateKindMint,
		Delta:            domain.NewAmount(100),
		FrozenBalance:    domain.NewAmount(0),
		UnfrozenBalance:  domain.NewAmount(100),
		Sender:           "minter",
		Instigator:       "minter",
		BlockHeight:      42,
		TransactionIndex: 1,
		Raw:              datatypes.JSON([]byte(`{"kind":"mint"}`)),
		SlotTime:         testSlotTime,
	}))
}

// =============================================================================
// Operators, Agents, Identities
// =============================================================================

func testOperators(t *testing.T, store Store) {
	ctx := context.Background()

	op := &schema.Operator{
		ContractAddress: "<1000,0>",
		Owner:           "holder-a",
		OperatorAddress: "operator-1",
		CreatedAt:       testSlotTime,
	}
	require.NoError(t, store.AddOperator(ctx, op))

	// Re-adding the same approval is idempotent
	require.NoError(t, store.AddOperator(ctx, &schema.Operator{
		ContractAddress: "<1000,0>",
		Owner:           "holder-a",
		OperatorAddress: "operator-1",
		CreatedAt:       testSlotTime.Add(time.Hour),
	}))

	require.NoError(t, store.RemoveOperator(ctx, "<1000,0>", "holder-a", "operator-1"))
	// Removing an absent approval is a no-op
	require.NoError(t, store.RemoveOperator(ctx, "<1000,0>", "holder-a", "operator-1"))
}

func testAgents(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.UpsertAgent(ctx, &schema.Agent{
		ContractAddress: "<1000,0>",
		AgentAddress:    "agent-1",
		Roles:           datatypes.JSON([]byte(`["mint","burn"]`)),
		CreatedAt:       testSlotTime,
		UpdatedAt:       testSlotTime,
	}))

	// Re-adding replaces the role set wholesale
	require.NoError(t, store.UpsertAgent(ctx, &schema.Agent{
		ContractAddress: "<1000,0>",
		AgentAddress:    "agent-1",
		Roles:           datatypes.JSON([]byte(`["pause"]`)),
		CreatedAt:       testSlotTime,
		UpdatedAt:       testSlotTime.Add(time.Minute),
	}))

	require.NoError(t, store.RemoveAgent(ctx, "<1000,0>", "agent-1"))
	require.NoError(t, store.RemoveAgent(ctx, "<1000,0>", "agent-1"))
}

func testIdentities(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.AddIdentity(ctx, &schema.Identity{
		ContractAddress: "<3000,0>",
		HolderAddress:   "holder-a",
		CreatedAt:       testSlotTime,
	}))
	// Duplicate registration is silently absorbed
	require.NoError(t, store.AddIdentity(ctx, &schema.Identity{
		ContractAddress: "<3000,0>",
		HolderAddress:   "holder-a",
		CreatedAt:       testSlotTime,
	}))

	require.NoError(t, store.RemoveIdentity(ctx, "<3000,0>", "holder-a"))
	require.NoError(t, store.RemoveIdentity(ctx, "<3000,0>", "holder-a"))
}

func testComplianceLinks(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.UpsertComplianceLink(ctx, &schema.ComplianceLink{
		ContractAddress:   "<1000,0>",
		ComplianceAddress: "<4000,0>",
		UpdatedAt:         testSlotTime,
	}))
	// Last write wins
	require.NoError(t, store.UpsertComplianceLink(ctx, &schema.ComplianceLink{
		ContractAddress:   "<1000,0>",
		ComplianceAddress: "<4001,0>",
		UpdatedAt:         testSlotTime.Add(time.Minute),
	}))

	require.NoError(t, store.UpsertIdentityRegistryLink(ctx, &schema.IdentityRegistryLink{
		ContractAddress: "<1000,0>",
		RegistryAddress: "<3000,0>",
		UpdatedAt:       testSlotTime,
	}))
	require.NoError(t, store.UpsertIdentityRegistryLink(ctx, &schema.IdentityRegistryLink{
		ContractAddress: "<1000,0>",
		RegistryAddress: "<3001,0>",
		UpdatedAt:       testSlotTime.Add(time.Minute),
	}))
}

func testRecoveryRecords(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateRecoveryRecord(ctx, &schema.RecoveryRecord{
		ContractAddress: "<1000,0>",
		LostAddress:     "lost-account",
		NewAddress:      "new-account",
		HoldersMoved:    2,
		CreatedAt:       testSlotTime,
	}))
}

// =============================================================================
// Funds
// =============================================================================

func testFunds(t *testing.T, store Store) {
	ctx := context.Background()

	fund, err := store.GetFund(ctx, "<5000,0>", "01")
	require.NoError(t, err)
	assert.Nil(t, fund)

	require.NoError(t, store.UpsertFund(ctx, buildTestFund("<5000,0>", "01", 0)))

	fund, err = store.GetFund(ctx, "<5000,0>", "01")
	require.NoError(t, err)
	require.NotNil(t, fund)
	assert.Equal(t, "0", fund.TotalInvested.String())
	assert.False(t, fund.IsRemoved)

	fund.TotalInvested = fund.TotalInvested.Add(domain.NewAmount(2500))
	fund.IsRemoved = true
	require.NoError(t, store.UpsertFund(ctx, fund))

	fund, err = store.GetFund(ctx, "<5000,0>", "01")
	require.NoError(t, err)
	require.NotNil(t, fund)
	assert.Equal(t, "2500", fund.TotalInvested.String())
	assert.True(t, fund.IsRemoved)

	require.NoError(t, store.CreateFundInvestment(ctx, &schema.FundInvestment{
		ContractAddress: "<5000,0>",
		TokenID:         "01",
		Investor:        "investor-a",
		Kind:            schema.FundInvestmentKindInvested,
		CurrencyAmount:  domain.NewAmount(2500),
		TokenAmount:     domain.NewAmount(2500000),
		BlockHeight:     42,
		SlotTime:        testSlotTime,
	}))
}

// =============================================================================
// Market
// =============================================================================

func testMarketListings(t *testing.T, store Store) {
	ctx := context.Background()

	listing, err := store.GetMarketListing(ctx, "<6000,0>", "<1000,0>", "01", "seller-a")
	require.NoError(t, err)
	assert.Nil(t, listing)

	require.NoError(t, store.UpsertMarketListing(ctx, buildTestListing("<6000,0>", "<1000,0>", "01", "seller-a", 100)))

	listing, err = store.GetMarketListing(ctx, "<6000,0>", "<1000,0>", "01", "seller-a")
	require.NoError(t, err)
	require.NotNil(t, listing)
	assert.Equal(t, "100", listing.Amount.String())

	// Partial exchange reduces the listed amount in place
	listing.Amount = listing.Amount.Sub(domain.NewAmount(40))
	require.NoError(t, store.UpsertMarketListing(ctx, listing))

	listing, err = store.GetMarketListing(ctx, "<6000,0>", "<1000,0>", "01", "seller-a")
	require.NoError(t, err)
	require.NotNil(t, listing)
	assert.Equal(t, "60", listing.Amount.String())

	deleted, err := store.DeleteMarketListing(ctx, "<6000,0>", "<1000,0>", "01", "seller-a")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteMarketListing(ctx, "<6000,0>", "<1000,0>", "01", "seller-a")
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, store.CreateMarketTrade(ctx, &schema.MarketTrade{
		ContractAddress: "<6000,0>",
		TokenContract:   "<1000,0>",
		TokenID:         "01",
		Seller:          "seller-a",
		Buyer:           "buyer-b",
		TokenAmount:     domain.NewAmount(40),
		CurrencyAmount:  domain.NewAmount(200),
		BlockHeight:     42,
		SlotTime:        testSlotTime,
	}))
}

// =============================================================================
// Yields
// =============================================================================

func testYields(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.UpsertYield(ctx, &schema.Yield{
		ContractAddress: "<7000,0>",
		TokenContract:   "<1000,0>",
		TokenID:         "01",
		Rate:            domain.NewAmount(3),
		CreatedAt:       testSlotTime,
		UpdatedAt:       testSlotTime,
	}))

	// Re-adding updates the rate in place
	require.NoError(t, store.UpsertYield(ctx, &schema.Yield{
		ContractAddress: "<7000,0>",
		TokenContract:   "<1000,0>",
		TokenID:         "01",
		Rate:            domain.NewAmount(5),
		CreatedAt:       testSlotTime,
		UpdatedAt:       testSlotTime.Add(time.Minute),
	}))

	deleted, err := store.DeleteYield(ctx, "<7000,0>", "<1000,0>", "01")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteYield(ctx, "<7000,0>", "<1000,0>", "01")
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, store.CreateYieldDistribution(ctx, &schema.YieldDistribution{
		ContractAddress: "<7000,0>",
		TokenContract:   "<1000,0>",
		TokenID:         "01",
		Recipient:       "holder-a",
		Amount:          domain.NewAmount(15),
		BlockHeight:     42,
		SlotTime:        testSlotTime,
	}))
}

// =============================================================================
// Transactions
// =============================================================================

func testTransactionRollback(t *testing.T, store Store) {
	ctx := context.Background()

	sentinel := errors.New("abort")
	err := store.Transaction(ctx, func(tx Store) error {
		if err := tx.CreateContract(ctx, buildTestContract("<8000,0>", domain.KindYielder)); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	contract, err := store.GetContract(ctx, "<8000,0>")
	require.NoError(t, err)
	assert.Nil(t, contract)
}

func testTransactionCommit(t *testing.T, store Store) {
	ctx := context.Background()

	err := store.Transaction(ctx, func(tx Store) error {
		if err := tx.CreateContract(ctx, buildTestContract("<8001,0>", domain.KindYielder)); err != nil {
			return err
		}
		// Nested transactions run as savepoints inside the outer one
		return tx.Transaction(ctx, func(nested Store) error {
			return nested.CreateToken(ctx, buildTestToken("<8001,0>", "01", 0))
		})
	})
	require.NoError(t, err)

	contract, err := store.GetContract(ctx, "<8001,0>")
	require.NoError(t, err)
	assert.NotNil(t, contract)

	token, err := store.GetToken(ctx, "<8001,0>", "01")
	require.NoError(t, err)
	assert.NotNil(t, token)
}

// =============================================================================
// Test Runner - runs all tests against a given store implementation
// =============================================================================

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"LastProcessedBlock", testLastProcessedBlock},
		{"Contracts", testContracts},
		{"UpdateContractModuleReference", testUpdateContractModuleReference},
		{"ProcessedCalls", testProcessedCalls},
		{"Tokens", testTokens},
		{"TokenHolders", testTokenHolders},
		{"RekeyTokenHolders", testRekeyTokenHolders},
		{"BalanceUpdates", testBalanceUpdates},
		{"Operators", testOperators},
		{"Agents", testAgents},
		{"Identities", testIdentities},
		{"ComplianceLinks", testComplianceLinks},
		{"RecoveryRecords", testRecoveryRecords},
		{"Funds", testFunds},
		{"MarketListings", testMarketListings},
		{"Yields", testYields},
		{"TransactionRollback", testTransactionRollback},
		{"TransactionCommit", testTransactionCommit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
