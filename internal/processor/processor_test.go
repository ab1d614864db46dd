package processor_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwalabs/rwa-indexer/internal/domain"
	"github.com/rwalabs/rwa-indexer/internal/logger"
	"github.com/rwalabs/rwa-indexer/internal/mocks"
	"github.com/rwalabs/rwa-indexer/internal/processor"
	"github.com/rwalabs/rwa-indexer/internal/registry"
	"github.com/rwalabs/rwa-indexer/internal/store"
	"github.com/rwalabs/rwa-indexer/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var (
	testSlotTime  = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	testDeployer  = domain.AccountAddress("3kBx2h5Y2veb4hZgAJWPrr8RyQESKm5TjzF3ti1QQ4VSYLwK1G")
	testContract  = domain.ContractAddress{Index: 1000, Subindex: 0}
	testModuleRef = domain.ModuleReference("a1b2c3d4")
)

type processorMocks struct {
	store      *mocks.MockStore
	registry   *mocks.MockProcessorRegistry
	deployment *mocks.MockDeploymentRegistry
}

func newBlockProcessorWithMocks(t *testing.T) (processor.BlockProcessor, *processorMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &processorMocks{
		store:      mocks.NewMockStore(ctrl),
		registry:   mocks.NewMockProcessorRegistry(ctrl),
		deployment: mocks.NewMockDeploymentRegistry(ctrl),
	}

	// Run the transaction closure against the same mock store
	m.store.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(store.Store) error) error {
			return fn(m.store)
		}).
		AnyTimes()

	return processor.NewBlockProcessor(m.store, m.registry, m.deployment), m
}

func blockWith(txns ...domain.ParsedTransaction) *domain.ParsedBlock {
	return &domain.ParsedBlock{
		Hash:         "blockhash-42",
		Height:       42,
		SlotTime:     testSlotTime,
		Transactions: txns,
	}
}

func initTxn(events ...domain.RawEvent) domain.ParsedTransaction {
	return domain.ParsedTransaction{
		Hash:   "tx-1",
		Index:  0,
		Sender: testDeployer,
		Calls: []domain.ContractCall{{
			Kind: domain.CallKindInit,
			Init: &domain.InitCall{
				Address:         testContract,
				ModuleReference: testModuleRef,
				ContractName:    "security_token",
				Amount:          domain.NewAmount(0),
				Events:          events,
			},
		}},
	}
}

func updateTxn(events ...domain.RawEvent) domain.ParsedTransaction {
	return domain.ParsedTransaction{
		Hash:   "tx-2",
		Index:  1,
		Sender: testDeployer,
		Calls: []domain.ContractCall{{
			Kind: domain.CallKindUpdate,
			Update: &domain.UpdateCall{
				Address:    testContract,
				Entrypoint: "mint",
				Sender:     domain.Address(testDeployer),
				Amount:     domain.NewAmount(0),
				Events:     events,
			},
		}},
	}
}

func expectMarkerInserted(m *processorMocks, inserted bool) {
	m.store.EXPECT().
		InsertLastProcessedBlock(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, block *schema.LastProcessedBlock) (bool, error) {
			return inserted, nil
		})
}

func TestProcessBlock_EmptyBlockCommitsMarker(t *testing.T) {
	p, m := newBlockProcessorWithMocks(t)
	expectMarkerInserted(m, true)

	result, err := p.ProcessBlock(context.Background(), blockWith())
	require.NoError(t, err)
	assert.False(t, result.Duplicate)
	assert.Zero(t, result.ProcessedTransactions)
	assert.Zero(t, result.ProcessedCalls)
}

func TestProcessBlock_DuplicateBlockRollsBack(t *testing.T) {
	p, m := newBlockProcessorWithMocks(t)
	expectMarkerInserted(m, false)

	result, err := p.ProcessBlock(context.Background(), blockWith())
	require.NoError(t, err)
	assert.True(t, result.Duplicate)
}

func TestProcessBlock_InitRegistersContract(t *testing.T) {
	p, m := newBlockProcessorWithMocks(t)

	m.deployment.EXPECT().IsTrustedDeployer(testDeployer).Return(true)
	m.registry.EXPECT().KindFor(testModuleRef, domain.ContractName("security_token")).
		Return(domain.KindSecurityToken, true)
	m.store.EXPECT().GetContract(gomock.Any(), "<1000,0>").Return(nil, nil)

	var created *schema.Contract
	m.store.EXPECT().CreateContract(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, c *schema.Contract) error {
			created = c
			return nil
		})

	var callRow *schema.ProcessedContractCall
	m.store.EXPECT().CreateProcessedContractCall(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, c *schema.ProcessedContractCall) error {
			c.ID = 7
			callRow = c
			return nil
		})

	m.store.EXPECT().CreateProcessedTransaction(gomock.Any(), gomock.Any()).Return(nil)
	expectMarkerInserted(m, true)

	result, err := p.ProcessBlock(context.Background(), blockWith(initTxn()))
	require.NoError(t, err)
	assert.Equal(t, 1, result.ProcessedTransactions)
	assert.Equal(t, 1, result.ProcessedCalls)

	require.NotNil(t, created)
	assert.Equal(t, "<1000,0>", created.Address)
	assert.Equal(t, domain.KindSecurityToken, created.Kind)
	assert.Equal(t, string(testDeployer), created.Owner)
	assert.Equal(t, testSlotTime, created.CreatedAt)

	require.NotNil(t, callRow)
	assert.Equal(t, domain.CallKindInit, callRow.CallKind)
	assert.Equal(t, string(testDeployer), callRow.Instigator)
}

func TestProcessBlock_InitWithEventsRunsProcessor(t *testing.T) {
	p, m := newBlockProcessorWithMocks(t)

	m.deployment.EXPECT().IsTrustedDeployer(testDeployer).Return(true)
	m.registry.EXPECT().KindFor(testModuleRef, domain.ContractName("security_token")).
		Return(domain.KindSecurityToken, true)
	m.store.EXPECT().GetContract(gomock.Any(), "<1000,0>").Return(nil, nil)
	m.store.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().CreateProcessedContractCall(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, c *schema.ProcessedContractCall) error {
			c.ID = 7
			return nil
		})

	var seen *registry.CallContext
	m.registry.EXPECT().ProcessorFor(domain.KindSecurityToken).
		Return(registry.ProcessorFn(func(ctx context.Context, tx store.Store, call *registry.CallContext) error {
			seen = call
			return nil
		}), true)
	m.store.EXPECT().MarkContractCallProcessed(gomock.Any(), uint64(7)).Return(nil)

	m.store.EXPECT().CreateProcessedTransaction(gomock.Any(), gomock.Any()).Return(nil)
	expectMarkerInserted(m, true)

	event := domain.RawEvent(`{"kind":"agent_added"}`)
	_, err := p.ProcessBlock(context.Background(), blockWith(initTxn(event)))
	require.NoError(t, err)

	require.NotNil(t, seen)
	assert.Equal(t, uint64(42), seen.BlockHeight)
	assert.Equal(t, testContract, seen.ContractAddress)
	// Init events are instigated by the deployer account itself
	assert.Equal(t, domain.Address(testDeployer), seen.Instigator)
	assert.Len(t, seen.Events, 1)
}

func TestProcessBlock_InitUntrustedDeployerSkipped(t *testing.T) {
	p, m := newBlockProcessorWithMocks(t)

	m.deployment.EXPECT().IsTrustedDeployer(testDeployer).Return(false)
	expectMarkerInserted(m, true)

	result, err := p.ProcessBlock(context.Background(), blockWith(initTxn()))
	require.NoError(t, err)
	assert.Zero(t, result.ProcessedTransactions)
	assert.Zero(t, result.ProcessedCalls)
}

func TestProcessBlock_InitUnknownBindingSkipped(t *testing.T) {
	p, m := newBlockProcessorWithMocks(t)

	m.deployment.EXPECT().IsTrustedDeployer(testDeployer).Return(true)
	m.registry.EXPECT().KindFor(testModuleRef, domain.ContractName("security_token")).
		Return(domain.ContractKind(""), false)
	expectMarkerInserted(m, true)

	result, err := p.ProcessBlock(context.Background(), blockWith(initTxn()))
	require.NoError(t, err)
	assert.Zero(t, result.ProcessedTransactions)
}

func TestProcessBlock_InitOfExistingContractFails(t *testing.T) {
	p, m := newBlockProcessorWithMocks(t)

	m.deployment.EXPECT().IsTrustedDeployer(testDeployer).Return(true)
	m.registry.EXPECT().KindFor(testModuleRef, domain.ContractName("security_token")).
		Return(domain.KindSecurityToken, true)
	m.store.EXPECT().GetContract(gomock.Any(), "<1000,0>").
		Return(&schema.Contract{Address: "<1000,0>"}, nil)

	_, err := p.ProcessBlock(context.Background(), blockWith(initTxn()))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrContractExists)
}

func TestProcessBlock_UpdateOfUntrackedContractSkipped(t *testing.T) {
	p, m := newBlockProcessorWithMocks(t)

	m.store.EXPECT().GetContract(gomock.Any(), "<1000,0>").Return(nil, nil)
	expectMarkerInserted(m, true)

	result, err := p.ProcessBlock(context.Background(), blockWith(updateTxn(domain.RawEvent(`{"kind":"mint"}`))))
	require.NoError(t, err)
	assert.Zero(t, result.ProcessedTransactions)
	assert.Zero(t, result.ProcessedCalls)
}

func TestProcessBlock_UpdateRunsProcessor(t *testing.T) {
	p, m := newBlockProcessorWithMocks(t)

	m.store.EXPECT().GetContract(gomock.Any(), "<1000,0>").
		Return(&schema.Contract{Address: "<1000,0>", Kind: domain.KindSecurityToken}, nil)
	m.store.EXPECT().CreateProcessedContractCall(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, c *schema.ProcessedContractCall) error {
			c.ID = 11
			assert.Equal(t, "mint", c.Entrypoint)
			return nil
		})
	m.registry.EXPECT().ProcessorFor(domain.KindSecurityToken).
		Return(registry.ProcessorFn(func(ctx context.Context, tx store.Store, call *registry.CallContext) error {
			return nil
		}), true)
	m.store.EXPECT().MarkContractCallProcessed(gomock.Any(), uint64(11)).Return(nil)
	m.store.EXPECT().CreateProcessedTransaction(gomock.Any(), gomock.Any()).Return(nil)
	expectMarkerInserted(m, true)

	result, err := p.ProcessBlock(context.Background(), blockWith(updateTxn(domain.RawEvent(`{"kind":"mint"}`))))
	require.NoError(t, err)
	assert.Equal(t, 1, result.ProcessedTransactions)
	assert.Equal(t, 1, result.ProcessedCalls)
}

func TestProcessBlock_ProcessorErrorAbortsBlock(t *testing.T) {
	p, m := newBlockProcessorWithMocks(t)

	processorErr := errors.New("balance underflow")

	m.store.EXPECT().GetContract(gomock.Any(), "<1000,0>").
		Return(&schema.Contract{Address: "<1000,0>", Kind: domain.KindSecurityToken}, nil)
	m.store.EXPECT().CreateProcessedContractCall(gomock.Any(), gomock.Any()).Return(nil)
	m.registry.EXPECT().ProcessorFor(domain.KindSecurityToken).
		Return(registry.ProcessorFn(func(ctx context.Context, tx store.Store, call *registry.CallContext) error {
			return processorErr
		}), true)

	// No marker insert, no processed transaction: the whole block aborts
	_, err := p.ProcessBlock(context.Background(), blockWith(updateTxn(domain.RawEvent(`{"kind":"burn"}`))))
	require.Error(t, err)
	assert.ErrorIs(t, err, processorErr)
}

func TestProcessBlock_MissingProcessorIsSkippedNotFatal(t *testing.T) {
	p, m := newBlockProcessorWithMocks(t)

	m.store.EXPECT().GetContract(gomock.Any(), "<1000,0>").
		Return(&schema.Contract{Address: "<1000,0>", Kind: domain.KindSecurityToken}, nil)
	m.store.EXPECT().CreateProcessedContractCall(gomock.Any(), gomock.Any()).Return(nil)
	m.registry.EXPECT().ProcessorFor(domain.KindSecurityToken).Return(nil, false)
	// MarkContractCallProcessed must not fire; the call row stays unprocessed
	m.store.EXPECT().CreateProcessedTransaction(gomock.Any(), gomock.Any()).Return(nil)
	expectMarkerInserted(m, true)

	result, err := p.ProcessBlock(context.Background(), blockWith(updateTxn(domain.RawEvent(`{"kind":"mint"}`))))
	require.NoError(t, err)
	assert.Equal(t, 1, result.ProcessedCalls)
}

func TestProcessBlock_UpgradedSwapsModuleReference(t *testing.T) {
	p, m := newBlockProcessorWithMocks(t)

	txn := domain.ParsedTransaction{
		Hash:   "tx-3",
		Index:  0,
		Sender: testDeployer,
		Calls: []domain.ContractCall{{
			Kind: domain.CallKindUpgraded,
			Upgraded: &domain.UpgradedCall{
				Address: testContract,
				From:    "modref-old",
				To:      "modref-new",
			},
		}},
	}

	m.store.EXPECT().GetContract(gomock.Any(), "<1000,0>").
		Return(&schema.Contract{Address: "<1000,0>", Kind: domain.KindSecurityToken}, nil)
	m.store.EXPECT().UpdateContractModuleReference(gomock.Any(), "<1000,0>", "modref-new").Return(nil)
	m.store.EXPECT().CreateProcessedContractCall(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, c *schema.ProcessedContractCall) error {
			assert.Equal(t, domain.CallKindUpgraded, c.CallKind)
			return nil
		})
	m.store.EXPECT().CreateProcessedTransaction(gomock.Any(), gomock.Any()).Return(nil)
	expectMarkerInserted(m, true)

	result, err := p.ProcessBlock(context.Background(), blockWith(txn))
	require.NoError(t, err)
	assert.Equal(t, 1, result.ProcessedCalls)
}

func TestProcessBlock_UpgradeOfUntrackedContractSkipped(t *testing.T) {
	p, m := newBlockProcessorWithMocks(t)

	txn := domain.ParsedTransaction{
		Hash:   "tx-3",
		Index:  0,
		Sender: testDeployer,
		Calls: []domain.ContractCall{{
			Kind:     domain.CallKindUpgraded,
			Upgraded: &domain.UpgradedCall{Address: testContract, To: "modref-new"},
		}},
	}

	m.store.EXPECT().GetContract(gomock.Any(), "<1000,0>").Return(nil, nil)
	expectMarkerInserted(m, true)

	result, err := p.ProcessBlock(context.Background(), blockWith(txn))
	require.NoError(t, err)
	assert.Zero(t, result.ProcessedCalls)
}
