package parser

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwalabs/rwa-indexer/internal/chain"
	"github.com/rwalabs/rwa-indexer/internal/domain"
	"github.com/rwalabs/rwa-indexer/internal/logger"
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
	testBlockInfo = &chain.BlockInfo{
		Hash:             "blockhash-1",
		Height:           42,
		SlotTime:         time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		TransactionCount: 1,
	}

	contractA = domain.ContractAddress{Index: 1000, Subindex: 0}
	contractB = domain.ContractAddress{Index: 2000, Subindex: 0}
)

func rawEvent(s string) domain.RawEvent {
	return domain.RawEvent(s)
}

func accountOutcome(hash string, index uint64, effect *chain.TransactionEffect) chain.TransactionOutcome {
	return chain.TransactionOutcome{
		Hash:   domain.TransactionHash(hash),
		Index:  index,
		Sender: "3kBx2h5Y2veb4hZgAJWPrr8RyQESKm5TjzF3ti1QQ4VSYLwK1G",
		Kind:   chain.OutcomeAccountTransaction,
		Effect: effect,
	}
}

func updateEffect(trace ...chain.TraceElement) *chain.TransactionEffect {
	return &chain.TransactionEffect{
		Kind:                chain.EffectContractUpdateIssued,
		ContractUpdateIssued: &chain.ContractUpdateIssued{Trace: trace},
	}
}

func updatedElem(addr domain.ContractAddress, receiveName string, events ...domain.RawEvent) chain.TraceElement {
	return chain.TraceElement{
		Kind: chain.TraceUpdated,
		Updated: &chain.UpdatedElement{
			Address:     addr,
			Instigator:  "caller",
			Amount:      domain.NewAmount(0),
			ReceiveName: receiveName,
			Events:      events,
		},
	}
}

func interruptedElem(addr domain.ContractAddress, events ...domain.RawEvent) chain.TraceElement {
	return chain.TraceElement{
		Kind:        chain.TraceInterrupted,
		Interrupted: &chain.InterruptedElement{Address: addr, Events: events},
	}
}

func TestParseBlock_InitCall(t *testing.T) {
	p := NewBlockParser()

	outcome := accountOutcome("tx-1", 0, &chain.TransactionEffect{
		Kind: chain.EffectContractInitialized,
		ContractInitialized: &chain.ContractInitialized{
			Address:         contractA,
			ModuleReference: "modref-1",
			InitName:        "init_security_token",
			Amount:          domain.NewAmount(0),
			Events:          []domain.RawEvent{rawEvent(`{"kind":"agent_added"}`)},
		},
	})

	block, err := p.ParseBlock(testBlockInfo, []chain.TransactionOutcome{outcome})
	require.NoError(t, err)
	require.Len(t, block.Transactions, 1)
	require.Len(t, block.Transactions[0].Calls, 1)

	call := block.Transactions[0].Calls[0]
	assert.Equal(t, domain.CallKindInit, call.Kind)
	require.NotNil(t, call.Init)
	assert.Equal(t, contractA, call.Init.Address)
	assert.Equal(t, domain.ContractName("security_token"), call.Init.ContractName)
	assert.Len(t, call.Init.Events, 1)
}

func TestParseBlock_MalformedInitName(t *testing.T) {
	p := NewBlockParser()

	outcome := accountOutcome("tx-1", 0, &chain.TransactionEffect{
		Kind: chain.EffectContractInitialized,
		ContractInitialized: &chain.ContractInitialized{
			Address:  contractA,
			InitName: "security_token",
		},
	})

	_, err := p.ParseBlock(testBlockInfo, []chain.TransactionOutcome{outcome})
	assert.Error(t, err)
}

func TestParseBlock_SkipsNonAccountOutcomes(t *testing.T) {
	p := NewBlockParser()

	outcomes := []chain.TransactionOutcome{
		{Hash: "tx-0", Index: 0, Kind: "chainUpdate"},
		{Hash: "tx-1", Index: 1, Kind: chain.OutcomeAccountTransaction, Effect: nil},
		accountOutcome("tx-2", 2, updateEffect(
			updatedElem(contractA, "security_token.mint", rawEvent(`{"kind":"mint"}`)),
		)),
	}

	block, err := p.ParseBlock(testBlockInfo, outcomes)
	require.NoError(t, err)
	require.Len(t, block.Transactions, 1)
	assert.Equal(t, domain.TransactionHash("tx-2"), block.Transactions[0].Hash)
}

func TestParseBlock_SkipsUntrackedEffects(t *testing.T) {
	p := NewBlockParser()

	outcome := accountOutcome("tx-1", 0, &chain.TransactionEffect{Kind: "accountTransfer"})

	block, err := p.ParseBlock(testBlockInfo, []chain.TransactionOutcome{outcome})
	require.NoError(t, err)
	assert.Empty(t, block.Transactions)
}

func TestFoldTrace_SimpleUpdate(t *testing.T) {
	p := NewBlockParser()

	outcome := accountOutcome("tx-1", 0, updateEffect(
		updatedElem(contractA, "security_token.mint", rawEvent(`{"kind":"mint"}`), rawEvent(`{"kind":"transfer"}`)),
	))

	block, err := p.ParseBlock(testBlockInfo, []chain.TransactionOutcome{outcome})
	require.NoError(t, err)
	require.Len(t, block.Transactions, 1)
	require.Len(t, block.Transactions[0].Calls, 1)

	call := block.Transactions[0].Calls[0]
	assert.Equal(t, domain.CallKindUpdate, call.Kind)
	require.NotNil(t, call.Update)
	assert.Equal(t, "mint", call.Update.Entrypoint)
	assert.Equal(t, []domain.RawEvent{rawEvent(`{"kind":"mint"}`), rawEvent(`{"kind":"transfer"}`)}, call.Update.Events)
}

func TestFoldTrace_InterruptResumeFolding(t *testing.T) {
	p := NewBlockParser()

	// Contract A is interrupted twice before resuming; both interrupt
	// event batches must land before A's own events, in emission order.
	outcome := accountOutcome("tx-1", 0, updateEffect(
		interruptedElem(contractA, rawEvent("a-int-1"), rawEvent("a-int-2")),
		updatedElem(contractB, "market.exchange", rawEvent("b-1")),
		interruptedElem(contractA, rawEvent("a-int-3")),
		chain.TraceElement{Kind: chain.TraceResumed},
		updatedElem(contractA, "security_token.transfer", rawEvent("a-own-1")),
	))

	block, err := p.ParseBlock(testBlockInfo, []chain.TransactionOutcome{outcome})
	require.NoError(t, err)
	require.Len(t, block.Transactions, 1)
	calls := block.Transactions[0].Calls
	require.Len(t, calls, 2)

	// Calls keep trace order: B's update completed first.
	assert.Equal(t, contractB, calls[0].Update.Address)
	assert.Equal(t, []domain.RawEvent{rawEvent("b-1")}, calls[0].Update.Events)

	assert.Equal(t, contractA, calls[1].Update.Address)
	assert.Equal(t,
		[]domain.RawEvent{rawEvent("a-int-1"), rawEvent("a-int-2"), rawEvent("a-int-3"), rawEvent("a-own-1")},
		calls[1].Update.Events)
}

func TestFoldTrace_BufferConsumedOnlyOnce(t *testing.T) {
	p := NewBlockParser()

	outcome := accountOutcome("tx-1", 0, updateEffect(
		interruptedElem(contractA, rawEvent("int-1")),
		updatedElem(contractA, "security_token.mint", rawEvent("own-1")),
		updatedElem(contractA, "security_token.mint", rawEvent("own-2")),
	))

	block, err := p.ParseBlock(testBlockInfo, []chain.TransactionOutcome{outcome})
	require.NoError(t, err)
	calls := block.Transactions[0].Calls
	require.Len(t, calls, 2)
	assert.Equal(t, []domain.RawEvent{rawEvent("int-1"), rawEvent("own-1")}, calls[0].Update.Events)
	assert.Equal(t, []domain.RawEvent{rawEvent("own-2")}, calls[1].Update.Events)
}

func TestFoldTrace_UnreclaimedBufferDropped(t *testing.T) {
	p := NewBlockParser()

	// Interrupt with no later update for the same address: its events
	// are dropped, the rest of the trace survives.
	outcome := accountOutcome("tx-1", 0, updateEffect(
		interruptedElem(contractA, rawEvent("orphan")),
		updatedElem(contractB, "market.list", rawEvent("b-1")),
	))

	block, err := p.ParseBlock(testBlockInfo, []chain.TransactionOutcome{outcome})
	require.NoError(t, err)
	calls := block.Transactions[0].Calls
	require.Len(t, calls, 1)
	assert.Equal(t, contractB, calls[0].Update.Address)
}

func TestFoldTrace_Upgraded(t *testing.T) {
	p := NewBlockParser()

	outcome := accountOutcome("tx-1", 0, updateEffect(
		chain.TraceElement{
			Kind: chain.TraceUpgraded,
			Upgraded: &chain.UpgradedElement{
				Address: contractA,
				From:    "modref-old",
				To:      "modref-new",
			},
		},
	))

	block, err := p.ParseBlock(testBlockInfo, []chain.TransactionOutcome{outcome})
	require.NoError(t, err)
	calls := block.Transactions[0].Calls
	require.Len(t, calls, 1)
	assert.Equal(t, domain.CallKindUpgraded, calls[0].Kind)
	require.NotNil(t, calls[0].Upgraded)
	assert.Equal(t, domain.ModuleReference("modref-new"), calls[0].Upgraded.To)
}

func TestFoldTrace_UnknownElementKind(t *testing.T) {
	p := NewBlockParser()

	outcome := accountOutcome("tx-1", 0, updateEffect(
		chain.TraceElement{Kind: "frozen"},
	))

	_, err := p.ParseBlock(testBlockInfo, []chain.TransactionOutcome{outcome})
	assert.Error(t, err)
}

func TestParseBlock_MalformedReceiveName(t *testing.T) {
	p := NewBlockParser()

	outcome := accountOutcome("tx-1", 0, updateEffect(
		updatedElem(contractA, "no-entrypoint-here"),
	))

	_, err := p.ParseBlock(testBlockInfo, []chain.TransactionOutcome{outcome})
	assert.Error(t, err)
}

func TestParseBlock_DropsEventlessTransactions(t *testing.T) {
	p := NewBlockParser()

	// An update trace with no trackable calls produces no transaction.
	outcome := accountOutcome("tx-1", 0, updateEffect())

	block, err := p.ParseBlock(testBlockInfo, []chain.TransactionOutcome{outcome})
	require.NoError(t, err)
	assert.Empty(t, block.Transactions)
}
