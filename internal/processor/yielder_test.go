package processor_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwalabs/rwa-indexer/internal/domain"
	"github.com/rwalabs/rwa-indexer/internal/processor"
	"github.com/rwalabs/rwa-indexer/internal/registry"
	"github.com/rwalabs/rwa-indexer/internal/store/schema"
)

var yielderContract = domain.ContractAddress{Index: 7000, Subindex: 0}

func encodeYielderEvent(t *testing.T, event processor.YielderEvent) domain.RawEvent {
	t.Helper()
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return raw
}

func yielderCall(events ...domain.RawEvent) *registry.CallContext {
	return &registry.CallContext{
		BlockHeight:     42,
		BlockTime:       testSlotTime,
		Sender:          testDeployer,
		Instigator:      domain.Address(testDeployer),
		ContractAddress: yielderContract,
		Events:          events,
	}
}

func TestYielder_YieldAdded(t *testing.T) {
	st := newMockStore(t)
	fn := processor.NewYielderProcessor()

	event := encodeYielderEvent(t, processor.YielderEvent{
		Kind:       processor.YielderYieldAdded,
		YieldAdded: &processor.YieldAddedEvent{TokenContract: tokenContract, TokenID: "01", Rate: domain.NewAmount(3)},
	})

	st.EXPECT().UpsertYield(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, yield *schema.Yield) error {
			assert.Equal(t, "<7000,0>", yield.ContractAddress)
			assert.Equal(t, "<1000,0>", yield.TokenContract)
			assert.Equal(t, "3", yield.Rate.String())
			return nil
		})

	require.NoError(t, fn(context.Background(), st, yielderCall(event)))
}

func TestYielder_YieldRemoved(t *testing.T) {
	st := newMockStore(t)
	fn := processor.NewYielderProcessor()

	event := encodeYielderEvent(t, processor.YielderEvent{
		Kind:         processor.YielderYieldRemoved,
		YieldRemoved: &processor.YieldRemovedEvent{TokenContract: tokenContract, TokenID: "01"},
	})

	st.EXPECT().DeleteYield(gomock.Any(), "<7000,0>", "<1000,0>", "01").Return(true, nil)
	require.NoError(t, fn(context.Background(), st, yielderCall(event)))

	st.EXPECT().DeleteYield(gomock.Any(), "<7000,0>", "<1000,0>", "01").Return(false, nil)
	err := fn(context.Background(), st, yielderCall(event))
	assert.Error(t, err)
}

func TestYielder_YieldDistributed(t *testing.T) {
	st := newMockStore(t)
	fn := processor.NewYielderProcessor()

	event := encodeYielderEvent(t, processor.YielderEvent{
		Kind: processor.YielderYieldDistributed,
		YieldDistributed: &processor.YieldDistributedEvent{
			TokenContract: tokenContract,
			TokenID:       "01",
			Recipient:     "holder-a",
			Amount:        domain.NewAmount(15),
		},
	})

	st.EXPECT().CreateYieldDistribution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, dist *schema.YieldDistribution) error {
			assert.Equal(t, "holder-a", dist.Recipient)
			assert.Equal(t, "15", dist.Amount.String())
			assert.Equal(t, uint64(42), dist.BlockHeight)
			return nil
		})

	require.NoError(t, fn(context.Background(), st, yielderCall(event)))
}

func TestYielder_MissingPayload(t *testing.T) {
	st := newMockStore(t)
	fn := processor.NewYielderProcessor()

	err := fn(context.Background(), st, yielderCall(domain.RawEvent(`{"kind":"yield_added"}`)))
	assert.ErrorIs(t, err, domain.ErrEventDecode)
}

func TestProcessorsCoverEveryKind(t *testing.T) {
	processors := processor.Processors()

	for _, kind := range []domain.ContractKind{
		domain.KindSecurityToken,
		domain.KindIdentityRegistry,
		domain.KindMintFund,
		domain.KindMarket,
		domain.KindYielder,
	} {
		assert.Contains(t, processors, kind)
	}
}
