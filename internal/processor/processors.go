package processor

import (
	"github.com/rwalabs/rwa-indexer/internal/domain"
	"github.com/rwalabs/rwa-indexer/internal/registry"
)

// Processors returns the processor for every known contract kind.
// Adding a kind means adding its state machine here and binding module
// references to it in the deployment file.
func Processors() map[domain.ContractKind]registry.ProcessorFn {
	return map[domain.ContractKind]registry.ProcessorFn{
		domain.KindSecurityToken:    NewSecurityTokenProcessor(),
		domain.KindIdentityRegistry: NewIdentityRegistryProcessor(),
		domain.KindMintFund:         NewMintFundProcessor(),
		domain.KindMarket:           NewMarketProcessor(),
		domain.KindYielder:          NewYielderProcessor(),
	}
}
