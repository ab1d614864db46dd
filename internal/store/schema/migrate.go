package schema

// AllModels lists every table in migration order
func AllModels() []interface{} {
	return []interface{}{
		&Contract{},
		&ProcessedTransaction{},
		&ProcessedContractCall{},
		&LastProcessedBlock{},
		&Token{},
		&TokenHolder{},
		&TokenHolderBalanceUpdate{},
		&Operator{},
		&Agent{},
		&ComplianceLink{},
		&IdentityRegistryLink{},
		&RecoveryRecord{},
		&Identity{},
		&Fund{},
		&FundInvestment{},
		&MarketListing{},
		&MarketTrade{},
		&Yield{},
		&YieldDistribution{},
	}
}
