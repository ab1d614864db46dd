package registry

import (
	"fmt"

	"github.com/rwalabs/rwa-indexer/internal/adapter"
	"github.com/rwalabs/rwa-indexer/internal/domain"
)

// DeploymentRegistry holds the per-environment deployment data: the
// accounts allowed to register new contracts, and the module bindings
// that classify them.
//
//go:generate mockgen -source=deployment.go -destination=../mocks/deployment_registry.go -package=mocks -mock_names=DeploymentRegistry=MockDeploymentRegistry,DeploymentRegistryLoader=MockDeploymentRegistryLoader
type DeploymentRegistry interface {
	// IsTrustedDeployer reports whether the account may register new
	// contract instances via init calls.
	IsTrustedDeployer(account domain.AccountAddress) bool

	// Bindings returns the contract bindings in file order.
	Bindings() []ContractBinding
}

// DeploymentData represents the structure of the deployment JSON file
type DeploymentData struct {
	Version   int               `json:"version"`
	Deployers []string          `json:"deployers"`
	Contracts []ContractBinding `json:"contracts"`
}

// deploymentRegistry is the internal implementation of DeploymentRegistry
type deploymentRegistry struct {
	data *DeploymentData
	// Fast lookup set of trusted deployer accounts
	deployers map[domain.AccountAddress]bool
}

// DeploymentRegistryLoader defines the interface for loading deployment registries from files
type DeploymentRegistryLoader interface {
	// Load loads the deployment registry from a JSON file
	Load(filePath string) (DeploymentRegistry, error)
}

// deploymentRegistryLoader is the internal implementation of DeploymentRegistryLoader
type deploymentRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewDeploymentRegistryLoader creates a new DeploymentRegistryLoader with injected dependencies
func NewDeploymentRegistryLoader(fs adapter.FileSystem, json adapter.JSON) DeploymentRegistryLoader {
	return &deploymentRegistryLoader{
		fs:   fs,
		json: json,
	}
}

// Load loads the deployment registry from a JSON file
func (l *deploymentRegistryLoader) Load(filePath string) (DeploymentRegistry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment file: %w", err)
	}

	var deploymentData DeploymentData
	if err := l.json.Unmarshal(data, &deploymentData); err != nil {
		return nil, fmt.Errorf("failed to parse deployment JSON: %w", err)
	}

	for i, b := range deploymentData.Contracts {
		if b.ModuleReference == "" || b.ContractName == "" || b.Kind == "" {
			return nil, fmt.Errorf("incomplete contract binding at index %d", i)
		}
	}

	reg := &deploymentRegistry{
		data:      &deploymentData,
		deployers: make(map[domain.AccountAddress]bool, len(deploymentData.Deployers)),
	}
	for _, d := range deploymentData.Deployers {
		reg.deployers[domain.AccountAddress(d)] = true
	}

	return reg, nil
}

// IsTrustedDeployer reports whether the account may register new contracts
func (r *deploymentRegistry) IsTrustedDeployer(account domain.AccountAddress) bool {
	if r == nil {
		return false
	}
	return r.deployers[account]
}

// Bindings returns the contract bindings in file order
func (r *deploymentRegistry) Bindings() []ContractBinding {
	if r == nil || r.data == nil {
		return nil
	}
	return r.data.Contracts
}
