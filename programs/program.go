// Package programs models deployed Solana programs and their accounts for
// client-side bookkeeping. Nothing here executes or compiles on-chain
// code; the registry only tracks simulated deployment state.
package programs

import (
	"time"

	"solana-web-sdk/types"
)

// Status of a tracked program deployment.
type Status string

const (
	StatusDeploying Status = "deploying"
	StatusDeployed  Status = "deployed"
	StatusFailed    Status = "failed"
	StatusUpgrading Status = "upgrading"
	StatusClosed    Status = "closed"
)

// Program is a tracked program with its metadata and owned accounts.
type Program struct {
	ProgramID  types.Pubkey
	Name       string
	Version    string
	Authority  *types.Pubkey // upgrade authority, nil when immutable
	Data       []byte
	Accounts   map[types.Pubkey]*Account
	Status     Status
	DeployedAt int64 // Unix timestamp in milliseconds
}

// NewProgram creates a program record in the deploying state.
func NewProgram(programID types.Pubkey, name, version string, data []byte, authority *types.Pubkey) *Program {
	return &Program{
		ProgramID:  programID,
		Name:       name,
		Version:    version,
		Authority:  authority,
		Data:       data,
		Accounts:   make(map[types.Pubkey]*Account),
		Status:     StatusDeploying,
		DeployedAt: time.Now().UnixMilli(),
	}
}

// AddAccount registers an account owned by the program.
func (p *Program) AddAccount(acc *Account) {
	p.Accounts[acc.Pubkey] = acc
}

// Account returns an owned account, nil if unknown.
func (p *Program) Account(pubkey types.Pubkey) *Account {
	return p.Accounts[pubkey]
}

// MarkDeployed transitions the program to the deployed state.
func (p *Program) MarkDeployed() {
	p.Status = StatusDeployed
}

// TotalAccountSize sums the data sizes of all owned accounts.
func (p *Program) TotalAccountSize() int {
	total := 0
	for _, acc := range p.Accounts {
		total += len(acc.Data)
	}
	return total
}

// TotalLamports sums the balances of all owned accounts.
func (p *Program) TotalLamports() uint64 {
	var total uint64
	for _, acc := range p.Accounts {
		total += acc.Lamports
	}
	return total
}

// Account is a program-owned account record.
type Account struct {
	Pubkey     types.Pubkey
	Owner      types.Pubkey
	Data       []byte
	Lamports   uint64
	Executable bool
	CreatedAt  int64 // Unix timestamp in milliseconds
	// Seeds holds the PDA derivation seeds when the account is a
	// program-derived address; empty otherwise.
	Seeds [][]byte
}

// NewAccount creates an account record owned by owner.
func NewAccount(pubkey, owner types.Pubkey, data []byte, lamports uint64) *Account {
	return &Account{
		Pubkey:    pubkey,
		Owner:     owner,
		Data:      data,
		Lamports:  lamports,
		CreatedAt: time.Now().UnixMilli(),
	}
}

// IsPDA reports whether the account was derived from seeds.
func (a *Account) IsPDA() bool {
	return len(a.Seeds) > 0
}

// Deployment describes one requested program deployment.
type Deployment struct {
	Program *Program
	// SkipPreflight bypasses simulation before submission.
	SkipPreflight bool
	// PriorityFee in lamports, zero for none.
	PriorityFee uint64
	// Fee is the deployment fee in lamports.
	Fee uint64
}

// DefaultDeploymentFee is charged when a deployment specifies none.
const DefaultDeploymentFee = 1_000_000

// NewDeployment wraps a program for deployment with the default fee.
func NewDeployment(p *Program) *Deployment {
	return &Deployment{Program: p, Fee: DefaultDeploymentFee}
}
