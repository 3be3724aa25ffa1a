package programs

import (
	"errors"
	"fmt"
	"sync"

	"solana-web-sdk/types"
)

var (
	// ErrDuplicateProgram is returned when registering an already known program id.
	ErrDuplicateProgram = errors.New("duplicate program")
	// ErrProgramNotFound is returned when a program id is not registered.
	ErrProgramNotFound = errors.New("program not found")
	// ErrInvalidProgram is returned for nil or zero-id programs.
	ErrInvalidProgram = errors.New("invalid program")
)

// Registry is an in-memory index of tracked programs keyed by program id.
// Stored records are copied on the way in and out so callers cannot
// mutate registry state behind the lock.
type Registry struct {
	mu       sync.RWMutex
	programs map[types.Pubkey]*Program
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		programs: make(map[types.Pubkey]*Program),
	}
}

// Register adds a program. Registering the same program id twice fails
// with ErrDuplicateProgram.
func (r *Registry) Register(p *Program) error {
	if p == nil || p.ProgramID.IsZero() {
		return ErrInvalidProgram
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.programs[p.ProgramID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateProgram, p.ProgramID)
	}
	r.programs[p.ProgramID] = copyProgram(p)
	return nil
}

// Get returns a copy of the program with the given id.
func (r *Registry) Get(programID types.Pubkey) (*Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.programs[programID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProgramNotFound, programID)
	}
	return copyProgram(p), nil
}

// Update replaces the stored record for an already registered program.
func (r *Registry) Update(p *Program) error {
	if p == nil || p.ProgramID.IsZero() {
		return ErrInvalidProgram
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.programs[p.ProgramID]; !ok {
		return fmt.Errorf("%w: %s", ErrProgramNotFound, p.ProgramID)
	}
	r.programs[p.ProgramID] = copyProgram(p)
	return nil
}

// Remove deletes a program from the registry.
func (r *Registry) Remove(programID types.Pubkey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.programs[programID]; !ok {
		return fmt.Errorf("%w: %s", ErrProgramNotFound, programID)
	}
	delete(r.programs, programID)
	return nil
}

// List returns copies of all registered programs in unspecified order.
func (r *Registry) List() []*Program {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Program, 0, len(r.programs))
	for _, p := range r.programs {
		out = append(out, copyProgram(p))
	}
	return out
}

// Len reports the number of registered programs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.programs)
}

func copyProgram(p *Program) *Program {
	cp := *p
	cp.Data = append([]byte(nil), p.Data...)
	cp.Accounts = make(map[types.Pubkey]*Account, len(p.Accounts))
	for k, a := range p.Accounts {
		cp.Accounts[k] = copyAccount(a)
	}
	return &cp
}

func copyAccount(a *Account) *Account {
	cp := *a
	cp.Data = append([]byte(nil), a.Data...)
	if a.Seeds != nil {
		cp.Seeds = make([][]byte, len(a.Seeds))
		for i, s := range a.Seeds {
			cp.Seeds[i] = append([]byte(nil), s...)
		}
	}
	return &cp
}
