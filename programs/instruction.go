package programs

import "solana-web-sdk/types"

// AccountRole describes how an instruction uses an account.
type AccountRole string

const (
	RoleProgram  AccountRole = "program"
	RoleReadonly AccountRole = "readonly"
	RoleWritable AccountRole = "writable"
	RolePayer    AccountRole = "payer"
	RoleSystem   AccountRole = "system"
)

// InstructionAccount is one account referenced by an instruction.
type InstructionAccount struct {
	Pubkey     types.Pubkey
	IsSigner   bool
	IsWritable bool
	Role       AccountRole
}

// Instruction references a program, the accounts it touches and an
// opaque data payload. It is a client-side description only; building
// and signing the enclosing transaction happens elsewhere.
type Instruction struct {
	ProgramID     types.Pubkey
	Accounts      []InstructionAccount
	Data          []byte
	InstructionID uint8
}

// NewInstruction creates an instruction description.
func NewInstruction(programID types.Pubkey, accounts []InstructionAccount, data []byte, instructionID uint8) *Instruction {
	return &Instruction{
		ProgramID:     programID,
		Accounts:      accounts,
		Data:          data,
		InstructionID: instructionID,
	}
}

// WritableAccounts returns the accounts the instruction may mutate.
func (in *Instruction) WritableAccounts() []InstructionAccount {
	var out []InstructionAccount
	for _, acc := range in.Accounts {
		if acc.IsWritable {
			out = append(out, acc)
		}
	}
	return out
}

// SignerAccounts returns the accounts that must sign the transaction.
func (in *Instruction) SignerAccounts() []InstructionAccount {
	var out []InstructionAccount
	for _, acc := range in.Accounts {
		if acc.IsSigner {
			out = append(out, acc)
		}
	}
	return out
}
