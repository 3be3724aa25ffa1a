package types

// Well-known program and sysvar addresses.
var (
	// SystemProgramID is the system program address (all zero bytes,
	// base58 "11111111111111111111111111111111").
	SystemProgramID = Pubkey{}

	// SysvarRentID is the rent sysvar address.
	SysvarRentID = Pubkey{
		6, 221, 246, 225, 215, 101, 161, 147, 217, 203, 225, 70, 206, 235, 121, 172,
		28, 180, 133, 237, 95, 91, 55, 145, 58, 11, 40, 209, 98, 225, 236, 9,
	}

	// SysvarClockID is the clock sysvar address.
	SysvarClockID = Pubkey{
		6, 221, 246, 225, 215, 101, 161, 147, 217, 203, 225, 70, 206, 235, 121, 172,
		28, 180, 133, 237, 95, 91, 55, 145, 58, 11, 40, 209, 98, 225, 236, 10,
	}
)
