package headerrange

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidHeaderRangeData = errorsmod.Register(ModuleName, 2, "invalid header range data")
	ErrTrustedHeaderNotFound  = errorsmod.Register(ModuleName, 3, "trusted header not found")
	ErrAuthoritySetNotFound   = errorsmod.Register(ModuleName, 4, "authority set hash not found")
	ErrStaleAuthoritySet      = errorsmod.Register(ModuleName, 5, "authority set id is older than the latest one")
	ErrAuthoritySetExists     = errorsmod.Register(ModuleName, 6, "authority set hash already exists")
	ErrInputMismatch          = errorsmod.Register(ModuleName, 7, "proof input does not match the trusted state")
	ErrInvalidTargetBlock     = errorsmod.Register(ModuleName, 8, "invalid target block")
	ErrInvalidProof           = errorsmod.Register(ModuleName, 9, "invalid header range proof")
	ErrInvalidOutput          = errorsmod.Register(ModuleName, 10, "invalid proof output")
	ErrUnsupportedVariant     = errorsmod.Register(ModuleName, 11, "operation not supported by bridge variant")
	ErrCommitmentNotFound     = errorsmod.Register(ModuleName, 12, "data commitment not found")
)
