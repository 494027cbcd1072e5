package precompiles

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName is the error codespace
const SubModuleName string = "precompiles"

var (
	ErrInvalidInput        = errorsmod.Register(SubModuleName, 2, "invalid precompile input")
	ErrInvalidVerifyingKey = errorsmod.Register(SubModuleName, 3, "invalid program verifying key")
	ErrInvalidProof        = errorsmod.Register(SubModuleName, 4, "invalid proof encoding")
	ErrInvalidWitness      = errorsmod.Register(SubModuleName, 5, "invalid public witness")
	ErrVerificationFailed  = errorsmod.Register(SubModuleName, 6, "proof verification failed")
)
