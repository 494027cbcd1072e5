package attestations

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidAttestationData      = errorsmod.Register(ModuleName, 2, "invalid attestation data")
	ErrInvalidSignature            = errorsmod.Register(ModuleName, 3, "invalid signature")
	ErrMalformedCurrentValidators  = errorsmod.Register(ModuleName, 4, "malformed current validator set")
	ErrSuppliedValidatorSetInvalid = errorsmod.Register(ModuleName, 5, "supplied validator set does not match the last checkpoint")
	ErrInsufficientVotingPower     = errorsmod.Register(ModuleName, 6, "insufficient voting power")
	ErrPowerOverflow               = errorsmod.Register(ModuleName, 7, "cumulative voting power overflows")
	ErrDataRootTupleRootNotFound   = errorsmod.Register(ModuleName, 8, "data root tuple root not found")
)
