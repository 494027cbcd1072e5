package types

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName is the error codespace
const SubModuleName string = "commitment"

// binary Merkle proof sentinel errors
var (
	ErrInvalidProof       = errorsmod.Register(SubModuleName, 2, "invalid proof")
	ErrInvalidNumLeaves   = errorsmod.Register(SubModuleName, 3, "invalid number of leaves")
	ErrInvalidKey         = errorsmod.Register(SubModuleName, 4, "invalid leaf key")
	ErrInvalidSideNodes   = errorsmod.Register(SubModuleName, 5, "invalid number of side nodes")
	ErrRootMismatch       = errorsmod.Register(SubModuleName, 6, "computed root does not match")
	ErrInvalidAttestation = errorsmod.Register(SubModuleName, 7, "invalid attestation proof")
)
