package headerrange

import (
	"bytes"
	"math"

	errorsmod "cosmossdk.io/errors"

	"github.com/AnomalyFi/seq-wasm/modules/core/exported"
	"github.com/AnomalyFi/seq-wasm/modules/core/state"
)

// Rotate stores the hash of the authority set following
// msg.CurrentAuthoritySetID once verifier accepted a proof of the hand-off.
// Authority sets advance one id at a time and stored hashes are never
// overwritten.
func (cs *ClientState) Rotate(s state.Store, p Params, verifier exported.ProofVerifier, msg *RotateInput) ([32]byte, error) {
	if !p.tracksAuthoritySets() {
		return [32]byte{}, errorsmod.Wrapf(ErrUnsupportedVariant, "rotate is not supported by %s bridges", p.Variant)
	}

	currentHash := GetAuthoritySetHash(s, msg.CurrentAuthoritySetID)
	if currentHash == ([32]byte{}) {
		return [32]byte{}, errorsmod.Wrapf(ErrAuthoritySetNotFound, "authority set id %d", msg.CurrentAuthoritySetID)
	}
	if msg.CurrentAuthoritySetID == math.MaxUint64 {
		return [32]byte{}, errorsmod.Wrap(ErrInvalidHeaderRangeData, "authority set id overflows")
	}
	nextID := msg.CurrentAuthoritySetID + 1
	if GetAuthoritySetHash(s, nextID) != ([32]byte{}) {
		return [32]byte{}, errorsmod.Wrapf(ErrAuthoritySetExists, "authority set id %d", nextID)
	}

	expected := EncodeRotateInput(msg.CurrentAuthoritySetID, currentHash)
	if !bytes.Equal(expected, msg.Input) {
		return [32]byte{}, errorsmod.Wrapf(ErrInputMismatch, "expected %x, got %x", expected, msg.Input)
	}

	if err := verifier.VerifyProof(cs.ProgramVKeyHash, PublicValues(msg.Input, msg.Output), msg.Proof, cs.ProgramVKey); err != nil {
		return [32]byte{}, errorsmod.Wrap(ErrInvalidProof, err.Error())
	}

	nextHash, err := DecodeRotateOutput(msg.Output)
	if err != nil {
		return [32]byte{}, err
	}
	if nextHash == ([32]byte{}) {
		return [32]byte{}, errorsmod.Wrap(ErrInvalidOutput, "next authority set hash cannot be zero")
	}

	setAuthoritySetHash(s, nextID, nextHash)
	return nextHash, nil
}
