package attestations

import (
	"github.com/holiman/uint256"

	errorsmod "cosmossdk.io/errors"

	seqerrors "github.com/AnomalyFi/seq-wasm/internal/errors"
	"github.com/AnomalyFi/seq-wasm/modules/core/state"
)

// verifyNextNonce checks that newNonce directly follows the event nonce.
func (cs *ClientState) verifyNextNonce(newNonce *uint256.Int) error {
	expected, overflow := new(uint256.Int).AddOverflow(cs.EventNonce, uint256.NewInt(1))
	if overflow {
		return errorsmod.Wrap(seqerrors.ErrInvalidSequence, "event nonce overflows")
	}
	if !newNonce.Eq(expected) {
		return errorsmod.Wrapf(seqerrors.ErrInvalidSequence, "expected nonce %s, got %s", expected.Dec(), newNonce.Dec())
	}
	return nil
}

// verifyCurrentValidatorSet checks that vals, with the current power
// threshold at validatorSetNonce, hash to the last validator set checkpoint.
func (cs *ClientState) verifyCurrentValidatorSet(validatorSetNonce *uint256.Int, vals []Validator, sigs []Signature) error {
	if len(vals) != len(sigs) {
		return errorsmod.Wrapf(ErrMalformedCurrentValidators, "%d validators but %d signatures", len(vals), len(sigs))
	}

	valsetHash, err := ComputeValidatorSetHash(vals)
	if err != nil {
		return err
	}
	checkpoint := DomainSeparateValidatorSetHash(validatorSetNonce, cs.PowerThreshold, valsetHash)
	if checkpoint != cs.LastValidatorSetCheckpoint {
		return errorsmod.Wrapf(ErrSuppliedValidatorSetInvalid, "expected checkpoint %x, got %x", cs.LastValidatorSetCheckpoint, checkpoint)
	}
	return nil
}

// UpdateValidatorSet rotates to the validator set committed by msg once
// validators of the current set holding the power threshold signed the new
// checkpoint. The client state is only modified on success.
func (cs *ClientState) UpdateValidatorSet(msg *UpdateValidatorSetInput, variant EIP191Variant) error {
	if err := cs.verifyNextNonce(msg.NewNonce); err != nil {
		return err
	}
	if err := cs.verifyCurrentValidatorSet(msg.OldNonce, msg.CurrentValidators, msg.Signatures); err != nil {
		return err
	}

	newCheckpoint := DomainSeparateValidatorSetHash(msg.NewNonce, msg.NewPowerThreshold, msg.NewValidatorSetHash)
	if err := CheckValidatorSignatures(msg.CurrentValidators, msg.Signatures, newCheckpoint, cs.PowerThreshold, variant); err != nil {
		return err
	}

	cs.LastValidatorSetCheckpoint = newCheckpoint
	cs.PowerThreshold = msg.NewPowerThreshold
	cs.EventNonce = msg.NewNonce
	return nil
}

// SubmitDataRootTupleRoot commits msg.DataRootTupleRoot at msg.NewNonce once
// validators of the current set holding the power threshold signed it.
func (cs *ClientState) SubmitDataRootTupleRoot(s state.Store, msg *SubmitDataRootTupleRootInput, variant EIP191Variant) error {
	if err := cs.verifyNextNonce(msg.NewNonce); err != nil {
		return err
	}
	if err := cs.verifyCurrentValidatorSet(msg.ValidatorSetNonce, msg.CurrentValidators, msg.Signatures); err != nil {
		return err
	}

	digest := DomainSeparateDataRootTupleRoot(msg.NewNonce, msg.DataRootTupleRoot)
	if err := CheckValidatorSignatures(msg.CurrentValidators, msg.Signatures, digest, cs.PowerThreshold, variant); err != nil {
		return err
	}

	setDataRootTupleRoot(s, msg.NewNonce, msg.DataRootTupleRoot)
	cs.EventNonce = msg.NewNonce
	return nil
}
