package attestations

import (
	errorsmod "cosmossdk.io/errors"

	seqerrors "github.com/AnomalyFi/seq-wasm/internal/errors"
	commitmenttypes "github.com/AnomalyFi/seq-wasm/modules/core/23-commitment/types"
	"github.com/AnomalyFi/seq-wasm/modules/core/state"
)

// VerifyAttestation verifies that proof.Tuple is included in the data root
// tuple root committed at proof.TupleRootNonce.
func (cs *ClientState) VerifyAttestation(s state.Store, proof *commitmenttypes.AttestationProof) error {
	if err := proof.ValidateBasic(); err != nil {
		return err
	}

	nonce := proof.TupleRootNonce
	if nonce.IsZero() || nonce.Gt(cs.EventNonce) {
		return errorsmod.Wrapf(seqerrors.ErrInvalidSequence, "tuple root nonce %s is not in (0, %s]", nonce.Dec(), cs.EventNonce.Dec())
	}

	root := GetDataRootTupleRoot(s, nonce)
	if root == ([32]byte{}) {
		return errorsmod.Wrapf(ErrDataRootTupleRootNotFound, "nonce %s", nonce.Dec())
	}
	return proof.Verify(root)
}
