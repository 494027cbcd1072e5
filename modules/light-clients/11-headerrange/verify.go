package headerrange

import (
	errorsmod "cosmossdk.io/errors"

	seqerrors "github.com/AnomalyFi/seq-wasm/internal/errors"
	commitmenttypes "github.com/AnomalyFi/seq-wasm/modules/core/23-commitment/types"
	"github.com/AnomalyFi/seq-wasm/modules/core/state"
)

// VerifyAttestation verifies that proof.Tuple is included in the data
// commitment proven at proof.TupleRootNonce.
func (cs *ClientState) VerifyAttestation(s state.Store, proof *commitmenttypes.AttestationProof) error {
	if err := proof.ValidateBasic(); err != nil {
		return err
	}

	nonce := proof.TupleRootNonce
	if nonce.IsZero() || !nonce.Lt(cs.ProofNonce) {
		return errorsmod.Wrapf(seqerrors.ErrInvalidSequence, "proof nonce %s is not in (0, %s)", nonce.Dec(), cs.ProofNonce.Dec())
	}

	root := GetDataCommitment(s, nonce)
	if root == ([32]byte{}) {
		return errorsmod.Wrapf(ErrCommitmentNotFound, "nonce %s", nonce.Dec())
	}
	return proof.Verify(root)
}
