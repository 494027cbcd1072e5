package headerrange

import (
	"bytes"

	"github.com/holiman/uint256"

	errorsmod "cosmossdk.io/errors"

	"github.com/AnomalyFi/seq-wasm/modules/core/exported"
	"github.com/AnomalyFi/seq-wasm/modules/core/state"
)

// CommitHeaderRange advances the bridge from its latest trusted header to
// msg.TargetBlock once verifier accepted a proof of the header range. The
// proven target header and commitments are stored and the client state is
// updated in place.
func (cs *ClientState) CommitHeaderRange(s state.Store, p Params, verifier exported.ProofVerifier, msg *CommitHeaderRangeInput) (*HeaderRangeOutput, error) {
	trustedHeader := GetHeaderHash(s, cs.LatestBlock)
	if trustedHeader == ([32]byte{}) {
		return nil, errorsmod.Wrapf(ErrTrustedHeaderNotFound, "height %d", cs.LatestBlock)
	}

	in := HeaderRangeInput{
		LatestBlock:   cs.LatestBlock,
		TrustedHeader: trustedHeader,
		TargetBlock:   msg.TargetBlock,
	}
	if p.tracksAuthoritySets() {
		authoritySetHash := GetAuthoritySetHash(s, msg.AuthoritySetID)
		if authoritySetHash == ([32]byte{}) {
			return nil, errorsmod.Wrapf(ErrAuthoritySetNotFound, "authority set id %d", msg.AuthoritySetID)
		}
		if msg.AuthoritySetID < cs.LatestAuthoritySetID {
			return nil, errorsmod.Wrapf(ErrStaleAuthoritySet, "authority set id %d, latest %d", msg.AuthoritySetID, cs.LatestAuthoritySetID)
		}
		in.AuthoritySetID = msg.AuthoritySetID
		in.AuthoritySetHash = authoritySetHash
	}

	expected, err := in.EncodePacked(p.Variant)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(expected, msg.Input) {
		return nil, errorsmod.Wrapf(ErrInputMismatch, "expected %x, got %x", expected, msg.Input)
	}

	if msg.TargetBlock <= cs.LatestBlock || msg.TargetBlock-cs.LatestBlock > p.MaxRange {
		return nil, errorsmod.Wrapf(ErrInvalidTargetBlock, "target block %d must be in (%d, %d+%d]", msg.TargetBlock, cs.LatestBlock, cs.LatestBlock, p.MaxRange)
	}

	if err := verifier.VerifyProof(cs.ProgramVKeyHash, PublicValues(msg.Input, msg.Output), msg.Proof, cs.ProgramVKey); err != nil {
		return nil, errorsmod.Wrap(ErrInvalidProof, err.Error())
	}

	out, err := DecodeHeaderRangeOutput(p.Variant, msg.Output)
	if err != nil {
		return nil, err
	}

	setHeaderHash(s, msg.TargetBlock, out.TargetHeaderHash)
	setCommitments(s, p, cs.ProofNonce, cs.LatestBlock, msg.TargetBlock, out)

	cs.ProofNonce = new(uint256.Int).AddUint64(cs.ProofNonce, 1)
	cs.LatestBlock = msg.TargetBlock
	if p.tracksAuthoritySets() && msg.AuthoritySetID > cs.LatestAuthoritySetID {
		cs.LatestAuthoritySetID = msg.AuthoritySetID
	}
	return out, nil
}
