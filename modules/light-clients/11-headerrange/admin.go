package headerrange

import (
	"math"

	errorsmod "cosmossdk.io/errors"

	seqerrors "github.com/AnomalyFi/seq-wasm/internal/errors"
	"github.com/AnomalyFi/seq-wasm/internal/validate"
	"github.com/AnomalyFi/seq-wasm/modules/core/state"
)

// UpdateGenesisState overrides the latest trusted header and, for authority
// set bridges, the latest authority set.
func (cs *ClientState) UpdateGenesisState(s state.Store, p Params, msg *UpdateGenesisStateInput) error {
	if err := p.validateHeight(msg.Height); err != nil {
		return err
	}
	if p.tracksAuthoritySets() {
		setAuthoritySetHash(s, msg.AuthoritySetID, msg.AuthoritySetHash)
		cs.LatestAuthoritySetID = msg.AuthoritySetID
	}

	setHeaderHash(s, msg.Height, msg.Header)
	cs.LatestBlock = msg.Height
	return nil
}

// UpdateProgramVkey replaces the program whose proofs the bridge accepts.
func (cs *ClientState) UpdateProgramVkey(msg *UpdateProgramVkeyInput) error {
	if err := validate.ProgramVKey(msg.ProgramVKeyHash, msg.ProgramVKey); err != nil {
		return err
	}

	cs.ProgramVKeyHash = msg.ProgramVKeyHash
	cs.ProgramVKey = msg.ProgramVKey
	return nil
}

// validateHeight checks that height fits in the packed proof input of the
// bridge variant.
func (p Params) validateHeight(height uint64) error {
	if p.tracksAuthoritySets() && height > math.MaxUint32 {
		return errorsmod.Wrapf(seqerrors.ErrInvalidHeight, "height %d must fit in 32 bits", height)
	}
	return nil
}
