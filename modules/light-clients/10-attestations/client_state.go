package attestations

import (
	"github.com/holiman/uint256"

	errorsmod "cosmossdk.io/errors"

	seqerrors "github.com/AnomalyFi/seq-wasm/internal/errors"
	host "github.com/AnomalyFi/seq-wasm/modules/core/24-host"
	"github.com/AnomalyFi/seq-wasm/modules/core/state"
)

// ClientState is the persisted state of the signature-gated bridge.
type ClientState struct {
	// EventNonce is the nonce of the last accepted validator set update or
	// data root tuple root.
	EventNonce *uint256.Int
	// PowerThreshold is the voting power of the current validator set required
	// to approve a transition.
	PowerThreshold *uint256.Int
	// LastValidatorSetCheckpoint commits to the current validator set, its
	// power threshold and the nonce at which it was set.
	LastValidatorSetCheckpoint [32]byte
}

// NewClientState creates a new ClientState instance.
func NewClientState(eventNonce, powerThreshold *uint256.Int, checkpoint [32]byte) *ClientState {
	return &ClientState{
		EventNonce:                 eventNonce,
		PowerThreshold:             powerThreshold,
		LastValidatorSetCheckpoint: checkpoint,
	}
}

// Validate performs basic validation of the client state fields.
func (cs ClientState) Validate() error {
	if cs.EventNonce == nil {
		return errorsmod.Wrap(seqerrors.ErrInvalidRequest, "event nonce cannot be nil")
	}
	if cs.PowerThreshold == nil {
		return errorsmod.Wrap(seqerrors.ErrInvalidRequest, "power threshold cannot be nil")
	}
	return nil
}

// getClientState retrieves the client state from the bridge store.
func getClientState(s state.Store) *ClientState {
	return &ClientState{
		EventNonce:                 s.GetUint256(host.ScalarKey(KeyEventNonce)),
		PowerThreshold:             s.GetUint256(host.ScalarKey(KeyPowerThreshold)),
		LastValidatorSetCheckpoint: s.GetBytes32(host.ScalarKey(KeyLastValidatorSetCheckpoint)),
	}
}

// setClientState stores the client state.
func setClientState(s state.Store, cs *ClientState) {
	s.SetUint256(host.ScalarKey(KeyEventNonce), cs.EventNonce)
	s.SetUint256(host.ScalarKey(KeyPowerThreshold), cs.PowerThreshold)
	s.SetBytes32(host.ScalarKey(KeyLastValidatorSetCheckpoint), cs.LastValidatorSetCheckpoint)
}

// GetDataRootTupleRoot returns the data root tuple root committed at nonce,
// or the zero digest if none was.
func GetDataRootTupleRoot(s state.Store, nonce *uint256.Int) [32]byte {
	return s.GetBytes32(host.Uint256MappingKey(KeyDataRootTupleRoots, nonce))
}

func setDataRootTupleRoot(s state.Store, nonce *uint256.Int, root [32]byte) {
	s.SetBytes32(host.Uint256MappingKey(KeyDataRootTupleRoots, nonce), root)
}
