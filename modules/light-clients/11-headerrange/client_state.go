package headerrange

import (
	"github.com/holiman/uint256"

	host "github.com/AnomalyFi/seq-wasm/modules/core/24-host"
	"github.com/AnomalyFi/seq-wasm/modules/core/state"
)

// ClientState is the persisted scalar state of a header range bridge.
type ClientState struct {
	// LatestBlock is the height of the latest trusted header.
	LatestBlock uint64
	// ProofNonce is the nonce the next accepted header range is committed at.
	ProofNonce *uint256.Int
	// LatestAuthoritySetID is the newest authority set id a header range was
	// proven with. Only authority set bridges track it.
	LatestAuthoritySetID uint64
	ProgramVKeyHash      []byte
	ProgramVKey          []byte
}

// getClientState retrieves the client state from the bridge store.
func getClientState(s state.Store) *ClientState {
	return &ClientState{
		LatestBlock:          s.GetUint64(host.ScalarKey(KeyLatestBlock)),
		ProofNonce:           s.GetUint256(host.ScalarKey(KeyProofNonce)),
		LatestAuthoritySetID: s.GetUint64(host.ScalarKey(KeyLatestAuthoritySetID)),
		ProgramVKeyHash:      s.GetBytes(host.ScalarKey(KeyProgramVKeyHash)),
		ProgramVKey:          s.GetBytes(host.ScalarKey(KeyProgramVKey)),
	}
}

// setClientState stores the client state.
func setClientState(s state.Store, cs *ClientState) {
	s.SetUint64(host.ScalarKey(KeyLatestBlock), cs.LatestBlock)
	s.SetUint256(host.ScalarKey(KeyProofNonce), cs.ProofNonce)
	s.SetUint64(host.ScalarKey(KeyLatestAuthoritySetID), cs.LatestAuthoritySetID)
	s.SetBytes(host.ScalarKey(KeyProgramVKeyHash), cs.ProgramVKeyHash)
	s.SetBytes(host.ScalarKey(KeyProgramVKey), cs.ProgramVKey)
}

// GetHeaderHash returns the trusted header hash at height, or the zero
// digest if none is stored.
func GetHeaderHash(s state.Store, height uint64) [32]byte {
	return s.GetBytes32(host.Uint64MappingKey(KeyBlockHeightToHeaderHash, height))
}

func setHeaderHash(s state.Store, height uint64, header [32]byte) {
	s.SetBytes32(host.Uint64MappingKey(KeyBlockHeightToHeaderHash, height), header)
}

// GetAuthoritySetHash returns the hash of the authority set with the given id.
func GetAuthoritySetHash(s state.Store, id uint64) [32]byte {
	return s.GetBytes32(host.Uint64MappingKey(KeyAuthoritySetIDToHash, id))
}

func setAuthoritySetHash(s state.Store, id uint64, hash [32]byte) {
	s.SetBytes32(host.Uint64MappingKey(KeyAuthoritySetIDToHash, id), hash)
}

// GetDataCommitment returns the data commitment proven at nonce.
func GetDataCommitment(s state.Store, nonce *uint256.Int) [32]byte {
	return s.GetBytes32(host.Uint256MappingKey(KeyDataCommitments, nonce))
}

// GetStateRootCommitment returns the state root commitment proven at nonce.
func GetStateRootCommitment(s state.Store, nonce *uint256.Int) [32]byte {
	return s.GetBytes32(host.Uint256MappingKey(KeyStateRootCommitments, nonce))
}

// GetRange returns the blocks (start, end] covered by the commitments proven at nonce.
func GetRange(s state.Store, nonce *uint256.Int) (start, end uint64) {
	return s.GetUint64(host.Uint256MappingKey(KeyRangeStartBlocks, nonce)),
		s.GetUint64(host.Uint256MappingKey(KeyRangeEndBlocks, nonce))
}

// setCommitments stores the commitments of the header range (start, end]
// proven at nonce.
func setCommitments(s state.Store, p Params, nonce *uint256.Int, start, end uint64, out *HeaderRangeOutput) {
	s.SetBytes32(host.Uint256MappingKey(KeyDataCommitments, nonce), out.DataCommitment)
	if !p.tracksAuthoritySets() {
		return
	}
	s.SetBytes32(host.Uint256MappingKey(KeyStateRootCommitments, nonce), out.StateRootCommitment)
	s.SetUint64(host.Uint256MappingKey(KeyRangeStartBlocks, nonce), start)
	s.SetUint64(host.Uint256MappingKey(KeyRangeEndBlocks, nonce), end)
}
