package seqtesting

import (
	"github.com/cometbft/cometbft/crypto/merkle"

	commitmenttypes "github.com/AnomalyFi/seq-wasm/modules/core/23-commitment/types"
)

// BuildBinaryMerkleTree builds the RFC 6962 tree over leaves and returns its
// root together with one proof per leaf.
func BuildBinaryMerkleTree(leaves [][]byte) ([32]byte, []commitmenttypes.BinaryMerkleProof) {
	rootHash, tmProofs := merkle.ProofsFromByteSlices(leaves)

	var root [32]byte
	copy(root[:], rootHash)

	proofs := make([]commitmenttypes.BinaryMerkleProof, len(tmProofs))
	for i, p := range tmProofs {
		proofs[i] = ProofFromAunts(p)
	}
	return root, proofs
}

// ProofFromAunts converts a cometbft merkle proof into a BinaryMerkleProof.
// Aunts are already ordered from the leaf towards the root.
func ProofFromAunts(p *merkle.Proof) commitmenttypes.BinaryMerkleProof {
	sideNodes := make([][32]byte, len(p.Aunts))
	for i, aunt := range p.Aunts {
		copy(sideNodes[i][:], aunt)
	}
	return commitmenttypes.NewBinaryMerkleProof(sideNodes, uint64(p.Index), uint64(p.Total))
}

// BuildDataRootTupleRoot ABI encodes tuples and commits to them in a tree.
func BuildDataRootTupleRoot(tuples []commitmenttypes.DataRootTuple) ([32]byte, []commitmenttypes.BinaryMerkleProof, error) {
	leaves := make([][]byte, len(tuples))
	for i, tuple := range tuples {
		leaf, err := tuple.ABIEncode()
		if err != nil {
			return [32]byte{}, nil, err
		}
		leaves[i] = leaf
	}

	root, proofs := BuildBinaryMerkleTree(leaves)
	return root, proofs, nil
}
