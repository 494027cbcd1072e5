package types

import (
	"crypto/sha256"

	"github.com/holiman/uint256"

	errorsmod "cosmossdk.io/errors"
)

// maxHeight is the height of the tallest tree whose leaf count fits in 256 bits.
const maxHeight = 256

var (
	leafPrefix = []byte{0x00}
	nodePrefix = []byte{0x01}

	one = uint256.NewInt(1)
)

// LeafDigest returns SHA-256(0x00 || data).
func LeafDigest(data []byte) [32]byte {
	var digest [32]byte
	h := sha256.New()
	h.Write(leafPrefix)
	h.Write(data)
	h.Sum(digest[:0])
	return digest
}

// NodeDigest returns SHA-256(0x01 || left || right).
func NodeDigest(left, right [32]byte) [32]byte {
	var digest [32]byte
	h := sha256.New()
	h.Write(nodePrefix)
	h.Write(left[:])
	h.Write(right[:])
	h.Sum(digest[:0])
	return digest
}

// PathLengthFromKey returns the number of side nodes a proof for the leaf at
// key must carry in a tree of numLeaves leaves.
func PathLengthFromKey(key, numLeaves *uint256.Int) uint64 {
	if numLeaves.LtUint64(2) {
		return 0
	}

	pathLength := uint64(maxHeight - getStartingBit(numLeaves))
	numLeavesLeftSubTree := new(uint256.Int).Lsh(one, uint(pathLength-1))

	switch {
	case key.Lt(numLeavesLeftSubTree):
		return pathLength
	case numLeavesLeftSubTree.Eq(one):
		return 1
	default:
		return 1 + PathLengthFromKey(
			new(uint256.Int).Sub(key, numLeavesLeftSubTree),
			new(uint256.Int).Sub(numLeaves, numLeavesLeftSubTree),
		)
	}
}

// getStartingBit returns 256 minus the smallest exponent e with 2^e >= numLeaves.
func getStartingBit(numLeaves *uint256.Int) int {
	if numLeaves.LtUint64(2) {
		return maxHeight
	}
	return maxHeight - new(uint256.Int).SubUint64(numLeaves, 1).BitLen()
}

// GetSplitPoint returns the largest power of two strictly less than x.
func GetSplitPoint(x *uint256.Int) (*uint256.Int, error) {
	if x.IsZero() {
		return nil, errorsmod.Wrap(ErrInvalidNumLeaves, "cannot split an empty tree")
	}

	k := new(uint256.Int).Lsh(one, uint(x.BitLen()-1))
	if k.Eq(x) {
		k.Rsh(k, 1)
	}
	return k, nil
}

// ComputeRootHash rebuilds the root of a tree of numLeaves leaves from the hash
// of the leaf at key and its side nodes, ordered from the leaf upwards.
func ComputeRootHash(key, numLeaves *uint256.Int, leafHash [32]byte, sideNodes [][32]byte) ([32]byte, error) {
	switch {
	case numLeaves.IsZero():
		return [32]byte{}, errorsmod.Wrap(ErrInvalidNumLeaves, "cannot compute the root of an empty tree")
	case numLeaves.Eq(one):
		if len(sideNodes) != 0 {
			return [32]byte{}, errorsmod.Wrapf(ErrInvalidSideNodes, "%d side nodes left unconsumed", len(sideNodes))
		}
		return leafHash, nil
	case len(sideNodes) == 0:
		return [32]byte{}, errorsmod.Wrapf(ErrInvalidSideNodes, "ran out of side nodes with %s leaves left", numLeaves)
	}

	numLeft, err := GetSplitPoint(numLeaves)
	if err != nil {
		return [32]byte{}, err
	}

	sibling := sideNodes[len(sideNodes)-1]
	remaining := sideNodes[:len(sideNodes)-1]

	if key.Lt(numLeft) {
		leftHash, err := ComputeRootHash(key, numLeft, leafHash, remaining)
		if err != nil {
			return [32]byte{}, err
		}
		return NodeDigest(leftHash, sibling), nil
	}

	rightHash, err := ComputeRootHash(
		new(uint256.Int).Sub(key, numLeft),
		new(uint256.Int).Sub(numLeaves, numLeft),
		leafHash,
		remaining,
	)
	if err != nil {
		return [32]byte{}, err
	}
	return NodeDigest(sibling, rightHash), nil
}
