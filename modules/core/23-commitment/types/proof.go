package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/holiman/uint256"

	errorsmod "cosmossdk.io/errors"

	"github.com/AnomalyFi/seq-wasm/internal/abicodec"
)

var (
	// DataRootTupleComponents is the ABI layout of a DataRootTuple.
	DataRootTupleComponents = []abi.ArgumentMarshaling{
		{Name: "height", Type: "uint256"},
		{Name: "dataRoot", Type: "bytes32"},
	}

	// BinaryMerkleProofComponents is the ABI layout of a BinaryMerkleProof.
	BinaryMerkleProofComponents = []abi.ArgumentMarshaling{
		{Name: "sideNodes", Type: "bytes32[]"},
		{Name: "key", Type: "uint256"},
		{Name: "numLeaves", Type: "uint256"},
	}

	dataRootTupleType, _ = abi.NewType("tuple", "", DataRootTupleComponents)
	dataRootTupleArgs    = abi.Arguments{{Name: "tuple", Type: dataRootTupleType}}

	attestationProofType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "tupleRootNonce", Type: "uint256"},
		{Name: "tuple", Type: "tuple", Components: DataRootTupleComponents},
		{Name: "proof", Type: "tuple", Components: BinaryMerkleProofComponents},
	})
	attestationProofArgs = abi.Arguments{{Name: "inputs", Type: attestationProofType}}
)

// BinaryMerkleProof is a sibling path proving the inclusion of one leaf in a
// binary Merkle tree. SideNodes are ordered from the leaf towards the root.
type BinaryMerkleProof struct {
	SideNodes [][32]byte
	Key       *uint256.Int
	NumLeaves *uint256.Int
}

// NewBinaryMerkleProof creates a new BinaryMerkleProof instance
func NewBinaryMerkleProof(sideNodes [][32]byte, key, numLeaves uint64) BinaryMerkleProof {
	return BinaryMerkleProof{
		SideNodes: sideNodes,
		Key:       uint256.NewInt(key),
		NumLeaves: uint256.NewInt(numLeaves),
	}
}

// ValidateBasic checks that the proof carries a key and a leaf count.
func (p BinaryMerkleProof) ValidateBasic() error {
	if p.Key == nil {
		return errorsmod.Wrap(ErrInvalidProof, "key cannot be nil")
	}
	if p.NumLeaves == nil {
		return errorsmod.Wrap(ErrInvalidProof, "number of leaves cannot be nil")
	}
	return nil
}

// VerifyMembership verifies that data is the leaf at p.Key of the tree
// committed to by root. Checks run in a fixed order and the first failing one
// is returned.
func (p BinaryMerkleProof) VerifyMembership(root [32]byte, data []byte) error {
	if err := p.ValidateBasic(); err != nil {
		return err
	}

	sideNodes := p.SideNodes
	if p.NumLeaves.LtUint64(2) {
		switch {
		case len(sideNodes) == 0:
		case len(sideNodes) == 1 && sideNodes[0] == [32]byte{}:
			// older provers emit a single zero side node for single leaf trees
			sideNodes = nil
		default:
			return errorsmod.Wrapf(ErrInvalidSideNodes, "tree of %s leaves takes no side nodes, got %d", p.NumLeaves, len(sideNodes))
		}
	}

	if pathLength := PathLengthFromKey(p.Key, p.NumLeaves); uint64(len(sideNodes)) != pathLength {
		return errorsmod.Wrapf(ErrInvalidSideNodes, "expected %d side nodes, got %d", pathLength, len(sideNodes))
	}

	if !p.Key.Lt(p.NumLeaves) {
		return errorsmod.Wrapf(ErrInvalidKey, "key %s is out of range for %s leaves", p.Key, p.NumLeaves)
	}

	leafHash := LeafDigest(data)

	if len(sideNodes) == 0 {
		if !p.NumLeaves.Eq(one) || leafHash != root {
			return errorsmod.Wrapf(ErrRootMismatch, "expected %x, got %x", root, leafHash)
		}
		return nil
	}

	computed, err := ComputeRootHash(p.Key, p.NumLeaves, leafHash, sideNodes)
	if err != nil {
		return err
	}
	if computed != root {
		return errorsmod.Wrapf(ErrRootMismatch, "expected %x, got %x", root, computed)
	}
	return nil
}

// VerifyBinaryMerkleProof reports whether proof proves data against root.
func VerifyBinaryMerkleProof(root [32]byte, proof BinaryMerkleProof, data []byte) bool {
	return proof.VerifyMembership(root, data) == nil
}

// DataRootTuple is the leaf committed to by a data root tuple root: the data
// root of one block together with its height.
type DataRootTuple struct {
	Height   *uint256.Int
	DataRoot [32]byte
}

// NewDataRootTuple creates a new DataRootTuple instance
func NewDataRootTuple(height uint64, dataRoot [32]byte) DataRootTuple {
	return DataRootTuple{
		Height:   uint256.NewInt(height),
		DataRoot: dataRoot,
	}
}

type abiDataRootTuple struct {
	Height   *big.Int
	DataRoot [32]byte
}

type abiBinaryMerkleProof struct {
	SideNodes [][32]byte
	Key       *big.Int
	NumLeaves *big.Int
}

type abiAttestationProof struct {
	TupleRootNonce *big.Int
	Tuple          abiDataRootTuple
	Proof          abiBinaryMerkleProof
}

// ABIEncode returns abi.encode(tuple), the leaf payload of the tuple.
func (t DataRootTuple) ABIEncode() ([]byte, error) {
	if t.Height == nil {
		return nil, errorsmod.Wrap(ErrInvalidAttestation, "height cannot be nil")
	}
	return dataRootTupleArgs.Pack(abiDataRootTuple{
		Height:   t.Height.ToBig(),
		DataRoot: t.DataRoot,
	})
}

// AttestationProof proves that a DataRootTuple is included in the data root
// tuple root (or data commitment) committed under TupleRootNonce.
type AttestationProof struct {
	TupleRootNonce *uint256.Int
	Tuple          DataRootTuple
	Proof          BinaryMerkleProof
}

// ValidateBasic performs basic validation of the attestation proof fields.
func (ap AttestationProof) ValidateBasic() error {
	if ap.TupleRootNonce == nil {
		return errorsmod.Wrap(ErrInvalidAttestation, "tuple root nonce cannot be nil")
	}
	if ap.Tuple.Height == nil {
		return errorsmod.Wrap(ErrInvalidAttestation, "tuple height cannot be nil")
	}
	return ap.Proof.ValidateBasic()
}

// Verify checks the inclusion of ap.Tuple in root.
func (ap AttestationProof) Verify(root [32]byte) error {
	leaf, err := ap.Tuple.ABIEncode()
	if err != nil {
		return err
	}
	return ap.Proof.VerifyMembership(root, leaf)
}

func (ap AttestationProof) ABIEncode() ([]byte, error) {
	if err := ap.ValidateBasic(); err != nil {
		return nil, err
	}
	return attestationProofArgs.Pack(abiAttestationProof{
		TupleRootNonce: ap.TupleRootNonce.ToBig(),
		Tuple: abiDataRootTuple{
			Height:   ap.Tuple.Height.ToBig(),
			DataRoot: ap.Tuple.DataRoot,
		},
		Proof: abiBinaryMerkleProof{
			SideNodes: ap.Proof.SideNodes,
			Key:       ap.Proof.Key.ToBig(),
			NumLeaves: ap.Proof.NumLeaves.ToBig(),
		},
	})
}

// ABIDecodeAttestationProof decodes abi.encode((uint256,(uint256,bytes32),(bytes32[],uint256,uint256))).
func ABIDecodeAttestationProof(data []byte) (*AttestationProof, error) {
	in, err := abicodec.UnpackTuple[abiAttestationProof](attestationProofArgs, data)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAttestation, "failed to ABI decode attestation proof: %v", err)
	}

	ap := &AttestationProof{
		TupleRootNonce: uint256.MustFromBig(in.TupleRootNonce),
		Tuple: DataRootTuple{
			Height:   uint256.MustFromBig(in.Tuple.Height),
			DataRoot: in.Tuple.DataRoot,
		},
		Proof: BinaryMerkleProof{
			SideNodes: in.Proof.SideNodes,
			Key:       uint256.MustFromBig(in.Proof.Key),
			NumLeaves: uint256.MustFromBig(in.Proof.NumLeaves),
		},
	}

	if err := ap.ValidateBasic(); err != nil {
		return nil, err
	}
	return ap, nil
}
