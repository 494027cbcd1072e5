package headerrange

import (
	"encoding/binary"
	"math"

	"github.com/ethereum/go-ethereum/accounts/abi"

	errorsmod "cosmossdk.io/errors"
)

var (
	bytes32Type, _ = abi.NewType("bytes32", "", nil)

	dataCommitmentOutputArgs = abi.Arguments{
		{Name: "targetHeader", Type: bytes32Type},
		{Name: "dataCommitment", Type: bytes32Type},
	}

	authoritySetOutputArgs = abi.Arguments{
		{Name: "targetHeaderHash", Type: bytes32Type},
		{Name: "stateRootCommitment", Type: bytes32Type},
		{Name: "dataRootCommitment", Type: bytes32Type},
	}

	rotateOutputArgs = abi.Arguments{
		{Name: "nextAuthoritySetHash", Type: bytes32Type},
	}
)

// HeaderRangeInput is the trusted state a header range proof starts from.
type HeaderRangeInput struct {
	LatestBlock      uint64
	TrustedHeader    [32]byte
	AuthoritySetID   uint64
	AuthoritySetHash [32]byte
	TargetBlock      uint64
}

// HeaderRangeOutput holds the commitments proven by a header range proof.
// StateRootCommitment is only set by authority set proofs.
type HeaderRangeOutput struct {
	TargetHeaderHash    [32]byte
	StateRootCommitment [32]byte
	DataCommitment      [32]byte
}

// EncodePacked returns the packed encoding of the proof input of the given
// variant:
//
//	data-commitment: abi.encodePacked(uint64 latestBlock, bytes32 trustedHeader, uint64 targetBlock)
//	authority-set:   abi.encodePacked(uint32 latestBlock, bytes32 trustedHeader, uint64 authoritySetId, bytes32 authoritySetHash, uint32 targetBlock)
func (in HeaderRangeInput) EncodePacked(variant Variant) ([]byte, error) {
	switch variant {
	case VariantDataCommitment:
		bz := make([]byte, 0, 48)
		bz = binary.BigEndian.AppendUint64(bz, in.LatestBlock)
		bz = append(bz, in.TrustedHeader[:]...)
		return binary.BigEndian.AppendUint64(bz, in.TargetBlock), nil
	case VariantAuthoritySet:
		if in.LatestBlock > math.MaxUint32 || in.TargetBlock > math.MaxUint32 {
			return nil, errorsmod.Wrapf(ErrInvalidTargetBlock, "blocks %d and %d must fit in 32 bits", in.LatestBlock, in.TargetBlock)
		}
		bz := make([]byte, 0, 80)
		bz = binary.BigEndian.AppendUint32(bz, uint32(in.LatestBlock))
		bz = append(bz, in.TrustedHeader[:]...)
		bz = binary.BigEndian.AppendUint64(bz, in.AuthoritySetID)
		bz = append(bz, in.AuthoritySetHash[:]...)
		return binary.BigEndian.AppendUint32(bz, uint32(in.TargetBlock)), nil
	default:
		return nil, errorsmod.Wrapf(ErrUnsupportedVariant, "variant %q", variant)
	}
}

// Encode returns the ABI encoding of the output of the given variant.
func (out HeaderRangeOutput) Encode(variant Variant) ([]byte, error) {
	switch variant {
	case VariantDataCommitment:
		return dataCommitmentOutputArgs.Pack(out.TargetHeaderHash, out.DataCommitment)
	case VariantAuthoritySet:
		return authoritySetOutputArgs.Pack(out.TargetHeaderHash, out.StateRootCommitment, out.DataCommitment)
	default:
		return nil, errorsmod.Wrapf(ErrUnsupportedVariant, "variant %q", variant)
	}
}

// DecodeHeaderRangeOutput decodes the ABI encoded output of a header range
// proof of the given variant.
func DecodeHeaderRangeOutput(variant Variant, bz []byte) (*HeaderRangeOutput, error) {
	switch variant {
	case VariantDataCommitment:
		words, err := unpackWords(dataCommitmentOutputArgs, bz)
		if err != nil {
			return nil, err
		}
		return &HeaderRangeOutput{TargetHeaderHash: words[0], DataCommitment: words[1]}, nil
	case VariantAuthoritySet:
		words, err := unpackWords(authoritySetOutputArgs, bz)
		if err != nil {
			return nil, err
		}
		return &HeaderRangeOutput{TargetHeaderHash: words[0], StateRootCommitment: words[1], DataCommitment: words[2]}, nil
	default:
		return nil, errorsmod.Wrapf(ErrUnsupportedVariant, "variant %q", variant)
	}
}

// EncodeRotateInput returns abi.encodePacked(uint64 currentAuthoritySetId, bytes32 currentAuthoritySetHash).
func EncodeRotateInput(currentAuthoritySetID uint64, currentAuthoritySetHash [32]byte) []byte {
	bz := binary.BigEndian.AppendUint64(make([]byte, 0, 40), currentAuthoritySetID)
	return append(bz, currentAuthoritySetHash[:]...)
}

// EncodeRotateOutput returns abi.encode(bytes32 nextAuthoritySetHash).
func EncodeRotateOutput(nextAuthoritySetHash [32]byte) ([]byte, error) {
	return rotateOutputArgs.Pack(nextAuthoritySetHash)
}

// DecodeRotateOutput decodes abi.encode(bytes32 nextAuthoritySetHash).
func DecodeRotateOutput(bz []byte) ([32]byte, error) {
	words, err := unpackWords(rotateOutputArgs, bz)
	if err != nil {
		return [32]byte{}, err
	}
	return words[0], nil
}

// PublicValues returns the public values a proof commits to: the packed
// input followed by the encoded output.
func PublicValues(input, output []byte) []byte {
	publicValues := make([]byte, 0, len(input)+len(output))
	publicValues = append(publicValues, input...)
	return append(publicValues, output...)
}

// unpackWords decodes bz, which must hold exactly len(args) bytes32 words.
func unpackWords(args abi.Arguments, bz []byte) ([][32]byte, error) {
	if len(bz) != 32*len(args) {
		return nil, errorsmod.Wrapf(ErrInvalidOutput, "expected %d bytes, got %d", 32*len(args), len(bz))
	}
	unpacked, err := args.Unpack(bz)
	if err != nil {
		return nil, errorsmod.Wrap(ErrInvalidOutput, err.Error())
	}

	words := make([][32]byte, len(unpacked))
	for i, v := range unpacked {
		word, ok := v.([32]byte)
		if !ok {
			return nil, errorsmod.Wrapf(ErrInvalidOutput, "unexpected type %T", v)
		}
		words[i] = word
	}
	return words, nil
}
