package headerrange

import (
	"github.com/ethereum/go-ethereum/accounts/abi"

	errorsmod "cosmossdk.io/errors"

	"github.com/AnomalyFi/seq-wasm/internal/abicodec"
)

var (
	initializerType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "height", Type: "uint64"},
		{Name: "header", Type: "bytes32"},
		{Name: "authoritySetId", Type: "uint64"},
		{Name: "authoritySetHash", Type: "bytes32"},
		{Name: "programVKeyHash", Type: "bytes"},
		{Name: "programVKey", Type: "bytes"},
	})
	initializerArgs = abi.Arguments{{Name: "inputs", Type: initializerType}}

	commitHeaderRangeType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "authoritySetId", Type: "uint64"},
		{Name: "targetBlock", Type: "uint64"},
		{Name: "input", Type: "bytes"},
		{Name: "output", Type: "bytes"},
		{Name: "proof", Type: "bytes"},
	})
	commitHeaderRangeArgs = abi.Arguments{{Name: "inputs", Type: commitHeaderRangeType}}

	rotateType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "currentAuthoritySetId", Type: "uint64"},
		{Name: "input", Type: "bytes"},
		{Name: "output", Type: "bytes"},
		{Name: "proof", Type: "bytes"},
	})
	rotateArgs = abi.Arguments{{Name: "inputs", Type: rotateType}}

	updateGenesisStateType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "height", Type: "uint64"},
		{Name: "header", Type: "bytes32"},
		{Name: "authoritySetId", Type: "uint64"},
		{Name: "authoritySetHash", Type: "bytes32"},
	})
	updateGenesisStateArgs = abi.Arguments{{Name: "inputs", Type: updateGenesisStateType}}

	updateProgramVkeyType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "programVKeyHash", Type: "bytes"},
		{Name: "programVKey", Type: "bytes"},
	})
	updateProgramVkeyArgs = abi.Arguments{{Name: "inputs", Type: updateProgramVkeyType}}
)

// InitializerInput is the argument of the initializer entry point. The
// authority set fields are ignored by data commitment bridges.
type InitializerInput struct {
	Height           uint64
	Header           [32]byte
	AuthoritySetID   uint64 `abi:"authoritySetId"`
	AuthoritySetHash [32]byte
	ProgramVKeyHash  []byte
	ProgramVKey      []byte
}

// CommitHeaderRangeInput is the argument of the commit_header_range entry
// point. Input and Output are the public values of Proof.
type CommitHeaderRangeInput struct {
	AuthoritySetID uint64 `abi:"authoritySetId"`
	TargetBlock    uint64
	Input          []byte
	Output         []byte
	Proof          []byte
}

// RotateInput is the argument of the rotate entry point.
type RotateInput struct {
	CurrentAuthoritySetID uint64 `abi:"currentAuthoritySetId"`
	Input                 []byte
	Output                []byte
	Proof                 []byte
}

// UpdateGenesisStateInput is the argument of the update_genesis_state entry point.
type UpdateGenesisStateInput struct {
	Height           uint64
	Header           [32]byte
	AuthoritySetID   uint64 `abi:"authoritySetId"`
	AuthoritySetHash [32]byte
}

// UpdateProgramVkeyInput is the argument of the update_program_vkey entry point.
type UpdateProgramVkeyInput struct {
	ProgramVKeyHash []byte
	ProgramVKey     []byte
}

func (in InitializerInput) ABIEncode() ([]byte, error) {
	return initializerArgs.Pack(in)
}

func (in CommitHeaderRangeInput) ABIEncode() ([]byte, error) {
	return commitHeaderRangeArgs.Pack(in)
}

func (in RotateInput) ABIEncode() ([]byte, error) {
	return rotateArgs.Pack(in)
}

func (in UpdateGenesisStateInput) ABIEncode() ([]byte, error) {
	return updateGenesisStateArgs.Pack(in)
}

func (in UpdateProgramVkeyInput) ABIEncode() ([]byte, error) {
	return updateProgramVkeyArgs.Pack(in)
}

func ABIDecodeInitializerInput(data []byte) (*InitializerInput, error) {
	return decodeTuple[InitializerInput](initializerArgs, data)
}

func ABIDecodeCommitHeaderRangeInput(data []byte) (*CommitHeaderRangeInput, error) {
	return decodeTuple[CommitHeaderRangeInput](commitHeaderRangeArgs, data)
}

func ABIDecodeRotateInput(data []byte) (*RotateInput, error) {
	return decodeTuple[RotateInput](rotateArgs, data)
}

func ABIDecodeUpdateGenesisStateInput(data []byte) (*UpdateGenesisStateInput, error) {
	return decodeTuple[UpdateGenesisStateInput](updateGenesisStateArgs, data)
}

func ABIDecodeUpdateProgramVkeyInput(data []byte) (*UpdateProgramVkeyInput, error) {
	return decodeTuple[UpdateProgramVkeyInput](updateProgramVkeyArgs, data)
}

func decodeTuple[T any](args abi.Arguments, data []byte) (*T, error) {
	out, err := abicodec.UnpackTuple[T](args, data)
	if err != nil {
		return nil, errorsmod.Wrap(ErrInvalidHeaderRangeData, err.Error())
	}
	return out, nil
}
