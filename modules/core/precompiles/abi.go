package precompiles

import (
	"github.com/ethereum/go-ethereum/accounts/abi"

	errorsmod "cosmossdk.io/errors"

	"github.com/AnomalyFi/seq-wasm/internal/abicodec"
)

var (
	gnarkInputsType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "programVKeyHash", Type: "bytes"},
		{Name: "publicValues", Type: "bytes"},
		{Name: "proofBytes", Type: "bytes"},
		{Name: "programVKey", Type: "bytes"},
	})
	gnarkInputsArgs = abi.Arguments{{Name: "inputs", Type: gnarkInputsType}}
)

// GnarkPrecompileInputs is the argument of the proof verification precompile.
// ProofBytes carries the hex encoding of a serialized PLONK proof and
// ProgramVKeyHash the 0x-prefixed hex string of the program verifying key hash.
type GnarkPrecompileInputs struct {
	ProgramVKeyHash []byte
	PublicValues    []byte
	ProofBytes      []byte
	ProgramVKey     []byte
}

// ABIEncode returns abi.encode(inputs) as the host passes it to the precompile.
func (in GnarkPrecompileInputs) ABIEncode() ([]byte, error) {
	bz, err := gnarkInputsArgs.Pack(in)
	if err != nil {
		return nil, errorsmod.Wrap(ErrInvalidInput, err.Error())
	}
	return bz, nil
}

// ABIDecodeGnarkPrecompileInputs decodes the precompile argument encoded by ABIEncode.
func ABIDecodeGnarkPrecompileInputs(bz []byte) (GnarkPrecompileInputs, error) {
	in, err := abicodec.UnpackTuple[GnarkPrecompileInputs](gnarkInputsArgs, bz)
	if err != nil {
		return GnarkPrecompileInputs{}, errorsmod.Wrap(ErrInvalidInput, err.Error())
	}
	return *in, nil
}
