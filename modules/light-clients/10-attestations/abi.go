package attestations

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/holiman/uint256"

	errorsmod "cosmossdk.io/errors"

	"github.com/AnomalyFi/seq-wasm/internal/abicodec"
)

var (
	// SignatureComponents is the ABI layout of a Signature.
	SignatureComponents = []abi.ArgumentMarshaling{
		{Name: "v", Type: "uint8"},
		{Name: "r", Type: "bytes32"},
		{Name: "s", Type: "bytes32"},
	}

	initializerType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "nonce", Type: "uint256"},
		{Name: "powerThreshold", Type: "uint256"},
		{Name: "validatorSetCheckpoint", Type: "bytes32"},
	})
	initializerArgs = abi.Arguments{{Name: "inputs", Type: initializerType}}

	updateValidatorSetType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "newNonce", Type: "uint256"},
		{Name: "oldNonce", Type: "uint256"},
		{Name: "newPowerThreshold", Type: "uint256"},
		{Name: "newValidatorSetHash", Type: "bytes32"},
		{Name: "currentValidators", Type: "tuple[]", Components: ValidatorComponents},
		{Name: "signatures", Type: "tuple[]", Components: SignatureComponents},
	})
	updateValidatorSetArgs = abi.Arguments{{Name: "inputs", Type: updateValidatorSetType}}

	submitDataRootTupleRootType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "newNonce", Type: "uint256"},
		{Name: "validatorSetNonce", Type: "uint256"},
		{Name: "dataRootTupleRoot", Type: "bytes32"},
		{Name: "currentValidators", Type: "tuple[]", Components: ValidatorComponents},
		{Name: "signatures", Type: "tuple[]", Components: SignatureComponents},
	})
	submitDataRootTupleRootArgs = abi.Arguments{{Name: "inputs", Type: submitDataRootTupleRootType}}
)

// InitializerInput is the argument of the initializer entry point.
type InitializerInput struct {
	Nonce                  *uint256.Int
	PowerThreshold         *uint256.Int
	ValidatorSetCheckpoint [32]byte
}

// UpdateValidatorSetInput is the argument of the update_validator_set entry point.
type UpdateValidatorSetInput struct {
	NewNonce            *uint256.Int
	OldNonce            *uint256.Int
	NewPowerThreshold   *uint256.Int
	NewValidatorSetHash [32]byte
	CurrentValidators   []Validator
	Signatures          []Signature
}

// SubmitDataRootTupleRootInput is the argument of the
// submit_data_root_tuple_root entry point.
type SubmitDataRootTupleRootInput struct {
	NewNonce          *uint256.Int
	ValidatorSetNonce *uint256.Int
	DataRootTupleRoot [32]byte
	CurrentValidators []Validator
	Signatures        []Signature
}

// The abi* types mirror the inputs with the field types go-ethereum decodes
// into. Field order follows the ABI component order.
type (
	abiInitializerInput struct {
		Nonce                  *big.Int
		PowerThreshold         *big.Int
		ValidatorSetCheckpoint [32]byte
	}

	abiUpdateValidatorSetInput struct {
		NewNonce            *big.Int
		OldNonce            *big.Int
		NewPowerThreshold   *big.Int
		NewValidatorSetHash [32]byte
		CurrentValidators   []abiValidator
		Signatures          []Signature
	}

	abiSubmitDataRootTupleRootInput struct {
		NewNonce          *big.Int
		ValidatorSetNonce *big.Int
		DataRootTupleRoot [32]byte
		CurrentValidators []abiValidator
		Signatures        []Signature
	}
)

func (in InitializerInput) ABIEncode() ([]byte, error) {
	return initializerArgs.Pack(abiInitializerInput{
		Nonce:                  in.Nonce.ToBig(),
		PowerThreshold:         in.PowerThreshold.ToBig(),
		ValidatorSetCheckpoint: in.ValidatorSetCheckpoint,
	})
}

func ABIDecodeInitializerInput(data []byte) (*InitializerInput, error) {
	decoded, err := abicodec.UnpackTuple[abiInitializerInput](initializerArgs, data)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAttestationData, "failed to ABI decode initializer input: %v", err)
	}

	return &InitializerInput{
		Nonce:                  uint256.MustFromBig(decoded.Nonce),
		PowerThreshold:         uint256.MustFromBig(decoded.PowerThreshold),
		ValidatorSetCheckpoint: decoded.ValidatorSetCheckpoint,
	}, nil
}

func (in UpdateValidatorSetInput) ABIEncode() ([]byte, error) {
	vals, err := toABIValidators(in.CurrentValidators)
	if err != nil {
		return nil, err
	}
	return updateValidatorSetArgs.Pack(abiUpdateValidatorSetInput{
		NewNonce:            in.NewNonce.ToBig(),
		OldNonce:            in.OldNonce.ToBig(),
		NewPowerThreshold:   in.NewPowerThreshold.ToBig(),
		NewValidatorSetHash: in.NewValidatorSetHash,
		CurrentValidators:   vals,
		Signatures:          in.Signatures,
	})
}

func ABIDecodeUpdateValidatorSetInput(data []byte) (*UpdateValidatorSetInput, error) {
	decoded, err := abicodec.UnpackTuple[abiUpdateValidatorSetInput](updateValidatorSetArgs, data)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAttestationData, "failed to ABI decode update validator set input: %v", err)
	}

	return &UpdateValidatorSetInput{
		NewNonce:            uint256.MustFromBig(decoded.NewNonce),
		OldNonce:            uint256.MustFromBig(decoded.OldNonce),
		NewPowerThreshold:   uint256.MustFromBig(decoded.NewPowerThreshold),
		NewValidatorSetHash: decoded.NewValidatorSetHash,
		CurrentValidators:   fromABIValidators(decoded.CurrentValidators),
		Signatures:          decoded.Signatures,
	}, nil
}

func (in SubmitDataRootTupleRootInput) ABIEncode() ([]byte, error) {
	vals, err := toABIValidators(in.CurrentValidators)
	if err != nil {
		return nil, err
	}
	return submitDataRootTupleRootArgs.Pack(abiSubmitDataRootTupleRootInput{
		NewNonce:          in.NewNonce.ToBig(),
		ValidatorSetNonce: in.ValidatorSetNonce.ToBig(),
		DataRootTupleRoot: in.DataRootTupleRoot,
		CurrentValidators: vals,
		Signatures:        in.Signatures,
	})
}

func ABIDecodeSubmitDataRootTupleRootInput(data []byte) (*SubmitDataRootTupleRootInput, error) {
	decoded, err := abicodec.UnpackTuple[abiSubmitDataRootTupleRootInput](submitDataRootTupleRootArgs, data)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAttestationData, "failed to ABI decode submit data root tuple root input: %v", err)
	}

	return &SubmitDataRootTupleRootInput{
		NewNonce:          uint256.MustFromBig(decoded.NewNonce),
		ValidatorSetNonce: uint256.MustFromBig(decoded.ValidatorSetNonce),
		DataRootTupleRoot: decoded.DataRootTupleRoot,
		CurrentValidators: fromABIValidators(decoded.CurrentValidators),
		Signatures:        decoded.Signatures,
	}, nil
}
