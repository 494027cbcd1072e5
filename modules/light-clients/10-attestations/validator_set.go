package attestations

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	errorsmod "cosmossdk.io/errors"
)

var (
	// ValidatorSetDomainSeparator is "checkpoint" right-padded with zeros to 32 bytes.
	ValidatorSetDomainSeparator = domainSeparator("checkpoint")

	// DataRootTupleRootDomainSeparator is "transactionBatch" right-padded with zeros to 32 bytes.
	DataRootTupleRootDomainSeparator = domainSeparator("transactionBatch")
)

var (
	// ValidatorComponents is the ABI layout of a Validator.
	ValidatorComponents = []abi.ArgumentMarshaling{
		{Name: "addr", Type: "address"},
		{Name: "power", Type: "uint256"},
	}

	validatorArrayType, _ = abi.NewType("tuple[]", "", ValidatorComponents)
	validatorSetArgs      = abi.Arguments{{Name: "validators", Type: validatorArrayType}}

	bytes32Type, _ = abi.NewType("bytes32", "", nil)
	uint256Type, _ = abi.NewType("uint256", "", nil)

	checkpointArgs = abi.Arguments{
		{Name: "domainSeparator", Type: bytes32Type},
		{Name: "nonce", Type: uint256Type},
		{Name: "powerThreshold", Type: uint256Type},
		{Name: "validatorSetHash", Type: bytes32Type},
	}

	dataRootTupleRootArgs = abi.Arguments{
		{Name: "domainSeparator", Type: bytes32Type},
		{Name: "nonce", Type: uint256Type},
		{Name: "dataRootTupleRoot", Type: bytes32Type},
	}
)

// Validator is a member of the attesting validator set.
type Validator struct {
	Addr  common.Address
	Power *uint256.Int
}

// NewValidator creates a new Validator instance
func NewValidator(addr common.Address, power uint64) Validator {
	return Validator{Addr: addr, Power: uint256.NewInt(power)}
}

// abiValidator is the go-ethereum ABI form of a Validator.
type abiValidator struct {
	Addr  common.Address
	Power *big.Int
}

func toABIValidators(vals []Validator) ([]abiValidator, error) {
	abiVals := make([]abiValidator, len(vals))
	for i, val := range vals {
		if val.Power == nil {
			return nil, errorsmod.Wrapf(ErrMalformedCurrentValidators, "validator %d has no power", i)
		}
		abiVals[i] = abiValidator{Addr: val.Addr, Power: val.Power.ToBig()}
	}
	return abiVals, nil
}

func fromABIValidators(abiVals []abiValidator) []Validator {
	vals := make([]Validator, len(abiVals))
	for i, val := range abiVals {
		vals[i] = Validator{Addr: val.Addr, Power: uint256.MustFromBig(val.Power)}
	}
	return vals
}

// ComputeValidatorSetHash returns keccak256(abi.encode(vals)). The hash
// depends on the order of vals.
func ComputeValidatorSetHash(vals []Validator) ([32]byte, error) {
	abiVals, err := toABIValidators(vals)
	if err != nil {
		return [32]byte{}, err
	}

	bz, err := validatorSetArgs.Pack(abiVals)
	if err != nil {
		return [32]byte{}, errorsmod.Wrap(ErrMalformedCurrentValidators, err.Error())
	}
	return crypto.Keccak256Hash(bz), nil
}

// CheckpointHash returns
// keccak256(abi.encode(domainSeparator, nonce, powerThreshold, hash)).
func CheckpointHash(domainSeparator [32]byte, nonce, powerThreshold *uint256.Int, hash [32]byte) [32]byte {
	bz, err := checkpointArgs.Pack(domainSeparator, nonce.ToBig(), powerThreshold.ToBig(), hash)
	if err != nil {
		// static arguments of the declared types always pack
		panic(err)
	}
	return crypto.Keccak256Hash(bz)
}

// DomainSeparateValidatorSetHash returns the checkpoint validators sign when
// rotating to the validator set with hash valsetHash.
func DomainSeparateValidatorSetHash(nonce, powerThreshold *uint256.Int, valsetHash [32]byte) [32]byte {
	return CheckpointHash(ValidatorSetDomainSeparator, nonce, powerThreshold, valsetHash)
}

// DomainSeparateDataRootTupleRoot returns the digest validators sign when
// committing dataRootTupleRoot at nonce.
func DomainSeparateDataRootTupleRoot(nonce *uint256.Int, dataRootTupleRoot [32]byte) [32]byte {
	bz, err := dataRootTupleRootArgs.Pack(DataRootTupleRootDomainSeparator, nonce.ToBig(), dataRootTupleRoot)
	if err != nil {
		panic(err)
	}
	return crypto.Keccak256Hash(bz)
}

func domainSeparator(tag string) [32]byte {
	var separator [32]byte
	copy(separator[:], tag)
	return separator
}
