package attestations_test

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	attestations "github.com/AnomalyFi/seq-wasm/modules/light-clients/10-attestations"
)

// word left-pads bz to a 32 byte ABI word.
func word(bz []byte) []byte {
	return common.LeftPadBytes(bz, 32)
}

func (s *AttestationsTestSuite) TestDomainSeparators() {
	s.Require().Equal(common.RightPadBytes([]byte("checkpoint"), 32), attestations.ValidatorSetDomainSeparator[:])
	s.Require().Equal(common.RightPadBytes([]byte("transactionBatch"), 32), attestations.DataRootTupleRootDomainSeparator[:])
}

func (s *AttestationsTestSuite) TestComputeValidatorSetHash() {
	vals := []attestations.Validator{
		attestations.NewValidator(common.HexToAddress("0x9c2B12b5a07FC6D719Ed7646e5041A7E85758329"), 5000),
		attestations.NewValidator(common.HexToAddress("0x1f1A2a6D5B3dcB2d5eD8d5fB1D2F3aF4D3c2b1A0"), 4000),
	}

	// abi.encode(Validator[]) is the offset of the array, its length and the
	// static (address, uint256) elements.
	var encoded []byte
	encoded = append(encoded, word([]byte{0x20})...)
	encoded = append(encoded, word([]byte{0x02})...)
	for _, val := range vals {
		encoded = append(encoded, word(val.Addr.Bytes())...)
		encoded = append(encoded, word(val.Power.Bytes())...)
	}

	hash, err := attestations.ComputeValidatorSetHash(vals)
	s.Require().NoError(err)
	s.Require().Equal(crypto.Keccak256(encoded), hash[:])

	again, err := attestations.ComputeValidatorSetHash(vals)
	s.Require().NoError(err)
	s.Require().Equal(hash, again)

	swapped, err := attestations.ComputeValidatorSetHash([]attestations.Validator{vals[1], vals[0]})
	s.Require().NoError(err)
	s.Require().NotEqual(hash, swapped)

	_, err = attestations.ComputeValidatorSetHash([]attestations.Validator{{Addr: vals[0].Addr}})
	s.Require().ErrorIs(err, attestations.ErrMalformedCurrentValidators)
}

func (s *AttestationsTestSuite) TestCheckpointHash() {
	nonce := uint256.NewInt(7)
	threshold := uint256.NewInt(2863311531)
	valsetHash := [32]byte{0xab, 0xcd}
	root := [32]byte{0x12, 0x34}

	expected := crypto.Keccak256(
		attestations.ValidatorSetDomainSeparator[:],
		word(nonce.Bytes()),
		word(threshold.Bytes()),
		valsetHash[:],
	)
	checkpoint := attestations.DomainSeparateValidatorSetHash(nonce, threshold, valsetHash)
	s.Require().Equal(expected, checkpoint[:])
	s.Require().Equal(checkpoint, attestations.CheckpointHash(attestations.ValidatorSetDomainSeparator, nonce, threshold, valsetHash))

	expected = crypto.Keccak256(
		attestations.DataRootTupleRootDomainSeparator[:],
		word(nonce.Bytes()),
		root[:],
	)
	commitment := attestations.DomainSeparateDataRootTupleRoot(nonce, root)
	s.Require().Equal(expected, commitment[:])

	// the same values under the other domain separator hash differently
	s.Require().NotEqual(
		attestations.CheckpointHash(attestations.DataRootTupleRootDomainSeparator, nonce, threshold, valsetHash),
		checkpoint,
	)
}
