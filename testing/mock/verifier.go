package mock

import (
	"bytes"
	"errors"

	"github.com/AnomalyFi/seq-wasm/modules/core/exported"
)

var _ exported.ProofVerifier = (*ProofVerifier)(nil)

// ErrInvalidMockProof is returned for proofs that do not equal MockProof.
var ErrInvalidMockProof = errors.New("invalid mock proof")

// MockProof is the only proof the mock verifier accepts by default.
var MockProof = []byte("mock proof")

// VerifyProofCall records the arguments of one VerifyProof call
type VerifyProofCall struct {
	ProgramVKeyHash []byte
	PublicValues    []byte
	Proof           []byte
	ProgramVKey     []byte
}

// ProofVerifier is a succinct proof verifier for tests. Unless VerifyFn is set
// it accepts exactly MockProof.
type ProofVerifier struct {
	VerifyFn func(programVKeyHash, publicValues, proof, programVKey []byte) error
	Calls    []VerifyProofCall
}

// NewProofVerifier returns a new ProofVerifier
func NewProofVerifier() *ProofVerifier {
	return &ProofVerifier{}
}

func (v *ProofVerifier) VerifyProof(programVKeyHash, publicValues, proof, programVKey []byte) error {
	v.Calls = append(v.Calls, VerifyProofCall{
		ProgramVKeyHash: programVKeyHash,
		PublicValues:    publicValues,
		Proof:           proof,
		ProgramVKey:     programVKey,
	})

	if v.VerifyFn != nil {
		return v.VerifyFn(programVKeyHash, publicValues, proof, programVKey)
	}
	if !bytes.Equal(proof, MockProof) {
		return ErrInvalidMockProof
	}
	return nil
}
