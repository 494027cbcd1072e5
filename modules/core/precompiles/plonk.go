package precompiles

import (
	"bytes"
	"encoding/hex"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/frontend"

	errorsmod "cosmossdk.io/errors"

	"github.com/AnomalyFi/seq-wasm/modules/core/exported"
)

var _ exported.ProofVerifier = (*PlonkVerifier)(nil)

// PlonkVerifier verifies SP1 PLONK proofs over BN254.
type PlonkVerifier struct{}

// NewPlonkVerifier returns a verifier for SP1 PLONK proofs.
func NewPlonkVerifier() *PlonkVerifier {
	return &PlonkVerifier{}
}

// VerifyProof verifies proof for the program identified by programVKeyHash
// over publicValues. programVKey is a serialized BN254 PLONK verifying key
// and proof the hex encoding of a serialized BN254 PLONK proof.
func (*PlonkVerifier) VerifyProof(programVKeyHash, publicValues, proof, programVKey []byte) (err error) {
	defer func() {
		// gnark panics on witness values it cannot parse
		if r := recover(); r != nil {
			err = errorsmod.Wrapf(ErrInvalidWitness, "%v", r)
		}
	}()

	vk := plonk.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(programVKey)); err != nil {
		return errorsmod.Wrap(ErrInvalidVerifyingKey, err.Error())
	}

	proofData, err := hex.DecodeString(string(proof))
	if err != nil {
		return errorsmod.Wrap(ErrInvalidProof, err.Error())
	}
	p := plonk.NewProof(ecc.BN254)
	if _, err := p.ReadFrom(bytes.NewReader(proofData)); err != nil {
		return errorsmod.Wrap(ErrInvalidProof, err.Error())
	}

	wit, err := frontend.NewWitness(NewSP1Assignment(programVKeyHash, publicValues), ecc.BN254.ScalarField())
	if err != nil {
		return errorsmod.Wrap(ErrInvalidWitness, err.Error())
	}
	pubWit, err := wit.Public()
	if err != nil {
		return errorsmod.Wrap(ErrInvalidWitness, err.Error())
	}

	if err := plonk.Verify(p, vk, pubWit); err != nil {
		return errorsmod.Wrap(ErrVerificationFailed, err.Error())
	}
	return nil
}

// Verify runs a verifier over ABI-encoded GnarkPrecompileInputs and reports
// whether the proof is valid. It is the boolean form exposed to the host.
func Verify(verifier exported.ProofVerifier, input []byte) bool {
	in, err := ABIDecodeGnarkPrecompileInputs(input)
	if err != nil {
		return false
	}
	return verifier.VerifyProof(in.ProgramVKeyHash, in.PublicValues, in.ProofBytes, in.ProgramVKey) == nil
}
