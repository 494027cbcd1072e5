package seqtesting

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test/unsafekzg"
	"github.com/stretchr/testify/require"

	"github.com/AnomalyFi/seq-wasm/modules/core/precompiles"
)

// sp1TestCircuit has the public layout of the SP1 wrapper circuit with a
// single constraint so that proofs can be produced in tests.
type sp1TestCircuit struct {
	VkeyHash             frontend.Variable `gnark:",public"`
	CommitedValuesDigest frontend.Variable `gnark:",public"`
}

func (c *sp1TestCircuit) Define(api frontend.API) error {
	api.AssertIsDifferent(c.VkeyHash, c.CommitedValuesDigest)
	return nil
}

// PlonkProver produces BN254 PLONK proofs that the precompile verifier
// accepts. The setup uses an unsafe SRS and must only be used in tests.
type PlonkProver struct {
	tb  testing.TB
	ccs constraint.ConstraintSystem
	pk  plonk.ProvingKey

	// VerifyingKey is the serialized verifying key, as passed to the precompile.
	VerifyingKey []byte
}

// NewPlonkProver compiles the test circuit and runs the PLONK setup.
func NewPlonkProver(tb testing.TB) *PlonkProver {
	tb.Helper()

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &sp1TestCircuit{})
	require.NoError(tb, err)

	srs, srsLagrange, err := unsafekzg.NewSRS(ccs)
	require.NoError(tb, err)

	pk, vk, err := plonk.Setup(ccs, srs, srsLagrange)
	require.NoError(tb, err)

	var vkBuf bytes.Buffer
	_, err = vk.WriteTo(&vkBuf)
	require.NoError(tb, err)

	return &PlonkProver{
		tb:           tb,
		ccs:          ccs,
		pk:           pk,
		VerifyingKey: vkBuf.Bytes(),
	}
}

// Prove returns the hex encoded proof over publicValues for the program
// identified by programVKeyHash.
func (p *PlonkProver) Prove(programVKeyHash, publicValues []byte) []byte {
	p.tb.Helper()

	assignment := &sp1TestCircuit{
		VkeyHash:             string(programVKeyHash),
		CommitedValuesDigest: precompiles.PublicValuesDigest(publicValues),
	}
	wit, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	require.NoError(p.tb, err)

	proof, err := plonk.Prove(p.ccs, p.pk, wit)
	require.NoError(p.tb, err)

	var proofBuf bytes.Buffer
	_, err = proof.WriteTo(&proofBuf)
	require.NoError(p.tb, err)

	return []byte(hex.EncodeToString(proofBuf.Bytes()))
}
