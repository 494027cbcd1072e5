package precompiles

import (
	"crypto/sha256"
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// publicValuesMask keeps the low 253 bits of a digest so it fits the BN254
// scalar field.
var publicValuesMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 253), big.NewInt(1))

// SP1Circuit mirrors the public layout of the SP1 PLONK wrapper circuit. Only
// the two public inputs are assigned when verifying; the constraints live in the
// verifying key, so Define is empty.
type SP1Circuit struct {
	VkeyHash             frontend.Variable `gnark:",public"`
	CommitedValuesDigest frontend.Variable `gnark:",public"`
	Vars                 []frontend.Variable
	Felts                []BabyBearVariable
	Exts                 []BabyBearExtensionVariable
}

// Define implements frontend.Circuit.
func (*SP1Circuit) Define(frontend.API) error {
	return nil
}

type BabyBearVariable struct {
	Value  frontend.Variable
	NbBits uint
}

type BabyBearExtensionVariable struct {
	Value [4]BabyBearVariable
}

// PublicValuesDigest returns sha256(publicValues) truncated to 253 bits.
func PublicValuesDigest(publicValues []byte) *big.Int {
	digest := sha256.Sum256(publicValues)
	return new(big.Int).And(new(big.Int).SetBytes(digest[:]), publicValuesMask)
}

// NewSP1Assignment returns the circuit assignment whose public part is checked
// against a proof of the program identified by programVKeyHash.
func NewSP1Assignment(programVKeyHash, publicValues []byte) *SP1Circuit {
	return &SP1Circuit{
		VkeyHash:             string(programVKeyHash),
		CommitedValuesDigest: PublicValuesDigest(publicValues),
		Vars:                 []frontend.Variable{},
		Felts:                []BabyBearVariable{},
		Exts:                 []BabyBearExtensionVariable{},
	}
}
