package seqtesting

import (
	"crypto/ecdsa"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	attestations "github.com/AnomalyFi/seq-wasm/modules/light-clients/10-attestations"
)

// ValidatorSet is a set of attesting validators together with their keys.
// Keys[i] belongs to Validators[i].
type ValidatorSet struct {
	Keys       []*ecdsa.PrivateKey
	Validators []attestations.Validator
}

// NewValidatorSet generates len(powers) validators with the given voting powers.
func NewValidatorSet(tb testing.TB, powers ...uint64) *ValidatorSet {
	tb.Helper()

	valSet := &ValidatorSet{
		Keys:       make([]*ecdsa.PrivateKey, len(powers)),
		Validators: make([]attestations.Validator, len(powers)),
	}
	for i, power := range powers {
		key, err := crypto.GenerateKey()
		require.NoError(tb, err)

		valSet.Keys[i] = key
		valSet.Validators[i] = attestations.NewValidator(crypto.PubkeyToAddress(key.PublicKey), power)
	}
	return valSet
}

// Hash returns the validator set hash.
func (vs *ValidatorSet) Hash(tb testing.TB) [32]byte {
	tb.Helper()

	hash, err := attestations.ComputeValidatorSetHash(vs.Validators)
	require.NoError(tb, err)
	return hash
}

// Checkpoint returns the checkpoint committing to the set at nonce with powerThreshold.
func (vs *ValidatorSet) Checkpoint(tb testing.TB, nonce, powerThreshold uint64) [32]byte {
	tb.Helper()

	return attestations.DomainSeparateValidatorSetHash(uint256.NewInt(nonce), uint256.NewInt(powerThreshold), vs.Hash(tb))
}

// Sign returns one signature slot per validator over digest. Validators whose
// index is not in signers get a nil signature.
func (vs *ValidatorSet) Sign(tb testing.TB, digest [32]byte, variant attestations.EIP191Variant, signers ...int) []attestations.Signature {
	tb.Helper()

	sigs := make([]attestations.Signature, len(vs.Keys))
	for _, i := range signers {
		sigs[i] = SignDigest(tb, vs.Keys[i], digest, variant)
	}
	return sigs
}

// SignDigest signs the EIP-191 wrapped digest with key.
func SignDigest(tb testing.TB, key *ecdsa.PrivateKey, digest [32]byte, variant attestations.EIP191Variant) attestations.Signature {
	tb.Helper()

	hash := attestations.ToEthSignedMessageHash(digest, variant)
	bz, err := crypto.Sign(hash[:], key)
	require.NoError(tb, err)

	sig, err := attestations.NewSignature(bz)
	require.NoError(tb, err)
	return sig
}
