package attestations

import (
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	errorsmod "cosmossdk.io/errors"
)

const (
	// SignatureLength is the expected length of an ECDSA signature (r||s||v)
	SignatureLength = crypto.SignatureLength

	eip191Prefix = "\x19Ethereum Signed Message:\n"
)

// EIP191Variant selects how a digest is wrapped before it is signed.
type EIP191Variant uint8

const (
	// EIP191WithLength hashes "\x19Ethereum Signed Message:\n32" || digest,
	// the wrapping produced by eth_sign and personal_sign.
	EIP191WithLength EIP191Variant = iota
	// EIP191Raw hashes "\x19Ethereum Signed Message:\n" || digest.
	EIP191Raw
)

func (v EIP191Variant) String() string {
	switch v {
	case EIP191WithLength:
		return "with-length"
	case EIP191Raw:
		return "raw"
	default:
		return "unknown"
	}
}

// Signature is an ECDSA signature with v in {27, 28}.
type Signature struct {
	V uint8
	R [32]byte
	S [32]byte
}

// NewSignature converts a 65 byte r||s||v signature with v in {0, 1}, as
// returned by crypto.Sign, into a Signature.
func NewSignature(sig []byte) (Signature, error) {
	if len(sig) != SignatureLength {
		return Signature{}, errorsmod.Wrapf(ErrInvalidSignature, "expected %d bytes, got %d", SignatureLength, len(sig))
	}

	var s Signature
	copy(s.R[:], sig[:32])
	copy(s.S[:], sig[32:64])
	s.V = sig[64] + 27
	return s, nil
}

// IsSigNil reports whether sig is the empty placeholder of a validator that
// did not sign.
func IsSigNil(sig Signature) bool {
	return sig.V == 0 && sig.R == [32]byte{} && sig.S == [32]byte{}
}

// ToEthSignedMessageHash wraps digest with the EIP-191 signed message prefix
// and hashes it.
func ToEthSignedMessageHash(digest [32]byte, variant EIP191Variant) [32]byte {
	if variant == EIP191WithLength {
		return common.BytesToHash(accounts.TextHash(digest[:]))
	}
	return crypto.Keccak256Hash([]byte(eip191Prefix), digest[:])
}

// VerifySig reports whether sig is a signature of signer over the EIP-191
// wrapped digest. Malformed signatures are reported as invalid.
func VerifySig(signer common.Address, digest [32]byte, sig Signature, variant EIP191Variant) bool {
	if sig.V != 27 && sig.V != 28 {
		return false
	}

	hash := ToEthSignedMessageHash(digest, variant)

	rsv := make([]byte, SignatureLength)
	copy(rsv[:32], sig.R[:])
	copy(rsv[32:64], sig.S[:])
	rsv[64] = sig.V - 27

	pubKey, err := crypto.SigToPub(hash[:], rsv)
	if err != nil {
		return false
	}
	return crypto.PubkeyToAddress(*pubKey) == signer
}

// CheckValidatorSignatures checks that validators holding at least
// powerThreshold signed digest. sigs[i] is the signature of vals[i]; nil and
// invalid signatures are skipped and do not fail the check.
func CheckValidatorSignatures(vals []Validator, sigs []Signature, digest [32]byte, powerThreshold *uint256.Int, variant EIP191Variant) error {
	if len(vals) != len(sigs) {
		return errorsmod.Wrapf(ErrMalformedCurrentValidators, "%d validators but %d signatures", len(vals), len(sigs))
	}

	cumulativePower := new(uint256.Int)
	for i, sig := range sigs {
		if IsSigNil(sig) {
			continue
		}
		if !VerifySig(vals[i].Addr, digest, sig, variant) {
			continue
		}

		if _, overflow := cumulativePower.AddOverflow(cumulativePower, vals[i].Power); overflow {
			return ErrPowerOverflow
		}
		if !cumulativePower.Lt(powerThreshold) {
			return nil
		}
	}

	if cumulativePower.Lt(powerThreshold) {
		return errorsmod.Wrapf(ErrInsufficientVotingPower, "cumulative power %s is below threshold %s", cumulativePower.Dec(), powerThreshold.Dec())
	}
	return nil
}
