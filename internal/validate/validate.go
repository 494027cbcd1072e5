package validate

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/ethereum/go-ethereum/common/hexutil"

	seqerrors "github.com/AnomalyFi/seq-wasm/internal/errors"
)

// MaxProgramVKeyHashLength is the byte length of a program verifying key hash.
const MaxProgramVKeyHashLength = 32

// ProgramVKey validates that vkeyHash is a 0x-prefixed hex string of at most 32
// bytes, the form in which the proof precompile feeds it to the verifier
// circuit, and that vkey is not empty.
func ProgramVKey(vkeyHash, vkey []byte) error {
	if len(vkey) == 0 {
		return errorsmod.Wrap(seqerrors.ErrInvalidRequest, "program verifying key cannot be empty")
	}

	hash := string(vkeyHash)
	if !strings.HasPrefix(hash, "0x") {
		return errorsmod.Wrapf(seqerrors.ErrInvalidRequest, "program verifying key hash %q must be 0x-prefixed", hash)
	}
	bz, err := hexutil.Decode(hash)
	if err != nil {
		return errorsmod.Wrapf(seqerrors.ErrInvalidRequest, "program verifying key hash %q: %v", hash, err)
	}
	if len(bz) > MaxProgramVKeyHashLength {
		return errorsmod.Wrapf(seqerrors.ErrInvalidRequest, "program verifying key hash is %d bytes, expected at most %d", len(bz), MaxProgramVKeyHashLength)
	}
	return nil
}

// Sender validates the transaction sender passed in by the host.
func Sender(sender []byte) error {
	if len(sender) == 0 {
		return errorsmod.Wrap(seqerrors.ErrUnauthorized, "message sender cannot be empty")
	}
	return nil
}
