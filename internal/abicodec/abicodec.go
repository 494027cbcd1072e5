package abicodec

import (
	"bytes"

	"github.com/ethereum/go-ethereum/accounts/abi"

	errorsmod "cosmossdk.io/errors"

	seqerrors "github.com/AnomalyFi/seq-wasm/internal/errors"
)

// UnpackTuple decodes data holding a single ABI tuple argument into a T whose
// fields follow the tuple components in order.
//
// data must be the canonical encoding of the decoded value. go-ethereum
// tolerates missing tail padding and trailing bytes, so the value is packed
// again and compared with data.
func UnpackTuple[T any](args abi.Arguments, data []byte) (*T, error) {
	unpacked, err := args.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(seqerrors.ErrInvalidRequest, "failed to ABI decode %T: %v", *new(T), err)
	}
	if len(unpacked) != 1 {
		return nil, errorsmod.Wrapf(seqerrors.ErrInvalidRequest, "expected 1 argument, got %d", len(unpacked))
	}

	out, ok := abi.ConvertType(unpacked[0], new(T)).(*T)
	if !ok {
		return nil, errorsmod.Wrapf(seqerrors.ErrInvalidRequest, "unexpected decoded type %T", unpacked[0])
	}

	canonical, err := args.Pack(*out)
	if err != nil {
		return nil, errorsmod.Wrapf(seqerrors.ErrInvalidRequest, "failed to ABI encode %T: %v", *out, err)
	}
	if !bytes.Equal(canonical, data) {
		return nil, errorsmod.Wrapf(seqerrors.ErrInvalidRequest, "non-canonical encoding of %T: got %d bytes, expected %d", *out, len(data), len(canonical))
	}
	return out, nil
}
