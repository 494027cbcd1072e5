package guardian

import (
	"github.com/ethereum/go-ethereum/accounts/abi"

	errorsmod "cosmossdk.io/errors"

	"github.com/AnomalyFi/seq-wasm/internal/abicodec"
	seqerrors "github.com/AnomalyFi/seq-wasm/internal/errors"
)

var (
	updateFreezeType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "freeze", Type: "bool"},
	})
	updateFreezeArgs = abi.Arguments{{Name: "inputs", Type: updateFreezeType}}
)

// UpdateFreezeInput is the argument of the update_freeze entry point.
type UpdateFreezeInput struct {
	Freeze bool
}

func (in UpdateFreezeInput) ABIEncode() ([]byte, error) {
	return updateFreezeArgs.Pack(in)
}

// ABIDecodeUpdateFreezeInput decodes abi.encode((bool freeze)).
func ABIDecodeUpdateFreezeInput(bz []byte) (UpdateFreezeInput, error) {
	in, err := abicodec.UnpackTuple[UpdateFreezeInput](updateFreezeArgs, bz)
	if err != nil {
		return UpdateFreezeInput{}, errorsmod.Wrapf(seqerrors.ErrInvalidRequest, "failed to ABI decode update freeze input: %v", err)
	}
	return *in, nil
}
