package errors

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/AnomalyFi/seq-wasm/modules/core/exported"
)

const codespace = exported.ModuleName

var (
	// ErrInvalidSequence is used when the nonce of a transition is not the
	// next expected one.
	ErrInvalidSequence = errorsmod.Register(codespace, 3, "invalid sequence")

	// ErrUnauthorized is used whenever a request from a sender other than the
	// guardian reaches a guardian-only operation.
	ErrUnauthorized = errorsmod.Register(codespace, 4, "unauthorized")

	// ErrInvalidRequest defines an error where the request contains
	// invalid or undecodable data.
	ErrInvalidRequest = errorsmod.Register(codespace, 18, "invalid request")

	// ErrInvalidHeight defines an error for an invalid block height
	ErrInvalidHeight = errorsmod.Register(codespace, 26, "invalid height")

	// ErrLogic defines an internal logic error, e.g. an invariant or assertion
	// that is violated. It is a programmer error, not a user-facing error.
	ErrLogic = errorsmod.Register(codespace, 35, "internal logic error")

	// ErrNotInitialized is returned by every operation but the initializer
	// until the initializer succeeded.
	ErrNotInitialized = errorsmod.Register(codespace, 40, "bridge not initialized")

	// ErrAlreadyInitialized is returned when the initializer runs a second time.
	ErrAlreadyInitialized = errorsmod.Register(codespace, 41, "bridge already initialized")

	// ErrFrozen is returned by state transitions while the guardian froze the bridge.
	ErrFrozen = errorsmod.Register(codespace, 42, "bridge is frozen")
)
