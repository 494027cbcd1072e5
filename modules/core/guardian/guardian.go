package guardian

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"

	seqerrors "github.com/AnomalyFi/seq-wasm/internal/errors"
	host "github.com/AnomalyFi/seq-wasm/modules/core/24-host"
	"github.com/AnomalyFi/seq-wasm/modules/core/exported"
	"github.com/AnomalyFi/seq-wasm/modules/core/state"
)

// IsInitialized reports whether the bridge initializer ran.
func IsInitialized(s state.Store) bool {
	return s.GetBool(host.ScalarKey(host.KeyInitialized))
}

// IsFrozen reports whether the guardian froze the bridge.
func IsFrozen(s state.Store) bool {
	return s.GetBool(host.ScalarKey(host.KeyFrozen))
}

// Guardian returns the address allowed to run administrative operations.
func Guardian(s state.Store) []byte {
	return s.GetBytes(host.ScalarKey(host.KeyGuardian))
}

// Initialize marks the bridge initialized and records sender as its guardian.
// It fails if the bridge was initialized before.
func Initialize(s state.Store, sender []byte) error {
	if IsInitialized(s) {
		return seqerrors.ErrAlreadyInitialized
	}
	if len(sender) == 0 {
		return errorsmod.Wrap(seqerrors.ErrUnauthorized, "guardian address cannot be empty")
	}

	s.SetBytes(host.ScalarKey(host.KeyGuardian), sender)
	s.SetBool(host.ScalarKey(host.KeyInitialized), true)
	return nil
}

// AssertGuardian returns an error unless the bridge is initialized and sender
// is its guardian.
func AssertGuardian(s state.Store, sender []byte) error {
	if !IsInitialized(s) {
		return seqerrors.ErrNotInitialized
	}
	if guardian := Guardian(s); !bytes.Equal(guardian, sender) {
		return errorsmod.Wrapf(seqerrors.ErrUnauthorized, "expected guardian %x, got %x", guardian, sender)
	}
	return nil
}

// AssertActive returns an error unless the bridge is initialized and not frozen.
func AssertActive(s state.Store) error {
	if !IsInitialized(s) {
		return seqerrors.ErrNotInitialized
	}
	if IsFrozen(s) {
		return seqerrors.ErrFrozen
	}
	return nil
}

// SetFrozen freezes or unfreezes the bridge on behalf of sender.
func SetFrozen(s state.Store, sender []byte, freeze bool) error {
	if err := AssertGuardian(s, sender); err != nil {
		return err
	}
	s.SetBool(host.ScalarKey(host.KeyFrozen), freeze)
	return nil
}

// Status returns the lifecycle status of the bridge.
func Status(s state.Store) exported.Status {
	switch {
	case !IsInitialized(s):
		return exported.Uninitialized
	case IsFrozen(s):
		return exported.Frozen
	default:
		return exported.Active
	}
}
