package attestations

import (
	"fmt"

	"github.com/holiman/uint256"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	"github.com/AnomalyFi/seq-wasm/internal/validate"
	commitmenttypes "github.com/AnomalyFi/seq-wasm/modules/core/23-commitment/types"
	"github.com/AnomalyFi/seq-wasm/modules/core/exported"
	"github.com/AnomalyFi/seq-wasm/modules/core/guardian"
	"github.com/AnomalyFi/seq-wasm/modules/core/metrics"
	"github.com/AnomalyFi/seq-wasm/modules/core/state"
)

var _ exported.LightClientModule = (*LightClientModule)(nil)

// LightClientModule exposes the entry points of the signature-gated bridge.
// Every entry point decodes its ABI input, runs against a cache-wrapped view of
// the host store and commits only if the whole transition is valid.
type LightClientModule struct {
	logger log.Logger
	store  storetypes.KVStore
	params Params
}

// NewLightClientModule creates and returns a new 10-attestations LightClientModule.
func NewLightClientModule(logger log.Logger, store storetypes.KVStore, params Params) LightClientModule {
	if store == nil {
		panic(fmt.Errorf("store must not be nil"))
	}
	if err := params.Validate(); err != nil {
		panic(err)
	}
	return LightClientModule{
		logger: logger,
		store:  store,
		params: params,
	}
}

// Logger returns a module-specific logger.
func (l LightClientModule) Logger() log.Logger {
	return l.logger.With("module", "x/"+exported.ModuleName+"-"+ModuleName)
}

// Initializer sets the genesis validator set checkpoint, its power threshold
// and the event nonce, and records the sender as the guardian. It runs once.
func (l LightClientModule) Initializer(ctx exported.TxContext, input []byte) bool {
	return l.apply("initializer", func(s state.Store) error {
		if err := validate.Sender(ctx.MsgSender); err != nil {
			return err
		}
		msg, err := ABIDecodeInitializerInput(input)
		if err != nil {
			return err
		}

		clientState := NewClientState(msg.Nonce, msg.PowerThreshold, msg.ValidatorSetCheckpoint)
		if err := clientState.Validate(); err != nil {
			return err
		}
		if err := guardian.Initialize(s, ctx.MsgSender); err != nil {
			return err
		}
		setClientState(s, clientState)

		l.Logger().Info("bridge initialized", "nonce", msg.Nonce.Dec(), "power-threshold", msg.PowerThreshold.Dec())
		return nil
	})
}

// UpdateFreeze freezes or unfreezes the bridge. Only the guardian may call it.
func (l LightClientModule) UpdateFreeze(ctx exported.TxContext, input []byte) bool {
	return l.apply("update_freeze", func(s state.Store) error {
		msg, err := guardian.ABIDecodeUpdateFreezeInput(input)
		if err != nil {
			return err
		}
		if err := guardian.SetFrozen(s, ctx.MsgSender, msg.Freeze); err != nil {
			return err
		}

		l.Logger().Info("bridge freeze updated", "frozen", msg.Freeze)
		return nil
	})
}

// UpdateValidatorSet rotates the validator set. See ClientState.UpdateValidatorSet.
func (l LightClientModule) UpdateValidatorSet(_ exported.TxContext, input []byte) bool {
	return l.apply("update_validator_set", func(s state.Store) error {
		if err := guardian.AssertActive(s); err != nil {
			return err
		}
		msg, err := ABIDecodeUpdateValidatorSetInput(input)
		if err != nil {
			return err
		}

		clientState := getClientState(s)
		if err := clientState.UpdateValidatorSet(msg, l.params.SignatureVariant); err != nil {
			return err
		}
		setClientState(s, clientState)

		l.Logger().Info("validator set updated", "nonce", msg.NewNonce.Dec(), "power-threshold", msg.NewPowerThreshold.Dec())
		return nil
	})
}

// SubmitDataRootTupleRoot commits a data root tuple root. See
// ClientState.SubmitDataRootTupleRoot.
func (l LightClientModule) SubmitDataRootTupleRoot(_ exported.TxContext, input []byte) bool {
	return l.apply("submit_data_root_tuple_root", func(s state.Store) error {
		if err := guardian.AssertActive(s); err != nil {
			return err
		}
		msg, err := ABIDecodeSubmitDataRootTupleRootInput(input)
		if err != nil {
			return err
		}

		clientState := getClientState(s)
		if err := clientState.SubmitDataRootTupleRoot(s, msg, l.params.SignatureVariant); err != nil {
			return err
		}
		setClientState(s, clientState)

		l.Logger().Info("data root tuple root committed", "nonce", msg.NewNonce.Dec(), "root", fmt.Sprintf("%x", msg.DataRootTupleRoot))
		return nil
	})
}

// VerifyAttestation reports whether the data root tuple in the input is
// included in the data root tuple root committed at the given nonce. It never
// modifies state.
func (l LightClientModule) VerifyAttestation(_ exported.TxContext, input []byte) bool {
	err := state.Query(l.store, func(cache storetypes.KVStore) error {
		s := state.NewBridgeStore(cache, ModuleName)
		if err := guardian.AssertActive(s); err != nil {
			return err
		}
		proof, err := commitmenttypes.ABIDecodeAttestationProof(input)
		if err != nil {
			return err
		}
		return getClientState(s).VerifyAttestation(s, proof)
	})

	metrics.ReportOperation(ModuleName, l.params.SignatureVariant.String(), "verify_attestation", err)
	if err != nil {
		l.Logger().Debug("attestation rejected", "err", err)
		return false
	}
	return true
}

// Status returns the lifecycle status of the bridge.
func (l LightClientModule) Status() exported.Status {
	return guardian.Status(state.NewBridgeStore(l.store, ModuleName))
}

// ClientState returns the persisted state of the bridge.
func (l LightClientModule) ClientState() *ClientState {
	return getClientState(state.NewBridgeStore(l.store, ModuleName))
}

// DataRootTupleRoot returns the data root tuple root committed at nonce.
func (l LightClientModule) DataRootTupleRoot(nonce *uint256.Int) [32]byte {
	return GetDataRootTupleRoot(state.NewBridgeStore(l.store, ModuleName), nonce)
}

// apply runs fn against a cache-wrapped view of the bridge store and commits
// its writes only if fn succeeds.
func (l LightClientModule) apply(operation string, fn func(s state.Store) error) bool {
	err := state.Apply(l.store, func(cache storetypes.KVStore) error {
		return fn(state.NewBridgeStore(cache, ModuleName))
	})

	metrics.ReportOperation(ModuleName, l.params.SignatureVariant.String(), operation, err)
	if err != nil {
		l.Logger().Debug("transition rejected", "operation", operation, "err", err)
		return false
	}
	return true
}
