package headerrange

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

// LightClientModule exposes the entry points of the proof-gated bridge.
type LightClientModule struct {
	logger   log.Logger
	store    storetypes.KVStore
	verifier exported.ProofVerifier
	params   Params
}

// NewLightClientModule creates and returns a new 11-headerrange LightClientModule.
func NewLightClientModule(logger log.Logger, store storetypes.KVStore, verifier exported.ProofVerifier, params Params) LightClientModule {
	if store == nil {
		panic(fmt.Errorf("store must not be nil"))
	}
	if verifier == nil {
		panic(fmt.Errorf("proof verifier must not be nil"))
	}
	if err := params.Validate(); err != nil {
		panic(err)
	}
	return LightClientModule{
		logger:   logger,
		store:    store,
		verifier: verifier,
		params:   params,
	}
}

// Logger returns a module-specific logger.
func (l LightClientModule) Logger() log.Logger {
	return l.logger.With("module", "x/"+exported.ModuleName+"-"+ModuleName, "variant", string(l.params.Variant))
}

// Initializer sets the genesis header, the genesis authority set and the
// program whose proofs the bridge accepts, and records the sender as the
// guardian. It runs once.
func (l LightClientModule) Initializer(ctx exported.TxContext, input []byte) bool {
	return l.apply("initializer", func(s state.Store) error {
		if err := validate.Sender(ctx.MsgSender); err != nil {
			return err
		}
		msg, err := ABIDecodeInitializerInput(input)
		if err != nil {
			return err
		}
		if err := validate.ProgramVKey(msg.ProgramVKeyHash, msg.ProgramVKey); err != nil {
			return err
		}
		if err := l.params.validateHeight(msg.Height); err != nil {
			return err
		}
		if err := guardian.Initialize(s, ctx.MsgSender); err != nil {
			return err
		}

		clientState := &ClientState{
			LatestBlock:     msg.Height,
			ProofNonce:      uint256.NewInt(1),
			ProgramVKeyHash: msg.ProgramVKeyHash,
			ProgramVKey:     msg.ProgramVKey,
		}
		setHeaderHash(s, msg.Height, msg.Header)
		if l.params.tracksAuthoritySets() {
			clientState.LatestAuthoritySetID = msg.AuthoritySetID
			setAuthoritySetHash(s, msg.AuthoritySetID, msg.AuthoritySetHash)
		}
		setClientState(s, clientState)

		l.Logger().Info("bridge initialized", "height", msg.Height, "header", fmt.Sprintf("%x", msg.Header))
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

// CommitHeaderRange advances the bridge to a proven target block. See
// ClientState.CommitHeaderRange.
func (l LightClientModule) CommitHeaderRange(_ exported.TxContext, input []byte) bool {
	return l.apply("commit_header_range", func(s state.Store) error {
		if err := guardian.AssertActive(s); err != nil {
			return err
		}
		msg, err := ABIDecodeCommitHeaderRangeInput(input)
		if err != nil {
			return err
		}

		clientState := getClientState(s)
		nonce := clientState.ProofNonce.Clone()
		out, err := clientState.CommitHeaderRange(s, l.params, l.verifier, msg)
		if err != nil {
			return err
		}
		setClientState(s, clientState)

		metrics.ReportLatestHeight(ModuleName, clientState.LatestBlock)
		l.Logger().Info(
			"header range committed",
			"nonce", nonce.Dec(),
			"target-block", msg.TargetBlock,
			"data-commitment", fmt.Sprintf("%x", out.DataCommitment),
		)
		return nil
	})
}

// Rotate proves the authority set following the current one. See
// ClientState.Rotate.
func (l LightClientModule) Rotate(_ exported.TxContext, input []byte) bool {
	return l.apply("rotate", func(s state.Store) error {
		if err := guardian.AssertActive(s); err != nil {
			return err
		}
		msg, err := ABIDecodeRotateInput(input)
		if err != nil {
			return err
		}

		nextHash, err := getClientState(s).Rotate(s, l.params, l.verifier, msg)
		if err != nil {
			return err
		}

		l.Logger().Info("authority set rotated", "authority-set-id", msg.CurrentAuthoritySetID+1, "hash", fmt.Sprintf("%x", nextHash))
		return nil
	})
}

// UpdateGenesisState overrides the latest trusted header. Only the guardian
// may call it.
func (l LightClientModule) UpdateGenesisState(ctx exported.TxContext, input []byte) bool {
	return l.apply("update_genesis_state", func(s state.Store) error {
		if err := guardian.AssertGuardian(s, ctx.MsgSender); err != nil {
			return err
		}
		msg, err := ABIDecodeUpdateGenesisStateInput(input)
		if err != nil {
			return err
		}

		clientState := getClientState(s)
		if err := clientState.UpdateGenesisState(s, l.params, msg); err != nil {
			return err
		}
		setClientState(s, clientState)

		l.Logger().Info("genesis state updated", "height", msg.Height, "header", fmt.Sprintf("%x", msg.Header))
		return nil
	})
}

// UpdateProgramVkey replaces the accepted program. Only the guardian may call it.
func (l LightClientModule) UpdateProgramVkey(ctx exported.TxContext, input []byte) bool {
	return l.apply("update_program_vkey", func(s state.Store) error {
		if err := guardian.AssertGuardian(s, ctx.MsgSender); err != nil {
			return err
		}
		msg, err := ABIDecodeUpdateProgramVkeyInput(input)
		if err != nil {
			return err
		}

		clientState := getClientState(s)
		if err := clientState.UpdateProgramVkey(msg); err != nil {
			return err
		}
		setClientState(s, clientState)

		l.Logger().Info("program verifying key updated", "vkey-hash", string(msg.ProgramVKeyHash))
		return nil
	})
}

// VerifyAttestation reports whether the data root tuple in the input is
// included in the data commitment proven at the given nonce. It never
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

	metrics.ReportOperation(ModuleName, string(l.params.Variant), "verify_attestation", err)
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

// HeaderHash returns the trusted header hash at height.
func (l LightClientModule) HeaderHash(height uint64) [32]byte {
	return GetHeaderHash(state.NewBridgeStore(l.store, ModuleName), height)
}

// AuthoritySetHash returns the hash of the authority set with the given id.
func (l LightClientModule) AuthoritySetHash(id uint64) [32]byte {
	return GetAuthoritySetHash(state.NewBridgeStore(l.store, ModuleName), id)
}

// DataCommitment returns the data commitment proven at nonce.
func (l LightClientModule) DataCommitment(nonce *uint256.Int) [32]byte {
	return GetDataCommitment(state.NewBridgeStore(l.store, ModuleName), nonce)
}

// StateRootCommitment returns the state root commitment proven at nonce.
func (l LightClientModule) StateRootCommitment(nonce *uint256.Int) [32]byte {
	return GetStateRootCommitment(state.NewBridgeStore(l.store, ModuleName), nonce)
}

// Range returns the blocks (start, end] proven at nonce.
func (l LightClientModule) Range(nonce *uint256.Int) (start, end uint64) {
	return GetRange(state.NewBridgeStore(l.store, ModuleName), nonce)
}

func (l LightClientModule) apply(operation string, fn func(s state.Store) error) bool {
	err := state.Apply(l.store, func(cache storetypes.KVStore) error {
		return fn(state.NewBridgeStore(cache, ModuleName))
	})

	metrics.ReportOperation(ModuleName, string(l.params.Variant), operation, err)
	if err != nil {
		l.Logger().Debug("transition rejected", "operation", operation, "err", err)
		return false
	}
	return true
}
