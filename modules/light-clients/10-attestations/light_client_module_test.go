package attestations_test

import (
	"github.com/holiman/uint256"

	"github.com/AnomalyFi/seq-wasm/modules/core/exported"
	"github.com/AnomalyFi/seq-wasm/modules/core/guardian"
	attestations "github.com/AnomalyFi/seq-wasm/modules/light-clients/10-attestations"
	seqtesting "github.com/AnomalyFi/seq-wasm/testing"
)

func (s *AttestationsTestSuite) TestInitializer() {
	var (
		ctx   exported.TxContext
		input []byte
	)

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{
			"success",
			func() {},
			true,
		},
		{
			"failure: already initialized",
			func() {
				s.initialize()
			},
			false,
		},
		{
			"failure: empty message sender",
			func() {
				ctx.MsgSender = nil
			},
			false,
		},
		{
			"failure: malformed input",
			func() {
				input = input[:len(input)-1]
			},
			false,
		},
		{
			"failure: empty input",
			func() {
				input = nil
			},
			false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			ctx = s.guardianCtx()
			var err error
			input, err = attestations.InitializerInput{
				Nonce:                  uint256.NewInt(genesisNonce),
				PowerThreshold:         uint256.NewInt(powerThreshold),
				ValidatorSetCheckpoint: s.valSet.Checkpoint(s.T(), genesisNonce, powerThreshold),
			}.ABIEncode()
			s.Require().NoError(err)

			tc.malleate()

			before := seqtesting.Snapshot(s.store)
			ok := s.lightClientModule.Initializer(ctx, input)
			s.Require().Equal(tc.expPass, ok)

			if !tc.expPass {
				s.Require().Equal(before, seqtesting.Snapshot(s.store))
				return
			}

			s.Require().Equal(exported.Active, s.lightClientModule.Status())
			clientState := s.lightClientModule.ClientState()
			s.Require().Equal(uint64(genesisNonce), clientState.EventNonce.Uint64())
			s.Require().Equal(uint64(powerThreshold), clientState.PowerThreshold.Uint64())
			s.Require().Equal(s.valSet.Checkpoint(s.T(), genesisNonce, powerThreshold), clientState.LastValidatorSetCheckpoint)
			s.Require().NotEmpty(s.logger.InfoLogs)
		})
	}
}

func (s *AttestationsTestSuite) TestUpdateFreeze() {
	freezeInput, err := guardian.UpdateFreezeInput{Freeze: true}.ABIEncode()
	s.Require().NoError(err)

	s.Require().False(s.lightClientModule.UpdateFreeze(s.guardianCtx(), freezeInput), "uninitialized")

	s.initialize()
	s.Require().False(s.lightClientModule.UpdateFreeze(exported.TxContext{MsgSender: strangerAddr}, freezeInput))
	s.Require().Equal(exported.Active, s.lightClientModule.Status())
	s.Require().False(s.lightClientModule.UpdateFreeze(s.guardianCtx(), []byte{0x01}))

	s.Require().True(s.lightClientModule.UpdateFreeze(s.guardianCtx(), freezeInput))
	s.Require().Equal(exported.Frozen, s.lightClientModule.Status())

	s.freeze(false)
	s.Require().Equal(exported.Active, s.lightClientModule.Status())
}

func (s *AttestationsTestSuite) TestUpdateValidatorSet() {
	var (
		newValSet *seqtesting.ValidatorSet
		msg       attestations.UpdateValidatorSetInput
	)

	newThreshold := uint64(100)

	// sign signs the checkpoint of msg with the given current validators.
	sign := func(signers ...int) []attestations.Signature {
		checkpoint := attestations.DomainSeparateValidatorSetHash(msg.NewNonce, msg.NewPowerThreshold, msg.NewValidatorSetHash)
		return s.valSet.Sign(s.T(), checkpoint, attestations.EIP191WithLength, signers...)
	}

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{
			"success",
			func() {},
			true,
		},
		{
			"success: nil and invalid signatures are skipped",
			func() {
				msg.Signatures = sign(2, 3)
				msg.Signatures[1] = seqtesting.SignDigest(s.T(), newValSet.Keys[0], [32]byte{0x01}, attestations.EIP191WithLength)
			},
			true,
		},
		{
			"failure: signatures below the power threshold",
			func() {
				msg.Signatures = sign(0, 1, 2)
			},
			false,
		},
		{
			"failure: new nonce replays the current nonce",
			func() {
				msg.NewNonce = uint256.NewInt(genesisNonce)
				msg.Signatures = sign(0, 1, 2, 3)
			},
			false,
		},
		{
			"failure: new nonce skips a nonce",
			func() {
				msg.NewNonce = uint256.NewInt(genesisNonce + 2)
				msg.Signatures = sign(0, 1, 2, 3)
			},
			false,
		},
		{
			"failure: wrong old nonce",
			func() {
				msg.OldNonce = uint256.NewInt(genesisNonce + 1)
			},
			false,
		},
		{
			"failure: current validators do not match the checkpoint",
			func() {
				msg.CurrentValidators = newValSet.Validators
				msg.Signatures = make([]attestations.Signature, len(newValSet.Validators))
			},
			false,
		},
		{
			"failure: current validators are reordered",
			func() {
				vals := append([]attestations.Validator(nil), s.valSet.Validators...)
				vals[0], vals[1] = vals[1], vals[0]
				msg.CurrentValidators = vals
			},
			false,
		},
		{
			"failure: fewer signatures than validators",
			func() {
				msg.Signatures = msg.Signatures[:3]
			},
			false,
		},
		{
			"failure: signatures over a different checkpoint",
			func() {
				msg.NewPowerThreshold = uint256.NewInt(newThreshold + 1)
			},
			false,
		},
		{
			"failure: frozen",
			func() {
				s.freeze(true)
			},
			false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initialize()

			newValSet = seqtesting.NewValidatorSet(s.T(), 50, 50)
			msg = attestations.UpdateValidatorSetInput{
				NewNonce:            uint256.NewInt(genesisNonce + 1),
				OldNonce:            uint256.NewInt(genesisNonce),
				NewPowerThreshold:   uint256.NewInt(newThreshold),
				NewValidatorSetHash: newValSet.Hash(s.T()),
				CurrentValidators:   s.valSet.Validators,
			}
			msg.Signatures = sign(0, 1, 2, 3)

			tc.malleate()

			input, err := msg.ABIEncode()
			s.Require().NoError(err)

			before := seqtesting.Snapshot(s.store)
			ok := s.lightClientModule.UpdateValidatorSet(s.guardianCtx(), input)
			s.Require().Equal(tc.expPass, ok)

			if !tc.expPass {
				s.Require().Equal(before, seqtesting.Snapshot(s.store))
				return
			}

			clientState := s.lightClientModule.ClientState()
			s.Require().Equal(uint64(genesisNonce+1), clientState.EventNonce.Uint64())
			s.Require().Equal(newThreshold, clientState.PowerThreshold.Uint64())
			s.Require().Equal(newValSet.Checkpoint(s.T(), genesisNonce+1, newThreshold), clientState.LastValidatorSetCheckpoint)
		})
	}
}

func (s *AttestationsTestSuite) TestUpdateValidatorSetRequiresInitialization() {
	newValSet := seqtesting.NewValidatorSet(s.T(), 1)
	input, err := attestations.UpdateValidatorSetInput{
		NewNonce:            uint256.NewInt(1),
		OldNonce:            uint256.NewInt(0),
		NewPowerThreshold:   uint256.NewInt(1),
		NewValidatorSetHash: newValSet.Hash(s.T()),
	}.ABIEncode()
	s.Require().NoError(err)

	s.Require().False(s.lightClientModule.UpdateValidatorSet(s.guardianCtx(), input))
	s.Require().Empty(seqtesting.Snapshot(s.store))
}

func (s *AttestationsTestSuite) TestSubmitDataRootTupleRoot() {
	var msg attestations.SubmitDataRootTupleRootInput

	root := [32]byte{0xda, 0x7a}

	sign := func(signers ...int) []attestations.Signature {
		digest := attestations.DomainSeparateDataRootTupleRoot(msg.NewNonce, msg.DataRootTupleRoot)
		return s.valSet.Sign(s.T(), digest, attestations.EIP191WithLength, signers...)
	}

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{
			"success",
			func() {},
			true,
		},
		{
			"success: nil signatures are skipped",
			func() {
				msg.Signatures = sign(2, 3)
			},
			true,
		},
		{
			"failure: power of the remaining signatures is below the threshold",
			func() {
				msg.Signatures = sign(0, 1, 3)
				msg.Signatures[3] = attestations.Signature{}
			},
			false,
		},
		{
			"failure: nonce replay",
			func() {
				msg.NewNonce = uint256.NewInt(genesisNonce)
				msg.Signatures = sign(0, 1, 2, 3)
			},
			false,
		},
		{
			"failure: nonce gap",
			func() {
				msg.NewNonce = uint256.NewInt(genesisNonce + 2)
				msg.Signatures = sign(0, 1, 2, 3)
			},
			false,
		},
		{
			"failure: wrong validator set nonce",
			func() {
				msg.ValidatorSetNonce = uint256.NewInt(0)
			},
			false,
		},
		{
			"failure: validator checkpoint signature replayed as a data root tuple root",
			func() {
				checkpoint := attestations.DomainSeparateValidatorSetHash(msg.NewNonce, uint256.NewInt(powerThreshold), msg.DataRootTupleRoot)
				msg.Signatures = s.valSet.Sign(s.T(), checkpoint, attestations.EIP191WithLength, 0, 1, 2, 3)
			},
			false,
		},
		{
			"failure: signatures with the raw EIP-191 wrapping",
			func() {
				digest := attestations.DomainSeparateDataRootTupleRoot(msg.NewNonce, msg.DataRootTupleRoot)
				msg.Signatures = s.valSet.Sign(s.T(), digest, attestations.EIP191Raw, 0, 1, 2, 3)
			},
			false,
		},
		{
			"failure: all signatures nil",
			func() {
				msg.Signatures = make([]attestations.Signature, len(s.valSet.Validators))
			},
			false,
		},
		{
			"failure: frozen",
			func() {
				s.freeze(true)
			},
			false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initialize()

			msg = attestations.SubmitDataRootTupleRootInput{
				NewNonce:          uint256.NewInt(genesisNonce + 1),
				ValidatorSetNonce: uint256.NewInt(genesisNonce),
				DataRootTupleRoot: root,
				CurrentValidators: s.valSet.Validators,
			}
			msg.Signatures = sign(0, 1, 2, 3)

			tc.malleate()

			input, err := msg.ABIEncode()
			s.Require().NoError(err)

			before := seqtesting.Snapshot(s.store)
			ok := s.lightClientModule.SubmitDataRootTupleRoot(s.guardianCtx(), input)
			s.Require().Equal(tc.expPass, ok)

			if !tc.expPass {
				s.Require().Equal(before, seqtesting.Snapshot(s.store))
				return
			}

			s.Require().Equal(uint64(genesisNonce+1), s.lightClientModule.ClientState().EventNonce.Uint64())
			s.Require().Equal(root, s.lightClientModule.DataRootTupleRoot(uint256.NewInt(genesisNonce+1)))
		})
	}
}

func (s *AttestationsTestSuite) TestVerifyAttestation() {
	var input []byte

	tuples := s.dataRootTuples(5)
	root, proofs, err := seqtesting.BuildDataRootTupleRoot(tuples)
	s.Require().NoError(err)

	encode := func(nonce uint64, idx int) []byte {
		bz, err := commitmentProof(nonce, tuples[idx], proofs[idx]).ABIEncode()
		s.Require().NoError(err)
		return bz
	}

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{
			"success",
			func() {},
			true,
		},
		{
			"success: last leaf",
			func() {
				input = encode(genesisNonce+1, 4)
			},
			true,
		},
		{
			"failure: nonce zero",
			func() {
				input = encode(0, 0)
			},
			false,
		},
		{
			"failure: nonce not yet committed",
			func() {
				input = encode(genesisNonce+2, 0)
			},
			false,
		},
		{
			"failure: nonce without a data root tuple root",
			func() {
				input = encode(genesisNonce, 0)
			},
			false,
		},
		{
			"failure: tuple not in the tree",
			func() {
				ap := commitmentProof(genesisNonce+1, tuples[0], proofs[0])
				ap.Tuple.Height = uint256.NewInt(1)
				input, err = ap.ABIEncode()
				s.Require().NoError(err)
			},
			false,
		},
		{
			"failure: proof for another leaf",
			func() {
				ap := commitmentProof(genesisNonce+1, tuples[0], proofs[1])
				input, err = ap.ABIEncode()
				s.Require().NoError(err)
			},
			false,
		},
		{
			"failure: malformed input",
			func() {
				input = input[:64]
			},
			false,
		},
		{
			"failure: frozen",
			func() {
				s.freeze(true)
			},
			false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initialize()
			s.submitDataRootTupleRoot(genesisNonce+1, root)

			input = encode(genesisNonce+1, 0)

			tc.malleate()

			before := seqtesting.Snapshot(s.store)
			s.Require().Equal(tc.expPass, s.lightClientModule.VerifyAttestation(s.guardianCtx(), input))
			s.Require().Equal(before, seqtesting.Snapshot(s.store))
		})
	}
}

func (s *AttestationsTestSuite) TestRawSignatureVariant() {
	s.lightClientModule = attestations.NewLightClientModule(s.logger, s.store, attestations.Params{SignatureVariant: attestations.EIP191Raw})
	s.initialize()

	root := [32]byte{0x01}
	msg := attestations.SubmitDataRootTupleRootInput{
		NewNonce:          uint256.NewInt(genesisNonce + 1),
		ValidatorSetNonce: uint256.NewInt(genesisNonce),
		DataRootTupleRoot: root,
		CurrentValidators: s.valSet.Validators,
	}
	digest := attestations.DomainSeparateDataRootTupleRoot(msg.NewNonce, root)

	msg.Signatures = s.valSet.Sign(s.T(), digest, attestations.EIP191WithLength, 0, 1, 2, 3)
	input, err := msg.ABIEncode()
	s.Require().NoError(err)
	s.Require().False(s.lightClientModule.SubmitDataRootTupleRoot(s.guardianCtx(), input))

	msg.Signatures = s.valSet.Sign(s.T(), digest, attestations.EIP191Raw, 0, 1, 2, 3)
	input, err = msg.ABIEncode()
	s.Require().NoError(err)
	s.Require().True(s.lightClientModule.SubmitDataRootTupleRoot(s.guardianCtx(), input))
}
