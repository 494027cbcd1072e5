package headerrange_test

import (
	"math"

	"github.com/holiman/uint256"

	commitmenttypes "github.com/AnomalyFi/seq-wasm/modules/core/23-commitment/types"
	"github.com/AnomalyFi/seq-wasm/modules/core/exported"
	"github.com/AnomalyFi/seq-wasm/modules/core/guardian"
	headerrange "github.com/AnomalyFi/seq-wasm/modules/light-clients/11-headerrange"
	seqtesting "github.com/AnomalyFi/seq-wasm/testing"
)

func (s *HeaderRangeTestSuite) TestInitializer() {
	var (
		ctx   exported.TxContext
		msg   headerrange.InitializerInput
		input []byte
	)

	testCases := []struct {
		name     string
		params   headerrange.Params
		malleate func()
		expPass  bool
	}{
		{
			"success: data commitment bridge",
			headerrange.DefaultParams(),
			func() {},
			true,
		},
		{
			"success: authority set bridge",
			headerrange.DefaultAuthoritySetParams(),
			func() {},
			true,
		},
		{
			"success: data commitment bridge above 32 bit heights",
			headerrange.DefaultParams(),
			func() {
				msg.Height = math.MaxUint32 + 1
			},
			true,
		},
		{
			"failure: authority set bridge above 32 bit heights",
			headerrange.DefaultAuthoritySetParams(),
			func() {
				msg.Height = math.MaxUint32 + 1
			},
			false,
		},
		{
			"failure: already initialized",
			headerrange.DefaultParams(),
			func() {
				s.initialize()
			},
			false,
		},
		{
			"failure: empty message sender",
			headerrange.DefaultParams(),
			func() {
				ctx.MsgSender = nil
			},
			false,
		},
		{
			"failure: program verifying key hash is not 0x-prefixed",
			headerrange.DefaultParams(),
			func() {
				msg.ProgramVKeyHash = programVKeyHash[2:]
			},
			false,
		},
		{
			"failure: empty program verifying key",
			headerrange.DefaultParams(),
			func() {
				msg.ProgramVKey = nil
			},
			false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.setup(tc.params)

			ctx = s.guardianCtx()
			msg = s.initializerInput()

			tc.malleate()

			var err error
			input, err = msg.ABIEncode()
			s.Require().NoError(err)

			before := seqtesting.Snapshot(s.store)
			ok := s.lightClientModule.Initializer(ctx, input)
			s.Require().Equal(tc.expPass, ok)

			if !tc.expPass {
				s.Require().Equal(before, seqtesting.Snapshot(s.store))
				return
			}

			s.Require().Equal(exported.Active, s.lightClientModule.Status())

			clientState := s.lightClientModule.ClientState()
			s.Require().Equal(msg.Height, clientState.LatestBlock)
			s.Require().Equal(uint64(1), clientState.ProofNonce.Uint64())
			s.Require().Equal(programVKeyHash, clientState.ProgramVKeyHash)
			s.Require().Equal(programVKey, clientState.ProgramVKey)
			s.Require().Equal(genesisHeader, s.lightClientModule.HeaderHash(msg.Height))

			if tc.params.Variant == headerrange.VariantAuthoritySet {
				s.Require().Equal(uint64(genesisAuthoritySetID), clientState.LatestAuthoritySetID)
				s.Require().Equal(genesisAuthoritySetHash, s.lightClientModule.AuthoritySetHash(genesisAuthoritySetID))
			} else {
				s.Require().Zero(clientState.LatestAuthoritySetID)
				s.Require().Equal([32]byte{}, s.lightClientModule.AuthoritySetHash(genesisAuthoritySetID))
			}
		})
	}
}

func (s *HeaderRangeTestSuite) TestInitializerMalformedInput() {
	input, err := s.initializerInput().ABIEncode()
	s.Require().NoError(err)

	s.Require().False(s.lightClientModule.Initializer(s.guardianCtx(), input[:len(input)-1]))
	s.Require().False(s.lightClientModule.Initializer(s.guardianCtx(), nil))
	s.Require().Empty(seqtesting.Snapshot(s.store))
	s.Require().Equal(exported.Uninitialized, s.lightClientModule.Status())
}

func (s *HeaderRangeTestSuite) TestUpdateFreeze() {
	var ctx exported.TxContext

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
			"failure: sender is not the guardian",
			func() {
				ctx.MsgSender = strangerAddr
			},
			false,
		},
		{
			"failure: not initialized",
			func() {
				s.setup(s.params)
			},
			false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initialize()

			ctx = s.guardianCtx()

			tc.malleate()

			input, err := guardian.UpdateFreezeInput{Freeze: true}.ABIEncode()
			s.Require().NoError(err)

			before := seqtesting.Snapshot(s.store)
			ok := s.lightClientModule.UpdateFreeze(ctx, input)
			s.Require().Equal(tc.expPass, ok)

			if !tc.expPass {
				s.Require().Equal(before, seqtesting.Snapshot(s.store))
				return
			}
			s.Require().Equal(exported.Frozen, s.lightClientModule.Status())
		})
	}
}

func (s *HeaderRangeTestSuite) TestCommitHeaderRange() {
	var (
		msg headerrange.CommitHeaderRangeInput
		out headerrange.HeaderRangeOutput
	)

	commitTo := func(target uint64) {
		out = headerRangeOutput(target)
		msg = s.commitHeaderRangeInput(0, target, out)
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
			"success: next block",
			func() {
				commitTo(genesisHeight + 1)
			},
			true,
		},
		{
			"success: maximum range",
			func() {
				commitTo(genesisHeight + headerrange.DefaultDataCommitmentMaxRange)
			},
			true,
		},
		{
			"failure: not initialized",
			func() {
				s.setup(s.params)
			},
			false,
		},
		{
			"failure: bridge frozen",
			func() {
				s.freeze(true)
			},
			false,
		},
		{
			"failure: target block equals the latest block",
			func() {
				commitTo(genesisHeight)
			},
			false,
		},
		{
			"failure: target block beyond the maximum range",
			func() {
				commitTo(genesisHeight + headerrange.DefaultDataCommitmentMaxRange + 1)
			},
			false,
		},
		{
			"failure: input proves a different target block",
			func() {
				msg.TargetBlock++
			},
			false,
		},
		{
			"failure: input proves a different trusted header",
			func() {
				in := headerrange.HeaderRangeInput{LatestBlock: genesisHeight, TrustedHeader: [32]byte{0xff}, TargetBlock: msg.TargetBlock}
				packed, err := in.EncodePacked(headerrange.VariantDataCommitment)
				s.Require().NoError(err)
				msg.Input = packed
			},
			false,
		},
		{
			"failure: input truncated",
			func() {
				msg.Input = msg.Input[:len(msg.Input)-1]
			},
			false,
		},
		{
			"failure: invalid proof",
			func() {
				msg.Proof = []byte("invalid proof")
			},
			false,
		},
		{
			"failure: malformed output",
			func() {
				msg.Output = msg.Output[:32]
			},
			false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initialize()

			commitTo(genesisHeight + 50)

			tc.malleate()

			input, err := msg.ABIEncode()
			s.Require().NoError(err)

			before := seqtesting.Snapshot(s.store)
			ok := s.lightClientModule.CommitHeaderRange(s.guardianCtx(), input)
			s.Require().Equal(tc.expPass, ok)

			if !tc.expPass {
				s.Require().Equal(before, seqtesting.Snapshot(s.store))
				return
			}

			nonce := uint256.NewInt(1)
			clientState := s.lightClientModule.ClientState()
			s.Require().Equal(msg.TargetBlock, clientState.LatestBlock)
			s.Require().Equal(uint64(2), clientState.ProofNonce.Uint64())
			s.Require().Equal(out.TargetHeaderHash, s.lightClientModule.HeaderHash(msg.TargetBlock))
			s.Require().Equal(genesisHeader, s.lightClientModule.HeaderHash(genesisHeight))
			s.Require().Equal(out.DataCommitment, s.lightClientModule.DataCommitment(nonce))

			// data commitment bridges only track data commitments
			s.Require().Equal([32]byte{}, s.lightClientModule.StateRootCommitment(nonce))
			start, end := s.lightClientModule.Range(nonce)
			s.Require().Zero(start)
			s.Require().Zero(end)

			call := s.verifier.Calls[len(s.verifier.Calls)-1]
			s.Require().Equal(programVKeyHash, call.ProgramVKeyHash)
			s.Require().Equal(programVKey, call.ProgramVKey)
			s.Require().Equal(headerrange.PublicValues(msg.Input, msg.Output), call.PublicValues)
		})
	}
}

func (s *HeaderRangeTestSuite) TestCommitHeaderRangeMalformedInput() {
	s.initialize()

	input, err := s.commitHeaderRangeInput(0, genesisHeight+1, headerRangeOutput(genesisHeight+1)).ABIEncode()
	s.Require().NoError(err)

	before := seqtesting.Snapshot(s.store)
	s.Require().False(s.lightClientModule.CommitHeaderRange(s.guardianCtx(), input[:len(input)-1]))
	s.Require().False(s.lightClientModule.CommitHeaderRange(s.guardianCtx(), []byte{0x01}))
	s.Require().Equal(before, seqtesting.Snapshot(s.store))
	s.Require().Empty(s.verifier.Calls)
}

func (s *HeaderRangeTestSuite) TestCommitHeaderRangeSequence() {
	s.initialize()

	targets := []uint64{genesisHeight + 10, genesisHeight + 10_010, genesisHeight + 10_011}
	for _, target := range targets {
		s.commitHeaderRange(0, target, headerRangeOutput(target))
	}

	clientState := s.lightClientModule.ClientState()
	s.Require().Equal(targets[len(targets)-1], clientState.LatestBlock)
	s.Require().Equal(uint64(len(targets)+1), clientState.ProofNonce.Uint64())

	for i, target := range targets {
		s.Require().Equal(headerRangeOutput(target).TargetHeaderHash, s.lightClientModule.HeaderHash(target))
		s.Require().Equal(headerRangeOutput(target).DataCommitment, s.lightClientModule.DataCommitment(uint256.NewInt(uint64(i+1))))
	}

	// targets behind the latest block are rejected
	msg := s.commitHeaderRangeInput(0, targets[0], headerRangeOutput(targets[0]))
	input, err := msg.ABIEncode()
	s.Require().NoError(err)
	s.Require().False(s.lightClientModule.CommitHeaderRange(s.guardianCtx(), input))
}

func (s *HeaderRangeTestSuite) TestCommitHeaderRangeAuthoritySet() {
	var (
		msg               headerrange.CommitHeaderRangeInput
		out               headerrange.HeaderRangeOutput
		expAuthoritySetID uint64
	)

	nextAuthoritySetHash := [32]byte{0xa5, 0x08}

	commitTo := func(authoritySetID, target uint64) {
		out = headerRangeOutput(target)
		msg = s.commitHeaderRangeInput(authoritySetID, target, out)
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
			"success: proven with the next authority set",
			func() {
				s.rotate(genesisAuthoritySetID, nextAuthoritySetHash)
				commitTo(genesisAuthoritySetID+1, genesisHeight+500)
				expAuthoritySetID = genesisAuthoritySetID + 1
			},
			true,
		},
		{
			"success: maximum range",
			func() {
				commitTo(genesisAuthoritySetID, genesisHeight+headerrange.DefaultAuthoritySetMaxRange)
			},
			true,
		},
		{
			"failure: unknown authority set",
			func() {
				commitTo(genesisAuthoritySetID+1, genesisHeight+500)
			},
			false,
		},
		{
			"failure: authority set older than the latest one",
			func() {
				s.rotate(genesisAuthoritySetID, nextAuthoritySetHash)
				s.commitHeaderRange(genesisAuthoritySetID+1, genesisHeight+500, headerRangeOutput(genesisHeight+500))
				commitTo(genesisAuthoritySetID, genesisHeight+600)
			},
			false,
		},
		{
			"failure: target block beyond the maximum range",
			func() {
				commitTo(genesisAuthoritySetID, genesisHeight+headerrange.DefaultAuthoritySetMaxRange+1)
			},
			false,
		},
		{
			"failure: target block above 32 bits",
			func() {
				msg.TargetBlock = math.MaxUint32 + 1
			},
			false,
		},
		{
			"failure: input uses the data commitment layout",
			func() {
				in := headerrange.HeaderRangeInput{LatestBlock: genesisHeight, TrustedHeader: genesisHeader, TargetBlock: msg.TargetBlock}
				packed, err := in.EncodePacked(headerrange.VariantDataCommitment)
				s.Require().NoError(err)
				msg.Input = packed
			},
			false,
		},
		{
			"failure: input proves a different authority set",
			func() {
				in := headerrange.HeaderRangeInput{
					LatestBlock:      genesisHeight,
					TrustedHeader:    genesisHeader,
					AuthoritySetID:   genesisAuthoritySetID,
					AuthoritySetHash: nextAuthoritySetHash,
					TargetBlock:      msg.TargetBlock,
				}
				packed, err := in.EncodePacked(headerrange.VariantAuthoritySet)
				s.Require().NoError(err)
				msg.Input = packed
			},
			false,
		},
		{
			"failure: output uses the data commitment layout",
			func() {
				output, err := out.Encode(headerrange.VariantDataCommitment)
				s.Require().NoError(err)
				msg.Output = output
			},
			false,
		},
		{
			"failure: invalid proof",
			func() {
				msg.Proof = nil
			},
			false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.setup(headerrange.DefaultAuthoritySetParams())
			s.initialize()

			expAuthoritySetID = genesisAuthoritySetID
			commitTo(genesisAuthoritySetID, genesisHeight+500)

			tc.malleate()

			input, err := msg.ABIEncode()
			s.Require().NoError(err)

			before := seqtesting.Snapshot(s.store)
			ok := s.lightClientModule.CommitHeaderRange(s.guardianCtx(), input)
			s.Require().Equal(tc.expPass, ok)

			if !tc.expPass {
				s.Require().Equal(before, seqtesting.Snapshot(s.store))
				return
			}

			nonce := uint256.NewInt(1)
			clientState := s.lightClientModule.ClientState()
			s.Require().Equal(msg.TargetBlock, clientState.LatestBlock)
			s.Require().Equal(uint64(2), clientState.ProofNonce.Uint64())
			s.Require().Equal(expAuthoritySetID, clientState.LatestAuthoritySetID)
			s.Require().Equal(out.TargetHeaderHash, s.lightClientModule.HeaderHash(msg.TargetBlock))
			s.Require().Equal(out.DataCommitment, s.lightClientModule.DataCommitment(nonce))
			s.Require().Equal(out.StateRootCommitment, s.lightClientModule.StateRootCommitment(nonce))

			start, end := s.lightClientModule.Range(nonce)
			s.Require().Equal(uint64(genesisHeight), start)
			s.Require().Equal(msg.TargetBlock, end)
		})
	}
}

func (s *HeaderRangeTestSuite) TestRotate() {
	var (
		msg  headerrange.RotateInput
		next [32]byte
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
			"success: rotate twice",
			func() {
				s.rotate(genesisAuthoritySetID, [32]byte{0xa5, 0x08})
				msg = s.rotateInput(genesisAuthoritySetID+1, next)
			},
			true,
		},
		{
			"failure: data commitment bridge",
			func() {
				s.setup(headerrange.DefaultParams())
				s.initialize()
			},
			false,
		},
		{
			"failure: bridge frozen",
			func() {
				s.freeze(true)
			},
			false,
		},
		{
			"failure: unknown current authority set",
			func() {
				msg = s.rotateInput(genesisAuthoritySetID+1, next)
			},
			false,
		},
		{
			"failure: next authority set already stored",
			func() {
				s.rotate(genesisAuthoritySetID, [32]byte{0xa5, 0x08})
			},
			false,
		},
		{
			"failure: authority set id overflows",
			func() {
				input, err := headerrange.UpdateGenesisStateInput{
					Height:           genesisHeight,
					Header:           genesisHeader,
					AuthoritySetID:   math.MaxUint64,
					AuthoritySetHash: genesisAuthoritySetHash,
				}.ABIEncode()
				s.Require().NoError(err)
				s.Require().True(s.lightClientModule.UpdateGenesisState(s.guardianCtx(), input))

				msg = s.rotateInput(math.MaxUint64, next)
			},
			false,
		},
		{
			"failure: input proves a different authority set",
			func() {
				msg.Input = headerrange.EncodeRotateInput(genesisAuthoritySetID, [32]byte{0xff})
			},
			false,
		},
		{
			"failure: invalid proof",
			func() {
				msg.Proof = []byte("invalid proof")
			},
			false,
		},
		{
			"failure: next authority set hash is zero",
			func() {
				msg = s.rotateInput(genesisAuthoritySetID, [32]byte{})
			},
			false,
		},
		{
			"failure: malformed output",
			func() {
				msg.Output = msg.Output[:31]
			},
			false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.setup(headerrange.DefaultAuthoritySetParams())
			s.initialize()

			next = [32]byte{0xa5, 0x99}
			msg = s.rotateInput(genesisAuthoritySetID, next)

			tc.malleate()

			input, err := msg.ABIEncode()
			s.Require().NoError(err)

			before := seqtesting.Snapshot(s.store)
			ok := s.lightClientModule.Rotate(s.guardianCtx(), input)
			s.Require().Equal(tc.expPass, ok)

			if !tc.expPass {
				s.Require().Equal(before, seqtesting.Snapshot(s.store))
				return
			}

			s.Require().Equal(next, s.lightClientModule.AuthoritySetHash(msg.CurrentAuthoritySetID+1))
			// rotations do not move the latest authority set
			s.Require().Equal(uint64(genesisAuthoritySetID), s.lightClientModule.ClientState().LatestAuthoritySetID)
		})
	}
}

func (s *HeaderRangeTestSuite) TestUpdateGenesisState() {
	var (
		ctx exported.TxContext
		msg headerrange.UpdateGenesisStateInput
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
			"success: bridge frozen",
			func() {
				s.freeze(true)
			},
			true,
		},
		{
			"success: move back to an older height",
			func() {
				s.commitHeaderRange(genesisAuthoritySetID, genesisHeight+500, headerRangeOutput(genesisHeight+500))
				msg.Height = genesisHeight + 1
			},
			true,
		},
		{
			"failure: sender is not the guardian",
			func() {
				ctx.MsgSender = strangerAddr
			},
			false,
		},
		{
			"failure: not initialized",
			func() {
				s.setup(s.params)
			},
			false,
		},
		{
			"failure: height above 32 bits",
			func() {
				msg.Height = math.MaxUint32 + 1
			},
			false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.setup(headerrange.DefaultAuthoritySetParams())
			s.initialize()

			ctx = s.guardianCtx()
			msg = headerrange.UpdateGenesisStateInput{
				Height:           genesisHeight + 2_000,
				Header:           [32]byte{0x9e, 0x4f},
				AuthoritySetID:   genesisAuthoritySetID + 3,
				AuthoritySetHash: [32]byte{0xa5, 0x0a},
			}

			tc.malleate()

			input, err := msg.ABIEncode()
			s.Require().NoError(err)

			before := seqtesting.Snapshot(s.store)
			ok := s.lightClientModule.UpdateGenesisState(ctx, input)
			s.Require().Equal(tc.expPass, ok)

			if !tc.expPass {
				s.Require().Equal(before, seqtesting.Snapshot(s.store))
				return
			}

			clientState := s.lightClientModule.ClientState()
			s.Require().Equal(msg.Height, clientState.LatestBlock)
			s.Require().Equal(msg.AuthoritySetID, clientState.LatestAuthoritySetID)
			s.Require().Equal(msg.Header, s.lightClientModule.HeaderHash(msg.Height))
			s.Require().Equal(msg.AuthoritySetHash, s.lightClientModule.AuthoritySetHash(msg.AuthoritySetID))
		})
	}
}

func (s *HeaderRangeTestSuite) TestUpdateProgramVkey() {
	var (
		ctx exported.TxContext
		msg headerrange.UpdateProgramVkeyInput
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
			"failure: sender is not the guardian",
			func() {
				ctx.MsgSender = strangerAddr
			},
			false,
		},
		{
			"failure: program verifying key hash longer than 32 bytes",
			func() {
				msg.ProgramVKeyHash = append(append([]byte{}, programVKeyHash...), "00"...)
			},
			false,
		},
		{
			"failure: program verifying key hash is not hex",
			func() {
				msg.ProgramVKeyHash = []byte("0xzz")
			},
			false,
		},
		{
			"failure: empty program verifying key",
			func() {
				msg.ProgramVKey = nil
			},
			false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initialize()

			ctx = s.guardianCtx()
			msg = headerrange.UpdateProgramVkeyInput{
				ProgramVKeyHash: []byte("0x0011"),
				ProgramVKey:     []byte("next program verifying key"),
			}

			tc.malleate()

			input, err := msg.ABIEncode()
			s.Require().NoError(err)

			before := seqtesting.Snapshot(s.store)
			ok := s.lightClientModule.UpdateProgramVkey(ctx, input)
			s.Require().Equal(tc.expPass, ok)

			if !tc.expPass {
				s.Require().Equal(before, seqtesting.Snapshot(s.store))
				return
			}

			clientState := s.lightClientModule.ClientState()
			s.Require().Equal(msg.ProgramVKeyHash, clientState.ProgramVKeyHash)
			s.Require().Equal(msg.ProgramVKey, clientState.ProgramVKey)

			s.commitHeaderRange(0, genesisHeight+1, headerRangeOutput(genesisHeight+1))
			call := s.verifier.Calls[len(s.verifier.Calls)-1]
			s.Require().Equal(msg.ProgramVKeyHash, call.ProgramVKeyHash)
			s.Require().Equal(msg.ProgramVKey, call.ProgramVKey)
		})
	}
}

func (s *HeaderRangeTestSuite) TestVerifyAttestation() {
	var input []byte

	tuples := dataRootTuples(5)
	root, proofs, err := seqtesting.BuildDataRootTupleRoot(tuples)
	s.Require().NoError(err)

	encode := func(nonce uint64, idx int) []byte {
		bz, err := commitmenttypes.AttestationProof{
			TupleRootNonce: uint256.NewInt(nonce),
			Tuple:          tuples[idx],
			Proof:          proofs[idx],
		}.ABIEncode()
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
				input = encode(1, 4)
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
			"failure: nonce not yet proven",
			func() {
				input = encode(2, 0)
			},
			false,
		},
		{
			"failure: nonce proven with a zero data commitment",
			func() {
				out := headerRangeOutput(genesisHeight + 20)
				out.DataCommitment = [32]byte{}
				s.commitHeaderRange(0, genesisHeight+20, out)
				input = encode(2, 0)
			},
			false,
		},
		{
			"failure: tuple not in the tree",
			func() {
				ap := commitmenttypes.AttestationProof{
					TupleRootNonce: uint256.NewInt(1),
					Tuple:          commitmenttypes.NewDataRootTuple(1, tuples[0].DataRoot),
					Proof:          proofs[0],
				}
				input, err = ap.ABIEncode()
				s.Require().NoError(err)
			},
			false,
		},
		{
			"failure: bridge frozen",
			func() {
				s.freeze(true)
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
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initialize()

			out := headerRangeOutput(genesisHeight + 10)
			out.DataCommitment = root
			s.commitHeaderRange(0, genesisHeight+10, out)
			input = encode(1, 0)

			tc.malleate()

			before := seqtesting.Snapshot(s.store)
			ok := s.lightClientModule.VerifyAttestation(exported.TxContext{}, input)
			s.Require().Equal(tc.expPass, ok)
			s.Require().Equal(before, seqtesting.Snapshot(s.store))
		})
	}
}
