package types_test

import (
	"github.com/holiman/uint256"

	"github.com/AnomalyFi/seq-wasm/modules/core/23-commitment/types"
)

func (s *BinaryMerkleTestSuite) TestABIDecodeAttestationProof() {
	ap := types.AttestationProof{
		TupleRootNonce: uint256.NewInt(3),
		Tuple:          types.NewDataRootTuple(10, digest(rootFiveLeaves)),
		Proof: types.NewBinaryMerkleProof(digests(
			"b413f47d13ee2fe6c845b2ee141af81de858df4ec549a58b7970bb96645bc8d2",
			"78850a5ab36238b076dd99fd258c70d523168704247988a94caa8c9ccd056b8d",
		), 1, 4),
	}

	bz, err := ap.ABIEncode()
	s.Require().NoError(err)

	testCases := []struct {
		name    string
		data    []byte
		expPass bool
	}{
		{"success", bz, true},
		{"failure: empty", nil, false},
		{"failure: last byte missing", bz[:len(bz)-1], false},
		{"failure: last side node missing", bz[:len(bz)-32], false},
		{"failure: trailing zero word", append(append([]byte{}, bz...), make([]byte, 32)...), false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			decoded, err := types.ABIDecodeAttestationProof(tc.data)
			if tc.expPass {
				s.Require().NoError(err)
				s.Require().Equal(ap, *decoded)
				return
			}
			s.Require().ErrorIs(err, types.ErrInvalidAttestation)
			s.Require().Nil(decoded)
		})
	}
}
