package headerrange

import (
	"github.com/AnomalyFi/seq-wasm/modules/core/exported"
)

const (
	// ModuleName is the name of the proof-gated header range bridge module.
	ModuleName = exported.HeaderRange

	KeyLatestBlock          = "state_latestBlock"
	KeyProofNonce           = "state_proofNonce"
	KeyLatestAuthoritySetID = "state_latestAuthoritySetId"
	KeyProgramVKeyHash      = "state_programVKeyHash"
	KeyProgramVKey          = "state_programVKey"

	KeyBlockHeightToHeaderHash = "state_blockHeightToHeaderHash"
	KeyAuthoritySetIDToHash    = "state_authoritySetIdToHash"
	KeyDataCommitments         = "state_dataCommitments"
	KeyStateRootCommitments    = "state_stateRootCommitments"
	KeyRangeStartBlocks        = "state_rangeStartBlocks"
	KeyRangeEndBlocks          = "state_rangeEndBlocks"
)
