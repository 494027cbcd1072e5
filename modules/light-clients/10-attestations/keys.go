package attestations

import (
	"github.com/AnomalyFi/seq-wasm/modules/core/exported"
)

const (
	// ModuleName is the name of the signature-gated bridge module.
	ModuleName = exported.Attestations

	KeyEventNonce                 = "state_eventNonce"
	KeyPowerThreshold             = "state_powerThreshold"
	KeyLastValidatorSetCheckpoint = "state_lastValidatorSetCheckpoint"
	KeyDataRootTupleRoots         = "state_dataRootTupleRoots"
)
