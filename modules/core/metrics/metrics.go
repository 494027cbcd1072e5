package metrics

import (
	"github.com/hashicorp/go-metrics"
)

// Prometheus metric labels.
const (
	LabelBridgeType = "bridge_type"
	LabelVariant    = "variant"
	LabelOperation  = "operation"
	LabelResult     = "result"

	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

// ReportOperation counts one entry point call of the given bridge and whether
// it was applied.
func ReportOperation(bridgeType, variant, operation string, err error) {
	result := ResultAccepted
	if err != nil {
		result = ResultRejected
	}

	metrics.IncrCounterWithLabels(
		[]string{"seqwasm", "bridge", operation},
		1,
		[]metrics.Label{
			{Name: LabelBridgeType, Value: bridgeType},
			{Name: LabelVariant, Value: variant},
			{Name: LabelResult, Value: result},
		},
	)
}

// ReportLatestHeight records the latest block height tracked by a bridge.
func ReportLatestHeight(bridgeType string, height uint64) {
	metrics.SetGaugeWithLabels(
		[]string{"seqwasm", "bridge", "latest_height"},
		float32(height),
		[]metrics.Label{{Name: LabelBridgeType, Value: bridgeType}},
	)
}
