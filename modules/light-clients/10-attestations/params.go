package attestations

import (
	"fmt"
)

// Params configures the signature-gated bridge.
type Params struct {
	// SignatureVariant selects the EIP-191 wrapping validators sign over.
	SignatureVariant EIP191Variant
}

// DefaultParams returns the parameters of a bridge whose validators sign with
// eth_sign.
func DefaultParams() Params {
	return Params{SignatureVariant: EIP191WithLength}
}

// Validate performs basic validation of the bridge parameters.
func (p Params) Validate() error {
	switch p.SignatureVariant {
	case EIP191WithLength, EIP191Raw:
		return nil
	default:
		return fmt.Errorf("unknown signature variant %d", p.SignatureVariant)
	}
}
