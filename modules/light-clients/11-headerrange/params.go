package headerrange

import (
	"fmt"
	"slices"
)

// Variant identifies the shape of the header range program a bridge verifies.
type Variant string

const (
	// VariantDataCommitment bridges blocks of a Tendermint chain and commits to
	// the data roots of every header range.
	VariantDataCommitment Variant = "data-commitment"
	// VariantAuthoritySet bridges blocks of a GRANDPA chain whose finality is
	// tracked through authority set hashes, and additionally commits to state
	// roots.
	VariantAuthoritySet Variant = "authority-set"

	// DefaultDataCommitmentMaxRange is the largest header range a data
	// commitment proof may cover.
	DefaultDataCommitmentMaxRange uint64 = 10_000
	// DefaultAuthoritySetMaxRange is the largest header range an authority set
	// proof may cover.
	DefaultAuthoritySetMaxRange uint64 = 1_000
)

// Variants lists every supported bridge variant.
var Variants = []Variant{VariantDataCommitment, VariantAuthoritySet}

// Params configures a header range bridge.
type Params struct {
	Variant  Variant
	MaxRange uint64
}

// NewParams creates a new Params instance
func NewParams(variant Variant, maxRange uint64) Params {
	return Params{Variant: variant, MaxRange: maxRange}
}

// DefaultParams returns the parameters of a data commitment bridge.
func DefaultParams() Params {
	return NewParams(VariantDataCommitment, DefaultDataCommitmentMaxRange)
}

// DefaultAuthoritySetParams returns the parameters of an authority set bridge.
func DefaultAuthoritySetParams() Params {
	return NewParams(VariantAuthoritySet, DefaultAuthoritySetMaxRange)
}

// Validate performs basic validation of the bridge parameters.
func (p Params) Validate() error {
	if !slices.Contains(Variants, p.Variant) {
		return fmt.Errorf("unknown bridge variant %q, expected one of %v", p.Variant, Variants)
	}
	if p.MaxRange == 0 {
		return fmt.Errorf("max range cannot be zero")
	}
	return nil
}

// tracksAuthoritySets reports whether the variant follows authority set hashes.
func (p Params) tracksAuthoritySets() bool {
	return p.Variant == VariantAuthoritySet
}
