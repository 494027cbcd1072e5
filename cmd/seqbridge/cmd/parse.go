package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	attestations "github.com/AnomalyFi/seq-wasm/modules/light-clients/10-attestations"
)

func parseBytes32(s string) ([32]byte, error) {
	var digest [32]byte
	bz, err := hexutil.Decode(s)
	if err != nil {
		return digest, fmt.Errorf("invalid digest %q: %w", s, err)
	}
	if len(bz) != len(digest) {
		return digest, fmt.Errorf("invalid digest %q: expected 32 bytes, got %d", s, len(bz))
	}
	copy(digest[:], bz)
	return digest, nil
}

func parseUint256(s string) (*uint256.Int, error) {
	n, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return n, nil
}

// parseValidators parses validators given as <address>:<power>.
func parseValidators(entries []string) ([]attestations.Validator, error) {
	vals := make([]attestations.Validator, 0, len(entries))
	for _, entry := range entries {
		addr, power, ok := strings.Cut(entry, ":")
		if !ok || !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("invalid validator %q, expected <address>:<power>", entry)
		}
		p, err := strconv.ParseUint(power, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid power of validator %q: %w", entry, err)
		}
		vals = append(vals, attestations.NewValidator(common.HexToAddress(addr), p))
	}
	return vals, nil
}
