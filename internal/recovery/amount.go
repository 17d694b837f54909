package recovery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// ParseAmount parses a native-asset amount written in decimal or as a
// 0x-prefixed hexadecimal quantity (no leading zeros, as in JSON-RPC).
func ParseAmount(s string) (*uint256.Int, error) {
	if s == "" {
		return nil, errors.New("empty amount")
	}

	var (
		amount *uint256.Int
		err    error
	)

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		amount, err = uint256.FromHex(s)
	} else {
		amount, err = uint256.FromDecimal(s)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	return amount, nil
}
