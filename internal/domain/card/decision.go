package card

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

const (
	balanceFloor = 1000
	balanceSpan  = 19001
)

// Classify decides whether a well-formed code verifies. The rule is
// deterministic: codes ending in '0' or '5' verify, everything else
// is rejected. Same input, same answer, always.
func Classify(c Code) bool {
	s := c.String()
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last == '0' || last == '5'
}

// StableBalance derives a pseudo-balance from the code alone so that
// repeated checks of the same code always report the same amount.
// Range is [1000, 20000] minor units.
func StableBalance(c Code) int64 {
	sum := sha256.Sum256([]byte(c.String()))
	prefix := hex.EncodeToString(sum[:])[:6]
	n, err := strconv.ParseInt(prefix, 16, 64)
	if err != nil {
		// 6 hex chars always parse; unreachable.
		return balanceFloor
	}
	return balanceFloor + n%balanceSpan
}
