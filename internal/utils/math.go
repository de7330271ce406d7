package utils

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"
)

const (
	lockKeySeparator = ":"
	// positiveInt64Mask clears the sign bit so keys stay valid bigint lock ids.
	positiveInt64Mask = 0x7FFFFFFFFFFFFFFF
)

// AdvisoryLockKey hashes a namespace and its parts into a stable positive
// int64 for pg_advisory_xact_lock.
func AdvisoryLockKey(namespace string, parts ...string) int64 {
	h := sha256.Sum256([]byte(namespace + lockKeySeparator + strings.Join(parts, lockKeySeparator)))
	return int64(binary.BigEndian.Uint64(h[:8]) & positiveInt64Mask)
}

// SafeSub returns a-b floored at zero.
func SafeSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
