package toolsvc

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

const (
	idPrefix      = "TOOL"
	idTimeFormat  = "20060102150405"
	maxIDAttempts = 10
)

// generateID mints a TOOL-<UTC timestamp>-<hex suffix> identifier that
// does not collide with the given set. Two random bytes give 65536
// suffixes per second, so the retry bound is a safety valve rather
// than an expected path.
func generateID(existing map[string]struct{}) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		var suffix [2]byte
		if _, err := rand.Read(suffix[:]); err != nil {
			return "", err
		}
		id := fmt.Sprintf("%s-%s-%s", idPrefix, time.Now().UTC().Format(idTimeFormat), hex.EncodeToString(suffix[:]))
		if _, taken := existing[id]; !taken {
			return id, nil
		}
	}
	return "", errors.New("id generation: retry attempts exhausted")
}
