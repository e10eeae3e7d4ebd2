package history

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateID creates a unique run identifier in hex_YYYYMMDD_HHMMSS format.
// The random prefix keeps IDs unique even for runs started in the same
// second.
func GenerateID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating random ID prefix: %w", err)
	}
	return fmt.Sprintf("%s_%s", hex.EncodeToString(buf), time.Now().Format("20060102_150405")), nil
}
