package util

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GenerateParticipantID returns an identifier in the form
// 20260301_101502_4817: a timestamp plus a four-digit suffix drawn from
// cryptographic randomness. The suffix doubles as the participant's numeric
// seed for condition assignment.
func GenerateParticipantID(now time.Time) (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	// Map into 1000-9999 so the seed is always four digits.
	n := int(b[0])<<24 | int(b[1])<<16 | int(b[2])<<8 | int(b[3])
	suffix := 1000 + n%9000

	return fmt.Sprintf("%s_%d", now.Format("20060102_150405"), suffix), nil
}

// ParticipantSeed extracts the numeric suffix of a participant ID.
func ParticipantSeed(id string) (int, error) {
	i := strings.LastIndex(id, "_")
	if i < 0 || i == len(id)-1 {
		return 0, fmt.Errorf("malformed participant ID: %s", id)
	}
	seed, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return 0, fmt.Errorf("malformed participant ID %s: %w", id, err)
	}
	return seed, nil
}
