package repository

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDGenerator builds a synthetic identifier for a new entity of the given kind.
type IDGenerator func(prefix string, now time.Time) string

const (
	IDSchemeShort = "short"
	IDSchemeUUID  = "uuid"

	suffixLength = 7
	base36       = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var base36Max = big.NewInt(int64(len(base36)))

// ShortID returns "<prefix>-<unix-millis>-<7 base36 chars>",
// e.g. "semester-1700000000000-a1b2c3d".
func ShortID(prefix string, now time.Time) string {
	var suffix strings.Builder
	suffix.Grow(suffixLength)
	for range suffixLength {
		n, err := rand.Int(rand.Reader, base36Max)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(fmt.Sprintf("repository: reading random suffix: %v", err))
		}
		suffix.WriteByte(base36[n.Int64()])
	}
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), suffix.String())
}

// UUIDID keeps the "<prefix>-<unix-millis>-<suffix>" shape but uses a random
// 128-bit UUID (hex, no dashes) as suffix.
func UUIDID(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), suffix)
}

// IDGeneratorFor maps a configured scheme name to its generator.
// Unknown names fall back to ShortID.
func IDGeneratorFor(scheme string) IDGenerator {
	if scheme == IDSchemeUUID {
		return UUIDID
	}
	return ShortID
}
