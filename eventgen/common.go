package eventgen

import (
	"encoding/hex"
	"errors"
	"math/rand"

	"github.com/google/uuid"
)

var ErrEmptyUserPool = errors.New("user pool size must be positive")
var ErrEmptyDocumentPool = errors.New("document pool size must be positive")

// randomID builds an identifier of the form "<prefix><hexLen lowercase hex>".
//
// The random bytes are drawn through uuid.NewRandomFromReader from the
// generator's seeded stream, so identifiers are reproducible for a given seed.
// A *rand.Rand reader never fails, hence uuid.Must.
func randomID(rng *rand.Rand, prefix string, hexLen int) string {
	u := uuid.Must(uuid.NewRandomFromReader(rng))

	return prefix + hex.EncodeToString(u[:])[:hexLen]
}
