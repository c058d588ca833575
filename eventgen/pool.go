package eventgen

import (
	"fmt"
	"math/rand"
	"time"
)

// Default population sizes for the entity pool.
const (
	DefaultUserCount     = 500
	DefaultDocumentCount = 2000
)

const (
	signupWindowDays   = 365
	documentDelayDays  = 30
	userIDHexLength    = 12
	docIDHexLength     = 12
	sessionIDHexLength = 12
	eventIDHexLength   = 32
)

// poolBaseDate is the start of the historical window user signup dates are
// drawn from.
var poolBaseDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// User is one synthetic account in the entity pool. Users are created once at
// generator initialization and never mutated.
//
// ActivityLevel is an informational label; it does not bias event rates.
type User struct {
	UserID        string
	Email         string
	SignupDate    time.Time
	Plan          string
	ActivityLevel string
}

// Document is one synthetic document in the entity pool. Every document is
// owned by a pool user and created within a bounded window after the owner's
// signup.
type Document struct {
	DocumentID  string
	OwnerUserID string
	Title       string
	CreatedAt   time.Time
}

// EntityPool holds the fixed, pre-generated populations all events draw from.
// The pools are closed-world: no users or documents are added after
// initialization, so entity reuse grows with event volume.
type EntityPool struct {
	users     []User
	documents []Document
	features  []Feature
}

// newEntityPool generates the user and document populations from the shared
// random stream. Population sizes must be positive; zero would make every
// subsequent draw impossible and signals a configuration error.
func newEntityPool(rng *rand.Rand, userCount int, documentCount int) (*EntityPool, error) {
	if userCount < 1 {
		return nil, ErrEmptyUserPool
	}

	if documentCount < 1 {
		return nil, ErrEmptyDocumentPool
	}

	pool := &EntityPool{
		users:     make([]User, 0, userCount),
		documents: make([]Document, 0, documentCount),
		features:  featureCatalog,
	}

	for i := 0; i < userCount; i++ {
		signupOffset := rng.Intn(signupWindowDays + 1)

		pool.users = append(pool.users, User{
			UserID:        randomID(rng, "usr_", userIDHexLength),
			Email:         fmt.Sprintf("user%d@example.com", i),
			SignupDate:    poolBaseDate.AddDate(0, 0, signupOffset),
			Plan:          pickWeighted(rng, planWeights),
			ActivityLevel: activityLevels[rng.Intn(len(activityLevels))],
		})
	}

	for i := 0; i < documentCount; i++ {
		// Owners are drawn with replacement: a user may own zero or many documents.
		owner := pool.users[rng.Intn(len(pool.users))]
		createdOffset := rng.Intn(documentDelayDays + 1)

		pool.documents = append(pool.documents, Document{
			DocumentID:  randomID(rng, "doc_", docIDHexLength),
			OwnerUserID: owner.UserID,
			Title:       fmt.Sprintf("Document %d", i),
			CreatedAt:   owner.SignupDate.AddDate(0, 0, createdOffset),
		})
	}

	return pool, nil
}

// Users returns the full user population.
func (p *EntityPool) Users() []User {
	return p.users
}

// Documents returns the full document population.
func (p *EntityPool) Documents() []Document {
	return p.documents
}

// Features returns the fixed product feature catalog.
func (p *EntityPool) Features() []Feature {
	return p.features
}

func (p *EntityPool) randomUser(rng *rand.Rand) User {
	return p.users[rng.Intn(len(p.users))]
}

func (p *EntityPool) randomDocument(rng *rand.Rand) Document {
	return p.documents[rng.Intn(len(p.documents))]
}

func (p *EntityPool) randomFeature(rng *rand.Rand) Feature {
	return p.features[rng.Intn(len(p.features))]
}
