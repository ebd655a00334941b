package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
)

const browseCandidatesPattern = "browse:candidates:*"

type browseCacheKeyInput struct {
	ExcludeOwner string `json:"exclude_owner"`
}

// BrowseCandidatesCacheKey keys the cached candidate list per viewer: the
// candidate set differs only by which owner's skills are excluded.
func BrowseCandidatesCacheKey(excludeOwnerID uuid.UUID) string {
	in := browseCacheKeyInput{ExcludeOwner: excludeOwnerID.String()}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "browse:candidates:" + hex.EncodeToString(sum[:])
}
