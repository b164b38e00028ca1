package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cache is the read-through cache the company lookups use. A miss is
// (false, nil); implementations may drop writes.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const (
	companyPublicPrefix = "companies:public:"
	companySearchPrefix = "companies:search:"
)

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

func CompanyPublicCacheKey(id uuid.UUID) string {
	return companyPublicPrefix + id.String()
}

// CompanySearchCacheKey hashes the normalized term so arbitrary input never
// lands in a key verbatim.
func CompanySearchCacheKey(term string) string {
	sum := sha256.Sum256([]byte(normalizeSearchValue(term)))
	return companySearchPrefix + hex.EncodeToString(sum[:])
}

func CompanySearchCachePattern() string {
	return companySearchPrefix + "*"
}
