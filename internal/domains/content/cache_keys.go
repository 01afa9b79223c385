package content

import (
	"crypto/md5"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cache TTLs per key family.
const (
	ItemCacheTTL = 10 * time.Minute
	ListCacheTTL = 5 * time.Minute
)

// List cache keys are generation-versioned. Every list key embeds the
// current generation counter for its kind; a mutation bumps the
// counter, which makes every previously written list key unreachable
// in O(1). This replaces wildcard deletes: a plain key-value cache has
// no sound "delete by prefix", so stale list variants can only be
// retired by versioning them out, never by pattern-deleting them.
// Orphaned entries expire through their TTL.

// ItemCacheKey is the exact key for a single-item read.
func ItemCacheKey(id uuid.UUID) string {
	return "content:item:" + id.String()
}

// ListGenKey is where the generation counter for a kind lives. The
// empty kind ("" = unfiltered lists) has its own counter.
func ListGenKey(kind Kind) string {
	if kind == "" {
		return "content:list:gen:all"
	}
	return "content:list:gen:" + string(kind)
}

// ListCacheKey builds the versioned key for a list query. The filter
// is flattened and hashed so arbitrary parameter combinations collapse
// into one short key; gen prefixes the hash so a bump retires every
// variant at once.
func ListCacheKey(gen int64, filter ListFilter) string {
	parts := []string{
		derefKind(filter.Kind),
		derefStatus(filter.Status),
		derefUUID(filter.CategoryID),
		derefUUID(filter.AuthorOwnerID),
		filter.Tag,
		strconv.Itoa(filter.Page),
		strconv.Itoa(filter.Limit),
	}
	sum := md5.Sum([]byte(strings.Join(parts, ":")))
	return fmt.Sprintf("content:list:v%d:%x", gen, sum)
}

// GenKeysFor returns the generation counters a mutation of kind must
// bump: the kind's own lists and the unfiltered lists.
func GenKeysFor(kind Kind) []string {
	return []string{ListGenKey(kind), ListGenKey("")}
}

func derefKind(k *Kind) string {
	if k == nil {
		return ""
	}
	return string(*k)
}

func derefStatus(s *Status) string {
	if s == nil {
		return ""
	}
	return string(*s)
}

func derefUUID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
