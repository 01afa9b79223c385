package content

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListCacheKey_GenerationRetiresOldKeys(t *testing.T) {
	filter := ListFilter{Page: 1, Limit: 20}

	before := ListCacheKey(1, filter)
	after := ListCacheKey(2, filter)

	assert.NotEqual(t, before, after, "a generation bump must change every list key")
}

func TestListCacheKey_DistinctFilters(t *testing.T) {
	kind := KindArticle
	status := StatusPublished
	category := uuid.New()

	keys := map[string]bool{
		ListCacheKey(1, ListFilter{Page: 1, Limit: 20}):                          true,
		ListCacheKey(1, ListFilter{Kind: &kind, Page: 1, Limit: 20}):             true,
		ListCacheKey(1, ListFilter{Status: &status, Page: 1, Limit: 20}):         true,
		ListCacheKey(1, ListFilter{CategoryID: &category, Page: 1, Limit: 20}):   true,
		ListCacheKey(1, ListFilter{Tag: "go", Page: 1, Limit: 20}):               true,
		ListCacheKey(1, ListFilter{Page: 2, Limit: 20}):                          true,
	}

	assert.Len(t, keys, 6, "different query combinations must map to different keys")
}

func TestListCacheKey_Deterministic(t *testing.T) {
	kind := KindVideo
	filter := ListFilter{Kind: &kind, Tag: "release", Page: 3, Limit: 50}

	assert.Equal(t, ListCacheKey(7, filter), ListCacheKey(7, filter))
}

func TestGenKeysFor_CoverKindAndUnfiltered(t *testing.T) {
	keys := GenKeysFor(KindArticle)

	assert.Contains(t, keys, ListGenKey(KindArticle))
	assert.Contains(t, keys, ListGenKey(""), "unfiltered lists can contain any kind")
}

func TestItemCacheKey_Exact(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, "content:item:"+id.String(), ItemCacheKey(id))
}
