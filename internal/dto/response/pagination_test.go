package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginatedResponse(t *testing.T) {
	page := NewPaginatedResponse([]string{"Ocean Villa", "Garden Suite"}, 2, 2, 5)
	assert.Equal(t, PaginationMeta{Total: 5, Page: 2, PerPage: 2, TotalPages: 3}, page.Pagination)

	empty := NewPaginatedResponse[string](nil, 1, 10, 0)
	assert.Equal(t, 0, empty.Pagination.TotalPages)

	raw, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"pagination":{"total":0,"page":1,"per_page":10,"total_pages":0}}`, string(raw))
}
