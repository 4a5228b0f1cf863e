package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequest_Window(t *testing.T) {
	tests := []struct {
		name       string
		req        PaginatedRequest
		wantLimit  int
		wantOffset int
	}{
		{name: "first page", req: PaginatedRequest{Page: 1, PerPage: 20}, wantLimit: 20, wantOffset: 0},
		{name: "third page", req: PaginatedRequest{Page: 3, PerPage: 25}, wantLimit: 25, wantOffset: 50},
		{name: "missing per page", req: PaginatedRequest{Page: 2}, wantLimit: DefaultPerPage, wantOffset: DefaultPerPage},
		{name: "oversized page", req: PaginatedRequest{Page: 2, PerPage: 500}, wantLimit: MaxPerPage, wantOffset: MaxPerPage},
		{name: "zero page", req: PaginatedRequest{Page: 0, PerPage: 10}, wantLimit: 10, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLimit, tt.req.Limit())
			assert.Equal(t, tt.wantOffset, tt.req.Offset())
		})
	}
}
