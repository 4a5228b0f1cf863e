package request

// Admin list screens (bookings, accommodations, gallery) page with these bounds.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PaginatedRequest is the page window shared by the admin list endpoints.
// Out-of-range values are clamped rather than rejected.
type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// Limit is the row count passed to the repository LIMIT clause.
func (p PaginatedRequest) Limit() int {
	switch {
	case p.PerPage < 1:
		return DefaultPerPage
	case p.PerPage > MaxPerPage:
		return MaxPerPage
	default:
		return p.PerPage
	}
}

func (p PaginatedRequest) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}
