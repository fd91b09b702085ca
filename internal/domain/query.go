package domain

// Sort fields understood by the catalog listing endpoint
const (
	OrderFollowedCount = "followedCount"
	OrderCreatedAt     = "createdAt"
	OrderDesc          = "desc"
)

// IncludeCoverArt asks the catalog to embed cover relationships in the listing
const IncludeCoverArt = "cover_art"

// ListParams is the request a QueryState maps to
type ListParams struct {
	Limit          int
	Offset         int
	Includes       []string
	OrderField     string // empty = server default order
	OrderDirection string
	Title          string // empty = no title filter
}

// Offset returns the zero-based index of the first title on page.
// Pages below 1 are treated as page 1.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}

// TotalPages returns ceil(total / PageSize), never negative
func TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// DeriveParams maps a query state to listing request parameters
func DeriveParams(q QueryState) ListParams {
	params := ListParams{
		Limit:    PageSize,
		Offset:   Offset(q.Page),
		Includes: []string{IncludeCoverArt},
	}

	switch q.Filter {
	case FilterPopular:
		params.OrderField = OrderFollowedCount
		params.OrderDirection = OrderDesc
	case FilterLatest:
		params.OrderField = OrderCreatedAt
		params.OrderDirection = OrderDesc
	}

	if q.SearchText != "" {
		params.Title = q.SearchText
	}

	return params
}

// PrevPage returns the page "Previous" moves to, floored at 1
func PrevPage(page int) int {
	return max(page-1, 1)
}

// NextPage returns the page "Next" moves to.
// Next only advances while CanNext holds; on or past the last page, or with
// no pages known, the current page is kept.
func NextPage(page, totalPages int) int {
	if !CanNext(page, totalPages) {
		return page
	}
	return page + 1
}

// CanPrev reports whether "Previous" is enabled
func CanPrev(page int) bool {
	return page > 1
}

// CanNext reports whether "Next" is enabled
func CanNext(page, totalPages int) bool {
	return page < totalPages
}
