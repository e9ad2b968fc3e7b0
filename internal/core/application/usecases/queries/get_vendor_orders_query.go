package queries

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetVendorOrdersQueryIsNotConstructed = errors.New(
	"GetVendorOrdersQuery must be created via NewGetVendorOrdersQuery or NewGetTodayOrdersQuery",
)

const (
	// DefaultPageLimit is applied when the caller does not supply a limit.
	DefaultPageLimit = 10
	maxPageLimit     = 100
)

// GetVendorOrdersQuery retrieves one page of a vendor's orders, newest first.
// The vendor id must come from the authenticated caller's identity, never
// from a client-supplied parameter; it scopes every listing unconditionally.
//
// Malformed pagination inputs are silently clamped rather than rejected:
// page is coerced to at least 1, limit to the range [1, 100]. An
// all-whitespace search term counts as absent. A date range with only one
// bound is dropped entirely (both-or-neither semantics).
type GetVendorOrdersQuery struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	page     int
	limit    int
	search   string
	dateFrom time.Time
	dateTo   time.Time

	guard guard.ConstructorGuard
}

// NewGetVendorOrdersQuery creates a listing query over all of a vendor's
// orders. Zero time values mean no date bound on that side.
func NewGetVendorOrdersQuery(
	vendorID kernel.UUID,
	page, limit int,
	search string,
	dateFrom, dateTo time.Time,
) (GetVendorOrdersQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorOrdersQuery{}, err
	}

	if dateFrom.IsZero() || dateTo.IsZero() {
		dateFrom, dateTo = time.Time{}, time.Time{}
	}

	return GetVendorOrdersQuery{
		vendorID: vendorID,
		page:     max(page, 1),
		limit:    min(max(limit, 1), maxPageLimit),
		search:   strings.TrimSpace(search),
		dateFrom: dateFrom,
		dateTo:   dateTo,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewGetTodayOrdersQuery creates a listing query fixed to the calendar day of
// the given instant in its own location, from midnight through 23:59:59.999.
// Caller-supplied date ranges are not accepted in this mode.
func NewGetTodayOrdersQuery(
	vendorID kernel.UUID,
	page, limit int,
	search string,
	at time.Time,
) (GetVendorOrdersQuery, error) {
	year, month, day := at.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, at.Location())
	dayEnd := time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), at.Location())

	return NewGetVendorOrdersQuery(vendorID, page, limit, search, dayStart, dayEnd)
}

// Validate ensures the query was created through a constructor.
func (q GetVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorOrdersQueryIsNotConstructed)
}

// VendorID returns the scoping vendor identity.
func (q GetVendorOrdersQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// Page returns the normalized page number, at least 1.
func (q GetVendorOrdersQuery) Page() int {
	return q.page
}

// Limit returns the normalized page size within [1, 100].
func (q GetVendorOrdersQuery) Limit() int {
	return q.limit
}

// Search returns the trimmed search term; empty means no search filter.
func (q GetVendorOrdersQuery) Search() string {
	return q.search
}

// DateRange returns the inclusive creation-time bounds and whether a range
// applies at all.
func (q GetVendorOrdersQuery) DateRange() (from, to time.Time, ok bool) {
	if q.dateFrom.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	return q.dateFrom, q.dateTo, true
}

// OrderSummary is one listing row: the denormalized view a vendor sees when
// browsing incoming orders.
type OrderSummary struct {
	Code         string
	CustomerName string
	PhoneNumber  string
	DeliveryType string
	Address      string
	TotalAmount  float64
	Status       string
	CreatedAt    time.Time
}

// OrdersPage is the paginated listing result. Total counts every order
// matching the filters regardless of pagination; TotalPages is the ceiling
// of Total over Limit.
type OrdersPage struct {
	Orders     []OrderSummary
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
