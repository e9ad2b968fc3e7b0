package queries_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetVendorOrdersQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	q, err := queries.NewGetVendorOrdersQuery(id, 2, 25, "adaeze", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, id, q.VendorID())
	assert.Equal(t, 2, q.Page())
	assert.Equal(t, 25, q.Limit())
	assert.Equal(t, "adaeze", q.Search())

	_, _, ok := q.DateRange()
	assert.False(t, ok)
}

func TestNewGetVendorOrdersQuery_InvalidVendorID(t *testing.T) {
	_, err := queries.NewGetVendorOrdersQuery(kernel.UUID{}, 1, 10, "", time.Time{}, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetVendorOrdersQuery_PageIsClampedToOne(t *testing.T) {
	for _, page := range []int{0, -5} {
		q, err := queries.NewGetVendorOrdersQuery(kernel.NewUUID(), page, 10, "", time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, 1, q.Page(), "page=%d", page)
	}
}

func TestNewGetVendorOrdersQuery_LimitIsClamped(t *testing.T) {
	cases := []struct {
		requested int
		want      int
	}{
		{requested: 0, want: 1},
		{requested: -3, want: 1},
		{requested: 1000, want: 100},
		{requested: 100, want: 100},
		{requested: 10, want: 10},
	}
	for _, tc := range cases {
		q, err := queries.NewGetVendorOrdersQuery(kernel.NewUUID(), 1, tc.requested, "", time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, tc.want, q.Limit(), "limit=%d", tc.requested)
	}
}

func TestNewGetVendorOrdersQuery_SearchIsTrimmed(t *testing.T) {
	q, err := queries.NewGetVendorOrdersQuery(kernel.NewUUID(), 1, 10, "  ST-abc  ", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "ST-abc", q.Search())

	q, err = queries.NewGetVendorOrdersQuery(kernel.NewUUID(), 1, 10, "   ", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, q.Search())
}

func TestNewGetVendorOrdersQuery_SingleDateBoundIsDropped(t *testing.T) {
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	q, err := queries.NewGetVendorOrdersQuery(kernel.NewUUID(), 1, 10, "", from, time.Time{})
	require.NoError(t, err)
	_, _, ok := q.DateRange()
	assert.False(t, ok, "from without to must drop the range")

	q, err = queries.NewGetVendorOrdersQuery(kernel.NewUUID(), 1, 10, "", time.Time{}, to)
	require.NoError(t, err)
	_, _, ok = q.DateRange()
	assert.False(t, ok, "to without from must drop the range")

	q, err = queries.NewGetVendorOrdersQuery(kernel.NewUUID(), 1, 10, "", from, to)
	require.NoError(t, err)
	gotFrom, gotTo, ok := q.DateRange()
	require.True(t, ok)
	assert.Equal(t, from, gotFrom)
	assert.Equal(t, to, gotTo)
}

func TestNewGetTodayOrdersQuery_FixesRangeToCalendarDay(t *testing.T) {
	lagos := time.FixedZone("WAT", 60*60)
	at := time.Date(2026, time.March, 16, 14, 30, 0, 0, lagos)

	q, err := queries.NewGetTodayOrdersQuery(kernel.NewUUID(), 1, 10, "", at)
	require.NoError(t, err)

	from, to, ok := q.DateRange()
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, lagos), from)
	assert.Equal(t, time.Date(2026, time.March, 16, 23, 59, 59, 999000000, lagos), to)
}
