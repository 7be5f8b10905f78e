package queries_test

import (
	"testing"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestGetStockSummaryQuery_Validate(t *testing.T) {
	require.NoError(t, queries.NewGetStockSummaryQuery().Validate())

	var zero queries.GetStockSummaryQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetStockSummaryQueryIsNotConstructed)
}

func TestGetPendingCancellationsQuery_Validate(t *testing.T) {
	require.NoError(t, queries.NewGetPendingCancellationsQuery().Validate())

	var zero queries.GetPendingCancellationsQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetPendingCancellationsQueryIsNotConstructed)
}

func TestNewGetDeliveryCalendarQuery(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewGetDeliveryCalendarQuery(from, to)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.True(t, query.From().Equal(from))
	require.True(t, query.To().Equal(to))

	_, err = queries.NewGetDeliveryCalendarQuery(to, from)
	require.ErrorIs(t, err, queries.ErrCalendarRangeIsInvalid)

	_, err = queries.NewGetDeliveryCalendarQuery(time.Time{}, to)
	require.ErrorIs(t, err, queries.ErrCalendarRangeIsInvalid)
}
