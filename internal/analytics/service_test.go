package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() Report {
	return Report{
		ProductViews: []ProductView{
			{ProductID: "p1", ProductName: "Pro Running Shoes", Views: 1240},
			{ProductID: "p2", ProductName: "Trail Backpack", Views: 860},
		},
		SalesByCategory: []CategorySales{
			{Category: "Shoes", Sales: 45200},
			{Category: "Equipment", Sales: 12800},
		},
		UserActivity: []ActivityPoint{
			{Date: "2026-02-01", ActiveUsers: 312},
		},
		SalesByMonth: []MonthlySales{
			{Month: "January", Sales: 10400},
			{Month: "February", Sales: 12950},
		},
	}
}

func TestAccessorsReturnSeedData(t *testing.T) {
	svc, err := NewService(testReport())
	require.NoError(t, err)
	ctx := context.Background()

	views, err := svc.ProductViews(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 1240, views[0].Views)

	sales, err := svc.SalesByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Shoes", sales[0].Category)

	activity, err := svc.UserActivity(ctx)
	require.NoError(t, err)
	assert.Equal(t, 312, activity[0].ActiveUsers)

	monthly, err := svc.SalesByMonth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12950.0, monthly[1].Sales)
}

func TestAccessorsReturnCopies(t *testing.T) {
	svc, err := NewService(testReport())
	require.NoError(t, err)
	ctx := context.Background()

	views, err := svc.ProductViews(ctx)
	require.NoError(t, err)
	views[0].Views = -1

	again, err := svc.ProductViews(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1240, again[0].Views)
}

func TestEmptyReportServesEmptySlices(t *testing.T) {
	svc, err := NewService(Report{})
	require.NoError(t, err)

	views, err := svc.ProductViews(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}
