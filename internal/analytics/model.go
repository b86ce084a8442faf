package analytics

// Report is the full analytics dataset served read-through from the
// seed file. The backend never aggregates live traffic into it.
type Report struct {
	ProductViews    []ProductView   `json:"productViews"`
	SalesByCategory []CategorySales `json:"salesByCategory"`
	UserActivity    []ActivityPoint `json:"userActivity"`
	SalesByMonth    []MonthlySales  `json:"salesByMonth"`
}

type ProductView struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Views       int    `json:"views"`
}

type CategorySales struct {
	Category string  `json:"category"`
	Sales    float64 `json:"sales"`
}

type ActivityPoint struct {
	Date        string `json:"date"`
	ActiveUsers int    `json:"activeUsers"`
}

type MonthlySales struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}
