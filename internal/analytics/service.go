package analytics

import "context"

// Service serves the analytics dataset. All accessors return copies so
// callers can never mutate the shared report.
type Service interface {
	ProductViews(ctx context.Context) ([]ProductView, error)
	SalesByCategory(ctx context.Context) ([]CategorySales, error)
	UserActivity(ctx context.Context) ([]ActivityPoint, error)
	SalesByMonth(ctx context.Context) ([]MonthlySales, error)
}

type service struct {
	report Report
}

// NewService builds an analytics service over a loaded report.
func NewService(report Report) (Service, error) {
	return &service{report: report}, nil
}

func (s *service) ProductViews(_ context.Context) ([]ProductView, error) {
	out := make([]ProductView, len(s.report.ProductViews))
	copy(out, s.report.ProductViews)
	return out, nil
}

func (s *service) SalesByCategory(_ context.Context) ([]CategorySales, error) {
	out := make([]CategorySales, len(s.report.SalesByCategory))
	copy(out, s.report.SalesByCategory)
	return out, nil
}

func (s *service) UserActivity(_ context.Context) ([]ActivityPoint, error) {
	out := make([]ActivityPoint, len(s.report.UserActivity))
	copy(out, s.report.UserActivity)
	return out, nil
}

func (s *service) SalesByMonth(_ context.Context) ([]MonthlySales, error) {
	out := make([]MonthlySales, len(s.report.SalesByMonth))
	copy(out, s.report.SalesByMonth)
	return out, nil
}
