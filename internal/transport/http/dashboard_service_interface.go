package http

import (
	"context"

	"finboard/pkg/contracts/domain"
)

// DashboardServiceInterface is the service surface the dashboard handler
// depends on. Defined here so handler tests can substitute a stub.
type DashboardServiceInterface interface {
	CompanyDashboard(ctx context.Context, ticker string) domain.DashboardData
	LoadAll(ctx context.Context) (map[string]domain.DashboardData, error)
	Companies() []domain.Company
}
