package types

import "github.com/ggasam0/shopmall/stats"

// AdminSummary 管理员工作台关键指标
type AdminSummary struct {
	TotalSales         float64             `json:"total_sales"`
	PendingOrders      int64               `json:"pending_orders"`
	ActiveDistributors int64               `json:"active_distributors"`
	FeaturedProducts   int64               `json:"featured_products"`
	StatusCounts       map[string]int      `json:"status_counts"`
	DailySeries        []stats.SeriesPoint `json:"daily_series"`
	MonthlySeries      []stats.SeriesPoint `json:"monthly_series"`
}

// DistributorSummary 分销商后台指标
type DistributorSummary struct {
	DistributorID  int64               `json:"distributor_id"`
	Code           string              `json:"code"`
	Name           string              `json:"name"`
	PickupAddress  string              `json:"pickup_address"`
	TotalOrders    int                 `json:"total_orders"`
	Commission     float64             `json:"commission"`
	CompletedCount int                 `json:"completed_count"`
	CompletedTotal float64             `json:"completed_total"`
	PeriodCount    int                 `json:"period_count"`
	PeriodAmount   float64             `json:"period_amount"`
	DailySeries    []stats.SeriesPoint `json:"daily_series"`
	MonthlySeries  []stats.SeriesPoint `json:"monthly_series"`
}
