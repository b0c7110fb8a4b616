// Package stats 把原始订单列表加工成看板用的计数与时间序列。
// 全部为纯函数：不读外部状态，不修改入参。
// 日期归桶一律比较本地日历字段（年/月/日），不做时间差运算，
// 避免时区边界附近的订单落错桶。
package stats

import "time"

// 订单状态闭集
const (
	StatusPendingPayment  = "待付款"
	StatusPendingShipment = "待发货"
	StatusPendingPickup   = "待提货"
	StatusPendingReceipt  = "待收货"
	StatusCompleted       = "已完成"
)

// Statuses 当前启用的状态集合，按展示顺序排列
var Statuses = []string{
	StatusPendingPayment,
	StatusPendingShipment,
	StatusPendingPickup,
	StatusPendingReceipt,
	StatusCompleted,
}

// Order 聚合所需的订单视图
type Order struct {
	Status          string
	Total           float64
	DistributorCode string
	CreatedAt       time.Time
}

// SeriesPoint 时间序列的一个桶
type SeriesPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type PeriodMode string

const (
	ModeDay   PeriodMode = "day"
	ModeMonth PeriodMode = "month"
)

// Options 聚合选项。DistributorCode 为空或 "all" 时不过滤；
// Now 为零值时取当前时间
type Options struct {
	DistributorCode string
	Mode            PeriodMode
	Period          time.Time
	Now             time.Time
}

// Summary 聚合结果
type Summary struct {
	StatusCounts    map[string]int `json:"status_counts"`
	CompletedCount  int            `json:"completed_count"`
	CompletedAmount float64        `json:"completed_amount"`
	PeriodCount     int            `json:"period_count"`
	PeriodAmount    float64        `json:"period_amount"`
	DailySeries     []SeriesPoint  `json:"daily_series"`
	MonthlySeries   []SeriesPoint  `json:"monthly_series"`
}

const seriesLength = 7

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// Aggregate 统计订单状态分布、报表期完成量与近 7 天/7 月完成序列
func Aggregate(orders []Order, opts Options) Summary {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	filtered := orders
	if opts.DistributorCode != "" && opts.DistributorCode != "all" {
		filtered = make([]Order, 0, len(orders))
		for _, order := range orders {
			if order.DistributorCode == opts.DistributorCode {
				filtered = append(filtered, order)
			}
		}
	}

	summary := Summary{
		StatusCounts: make(map[string]int, len(Statuses)),
	}
	for _, status := range Statuses {
		summary.StatusCounts[status] = 0
	}

	for _, order := range filtered {
		if _, known := summary.StatusCounts[order.Status]; known {
			summary.StatusCounts[order.Status]++
		}
		if order.Status != StatusCompleted {
			continue
		}
		summary.CompletedCount++
		summary.CompletedAmount += order.Total

		switch opts.Mode {
		case ModeDay:
			if sameDay(order.CreatedAt, opts.Period) {
				summary.PeriodCount++
				summary.PeriodAmount += order.Total
			}
		case ModeMonth:
			if sameMonth(order.CreatedAt, opts.Period) {
				summary.PeriodCount++
				summary.PeriodAmount += order.Total
			}
		}
	}

	summary.DailySeries = DailySeries(filtered, now)
	summary.MonthlySeries = MonthlySeries(filtered, now)
	return summary
}

// DailySeries 近 7 个日历日（含今天）的完成订单数，旧日期在前，标签 MM-DD
func DailySeries(orders []Order, now time.Time) []SeriesPoint {
	points := make([]SeriesPoint, 0, seriesLength)
	for i := seriesLength - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		point := SeriesPoint{Label: day.Format("01-02")}
		for _, order := range orders {
			if order.Status == StatusCompleted && sameDay(order.CreatedAt, day) {
				point.Count++
			}
		}
		points = append(points, point)
	}
	return points
}

// MonthlySeries 近 7 个日历月（含本月）的完成订单数，旧月份在前，标签 YYYY-MM
func MonthlySeries(orders []Order, now time.Time) []SeriesPoint {
	points := make([]SeriesPoint, 0, seriesLength)
	for i := seriesLength - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		point := SeriesPoint{Label: month.Format("2006-01")}
		for _, order := range orders {
			if order.Status == StatusCompleted && sameMonth(order.CreatedAt, month) {
				point.Count++
			}
		}
		points = append(points, point)
	}
	return points
}
