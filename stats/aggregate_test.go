package stats

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 8, 30, 15, 4, 5, 0, time.Local)

func TestAggregate_CompletedAndStatusCounts(t *testing.T) {
	orders := []Order{
		{Status: StatusCompleted, Total: 100, CreatedAt: testNow},
		{Status: StatusPendingPickup, Total: 50, CreatedAt: testNow},
		{Status: StatusCompleted, Total: 30, CreatedAt: testNow.AddDate(0, 0, -40)},
	}

	summary := Aggregate(orders, Options{Now: testNow})

	if summary.CompletedCount != 2 {
		t.Fatalf("expected 2 completed, got %d", summary.CompletedCount)
	}
	if summary.CompletedAmount != 130 {
		t.Fatalf("expected amount 130, got %.2f", summary.CompletedAmount)
	}
	if summary.StatusCounts[StatusPendingPickup] != 1 {
		t.Fatalf("expected 1 pending pickup, got %d", summary.StatusCounts[StatusPendingPickup])
	}

	last := summary.DailySeries[len(summary.DailySeries)-1]
	if last.Count != 1 {
		t.Fatalf("today bucket should count 1, got %d", last.Count)
	}
	if last.Label != testNow.Format("01-02") {
		t.Fatalf("unexpected today label %s", last.Label)
	}
}

func TestAggregate_FilterByDistributor(t *testing.T) {
	orders := []Order{
		{Status: StatusCompleted, Total: 100, DistributorCode: "dist_a", CreatedAt: testNow},
		{Status: StatusCompleted, Total: 40, DistributorCode: "dist_b", CreatedAt: testNow},
	}

	summary := Aggregate(orders, Options{DistributorCode: "dist_a", Now: testNow})
	if summary.CompletedCount != 1 || summary.CompletedAmount != 100 {
		t.Fatalf("filter failed: count=%d amount=%.2f", summary.CompletedCount, summary.CompletedAmount)
	}

	// "all" 哨兵不过滤
	summary = Aggregate(orders, Options{DistributorCode: "all", Now: testNow})
	if summary.CompletedCount != 2 {
		t.Fatalf("sentinel all should keep everything, got %d", summary.CompletedCount)
	}
}

func TestAggregate_PeriodDay(t *testing.T) {
	day := time.Date(2025, 8, 12, 0, 0, 0, 0, time.Local)
	orders := []Order{
		{Status: StatusCompleted, Total: 60, CreatedAt: day.Add(23*time.Hour + 59*time.Minute)},
		{Status: StatusCompleted, Total: 70, CreatedAt: day.AddDate(0, 0, 1)},
		{Status: StatusPendingReceipt, Total: 80, CreatedAt: day},
	}

	summary := Aggregate(orders, Options{Mode: ModeDay, Period: day, Now: testNow})
	if summary.PeriodCount != 1 || summary.PeriodAmount != 60 {
		t.Fatalf("expected 1/60, got %d/%.2f", summary.PeriodCount, summary.PeriodAmount)
	}
}

func TestAggregate_PeriodMonth(t *testing.T) {
	orders := []Order{
		{Status: StatusCompleted, Total: 60, CreatedAt: time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local)},
		{Status: StatusCompleted, Total: 90, CreatedAt: time.Date(2025, 7, 31, 23, 59, 0, 0, time.Local)},
		{Status: StatusCompleted, Total: 10, CreatedAt: time.Date(2025, 8, 1, 0, 0, 0, 0, time.Local)},
	}

	summary := Aggregate(orders, Options{
		Mode:   ModeMonth,
		Period: time.Date(2025, 7, 15, 0, 0, 0, 0, time.Local),
		Now:    testNow,
	})
	if summary.PeriodCount != 2 || summary.PeriodAmount != 150 {
		t.Fatalf("expected 2/150, got %d/%.2f", summary.PeriodCount, summary.PeriodAmount)
	}
}

func TestDailySeries_AlwaysSevenPoints(t *testing.T) {
	points := DailySeries(nil, testNow)
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	for _, p := range points {
		if p.Count != 0 {
			t.Fatalf("empty input should give zero counts, got %d at %s", p.Count, p.Label)
		}
	}
	// 旧日期在前
	if points[0].Label != testNow.AddDate(0, 0, -6).Format("01-02") {
		t.Fatalf("first bucket should be 6 days ago, got %s", points[0].Label)
	}
	if points[6].Label != testNow.Format("01-02") {
		t.Fatalf("last bucket should be today, got %s", points[6].Label)
	}
}

func TestMonthlySeries_AlwaysSevenPoints(t *testing.T) {
	orders := []Order{
		{Status: StatusCompleted, CreatedAt: testNow},
		{Status: StatusCompleted, CreatedAt: testNow.AddDate(0, -2, 0)},
		{Status: StatusCompleted, CreatedAt: testNow.AddDate(-1, 0, 0)}, // 超出窗口
		{Status: StatusPendingPayment, CreatedAt: testNow},              // 非完成不计
	}

	points := MonthlySeries(orders, testNow)
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	if points[6].Label != "2025-08" || points[6].Count != 1 {
		t.Fatalf("current month bucket wrong: %+v", points[6])
	}
	if points[4].Label != "2025-06" || points[4].Count != 1 {
		t.Fatalf("two months ago bucket wrong: %+v", points[4])
	}
	if points[0].Label != "2025-02" {
		t.Fatalf("first bucket should be 2025-02, got %s", points[0].Label)
	}
}

func TestMonthlySeries_YearBoundary(t *testing.T) {
	january := time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local)
	points := MonthlySeries(nil, january)

	if points[0].Label != "2025-07" {
		t.Fatalf("expected window to start at 2025-07, got %s", points[0].Label)
	}
	if points[6].Label != "2026-01" {
		t.Fatalf("expected window to end at 2026-01, got %s", points[6].Label)
	}
}

func TestAggregate_InputNotMutated(t *testing.T) {
	orders := []Order{
		{Status: StatusCompleted, Total: 100, DistributorCode: "dist_a", CreatedAt: testNow},
		{Status: StatusPendingPayment, Total: 50, DistributorCode: "dist_b", CreatedAt: testNow},
	}
	before := make([]Order, len(orders))
	copy(before, orders)

	Aggregate(orders, Options{DistributorCode: "dist_a", Now: testNow})

	for i := range orders {
		if orders[i] != before[i] {
			t.Fatal("input slice must not be mutated")
		}
	}
}
