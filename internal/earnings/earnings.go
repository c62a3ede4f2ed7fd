// Package earnings derives the farmer earnings and analytics figures
// from the order history. Everything is recomputed per call over the
// store's order snapshots, mirroring how cart totals are derived.
package earnings

import (
	"sort"
	"time"

	"github.com/young4chick/kukuhub/internal/state"
	"github.com/young4chick/kukuhub/pkg/enums"
)

// Summary is the earnings card on the farmer dashboard. Delivered
// orders count as earned; pending and in-transit orders are payout
// still in flight. Cancelled orders count toward neither.
type Summary struct {
	TotalEarnings int
	PendingPayout int
	ThisMonth     int
	LastMonth     int
}

// MonthlyBucket is one bar of the earnings chart.
type MonthlyBucket struct {
	Month  time.Month
	Year   int
	Amount int
}

// ProductRevenue ranks a product by delivered revenue.
type ProductRevenue struct {
	ProductID string
	Name      string
	Units     int
	Revenue   int
}

// Summarize computes the earnings card relative to now.
func Summarize(orders []state.Order, now time.Time) Summary {
	summary := Summary{}
	thisMonth, thisYear := now.Month(), now.Year()
	lastMonthTime := now.AddDate(0, -1, 0)
	lastMonth, lastYear := lastMonthTime.Month(), lastMonthTime.Year()

	for _, order := range orders {
		switch order.Status {
		case enums.OrderStatusDelivered:
			summary.TotalEarnings += order.Total
			if order.CreatedAt.Month() == thisMonth && order.CreatedAt.Year() == thisYear {
				summary.ThisMonth += order.Total
			}
			if order.CreatedAt.Month() == lastMonth && order.CreatedAt.Year() == lastYear {
				summary.LastMonth += order.Total
			}
		case enums.OrderStatusPending, enums.OrderStatusInTransit:
			summary.PendingPayout += order.Total
		}
	}
	return summary
}

// MonthlyBreakdown buckets delivered revenue by calendar month, oldest
// first.
func MonthlyBreakdown(orders []state.Order) []MonthlyBucket {
	type key struct {
		year  int
		month time.Month
	}
	amounts := map[key]int{}
	for _, order := range orders {
		if order.Status != enums.OrderStatusDelivered {
			continue
		}
		amounts[key{order.CreatedAt.Year(), order.CreatedAt.Month()}] += order.Total
	}

	buckets := make([]MonthlyBucket, 0, len(amounts))
	for k, amount := range amounts {
		buckets = append(buckets, MonthlyBucket{Month: k.month, Year: k.year, Amount: amount})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}
		return buckets[i].Month < buckets[j].Month
	})
	return buckets
}

// TopProducts ranks products by delivered revenue, highest first,
// truncated to limit.
func TopProducts(orders []state.Order, limit int) []ProductRevenue {
	byProduct := map[string]*ProductRevenue{}
	for _, order := range orders {
		if order.Status != enums.OrderStatusDelivered {
			continue
		}
		for _, line := range order.Items {
			entry, ok := byProduct[line.ProductID()]
			if !ok {
				entry = &ProductRevenue{ProductID: line.ProductID(), Name: line.Name}
				byProduct[line.ProductID()] = entry
			}
			entry.Units += line.Quantity
			entry.Revenue += line.Subtotal()
		}
	}

	ranked := make([]ProductRevenue, 0, len(byProduct))
	for _, entry := range byProduct {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
