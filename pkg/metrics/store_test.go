package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStoreMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewStoreMetrics(reg)

	metrics.IncOrdersPlaced()
	metrics.IncNotificationsCreated("success")
	metrics.IncNotificationsCreated("success")
	metrics.AddCartUnits(5)
	metrics.AddCartUnits(-1)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "orders_placed_total", "", ""); err != nil {
		t.Fatalf("fetch orders placed: %v", err)
	} else if got != 1 {
		t.Fatalf("expected orders_placed_total=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "notifications_created_total", "type", "success"); err != nil {
		t.Fatalf("fetch notifications created: %v", err)
	} else if got != 2 {
		t.Fatalf("expected notifications_created_total=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "cart_units_added_total", "", ""); err != nil {
		t.Fatalf("fetch cart units: %v", err)
	} else if got != 5 {
		t.Fatalf("expected cart_units_added_total=5, got %f", got)
	}
}

func TestStoreMetricsNilRegistererIsNoop(t *testing.T) {
	metrics := NewStoreMetrics(nil)
	metrics.IncOrdersPlaced()
	metrics.IncNotificationsCreated("promo")
	metrics.AddCartUnits(3)
	// nothing to assert beyond not panicking

	var absent *StoreMetrics
	absent.IncOrdersPlaced()
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if label == "" || matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q with label %s=%s not found", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, pair := range labels {
		if pair.GetName() == name && pair.GetValue() == value {
			return true
		}
	}
	return false
}
