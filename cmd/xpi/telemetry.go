package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/omeyang/xtpool/pkg/observability/xmetrics"
)

// telemetry 收集一次计算中每个任务的执行指标，结束后打印汇总。
type telemetry struct {
	observer xmetrics.Observer
	reader   *sdkmetric.ManualReader
	meter    *sdkmetric.MeterProvider
	tracer   *sdktrace.TracerProvider
}

func newTelemetry() (*telemetry, error) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	// 不注册 exporter，span 只用于驱动指标记录
	tp := sdktrace.NewTracerProvider()

	obs, err := xmetrics.NewOTelObserver(
		xmetrics.WithInstrumentationName("xpi"),
		xmetrics.WithMeterProvider(mp),
		xmetrics.WithTracerProvider(tp),
	)
	if err != nil {
		_ = mp.Shutdown(context.Background())
		_ = tp.Shutdown(context.Background())
		return nil, err
	}
	return &telemetry{observer: obs, reader: reader, meter: mp, tracer: tp}, nil
}

type taskSummary struct {
	byStatus map[string]int64
	count    uint64
	seconds  float64
}

func (t *telemetry) collect(ctx context.Context) (taskSummary, error) {
	var rm metricdata.ResourceMetrics
	if err := t.reader.Collect(ctx, &rm); err != nil {
		return taskSummary{}, err
	}

	s := taskSummary{byStatus: make(map[string]int64)}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					status, _ := dp.Attributes.Value(attribute.Key("status"))
					s.byStatus[status.AsString()] += dp.Value
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					s.count += dp.Count
					s.seconds += dp.Sum
				}
			}
		}
	}
	return s, nil
}

// report 输出任务总数、按状态的分布和平均执行耗时。
func (t *telemetry) report(ctx context.Context, w io.Writer) error {
	s, err := t.collect(ctx)
	if err != nil {
		return err
	}

	statuses := make([]string, 0, len(s.byStatus))
	for status := range s.byStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	fmt.Fprintf(w, "tasks: %d\n", s.count)
	for _, status := range statuses {
		fmt.Fprintf(w, "  %s: %d\n", status, s.byStatus[status])
	}
	if s.count > 0 {
		fmt.Fprintf(w, "mean task time: %.3fµs\n", s.seconds/float64(s.count)*1e6)
	}
	return nil
}

func (t *telemetry) shutdown(ctx context.Context) error {
	return errors.Join(t.meter.Shutdown(ctx), t.tracer.Shutdown(ctx))
}
