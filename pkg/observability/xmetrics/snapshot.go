package xmetrics

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// SinkStats 单个输出端的累计指标
type SinkStats struct {
	Sink       string `json:"sink"`
	Bytes      int64  `json:"bytes"`
	Rotations  int64  `json:"rotations"`
	Suppressed int64  `json:"suppressed"`
	Aborted    int64  `json:"aborted"`
	Pipe       int64  `json:"broken_pipe"`
}

// Snapshot 一次收集的指标快照，Sinks 按名称排序
type Snapshot struct {
	InputBytes int64       `json:"input_bytes"`
	Sinks      []SinkStats `json:"sinks"`
}

// Sink 返回指定输出端的统计，不存在时返回零值和 false
func (s Snapshot) Sink(name string) (SinkStats, bool) {
	for _, st := range s.Sinks {
		if st.Sink == name {
			return st, true
		}
	}
	return SinkStats{}, false
}

// Collect 从 reader 收集 xtee 指标。
//
// reader 必须已注册到创建 Recorder 的 MeterProvider，且尚未关闭。
func Collect(ctx context.Context, reader sdkmetric.Reader) (Snapshot, error) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(normalize(ctx), &rm); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrCollect, err)
	}

	var snap Snapshot
	sinks := make(map[string]*SinkStats)
	get := func(set attribute.Set) *SinkStats {
		name := ""
		if v, ok := set.Value(attrSink); ok {
			name = v.AsString()
		}
		st, ok := sinks[name]
		if !ok {
			st = &SinkStats{Sink: name}
			sinks[name] = st
		}
		return st
	}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				switch m.Name {
				case metricInputBytes:
					snap.InputBytes += dp.Value
				case metricSinkBytes:
					get(dp.Attributes).Bytes += dp.Value
				case metricSinkRotations:
					get(dp.Attributes).Rotations += dp.Value
				case metricSinkFailures:
					st := get(dp.Attributes)
					if v, ok := dp.Attributes.Value(attrAction); ok && v.AsString() == ActionAbort {
						st.Aborted += dp.Value
					} else {
						st.Suppressed += dp.Value
					}
					if v, ok := dp.Attributes.Value(attrPipe); ok && v.AsBool() {
						st.Pipe += dp.Value
					}
				}
			}
		}
	}

	snap.Sinks = make([]SinkStats, 0, len(sinks))
	for _, st := range sinks {
		snap.Sinks = append(snap.Sinks, *st)
	}
	slices.SortFunc(snap.Sinks, func(a, b SinkStats) int {
		return strings.Compare(a.Sink, b.Sink)
	})
	return snap, nil
}
