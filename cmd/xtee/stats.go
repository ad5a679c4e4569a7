package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/omeyang/xtee/pkg/observability/xmetrics"
)

// statsFileMode 指标快照文件权限
const statsFileMode os.FileMode = 0o644

// writeStats 收集 reader 中的指标并以 JSON 写入 path。
// 必须在 MeterProvider 关闭之前调用。
func writeStats(ctx context.Context, reader *sdkmetric.ManualReader, path string) error {
	snap, err := xmetrics.Collect(ctx, reader)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	if snap.Sinks == nil {
		snap.Sinks = []xmetrics.SinkStats{}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("stats: encode: %w", err)
	}
	data = append(data, '\n')

	//#nosec G306 -- 指标快照不含敏感信息
	if err := os.WriteFile(path, data, statsFileMode); err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	return nil
}
