package xmetrics_test

import (
	"context"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/omeyang/xtee/pkg/observability/xmetrics"
)

func ExampleCollect() {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(ctx) }()

	rec, err := xmetrics.NewOTelRecorder(xmetrics.WithMeterProvider(mp))
	if err != nil {
		fmt.Println(err)
		return
	}
	rec.RecordRead(ctx, 12)
	rec.RecordWrite(ctx, "out.log", 12)
	rec.RecordRotation(ctx, "out.log")

	snap, err := xmetrics.Collect(ctx, reader)
	if err != nil {
		fmt.Println(err)
		return
	}
	st, _ := snap.Sink("out.log")
	fmt.Println(snap.InputBytes, st.Bytes, st.Rotations)
	// Output:
	// 12 12 1
}
