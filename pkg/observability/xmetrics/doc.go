// Package xmetrics 提供 xtee 的运行指标。
//
// # 设计理念
//
// 广播器只依赖 [Recorder] 接口；默认实现基于 OpenTelemetry Metric API，
// 未配置时使用 [NoopRecorder]。
//
// # 使用示例
//
//	reader := sdkmetric.NewManualReader()
//	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
//	rec, _ := xmetrics.NewOTelRecorder(xmetrics.WithMeterProvider(mp))
//	rec.RecordWrite(ctx, "out.log", 128)
//	snap, _ := xmetrics.Collect(ctx, reader)
//
// # 指标命名
//
//   - xtee.input.bytes: 从输入读取的字节数
//   - xtee.sink.bytes: 写入输出端的字节数（属性 sink）
//   - xtee.sink.rotations: 轮转次数（属性 sink）
//   - xtee.sink.failures: 写入/刷新失败次数（属性 sink / action / pipe）
package xmetrics
