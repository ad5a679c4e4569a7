// Package xconf 提供配置文件的加载和解析，基于 koanf 实现。
//
// # 设计理念
//
// xconf 定位为最小化配置加载器，只负责加载和反序列化。默认值和
// 命令行参数覆盖由调用方处理；[Config.Exists] 用于判断某个键是否在
// 文件中显式给出。
//
// # 支持的格式
//
//   - YAML：.yaml, .yml
//   - JSON：.json
//
// # Unmarshal
//
// Unmarshal 使用 mapstructure 反序列化，允许弱类型转换，实现了
// encoding.TextUnmarshaler 的字段（如 datasize.ByteSize、xlog.Level）
// 直接从字符串解码。[WithStrict] 开启后，文件中出现目标结构体没有的键
// 会返回 [ErrUnmarshalFailed]，用于发现拼写错误。
package xconf
