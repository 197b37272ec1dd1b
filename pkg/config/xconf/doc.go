// Package xconf 提供配置文件的加载和反序列化，基于 koanf 实现。
//
// xconf 只做加载：读取 YAML/JSON 文件或字节数据，按路径反序列化到结构体。
// 默认值与命令行覆盖由调用方负责：先填好默认值再 Unmarshal，
// 文件中缺失的键不会覆盖已有字段。
//
// # 支持的格式
//
//   - YAML：.yaml, .yml
//   - JSON：.json
//
// # 用法
//
//	cfg, err := xconf.New("xpi.yaml")
//	if err != nil {
//		return err
//	}
//	settings := defaultSettings()
//	if err := cfg.Unmarshal("", &settings); err != nil {
//		return err
//	}
//
// Unmarshal 使用 mapstructure，允许弱类型转换（字符串 "8" 可转为 int 8）。
package xconf
