// Package xconf 提供基于 koanf 的轻量配置加载。
//
// # 功能概览
//
//   - [New]: 从文件加载配置，按扩展名识别 YAML/JSON
//   - [NewFromBytes]: 从字节数据加载，显式指定格式
//   - [Config.Unmarshal]: 反序列化指定路径到结构体
//   - [Config.Koanf]: 暴露底层 koanf 实例，执行其余读操作
//
// # 设计决策
//
// Config 是加载即定型的只读快照：没有 Reload、没有文件监听。
// ptrkit 的唯一配置消费方是 ptrlayout 的批量报告输入，读一次就够了；
// 不需要热更新，也就不引入锁与后台 goroutine。
//
// 只提供增值封装（格式识别、错误包装、反序列化便捷方法），
// 不在 koanf 之上再做接口抽象：底层库稳定，替换需求极低。
//
// # 相关包
//
//   - 布局报告 CLI：ptrlayout（cmd/ptrlayout）
package xconf
