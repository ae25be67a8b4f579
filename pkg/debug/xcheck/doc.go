// Package xcheck 提供可按构建选择的契约校验层。
//
// # 功能概览
//
//   - [Enabled]: 编译期常量，标记当前构建是否启用契约校验
//   - [Assert]: 不变量断言，checked 构建下违约立即 panic
//   - [Assertf]: 带格式化诊断信息的断言
//
// # 构建策略
//
// 默认构建（checked）启用全部校验，违约以调用方给出的诊断信息 panic，
// 便于在开发与测试阶段第一时间暴露编程错误。
//
// 使用 -tags ptrkit_unchecked 构建（unchecked）时，Enabled 为编译期 false，
// 断言整体被编译器消除，校验零开销；此时违约是未定义行为——打包字可能
// 被静默破坏。这是刻意的性能取舍：热路径上不能比裸指针多付出任何代价，
// 因此违约不会被降级成可恢复的错误。
//
// # 设计决策
//
// 校验开关做成编译期常量而非运行时变量：分支条件是常量时编译器可以
// 彻底消除断言代码，运行时开关则总要留下一次加载与一次分支。
// 需要按环境切换策略的场景（生产 unchecked、预发 checked）通过
// 构建标签在编译期完成选择。
//
// 这里的失败全部是契约违约（编程错误），不是环境性失败，
// 因此没有错误返回值、没有重试、没有降级路径。
package xcheck
