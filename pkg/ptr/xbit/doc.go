// Package xbit 提供位宽计算工具。
//
// # 功能概览
//
//   - [Log2]: 以 2 为底的对数（向下取整），0 和 1 的特例返回 0
//   - [StateBits]: 某个对齐值保证恒为零的指针低位位数
//   - [Mask]: 低 n 位全为 1 的掩码
//   - [WordBits]: 当前平台指针的位宽
//
// # 设计决策
//
// 所有函数都是纯函数，无状态、无错误路径，对全部可表示输入总是有定义。
// Log2 基于 math/bits 的前导零计数实现，O(1) 完成，不依赖循环。
//
// # 相关包
//
//   - 带状态标签的指针：[github.com/omeyang/ptrkit/pkg/ptr/xstateptr]
package xbit
