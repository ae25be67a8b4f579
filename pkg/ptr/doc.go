// Package ptr 提供指针相关的子包。
//
// 子包列表：
//   - xbit: 位宽计算工具，对齐值与掩码的推导
//   - xstateptr: 带状态标签的指针，把小整数状态打包进对齐指针恒为零的低位
//
// 设计原则：
//   - 零额外内存开销：打包字与裸指针同宽
//   - 纯值语义：不持有所指对象的所有权，不做任何同步
//   - 契约式校验：违约在 checked 构建下立即中止，unchecked 构建下零开销
package ptr
