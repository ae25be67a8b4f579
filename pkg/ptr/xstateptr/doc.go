// Package xstateptr 提供带状态标签的指针：把调用方自定义的小整数状态
// 打包进对齐指针恒为零的低位，零额外内存开销。
//
// # 功能概览
//
//   - [StatePtr]: 打包了指针与状态的单字值类型，行为尽量贴近裸指针
//   - [Layout]: 元素类型的位划分方案，支持显式收窄状态位数
//   - [New] / [Null]: 默认位划分下的构造
//   - Hash / Compare / Equal: 哈希、排序与相等性
//
// # 位划分
//
// 元素类型 T 的对齐值是 2^k 时，任何合法 *T 地址的低 k 位恒为零，
// StatePtr 把这 k 位用作状态位：
//
//	打包字 = 地址 | 状态        （状态 ∈ [0, 2^k-1]）
//
// 状态位数 + 指针位数恒等于平台字宽；StatePtr 与裸指针同宽，
// 按值复制只复制打包字，不触及所指对象。
//
// # 契约与校验
//
// 状态越界（构造或 SetState 时超过 StateMax）是编程错误：checked 构建下
// 立即以 "state value is out of bounds" panic；unchecked 构建
// （-tags ptrkit_unchecked）下是未定义行为，打包字可能被静默破坏。
// 详见 [github.com/omeyang/ptrkit/pkg/debug/xcheck]。
//
// 非 nil 指针必须按 T 的对齐要求对齐，这是前置条件而非运行时检查，
// 与裸指针转换的契约一致。解引用 nil 分量的 StatePtr 同样遵循
// 裸指针语义：由调用方保证非空。
//
// # 设计决策
//
//   - 打包字以 unsafe.Pointer 存储而非 uintptr：非 nil 时「地址|状态」仍
//     指向同一分配块内部（状态 < 对齐值 ≤ 对象尺寸），因此打包字本身就能
//     让所指对象保持可达，不需要调用方额外持有原指针。
//   - 指针分量构造后不可变：替换指针就构造一个新值（只有一个字，代价为零）。
//     这样不变量的校验面最小。
//   - Compare/Less 只按指针分量定义全序：指针相同、状态不同的两个值
//     Compare 为 0。需要区分状态时用 Equal（或 Go 的 == 比较）。
//   - 对 nil 的判定（IsNil）只看指针分量，与状态无关；而 Equal 是
//     指针与状态的合取。
//
// # 已知限制
//
//   - 打包字内嵌进程内地址，不可持久化、不可跨进程传输
//   - 不持有所指对象所有权；所指对象销毁后继续使用等同悬垂指针
//   - 无内部同步：对同一 StatePtr 的并发 SetState 是数据竞争，
//     与裸指针、小整数的无同步原语契约一致
package xstateptr
