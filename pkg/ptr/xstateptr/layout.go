package xstateptr

import (
	"fmt"

	"github.com/omeyang/ptrkit/pkg/debug/xcheck"
	"github.com/omeyang/ptrkit/pkg/ptr/xbit"
)

// Layout 描述元素类型 T 的位划分方案：多少低位归状态、多少高位归指针。
// Go 没有常量泛型参数，无法在编译期校验显式位数请求，
// 因此位划分做成「构造时校验一次」的工厂：经由 Layout 构造的 StatePtr
// 一定满足其 StateMax 约束。
//
// 必须通过 [LayoutOf] 或 [NarrowedLayout] 创建；零值的 StateMax 为 0，
// 只接受状态 0。
type Layout[T any] struct {
	stateBits uint
	stateMax  uintptr
}

// LayoutOf 返回 T 的默认位划分：状态位数 = log2(T 的对齐值)。
// 对齐值为 1 的类型状态位数为 0，是合法的退化配置，只能携带状态 0。
func LayoutOf[T any]() Layout[T] {
	bits := xbit.StateBits(alignOf[T]())
	return Layout[T]{stateBits: bits, stateMax: xbit.Mask(bits)}
}

// NarrowedLayout 返回显式收窄到 bits 位状态的位划分。
// bits 超过对齐值允许的上限时返回 [ErrStateBitsExceedAlignment]——
// 这是配置错误，不是数据错误。
//
// 收窄只收紧 StateMax 的校验，不改变物理打包方式：收窄后未用到的
// 保证为零的低位始终保持为零，同一 (指针, 状态) 在收窄与默认布局下
// 的打包字逐位相同。
func NarrowedLayout[T any](bits uint) (Layout[T], error) {
	maxBits := xbit.StateBits(alignOf[T]())
	if bits > maxBits {
		return Layout[T]{}, fmt.Errorf("%w: requested %d bits, alignment %d allows at most %d",
			ErrStateBitsExceedAlignment, bits, alignOf[T](), maxBits)
	}
	return Layout[T]{stateBits: bits, stateMax: xbit.Mask(bits)}, nil
}

// StateBits 返回状态占用的位数。
func (l Layout[T]) StateBits() uint {
	return l.stateBits
}

// PtrBits 返回指针占用的位数。状态位数与指针位数之和恒为平台字宽。
func (l Layout[T]) PtrBits() uint {
	return xbit.WordBits - l.stateBits
}

// StateMax 返回合法状态的最大值，即 2^StateBits - 1。
func (l Layout[T]) StateMax() uintptr {
	return l.stateMax
}

// New 按本布局的上限校验 state 并包装 p。
// 其余契约与包级 [New] 相同。
func (l Layout[T]) New(p *T, state uintptr) StatePtr[T] {
	xcheck.Assert(state <= l.stateMax, outOfBoundsMsg)
	return pack(p, state)
}

// Null 按本布局的上限校验 state 并构造 nil 指针分量的 StatePtr。
func (l Layout[T]) Null(state uintptr) StatePtr[T] {
	xcheck.Assert(state <= l.stateMax, outOfBoundsMsg)
	return pack[T](nil, state)
}

// SetState 按本布局的上限校验并原地替换 p 的状态位。
func (l Layout[T]) SetState(p *StatePtr[T], state uintptr) {
	xcheck.Assert(state <= l.stateMax, outOfBoundsMsg)
	p.w = pack(p.Ptr(), state).w
}
