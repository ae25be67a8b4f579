package xstateptr

import (
	"unsafe"

	"github.com/omeyang/ptrkit/pkg/debug/xcheck"
)

// StatePtr 在对齐指针恒为零的低位中携带一个小整数状态。
// 与 *T 同宽，可比较（== 即打包字全等），按值复制。
// 零值等价于 Null[T](0)。
type StatePtr[T any] struct {
	w unsafe.Pointer
}

// alignOf 返回 T 的对齐值（字节）。
func alignOf[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}

// stateMask 返回 T 的默认状态掩码。对齐值是 2 的幂，掩码即对齐值减一。
func stateMask[T any]() uintptr {
	return alignOf[T]() - 1
}

// pack 把指针与状态合成打包字。
// 前置条件：state 已通过调用方的上限校验。
func pack[T any](p *T, state uintptr) StatePtr[T] {
	return StatePtr[T]{w: unsafe.Pointer(uintptr(unsafe.Pointer(p)) | state)}
}

// New 用默认位划分包装 p 与 state。
// p 必须为 nil 或按 T 的对齐要求对齐（前置条件，不做运行时检查）。
// state 超过 StateMax 时 checked 构建 panic，unchecked 构建未定义行为。
func New[T any](p *T, state uintptr) StatePtr[T] {
	xcheck.Assert(state <= stateMask[T](), outOfBoundsMsg)
	return pack(p, state)
}

// Null 构造指针分量为 nil 的 StatePtr。状态校验与 [New] 相同。
func Null[T any](state uintptr) StatePtr[T] {
	xcheck.Assert(state <= stateMask[T](), outOfBoundsMsg)
	return pack[T](nil, state)
}

// Ptr 还原原始指针。打包再解包对任何正确对齐的输入都是逐位无损往返。
func (s StatePtr[T]) Ptr() *T {
	return (*T)(unsafe.Pointer(uintptr(s.w) &^ stateMask[T]()))
}

// State 返回当前状态值。
func (s StatePtr[T]) State() uintptr {
	return uintptr(s.w) & stateMask[T]()
}

// SetState 原地替换状态位，指针分量不受影响。
// 校验上限是默认位划分的 StateMax；收窄布局请经由 [Layout.SetState]。
func (s *StatePtr[T]) SetState(state uintptr) {
	xcheck.Assert(state <= stateMask[T](), outOfBoundsMsg)
	s.w = unsafe.Pointer(uintptr(s.w)&^stateMask[T]() | state)
}

// WithState 返回替换状态位后的副本，原值不变。校验与 [SetState] 相同。
func (s StatePtr[T]) WithState(state uintptr) StatePtr[T] {
	xcheck.Assert(state <= stateMask[T](), outOfBoundsMsg)
	return StatePtr[T]{w: unsafe.Pointer(uintptr(s.w)&^stateMask[T]() | state)}
}

// IsNil 报告指针分量是否为 nil。判定与状态值无关：
// Null[T](s) 对任何合法 s 都是 nil。
func (s StatePtr[T]) IsNil() bool {
	return uintptr(s.w)&^stateMask[T]() == 0
}

// Word 返回打包字的原始值，用于诊断与测试。
// 打包字内嵌进程内地址，不可持久化或跨进程传输。
func (s StatePtr[T]) Word() uintptr {
	return uintptr(s.w)
}
