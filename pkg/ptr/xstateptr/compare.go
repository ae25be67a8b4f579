package xstateptr

// Equal 全等比较：指针分量与状态分量都相等。
// 与 Go 的 == 比较等价；指针相同而状态不同的两个值不相等。
// 对 nil 的判定请用 [StatePtr.IsNil]，它忽略状态。
func (s StatePtr[T]) Equal(o StatePtr[T]) bool {
	return s.w == o.w
}

// Compare 按指针分量比较，返回 -1、0、1。
// 这是一个满足传递性的全序，适合有序容器与排序；指针相同、状态不同的
// 两个值比较结果为 0（需要区分状态时用 [StatePtr.Equal]）。
//
// 只比较不属于同一分配块的指针的数值大小没有跨平台意义，
// 但序本身是一致且稳定的，足以按指针身份排序。
func (s StatePtr[T]) Compare(o StatePtr[T]) int {
	a := uintptr(s.w) &^ stateMask[T]()
	b := uintptr(o.w) &^ stateMask[T]()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less 报告 s 的指针分量是否严格小于 o 的指针分量。
func (s StatePtr[T]) Less(o StatePtr[T]) bool {
	return s.Compare(o) < 0
}
