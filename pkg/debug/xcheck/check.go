package xcheck

import "fmt"

// Assert 校验不变量：checked 构建下 cond 为假时以 msg 为诊断信息 panic。
// unchecked 构建下是空操作，会被编译器整体消除。
//
// msg 应当指明被违反的不变量本身（例如 "state value is out of bounds"），
// 而不是描述调用上下文。
func Assert(cond bool, msg string) {
	if Enabled && !cond {
		panic(msg)
	}
}

// Assertf 与 [Assert] 相同，但诊断信息支持格式化。
// 格式化参数仅在违约时求值开销才有意义，调用方应避免在参数表达式里
// 做昂贵计算。
func Assertf(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
