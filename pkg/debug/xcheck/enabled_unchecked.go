//go:build ptrkit_unchecked

package xcheck

// Enabled 标记当前构建关闭契约校验，违约是未定义行为。
const Enabled = false
