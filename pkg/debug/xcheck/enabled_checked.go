//go:build !ptrkit_unchecked

package xcheck

// Enabled 标记当前构建启用契约校验。
const Enabled = true
