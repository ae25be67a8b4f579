package xbit

import "math/bits"

// WordBits 当前平台指针的位宽（32 或 64）。
const WordBits = bits.UintSize

// Log2 返回 n 以 2 为底的对数（向下取整）。
// 特例：n 为 0 或 1 时返回 0。
func Log2(n uint64) uint64 {
	if n <= 1 {
		return 0
	}
	return uint64(bits.Len64(n) - 1)
}

// StateBits 返回 align 字节对齐保证恒为零的指针低位位数。
// 例如 8 字节对齐的地址必然是 8 的倍数，低 3 位恒为零，返回 3。
//
// Go 类型的对齐值天然是 2 的幂；传入非 2 的幂时按不超过 align 的
// 最大 2 的幂计算（即仍然向下取整）。
func StateBits(align uintptr) uint {
	return uint(Log2(uint64(align)))
}

// Mask 返回低 n 位全为 1 的掩码，即 2^n - 1。
// n 不小于平台字宽时返回全 1。
func Mask(n uint) uintptr {
	if n >= WordBits {
		return ^uintptr(0)
	}
	return uintptr(1)<<n - 1
}
