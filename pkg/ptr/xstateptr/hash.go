package xstateptr

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash 返回打包字（指针分量与状态分量的整体）的 64 位哈希。
// Equal 的两个值哈希必然相同；指针相同而状态不同的值属于不同的键。
// 哈希值与打包字一样只在本进程内有意义。
func (s StatePtr[T]) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(uintptr(s.w)))
	return xxhash.Sum64(buf[:])
}
