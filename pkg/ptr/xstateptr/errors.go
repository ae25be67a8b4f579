package xstateptr

import "errors"

var (
	// ErrStateBitsExceedAlignment 表示请求的状态位数超过对齐值能保证的上限。
	ErrStateBitsExceedAlignment = errors.New("xstateptr: requested state bits exceed alignment guarantee")
)

// outOfBoundsMsg 状态越界违约时 checked 构建的诊断信息。
const outOfBoundsMsg = "xstateptr: state value is out of bounds"
