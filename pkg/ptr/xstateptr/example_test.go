package xstateptr_test

import (
	"fmt"
	"sync/atomic"

	"github.com/omeyang/ptrkit/pkg/ptr/xstateptr"
)

// record 含 atomic.Int64 字段，因此在所有平台上都是 8 字节对齐，
// 示例输出与平台无关。
type record struct {
	hits atomic.Int64
	name string
}

func Example() {
	layout := xstateptr.LayoutOf[record]()
	fmt.Println("state bits:", layout.StateBits())
	fmt.Println("state max:", layout.StateMax())

	r := record{name: "alpha"}
	p := xstateptr.New(&r, 5)
	fmt.Println("state:", p.State())
	fmt.Println("name:", p.Ptr().name)
	fmt.Println("nil:", p.IsNil())

	p.SetState(0)
	fmt.Println("state after reset:", p.State())

	// Output:
	// state bits: 3
	// state max: 7
	// state: 5
	// name: alpha
	// nil: false
	// state after reset: 0
}

func ExampleNull() {
	// nil 判定与状态无关
	p := xstateptr.Null[record](3)
	fmt.Println(p.IsNil(), p.State())

	// Output:
	// true 3
}

func ExampleNarrowedLayout() {
	// 显式只用 1 位状态：剩下的保证为零的低位保持为零
	layout, err := xstateptr.NarrowedLayout[record](1)
	if err != nil {
		panic(err)
	}
	fmt.Println("state max:", layout.StateMax())

	// 超过对齐保证的请求是配置错误
	_, err = xstateptr.NarrowedLayout[record](4)
	fmt.Println("err:", err != nil)

	// Output:
	// state max: 1
	// err: true
}
