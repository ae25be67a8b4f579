package xstateptr

import "testing"

func FuzzRoundTrip(f *testing.F) {
	f.Add(uint8(0), uint8(0), int64(0))
	f.Add(uint8(7), uint8(0), int64(1))
	f.Add(uint8(255), uint8(255), int64(-1))
	f.Add(uint8(3), uint8(5), int64(1<<62))

	layout := LayoutOf[object]()

	f.Fuzz(func(t *testing.T, rawState, rawNext uint8, val int64) {
		// 任意输入收敛到合法状态空间后，打包/解包必须无损往返
		state := uintptr(rawState) & layout.StateMax()
		next := uintptr(rawNext) & layout.StateMax()

		obj := &object{}
		obj.n.Store(val)

		p := New(obj, state)
		if p.Ptr() != obj {
			t.Fatalf("Ptr() = %p, want %p", p.Ptr(), obj)
		}
		if p.State() != state {
			t.Fatalf("State() = %d, want %d", p.State(), state)
		}
		if got := p.Ptr().n.Load(); got != val {
			t.Fatalf("pointee = %d, want %d", got, val)
		}

		p.SetState(next)
		if p.Ptr() != obj || p.State() != next {
			t.Fatalf("after SetState: (%p, %d), want (%p, %d)", p.Ptr(), p.State(), obj, next)
		}

		n := Null[object](state)
		if !n.IsNil() || n.State() != state {
			t.Fatalf("Null(%d) = (nil=%v, %d)", state, n.IsNil(), n.State())
		}
	})
}
