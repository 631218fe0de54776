package reactive

import "testing"

func TestSet_NotifiesOncePerChange(t *testing.T) {
	c := New(0)
	var calls int
	c.OnChange(func(old, new int) { calls++ })

	for _, v := range []int{1, 1, 2, 2, 2, 3} {
		c.Set(v)
	}
	if calls != 3 {
		t.Fatalf("observer fired %d times, want 3", calls)
	}
}

func TestSet_EqualValueIsNoOp(t *testing.T) {
	c := New("hello")
	fired := false
	c.OnChange(func(old, new string) { fired = true })

	if c.Set("hello") {
		t.Fatalf("Set with equal value reported a change")
	}
	if fired {
		t.Fatalf("observer fired for an unchanged value")
	}
}

func TestSet_PassesOldAndNew(t *testing.T) {
	c := New(7)
	var gotOld, gotNew int
	c.OnChange(func(old, new int) { gotOld, gotNew = old, new })

	c.Set(42)
	if gotOld != 7 || gotNew != 42 {
		t.Fatalf("observer got (%d, %d), want (7, 42)", gotOld, gotNew)
	}
}

func TestOnChange_RegistrationOrder(t *testing.T) {
	c := New(0)
	var order []int
	c.OnChange(func(old, new int) { order = append(order, 1) })
	c.OnChange(func(old, new int) { order = append(order, 2) })
	c.OnChange(func(old, new int) { order = append(order, 3) })

	c.Set(9)
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("observers fired out of order: %v", order)
	}
}

func TestSet_ReentrantSetIsDropped(t *testing.T) {
	c := New(0)
	var calls int
	c.OnChange(func(old, new int) {
		calls++
		c.Set(new + 100) // must be dropped, not recursed into
	})

	c.Set(1)
	if calls != 1 {
		t.Fatalf("reentrant set caused %d notifications, want 1", calls)
	}
	if got := c.Get(); got != 1 {
		t.Fatalf("reentrant set mutated the cell: got %d, want 1", got)
	}

	// The guard clears once notification finishes.
	c.Set(2)
	if got := c.Get(); got != 2 {
		t.Fatalf("cell stuck after reentrant set: got %d, want 2", got)
	}
}

func TestGet_NoSideEffects(t *testing.T) {
	c := New(5)
	var calls int
	c.OnChange(func(old, new int) { calls++ })

	for range 10 {
		_ = c.Get()
	}
	if calls != 0 {
		t.Fatalf("Get triggered %d notifications", calls)
	}
}
