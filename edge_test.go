package stackctx_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/stackctx"
)

// TestEdgeCases covers boundary conditions through the public API only.
func TestEdgeCases(t *testing.T) {
	t.Run("CapacityOne", func(t *testing.T) {
		c := stackctx.New[int](1)
		defer c.Close()

		var tok stackctx.ScopeToken
		slots := make([]*stackctx.OwnedSlot[int], 0, 5)
		for i := 0; i < 5; i++ {
			slots = append(slots, c.Push(&tok, i))
		}
		if c.NumBlocks() != 5 {
			t.Errorf("capacity-1 context after 5 pushes: NumBlocks = %d, want 5", c.NumBlocks())
		}
		for i := len(slots) - 1; i >= 0; i-- {
			slots[i].Release()
		}
	})

	t.Run("DeepNesting", func(t *testing.T) {
		c := stackctx.New[int](3)
		defer c.Close()

		const depth = 1000
		var descend func(n int)
		descend = func(n int) {
			if n == depth {
				if c.Len() != depth {
					t.Errorf("Len at full depth = %d, want %d", c.Len(), depth)
				}
				return
			}
			c.Scoped(n, func(v *int) {
				descend(n + 1)
				if *v != n {
					t.Errorf("scoped value at depth %d = %d after unwinding below", n, *v)
				}
			})
		}
		descend(0)

		if !c.IsEmpty() {
			t.Errorf("Len after full unwind = %d, want 0", c.Len())
		}
	})

	t.Run("InterleavedContexts", func(t *testing.T) {
		a := stackctx.New[string](2)
		defer a.Close()
		b := stackctx.New[string](2)
		defer b.Close()

		a.Scoped("a1", func(*string) {
			b.Scoped("b1", func(*string) {
				a.Scoped("a2", func(*string) {
					a.Get(func(v *string) {
						if *v != "a2" {
							t.Errorf("context a top = %q, want %q", *v, "a2")
						}
					})
					b.Get(func(v *string) {
						if *v != "b1" {
							t.Errorf("context b top = %q, want %q", *v, "b1")
						}
					})
				})
			})
		})
	})

	t.Run("PointerValues", func(t *testing.T) {
		c := stackctx.New[*int](4)
		defer c.Close()

		n := 11
		c.Scoped(&n, func(v **int) {
			**v = 17
		})
		if n != 17 {
			t.Errorf("write through stored pointer: n = %d, want 17", n)
		}
	})

	t.Run("RepeatedGrowthAndRewind", func(t *testing.T) {
		const capacity = 4
		c := stackctx.New[int](capacity)
		defer c.Close()

		var tok stackctx.ScopeToken
		for round := 0; round < 10; round++ {
			slots := make([]*stackctx.OwnedSlot[int], 0, capacity*3)
			for i := 0; i < capacity*3; i++ {
				slots = append(slots, c.Push(&tok, i))
			}
			for i := len(slots) - 1; i >= 0; i-- {
				slots[i].Release()
			}
			// The same three blocks serve every round.
			if c.NumBlocks() != 3 {
				t.Fatalf("round %d: NumBlocks = %d, want 3", round, c.NumBlocks())
			}
		}
	})

	t.Run("LargeStructValues", func(t *testing.T) {
		type big struct {
			payload [512]byte
			id      int
		}
		c := stackctx.New[big](8)
		defer c.Close()

		var tok stackctx.ScopeToken
		slots := make([]*stackctx.OwnedSlot[big], 0, 32)
		addrs := make([]*big, 0, 32)
		for i := 0; i < 32; i++ {
			s := c.Push(&tok, big{id: i})
			slots = append(slots, s)
			addrs = append(addrs, s.Value())
		}
		for i, p := range addrs {
			if p.id != i {
				t.Errorf("slot %d: id = %d after growth", i, p.id)
			}
		}
		for i := len(slots) - 1; i >= 0; i-- {
			slots[i].Release()
		}
	})
}

func TestFinalizerObservesFinalValues(t *testing.T) {
	var order []string
	c := stackctx.NewWithFinalizer[string](2, func(v *string) {
		order = append(order, *v)
	})

	var tok stackctx.ScopeToken
	for _, v := range []string{"a", "b", "c"} {
		c.Push(&tok, v)
	}
	c.Close()

	want := fmt.Sprintf("%v", []string{"a", "b", "c"})
	if got := fmt.Sprintf("%v", order); got != want {
		t.Errorf("finalized %v, want %v", got, want)
	}
}
