package refs

import (
	"errors"
	"sync"
	"testing"

	wrerrors "github.com/wippyai/wrapper/errors"
)

func TestTable_Basic(t *testing.T) {
	table := NewTable()

	h := table.Insert("test")
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := table.Get(h)
	if !ok || val != "test" {
		t.Fatalf("Get() = %v, %v, want test", val, ok)
	}

	val, ok = table.Remove(h)
	if !ok || val != "test" {
		t.Fatalf("Remove() = %v, %v, want test", val, ok)
	}

	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Remove")
	}
	if _, ok := table.Get(h); ok {
		t.Fatal("Get after Remove should fail")
	}
	if _, ok := table.Remove(h); ok {
		t.Fatal("second Remove should fail")
	}
}

func TestTable_NilHandle(t *testing.T) {
	table := NewTable()

	if h := table.Insert(nil); h != 0 {
		t.Fatalf("Insert(nil) = %d, want 0", h)
	}
	if table.Len() != 0 {
		t.Fatal("nil must not occupy a handle")
	}
	if _, ok := table.Get(0); ok {
		t.Fatal("Get(0) should fail")
	}
	v, err := table.Resolve(0)
	if err != nil || v != nil {
		t.Fatalf("Resolve(0) = %v, %v, want nil, nil", v, err)
	}
}

func TestTable_Resolve(t *testing.T) {
	table := NewTable()
	h := table.Insert(42)

	v, err := table.Resolve(h)
	if err != nil || v != 42 {
		t.Fatalf("Resolve() = %v, %v", v, err)
	}

	_, err = table.Resolve(h + 10)
	if !errors.Is(err, wrerrors.ErrNotFound) {
		t.Fatalf("Resolve(stale) error = %v, want not found", err)
	}
}

func TestTable_ReuseLIFO(t *testing.T) {
	table := NewTable()

	a := table.Insert("a")
	b := table.Insert("b")
	c := table.Insert("c")

	table.Remove(a)
	table.Remove(c)

	if got := table.Insert("d"); got != c {
		t.Errorf("first reuse = %d, want %d", got, c)
	}
	if got := table.Insert("e"); got != a {
		t.Errorf("second reuse = %d, want %d", got, a)
	}
	if got := table.Insert("f"); got != b+2 {
		t.Errorf("fresh handle = %d, want %d", got, b+2)
	}
	if table.Len() != 4 {
		t.Errorf("Len() = %d, want 4", table.Len())
	}
}

func TestTable_Each(t *testing.T) {
	table := NewTable()
	table.Insert("a")
	mid := table.Insert("b")
	table.Insert("c")
	table.Remove(mid)

	var seen []any
	table.Each(func(h Handle, v any) bool {
		seen = append(seen, v)
		return true
	})
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "c" {
		t.Fatalf("Each saw %v, want [a c]", seen)
	}

	count := 0
	table.Each(func(Handle, any) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Each did not stop, visited %d", count)
	}
}

type dropCounter struct {
	count int
}

func (d *dropCounter) Drop() {
	d.count++
}

func TestTable_DropperInterface(t *testing.T) {
	table := NewTable()
	d := &dropCounter{}

	h := table.Insert(d)
	table.Remove(h)

	if d.count != 1 {
		t.Fatalf("Expected Drop() to be called once, called %d times", d.count)
	}
}

func TestTable_Close(t *testing.T) {
	table := NewTable()
	d := &dropCounter{}
	table.Insert(d)
	table.Insert("b")

	if err := table.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if d.count != 1 {
		t.Fatalf("Close dropped %d times, want 1", d.count)
	}
	if table.Len() != 0 {
		t.Fatalf("Len() = %d after Close", table.Len())
	}

	if h := table.Insert("c"); h != 0 {
		t.Fatal("Expected Insert to fail after Close")
	}
	if _, err := table.Put("c"); !errors.Is(err, wrerrors.ErrClosed) {
		t.Fatalf("Put() error = %v, want closed", err)
	}
	if err := table.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if d.count != 1 {
		t.Fatal("second Close must not drop again")
	}
}

func TestGetAs(t *testing.T) {
	table := NewTable()
	h := table.Insert("text")

	s, ok := GetAs[string](table, h)
	if !ok || s != "text" {
		t.Fatalf("GetAs[string]() = %q, %v", s, ok)
	}
	if _, ok := GetAs[int](table, h); ok {
		t.Fatal("GetAs[int] should fail for a string")
	}
	if _, ok := GetAs[string](table, 0); ok {
		t.Fatal("GetAs on handle 0 should fail")
	}
}

func TestTable_Concurrent(t *testing.T) {
	table := NewTable()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h := table.Insert(n*1000 + j)
				if v, ok := table.Get(h); !ok || v != n*1000+j {
					t.Errorf("Get(%d) = %v, %v", h, v, ok)
					return
				}
				table.Remove(h)
			}
		}(i)
	}
	wg.Wait()

	if table.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", table.Len())
	}
}
