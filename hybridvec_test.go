package hybridvec

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewRejectsInvalidCapacity(t *testing.T) {
	_, err := New[int](0)
	if !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity for capacity 0, got %v", err)
	}
	_, err = New[int](-3)
	if !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity for negative capacity, got %v", err)
	}
}

func TestNewRejectsNegativeReserve(t *testing.T) {
	_, err := NewWithReserve[int](8, -1)
	if !errors.Is(err, ErrInvalidReserve) {
		t.Fatalf("expected ErrInvalidReserve, got %v", err)
	}
}

func TestNewVector(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, err := New[int](1024)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !v.IsEmpty() || v.Len() != 0 {
		t.Errorf("expected fresh vector to be empty, is not")
	}
	inline, spill := v.Capacity()
	if inline != 1024 || spill != DefaultSpillReserve {
		t.Errorf("capacity = (%d, %d), should be (1024, %d)", inline, spill, DefaultSpillReserve)
	}
}

func TestPushGetRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, err := New[string](4)
	if err != nil {
		t.Fatal(err.Error())
	}
	for i, s := range []string{"Hello", "World", "how", "are", "you", "?"} {
		v.Push(s)
		got, ok := v.Get(v.Len() - 1)
		if !ok || got != s {
			t.Errorf("get(%d) = (%q, %v) after push, expected (%q, true)", i, got, ok, s)
		}
	}
}

func TestGetBounds(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, err := FromSlice(2, []int{10, 20, 30})
	if err != nil {
		t.Fatal(err.Error())
	}
	if _, ok := v.Get(-1); ok {
		t.Errorf("get(-1) reported presence, should not")
	}
	if _, ok := v.Get(3); ok {
		t.Errorf("get(len) reported presence, should not")
	}
	if got, ok := v.Get(2); !ok || got != 30 {
		t.Errorf("get(2) = (%d, %v), expected (30, true)", got, ok)
	}
}

func TestBoundaryCrossing(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	const n = 16
	v, err := New[int](n)
	if err != nil {
		t.Fatal(err.Error())
	}
	for i := 0; i <= n; i++ { // one element more than the inline region holds
		v.Push(i)
	}
	if v.Len() != n+1 {
		t.Errorf("len = %d, should be %d", v.Len(), n+1)
	}
	if got, ok := v.Get(n); !ok || got != n {
		t.Errorf("get(%d) = (%d, %v), expected (%d, true)", n, got, ok, n)
	}
	sum := v.Summary()
	if sum.Inline != n || sum.Spilled != 1 {
		t.Errorf("summary = %+v, expected %d inline and 1 spilled", sum, n)
	}
	if _, spill := v.Capacity(); spill < 1 {
		t.Errorf("spill capacity = %d after crossing the boundary, should be >= 1", spill)
	}
}

func TestSet(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, err := FromSlice(2, []int{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err.Error())
	}
	if !v.Set(0, 11) || !v.Set(3, 44) {
		t.Fatalf("set on live indices failed")
	}
	if v.Set(4, 55) {
		t.Errorf("set(len) succeeded, should not")
	}
	assertElements(t, v, []int{11, 2, 3, 44})
}

func TestSummaryAndReset(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, err := NewWithReserve[int](3, 8)
	if err != nil {
		t.Fatal(err.Error())
	}
	v.Extend([]int{1, 2, 3, 4, 5})
	sum := v.Summary()
	if sum.Len != 5 || sum.Inline != 3 || sum.Spilled != 2 {
		t.Errorf("summary = %+v, expected len 5, 3 inline, 2 spilled", sum)
	}
	if sum.InlineCapacity != 3 || sum.SpillCapacity != 8 {
		t.Errorf("summary capacities = (%d, %d), expected (3, 8)", sum.InlineCapacity, sum.SpillCapacity)
	}
	v.Reset()
	if !v.IsEmpty() {
		t.Errorf("vector not empty after reset")
	}
	inline, spill := v.Capacity()
	if inline != 3 || spill != 8 {
		t.Errorf("reset dropped storage regions, capacity = (%d, %d)", inline, spill)
	}
	if _, ok := v.Get(0); ok {
		t.Errorf("get(0) reported presence after reset")
	}
}

func TestClone(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, err := FromSlice(2, []int{1, 2, 3})
	if err != nil {
		t.Fatal(err.Error())
	}
	c := v.Clone()
	v.Set(0, 99)
	v.Push(4)
	assertElements(t, c, []int{1, 2, 3})
	assertElements(t, v, []int{99, 2, 3, 4})
}

// Scenario: push 1, 2, 3 into a large-capacity vector, pop once, remove the
// first element; a single element remains.
func TestPushPopRemoveSequence(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, err := New[int](1024)
	if err != nil {
		t.Fatal(err.Error())
	}
	v.Push(1)
	v.Push(2)
	v.Push(3)
	if got, ok := v.Pop(); !ok || got != 3 {
		t.Errorf("pop = (%d, %v), expected (3, true)", got, ok)
	}
	if got, ok := v.Remove(0); !ok || got != 1 {
		t.Errorf("remove(0) = (%d, %v), expected (1, true)", got, ok)
	}
	if v.Len() != 1 {
		t.Errorf("len = %d, should be 1", v.Len())
	}
	if got, ok := v.Get(0); !ok || got != 2 {
		t.Errorf("get(0) = (%d, %v), expected (2, true)", got, ok)
	}
	inline, spill := v.Capacity()
	if inline != 1024 || spill != DefaultSpillReserve {
		t.Errorf("capacity = (%d, %d), should be (1024, %d)", inline, spill, DefaultSpillReserve)
	}
}

// Scenario: a vector holding 200 elements converts to a plain Go slice of
// 200 elements in original order.
func TestConvertToSlice(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, err := New[int](200)
	if err != nil {
		t.Fatal(err.Error())
	}
	for i := 0; i < 200; i++ {
		v.Push(i)
	}
	s := v.Slice()
	if len(s) != 200 {
		t.Fatalf("slice has %d elements, should be 200", len(s))
	}
	for i, got := range s {
		if got != i {
			t.Fatalf("slice[%d] = %d, order not preserved", i, got)
		}
	}
}

func TestAppendTo(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, err := FromSlice(2, []int{3, 4, 5})
	if err != nil {
		t.Fatal(err.Error())
	}
	s := v.AppendTo([]int{1, 2})
	want := []int{1, 2, 3, 4, 5}
	if len(s) != len(want) {
		t.Fatalf("appended slice has %d elements, should be %d", len(s), len(want))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("appended slice[%d] = %d, expected %d", i, s[i], want[i])
		}
	}
}

// --- Helpers ---------------------------------------------------------------

func assertElements[T comparable](t *testing.T, v *Vector[T], want []T) {
	t.Helper()
	if v.Len() != len(want) {
		t.Fatalf("element count mismatch: got=%d want=%d", v.Len(), len(want))
	}
	for i, w := range want {
		got, ok := v.Get(i)
		if !ok {
			t.Fatalf("get(%d) reported absence for live index", i)
		}
		if got != w {
			t.Fatalf("get(%d) = %v, expected %v", i, got, w)
		}
	}
}
