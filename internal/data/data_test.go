package data

import (
	dyerrors "dyndata/internal/errors"
	"reflect"
	"testing"
)

func TestPromotionOnFirstStringKeyWrite(t *testing.T) {
	d := NewNull()
	a, err := d.Index("a")
	if err != nil {
		t.Fatalf("Index(a) error = %v", err)
	}
	a.SetInt(1)

	b, err := d.Index("b")
	if err != nil {
		t.Fatalf("Index(b) error = %v", err)
	}
	b.SetInt(2)

	if !d.IsObject() {
		t.Fatalf("Kind() = %v, want Object after promotion", d.Kind())
	}
	names, err := d.MemberNames()
	if err != nil {
		t.Fatalf("MemberNames() error = %v", err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("MemberNames() = %v, want %v", names, want)
	}
	av, err := d.Get("a")
	if err != nil {
		t.Fatalf("Get(a) error = %v", err)
	}
	got, err := av.AsInt()
	if err != nil || got != 1 {
		t.Fatalf("Get(a).AsInt() = (%v, %v), want (1, nil)", got, err)
	}
}

func TestPromotionOnFirstIndexWrite(t *testing.T) {
	d := NewNull()
	_, err := d.Add(NewInt(10))
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !d.IsArray() {
		t.Fatalf("Kind() = %v, want Array after promotion", d.Kind())
	}
	if d.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", d.Count())
	}
}

func TestTypeGuards(t *testing.T) {
	num := NewInt(42)
	if _, err := num.Index("x"); !dyerrors.Is(err, dyerrors.TypeError) {
		t.Fatalf("Index on Number: err = %v, want TypeError", err)
	}
	obj := NewObject()
	if _, err := obj.At(0); !dyerrors.Is(err, dyerrors.TypeError) {
		t.Fatalf("At on Object: err = %v, want TypeError", err)
	}
	if _, err := obj.Get("missing"); !dyerrors.Is(err, dyerrors.MemberNotExisting) {
		t.Fatalf("Get(missing): err = %v, want MemberNotExisting", err)
	}
	arr := NewArray()
	if _, err := arr.At(0); !dyerrors.Is(err, dyerrors.OutOfRange) {
		t.Fatalf("At(0) on empty array: err = %v, want OutOfRange", err)
	}
}

func TestInsertionOrderRemoveAndReAdd(t *testing.T) {
	d := NewObject()
	mustAddKV(t, d, "a", NewInt(1))
	mustAddKV(t, d, "b", NewInt(2))
	mustAddKV(t, d, "c", NewInt(3))

	names, _ := d.MemberNames()
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("MemberNames() = %v, want %v", names, want)
	}

	if err := d.RemoveKey("b"); err != nil {
		t.Fatalf("RemoveKey(b) error = %v", err)
	}
	names, _ = d.MemberNames()
	if want := []string{"a", "c"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("after RemoveKey(b): MemberNames() = %v, want %v", names, want)
	}

	mustAddKV(t, d, "b", NewInt(4))
	names, _ = d.MemberNames()
	if want := []string{"a", "c", "b"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("after re-Add(b): MemberNames() = %v, want %v", names, want)
	}
}

func TestDuplicateKeyReplaceKeepsPosition(t *testing.T) {
	d := NewObject()
	mustAddKV(t, d, "k", NewInt(1))
	mustAddKV(t, d, "k", NewInt(2))

	names, _ := d.MemberNames()
	if want := []string{"k"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("MemberNames() = %v, want %v", names, want)
	}
	v, err := d.Get("k")
	if err != nil {
		t.Fatalf("Get(k) error = %v", err)
	}
	got, _ := v.AsInt()
	if got != 2 {
		t.Fatalf("Get(k).AsInt() = %d, want 2", got)
	}
}

func TestEqualStructural(t *testing.T) {
	a := NewObject()
	mustAddKV(t, a, "x", NewInt(1))
	mustAddKV(t, a, "y", NewBool(true))

	b := NewObject()
	mustAddKV(t, b, "x", NewInt(1))
	mustAddKV(t, b, "y", NewBool(true))

	if !a.Equal(b) {
		t.Fatal("structurally identical objects not Equal")
	}

	c := NewObject()
	mustAddKV(t, c, "y", NewBool(true))
	mustAddKV(t, c, "x", NewInt(1))
	if a.Equal(c) {
		t.Fatal("objects with different insertion order were Equal")
	}
}

func TestRemoveAtArray(t *testing.T) {
	d := NewArray()
	mustAdd(t, d, NewInt(1))
	mustAdd(t, d, NewInt(2))
	mustAdd(t, d, NewInt(3))

	if err := d.RemoveAt(1); err != nil {
		t.Fatalf("RemoveAt(1) error = %v", err)
	}
	els, _ := d.Elements()
	if len(els) != 2 {
		t.Fatalf("Count() after RemoveAt = %d, want 2", len(els))
	}
	first, _ := els[0].AsInt()
	second, _ := els[1].AsInt()
	if first != 1 || second != 3 {
		t.Fatalf("remaining elements = [%d,%d], want [1,3]", first, second)
	}
}

func TestClear(t *testing.T) {
	d := NewObject()
	mustAddKV(t, d, "a", NewInt(1))
	d.Clear()
	if !d.IsNull() {
		t.Fatalf("Kind() after Clear = %v, want Null", d.Kind())
	}
	if d.Count() != 0 {
		t.Fatalf("Count() after Clear = %d, want 0", d.Count())
	}
}

func TestNewHandleMintsDistinctPointers(t *testing.T) {
	a, err := NewHandle()
	if err != nil {
		t.Fatalf("NewHandle() error = %v", err)
	}
	b, err := NewHandle()
	if err != nil {
		t.Fatalf("NewHandle() error = %v", err)
	}
	if a.Kind() != KindPointer || b.Kind() != KindPointer {
		t.Fatalf("NewHandle() kinds = (%v, %v), want (Pointer, Pointer)", a.Kind(), b.Kind())
	}
	pa, _ := a.AsPointer()
	pb, _ := b.AsPointer()
	if pa == 0 || pb == 0 || pa == pb {
		t.Fatalf("NewHandle() handles = (%d, %d), want distinct non-zero", pa, pb)
	}
}

func TestSetHandlePreservesNameAndMintsFreshPointer(t *testing.T) {
	d := NewObject()
	mustAddKV(t, d, "ref", NewInt(0))
	ref, err := d.Get("ref")
	if err != nil {
		t.Fatalf("Get(ref) error = %v", err)
	}
	if err := ref.SetHandle(); err != nil {
		t.Fatalf("SetHandle() error = %v", err)
	}
	if ref.Kind() != KindPointer {
		t.Fatalf("Kind() after SetHandle = %v, want Pointer", ref.Kind())
	}
	if ref.Name() != "ref" {
		t.Fatalf("Name() after SetHandle = %q, want %q", ref.Name(), "ref")
	}
	if p, _ := ref.AsPointer(); p == 0 {
		t.Fatal("AsPointer() after SetHandle = 0, want a minted non-zero handle")
	}
}

func TestTryAssignAndTryGet(t *testing.T) {
	d := NewObject()
	mustAddKV(t, d, "count", NewInt(7))
	mustAddKV(t, d, "name", NewString("widget"))

	var n int64
	if !TryAssign(d, "count", &n) || n != 7 {
		t.Fatalf("TryAssign(count) = (%v, %d), want (true, 7)", true, n)
	}

	var missing int64 = -1
	if TryAssign(d, "nope", &missing) {
		t.Fatal("TryAssign(nope) returned true for an absent key")
	}
	if missing != -1 {
		t.Fatalf("TryAssign(nope) mutated out param to %d", missing)
	}

	if got := TryGet(d, "name", "fallback"); got != "widget" {
		t.Fatalf("TryGet(name) = %q, want %q", got, "widget")
	}
	if got := TryGet(d, "missing", "fallback"); got != "fallback" {
		t.Fatalf("TryGet(missing) = %q, want %q", got, "fallback")
	}
}

func mustAddKV(t *testing.T, d *DynamicData, key string, v *DynamicData) {
	t.Helper()
	if _, err := d.AddKV(key, v); err != nil {
		t.Fatalf("AddKV(%q) error = %v", key, err)
	}
}

func mustAdd(t *testing.T, d *DynamicData, v *DynamicData) {
	t.Helper()
	if _, err := d.Add(v); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
}
