// Package data implements DynamicData: the Variant extended with two
// structural kinds, Array and Object (SPEC_FULL.md §4.3). A
// DynamicData tree is built by the decoder, walked/mutated by callers,
// and consumed by the encoder; package jsoncodec is the only consumer
// that imports both this package and the codec, so Decode/Encode
// themselves live there rather than here, to avoid an import cycle.
package data

import (
	"dyndata/internal/container"
	dyerrors "dyndata/internal/errors"
	"dyndata/internal/handle"
	"dyndata/internal/variant"
)

// Kind is the ten-way discriminant: the eight Variant kinds plus the
// two structural kinds Array and Object.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindDouble
	KindPointer
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindUint:
		return "Uint"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindPointer:
		return "Pointer"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Serializable is implemented by user aggregates that can produce a
// DynamicData representation of themselves. The core defines only the
// interface; concrete adapters are user code (SPEC_FULL.md §4.3).
type Serializable interface {
	ToData() *DynamicData
}

// Deserializable is the inverse of Serializable.
type Deserializable interface {
	FromData(*DynamicData) error
}

// DynamicData is the ten-kinded value at the core of this module.
// The zero value is Null.
type DynamicData struct {
	kind     Kind
	scalar   variant.Variant
	name     string
	children []*DynamicData
	members  *container.OrderedMap[string, *DynamicData]
}

// New wraps an already-constructed Variant as a DynamicData of the
// matching scalar kind.
func New(v variant.Variant) *DynamicData {
	return &DynamicData{kind: Kind(v.Kind()), scalar: v}
}

// NewNull returns a Null DynamicData.
func NewNull() *DynamicData { return &DynamicData{kind: KindNull} }

// NewBool returns a Bool DynamicData.
func NewBool(v bool) *DynamicData { return New(variant.NewBool(v)) }

// NewInt returns a signed-64 DynamicData.
func NewInt(v int64) *DynamicData { return New(variant.NewInt(v)) }

// NewUint returns an unsigned-64 DynamicData.
func NewUint(v uint64) *DynamicData { return New(variant.NewUint(v)) }

// NewFloat returns a binary32 DynamicData.
func NewFloat(v float32) *DynamicData { return New(variant.NewFloat(v)) }

// NewDouble returns a binary64 DynamicData.
func NewDouble(v float64) *DynamicData { return New(variant.NewDouble(v)) }

// NewPointer returns an opaque-handle DynamicData wrapping an
// already-minted handle (e.g. one read back from a previously-built
// tree, or a caller-owned token). To mint a fresh handle, use
// NewHandle instead.
func NewPointer(v uintptr) *DynamicData { return New(variant.NewPointer(v)) }

// NewHandle mints a fresh process-local handle via internal/handle and
// wraps it as a Pointer DynamicData. This is the constructor actually
// used to create a new Pointer value from scratch; NewPointer only
// wraps a handle that already exists.
func NewHandle() (*DynamicData, error) {
	h, err := handle.New()
	if err != nil {
		return nil, err
	}
	return NewPointer(h), nil
}

// NewString returns an owned-string DynamicData.
func NewString(v string) *DynamicData { return New(variant.NewString(v)) }

// NewArray returns an empty Array DynamicData.
func NewArray() *DynamicData { return &DynamicData{kind: KindArray} }

// NewObject returns an empty Object DynamicData.
func NewObject() *DynamicData {
	return &DynamicData{kind: KindObject, members: container.NewOrderedMap[string, *DynamicData]()}
}

// Kind reports which of the ten kinds is active.
func (d *DynamicData) Kind() Kind { return d.kind }

// Name returns the key this node was inserted under, if it is a
// member of an Object; empty string otherwise.
func (d *DynamicData) Name() string { return d.name }

// IsArray reports whether Kind() == KindArray.
func (d *DynamicData) IsArray() bool { return d.kind == KindArray }

// IsObject reports whether Kind() == KindObject.
func (d *DynamicData) IsObject() bool { return d.kind == KindObject }

// IsNull reports whether Kind() == KindNull.
func (d *DynamicData) IsNull() bool { return d.kind == KindNull }

// Count returns the element/member count for Array/Object, 0 otherwise.
func (d *DynamicData) Count() int {
	switch d.kind {
	case KindArray:
		return len(d.children)
	case KindObject:
		return d.members.Size()
	default:
		return 0
	}
}

// AsBool delegates to the embedded Variant; structural kinds behave
// like an unset (Null) scalar since they never carry one.
func (d *DynamicData) AsBool() bool { return d.scalar.AsBool() }

// AsInt delegates to the embedded Variant.
func (d *DynamicData) AsInt() (int64, error) { return d.scalar.AsInt() }

// AsUint delegates to the embedded Variant.
func (d *DynamicData) AsUint() (uint64, error) { return d.scalar.AsUint() }

// AsDouble delegates to the embedded Variant.
func (d *DynamicData) AsDouble() (float64, error) { return d.scalar.AsDouble() }

// AsString delegates to the embedded Variant for scalar kinds.
// Structural kinds carry no scalar, so an Array or Object yields
// "null"; callers wanting a JSON rendering of an Array/Object should
// use the encoder instead.
func (d *DynamicData) AsString() string { return d.scalar.AsString() }

// AsPointer delegates to the embedded Variant.
func (d *DynamicData) AsPointer() (uintptr, error) { return d.scalar.AsPointer() }

// setScalar overwrites a node's kind/scalar payload in place while
// preserving its Name — the Go equivalent of assigning through the
// reference returned by the original's mutating operator[].
func (d *DynamicData) setScalar(k Kind, v variant.Variant) {
	d.kind = k
	d.scalar = v
	d.children = nil
	d.members = nil
}

// SetNull overwrites this node with Null, preserving Name.
func (d *DynamicData) SetNull() { d.setScalar(KindNull, variant.NewNull()) }

// SetBool overwrites this node with a Bool value, preserving Name.
func (d *DynamicData) SetBool(v bool) { d.setScalar(KindBool, variant.NewBool(v)) }

// SetInt overwrites this node with a signed-64 value, preserving Name.
func (d *DynamicData) SetInt(v int64) { d.setScalar(KindInt, variant.NewInt(v)) }

// SetUint overwrites this node with an unsigned-64 value, preserving Name.
func (d *DynamicData) SetUint(v uint64) { d.setScalar(KindUint, variant.NewUint(v)) }

// SetFloat overwrites this node with a binary32 value, preserving Name.
func (d *DynamicData) SetFloat(v float32) { d.setScalar(KindFloat, variant.NewFloat(v)) }

// SetDouble overwrites this node with a binary64 value, preserving Name.
func (d *DynamicData) SetDouble(v float64) { d.setScalar(KindDouble, variant.NewDouble(v)) }

// SetPointer overwrites this node with an opaque-handle value, preserving Name.
func (d *DynamicData) SetPointer(v uintptr) { d.setScalar(KindPointer, variant.NewPointer(v)) }

// SetHandle mints a fresh handle via internal/handle and overwrites
// this node with it as a Pointer value, preserving Name.
func (d *DynamicData) SetHandle() error {
	h, err := handle.New()
	if err != nil {
		return err
	}
	d.SetPointer(h)
	return nil
}

// SetString overwrites this node with a string value, preserving Name.
func (d *DynamicData) SetString(v string) { d.setScalar(KindString, variant.NewString(v)) }

// promoteToObject turns a Null node into an empty Object in place.
func (d *DynamicData) promoteToObject() {
	if d.kind == KindNull {
		d.kind = KindObject
		d.members = container.NewOrderedMap[string, *DynamicData]()
	}
}

// promoteToArray turns a Null node into an empty Array in place.
func (d *DynamicData) promoteToArray() {
	if d.kind == KindNull {
		d.kind = KindArray
	}
}

// Index returns the child at key, promoting a Null receiver to Object
// and inserting a Null child on first access to a new key (mutating
// "data[key]" semantics, SPEC_FULL.md §4.3). It fails with TypeError
// if the receiver is neither Null nor Object.
func (d *DynamicData) Index(key string) (*DynamicData, error) {
	d.promoteToObject()
	if d.kind != KindObject {
		return nil, dyerrors.New(dyerrors.TypeError, "cannot key into %s with %q", d.kind, key)
	}
	if child, ok := d.members.At(key); ok {
		return child, nil
	}
	child := &DynamicData{kind: KindNull, name: key}
	d.members.Insert(key, child)
	return child, nil
}

// Get is the const lookup of a string key: it never mutates or
// promotes. It fails with TypeError on a non-Object receiver and
// MemberNotExisting when key is absent.
func (d *DynamicData) Get(key string) (*DynamicData, error) {
	if d.kind != KindObject {
		return nil, dyerrors.New(dyerrors.TypeError, "cannot key into %s with %q", d.kind, key)
	}
	child, ok := d.members.At(key)
	if !ok {
		return nil, dyerrors.New(dyerrors.MemberNotExisting, "member %q does not exist", key)
	}
	return child, nil
}

// At returns the element at index i, promoting a Null receiver to an
// empty Array first. It fails with TypeError on a non-Array receiver
// and OutOfRange when i is out of bounds; insertion is only via Add.
func (d *DynamicData) At(i int) (*DynamicData, error) {
	d.promoteToArray()
	if d.kind != KindArray {
		return nil, dyerrors.New(dyerrors.TypeError, "cannot index %s with [%d]", d.kind, i)
	}
	if i < 0 || i >= len(d.children) {
		return nil, dyerrors.New(dyerrors.OutOfRange, "index %d out of range [0,%d)", i, len(d.children))
	}
	return d.children[i], nil
}

// Add appends value to an Array, promoting a Null receiver to an
// empty Array first. It fails with TypeError on any other kind.
func (d *DynamicData) Add(value *DynamicData) (*DynamicData, error) {
	d.promoteToArray()
	if d.kind != KindArray {
		return nil, dyerrors.New(dyerrors.TypeError, "cannot add element to %s", d.kind)
	}
	d.children = append(d.children, value)
	return d, nil
}

// AddKV inserts or replaces a member of an Object, promoting a Null
// receiver to an empty Object first, preserving insertion order on
// replace. It fails with TypeError on any other kind.
func (d *DynamicData) AddKV(key string, value *DynamicData) (*DynamicData, error) {
	d.promoteToObject()
	if d.kind != KindObject {
		return nil, dyerrors.New(dyerrors.TypeError, "cannot add member %q to %s", key, d.kind)
	}
	value.name = key
	d.members.Insert(key, value)
	return d, nil
}

// RemoveAt erases the element at index i from an Array. It fails with
// TypeError on a non-Array receiver and OutOfRange when i is out of
// bounds.
func (d *DynamicData) RemoveAt(i int) error {
	if d.kind != KindArray {
		return dyerrors.New(dyerrors.TypeError, "cannot remove index from %s", d.kind)
	}
	if i < 0 || i >= len(d.children) {
		return dyerrors.New(dyerrors.OutOfRange, "index %d out of range [0,%d)", i, len(d.children))
	}
	d.children = append(d.children[:i], d.children[i+1:]...)
	return nil
}

// RemoveKey removes a member from an Object. It fails with TypeError
// on a non-Object receiver; removing an absent key is a no-op.
func (d *DynamicData) RemoveKey(key string) error {
	if d.kind != KindObject {
		return dyerrors.New(dyerrors.TypeError, "cannot remove member from %s", d.kind)
	}
	d.members.Remove(key)
	return nil
}

// MemberExists reports whether key is present in an Object. It fails
// with TypeError on any other kind.
func (d *DynamicData) MemberExists(key string) (bool, error) {
	if d.kind != KindObject {
		return false, dyerrors.New(dyerrors.TypeError, "cannot check member on %s", d.kind)
	}
	_, ok := d.members.At(key)
	return ok, nil
}

// MemberNames returns an Object's member names in insertion order. It
// fails with TypeError on any other kind.
func (d *DynamicData) MemberNames() ([]string, error) {
	if d.kind != KindObject {
		return nil, dyerrors.New(dyerrors.TypeError, "cannot list members of %s", d.kind)
	}
	return d.members.Keys(), nil
}

// Elements returns an Array's elements in order. It fails with
// TypeError on any other kind.
func (d *DynamicData) Elements() ([]*DynamicData, error) {
	if d.kind != KindArray {
		return nil, dyerrors.New(dyerrors.TypeError, "cannot list elements of %s", d.kind)
	}
	out := make([]*DynamicData, len(d.children))
	copy(out, d.children)
	return out, nil
}

// Clear drops all children and resets the node to Null.
func (d *DynamicData) Clear() {
	d.kind = KindNull
	d.scalar = variant.NewNull()
	d.children = nil
	d.members = nil
}

// Equal reports deep structural equality: same kind, same scalar
// value, and same ordered children — for Object, keys and values must
// match in insertion order (SPEC_FULL.md §3).
func (d *DynamicData) Equal(other *DynamicData) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.kind != other.kind {
		return false
	}
	switch d.kind {
	case KindArray:
		if len(d.children) != len(other.children) {
			return false
		}
		for i, c := range d.children {
			if !c.Equal(other.children[i]) {
				return false
			}
		}
		return true
	case KindObject:
		keys := d.members.Keys()
		otherKeys := other.members.Keys()
		if len(keys) != len(otherKeys) {
			return false
		}
		for i, k := range keys {
			if k != otherKeys[i] {
				return false
			}
			v, _ := d.members.At(k)
			ov, _ := other.members.At(k)
			if !v.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return d.scalar.Equal(other.scalar)
	}
}

// scalarVariant returns the embedded Variant. It is unexported, so
// only code inside package data can call it.
func (d *DynamicData) scalarVariant() variant.Variant { return d.scalar }

// Scalar kind union used by TryAssign/TryGet.
type Scalar interface {
	bool | int64 | uint64 | float64 | string | uintptr
}

// lookupChildOrNil resolves a string or int key against d without
// promoting or mutating it, returning nil on any failure.
func lookupChildOrNil(d *DynamicData, key any) *DynamicData {
	switch k := key.(type) {
	case string:
		c, err := d.Get(k)
		if err != nil {
			return nil
		}
		return c
	case int:
		if d.kind != KindArray {
			return nil
		}
		c, err := d.At(k)
		if err != nil {
			return nil
		}
		return c
	default:
		return nil
	}
}

// TryAssign looks up key (a string for Object members, an int for
// Array elements) in d and, on success, converts the child to T and
// stores it in *out, returning true. On any failure (wrong kind,
// missing key/index, inconvertible scalar) it leaves *out untouched
// and returns false (SPEC_FULL.md §4.3's "tryAssign").
func TryAssign[T Scalar](d *DynamicData, key any, out *T) bool {
	child := lookupChildOrNil(d, key)
	if child == nil {
		return false
	}
	switch p := any(out).(type) {
	case *bool:
		*p = child.AsBool()
	case *int64:
		v, err := child.AsInt()
		if err != nil {
			return false
		}
		*p = v
	case *uint64:
		v, err := child.AsUint()
		if err != nil {
			return false
		}
		*p = v
	case *float64:
		v, err := child.AsDouble()
		if err != nil {
			return false
		}
		*p = v
	case *string:
		*p = child.AsString()
	case *uintptr:
		v, err := child.AsPointer()
		if err != nil {
			return false
		}
		*p = v
	default:
		return false
	}
	return true
}

// TryGet is TryAssign's value-returning sibling: it returns the
// converted child, or def on any failure (SPEC_FULL.md §4.3's
// "tryGet").
func TryGet[T Scalar](d *DynamicData, key any, def T) T {
	var out T
	if TryAssign(d, key, &out) {
		return out
	}
	return def
}
