// Package variant implements the tagged scalar/string/pointer-handle
// cell described in SPEC_FULL.md §4.1. A Variant holds exactly one of
// eight kinds; DynamicData (internal/data) embeds one by value and
// adds the two structural kinds Array and Object.
package variant

import (
	"math"
	"strconv"

	dyerrors "dyndata/internal/errors"
)

// Kind discriminates which of the eight scalar kinds a Variant holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Uint
	Float
	Double
	Pointer
	String
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float:
		return "float"
	case Double:
		return "double"
	case Pointer:
		return "pointer"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Variant is a value-semantics tagged cell. The zero value is Null.
type Variant struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f32  float32
	f64  float64
	ptr  uintptr
	s    string
}

// NewNull returns the zero Variant.
func NewNull() Variant { return Variant{kind: Null} }

// NewBool returns a Bool Variant.
func NewBool(v bool) Variant { return Variant{kind: Bool, b: v} }

// NewInt returns a signed-64 Variant.
func NewInt(v int64) Variant { return Variant{kind: Int, i: v} }

// NewUint returns an unsigned-64 Variant.
func NewUint(v uint64) Variant { return Variant{kind: Uint, u: v} }

// NewFloat returns a binary32 Variant.
func NewFloat(v float32) Variant { return Variant{kind: Float, f32: v} }

// NewDouble returns a binary64 Variant.
func NewDouble(v float64) Variant { return Variant{kind: Double, f64: v} }

// NewPointer returns an opaque-handle Variant. Handles are minted by
// the internal/handle package; the Variant itself never dereferences
// one.
func NewPointer(v uintptr) Variant { return Variant{kind: Pointer, ptr: v} }

// NewString returns an owned-string Variant.
func NewString(v string) Variant { return Variant{kind: String, s: v} }

// Kind reports which of the eight kinds is active.
func (v Variant) Kind() Kind { return v.kind }

// AsBool converts to bool. Numeric kinds are true iff their magnitude
// exceeds the kind-specific epsilon; Pointer is true iff non-null;
// String recognizes the literals "true"/"1" (true) and
// "false"/"0"/"null" (false), else truthiness is non-empty length.
// This conversion never fails.
func (v Variant) AsBool() bool {
	switch v.kind {
	case Null:
		return false
	case Bool:
		return v.b
	case Int:
		return v.i != 0
	case Uint:
		return v.u != 0
	case Float:
		return math.Abs(float64(v.f32)) > 1e-3
	case Double:
		return math.Abs(v.f64) > 1e-4
	case Pointer:
		return v.ptr != 0
	case String:
		switch v.s {
		case "true", "1":
			return true
		case "false", "0", "null":
			return false
		default:
			return len(v.s) > 0
		}
	default:
		return false
	}
}

// AsInt converts to a signed 64-bit integer. Numeric kinds truncate
// toward zero; Bool maps to {0,1}; Pointer reinterprets its handle
// bits; String parses with base-auto semantics (0x/0 prefixes
// recognized, like C's strtol). Null has no integer form and fails
// with ConversionError.
func (v Variant) AsInt() (int64, error) {
	switch v.kind {
	case Bool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case Int:
		return v.i, nil
	case Uint:
		return int64(v.u), nil
	case Float:
		return int64(v.f32), nil
	case Double:
		return int64(v.f64), nil
	case Pointer:
		return int64(v.ptr), nil
	case String:
		n, err := strconv.ParseInt(v.s, 0, 64)
		if err != nil {
			return 0, dyerrors.Conversion(v.kind.String(), "int")
		}
		return n, nil
	default:
		return 0, dyerrors.Conversion(v.kind.String(), "int")
	}
}

// AsUint is the unsigned sibling of AsInt, with the same conversion
// table; String parses with base-auto semantics like C's strtoul
// (SPEC_FULL.md §4.1).
func (v Variant) AsUint() (uint64, error) {
	switch v.kind {
	case Bool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case Int:
		return uint64(v.i), nil
	case Uint:
		return v.u, nil
	case Float:
		return uint64(v.f32), nil
	case Double:
		return uint64(v.f64), nil
	case Pointer:
		return uint64(v.ptr), nil
	case String:
		n, err := strconv.ParseUint(v.s, 0, 64)
		if err != nil {
			return 0, dyerrors.Conversion(v.kind.String(), "uint")
		}
		return n, nil
	default:
		return 0, dyerrors.Conversion(v.kind.String(), "uint")
	}
}

// AsDouble converts to float64, analogous to AsInt but via strtod
// semantics for String. Null fails with ConversionError.
func (v Variant) AsDouble() (float64, error) {
	switch v.kind {
	case Bool:
		if v.b {
			return 1.0, nil
		}
		return 0.0, nil
	case Int:
		return float64(v.i), nil
	case Uint:
		return float64(v.u), nil
	case Float:
		return float64(v.f32), nil
	case Double:
		return v.f64, nil
	case Pointer:
		return float64(v.ptr), nil
	case String:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0, dyerrors.Conversion(v.kind.String(), "double")
		}
		return f, nil
	default:
		return 0, dyerrors.Conversion(v.kind.String(), "double")
	}
}

// AsString converts every kind to its decimal/literal/hex string
// form. This conversion is total and never fails. Float/Double render
// at fixed max_digits10 precision (9 / 17 significant digits) rather
// than Go's shortest round-trip form, matching the original's %.9g/
// %.17g rendering: the extra digits surface the binary32/64 rounding
// error instead of hiding it behind the shortest-equivalent string.
func (v Variant) AsString() string {
	switch v.kind {
	case Null:
		return "null"
	case Bool:
		if v.b {
			return "true"
		}
		return "false"
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Uint:
		return strconv.FormatUint(v.u, 10)
	case Float:
		return strconv.FormatFloat(float64(v.f32), 'g', 9, 32)
	case Double:
		return strconv.FormatFloat(v.f64, 'g', 17, 64)
	case Pointer:
		return "0x" + strconv.FormatUint(uint64(v.ptr), 16)
	case String:
		return v.s
	default:
		return ""
	}
}

// AsPointer converts to an opaque handle. Only Null (yielding the
// zero handle) and Pointer succeed; every other kind fails with
// ConversionError.
func (v Variant) AsPointer() (uintptr, error) {
	switch v.kind {
	case Null:
		return 0, nil
	case Pointer:
		return v.ptr, nil
	default:
		return 0, dyerrors.Conversion(v.kind.String(), "pointer")
	}
}

// Equal reports structural equality: same kind and same payload.
// Cross-kind comparisons are always false, even when the values
// would compare equal after conversion (e.g. Int 1 vs Uint 1).
func (v Variant) Equal(other Variant) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case Bool:
		return v.b == other.b
	case Int:
		return v.i == other.i
	case Uint:
		return v.u == other.u
	case Float:
		return v.f32 == other.f32
	case Double:
		return v.f64 == other.f64
	case Pointer:
		return v.ptr == other.ptr
	case String:
		return v.s == other.s
	default:
		return false
	}
}
