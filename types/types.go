package types

import "strings"

// Type represents a Rowan data type.
type Type interface {
	// Returns whether this type is equal to the other type.  This should only
	// be called within methods of type instances: external code should use the
	// Equals function.
	equals(other Type) bool

	// Returns the representative string for this type.
	Repr() string
}

// -----------------------------------------------------------------------------

// PrimitiveType represents a primitive type.  This must be one of the
// enumerated primitive type values below.
type PrimitiveType int

// Enumeration of the different primitive types.  The values of all of the
// integral types correspond to the usable width of the type: eg. i32 has a
// usable width of 31.
const (
	PrimTypeUnit = PrimitiveType(0)
	PrimTypeBool = PrimitiveType(1)
	PrimTypeI8   = PrimitiveType(7)
	PrimTypeU8   = PrimitiveType(8)
	PrimTypeI16  = PrimitiveType(15)
	PrimTypeU16  = PrimitiveType(16)
	PrimTypeI32  = PrimitiveType(31)
	PrimTypeU32  = PrimitiveType(32)
	PrimTypeI64  = PrimitiveType(63)
	PrimTypeU64  = PrimitiveType(64)
	PrimTypeF32  = PrimitiveType(2)
	PrimTypeF64  = PrimitiveType(3)
)

func (pt PrimitiveType) equals(other Type) bool {
	if opt, ok := other.(PrimitiveType); ok {
		return pt == opt
	}

	return false
}

func (pt PrimitiveType) Repr() string {
	switch pt {
	case PrimTypeUnit:
		return "unit"
	case PrimTypeBool:
		return "bool"
	case PrimTypeI8:
		return "i8"
	case PrimTypeU8:
		return "u8"
	case PrimTypeI16:
		return "i16"
	case PrimTypeU16:
		return "u16"
	case PrimTypeI32:
		return "i32"
	case PrimTypeU32:
		return "u32"
	case PrimTypeI64:
		return "i64"
	case PrimTypeU64:
		return "u64"
	case PrimTypeF32:
		return "f32"
	default:
		return "f64"
	}
}

// -----------------------------------------------------------------------------

// RefQuals is a bit set of qualifiers attached to a reference type.
type RefQuals uint8

const (
	// QualImplicit marks a reference produced by the compiler rather than
	// written explicitly in source.
	QualImplicit = RefQuals(1 << iota)

	// QualNonSettable marks a reference that cannot be assigned through.
	QualNonSettable
)

// RefType represents a mutable reference type.  References do not nest: the
// element type of a reference is never itself a reference.
type RefType struct {
	// The element (referenced) type of the reference.
	ElemType Type

	// The qualifiers attached to the reference.
	Quals RefQuals
}

func (rt *RefType) equals(other Type) bool {
	if ort, ok := other.(*RefType); ok {
		return Equals(rt.ElemType, ort.ElemType) && rt.Quals == ort.Quals
	}

	return false
}

func (rt *RefType) Repr() string {
	return "&" + rt.ElemType.Repr()
}

// -----------------------------------------------------------------------------

// FuncType represents a function type.  Method types carry their receiver as
// the first parameter type.
type FuncType struct {
	// The parameter types of the function.
	ParamTypes []Type

	// The return type of the function.
	ReturnType Type
}

func (ft *FuncType) equals(other Type) bool {
	if oft, ok := other.(*FuncType); ok {
		if len(ft.ParamTypes) != len(oft.ParamTypes) {
			return false
		}

		for i, paramtyp := range ft.ParamTypes {
			if !Equals(paramtyp, oft.ParamTypes[i]) {
				return false
			}
		}

		return Equals(ft.ReturnType, oft.ReturnType)
	}

	return false
}

func (ft *FuncType) Repr() string {
	sb := strings.Builder{}

	if len(ft.ParamTypes) != 1 {
		sb.WriteRune('(')

		for i, paramtyp := range ft.ParamTypes {
			if i != 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(paramtyp.Repr())
		}

		sb.WriteRune(')')
	} else {
		sb.WriteString(ft.ParamTypes[0].Repr())
	}

	sb.WriteString(" -> ")
	sb.WriteString(ft.ReturnType.Repr())

	return sb.String()
}

/* -------------------------------------------------------------------------- */

// TupleType represents a tuple type.
type TupleType struct {
	// The elements of the tuple in order.
	Elements []TupleElement
}

// TupleElement represents a single element of a tuple type.
type TupleElement struct {
	// The element's name.  This is empty for an unnamed element.
	Name string

	// The element's type.
	Type Type
}

func (tt *TupleType) equals(other Type) bool {
	if ott, ok := other.(*TupleType); ok {
		if len(tt.Elements) == len(ott.Elements) {
			for i, elem := range tt.Elements {
				if elem.Name != ott.Elements[i].Name || !Equals(elem.Type, ott.Elements[i].Type) {
					return false
				}
			}

			return true
		}
	}

	return false
}

func (tt *TupleType) Repr() string {
	sb := strings.Builder{}

	sb.WriteRune('(')

	for i, elem := range tt.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}

		if elem.Name != "" {
			sb.WriteString(elem.Name)
			sb.WriteString(": ")
		}

		sb.WriteString(elem.Type.Repr())
	}

	sb.WriteRune(')')

	return sb.String()
}

// ElementIndex returns the index of the tuple element with the given name.
// It returns -1 if no named element matches.
func (tt *TupleType) ElementIndex(name string) int {
	if name == "" {
		return -1
	}

	for i, elem := range tt.Elements {
		if elem.Name == name {
			return i
		}
	}

	return -1
}
