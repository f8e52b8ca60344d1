package types

import (
	"fmt"

	"rowanc/report"
)

// Equals returns whether two types are equal.
func Equals(a, b Type) bool {
	return a.equals(b)
}

// Key returns the canonical key string for a type.  Keys uniquely identify
// types for registry purposes: named types are keyed by name and defining
// module so that same-named types from different modules never collide.
func Key(typ Type) string {
	switch v := typ.(type) {
	case PrimitiveType:
		return v.Repr()
	case *RefType:
		return "&" + Key(v.ElemType)
	case *FuncType:
		key := "fn("

		for i, paramtyp := range v.ParamTypes {
			if i > 0 {
				key += ", "
			}

			key += Key(paramtyp)
		}

		return key + ") -> " + Key(v.ReturnType)
	case *TupleType:
		key := "("

		for i, elem := range v.Elements {
			if i > 0 {
				key += ", "
			}

			if elem.Name != "" {
				key += elem.Name + ": "
			}

			key += Key(elem.Type)
		}

		return key + ")"
	case *MetaType:
		return Key(v.Instance) + ".type"
	case *ModuleType:
		return "module<" + v.M.ModuleName() + ">"
	case NamedType:
		return fmt.Sprintf("%s@%d", v.Name(), v.ParentID())
	default:
		report.ReportICE("no canonical key for type: %T", typ)
		return ""
	}
}
