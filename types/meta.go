package types

// MetaType is the type of an expression which refers to a type itself rather
// than to an instance of that type.
type MetaType struct {
	// The type the expression refers to.
	Instance Type
}

func (mt *MetaType) equals(other Type) bool {
	if omt, ok := other.(*MetaType); ok {
		return Equals(mt.Instance, omt.Instance)
	}

	return false
}

func (mt *MetaType) Repr() string {
	return mt.Instance.Repr() + ".type"
}

// -----------------------------------------------------------------------------

// Module is the interface modules satisfy for use within module types.  It
// exists so that module references can be typed without this package
// depending on the module manager.
type Module interface {
	// ModuleName returns the module's name.
	ModuleName() string

	// LookupQualified returns the public declarations the module exports
	// under the given name, in definition order.
	LookupQualified(name string) []*Decl
}

// ModuleType is the type of an expression which refers to a module.
type ModuleType struct {
	// The module the expression refers to.
	M Module
}

func (mt *ModuleType) equals(other Type) bool {
	if omt, ok := other.(*ModuleType); ok {
		return mt.M == omt.M
	}

	return false
}

func (mt *ModuleType) Repr() string {
	return "module<" + mt.M.ModuleName() + ">"
}
