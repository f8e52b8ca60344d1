package types

// NamedType represents a user-defined type associated with a symbol.
type NamedType interface {
	Type

	// The name of the named type.
	Name() string

	// The ID of the module the named type is defined in.
	ParentID() uint64
}

// NamedTypeBase is the base type for all named types.
type NamedTypeBase struct {
	name     string
	parentID uint64
}

// NewNamedTypeBase creates a new named type base for a type with the given
// name defined in the module with the given ID.
func NewNamedTypeBase(name string, parentID uint64) NamedTypeBase {
	return NamedTypeBase{name: name, parentID: parentID}
}

func (nt *NamedTypeBase) equals(other Type) bool {
	if ont, ok := other.(NamedType); ok {
		return nt.name == ont.Name() && nt.parentID == ont.ParentID()
	}

	return false
}

func (nt *NamedTypeBase) Repr() string {
	return nt.name
}

func (nt *NamedTypeBase) Name() string {
	return nt.name
}

func (nt *NamedTypeBase) ParentID() uint64 {
	return nt.parentID
}

/* -------------------------------------------------------------------------- */

// VariantType represents a variant type: a tagged union of cases.
type VariantType struct {
	NamedTypeBase

	// The cases of the variant in declaration order.
	Cases []*VariantCase
}

// VariantCase represents a single case of a variant type.
type VariantCase struct {
	// The name of the case.
	Name string

	// The type of the case's payload.  This is nil for a payload-less case.
	Payload Type

	// The declaration of the case's constructor.
	Decl *Decl
}

// NewVariantType creates a new variant type with no cases.
func NewVariantType(name string, parentID uint64) *VariantType {
	return &VariantType{NamedTypeBase: NewNamedTypeBase(name, parentID)}
}

// AddCase adds a new case to the variant and creates its constructor
// declaration.  The constructor's type is a function from the payload to the
// variant for a payload-carrying case and the variant type itself otherwise.
func (vt *VariantType) AddCase(name string, payload Type) *Decl {
	var ctorType Type = vt
	if payload != nil {
		ctorType = &FuncType{ParamTypes: []Type{payload}, ReturnType: vt}
	}

	decl := &Decl{
		Name:     name,
		ParentID: vt.parentID,
		Type:     ctorType,
		DefKind:  DefKindCase,
		IsStatic: true,
		Public:   true,
	}

	vt.Cases = append(vt.Cases, &VariantCase{Name: name, Payload: payload, Decl: decl})
	return decl
}

// CaseByName returns the case of the variant with the given name.  It returns
// nil if no case matches.
func (vt *VariantType) CaseByName(name string) *VariantCase {
	for _, c := range vt.Cases {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// TransparentPayload returns the payload type a transparent variant exposes:
// a variant is transparent when it has exactly one case and that case carries
// a payload.  It returns nil for all other variants.
func (vt *VariantType) TransparentPayload() Type {
	if len(vt.Cases) == 1 {
		return vt.Cases[0].Payload
	}

	return nil
}

/* -------------------------------------------------------------------------- */

// ProtocolType represents a protocol type: a named set of required members.
type ProtocolType struct {
	NamedTypeBase

	// The members of the protocol in declaration order.
	Members []*Decl
}

// NewProtocolType creates a new protocol type with no members.
func NewProtocolType(name string, parentID uint64) *ProtocolType {
	return &ProtocolType{NamedTypeBase: NewNamedTypeBase(name, parentID)}
}
