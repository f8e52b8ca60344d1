package cmd

import (
	"rowanc/depm"
	"rowanc/types"
)

// populateShowcase fills the module with the playground declarations the
// lookup command resolves against.  Everything here is declared exactly the
// way a parsed Rowan module would declare it; the fixtures just stand in for
// the parser.
func populateShowcase(mod *depm.Module) {
	// Vec: a named tuple type
	vecType := &types.TupleType{Elements: []types.TupleElement{
		{Name: "x", Type: types.PrimTypeF64},
		{Name: "y", Type: types.PrimTypeF64},
	}}
	defineType(mod, "Vec", vecType)

	// Color: a payload-less variant
	colorType := types.NewVariantType("Color", mod.ID)
	colorType.AddCase("Red", nil)
	colorType.AddCase("Green", nil)
	colorType.AddCase("Blue", nil)
	defineType(mod, "Color", colorType)

	// Span: a transparent variant wrapping a named tuple
	spanType := types.NewVariantType("Span", mod.ID)
	spanType.AddCase("Range", &types.TupleType{Elements: []types.TupleElement{
		{Name: "start", Type: types.PrimTypeI64},
		{Name: "end", Type: types.PrimTypeI64},
	}})
	defineType(mod, "Span", spanType)

	// Writer: a protocol with instance and static members
	writerType := types.NewProtocolType("Writer", mod.ID)
	writerType.Members = append(writerType.Members,
		&types.Decl{
			Name:     "write",
			ParentID: mod.ID,
			Type:     &types.FuncType{ParamTypes: []types.Type{writerType, types.PrimTypeI64}, ReturnType: types.PrimTypeUnit},
			DefKind:  types.DefKindFunc,
			Public:   true,
		},
		&types.Decl{
			Name:     "flush",
			ParentID: mod.ID,
			Type:     &types.FuncType{ParamTypes: []types.Type{writerType}, ReturnType: types.PrimTypeBool},
			DefKind:  types.DefKindFunc,
			Public:   true,
		},
		&types.Decl{
			Name:     "open",
			ParentID: mod.ID,
			Type:     &types.FuncType{ParamTypes: []types.Type{types.PrimTypeI64}, ReturnType: writerType},
			DefKind:  types.DefKindFunc,
			IsStatic: true,
			Public:   true,
		},
	)
	defineType(mod, "Writer", writerType)

	// module-level declarations for qualified access
	mod.GlobalTable.Define(&types.Decl{
		Name:     "origin",
		ParentID: mod.ID,
		Type:     vecType,
		DefKind:  types.DefKindVar,
		Public:   true,
	})
	mod.GlobalTable.Define(&types.Decl{
		Name:     "dot",
		ParentID: mod.ID,
		Type:     &types.FuncType{ParamTypes: []types.Type{vecType, vecType}, ReturnType: types.PrimTypeF64},
		DefKind:  types.DefKindFunc,
		Public:   true,
	})

	// extension members
	mod.RegisterExtension(vecType, &types.Decl{
		Name:     "len",
		ParentID: mod.ID,
		Type:     &types.FuncType{ParamTypes: []types.Type{vecType}, ReturnType: types.PrimTypeF64},
		DefKind:  types.DefKindFunc,
		Public:   true,
	})
	mod.RegisterExtension(vecType, &types.Decl{
		Name:     "zero",
		ParentID: mod.ID,
		Type:     &types.FuncType{ReturnType: vecType},
		DefKind:  types.DefKindFunc,
		IsStatic: true,
		Public:   true,
	})

	// two overloads of `scale` so ambiguous accesses have something to find
	mod.RegisterExtension(vecType, &types.Decl{
		Name:     "scale",
		ParentID: mod.ID,
		Type:     &types.FuncType{ParamTypes: []types.Type{vecType, types.PrimTypeF64}, ReturnType: vecType},
		DefKind:  types.DefKindFunc,
		Public:   true,
	})
	mod.RegisterExtension(vecType, &types.Decl{
		Name:     "scale",
		ParentID: mod.ID,
		Type:     &types.FuncType{ParamTypes: []types.Type{vecType, types.PrimTypeI64}, ReturnType: vecType},
		DefKind:  types.DefKindFunc,
		Public:   true,
	})

	mod.RegisterExtension(colorType, &types.Decl{
		Name:     "code",
		ParentID: mod.ID,
		Type:     &types.FuncType{ParamTypes: []types.Type{colorType}, ReturnType: types.PrimTypeI64},
		DefKind:  types.DefKindFunc,
		Public:   true,
	})

	// protocols with no matching member still pick up extensions
	mod.RegisterExtension(writerType, &types.Decl{
		Name:     "close",
		ParentID: mod.ID,
		Type:     &types.FuncType{ParamTypes: []types.Type{writerType}, ReturnType: types.PrimTypeUnit},
		DefKind:  types.DefKindFunc,
		Public:   true,
	})
}

// defineType defines a named type declaration in the module's global table.
func defineType(mod *depm.Module, name string, typ types.Type) {
	mod.GlobalTable.Define(&types.Decl{
		Name:     name,
		ParentID: mod.ID,
		Type:     typ,
		DefKind:  types.DefKindType,
		IsStatic: true,
		Public:   true,
	})
}
