package depm

import (
	"os"
	"path/filepath"
	"testing"

	"rowanc/common"
	"rowanc/report"
	"rowanc/types"
)

func TestMain(m *testing.M) {
	// conflict tests exercise reporting paths
	report.InitReporter(report.LogLevelSilent)
	os.Exit(m.Run())
}

func varDecl(name string, public bool) *types.Decl {
	return &types.Decl{Name: name, Type: types.PrimTypeI64, DefKind: types.DefKindVar, Public: public}
}

func funcDecl(name string, paramTypes ...types.Type) *types.Decl {
	return &types.Decl{
		Name:    name,
		Type:    &types.FuncType{ParamTypes: paramTypes, ReturnType: types.PrimTypeUnit},
		DefKind: types.DefKindFunc,
		Public:  true,
	}
}

func TestSymbolTableDefine(t *testing.T) {
	st := NewSymbolTable("test")

	if !st.Define(varDecl("counter", true)) {
		t.Fatal("expected first definition to succeed")
	}

	if _, ok := st.Lookup("counter"); !ok {
		t.Fatal("expected `counter` to be defined")
	}

	// non-function redefinition must fail
	if st.Define(varDecl("counter", true)) {
		t.Error("expected redefinition of a variable to fail")
	}

	// function names may carry multiple declarations
	first := funcDecl("write", types.PrimTypeI64)
	second := funcDecl("write", types.PrimTypeF64)
	if !st.Define(first) || !st.Define(second) {
		t.Fatal("expected function overloads to be defined")
	}

	overloads, _ := st.Lookup("write")
	if len(overloads) != 2 || overloads[0] != first || overloads[1] != second {
		t.Error("expected the overload set in definition order")
	}

	// a variable cannot join a function overload set
	if st.Define(varDecl("write", true)) {
		t.Error("expected a variable to conflict with a function name")
	}

	// nor a function a variable
	if st.Define(funcDecl("counter")) {
		t.Error("expected a function to conflict with a variable name")
	}
}

func TestLookupQualified(t *testing.T) {
	mod := NewModule("geom", "/proj/geom")

	public := varDecl("origin", true)
	mod.GlobalTable.Define(public)
	mod.GlobalTable.Define(varDecl("hidden", false))

	if decls := mod.LookupQualified("origin"); len(decls) != 1 || decls[0] != public {
		t.Error("expected the public declaration to be exported")
	}

	if decls := mod.LookupQualified("hidden"); decls != nil {
		t.Error("expected the private declaration not to be exported")
	}

	if decls := mod.LookupQualified("missing"); decls != nil {
		t.Error("expected no declarations for an unknown name")
	}

	first := funcDecl("write", types.PrimTypeI64)
	second := funcDecl("write", types.PrimTypeF64)
	mod.GlobalTable.Define(first)
	mod.GlobalTable.Define(second)

	if decls := mod.LookupQualified("write"); len(decls) != 2 || decls[0] != first || decls[1] != second {
		t.Error("expected the exported overload set in definition order")
	}
}

func TestExtensionTableOrder(t *testing.T) {
	et := NewExtensionTable()

	vec := &types.TupleType{Elements: []types.TupleElement{
		{Name: "x", Type: types.PrimTypeF64},
		{Name: "y", Type: types.PrimTypeF64},
	}}

	first := funcDecl("scale", vec, types.PrimTypeF64)
	second := funcDecl("scale", vec, types.PrimTypeI64)
	et.Register(vec, first)
	et.Register(vec, second)
	et.Register(vec, funcDecl("len", vec))

	decls := et.Lookup(vec, "scale")
	if len(decls) != 2 || decls[0] != first || decls[1] != second {
		t.Error("expected the extension set in registration order")
	}

	// lookups key on type structure, not on instance identity
	vecAlias := &types.TupleType{Elements: []types.TupleElement{
		{Name: "x", Type: types.PrimTypeF64},
		{Name: "y", Type: types.PrimTypeF64},
	}}
	if decls := et.Lookup(vecAlias, "scale"); len(decls) != 2 {
		t.Error("expected a structurally equal tuple to see the same extensions")
	}

	if decls := et.Lookup(types.PrimTypeI64, "scale"); decls != nil {
		t.Error("expected no extensions against an unrelated type")
	}

	if decls := et.Lookup(vec, "missing"); decls != nil {
		t.Error("expected no extensions for an unknown name")
	}
}

func TestInitAndLoadModule(t *testing.T) {
	dir := t.TempDir()

	if err := InitModule("geom", dir); err != nil {
		t.Fatalf("expected module init to succeed: %s", err.Error())
	}

	// a second init must refuse to overwrite the module file
	if err := InitModule("geom", dir); err == nil {
		t.Error("expected a second module init to fail")
	}

	mod, ok := LoadModule(dir)
	if !ok {
		t.Fatal("expected the initialized module to load")
	}

	if mod.Name != "geom" {
		t.Errorf("expected module name `geom`, not `%s`", mod.Name)
	}

	if mod.ID != GenerateIDFromPath(dir) {
		t.Error("expected the module ID to be generated from its path")
	}

	if mod.GlobalTable == nil {
		t.Error("expected a loaded module to carry a symbol table")
	}
}

func TestInitModuleInvalidName(t *testing.T) {
	if err := InitModule("9geom", t.TempDir()); err == nil {
		t.Error("expected an invalid module name to fail")
	}
}

func TestLoadModuleInvalidManifest(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"missing name", "rowan-version = \"" + common.RowanVersion + "\"\n"},
		{"invalid name", "name = \"9geom\"\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, common.ModFileName), []byte(tc.manifest), 0666); err != nil {
				t.Fatalf("failed to write manifest: %s", err.Error())
			}

			if _, ok := LoadModule(dir); ok {
				t.Error("expected the module not to load")
			}
		})
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		idstr string
		valid bool
	}{
		{"geom", true},
		{"_geom", true},
		{"geom2", true},
		{"Geom_2", true},
		{"", false},
		{"9geom", false},
		{"geom-2", false},
		{"geom.2", false},
	}

	for _, tc := range tests {
		if IsValidIdentifier(tc.idstr) != tc.valid {
			t.Errorf("expected IsValidIdentifier(`%s`) == %v", tc.idstr, tc.valid)
		}
	}
}

func TestGenerateIDFromPath(t *testing.T) {
	if GenerateIDFromPath("/proj/geom") != GenerateIDFromPath("/proj/geom") {
		t.Error("expected a stable ID for the same path")
	}

	if GenerateIDFromPath("/proj/geom") == GenerateIDFromPath("/proj/mesh") {
		t.Error("expected distinct IDs for distinct paths")
	}
}
