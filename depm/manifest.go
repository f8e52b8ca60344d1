package depm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"rowanc/common"
	"rowanc/report"

	"github.com/pelletier/go-toml"
)

// tomlModule represents a Rowan module as it is encoded in TOML
type tomlModule struct {
	Name         string `toml:"name"`
	RowanVersion string `toml:"rowan-version"`
}

// LoadModule loads and validates a module.  `abspath` is the absolute path to
// the module directory.  This function returns the deserialized module and a
// success boolean.
func LoadModule(abspath string) (*Module, bool) {
	buff, err := os.ReadFile(filepath.Join(abspath, common.ModFileName))
	if err != nil {
		report.ReportFatal("unable to read module file at `%s`: %s", abspath, err.Error())
		return nil, false
	}

	tomlMod := &tomlModule{}
	if err := toml.Unmarshal(buff, tomlMod); err != nil {
		report.ReportFatal("error parsing module file at `%s`: %s", abspath, err.Error())
		return nil, false
	}

	mod := &Module{
		// the module root is the directory enclosing the module file
		AbsPath:    abspath,
		ID:         GenerateIDFromPath(abspath),
		extensions: NewExtensionTable(),
	}

	if !validateModule(mod, tomlMod) {
		return nil, false
	}

	mod.GlobalTable = NewSymbolTable(mod.Name)
	return mod, true
}

// validateModule checks that the module file contents are valid and moves the
// relevant TOML attributes over to the module.
func validateModule(mod *Module, tomlMod *tomlModule) bool {
	if tomlMod.Name == "" {
		report.ReportModuleError(fmt.Sprintf("<module at `%s`>", mod.AbsPath), "missing module name")
		return false
	}

	if !IsValidIdentifier(tomlMod.Name) {
		report.ReportModuleError(fmt.Sprintf("<module at `%s`>", mod.AbsPath), "module name must be a valid identifier")
		return false
	}

	if tomlMod.RowanVersion != common.RowanVersion {
		report.ReportModuleWarning(tomlMod.Name, "version of module `%s` (v%s) does not match current rowan version (v%s)",
			tomlMod.Name,
			tomlMod.RowanVersion,
			common.RowanVersion,
		)
	}

	mod.Name = tomlMod.Name
	return true
}

// InitModule creates a new module file for a module with the given name at
// the given path.
func InitModule(name, abspath string) error {
	modFilePath := filepath.Join(abspath, common.ModFileName)

	// check to see if a module already exists
	_, err := os.Stat(modFilePath)
	if err == nil {
		return errors.New("module file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("module file error: %s", err.Error())
	}

	if !IsValidIdentifier(name) {
		return errors.New("module name must be a valid identifier")
	}

	f, err := os.Create(modFilePath)
	if err != nil {
		return fmt.Errorf("error creating module file: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(&tomlModule{Name: name, RowanVersion: common.RowanVersion}); err != nil {
		return fmt.Errorf("error encoding TOML: %s", err.Error())
	}

	return nil
}
