// Package mod loads candi-mod.toml, the Candi project descriptor (§2, §6
// "candic mod init"), following the teacher's tomlModule struct-tag
// convention in depm/load_mod.go / src/mods/load.go (see DESIGN.md).
package mod

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"github.com/ayzg/candi/common"
	"github.com/ayzg/candi/util"
)

// Module is the deserialized candi-mod.toml project descriptor: name, entry
// file, include search paths, and evaluator limits.
type Module struct {
	// Root is the directory enclosing the module file. Not itself part of
	// the TOML encoding.
	Root string `toml:"-"`

	Name              string   `toml:"name"`
	Entry             string   `toml:"entry"`
	IncludeDirs       []string `toml:"include-dirs,omitempty"`
	MaxRecursionDepth int      `toml:"max-recursion-depth,omitempty"`
	MaxEvalSteps      int      `toml:"max-eval-steps,omitempty"`
}

// tomlModuleFile mirrors the teacher's tomlModuleFile wrapper: the module
// table is nested one level under `[module]` in the TOML document.
type tomlModuleFile struct {
	Module *Module `toml:"module"`
}

// defaultMaxRecursionDepth and defaultMaxEvalSteps are applied when a loaded
// module file omits them, matching §5's recursion-depth tolerance note.
const (
	defaultMaxRecursionDepth = 512
	defaultMaxEvalSteps      = 1_000_000
)

// Load reads and validates the candi-mod.toml file in dir.
func Load(dir string) (*Module, error) {
	f, err := os.Open(filepath.Join(dir, common.ModuleFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}
	tmf := &tomlModuleFile{}
	if err := toml.Unmarshal(buff, tmf); err != nil {
		return nil, fmt.Errorf("candi-mod.toml: %w", err)
	}
	if tmf.Module == nil {
		return nil, errors.New("candi-mod.toml: missing [module] table")
	}

	m := tmf.Module
	m.Root = dir
	if err := validate(m); err != nil {
		return nil, err
	}
	m.IncludeDirs = util.Map(m.IncludeDirs, func(d string) string {
		if filepath.IsAbs(d) {
			return d
		}
		return filepath.Join(dir, d)
	})
	if m.MaxRecursionDepth == 0 {
		m.MaxRecursionDepth = defaultMaxRecursionDepth
	}
	if m.MaxEvalSteps == 0 {
		m.MaxEvalSteps = defaultMaxEvalSteps
	}
	return m, nil
}

// Default builds a synthetic single-file Module for `candic run <file>`
// invocations with no project descriptor on disk.
func Default(entryFile string) *Module {
	return &Module{
		Root:              filepath.Dir(entryFile),
		Name:              filepath.Base(entryFile),
		Entry:             entryFile,
		MaxRecursionDepth: defaultMaxRecursionDepth,
		MaxEvalSteps:      defaultMaxEvalSteps,
	}
}

func validate(m *Module) error {
	if m.Name == "" {
		return errors.New("candi-mod.toml: missing module name")
	}
	if !isValidIdentifier(m.Name) {
		return fmt.Errorf("candi-mod.toml: %q is not a valid module name", m.Name)
	}
	if m.Entry == "" {
		return errors.New("candi-mod.toml: missing entry file")
	}
	return nil
}

// isValidIdentifier reports whether idstr could name a module (letters,
// digits, underscore; may not start with a digit).
func isValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}
	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}
			return false
		}
		return true
	}
	return false
}

// EntryPath resolves the module's entry file to an absolute path.
func (m *Module) EntryPath() string {
	if filepath.IsAbs(m.Entry) {
		return m.Entry
	}
	return filepath.Join(m.Root, m.Entry)
}

// ResolveInclude resolves an `#include "path"` target against the module's
// root and configured include directories, in that order.
func (m *Module) ResolveInclude(path string) (string, error) {
	candidates := []string{m.Root}
	for _, dir := range m.IncludeDirs {
		if !util.Contains(candidates, dir) {
			candidates = append(candidates, dir)
		}
	}
	for _, dir := range candidates {
		full := filepath.Join(dir, path)
		if _, err := os.Stat(full); err == nil {
			return full, nil
		}
	}
	return "", fmt.Errorf("could not resolve #include %q", path)
}

// Init writes a default candi-mod.toml to dir, mirroring the teacher's `mod
// init` subcommand (src/mods/initialize.go).
func Init(name, dir string) error {
	path := filepath.Join(dir, common.ModuleFileName)
	if _, err := os.Stat(path); err == nil {
		return errors.New("module file already exists")
	} else if !os.IsNotExist(err) {
		return err
	}

	m := &Module{
		Name:  name,
		Entry: "main" + common.FileExt,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating module file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(&tomlModuleFile{Module: m})
}
