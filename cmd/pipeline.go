package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ayzg/candi/common"
	"github.com/ayzg/candi/lexer"
	"github.com/ayzg/candi/mod"
	"github.com/ayzg/candi/preprocess"
	"github.com/ayzg/candi/token"
)

// tokenizeFile lexes the file at path into a token stream.
func tokenizeFile(path string) ([]token.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lexer.Tokenize(f)
}

// resolverFor builds a preprocess.Resolver that looks up `#include` targets
// against m's root and include directories.
func resolverFor(m *mod.Module) preprocess.Resolver {
	return func(path string) ([]token.Token, error) {
		full, err := m.ResolveInclude(path)
		if err != nil {
			return nil, err
		}
		return tokenizeFile(full)
	}
}

// preprocessedTokens tokenizes m's entry file and runs `#include`/`#macro`
// expansion over the result (§6 token-stream pipeline boundary).
func preprocessedTokens(m *mod.Module) ([]token.Token, error) {
	toks, err := tokenizeFile(m.EntryPath())
	if err != nil {
		return nil, err
	}
	return preprocess.Expand(toks, resolverFor(m))
}

// loadModuleOrDefault loads a candi-mod.toml from target if it is a
// directory containing one; a directory without one is an error. Any other
// target is treated as a bare source file under a synthetic single-file
// module (§6 "a bare file, using default module settings").
func loadModuleOrDefault(target string) (*mod.Module, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		abs, err := filepath.Abs(target)
		if err != nil {
			return nil, err
		}
		return mod.Default(abs), nil
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(filepath.Join(abs, common.ModuleFileName)); err == nil {
		return mod.Load(abs)
	}
	return nil, fmt.Errorf("%s: directory has no %s", abs, common.ModuleFileName)
}
