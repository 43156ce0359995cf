package naming

import (
	"fmt"
	"path/filepath"

	"gototest/internal/adapter/pattern"
)

// SplitExt splits a filename into stem and extension (last dot onward).
// Dotfiles such as ".env" have no extension.
func SplitExt(filename string) (stem, ext string) {
	ext = filepath.Ext(filename)
	if ext == filename {
		return filename, ""
	}
	return filename[:len(filename)-len(ext)], ext
}

// DeriveSpecName returns the spec filename p expects for codeFilename.
func DeriveSpecName(codeFilename string, p *pattern.Pattern) string {
	stem, ext := SplitExt(codeFilename)
	return p.Generate(stem, ext)
}

// RecoverCodeName rebuilds the code filename from a spec filename matched by p.
// specFilename must match p; anything else is a caller bug and panics.
func RecoverCodeName(specFilename string, p *pattern.Pattern) string {
	stem, ext, ok := p.Match(specFilename)
	if !ok {
		panic(fmt.Sprintf("naming: %q does not match pattern %q", specFilename, p.Template()))
	}
	return stem + ext
}
