package js

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// SourceType selects the grammar: script or module goal, and the TypeScript and JSX extensions.
type SourceType struct {
	Module     bool
	TypeScript bool
	JSX        bool
	Definition bool // .d.ts, all declarations are ambient
}

// Common source types.
var (
	Script = SourceType{}
	Module = SourceType{Module: true}
	TS     = SourceType{Module: true, TypeScript: true}
	TSX    = SourceType{Module: true, TypeScript: true, JSX: true}
	JSX    = SourceType{Module: true, JSX: true}
)

// SourceTypeFromPath returns the source type for a file name by its extension.
func SourceTypeFromPath(path string) (SourceType, error) {
	name := filepath.Base(path)
	if strings.HasSuffix(name, ".d.ts") || strings.HasSuffix(name, ".d.mts") || strings.HasSuffix(name, ".d.cts") {
		return SourceType{Module: true, TypeScript: true, Definition: true}, nil
	}
	switch ext := filepath.Ext(name); ext {
	case ".js", ".mjs":
		return Module, nil
	case ".cjs":
		return Script, nil
	case ".jsx":
		return JSX, nil
	case ".ts", ".mts", ".cts":
		return TS, nil
	case ".tsx":
		return TSX, nil
	default:
		return SourceType{}, errors.Errorf("unknown file extension %q", ext)
	}
}

func (st SourceType) String() string {
	s := "script"
	if st.Module {
		s = "module"
	}
	if st.Definition {
		s += "+dts"
	} else if st.TypeScript {
		s += "+ts"
	}
	if st.JSX {
		s += "+jsx"
	}
	return s
}

// ParseSourceType returns the source type for a name such as "script", "module", "ts", "tsx", "jsx", or "dts".
func ParseSourceType(name string) (SourceType, error) {
	switch strings.ToLower(name) {
	case "script", "cjs":
		return Script, nil
	case "module", "js", "mjs":
		return Module, nil
	case "ts", "typescript":
		return TS, nil
	case "tsx":
		return TSX, nil
	case "jsx":
		return JSX, nil
	case "dts", "d.ts":
		return SourceType{Module: true, TypeScript: true, Definition: true}, nil
	}
	return SourceType{}, errors.Errorf("unknown source type %q", name)
}
