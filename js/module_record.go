package js

import (
	"github.com/jsfront/parse"
)

// ModuleRecord lists the imports and exports of a module in source order.
type ModuleRecord struct {
	Imports []*ImportEntry
	Exports []*ExportEntry
}

// ImportEntry is a binding created by an import declaration.
type ImportEntry struct {
	Span       parse.Span // the local binding
	Module     []byte     // module specifier without quotes
	ImportName []byte     // nil for namespace imports, "default" for default imports
	LocalName  []byte
	TypeOnly   bool
}

// ExportEntry is a name exported by an export declaration.
type ExportEntry struct {
	Span       parse.Span
	ExportName []byte // nil for export * from "m"
	LocalName  []byte // nil for re-exports and anonymous default exports
	Module     []byte // nil for local exports, otherwise the module specifier without quotes
	ImportName []byte // the re-exported name in Module, nil for export * and export * as ns
	TypeOnly   bool
}

type moduleRecordBuilder struct {
	p        *Parser
	record   *ModuleRecord
	exported map[string]bool
}

// buildModuleRecord collects the imports and exports of the top-level statements and reports exported names that are exported twice.
func (p *Parser) buildModuleRecord(list []IStmt) *ModuleRecord {
	b := &moduleRecordBuilder{
		p:        p,
		record:   &ModuleRecord{},
		exported: map[string]bool{},
	}
	for _, stmt := range list {
		switch stmt := stmt.(type) {
		case *ImportStmt:
			b.addImportStmt(stmt)
		case *ImportEqualsDecl:
			if stmt.Module != nil {
				b.addImport(&ImportEntry{Span: stmt.Name.Span, Module: unquote(stmt.Module), LocalName: stmt.Name.Data, TypeOnly: stmt.TypeOnly})
			}
		case *ExportStmt:
			b.addExportStmt(stmt)
		}
	}
	return b.record
}

func (b *moduleRecordBuilder) addImport(e *ImportEntry) {
	b.record.Imports = append(b.record.Imports, e)
}

func (b *moduleRecordBuilder) addImportStmt(stmt *ImportStmt) {
	module := unquote(stmt.Module)
	if stmt.Default != nil {
		b.addImport(&ImportEntry{Span: stmt.Default.Span, Module: module, ImportName: []byte("default"), LocalName: stmt.Default.Data, TypeOnly: stmt.TypeOnly})
	}
	if stmt.Namespace != nil {
		b.addImport(&ImportEntry{Span: stmt.Namespace.Span, Module: module, LocalName: stmt.Namespace.Data, TypeOnly: stmt.TypeOnly})
	}
	for _, spec := range stmt.List {
		name := spec.Imported
		if name == nil {
			name = spec.Local.Data
		}
		b.addImport(&ImportEntry{Span: spec.Local.Span, Module: module, ImportName: unquote(name), LocalName: spec.Local.Data, TypeOnly: stmt.TypeOnly || spec.TypeOnly})
	}
}

// addExport records an export. Type-only exports and declarations that TypeScript merges are not checked for duplicates.
func (b *moduleRecordBuilder) addExport(e *ExportEntry, merges bool) {
	b.record.Exports = append(b.record.Exports, e)
	if merges || e.TypeOnly || len(e.ExportName) == 0 {
		return
	}
	name := string(e.ExportName)
	if b.exported[name] {
		b.p.error(e.Span, "duplicate export of '"+name+"'")
		return
	}
	b.exported[name] = true
}

func (b *moduleRecordBuilder) addExportStmt(stmt *ExportStmt) {
	module := unquote(stmt.Module)
	switch {
	case stmt.Star:
		e := &ExportEntry{Span: stmt.Span, Module: module, TypeOnly: stmt.TypeOnly}
		if stmt.Namespace != nil {
			e.Span = stmt.Namespace.Span
			e.ExportName = unquote(stmt.Namespace.Binding)
		}
		b.addExport(e, false)
	case stmt.List != nil:
		for _, alias := range stmt.List {
			name := alias.Binding
			if alias.Name != nil {
				name = alias.Name
			}
			e := &ExportEntry{Span: alias.Span, ExportName: unquote(name), TypeOnly: stmt.TypeOnly || alias.TypeOnly}
			if module != nil {
				e.Module, e.ImportName = module, unquote(alias.Binding)
			} else {
				e.LocalName = alias.Binding
			}
			b.addExport(e, false)
		}
	case stmt.Default:
		e := &ExportEntry{Span: stmt.Span, ExportName: []byte("default")}
		merges := false
		switch decl := stmt.Decl.(type) {
		case *FuncDecl:
			if decl.Name != nil {
				e.LocalName = decl.Name.Data
			}
			merges = decl.Body == nil // overload signature
		case *ClassDecl:
			if decl.Name != nil {
				e.LocalName = decl.Name.Data
			}
		case *InterfaceDecl:
			e.LocalName = decl.Name.Data
			e.TypeOnly = true
		}
		b.addExport(e, merges)
	case stmt.Decl != nil:
		b.addExportDecl(stmt.Decl)
	}
}

func (b *moduleRecordBuilder) addExportDecl(decl INode) {
	local := func(name *BindingName, typeOnly, merges bool) {
		b.addExport(&ExportEntry{Span: name.Span, ExportName: name.Data, LocalName: name.Data, TypeOnly: typeOnly}, merges)
	}
	switch decl := decl.(type) {
	case *VarDecl:
		for _, el := range decl.List {
			bindingNames(el.Binding, func(name *BindingName) {
				local(name, decl.Declare, false)
			})
		}
	case *FuncDecl:
		if decl.Name != nil {
			local(decl.Name, decl.Declare, decl.Body == nil)
		}
	case *ClassDecl:
		if decl.Name != nil {
			local(decl.Name, decl.Declare, false)
		}
	case *EnumDecl:
		local(decl.Name, decl.Declare, true)
	case *TypeAliasDecl:
		local(decl.Name, true, false)
	case *InterfaceDecl:
		local(decl.Name, true, false)
	case *ImportEqualsDecl:
		local(decl.Name, decl.TypeOnly, false)
	case *ModuleDecl:
		if decl.Kind != GlobalToken && 0 < len(decl.Name) && decl.Name[0] != '"' && decl.Name[0] != '\'' {
			b.addExport(&ExportEntry{Span: decl.Span, ExportName: decl.Name, LocalName: decl.Name, TypeOnly: decl.Declare}, true)
		}
	}
}

// bindingNames calls f for every name bound by a binding pattern, in source order.
func bindingNames(binding IBinding, f func(*BindingName)) {
	switch binding := binding.(type) {
	case *BindingName:
		f(binding)
	case *BindingArray:
		for _, el := range binding.List {
			if el != nil {
				bindingNames(el.Binding, f)
			}
		}
		if binding.Rest != nil {
			bindingNames(binding.Rest, f)
		}
	case *BindingObject:
		for _, item := range binding.List {
			if item.Value != nil {
				bindingNames(item.Value.Binding, f)
			}
		}
		if binding.Rest != nil {
			f(binding.Rest)
		}
	}
}

// unquote strips the quotes of a string literal without decoding escapes.
func unquote(b []byte) []byte {
	if 2 <= len(b) && (b[0] == '"' || b[0] == '\'') {
		return b[1 : len(b)-1]
	}
	return b
}
