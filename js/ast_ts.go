package js

import (
	"github.com/jsfront/parse"
)

// TypeKeyword is a keyword type such as number or void, or the this type.
type TypeKeyword struct {
	parse.Span
	Kind TokenType
}

func (n TypeKeyword) String() string {
	return n.Kind.String()
}

// TypeReference is a possibly qualified type name with optional type arguments.
type TypeReference struct {
	parse.Span
	Name     IExpr // *Var or *DotExpr
	TypeArgs *TypeArgs
}

func (n TypeReference) String() string {
	if n.TypeArgs != nil {
		return n.Name.String() + n.TypeArgs.String()
	}
	return n.Name.String()
}

// LiteralType is a string, number, bigint, boolean, or null literal type, or a negated number.
type LiteralType struct {
	parse.Span
	Literal IExpr
}

func (n LiteralType) String() string {
	return n.Literal.String()
}

// TemplateTypePart is a string part followed by a type. Value includes the delimiters.
type TemplateTypePart struct {
	Value []byte
	Type  IType
}

// TemplateLiteralType is a template literal type with type substitutions.
type TemplateLiteralType struct {
	parse.Span
	List []TemplateTypePart
	Tail []byte
}

func (n TemplateLiteralType) String() string {
	s := ""
	for _, item := range n.List {
		s += string(item.Value) + item.Type.String()
	}
	return s + string(n.Tail)
}

// ArrayType is T[].
type ArrayType struct {
	parse.Span
	Elem IType
}

func (n ArrayType) String() string {
	return n.Elem.String() + "[]"
}

// IndexedAccessType is T[K].
type IndexedAccessType struct {
	parse.Span
	Object IType
	Index  IType
}

func (n IndexedAccessType) String() string {
	return n.Object.String() + "[" + n.Index.String() + "]"
}

// TupleType is [A, B?, ...C].
type TupleType struct {
	parse.Span
	List []IType
}

func (n TupleType) String() string {
	return "[" + join(n.List, ", ") + "]"
}

// NamedTupleMember is a labelled tuple element name?: T.
type NamedTupleMember struct {
	parse.Span
	Name     []byte
	Optional bool
	Type     IType
}

func (n NamedTupleMember) String() string {
	if n.Optional {
		return string(n.Name) + "?: " + n.Type.String()
	}
	return string(n.Name) + ": " + n.Type.String()
}

// OptionalType is an optional tuple element T?.
type OptionalType struct {
	parse.Span
	Type IType
}

func (n OptionalType) String() string {
	return n.Type.String() + "?"
}

// RestType is a rest tuple element ...T.
type RestType struct {
	parse.Span
	Type IType
}

func (n RestType) String() string {
	return "..." + n.Type.String()
}

// UnionType is A | B.
type UnionType struct {
	parse.Span
	List []IType
}

func (n UnionType) String() string {
	return "(" + join(n.List, " | ") + ")"
}

// IntersectionType is A & B.
type IntersectionType struct {
	parse.Span
	List []IType
}

func (n IntersectionType) String() string {
	return "(" + join(n.List, " & ") + ")"
}

// FunctionType is (params) => R.
type FunctionType struct {
	parse.Span
	TypeParams *TypeParams
	Params     Params
	ReturnType IType
}

func (n FunctionType) String() string {
	s := "FuncType("
	if n.TypeParams != nil {
		s += n.TypeParams.String()
	}
	return s + n.Params.String() + " => " + n.ReturnType.String() + ")"
}

// ConstructorType is new (params) => R.
type ConstructorType struct {
	parse.Span
	Abstract   bool
	TypeParams *TypeParams
	Params     Params
	ReturnType IType
}

func (n ConstructorType) String() string {
	s := "CtorType("
	if n.Abstract {
		s += "abstract "
	}
	s += "new "
	if n.TypeParams != nil {
		s += n.TypeParams.String()
	}
	return s + n.Params.String() + " => " + n.ReturnType.String() + ")"
}

// ParenType is a parenthesized type.
type ParenType struct {
	parse.Span
	Type IType
}

func (n ParenType) String() string {
	return "Paren(" + n.Type.String() + ")"
}

// TypeLiteral is an object type { a: T; m(): U }.
type TypeLiteral struct {
	parse.Span
	List []ISignature
}

func (n TypeLiteral) String() string {
	if len(n.List) == 0 {
		return "{}"
	}
	return "{ " + join(n.List, "; ") + " }"
}

// MappedModifier is a readonly or ? modifier of a mapped type.
type MappedModifier uint8

// MappedModifier values.
const (
	MappedNone  MappedModifier = iota
	MappedTrue                 // readonly, ?
	MappedPlus                 // +readonly, +?
	MappedMinus                // -readonly, -?
)

func (m MappedModifier) prefix() string {
	switch m {
	case MappedPlus:
		return "+"
	case MappedMinus:
		return "-"
	}
	return ""
}

// MappedType is { readonly [K in C as N]?: T }.
type MappedType struct {
	parse.Span
	Readonly   MappedModifier
	Optional   MappedModifier
	Name       *BindingName
	Constraint IType
	NameType   IType // can be nil
	Type       IType // can be nil
}

func (n MappedType) String() string {
	s := "{ "
	if n.Readonly != MappedNone {
		s += n.Readonly.prefix() + "readonly "
	}
	s += "[" + n.Name.String() + " in " + n.Constraint.String() + stringOrEmpty(n.NameType, " as ") + "]"
	if n.Optional != MappedNone {
		s += n.Optional.prefix() + "?"
	}
	return s + stringOrEmpty(n.Type, ": ") + " }"
}

// ConditionalType is C extends E ? T : F.
type ConditionalType struct {
	parse.Span
	Check   IType
	Extends IType
	True    IType
	False   IType
}

func (n ConditionalType) String() string {
	return "(" + n.Check.String() + " extends " + n.Extends.String() + " ? " + n.True.String() + " : " + n.False.String() + ")"
}

// InferType is infer U, optionally constrained, inside the extends clause of a conditional type.
type InferType struct {
	parse.Span
	Name       *BindingName
	Constraint IType // can be nil
}

func (n InferType) String() string {
	return "(infer " + n.Name.String() + stringOrEmpty(n.Constraint, " extends ") + ")"
}

// TypeOperator is keyof T, unique symbol, or readonly T[].
type TypeOperator struct {
	parse.Span
	Op   TokenType
	Type IType
}

func (n TypeOperator) String() string {
	return "(" + n.Op.String() + " " + n.Type.String() + ")"
}

// TypeQuery is typeof x.
type TypeQuery struct {
	parse.Span
	Name     IExpr // *Var, *DotExpr, or an import type wrapped as an expression
	Import   *ImportType
	TypeArgs *TypeArgs
}

func (n TypeQuery) String() string {
	s := "typeof "
	if n.Import != nil {
		s += n.Import.String()
	} else {
		s += n.Name.String()
	}
	if n.TypeArgs != nil {
		s += n.TypeArgs.String()
	}
	return s
}

// ImportType is import("mod").Name<T>.
type ImportType struct {
	parse.Span
	Argument  IType
	Qualifier IExpr // can be nil
	TypeArgs  *TypeArgs
}

func (n ImportType) String() string {
	s := "import(" + n.Argument.String() + ")"
	if n.Qualifier != nil {
		s += "." + n.Qualifier.String()
	}
	if n.TypeArgs != nil {
		s += n.TypeArgs.String()
	}
	return s
}

// TypePredicate is a return type x is T, asserts x, or asserts x is T. Name may be this.
type TypePredicate struct {
	parse.Span
	Asserts bool
	Name    []byte
	Type    IType // can be nil with asserts
}

func (n TypePredicate) String() string {
	s := ""
	if n.Asserts {
		s += "asserts "
	}
	return s + string(n.Name) + stringOrEmpty(n.Type, " is ")
}

// TypeParam is a type parameter declaration.
type TypeParam struct {
	parse.Span
	In         bool
	Out        bool
	Const      bool
	Name       *BindingName
	Constraint IType
	Default    IType
}

func (n TypeParam) String() string {
	s := ""
	if n.Const {
		s += "const "
	}
	if n.In {
		s += "in "
	}
	if n.Out {
		s += "out "
	}
	return s + n.Name.String() + stringOrEmpty(n.Constraint, " extends ") + stringOrEmpty(n.Default, " = ")
}

// TypeParams is a type parameter list <T, U>.
type TypeParams struct {
	parse.Span
	List []*TypeParam
}

func (n TypeParams) String() string {
	return "<" + join(n.List, ", ") + ">"
}

// TypeArgs is a type argument list <A, B>.
type TypeArgs struct {
	parse.Span
	List []IType
}

func (n TypeArgs) String() string {
	return "<" + join(n.List, ", ") + ">"
}

// BadType is a placeholder for a type that could not be parsed.
type BadType struct {
	parse.Span
}

func (n BadType) String() string {
	return "Bad"
}

////////////////////////////////////////////////////////////////

// PropertySignature is a: T in an interface or type literal.
type PropertySignature struct {
	parse.Span
	Readonly bool
	Optional bool
	Name     *PropertyName
	Type     IType // can be nil
}

func (n PropertySignature) String() string {
	s := ""
	if n.Readonly {
		s += "readonly "
	}
	s += n.Name.String()
	if n.Optional {
		s += "?"
	}
	return s + stringOrEmpty(n.Type, ": ")
}

// MethodSignature is m(params): R, including get and set accessors.
type MethodSignature struct {
	parse.Span
	Kind       MethodKind
	Optional   bool
	Name       *PropertyName
	TypeParams *TypeParams
	Params     Params
	ReturnType IType
}

func (n MethodSignature) String() string {
	s := ""
	if n.Kind == GetMethod {
		s += "get "
	} else if n.Kind == SetMethod {
		s += "set "
	}
	s += n.Name.String()
	if n.Optional {
		s += "?"
	}
	if n.TypeParams != nil {
		s += n.TypeParams.String()
	}
	return s + " " + n.Params.String() + stringOrEmpty(n.ReturnType, ": ")
}

// CallSignature is (params): R.
type CallSignature struct {
	parse.Span
	TypeParams *TypeParams
	Params     Params
	ReturnType IType
}

func (n CallSignature) String() string {
	s := ""
	if n.TypeParams != nil {
		s += n.TypeParams.String()
	}
	return s + n.Params.String() + stringOrEmpty(n.ReturnType, ": ")
}

// ConstructSignature is new (params): R.
type ConstructSignature struct {
	parse.Span
	TypeParams *TypeParams
	Params     Params
	ReturnType IType
}

func (n ConstructSignature) String() string {
	s := "new "
	if n.TypeParams != nil {
		s += n.TypeParams.String()
	}
	return s + n.Params.String() + stringOrEmpty(n.ReturnType, ": ")
}

// IndexSignature is [key: K]: T, in interfaces, type literals, and classes.
type IndexSignature struct {
	parse.Span
	Static   bool
	Readonly bool
	Name     *BindingName
	KeyType  IType
	Type     IType
}

func (n IndexSignature) String() string {
	s := ""
	if n.Static {
		s += "static "
	}
	if n.Readonly {
		s += "readonly "
	}
	return s + "[" + n.Name.String() + ": " + n.KeyType.String() + "]: " + n.Type.String()
}

////////////////////////////////////////////////////////////////

// TypeAliasDecl is type A<T> = B.
type TypeAliasDecl struct {
	parse.Span
	Declare    bool
	Name       *BindingName
	TypeParams *TypeParams
	Type       IType
}

func (n TypeAliasDecl) String() string {
	s := "Decl("
	if n.Declare {
		s += "declare "
	}
	s += "type " + n.Name.String()
	if n.TypeParams != nil {
		s += n.TypeParams.String()
	}
	return s + " = " + n.Type.String() + ")"
}

// InterfaceDecl is an interface declaration.
type InterfaceDecl struct {
	parse.Span
	Declare    bool
	Name       *BindingName
	TypeParams *TypeParams
	Extends    []IType
	List       []ISignature
}

func (n InterfaceDecl) String() string {
	s := "Decl("
	if n.Declare {
		s += "declare "
	}
	s += "interface " + n.Name.String()
	if n.TypeParams != nil {
		s += n.TypeParams.String()
	}
	if n.Extends != nil {
		s += " extends " + join(n.Extends, ", ")
	}
	if len(n.List) == 0 {
		return s + " {})"
	}
	return s + " { " + join(n.List, "; ") + " })"
}

// EnumMember is a member of an enum with an optional initializer.
type EnumMember struct {
	parse.Span
	Name *PropertyName
	Init IExpr
}

func (n EnumMember) String() string {
	return n.Name.String() + stringOrEmpty(n.Init, " = ")
}

// EnumDecl is an enum or const enum declaration.
type EnumDecl struct {
	parse.Span
	Const   bool
	Declare bool
	Name    *BindingName
	Members []*EnumMember
	Scope   ScopeSlot
}

func (n EnumDecl) String() string {
	s := "Decl("
	if n.Declare {
		s += "declare "
	}
	if n.Const {
		s += "const "
	}
	s += "enum " + n.Name.String()
	if len(n.Members) == 0 {
		return s + " {})"
	}
	return s + " { " + join(n.Members, ", ") + " })"
}

// ModuleDecl is namespace N {}, module "m" {}, or declare global {}. A dotted name N.M nests a ModuleDecl as Body.
type ModuleDecl struct {
	parse.Span
	Declare bool
	Kind    TokenType // NamespaceToken, ModuleToken, or GlobalToken
	Name    []byte    // identifier or string literal including quotes
	Body    IStmt     // *BlockStmt, *ModuleDecl, or nil for module "m";
	Scope   ScopeSlot
}

func (n ModuleDecl) String() string {
	s := "Decl("
	if n.Declare {
		s += "declare "
	}
	s += n.Kind.String()
	if n.Kind != GlobalToken {
		s += " " + string(n.Name)
	}
	if n.Body != nil {
		s += " " + n.Body.String()
	}
	return s + ")"
}

// ImportEqualsDecl is import A = B.C or import A = require("m").
type ImportEqualsDecl struct {
	parse.Span
	TypeOnly bool
	Name     *BindingName
	Value    IExpr  // can be nil, *Var or *DotExpr
	Module   []byte // can be nil, the require argument including quotes
}

func (n ImportEqualsDecl) String() string {
	s := "Decl(import "
	if n.TypeOnly {
		s += "type "
	}
	s += n.Name.String() + " = "
	if n.Module != nil {
		return s + "require(" + string(n.Module) + "))"
	}
	return s + n.Value.String() + ")"
}

func (n TypeKeyword) typeNode()         {}
func (n TypeReference) typeNode()       {}
func (n LiteralType) typeNode()         {}
func (n TemplateLiteralType) typeNode() {}
func (n ArrayType) typeNode()           {}
func (n IndexedAccessType) typeNode()   {}
func (n TupleType) typeNode()           {}
func (n NamedTupleMember) typeNode()    {}
func (n OptionalType) typeNode()        {}
func (n RestType) typeNode()            {}
func (n UnionType) typeNode()           {}
func (n IntersectionType) typeNode()    {}
func (n FunctionType) typeNode()        {}
func (n ConstructorType) typeNode()     {}
func (n ParenType) typeNode()           {}
func (n TypeLiteral) typeNode()         {}
func (n MappedType) typeNode()          {}
func (n ConditionalType) typeNode()     {}
func (n InferType) typeNode()           {}
func (n TypeOperator) typeNode()        {}
func (n TypeQuery) typeNode()           {}
func (n ImportType) typeNode()          {}
func (n TypePredicate) typeNode()       {}
func (n BadType) typeNode()             {}

func (n PropertySignature) signatureNode()  {}
func (n MethodSignature) signatureNode()    {}
func (n CallSignature) signatureNode()      {}
func (n ConstructSignature) signatureNode() {}
func (n IndexSignature) signatureNode()     {}

func (n IndexSignature) classElementNode() {}

func (n TypeAliasDecl) stmtNode()    {}
func (n InterfaceDecl) stmtNode()    {}
func (n EnumDecl) stmtNode()         {}
func (n ModuleDecl) stmtNode()       {}
func (n ImportEqualsDecl) stmtNode() {}
