package js

import (
	"strings"

	"github.com/jsfront/parse"
)

// INode is implemented by all nodes. Every node embeds the span of source it was parsed from.
type INode interface {
	String() string
	Loc() parse.Span
}

// IStmt is a statement or declaration.
type IStmt interface {
	INode
	stmtNode()
}

// IExpr is an expression.
type IExpr interface {
	INode
	exprNode()
}

// IBinding is a binding target: a name or a destructuring pattern.
type IBinding interface {
	INode
	bindingNode()
}

// IType is a TypeScript type.
type IType interface {
	INode
	typeNode()
}

// ISignature is a member of an interface body or type literal.
type ISignature interface {
	INode
	signatureNode()
}

// IClassElement is a member of a class body.
type IClassElement interface {
	INode
	classElementNode()
}

func join[T INode](list []T, sep string) string {
	var sb strings.Builder
	for i, item := range list {
		if i != 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(item.String())
	}
	return sb.String()
}

func stringOrEmpty(n INode, prefix string) string {
	if n == nil || isNil(n) {
		return ""
	}
	return prefix + n.String()
}

////////////////////////////////////////////////////////////////

// Program is the root of the tree. It owns the arena all its nodes were allocated in.
type Program struct {
	parse.Span
	SourceType SourceType
	Hashbang   []byte
	Directives []*Directive
	List       []IStmt
	Comments   []Comment
	Scope      ScopeSlot
	Module     *ModuleRecord // nil for scripts

	arena *Arena
}

// Arena returns the arena holding the program's nodes.
func (n Program) Arena() *Arena {
	return n.arena
}

func (n Program) String() string {
	s := ""
	for i, item := range n.Directives {
		if i != 0 {
			s += " "
		}
		s += item.String()
	}
	if 0 < len(n.Directives) && 0 < len(n.List) {
		s += " "
	}
	return s + join(n.List, " ")
}

// Directive is a "use strict"-like string at the start of a program or function body.
type Directive struct {
	parse.Span
	Value []byte // including quotes
}

func (n Directive) String() string {
	return "Directive(" + string(n.Value) + ")"
}

////////////////////////////////////////////////////////////////

// BlockStmt is a block statement and the body of functions. Only function bodies have directives.
type BlockStmt struct {
	parse.Span
	Directives []*Directive
	List       []IStmt
	Scope      ScopeSlot
}

func (n BlockStmt) String() string {
	s := "Stmt({"
	for _, item := range n.Directives {
		s += " " + item.String()
	}
	for _, item := range n.List {
		s += " " + item.String()
	}
	return s + " })"
}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	parse.Span
}

func (n EmptyStmt) String() string {
	return "Stmt()"
}

// ExprStmt is an expression statement.
type ExprStmt struct {
	parse.Span
	Value IExpr
}

func (n ExprStmt) String() string {
	return "Stmt(" + n.Value.String() + ")"
}

// IfStmt is an if statement.
type IfStmt struct {
	parse.Span
	Cond IExpr
	Body IStmt
	Else IStmt // can be nil
}

func (n IfStmt) String() string {
	s := "Stmt(if " + n.Cond.String() + " " + n.Body.String()
	if n.Else != nil {
		s += " else " + n.Else.String()
	}
	return s + ")"
}

// DoWhileStmt is a do-while statement.
type DoWhileStmt struct {
	parse.Span
	Cond IExpr
	Body IStmt
}

func (n DoWhileStmt) String() string {
	return "Stmt(do " + n.Body.String() + " while " + n.Cond.String() + ")"
}

// WhileStmt is a while statement.
type WhileStmt struct {
	parse.Span
	Cond IExpr
	Body IStmt
}

func (n WhileStmt) String() string {
	return "Stmt(while " + n.Cond.String() + " " + n.Body.String() + ")"
}

// ForStmt is a for statement with three optional clauses.
type ForStmt struct {
	parse.Span
	Init  IExpr // can be nil, *VarDecl for declarations
	Cond  IExpr // can be nil
	Post  IExpr // can be nil
	Body  IStmt
	Scope ScopeSlot
}

func (n ForStmt) String() string {
	s := "Stmt(for"
	if n.Init != nil {
		s += " " + n.Init.String()
	}
	s += " ;"
	if n.Cond != nil {
		s += " " + n.Cond.String()
	}
	s += " ;"
	if n.Post != nil {
		s += " " + n.Post.String()
	}
	return s + " " + n.Body.String() + ")"
}

// ForInStmt is a for-in statement.
type ForInStmt struct {
	parse.Span
	Init  IExpr
	Value IExpr
	Body  IStmt
	Scope ScopeSlot
}

func (n ForInStmt) String() string {
	return "Stmt(for " + n.Init.String() + " in " + n.Value.String() + " " + n.Body.String() + ")"
}

// ForOfStmt is a for-of or for-await-of statement.
type ForOfStmt struct {
	parse.Span
	Await bool
	Init  IExpr
	Value IExpr
	Body  IStmt
	Scope ScopeSlot
}

func (n ForOfStmt) String() string {
	s := "Stmt(for"
	if n.Await {
		s += " await"
	}
	return s + " " + n.Init.String() + " of " + n.Value.String() + " " + n.Body.String() + ")"
}

// CaseClause is a case or default clause of a switch statement.
type CaseClause struct {
	parse.Span
	TokenType
	Cond IExpr // can be nil for default
	List []IStmt
}

func (n CaseClause) String() string {
	s := "Clause(" + n.TokenType.String()
	if n.Cond != nil {
		s += " " + n.Cond.String()
	}
	for _, item := range n.List {
		s += " " + item.String()
	}
	return s + ")"
}

// SwitchStmt is a switch statement.
type SwitchStmt struct {
	parse.Span
	Init  IExpr
	List  []*CaseClause
	Scope ScopeSlot
}

func (n SwitchStmt) String() string {
	s := "Stmt(switch " + n.Init.String()
	for _, clause := range n.List {
		s += " " + clause.String()
	}
	return s + ")"
}

// BranchStmt is a continue or break statement.
type BranchStmt struct {
	parse.Span
	Type  TokenType
	Label []byte // can be nil
}

func (n BranchStmt) String() string {
	s := "Stmt(" + n.Type.String()
	if n.Label != nil {
		s += " " + string(n.Label)
	}
	return s + ")"
}

// ReturnStmt is a return statement.
type ReturnStmt struct {
	parse.Span
	Value IExpr // can be nil
}

func (n ReturnStmt) String() string {
	s := "Stmt(return"
	if n.Value != nil {
		s += " " + n.Value.String()
	}
	return s + ")"
}

// WithStmt is a with statement.
type WithStmt struct {
	parse.Span
	Cond IExpr
	Body IStmt
}

func (n WithStmt) String() string {
	return "Stmt(with " + n.Cond.String() + " " + n.Body.String() + ")"
}

// LabelledStmt is a labelled statement.
type LabelledStmt struct {
	parse.Span
	Label []byte
	Value IStmt
}

func (n LabelledStmt) String() string {
	return "Stmt(" + string(n.Label) + " : " + n.Value.String() + ")"
}

// ThrowStmt is a throw statement.
type ThrowStmt struct {
	parse.Span
	Value IExpr
}

func (n ThrowStmt) String() string {
	return "Stmt(throw " + n.Value.String() + ")"
}

// CatchClause is the catch part of a try statement.
type CatchClause struct {
	parse.Span
	Binding IBinding // can be nil
	Type    IType    // can be nil
	Body    *BlockStmt
	Scope   ScopeSlot
}

func (n CatchClause) String() string {
	s := "catch"
	if n.Binding != nil {
		s += " " + n.Binding.String()
		s += stringOrEmpty(n.Type, ": ")
	}
	return s + " " + n.Body.String()
}

// TryStmt is a try statement.
type TryStmt struct {
	parse.Span
	Body    *BlockStmt
	Catch   *CatchClause // can be nil
	Finally *BlockStmt   // can be nil
}

func (n TryStmt) String() string {
	s := "Stmt(try " + n.Body.String()
	if n.Catch != nil {
		s += " " + n.Catch.String()
	}
	if n.Finally != nil {
		s += " finally " + n.Finally.String()
	}
	return s + ")"
}

// DebuggerStmt is a debugger statement.
type DebuggerStmt struct {
	parse.Span
}

func (n DebuggerStmt) String() string {
	return "Stmt(debugger)"
}

// Alias is a specifier in an export list, and the namespace binding of export * as ns.
type Alias struct {
	parse.Span
	Name     []byte // can be nil, the exported name when it differs
	Binding  []byte // local name, or the name in the module re-exported from
	TypeOnly bool
}

func (n Alias) String() string {
	s := ""
	if n.TypeOnly {
		s += "type "
	}
	if n.Name != nil {
		return s + string(n.Binding) + " as " + string(n.Name)
	}
	return s + string(n.Binding)
}

// ImportSpecifier is an entry of an import list.
type ImportSpecifier struct {
	parse.Span
	Imported []byte // can be nil when it equals the local name
	Local    *BindingName
	TypeOnly bool
}

func (n ImportSpecifier) String() string {
	s := ""
	if n.TypeOnly {
		s += "type "
	}
	if n.Imported != nil {
		s += string(n.Imported) + " as "
	}
	return s + n.Local.String()
}

// ImportAttribute is an entry of with { type: "json" }.
type ImportAttribute struct {
	parse.Span
	Key   []byte
	Value []byte
}

func (n ImportAttribute) String() string {
	return string(n.Key) + ": " + string(n.Value)
}

// ImportStmt is an import declaration.
type ImportStmt struct {
	parse.Span
	TypeOnly   bool
	Default    *BindingName // can be nil
	Namespace  *BindingName // can be nil, import * as ns
	List       []*ImportSpecifier
	Module     []byte // including quotes
	Attributes []*ImportAttribute
}

func (n ImportStmt) String() string {
	s := "Stmt(import"
	if n.TypeOnly {
		s += " type"
	}
	if n.Default != nil {
		s += " " + n.Default.String()
		if n.Namespace != nil || n.List != nil {
			s += " ,"
		}
	}
	if n.Namespace != nil {
		s += " * as " + n.Namespace.String()
	} else if n.List != nil {
		s += " {"
		for i, item := range n.List {
			if i != 0 {
				s += " ,"
			}
			s += " " + item.String()
		}
		s += " }"
	}
	if n.Default != nil || n.Namespace != nil || n.List != nil {
		s += " from"
	}
	s += " " + string(n.Module)
	if n.Attributes != nil {
		s += " with { " + join(n.Attributes, " , ") + " }"
	}
	return s + ")"
}

// ExportStmt is an export declaration other than export = and export as namespace.
type ExportStmt struct {
	parse.Span
	TypeOnly   bool
	List       []*Alias // can be nil
	Star       bool     // export *
	Namespace  *Alias   // can be nil, export * as ns
	Module     []byte   // can be nil
	Attributes []*ImportAttribute
	Default    bool
	Decl       INode // can be nil, a declaration or the default expression
}

func (n ExportStmt) String() string {
	s := "Stmt(export"
	if n.TypeOnly {
		s += " type"
	}
	if n.Decl != nil {
		if n.Default {
			s += " default"
		}
		return s + " " + n.Decl.String() + ")"
	}
	if n.Star {
		s += " *"
		if n.Namespace != nil {
			s += " as " + n.Namespace.String()
		}
	} else {
		s += " {"
		for i, item := range n.List {
			if i != 0 {
				s += " ,"
			}
			s += " " + item.String()
		}
		s += " }"
	}
	if n.Module != nil {
		s += " from " + string(n.Module)
	}
	if n.Attributes != nil {
		s += " with { " + join(n.Attributes, " , ") + " }"
	}
	return s + ")"
}

// ExportAssignStmt is TypeScript's export = value.
type ExportAssignStmt struct {
	parse.Span
	Value IExpr
}

func (n ExportAssignStmt) String() string {
	return "Stmt(export = " + n.Value.String() + ")"
}

// ExportAsNamespaceStmt is TypeScript's export as namespace Name.
type ExportAsNamespaceStmt struct {
	parse.Span
	Name []byte
}

func (n ExportAsNamespaceStmt) String() string {
	return "Stmt(export as namespace " + string(n.Name) + ")"
}

// VarDecl is a var, let, const, using, or await using declaration.
type VarDecl struct {
	parse.Span
	TokenType
	Declare bool
	Await   bool
	List    []*BindingElement
}

func (n VarDecl) String() string {
	s := "Decl("
	if n.Declare {
		s += "declare "
	}
	if n.Await {
		s += "await "
	}
	return s + n.TokenType.String() + " " + join(n.List, " , ") + ")"
}

func (n BlockStmt) stmtNode()             {}
func (n EmptyStmt) stmtNode()             {}
func (n ExprStmt) stmtNode()              {}
func (n IfStmt) stmtNode()                {}
func (n DoWhileStmt) stmtNode()           {}
func (n WhileStmt) stmtNode()             {}
func (n ForStmt) stmtNode()               {}
func (n ForInStmt) stmtNode()             {}
func (n ForOfStmt) stmtNode()             {}
func (n SwitchStmt) stmtNode()            {}
func (n BranchStmt) stmtNode()            {}
func (n ReturnStmt) stmtNode()            {}
func (n WithStmt) stmtNode()              {}
func (n LabelledStmt) stmtNode()          {}
func (n ThrowStmt) stmtNode()             {}
func (n TryStmt) stmtNode()               {}
func (n DebuggerStmt) stmtNode()          {}
func (n ImportStmt) stmtNode()            {}
func (n ExportStmt) stmtNode()            {}
func (n ExportAssignStmt) stmtNode()      {}
func (n ExportAsNamespaceStmt) stmtNode() {}
func (n VarDecl) stmtNode()               {}

func (n VarDecl) exprNode() {}
