package js

import (
	"github.com/jsfront/parse"
)

// Var is an identifier reference.
type Var struct {
	parse.Span
	Data      []byte
	Reference ReferenceSlot
}

func (n Var) String() string {
	return string(n.Data)
}

// LiteralExpr is a literal, this, or super.
type LiteralExpr struct {
	parse.Span
	TokenType
	Data []byte
}

func (n LiteralExpr) String() string {
	return string(n.Data)
}

// BadExpr is a placeholder for an expression that could not be parsed.
type BadExpr struct {
	parse.Span
}

func (n BadExpr) String() string {
	return "Bad"
}

// Element is an entry of an array literal. Value is nil for holes.
type Element struct {
	Value  IExpr
	Spread bool
}

func (n Element) String() string {
	if n.Value == nil {
		return ""
	} else if n.Spread {
		return "..." + n.Value.String()
	}
	return n.Value.String()
}

// ArrayExpr is an array literal.
type ArrayExpr struct {
	parse.Span
	List []Element
}

func (n ArrayExpr) String() string {
	s := "["
	for i, item := range n.List {
		if i != 0 {
			s += ", "
		}
		s += item.String()
	}
	if 0 < len(n.List) && n.List[len(n.List)-1].Value == nil {
		s += ","
	}
	return s + "]"
}

// PropertyKind is the kind of an object literal property.
type PropertyKind uint8

// PropertyKind values.
const (
	InitProperty      PropertyKind = iota // a: b
	ShorthandProperty                     // a, or a = b in patterns
	MethodProperty                        // a() {}, get a() {}, set a(v) {}
	SpreadProperty                        // ...a
)

// PropertyName is a property key: an identifier name, string, number, private name, or computed expression.
type PropertyName struct {
	parse.Span
	Literal  TokenType
	Data     []byte
	Computed IExpr // can be nil
}

// IsComputed returns true for [expr] keys.
func (n PropertyName) IsComputed() bool {
	return n.Computed != nil
}

func (n PropertyName) String() string {
	if n.Computed != nil {
		return "[" + n.Computed.String() + "]"
	}
	return string(n.Data)
}

// Property is an entry of an object literal.
type Property struct {
	parse.Span
	Kind  PropertyKind
	Name  *PropertyName // nil for spread
	Value IExpr         // *MethodDecl for methods
	Init  IExpr         // can be nil, shorthand default in cover grammar
}

func (n Property) String() string {
	switch n.Kind {
	case ShorthandProperty:
		if n.Init != nil {
			return n.Name.String() + " = " + n.Init.String()
		}
		return n.Name.String()
	case SpreadProperty:
		return "..." + n.Value.String()
	case MethodProperty:
		return n.Value.String()
	}
	return n.Name.String() + ": " + n.Value.String()
}

// ObjectExpr is an object literal.
type ObjectExpr struct {
	parse.Span
	List []*Property
}

func (n ObjectExpr) String() string {
	if len(n.List) == 0 {
		return "{}"
	}
	return "{" + join(n.List, ", ") + "}"
}

// TemplatePart is a string part followed by a substitution. Value includes the delimiters.
type TemplatePart struct {
	Value []byte
	Expr  IExpr
}

// TemplateExpr is a template literal, optionally tagged.
type TemplateExpr struct {
	parse.Span
	Tag      IExpr // can be nil
	TypeArgs *TypeArgs
	List     []TemplatePart
	Tail     []byte
}

func (n TemplateExpr) String() string {
	s := ""
	if n.Tag != nil {
		s += n.Tag.String()
		if n.TypeArgs != nil {
			s += n.TypeArgs.String()
		}
	}
	for _, item := range n.List {
		s += string(item.Value) + item.Expr.String()
	}
	return s + string(n.Tail)
}

// GroupExpr is a parenthesized expression.
type GroupExpr struct {
	parse.Span
	X IExpr
}

func (n GroupExpr) String() string {
	return "Group(" + n.X.String() + ")"
}

// CommaExpr is a sequence of expressions.
type CommaExpr struct {
	parse.Span
	List []IExpr
}

func (n CommaExpr) String() string {
	return "(" + join(n.List, ", ") + ")"
}

// UnaryExpr is a prefix or postfix operation, including await.
type UnaryExpr struct {
	parse.Span
	Op TokenType
	X  IExpr
}

func (n UnaryExpr) String() string {
	switch n.Op {
	case PostIncrToken, PostDecrToken:
		return "(" + n.X.String() + n.Op.String() + ")"
	case DeleteToken, VoidToken, TypeofToken, AwaitToken:
		return "(" + n.Op.String() + " " + n.X.String() + ")"
	}
	return "(" + n.Op.String() + n.X.String() + ")"
}

// BinaryExpr is a binary operation, including assignment.
type BinaryExpr struct {
	parse.Span
	Op   TokenType
	X, Y IExpr
}

func (n BinaryExpr) String() string {
	return "(" + n.X.String() + " " + n.Op.String() + " " + n.Y.String() + ")"
}

// CondExpr is a conditional (ternary) expression.
type CondExpr struct {
	parse.Span
	Cond, X, Y IExpr
}

func (n CondExpr) String() string {
	return "(" + n.Cond.String() + " ? " + n.X.String() + " : " + n.Y.String() + ")"
}

// YieldExpr is a yield or yield* expression.
type YieldExpr struct {
	parse.Span
	Generator bool
	Value     IExpr // can be nil
}

func (n YieldExpr) String() string {
	s := "(yield"
	if n.Generator {
		s += "*"
	}
	if n.Value != nil {
		s += " " + n.Value.String()
	}
	return s + ")"
}

// Arg is an argument of a call.
type Arg struct {
	Value  IExpr
	Spread bool
}

// Args is an argument list including its parentheses.
type Args struct {
	parse.Span
	List []Arg
}

func (n Args) String() string {
	s := "("
	for i, item := range n.List {
		if i != 0 {
			s += ", "
		}
		if item.Spread {
			s += "..."
		}
		s += item.Value.String()
	}
	return s + ")"
}

// CallExpr is a call, optionally with type arguments or optional chaining.
type CallExpr struct {
	parse.Span
	X        IExpr
	TypeArgs *TypeArgs // can be nil
	Args     Args
	Optional bool // a?.()
}

func (n CallExpr) String() string {
	s := n.X.String()
	if n.Optional {
		s += "?."
	}
	if n.TypeArgs != nil {
		s += n.TypeArgs.String()
	}
	return s + n.Args.String()
}

// NewExpr is a new expression, Args is nil without parentheses.
type NewExpr struct {
	parse.Span
	X        IExpr
	TypeArgs *TypeArgs
	Args     *Args
}

func (n NewExpr) String() string {
	s := "(new " + n.X.String()
	if n.TypeArgs != nil {
		s += n.TypeArgs.String()
	}
	if n.Args != nil {
		s += n.Args.String()
	}
	return s + ")"
}

// DotExpr is a member access by name, Y may be a private name.
type DotExpr struct {
	parse.Span
	X        IExpr
	Y        []byte
	Optional bool
}

func (n DotExpr) String() string {
	if n.Optional {
		return n.X.String() + "?." + string(n.Y)
	}
	return n.X.String() + "." + string(n.Y)
}

// IndexExpr is a computed member access.
type IndexExpr struct {
	parse.Span
	X        IExpr
	Index    IExpr
	Optional bool
}

func (n IndexExpr) String() string {
	if n.Optional {
		return n.X.String() + "?.[" + n.Index.String() + "]"
	}
	return n.X.String() + "[" + n.Index.String() + "]"
}

// OptChainExpr delimits an optional chain: a short-circuit skips everything up to its end.
type OptChainExpr struct {
	parse.Span
	X IExpr
}

func (n OptChainExpr) String() string {
	return "Chain(" + n.X.String() + ")"
}

// MetaProperty is new.target or import.meta.
type MetaProperty struct {
	parse.Span
	Meta     []byte
	Property []byte
}

func (n MetaProperty) String() string {
	return string(n.Meta) + "." + string(n.Property)
}

// ImportExpr is a dynamic import().
type ImportExpr struct {
	parse.Span
	Source  IExpr
	Options IExpr // can be nil
}

func (n ImportExpr) String() string {
	s := "import(" + n.Source.String()
	if n.Options != nil {
		s += ", " + n.Options.String()
	}
	return s + ")"
}

// Decorator is an @expression on a class, member, or parameter.
type Decorator struct {
	parse.Span
	X IExpr
}

func (n Decorator) String() string {
	return "@" + n.X.String()
}

func decoratorsString(list []*Decorator) string {
	s := ""
	for _, item := range list {
		s += item.String() + " "
	}
	return s
}

////////////////////////////////////////////////////////////////

// BindingName is a binding identifier.
type BindingName struct {
	parse.Span
	Data   []byte
	Symbol SymbolSlot
}

func (n BindingName) String() string {
	return string(n.Data)
}

// BindingArray is an array destructuring pattern, nil entries are holes.
type BindingArray struct {
	parse.Span
	List []*BindingElement
	Rest IBinding // can be nil
}

func (n BindingArray) String() string {
	s := "["
	for i, item := range n.List {
		if i != 0 {
			s += ", "
		}
		if item != nil {
			s += item.String()
		}
	}
	if n.Rest != nil {
		if 0 < len(n.List) {
			s += ", "
		}
		s += "..." + n.Rest.String()
	} else if 0 < len(n.List) && n.List[len(n.List)-1] == nil {
		s += ","
	}
	return s + "]"
}

// BindingObjectItem is an entry of an object destructuring pattern, Key is nil for shorthands.
type BindingObjectItem struct {
	parse.Span
	Key   *PropertyName
	Value *BindingElement
}

func (n BindingObjectItem) String() string {
	if n.Key == nil {
		return n.Value.String()
	}
	return n.Key.String() + ": " + n.Value.String()
}

// BindingObject is an object destructuring pattern.
type BindingObject struct {
	parse.Span
	List []*BindingObjectItem
	Rest *BindingName // can be nil
}

func (n BindingObject) String() string {
	s := "{" + join(n.List, ", ")
	if n.Rest != nil {
		if 0 < len(n.List) {
			s += ", "
		}
		s += "..." + n.Rest.String()
	}
	return s + "}"
}

// ParamModifiers are the TypeScript modifiers of a constructor parameter property.
type ParamModifiers struct {
	Accessibility TokenType // 0, PublicToken, PrivateToken, or ProtectedToken
	Readonly      bool
	Override      bool
}

func (m ParamModifiers) String() string {
	s := ""
	if m.Accessibility != 0 {
		s += m.Accessibility.String() + " "
	}
	if m.Override {
		s += "override "
	}
	if m.Readonly {
		s += "readonly "
	}
	return s
}

// BindingElement is a binding with an optional type annotation and default value. It is used for parameters, declarators, and pattern entries.
type BindingElement struct {
	parse.Span
	Decorators []*Decorator
	Modifiers  ParamModifiers
	Binding    IBinding
	Optional   bool  // x?: T
	Definite   bool  // let x!: T
	Type       IType // can be nil
	Default    IExpr // can be nil
}

func (n BindingElement) String() string {
	s := decoratorsString(n.Decorators) + n.Modifiers.String() + n.Binding.String()
	if n.Optional {
		s += "?"
	}
	if n.Definite {
		s += "!"
	}
	s += stringOrEmpty(n.Type, ": ")
	return s + stringOrEmpty(n.Default, " = ")
}

// Params is a parameter list including its parentheses.
type Params struct {
	parse.Span
	List []*BindingElement
	Rest *BindingElement // can be nil
}

func (n Params) String() string {
	s := "Params(" + join(n.List, ", ")
	if n.Rest != nil {
		if 0 < len(n.List) {
			s += ", "
		}
		s += "..." + n.Rest.String()
	}
	return s + ")"
}

////////////////////////////////////////////////////////////////

// ArrowFunc is an arrow function. Either Body or Expr is set.
type ArrowFunc struct {
	parse.Span
	Async      bool
	TypeParams *TypeParams
	Params     Params
	ReturnType IType
	Body       *BlockStmt
	Expr       IExpr
	Scope      ScopeSlot
}

func (n ArrowFunc) String() string {
	s := "Arrow("
	if n.Async {
		s += "async "
	}
	if n.TypeParams != nil {
		s += n.TypeParams.String()
	}
	s += n.Params.String() + stringOrEmpty(n.ReturnType, ": ") + " => "
	if n.Body != nil {
		s += n.Body.String()
	} else {
		s += n.Expr.String()
	}
	return s + ")"
}

// FuncDecl is a function declaration or expression. Body is nil for overloads and ambient declarations.
type FuncDecl struct {
	parse.Span
	Async      bool
	Generator  bool
	Declare    bool
	Name       *BindingName // can be nil
	TypeParams *TypeParams
	Params     Params
	ReturnType IType
	Body       *BlockStmt
	Scope      ScopeSlot
}

func (n FuncDecl) String() string {
	s := "Decl("
	if n.Declare {
		s += "declare "
	}
	if n.Async {
		s += "async "
	}
	s += "function"
	if n.Generator {
		s += "*"
	}
	if n.Name != nil {
		s += " " + n.Name.String()
	}
	if n.TypeParams != nil {
		s += n.TypeParams.String()
	}
	s += " " + n.Params.String() + stringOrEmpty(n.ReturnType, ": ")
	if n.Body != nil {
		s += " " + n.Body.String()
	}
	return s + ")"
}

// MethodKind distinguishes methods from accessors and constructors.
type MethodKind uint8

// MethodKind values.
const (
	NormalMethod MethodKind = iota
	GetMethod
	SetMethod
	ConstructorMethod
)

// MethodDecl is a method of a class or object literal.
type MethodDecl struct {
	parse.Span
	Decorators    []*Decorator
	Kind          MethodKind
	Static        bool
	Async         bool
	Generator     bool
	Abstract      bool
	Override      bool
	Optional      bool
	Accessibility TokenType
	Name          *PropertyName
	TypeParams    *TypeParams
	Params        Params
	ReturnType    IType
	Body          *BlockStmt // nil for abstract methods and overloads
	Scope         ScopeSlot
}

func (n MethodDecl) String() string {
	s := "Method(" + decoratorsString(n.Decorators)
	if n.Accessibility != 0 {
		s += n.Accessibility.String() + " "
	}
	if n.Static {
		s += "static "
	}
	if n.Abstract {
		s += "abstract "
	}
	if n.Override {
		s += "override "
	}
	if n.Async {
		s += "async "
	}
	if n.Kind == GetMethod {
		s += "get "
	} else if n.Kind == SetMethod {
		s += "set "
	}
	if n.Generator {
		s += "*"
	}
	s += n.Name.String()
	if n.Optional {
		s += "?"
	}
	if n.TypeParams != nil {
		s += n.TypeParams.String()
	}
	s += " " + n.Params.String() + stringOrEmpty(n.ReturnType, ": ")
	if n.Body != nil {
		s += " " + n.Body.String()
	}
	return s + ")"
}

// PropertyDef is a class field.
type PropertyDef struct {
	parse.Span
	Decorators    []*Decorator
	Static        bool
	Readonly      bool
	Declare       bool
	Abstract      bool
	Override      bool
	Accessor      bool
	Optional      bool
	Definite      bool
	Accessibility TokenType
	Name          *PropertyName
	Type          IType
	Init          IExpr
}

func (n PropertyDef) String() string {
	s := "Field(" + decoratorsString(n.Decorators)
	if n.Declare {
		s += "declare "
	}
	if n.Accessibility != 0 {
		s += n.Accessibility.String() + " "
	}
	if n.Static {
		s += "static "
	}
	if n.Abstract {
		s += "abstract "
	}
	if n.Override {
		s += "override "
	}
	if n.Readonly {
		s += "readonly "
	}
	if n.Accessor {
		s += "accessor "
	}
	s += n.Name.String()
	if n.Optional {
		s += "?"
	}
	if n.Definite {
		s += "!"
	}
	return s + stringOrEmpty(n.Type, ": ") + stringOrEmpty(n.Init, " = ") + ")"
}

// StaticBlock is a static initialization block of a class.
type StaticBlock struct {
	parse.Span
	List  []IStmt
	Scope ScopeSlot
}

func (n StaticBlock) String() string {
	s := "Static({"
	for _, item := range n.List {
		s += " " + item.String()
	}
	return s + " })"
}

// ClassDecl is a class declaration or expression.
type ClassDecl struct {
	parse.Span
	Decorators    []*Decorator
	Abstract      bool
	Declare       bool
	Name          *BindingName // can be nil
	TypeParams    *TypeParams
	Extends       IExpr // can be nil
	SuperTypeArgs *TypeArgs
	Implements    []IType
	List          []IClassElement
	Scope         ScopeSlot
}

func (n ClassDecl) String() string {
	s := "Decl(" + decoratorsString(n.Decorators)
	if n.Declare {
		s += "declare "
	}
	if n.Abstract {
		s += "abstract "
	}
	s += "class"
	if n.Name != nil {
		s += " " + n.Name.String()
	}
	if n.TypeParams != nil {
		s += n.TypeParams.String()
	}
	if n.Extends != nil {
		s += " extends " + n.Extends.String()
		if n.SuperTypeArgs != nil {
			s += n.SuperTypeArgs.String()
		}
	}
	if n.Implements != nil {
		s += " implements " + join(n.Implements, ", ")
	}
	if len(n.List) == 0 {
		return s + " {})"
	}
	return s + " { " + join(n.List, " ") + " })"
}

////////////////////////////////////////////////////////////////

// AsExpr is a TypeScript x as T, including as const.
type AsExpr struct {
	parse.Span
	X    IExpr
	Type IType
}

func (n AsExpr) String() string {
	return "(" + n.X.String() + " as " + n.Type.String() + ")"
}

// SatisfiesExpr is a TypeScript x satisfies T.
type SatisfiesExpr struct {
	parse.Span
	X    IExpr
	Type IType
}

func (n SatisfiesExpr) String() string {
	return "(" + n.X.String() + " satisfies " + n.Type.String() + ")"
}

// NonNullExpr is a TypeScript non-null assertion x!.
type NonNullExpr struct {
	parse.Span
	X IExpr
}

func (n NonNullExpr) String() string {
	return n.X.String() + "!"
}

// TypeAssertion is a TypeScript <T>x, not available in JSX files.
type TypeAssertion struct {
	parse.Span
	Type IType
	X    IExpr
}

func (n TypeAssertion) String() string {
	return "(<" + n.Type.String() + ">" + n.X.String() + ")"
}

// InstantiationExpr is a TypeScript f<T> without a call.
type InstantiationExpr struct {
	parse.Span
	X        IExpr
	TypeArgs *TypeArgs
}

func (n InstantiationExpr) String() string {
	return n.X.String() + n.TypeArgs.String()
}

func (n FuncDecl) stmtNode()  {}
func (n ClassDecl) stmtNode() {}

func (n Var) exprNode()               {}
func (n LiteralExpr) exprNode()       {}
func (n BadExpr) exprNode()           {}
func (n ArrayExpr) exprNode()         {}
func (n ObjectExpr) exprNode()        {}
func (n TemplateExpr) exprNode()      {}
func (n GroupExpr) exprNode()         {}
func (n CommaExpr) exprNode()         {}
func (n UnaryExpr) exprNode()         {}
func (n BinaryExpr) exprNode()        {}
func (n CondExpr) exprNode()          {}
func (n YieldExpr) exprNode()         {}
func (n CallExpr) exprNode()          {}
func (n NewExpr) exprNode()           {}
func (n DotExpr) exprNode()           {}
func (n IndexExpr) exprNode()         {}
func (n OptChainExpr) exprNode()      {}
func (n MetaProperty) exprNode()      {}
func (n ImportExpr) exprNode()        {}
func (n ArrowFunc) exprNode()         {}
func (n FuncDecl) exprNode()          {}
func (n ClassDecl) exprNode()         {}
func (n MethodDecl) exprNode()        {}
func (n AsExpr) exprNode()            {}
func (n SatisfiesExpr) exprNode()     {}
func (n NonNullExpr) exprNode()       {}
func (n TypeAssertion) exprNode()     {}
func (n InstantiationExpr) exprNode() {}

func (n BindingName) bindingNode()   {}
func (n BindingArray) bindingNode()  {}
func (n BindingObject) bindingNode() {}

func (n MethodDecl) classElementNode()  {}
func (n PropertyDef) classElementNode() {}
func (n StaticBlock) classElementNode() {}
