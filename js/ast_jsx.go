package js

import (
	"github.com/jsfront/parse"
)

// IJSXChild is a child of a JSX element or fragment.
type IJSXChild interface {
	INode
	jsxChildNode()
}

// IJSXAttr is an attribute of a JSX opening element.
type IJSXAttr interface {
	INode
	jsxAttrNode()
}

// JSXElement is <Name attrs>children</Name> or <Name attrs />.
type JSXElement struct {
	parse.Span
	Name        IExpr // *Var, *DotExpr, or *JSXNamespacedName
	TypeArgs    *TypeArgs
	Attrs       []IJSXAttr
	SelfClosing bool
	Children    []IJSXChild
}

func (n JSXElement) String() string {
	s := "<" + n.Name.String()
	if n.TypeArgs != nil {
		s += n.TypeArgs.String()
	}
	for _, attr := range n.Attrs {
		s += " " + attr.String()
	}
	if n.SelfClosing {
		return s + " />"
	}
	s += ">"
	for _, child := range n.Children {
		s += child.String()
	}
	return s + "</" + n.Name.String() + ">"
}

// JSXFragment is <>children</>.
type JSXFragment struct {
	parse.Span
	Children []IJSXChild
}

func (n JSXFragment) String() string {
	s := "<>"
	for _, child := range n.Children {
		s += child.String()
	}
	return s + "</>"
}

// JSXNamespacedName is ns:name in element and attribute names.
type JSXNamespacedName struct {
	parse.Span
	Namespace []byte
	Name      []byte
}

func (n JSXNamespacedName) String() string {
	return string(n.Namespace) + ":" + string(n.Name)
}

// JSXAttr is name or name=value. Value is nil, a string literal, an expression container, or an element.
type JSXAttr struct {
	parse.Span
	Name  IExpr // *Var or *JSXNamespacedName
	Value IExpr
}

func (n JSXAttr) String() string {
	return n.Name.String() + stringOrEmpty(n.Value, "=")
}

// JSXSpreadAttr is {...x} in an opening element.
type JSXSpreadAttr struct {
	parse.Span
	X IExpr
}

func (n JSXSpreadAttr) String() string {
	return "{..." + n.X.String() + "}"
}

// JSXText is raw text between tags.
type JSXText struct {
	parse.Span
	Data []byte
}

func (n JSXText) String() string {
	return string(n.Data)
}

// JSXExprContainer is {x}. X is nil for an empty container or one holding only comments.
type JSXExprContainer struct {
	parse.Span
	X IExpr
}

func (n JSXExprContainer) String() string {
	if n.X == nil {
		return "{}"
	}
	return "{" + n.X.String() + "}"
}

// JSXSpreadChild is {...x} as a child.
type JSXSpreadChild struct {
	parse.Span
	X IExpr
}

func (n JSXSpreadChild) String() string {
	return "{..." + n.X.String() + "}"
}

func (n JSXElement) exprNode()        {}
func (n JSXFragment) exprNode()       {}
func (n JSXNamespacedName) exprNode() {}
func (n JSXExprContainer) exprNode()  {}

func (n JSXElement) jsxChildNode()       {}
func (n JSXFragment) jsxChildNode()      {}
func (n JSXText) jsxChildNode()          {}
func (n JSXExprContainer) jsxChildNode() {}
func (n JSXSpreadChild) jsxChildNode()   {}

func (n JSXAttr) jsxAttrNode()       {}
func (n JSXSpreadAttr) jsxAttrNode() {}
