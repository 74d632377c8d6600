package js

import "reflect"

// IVisitor represents the AST Visitor
// Each INode encountered by `Walk` is passed to `Enter`, children nodes will be ignored if the returned IVisitor is nil
type IVisitor interface {
	Enter(n INode) IVisitor
}

// Walk traverses an AST in depth-first order, visiting children in source order.
func Walk(v IVisitor, n INode) {
	if isNil(n) {
		return
	}
	if v = v.Enter(n); v == nil {
		return
	}

	switch n := n.(type) {
	case *Program:
		walkList(v, n.Directives)
		walkList(v, n.List)
	case *BlockStmt:
		walkList(v, n.Directives)
		walkList(v, n.List)
	case *ExprStmt:
		Walk(v, n.Value)
	case *IfStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
		Walk(v, n.Else)
	case *DoWhileStmt:
		Walk(v, n.Body)
		Walk(v, n.Cond)
	case *WhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *ForStmt:
		Walk(v, n.Init)
		Walk(v, n.Cond)
		Walk(v, n.Post)
		Walk(v, n.Body)
	case *ForInStmt:
		Walk(v, n.Init)
		Walk(v, n.Value)
		Walk(v, n.Body)
	case *ForOfStmt:
		Walk(v, n.Init)
		Walk(v, n.Value)
		Walk(v, n.Body)
	case *CaseClause:
		Walk(v, n.Cond)
		walkList(v, n.List)
	case *SwitchStmt:
		Walk(v, n.Init)
		walkList(v, n.List)
	case *ReturnStmt:
		Walk(v, n.Value)
	case *WithStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *LabelledStmt:
		Walk(v, n.Value)
	case *ThrowStmt:
		Walk(v, n.Value)
	case *CatchClause:
		Walk(v, n.Binding)
		Walk(v, n.Type)
		Walk(v, n.Body)
	case *TryStmt:
		Walk(v, n.Body)
		Walk(v, n.Catch)
		Walk(v, n.Finally)
	case *ImportSpecifier:
		Walk(v, n.Local)
	case *ImportStmt:
		Walk(v, n.Default)
		Walk(v, n.Namespace)
		walkList(v, n.List)
		walkList(v, n.Attributes)
	case *ExportStmt:
		walkList(v, n.List)
		Walk(v, n.Namespace)
		Walk(v, n.Decl)
		walkList(v, n.Attributes)
	case *ExportAssignStmt:
		Walk(v, n.Value)
	case *VarDecl:
		walkList(v, n.List)

	case *ArrayExpr:
		for _, item := range n.List {
			Walk(v, item.Value)
		}
	case *PropertyName:
		Walk(v, n.Computed)
	case *Property:
		if n.Kind != MethodProperty {
			Walk(v, n.Name)
		}
		Walk(v, n.Value)
		Walk(v, n.Init)
	case *ObjectExpr:
		walkList(v, n.List)
	case *TemplateExpr:
		Walk(v, n.Tag)
		Walk(v, n.TypeArgs)
		for _, item := range n.List {
			Walk(v, item.Expr)
		}
	case *GroupExpr:
		Walk(v, n.X)
	case *CommaExpr:
		walkList(v, n.List)
	case *UnaryExpr:
		Walk(v, n.X)
	case *BinaryExpr:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *CondExpr:
		Walk(v, n.Cond)
		Walk(v, n.X)
		Walk(v, n.Y)
	case *YieldExpr:
		Walk(v, n.Value)
	case *Args:
		for _, item := range n.List {
			Walk(v, item.Value)
		}
	case *CallExpr:
		Walk(v, n.X)
		Walk(v, n.TypeArgs)
		Walk(v, &n.Args)
	case *NewExpr:
		Walk(v, n.X)
		Walk(v, n.TypeArgs)
		Walk(v, n.Args)
	case *DotExpr:
		Walk(v, n.X)
	case *IndexExpr:
		Walk(v, n.X)
		Walk(v, n.Index)
	case *OptChainExpr:
		Walk(v, n.X)
	case *ImportExpr:
		Walk(v, n.Source)
		Walk(v, n.Options)
	case *Decorator:
		Walk(v, n.X)
	case *AsExpr:
		Walk(v, n.X)
		Walk(v, n.Type)
	case *SatisfiesExpr:
		Walk(v, n.X)
		Walk(v, n.Type)
	case *NonNullExpr:
		Walk(v, n.X)
	case *TypeAssertion:
		Walk(v, n.Type)
		Walk(v, n.X)
	case *InstantiationExpr:
		Walk(v, n.X)
		Walk(v, n.TypeArgs)

	case *BindingArray:
		walkList(v, n.List)
		Walk(v, n.Rest)
	case *BindingObjectItem:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *BindingObject:
		walkList(v, n.List)
		Walk(v, n.Rest)
	case *BindingElement:
		walkList(v, n.Decorators)
		Walk(v, n.Binding)
		Walk(v, n.Type)
		Walk(v, n.Default)
	case *Params:
		walkList(v, n.List)
		Walk(v, n.Rest)
	case *ArrowFunc:
		Walk(v, n.TypeParams)
		Walk(v, &n.Params)
		Walk(v, n.ReturnType)
		Walk(v, n.Body)
		Walk(v, n.Expr)
	case *FuncDecl:
		Walk(v, n.Name)
		Walk(v, n.TypeParams)
		Walk(v, &n.Params)
		Walk(v, n.ReturnType)
		Walk(v, n.Body)
	case *MethodDecl:
		walkList(v, n.Decorators)
		Walk(v, n.Name)
		Walk(v, n.TypeParams)
		Walk(v, &n.Params)
		Walk(v, n.ReturnType)
		Walk(v, n.Body)
	case *PropertyDef:
		walkList(v, n.Decorators)
		Walk(v, n.Name)
		Walk(v, n.Type)
		Walk(v, n.Init)
	case *StaticBlock:
		walkList(v, n.List)
	case *ClassDecl:
		walkList(v, n.Decorators)
		Walk(v, n.Name)
		Walk(v, n.TypeParams)
		Walk(v, n.Extends)
		Walk(v, n.SuperTypeArgs)
		walkList(v, n.Implements)
		walkList(v, n.List)

	case *TypeReference:
		Walk(v, n.Name)
		Walk(v, n.TypeArgs)
	case *LiteralType:
		Walk(v, n.Literal)
	case *TemplateLiteralType:
		for _, item := range n.List {
			Walk(v, item.Type)
		}
	case *ArrayType:
		Walk(v, n.Elem)
	case *IndexedAccessType:
		Walk(v, n.Object)
		Walk(v, n.Index)
	case *TupleType:
		walkList(v, n.List)
	case *NamedTupleMember:
		Walk(v, n.Type)
	case *OptionalType:
		Walk(v, n.Type)
	case *RestType:
		Walk(v, n.Type)
	case *UnionType:
		walkList(v, n.List)
	case *IntersectionType:
		walkList(v, n.List)
	case *FunctionType:
		Walk(v, n.TypeParams)
		Walk(v, &n.Params)
		Walk(v, n.ReturnType)
	case *ConstructorType:
		Walk(v, n.TypeParams)
		Walk(v, &n.Params)
		Walk(v, n.ReturnType)
	case *ParenType:
		Walk(v, n.Type)
	case *TypeLiteral:
		walkList(v, n.List)
	case *MappedType:
		Walk(v, n.Name)
		Walk(v, n.Constraint)
		Walk(v, n.NameType)
		Walk(v, n.Type)
	case *ConditionalType:
		Walk(v, n.Check)
		Walk(v, n.Extends)
		Walk(v, n.True)
		Walk(v, n.False)
	case *InferType:
		Walk(v, n.Name)
		Walk(v, n.Constraint)
	case *TypeOperator:
		Walk(v, n.Type)
	case *TypeQuery:
		Walk(v, n.Name)
		Walk(v, n.Import)
		Walk(v, n.TypeArgs)
	case *ImportType:
		Walk(v, n.Argument)
		Walk(v, n.Qualifier)
		Walk(v, n.TypeArgs)
	case *TypePredicate:
		Walk(v, n.Type)
	case *TypeParam:
		Walk(v, n.Name)
		Walk(v, n.Constraint)
		Walk(v, n.Default)
	case *TypeParams:
		walkList(v, n.List)
	case *TypeArgs:
		walkList(v, n.List)
	case *PropertySignature:
		Walk(v, n.Name)
		Walk(v, n.Type)
	case *MethodSignature:
		Walk(v, n.Name)
		Walk(v, n.TypeParams)
		Walk(v, &n.Params)
		Walk(v, n.ReturnType)
	case *CallSignature:
		Walk(v, n.TypeParams)
		Walk(v, &n.Params)
		Walk(v, n.ReturnType)
	case *ConstructSignature:
		Walk(v, n.TypeParams)
		Walk(v, &n.Params)
		Walk(v, n.ReturnType)
	case *IndexSignature:
		Walk(v, n.Name)
		Walk(v, n.KeyType)
		Walk(v, n.Type)
	case *TypeAliasDecl:
		Walk(v, n.Name)
		Walk(v, n.TypeParams)
		Walk(v, n.Type)
	case *InterfaceDecl:
		Walk(v, n.Name)
		Walk(v, n.TypeParams)
		walkList(v, n.Extends)
		walkList(v, n.List)
	case *EnumMember:
		Walk(v, n.Name)
		Walk(v, n.Init)
	case *EnumDecl:
		Walk(v, n.Name)
		walkList(v, n.Members)
	case *ModuleDecl:
		Walk(v, n.Body)
	case *ImportEqualsDecl:
		Walk(v, n.Name)
		Walk(v, n.Value)

	case *JSXElement:
		Walk(v, n.Name)
		Walk(v, n.TypeArgs)
		walkList(v, n.Attrs)
		walkList(v, n.Children)
	case *JSXFragment:
		walkList(v, n.Children)
	case *JSXAttr:
		Walk(v, n.Name)
		Walk(v, n.Value)
	case *JSXSpreadAttr:
		Walk(v, n.X)
	case *JSXExprContainer:
		Walk(v, n.X)
	case *JSXSpreadChild:
		Walk(v, n.X)
	}
}

func walkList[T INode](v IVisitor, list []T) {
	for _, item := range list {
		Walk(v, item)
	}
}

type inspector func(INode) bool

func (f inspector) Enter(n INode) IVisitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order, calling f for each node. Children are skipped when f returns false.
func Inspect(n INode, f func(INode) bool) {
	Walk(inspector(f), n)
}

// isNil returns true for nil interfaces and for interfaces holding a nil pointer, such as an absent optional child.
func isNil(n INode) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
