package js

import (
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/jsfront/parse"
)

type printer struct {
	w     io.Writer
	src   []byte // nil when positions are not printed
	depth int
	err   *error
}

func (p printer) Enter(n INode) IVisitor {
	if *p.err != nil {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", p.depth))
	sb.WriteString(nodeName(n))
	if detail := nodeDetail(n); detail != "" {
		sb.WriteString(" ")
		sb.WriteString(detail)
	}
	if p.src != nil {
		span := n.Loc()
		line, col, _ := parse.Position(p.src, int(span.Start))
		sb.WriteString(" @" + strconv.Itoa(line) + ":" + strconv.Itoa(col) + " " + span.String())
	}
	sb.WriteString("\n")
	if _, err := io.WriteString(p.w, sb.String()); err != nil {
		*p.err = err
		return nil
	}
	p.depth++
	return p
}

// Print writes the tree below n to w, one node per line indented by depth. Leaf nodes are followed by their text.
func Print(w io.Writer, n INode) error {
	var err error
	Walk(printer{w: w, err: &err}, n)
	return err
}

// PrintPositions is like Print, but appends the line and column and the byte span of each node in src.
func PrintPositions(w io.Writer, n INode, src []byte) error {
	if src == nil {
		src = []byte{}
	}
	var err error
	Walk(printer{w: w, src: src, err: &err}, n)
	return err
}

func nodeName(n INode) string {
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func nodeDetail(n INode) string {
	switch n := n.(type) {
	case *Var, *LiteralExpr, *BindingName, *Directive, *JSXNamespacedName, *MetaProperty, *Alias, *ImportAttribute, *TypeKeyword:
		return n.String()
	case *JSXText:
		return strconv.Quote(string(n.Data))
	case *PropertyName:
		if n.Computed == nil {
			return string(n.Data)
		}
	case *DotExpr:
		return string(n.Y)
	case *UnaryExpr:
		return n.Op.String()
	case *BinaryExpr:
		return n.Op.String()
	case *BranchStmt:
		return n.String()
	case *LabelledStmt:
		return string(n.Label)
	case *ImportStmt:
		return string(n.Module)
	case *ExportStmt:
		return string(n.Module)
	case *ModuleDecl:
		return string(n.Name)
	case *TypeOperator:
		return n.Op.String()
	case *NamedTupleMember:
		return string(n.Name)
	case *TypePredicate:
		return string(n.Name)
	case *VarDecl:
		return n.TokenType.String()
	}
	return ""
}
