package js_test

import (
	"fmt"
	"os"

	"github.com/jsfront/parse/js"
)

func ExampleParse() {
	src := []byte("const sum = (a: number, b: number): number => a + b")
	program, ds, _ := js.Parse(src, js.Options{SourceType: js.TS})
	if len(ds) != 0 {
		fmt.Println(ds.Err(src))
		return
	}
	fmt.Println(program)
	// Output: Decl(const sum = Arrow(Params(a: number, b: number): number => (a + b)))
}

func ExampleParse_diagnostics() {
	src := []byte("let a = 1;\nlet b = ;")
	_, ds, _ := js.Parse(src, js.Options{SourceType: js.Module})
	for _, d := range ds {
		err := d.Position(src)
		line, col, _ := err.Position()
		fmt.Printf("%d:%d: %v: %s\n", line, col, d.Kind, err.Message)
	}
	// Output: 2:9: SyntaxError: unexpected ';' in expression
}

func ExamplePrint() {
	program, _, _ := js.Parse([]byte("f(x)"), js.Options{SourceType: js.Script})
	js.Print(os.Stdout, program)
	// Output:
	// Program
	//   ExprStmt
	//     CallExpr
	//       Var f
	//       Args
	//         Var x
}
