package js

// OpPrec is the operator precedence, higher binds tighter.
type OpPrec int

// https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Operators/Operator_Precedence
const (
	OpEnd OpPrec = iota
	OpComma
	OpYield
	OpAssign
	OpCond
	OpNullish
	OpOr
	OpAnd
	OpBitOr
	OpBitXor
	OpBitAnd
	OpEquals
	OpCompare
	OpShift
	OpAdd
	OpMul
	OpExp
	OpPrefix
	OpPostfix
	OpNew
	OpCall
	OpGroup
)

// binaryPrec returns the precedence of a binary operator token, or OpEnd.
// Relational keywords (in, instanceof) and the TypeScript as/satisfies postfixes are handled by the caller.
func binaryPrec(tt TokenType) OpPrec {
	switch tt {
	case NullishToken:
		return OpNullish
	case OrToken:
		return OpOr
	case AndToken:
		return OpAnd
	case BitOrToken:
		return OpBitOr
	case BitXorToken:
		return OpBitXor
	case BitAndToken:
		return OpBitAnd
	case EqEqToken, NotEqToken, EqEqEqToken, NotEqEqToken:
		return OpEquals
	case LtToken, GtToken, LtEqToken, GtEqToken, InstanceofToken, InToken:
		return OpCompare
	case LtLtToken, GtGtToken, GtGtGtToken:
		return OpShift
	case AddToken, SubToken:
		return OpAdd
	case MulToken, DivToken, ModToken:
		return OpMul
	case ExpToken:
		return OpExp
	}
	return OpEnd
}

// Keywords is a map of reserved, strict mode reserved, and contextual keywords.
var Keywords = map[string]TokenType{
	"break":      BreakToken,
	"case":       CaseToken,
	"catch":      CatchToken,
	"class":      ClassToken,
	"const":      ConstToken,
	"continue":   ContinueToken,
	"debugger":   DebuggerToken,
	"default":    DefaultToken,
	"delete":     DeleteToken,
	"do":         DoToken,
	"else":       ElseToken,
	"enum":       EnumToken,
	"export":     ExportToken,
	"extends":    ExtendsToken,
	"false":      FalseToken,
	"finally":    FinallyToken,
	"for":        ForToken,
	"function":   FunctionToken,
	"if":         IfToken,
	"import":     ImportToken,
	"in":         InToken,
	"instanceof": InstanceofToken,
	"new":        NewToken,
	"null":       NullToken,
	"return":     ReturnToken,
	"super":      SuperToken,
	"switch":     SwitchToken,
	"this":       ThisToken,
	"throw":      ThrowToken,
	"true":       TrueToken,
	"try":        TryToken,
	"typeof":     TypeofToken,
	"var":        VarToken,
	"void":       VoidToken,
	"while":      WhileToken,
	"with":       WithToken,

	"implements": ImplementsToken,
	"interface":  InterfaceToken,
	"let":        LetToken,
	"package":    PackageToken,
	"private":    PrivateToken,
	"protected":  ProtectedToken,
	"public":     PublicToken,
	"static":     StaticToken,
	"yield":      YieldToken,
	"await":      AwaitToken,

	"as":          AsToken,
	"async":       AsyncToken,
	"from":        FromToken,
	"get":         GetToken,
	"set":         SetToken,
	"of":          OfToken,
	"target":      TargetToken,
	"meta":        MetaToken,
	"type":        TypeToken,
	"declare":     DeclareToken,
	"abstract":    AbstractToken,
	"readonly":    ReadonlyToken,
	"keyof":       KeyofToken,
	"unique":      UniqueToken,
	"infer":       InferToken,
	"is":          IsToken,
	"asserts":     AssertsToken,
	"namespace":   NamespaceToken,
	"module":      ModuleToken,
	"global":      GlobalToken,
	"satisfies":   SatisfiesToken,
	"accessor":    AccessorToken,
	"override":    OverrideToken,
	"constructor": ConstructorToken,
	"require":     RequireToken,
	"out":         OutToken,
	"using":       UsingToken,

	"any":       AnyToken,
	"unknown":   UnknownToken,
	"number":    NumberToken,
	"string":    StringKeywordToken,
	"boolean":   BooleanToken,
	"bigint":    BigintToken,
	"symbol":    SymbolToken,
	"object":    ObjectToken,
	"never":     NeverToken,
	"undefined": UndefinedToken,
}

var keywordNames = map[TokenType]string{}

func init() {
	for s, tt := range Keywords {
		keywordNames[tt] = s
	}
}
