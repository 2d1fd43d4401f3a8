// Package ast defines the Program/Stmt node types the parser produces.
package ast

import (
	"fmt"
	"strings"

	"github.com/sourcec-lang/sourcec/internal/lexer"
	"github.com/sourcec-lang/sourcec/internal/types"
)

// Stmt is the closed sum type enumerating every syntactic form the parser
// can produce (spec.md §3). Every concrete node below implements it.
type Stmt interface {
	Span() lexer.Span
	stmtNode()
	String() string
}

type base struct {
	span lexer.Span
}

func (b base) Span() lexer.Span { return b.span }
func (base) stmtNode()          {}

// Declaration is a variable binding: `var`/`const` NAME (: TYPE)? (= EXPR)?.
type Declaration struct {
	base
	Mutable  bool
	Name     string
	DataType *types.DataType // nil if inferred
	Value    Stmt            // nil if absent
}

func (d *Declaration) String() string {
	kw := "const"
	if d.Mutable {
		kw = "var"
	}
	parts := []string{kw, d.Name}
	if d.DataType != nil {
		parts = append(parts, ":", d.DataType.String())
	}
	if d.Value != nil {
		parts = append(parts, "=", d.Value.String())
	}
	return strings.Join(parts, " ")
}

// Block is an ordered sequence of statements forming a lexical scope.
type Block struct {
	base
	Body []Stmt
}

func (b *Block) String() string {
	lines := make([]string, len(b.Body))
	for i, s := range b.Body {
		lines[i] = s.String()
	}
	return "{ " + strings.Join(lines, "; ") + " }"
}

// IfStatement is `if EXPR BLOCK (else (if … | BLOCK))?`. ElseBlock is
// either a *Block or a nested *IfStatement (an else-if chain).
type IfStatement struct {
	base
	Condition Stmt
	Block     *Block
	ElseBlock Stmt // *Block, *IfStatement, or nil
}

func (i *IfStatement) String() string {
	s := fmt.Sprintf("if %s %s", i.Condition.String(), i.Block.String())
	if i.ElseBlock != nil {
		s += " else " + i.ElseBlock.String()
	}
	return s
}

// FunctionParam is one parameter of a FunctionDeclaration.
type FunctionParam struct {
	Name         string
	DataType     types.DataType
	DefaultValue Stmt // nil if absent
}

// Annotation is a `@name(args...)` attached to a FunctionDeclaration.
// Parsed but never acted on (spec.md §9 open questions).
type Annotation struct {
	Name string
	Args []Stmt
}

// FunctionDeclaration declares a named function. It appears exactly once
// in Program.Functions and never nested (spec.md §3 invariants).
type FunctionDeclaration struct {
	base
	Annotations []Annotation
	Name        string
	Params      []FunctionParam
	ReturnType  types.DataType
	Block       *Block
}

func (f *FunctionDeclaration) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = fmt.Sprintf("%s: %s", p.Name, p.DataType)
	}
	return fmt.Sprintf("func %s(%s) -> %s %s", f.Name, strings.Join(params, ", "), f.ReturnType, f.Block.String())
}

// FunctionCall is `name(args…)`.
type FunctionCall struct {
	base
	Name string
	Args []Stmt
}

func (c *FunctionCall) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

// BinaryOperator enumerates binary expression operators.
type BinaryOperator int

const (
	Add BinaryOperator = iota
	Subtract
	Multiply
	Divide
	Modulus
	Equal
	NotEqual
	GreaterThan
	GreaterThanEqual
	LessThan
	LessThanEqual
	And
	Or
)

var binaryOperatorNames = map[BinaryOperator]string{
	Add: "+", Subtract: "-", Multiply: "*", Divide: "/", Modulus: "%",
	Equal: "==", NotEqual: "!=", GreaterThan: ">", GreaterThanEqual: ">=",
	LessThan: "<", LessThanEqual: "<=", And: "and", Or: "or",
}

func (op BinaryOperator) String() string { return binaryOperatorNames[op] }

// BinaryExpression is `left OP right`.
type BinaryExpression struct {
	base
	Left     Stmt
	Right    Stmt
	Operator BinaryOperator
}

func (b *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Operator, b.Right.String())
}

// UnaryOperator enumerates unary expression operators.
type UnaryOperator int

const (
	Not UnaryOperator = iota
	Negative
)

func (op UnaryOperator) String() string {
	if op == Not {
		return "not"
	}
	return "-"
}

// UnaryExpression is `OP value`.
type UnaryExpression struct {
	base
	Value    Stmt
	Operator UnaryOperator
}

func (u *UnaryExpression) String() string {
	return fmt.Sprintf("(%s %s)", u.Operator, u.Value.String())
}

// Identifier is a bare name reference.
type Identifier struct {
	base
	Name string
}

func (i *Identifier) String() string { return i.Name }

// Integer is an integer literal.
type Integer struct {
	base
	Value int64
}

func (n *Integer) String() string { return fmt.Sprintf("%d", n.Value) }

// Float is a floating-point literal.
type Float struct {
	base
	Value float64
}

func (n *Float) String() string { return fmt.Sprintf("%g", n.Value) }

// Boolean is a boolean literal.
type Boolean struct {
	base
	Value bool
}

func (n *Boolean) String() string { return fmt.Sprintf("%t", n.Value) }

// String is a string literal.
type String struct {
	base
	Value string
}

func (n *String) String() string { return fmt.Sprintf("%q", n.Value) }

// ReturnStatement is `return EXPR?`.
type ReturnStatement struct {
	base
	Value Stmt // nil if absent
}

func (r *ReturnStatement) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

// ImportItem is one imported name within an import statement, with an
// optional alias.
type ImportItem struct {
	Name  string
	Alias string // empty if absent
}

// ImportModule is `import NAME (as ALIAS)?`.
type ImportModule struct {
	base
	Item ImportItem
}

func (i *ImportModule) String() string { return "import " + importItemString(i.Item) }

// ImportModules is `import NAME (as ALIAS)?, NAME (as ALIAS)?, …`.
type ImportModules struct {
	base
	Items []ImportItem
}

func (i *ImportModules) String() string {
	parts := make([]string, len(i.Items))
	for idx, it := range i.Items {
		parts[idx] = importItemString(it)
	}
	return "import " + strings.Join(parts, ", ")
}

// ImportEverything is `import * from MODULE` (optionally aliased).
type ImportEverything struct {
	base
	Module string
	Alias  string // empty if absent
}

func (i *ImportEverything) String() string {
	if i.Alias != "" {
		return fmt.Sprintf("import * as %s from %s", i.Alias, i.Module)
	}
	return fmt.Sprintf("import * from %s", i.Module)
}

// ImportCollection is `import NAME (as ALIAS)?, … from MODULE`.
type ImportCollection struct {
	base
	Items  []ImportItem
	Module string
}

func (i *ImportCollection) String() string {
	parts := make([]string, len(i.Items))
	for idx, it := range i.Items {
		parts[idx] = importItemString(it)
	}
	return fmt.Sprintf("import %s from %s", strings.Join(parts, ", "), i.Module)
}

func importItemString(it ImportItem) string {
	if it.Alias != "" {
		return fmt.Sprintf("%s as %s", it.Name, it.Alias)
	}
	return it.Name
}

// Program is the parser's output: imports, function declarations, and
// top-level body statements classified into exactly one of three buckets
// (spec.md §3).
type Program struct {
	Imports   []Stmt
	Functions []*FunctionDeclaration
	Body      []Stmt
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, imp := range p.Imports {
		sb.WriteString(imp.String())
		sb.WriteString("\n")
	}
	for _, fn := range p.Functions {
		sb.WriteString(fn.String())
		sb.WriteString("\n")
	}
	for _, stmt := range p.Body {
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewSpan constructs a half-open span from two token spans (start..end).
func NewSpan(start, end lexer.Span) lexer.Span {
	return lexer.Span{Start: start.Start, End: end.End}
}

// newBase lets the constructors below attach a span without repeating the
// base-embedding boilerplate at every call site.
func newBase(span lexer.Span) base { return base{span: span} }

// Constructors. Each takes the span first, then mirrors the struct's field
// order, to keep the parser's call sites uniform.

func NewDeclaration(span lexer.Span, mutable bool, name string, dt *types.DataType, value Stmt) *Declaration {
	return &Declaration{base: newBase(span), Mutable: mutable, Name: name, DataType: dt, Value: value}
}

func NewBlock(span lexer.Span, body []Stmt) *Block {
	return &Block{base: newBase(span), Body: body}
}

func NewIfStatement(span lexer.Span, cond Stmt, block *Block, elseBlock Stmt) *IfStatement {
	return &IfStatement{base: newBase(span), Condition: cond, Block: block, ElseBlock: elseBlock}
}

func NewFunctionDeclaration(span lexer.Span, annotations []Annotation, name string, params []FunctionParam, returnType types.DataType, block *Block) *FunctionDeclaration {
	return &FunctionDeclaration{base: newBase(span), Annotations: annotations, Name: name, Params: params, ReturnType: returnType, Block: block}
}

func NewFunctionCall(span lexer.Span, name string, args []Stmt) *FunctionCall {
	return &FunctionCall{base: newBase(span), Name: name, Args: args}
}

func NewBinaryExpression(span lexer.Span, left, right Stmt, op BinaryOperator) *BinaryExpression {
	return &BinaryExpression{base: newBase(span), Left: left, Right: right, Operator: op}
}

func NewUnaryExpression(span lexer.Span, value Stmt, op UnaryOperator) *UnaryExpression {
	return &UnaryExpression{base: newBase(span), Value: value, Operator: op}
}

func NewIdentifier(span lexer.Span, name string) *Identifier {
	return &Identifier{base: newBase(span), Name: name}
}

func NewInteger(span lexer.Span, value int64) *Integer {
	return &Integer{base: newBase(span), Value: value}
}

func NewFloat(span lexer.Span, value float64) *Float {
	return &Float{base: newBase(span), Value: value}
}

func NewBoolean(span lexer.Span, value bool) *Boolean {
	return &Boolean{base: newBase(span), Value: value}
}

func NewString(span lexer.Span, value string) *String {
	return &String{base: newBase(span), Value: value}
}

func NewReturnStatement(span lexer.Span, value Stmt) *ReturnStatement {
	return &ReturnStatement{base: newBase(span), Value: value}
}

func NewImportModule(span lexer.Span, item ImportItem) *ImportModule {
	return &ImportModule{base: newBase(span), Item: item}
}

func NewImportModules(span lexer.Span, items []ImportItem) *ImportModules {
	return &ImportModules{base: newBase(span), Items: items}
}

func NewImportEverything(span lexer.Span, module, alias string) *ImportEverything {
	return &ImportEverything{base: newBase(span), Module: module, Alias: alias}
}

func NewImportCollection(span lexer.Span, items []ImportItem, module string) *ImportCollection {
	return &ImportCollection{base: newBase(span), Items: items, Module: module}
}
