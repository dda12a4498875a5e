package ast

import (
	"fmt"

	"github.com/dhamidi/ono/code"
	"github.com/dhamidi/ono/compiler"
)

// BlockStatement is anything that may appear in a function body or block.
type BlockStatement interface {
	Locatable
	Scope
	fmt.Stringer
	SetEnclosingScope(s Scope)
	// FindLocalVariable returns the local variable of the given name that
	// is in scope at this statement, or nil.
	FindLocalVariable(name string) *LocalVariable
	AcceptBlockStatement(v BlockStatementVisitor) error
}

type statementBase struct {
	Located
	enclosing Scope

	// LocalVariables maps the names of the locals in scope at this
	// statement to their compile time descriptions; assigned during
	// compilation.
	LocalVariables map[string]*LocalVariable
}

func (s *statementBase) SetEnclosingScope(sc Scope) {
	setScope(&s.enclosing, s, "statement", sc)
}

func (s *statementBase) EnclosingScope() Scope {
	return getScope(s.enclosing, s, "statement")
}

func (s *statementBase) enclosingScopeOrNil() Scope { return s.enclosing }

func (s *statementBase) FindLocalVariable(name string) *LocalVariable {
	return s.LocalVariables[name]
}

// breakableStatement is embedded in the statements a break statement may
// terminate: blocks behind labels, loops and switches.
type breakableStatement struct {
	statementBase

	whereToBreak *code.Offset
}

// BreakTarget returns the offset a break out of this statement jumps to,
// reserving it on first use.
func (s *breakableStatement) BreakTarget() *code.Offset {
	if s.whereToBreak == nil {
		s.whereToBreak = code.NewOffset()
	}
	return s.whereToBreak
}

// BreakableStatement is the facet of statements that a break statement may
// refer to.
type BreakableStatement interface {
	BlockStatement
	BreakTarget() *code.Offset
}

// continuableStatement is embedded in the loop statements.
type continuableStatement struct {
	breakableStatement

	// Body is the loop body.
	Body BlockStatement

	whereToContinue *code.Offset
}

// ContinueTarget returns the offset a continue within this loop jumps to,
// reserving it on first use.
func (s *continuableStatement) ContinueTarget() *code.Offset {
	if s.whereToContinue == nil {
		s.whereToContinue = code.NewOffset()
	}
	return s.whereToContinue
}

// ContinuableStatement is the facet of the loop statements that a continue
// statement may refer to.
type ContinuableStatement interface {
	BreakableStatement
	ContinueTarget() *code.Offset
}

// Block is a brace-enclosed statement sequence.
type Block struct {
	statementBase

	statements []BlockStatement
}

func NewBlock(l Located) *Block {
	return &Block{statementBase: statementBase{Located: l}}
}

// AddStatement appends a statement and binds it into the block.
func (b *Block) AddStatement(statement BlockStatement) {
	b.statements = append(b.statements, statement)
	statement.SetEnclosingScope(b)
}

func (b *Block) AddStatements(statements []BlockStatement) {
	for _, s := range statements {
		b.AddStatement(s)
	}
}

func (b *Block) Statements() []BlockStatement { return b.statements }

func (b *Block) String() string { return "{ ... }" }

func (b *Block) AcceptBlockStatement(v BlockStatementVisitor) error { return v.VisitBlock(b) }

// LabeledStatement is a statement behind a label, the target of labeled
// break statements.
type LabeledStatement struct {
	breakableStatement

	Label string
	Body  BlockStatement
}

func NewLabeledStatement(l Located, label string, body BlockStatement) *LabeledStatement {
	s := &LabeledStatement{
		breakableStatement: breakableStatement{statementBase: statementBase{Located: l}},
		Label:              label,
		Body:               body,
	}
	body.SetEnclosingScope(s)
	return s
}

func (s *LabeledStatement) String() string { return s.Label + ": " + s.Body.String() }

func (s *LabeledStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitLabeledStatement(s)
}

// ExpressionStatement evaluates an expression for its side effect.
type ExpressionStatement struct {
	statementBase

	Rvalue Rvalue
}

// NewExpressionStatement returns a source error unless the expression is
// one of the forms that may stand as a statement: an assignment, a crement,
// a method invocation or an object allocation.
func NewExpressionStatement(rvalue Rvalue) (*ExpressionStatement, error) {
	switch rvalue.(type) {
	case *Assignment, *Crement, *MethodInvocation, *SuperclassMethodInvocation,
		*NewClassInstance, *NewAnonymousClassInstance:
	default:
		return nil, compiler.NewError(rvalue.Location(),
			"expression %q is not allowed as an expression statement; "+
				"expression statements must be assignments, method invocations, or object allocations",
			rvalue.String(),
		)
	}
	s := &ExpressionStatement{
		statementBase: statementBase{Located: At(rvalue.Location())},
		Rvalue:        rvalue,
	}
	SetEnclosingScope(rvalue, s)
	return s, nil
}

func (s *ExpressionStatement) String() string { return s.Rvalue.String() + ";" }

func (s *ExpressionStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitExpressionStatement(s)
}

// LocalClassDeclarationStatement is a class declaration in statement
// position.
type LocalClassDeclarationStatement struct {
	statementBase

	Declaration *LocalClassDeclaration
}

func NewLocalClassDeclarationStatement(declaration *LocalClassDeclaration) *LocalClassDeclarationStatement {
	s := &LocalClassDeclarationStatement{
		statementBase: statementBase{Located: At(declaration.Location())},
		Declaration:   declaration,
	}
	declaration.SetEnclosingScope(s)
	return s
}

func (s *LocalClassDeclarationStatement) String() string { return s.Declaration.String() }

func (s *LocalClassDeclarationStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitLocalClassDeclarationStatement(s)
}

// IfStatement is the if statement, with an optional else branch.
type IfStatement struct {
	statementBase

	Condition     Rvalue
	ThenStatement BlockStatement
	ElseStatement BlockStatement
}

func NewIfStatement(l Located, condition Rvalue, thenStatement, elseStatement BlockStatement) *IfStatement {
	s := &IfStatement{
		statementBase: statementBase{Located: l},
		Condition:     condition,
		ThenStatement: thenStatement,
		ElseStatement: elseStatement,
	}
	SetEnclosingScope(condition, s)
	thenStatement.SetEnclosingScope(s)
	if elseStatement != nil {
		elseStatement.SetEnclosingScope(s)
	}
	return s
}

func (s *IfStatement) String() string {
	if s.ElseStatement == nil {
		return "if"
	}
	return "if ... else"
}

func (s *IfStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitIfStatement(s)
}

// ForStatement is the basic for statement. Init, Condition and Update may
// each be nil.
type ForStatement struct {
	continuableStatement

	Init      BlockStatement
	Condition Rvalue
	Update    []Rvalue
}

func NewForStatement(l Located, init BlockStatement, condition Rvalue, update []Rvalue, body BlockStatement) *ForStatement {
	s := &ForStatement{
		continuableStatement: continuableStatement{
			breakableStatement: breakableStatement{statementBase: statementBase{Located: l}},
			Body:               body,
		},
		Init:      init,
		Condition: condition,
		Update:    update,
	}
	body.SetEnclosingScope(s)
	if init != nil {
		init.SetEnclosingScope(s)
	}
	if condition != nil {
		SetEnclosingScope(condition, s)
	}
	for _, rv := range update {
		SetEnclosingScope(rv, s)
	}
	return s
}

func (s *ForStatement) String() string { return "for (...; ...; ...) ..." }

func (s *ForStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitForStatement(s)
}

// ForEachStatement is the enhanced for statement.
type ForEachStatement struct {
	continuableStatement

	CurrentElement *FormalParameter
	Expression     Rvalue
}

func NewForEachStatement(l Located, currentElement *FormalParameter, expression Rvalue, body BlockStatement) *ForEachStatement {
	s := &ForEachStatement{
		continuableStatement: continuableStatement{
			breakableStatement: breakableStatement{statementBase: statementBase{Located: l}},
			Body:               body,
		},
		CurrentElement: currentElement,
		Expression:     expression,
	}
	body.SetEnclosingScope(s)
	currentElement.Type.SetEnclosingScope(s)
	SetEnclosingScope(expression, s)
	return s
}

func (s *ForEachStatement) String() string { return "for (... : ...) ..." }

func (s *ForEachStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitForEachStatement(s)
}

// WhileStatement is the while statement.
type WhileStatement struct {
	continuableStatement

	Condition Rvalue
}

func NewWhileStatement(l Located, condition Rvalue, body BlockStatement) *WhileStatement {
	s := &WhileStatement{
		continuableStatement: continuableStatement{
			breakableStatement: breakableStatement{statementBase: statementBase{Located: l}},
			Body:               body,
		},
		Condition: condition,
	}
	body.SetEnclosingScope(s)
	SetEnclosingScope(condition, s)
	return s
}

func (s *WhileStatement) String() string { return "while (" + s.Condition.String() + ") ..." }

func (s *WhileStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitWhileStatement(s)
}

// DoStatement is the do-while statement.
type DoStatement struct {
	continuableStatement

	Condition Rvalue
}

func NewDoStatement(l Located, body BlockStatement, condition Rvalue) *DoStatement {
	s := &DoStatement{
		continuableStatement: continuableStatement{
			breakableStatement: breakableStatement{statementBase: statementBase{Located: l}},
			Body:               body,
		},
		Condition: condition,
	}
	body.SetEnclosingScope(s)
	SetEnclosingScope(condition, s)
	return s
}

func (s *DoStatement) String() string { return "do ... while(" + s.Condition.String() + ");" }

func (s *DoStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitDoStatement(s)
}

// TryStatement is the try statement with catch clauses and an optional
// finally block.
type TryStatement struct {
	statementBase

	Body         BlockStatement
	CatchClauses []*CatchClause
	Finally      *Block

	// FinallyOffset is reserved when the statement has a finally clause
	// and compilation of the statement begins; subroutine calls to the
	// finally block jump here.
	FinallyOffset *code.Offset
}

func NewTryStatement(l Located, body BlockStatement, catchClauses []*CatchClause, finallyBlock *Block) *TryStatement {
	s := &TryStatement{
		statementBase: statementBase{Located: l},
		Body:          body,
		CatchClauses:  catchClauses,
		Finally:       finallyBlock,
	}
	body.SetEnclosingScope(s)
	for _, cc := range catchClauses {
		cc.setEnclosingTryStatement(s)
	}
	if finallyBlock != nil {
		finallyBlock.SetEnclosingScope(s)
	}
	return s
}

func (s *TryStatement) String() string {
	t := fmt.Sprintf("try ... %d catches", len(s.CatchClauses))
	if s.Finally != nil {
		t += " ... finally"
	}
	return t
}

func (s *TryStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitTryStatement(s)
}

// CatchClause is one catch clause of a try statement. It is a scope: the
// caught exception variable is visible in its body.
type CatchClause struct {
	Located

	CaughtException *FormalParameter
	Body            *Block

	// Reachable is set during compilation when the clause can be entered.
	Reachable bool

	enclosingTry *TryStatement
}

func NewCatchClause(l Located, caughtException *FormalParameter, body *Block) *CatchClause {
	c := &CatchClause{Located: l, CaughtException: caughtException, Body: body}
	caughtException.Type.SetEnclosingScope(c)
	body.SetEnclosingScope(c)
	return c
}

func (c *CatchClause) setEnclosingTryStatement(t *TryStatement) {
	if c.enclosingTry != nil && c.enclosingTry != t {
		compiler.Internalf("enclosing try statement already set for catch clause at %s", c.Location())
	}
	c.enclosingTry = t
}

func (c *CatchClause) EnclosingScope() Scope {
	if c.enclosingTry == nil {
		compiler.Internalf("enclosing try statement not yet set for catch clause at %s", c.Location())
	}
	return c.enclosingTry
}

func (c *CatchClause) enclosingScopeOrNil() Scope {
	if c.enclosingTry == nil {
		return nil
	}
	return c.enclosingTry
}

func (c *CatchClause) String() string { return "catch (" + c.CaughtException.String() + ") ..." }

// SwitchBlockStatementGroup is one run of case labels and the statements
// that follow them.
type SwitchBlockStatementGroup struct {
	Located

	CaseLabels      []Rvalue
	HasDefaultLabel bool
	Statements      []BlockStatement
}

func NewSwitchBlockStatementGroup(l Located, caseLabels []Rvalue, hasDefaultLabel bool, statements []BlockStatement) *SwitchBlockStatementGroup {
	return &SwitchBlockStatementGroup{
		Located:         l,
		CaseLabels:      caseLabels,
		HasDefaultLabel: hasDefaultLabel,
		Statements:      statements,
	}
}

// SwitchStatement is the switch statement. Case labels and the grouped
// statements all live in the scope of the switch itself.
type SwitchStatement struct {
	breakableStatement

	Condition Rvalue
	Groups    []*SwitchBlockStatementGroup
}

func NewSwitchStatement(l Located, condition Rvalue, groups []*SwitchBlockStatementGroup) *SwitchStatement {
	s := &SwitchStatement{
		breakableStatement: breakableStatement{statementBase: statementBase{Located: l}},
		Condition:          condition,
		Groups:             groups,
	}
	SetEnclosingScope(condition, s)
	for _, g := range groups {
		for _, cl := range g.CaseLabels {
			SetEnclosingScope(cl, s)
		}
		for _, bs := range g.Statements {
			bs.SetEnclosingScope(s)
		}
	}
	return s
}

func (s *SwitchStatement) String() string {
	return fmt.Sprintf("switch (%s) { (%d statement groups) }", s.Condition, len(s.Groups))
}

func (s *SwitchStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitSwitchStatement(s)
}

// SynchronizedStatement is the synchronized statement.
type SynchronizedStatement struct {
	statementBase

	Expression Rvalue
	Body       BlockStatement

	// MonitorSlotIndex is the frame slot of the monitor object; assigned
	// during compilation.
	MonitorSlotIndex int
}

func NewSynchronizedStatement(l Located, expression Rvalue, body BlockStatement) *SynchronizedStatement {
	s := &SynchronizedStatement{
		statementBase:    statementBase{Located: l},
		Expression:       expression,
		Body:             body,
		MonitorSlotIndex: -1,
	}
	SetEnclosingScope(expression, s)
	body.SetEnclosingScope(s)
	return s
}

func (s *SynchronizedStatement) String() string {
	return "synchronized(" + s.Expression.String() + ") " + s.Body.String()
}

func (s *SynchronizedStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitSynchronizedStatement(s)
}

// LocalVariableDeclarationStatement declares one or more local variables.
type LocalVariableDeclarationStatement struct {
	statementBase

	// Modifiers may only carry "final" and annotations.
	Modifiers           Modifiers
	Type                Type
	VariableDeclarators []*VariableDeclarator
}

func NewLocalVariableDeclarationStatement(
	l Located,
	modifiers Modifiers,
	variableType Type,
	variableDeclarators []*VariableDeclarator,
) *LocalVariableDeclarationStatement {
	s := &LocalVariableDeclarationStatement{
		statementBase:       statementBase{Located: l},
		Modifiers:           modifiers,
		Type:                variableType,
		VariableDeclarators: variableDeclarators,
	}
	variableType.SetEnclosingScope(s)
	for _, vd := range variableDeclarators {
		if vd.Initializer != nil {
			SetEnclosingScope(vd.Initializer, s)
		}
	}
	return s
}

func (s *LocalVariableDeclarationStatement) String() string {
	t := s.Type.String()
	if mods := s.Modifiers.Flags.String(); mods != "" {
		t = mods + " " + t
	}
	decls := ""
	for i, vd := range s.VariableDeclarators {
		if i > 0 {
			decls += ", "
		}
		decls += vd.String()
	}
	return t + " " + decls + ";"
}

func (s *LocalVariableDeclarationStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitLocalVariableDeclarationStatement(s)
}

// ReturnStatement is the return statement, with an optional return value.
type ReturnStatement struct {
	statementBase

	ReturnValue Rvalue
}

func NewReturnStatement(l Located, returnValue Rvalue) *ReturnStatement {
	s := &ReturnStatement{statementBase: statementBase{Located: l}, ReturnValue: returnValue}
	if returnValue != nil {
		SetEnclosingScope(returnValue, s)
	}
	return s
}

func (s *ReturnStatement) String() string {
	if s.ReturnValue == nil {
		return "return;"
	}
	return "return " + s.ReturnValue.String() + ";"
}

func (s *ReturnStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitReturnStatement(s)
}

// ThrowStatement is the throw statement.
type ThrowStatement struct {
	statementBase

	Expression Rvalue
}

func NewThrowStatement(l Located, expression Rvalue) *ThrowStatement {
	s := &ThrowStatement{statementBase: statementBase{Located: l}, Expression: expression}
	SetEnclosingScope(expression, s)
	return s
}

func (s *ThrowStatement) String() string { return "throw " + s.Expression.String() + ";" }

func (s *ThrowStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitThrowStatement(s)
}

// BreakStatement is the break statement, with an optional label.
type BreakStatement struct {
	statementBase

	Label string
}

func NewBreakStatement(l Located, label string) *BreakStatement {
	return &BreakStatement{statementBase: statementBase{Located: l}, Label: label}
}

func (s *BreakStatement) String() string {
	if s.Label == "" {
		return "break;"
	}
	return "break " + s.Label + ";"
}

func (s *BreakStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitBreakStatement(s)
}

// ContinueStatement is the continue statement, with an optional label.
type ContinueStatement struct {
	statementBase

	Label string
}

func NewContinueStatement(l Located, label string) *ContinueStatement {
	return &ContinueStatement{statementBase: statementBase{Located: l}, Label: label}
}

func (s *ContinueStatement) String() string {
	if s.Label == "" {
		return "continue;"
	}
	return "continue " + s.Label + ";"
}

func (s *ContinueStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitContinueStatement(s)
}

// AssertStatement is the assert statement, with an optional detail
// expression.
type AssertStatement struct {
	statementBase

	Expression1 Rvalue
	Expression2 Rvalue
}

func NewAssertStatement(l Located, expression1, expression2 Rvalue) *AssertStatement {
	s := &AssertStatement{
		statementBase: statementBase{Located: l},
		Expression1:   expression1,
		Expression2:   expression2,
	}
	SetEnclosingScope(expression1, s)
	if expression2 != nil {
		SetEnclosingScope(expression2, s)
	}
	return s
}

func (s *AssertStatement) String() string {
	if s.Expression2 == nil {
		return "assert " + s.Expression1.String() + ";"
	}
	return "assert " + s.Expression1.String() + " : " + s.Expression2.String() + ";"
}

func (s *AssertStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitAssertStatement(s)
}

// EmptyStatement is the blank semicolon.
type EmptyStatement struct {
	statementBase
}

func NewEmptyStatement(l Located) *EmptyStatement {
	return &EmptyStatement{statementBase: statementBase{Located: l}}
}

func (s *EmptyStatement) String() string { return ";" }

func (s *EmptyStatement) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitEmptyStatement(s)
}

// ConstructorInvocation is the explicit this(...) or super(...) call at the
// start of a constructor body. It is both a statement and a call
// expression; its arguments are bound to the invocation itself.
type ConstructorInvocation interface {
	BlockStatement
	Atom
	InvocationArguments() []Rvalue
}

type constructorInvocationBase struct {
	Located

	Arguments []Rvalue

	// LocalVariables holds the locals accessible while compiling the
	// invocation; assigned during compilation.
	LocalVariables map[string]*LocalVariable

	enclosing Scope
}

func (c *constructorInvocationBase) initConstructorInvocation(self Scope) {
	for _, a := range c.Arguments {
		SetEnclosingScope(a, self)
	}
}

func (c *constructorInvocationBase) InvocationArguments() []Rvalue { return c.Arguments }

func (c *constructorInvocationBase) SetEnclosingScope(s Scope) {
	setScope(&c.enclosing, c, "constructor invocation", s)
}

func (c *constructorInvocationBase) EnclosingScope() Scope {
	return getScope(c.enclosing, c, "constructor invocation")
}

func (c *constructorInvocationBase) enclosingScopeOrNil() Scope { return c.enclosing }

func (c *constructorInvocationBase) FindLocalVariable(name string) *LocalVariable {
	return c.LocalVariables[name]
}

// AlternateConstructorInvocation is `this(...)`.
type AlternateConstructorInvocation struct {
	constructorInvocationBase
}

func NewAlternateConstructorInvocation(l Located, arguments []Rvalue) *AlternateConstructorInvocation {
	ci := &AlternateConstructorInvocation{
		constructorInvocationBase: constructorInvocationBase{Located: l, Arguments: arguments},
	}
	ci.initConstructorInvocation(ci)
	return ci
}

func (ci *AlternateConstructorInvocation) String() string { return "this()" }

func (ci *AlternateConstructorInvocation) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitAlternateConstructorInvocation(ci)
}

func (ci *AlternateConstructorInvocation) AcceptAtom(v AtomVisitor) error {
	bsv, ok := v.(BlockStatementVisitor)
	if !ok {
		compiler.Internalf("atom visitor %T cannot visit constructor invocations", v)
	}
	return bsv.VisitAlternateConstructorInvocation(ci)
}

// SuperConstructorInvocation is `super(...)`, optionally qualified with an
// enclosing instance expression.
type SuperConstructorInvocation struct {
	constructorInvocationBase

	Qualification Rvalue
}

func NewSuperConstructorInvocation(l Located, qualification Rvalue, arguments []Rvalue) *SuperConstructorInvocation {
	ci := &SuperConstructorInvocation{
		constructorInvocationBase: constructorInvocationBase{Located: l, Arguments: arguments},
		Qualification:             qualification,
	}
	ci.initConstructorInvocation(ci)
	if qualification != nil {
		SetEnclosingScope(qualification, ci)
	}
	return ci
}

func (ci *SuperConstructorInvocation) String() string { return "super()" }

func (ci *SuperConstructorInvocation) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitSuperConstructorInvocation(ci)
}

func (ci *SuperConstructorInvocation) AcceptAtom(v AtomVisitor) error {
	bsv, ok := v.(BlockStatementVisitor)
	if !ok {
		compiler.Internalf("atom visitor %T cannot visit constructor invocations", v)
	}
	return bsv.VisitSuperConstructorInvocation(ci)
}
