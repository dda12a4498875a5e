package ast

// SetEnclosingScope binds an expression or array initializer and
// everything it contains into the scope chain. Statements call this for
// their expressions at construction time, so an expression is only ever
// bound through the statement that owns it.
//
// Every subexpression and every type mentioned inside the expression is
// bound to the same scope s. An anonymous class declaration is bound as a
// whole; its body was already bound to the declaration when it was built.
func SetEnclosingScope(e ArrayInitializerOrRvalue, s Scope) {
	switch n := e.(type) {
	case nil:
	case *ArrayInitializer:
		for _, v := range n.Values {
			SetEnclosingScope(v, s)
		}
	case Rvalue:
		setScope(&n.rvalueNode().enclosing, n, "expression", s)
		bindSubexpressions(n, s)
	}
}

func bindSubexpressions(e Rvalue, s Scope) {
	switch n := e.(type) {
	case *FieldAccess:
		bindAtom(n.Lhs, s)
	case *FieldAccessExpression:
		bindAtom(n.Lhs, s)
	case *SuperclassFieldAccessExpression:
		bindType(n.Qualification, s)
	case *ArrayAccessExpression:
		SetEnclosingScope(n.Lhs, s)
		SetEnclosingScope(n.Index, s)
	case *ParenthesizedExpression:
		SetEnclosingScope(n.Value, s)
	case *ArrayLength:
		SetEnclosingScope(n.Lhs, s)
	case *QualifiedThisReference:
		bindType(n.Qualification, s)
	case *ClassLiteral:
		bindType(n.Type, s)
	case *Assignment:
		SetEnclosingScope(n.Lhs, s)
		SetEnclosingScope(n.Rhs, s)
	case *ConditionalExpression:
		SetEnclosingScope(n.Lhs, s)
		SetEnclosingScope(n.Mhs, s)
		SetEnclosingScope(n.Rhs, s)
	case *Crement:
		SetEnclosingScope(n.Operand, s)
	case *UnaryOperation:
		SetEnclosingScope(n.Operand, s)
	case *Instanceof:
		SetEnclosingScope(n.Lhs, s)
		bindType(n.Rhs, s)
	case *BinaryOperation:
		SetEnclosingScope(n.Lhs, s)
		SetEnclosingScope(n.Rhs, s)
	case *Cast:
		bindType(n.TargetType, s)
		SetEnclosingScope(n.Value, s)
	case *MethodInvocation:
		bindAtom(n.Target, s)
		bindRvalues(n.Arguments, s)
	case *SuperclassMethodInvocation:
		bindRvalues(n.Arguments, s)
	case *NewClassInstance:
		SetEnclosingScope(n.Qualification, s)
		bindType(n.Type, s)
		bindRvalues(n.Arguments, s)
	case *NewAnonymousClassInstance:
		SetEnclosingScope(n.Qualification, s)
		n.AnonymousClassDeclaration.SetEnclosingScope(s)
		bindRvalues(n.Arguments, s)
	case *NewArray:
		bindType(n.Type, s)
		bindRvalues(n.DimExprs, s)
	case *NewInitializedArray:
		bindType(n.ArrayType, s)
		SetEnclosingScope(n.ArrayInitializer, s)
	}
}

func bindRvalues(rvs []Rvalue, s Scope) {
	for _, rv := range rvs {
		SetEnclosingScope(rv, s)
	}
}

// bindType tolerates nil and typed-nil optional types.
func bindType(t Type, s Scope) {
	if t == nil {
		return
	}
	if at, ok := t.(*ArrayType); ok && at == nil {
		return
	}
	t.SetEnclosingScope(s)
}

func bindAtom(a Atom, s Scope) {
	switch n := a.(type) {
	case nil:
	case *Package:
	case Type:
		n.SetEnclosingScope(s)
	case Rvalue:
		SetEnclosingScope(n, s)
	}
}
