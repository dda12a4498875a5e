package format

import (
	"github.com/dhamidi/ono/ast"
)

// unparseBody writes a statement as the body of a control structure: a
// block stays on the same line, anything else goes indented on the next.
func (u *unparser) unparseBody(bs ast.BlockStatement) error {
	if b, ok := bs.(*ast.Block); ok {
		u.write(" ")
		return u.VisitBlock(b)
	}
	u.newline()
	u.indent++
	err := bs.AcceptBlockStatement(u)
	u.indent--
	return err
}

func (u *unparser) unparseStatementLine(bs ast.BlockStatement) error {
	if err := bs.AcceptBlockStatement(u); err != nil {
		return err
	}
	u.newline()
	return nil
}

func (u *unparser) VisitBlock(b *ast.Block) error {
	u.write("{")
	u.newline()
	u.indent++
	for _, s := range b.Statements() {
		if err := u.unparseStatementLine(s); err != nil {
			return err
		}
	}
	u.indent--
	u.write("}")
	return nil
}

func (u *unparser) VisitLabeledStatement(s *ast.LabeledStatement) error {
	u.write(s.Label + ": ")
	return s.Body.AcceptBlockStatement(u)
}

func (u *unparser) VisitExpressionStatement(s *ast.ExpressionStatement) error {
	if err := s.Rvalue.AcceptRvalue(u); err != nil {
		return err
	}
	u.write(";")
	return nil
}

func (u *unparser) VisitLocalClassDeclarationStatement(s *ast.LocalClassDeclarationStatement) error {
	return s.Declaration.AcceptTypeDeclaration(u)
}

func (u *unparser) VisitIfStatement(s *ast.IfStatement) error {
	u.write("if (")
	if err := s.Condition.AcceptRvalue(u); err != nil {
		return err
	}
	u.write(")")
	if err := u.unparseBody(s.ThenStatement); err != nil {
		return err
	}
	if s.ElseStatement == nil {
		return nil
	}
	u.write(" else")
	return u.unparseBody(s.ElseStatement)
}

func (u *unparser) VisitForStatement(s *ast.ForStatement) error {
	u.write("for (")
	if s.Init != nil {
		if err := s.Init.AcceptBlockStatement(u); err != nil {
			return err
		}
	} else {
		u.write(";")
	}
	u.write(" ")
	if s.Condition != nil {
		if err := s.Condition.AcceptRvalue(u); err != nil {
			return err
		}
	}
	u.write("; ")
	for i, rv := range s.Update {
		if i > 0 {
			u.write(", ")
		}
		if err := rv.AcceptRvalue(u); err != nil {
			return err
		}
	}
	u.write(")")
	return u.unparseBody(s.Body)
}

func (u *unparser) VisitForEachStatement(s *ast.ForEachStatement) error {
	u.write("for (")
	if err := u.unparseFormalParameter(s.CurrentElement, false); err != nil {
		return err
	}
	u.write(" : ")
	if err := s.Expression.AcceptRvalue(u); err != nil {
		return err
	}
	u.write(")")
	return u.unparseBody(s.Body)
}

func (u *unparser) VisitWhileStatement(s *ast.WhileStatement) error {
	u.write("while (")
	if err := s.Condition.AcceptRvalue(u); err != nil {
		return err
	}
	u.write(")")
	return u.unparseBody(s.Body)
}

func (u *unparser) VisitDoStatement(s *ast.DoStatement) error {
	u.write("do")
	if err := u.unparseBody(s.Body); err != nil {
		return err
	}
	u.write(" while (")
	if err := s.Condition.AcceptRvalue(u); err != nil {
		return err
	}
	u.write(");")
	return nil
}

func (u *unparser) VisitTryStatement(s *ast.TryStatement) error {
	u.write("try")
	if err := u.unparseBody(s.Body); err != nil {
		return err
	}
	for _, cc := range s.CatchClauses {
		u.write(" catch (")
		if err := u.unparseFormalParameter(cc.CaughtException, false); err != nil {
			return err
		}
		u.write(") ")
		if err := u.VisitBlock(cc.Body); err != nil {
			return err
		}
	}
	if s.Finally != nil {
		u.write(" finally ")
		return u.VisitBlock(s.Finally)
	}
	return nil
}

func (u *unparser) VisitSwitchStatement(s *ast.SwitchStatement) error {
	u.write("switch (")
	if err := s.Condition.AcceptRvalue(u); err != nil {
		return err
	}
	u.write(") {")
	u.newline()
	for _, g := range s.Groups {
		for _, cl := range g.CaseLabels {
			u.write("case ")
			if err := cl.AcceptRvalue(u); err != nil {
				return err
			}
			u.write(":")
			u.newline()
		}
		if g.HasDefaultLabel {
			u.write("default:")
			u.newline()
		}
		u.indent++
		for _, st := range g.Statements {
			if err := u.unparseStatementLine(st); err != nil {
				return err
			}
		}
		u.indent--
	}
	u.write("}")
	return nil
}

func (u *unparser) VisitSynchronizedStatement(s *ast.SynchronizedStatement) error {
	u.write("synchronized (")
	if err := s.Expression.AcceptRvalue(u); err != nil {
		return err
	}
	u.write(")")
	return u.unparseBody(s.Body)
}

func (u *unparser) VisitLocalVariableDeclarationStatement(s *ast.LocalVariableDeclarationStatement) error {
	if err := u.unparseModifiers(s.Modifiers, 0); err != nil {
		return err
	}
	if err := s.Type.AcceptType(u); err != nil {
		return err
	}
	u.write(" ")
	if err := u.unparseVariableDeclarators(s.VariableDeclarators); err != nil {
		return err
	}
	u.write(";")
	return nil
}

func (u *unparser) unparseVariableDeclarators(declarators []*ast.VariableDeclarator) error {
	for i, vd := range declarators {
		if i > 0 {
			u.write(", ")
		}
		u.write(vd.Name)
		for b := 0; b < vd.Brackets; b++ {
			u.write("[]")
		}
		if vd.Initializer != nil {
			u.write(" = ")
			if err := u.unparseArrayInitializerOrRvalue(vd.Initializer); err != nil {
				return err
			}
		}
	}
	return nil
}

func (u *unparser) VisitReturnStatement(s *ast.ReturnStatement) error {
	if s.ReturnValue == nil {
		u.write("return;")
		return nil
	}
	u.write("return ")
	if err := s.ReturnValue.AcceptRvalue(u); err != nil {
		return err
	}
	u.write(";")
	return nil
}

func (u *unparser) VisitThrowStatement(s *ast.ThrowStatement) error {
	u.write("throw ")
	if err := s.Expression.AcceptRvalue(u); err != nil {
		return err
	}
	u.write(";")
	return nil
}

func (u *unparser) VisitBreakStatement(s *ast.BreakStatement) error {
	u.write(s.String())
	return nil
}

func (u *unparser) VisitContinueStatement(s *ast.ContinueStatement) error {
	u.write(s.String())
	return nil
}

func (u *unparser) VisitAssertStatement(s *ast.AssertStatement) error {
	u.write("assert ")
	if err := s.Expression1.AcceptRvalue(u); err != nil {
		return err
	}
	if s.Expression2 != nil {
		u.write(" : ")
		if err := s.Expression2.AcceptRvalue(u); err != nil {
			return err
		}
	}
	u.write(";")
	return nil
}

func (u *unparser) VisitEmptyStatement(s *ast.EmptyStatement) error {
	u.write(";")
	return nil
}

func (u *unparser) VisitAlternateConstructorInvocation(ci *ast.AlternateConstructorInvocation) error {
	u.write("this")
	if err := u.unparseArguments(ci.InvocationArguments()); err != nil {
		return err
	}
	u.write(";")
	return nil
}

func (u *unparser) VisitSuperConstructorInvocation(ci *ast.SuperConstructorInvocation) error {
	if ci.Qualification != nil {
		if err := u.unparseOperand(ci.Qualification); err != nil {
			return err
		}
		u.write(".")
	}
	u.write("super")
	if err := u.unparseArguments(ci.InvocationArguments()); err != nil {
		return err
	}
	u.write(";")
	return nil
}
