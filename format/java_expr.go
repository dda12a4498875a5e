package format

import (
	"github.com/dhamidi/ono/ast"
)

// unparseOperand renders rv, parenthesized when it is a composite
// expression whose meaning could shift inside a larger one. Cheaper than
// tracking operator precedence and always correct.
func (u *unparser) unparseOperand(rv ast.Rvalue) error {
	switch rv.(type) {
	case *ast.Assignment, *ast.ConditionalExpression, *ast.BinaryOperation,
		*ast.UnaryOperation, *ast.Instanceof, *ast.Cast:
		u.write("(")
		if err := rv.AcceptRvalue(u); err != nil {
			return err
		}
		u.write(")")
		return nil
	}
	return rv.AcceptRvalue(u)
}

func (u *unparser) unparseArguments(arguments []ast.Rvalue) error {
	u.write("(")
	for i, a := range arguments {
		if i > 0 {
			u.write(", ")
		}
		if err := a.AcceptRvalue(u); err != nil {
			return err
		}
	}
	u.write(")")
	return nil
}

func (u *unparser) unparseAtom(a ast.Atom) error {
	return a.AcceptAtom(u)
}

func (u *unparser) unparseArrayInitializerOrRvalue(e ast.ArrayInitializerOrRvalue) error {
	switch n := e.(type) {
	case *ast.ArrayInitializer:
		u.write("{")
		for i, v := range n.Values {
			if i > 0 {
				u.write(",")
			}
			u.write(" ")
			if err := u.unparseArrayInitializerOrRvalue(v); err != nil {
				return err
			}
		}
		u.write(" }")
		return nil
	case ast.Rvalue:
		return n.AcceptRvalue(u)
	}
	return nil
}

func (u *unparser) VisitAmbiguousName(e *ast.AmbiguousName) error {
	u.write(e.String())
	return nil
}

func (u *unparser) VisitLocalVariableAccess(e *ast.LocalVariableAccess) error {
	if e.LocalVariable.Slot != nil {
		u.write(e.LocalVariable.Slot.Name)
		return nil
	}
	u.write(e.LocalVariable.String())
	return nil
}

func (u *unparser) VisitFieldAccess(e *ast.FieldAccess) error {
	if err := u.unparseAtom(e.Lhs); err != nil {
		return err
	}
	u.write("." + e.Field.FieldName())
	return nil
}

func (u *unparser) VisitFieldAccessExpression(e *ast.FieldAccessExpression) error {
	if err := u.unparseAtom(e.Lhs); err != nil {
		return err
	}
	u.write("." + e.FieldName)
	return nil
}

func (u *unparser) VisitSuperclassFieldAccessExpression(e *ast.SuperclassFieldAccessExpression) error {
	if e.Qualification != nil {
		if err := e.Qualification.AcceptType(u); err != nil {
			return err
		}
		u.write(".")
	}
	u.write("super." + e.FieldName)
	return nil
}

func (u *unparser) VisitArrayAccessExpression(e *ast.ArrayAccessExpression) error {
	if err := u.unparseOperand(e.Lhs); err != nil {
		return err
	}
	u.write("[")
	if err := e.Index.AcceptRvalue(u); err != nil {
		return err
	}
	u.write("]")
	return nil
}

func (u *unparser) VisitParenthesizedExpression(e *ast.ParenthesizedExpression) error {
	u.write("(")
	if err := e.Value.AcceptRvalue(u); err != nil {
		return err
	}
	u.write(")")
	return nil
}

func (u *unparser) VisitArrayLength(e *ast.ArrayLength) error {
	if err := u.unparseOperand(e.Lhs); err != nil {
		return err
	}
	u.write(".length")
	return nil
}

func (u *unparser) VisitThisReference(e *ast.ThisReference) error {
	u.write("this")
	return nil
}

func (u *unparser) VisitQualifiedThisReference(e *ast.QualifiedThisReference) error {
	if err := e.Qualification.AcceptType(u); err != nil {
		return err
	}
	u.write(".this")
	return nil
}

func (u *unparser) VisitClassLiteral(e *ast.ClassLiteral) error {
	if err := e.Type.AcceptType(u); err != nil {
		return err
	}
	u.write(".class")
	return nil
}

func (u *unparser) VisitAssignment(e *ast.Assignment) error {
	if err := e.Lhs.AcceptRvalue(u); err != nil {
		return err
	}
	u.write(" " + e.Operator + " ")
	return u.unparseOperand(e.Rhs)
}

func (u *unparser) VisitConditionalExpression(e *ast.ConditionalExpression) error {
	if err := u.unparseOperand(e.Lhs); err != nil {
		return err
	}
	u.write(" ? ")
	if err := u.unparseOperand(e.Mhs); err != nil {
		return err
	}
	u.write(" : ")
	return u.unparseOperand(e.Rhs)
}

func (u *unparser) VisitCrement(e *ast.Crement) error {
	if e.Pre {
		u.write(e.Operator)
		return e.Operand.AcceptRvalue(u)
	}
	if err := e.Operand.AcceptRvalue(u); err != nil {
		return err
	}
	u.write(e.Operator)
	return nil
}

func (u *unparser) VisitUnaryOperation(e *ast.UnaryOperation) error {
	u.write(e.Operator)
	return u.unparseOperand(e.Operand)
}

func (u *unparser) VisitInstanceof(e *ast.Instanceof) error {
	if err := u.unparseOperand(e.Lhs); err != nil {
		return err
	}
	u.write(" instanceof ")
	return e.Rhs.AcceptType(u)
}

func (u *unparser) VisitBinaryOperation(e *ast.BinaryOperation) error {
	if err := u.unparseOperand(e.Lhs); err != nil {
		return err
	}
	u.write(" " + e.Op + " ")
	return u.unparseOperand(e.Rhs)
}

func (u *unparser) VisitCast(e *ast.Cast) error {
	u.write("(")
	if err := e.TargetType.AcceptType(u); err != nil {
		return err
	}
	u.write(") ")
	return u.unparseOperand(e.Value)
}

func (u *unparser) VisitMethodInvocation(e *ast.MethodInvocation) error {
	if e.Target != nil {
		if err := u.unparseAtom(e.Target); err != nil {
			return err
		}
		u.write(".")
	}
	u.write(e.MethodName)
	return u.unparseArguments(e.Arguments)
}

func (u *unparser) VisitSuperclassMethodInvocation(e *ast.SuperclassMethodInvocation) error {
	u.write("super." + e.MethodName)
	return u.unparseArguments(e.Arguments)
}

func (u *unparser) VisitNewClassInstance(e *ast.NewClassInstance) error {
	if e.Qualification != nil {
		if err := u.unparseOperand(e.Qualification); err != nil {
			return err
		}
		u.write(".")
	}
	u.write("new ")
	if e.Type != nil {
		if err := e.Type.AcceptType(u); err != nil {
			return err
		}
	} else if e.ResolvedType != nil {
		u.write(e.ResolvedType.String())
	}
	return u.unparseArguments(e.Arguments)
}

func (u *unparser) VisitNewAnonymousClassInstance(e *ast.NewAnonymousClassInstance) error {
	if e.Qualification != nil {
		if err := u.unparseOperand(e.Qualification); err != nil {
			return err
		}
		u.write(".")
	}
	u.write("new ")
	acd := e.AnonymousClassDeclaration
	if err := acd.BaseType.AcceptType(u); err != nil {
		return err
	}
	if err := u.unparseArguments(e.Arguments); err != nil {
		return err
	}
	u.write(" {")
	u.newline()
	u.indent++
	if err := u.unparseClassBody(acd); err != nil {
		return err
	}
	u.indent--
	u.write("}")
	return nil
}

func (u *unparser) VisitParameterAccess(e *ast.ParameterAccess) error {
	u.write(e.FormalParameter.Name)
	return nil
}

func (u *unparser) VisitNewArray(e *ast.NewArray) error {
	u.write("new ")
	if err := e.Type.AcceptType(u); err != nil {
		return err
	}
	for _, de := range e.DimExprs {
		u.write("[")
		if err := de.AcceptRvalue(u); err != nil {
			return err
		}
		u.write("]")
	}
	for i := 0; i < e.Dims; i++ {
		u.write("[]")
	}
	return nil
}

func (u *unparser) VisitNewInitializedArray(e *ast.NewInitializedArray) error {
	u.write("new ")
	if e.ArrayType != nil {
		if err := u.VisitArrayType(e.ArrayType); err != nil {
			return err
		}
	}
	u.write(" ")
	return u.unparseArrayInitializerOrRvalue(e.ArrayInitializer)
}

func (u *unparser) VisitIntegerLiteral(e *ast.IntegerLiteral) error {
	u.write(e.Value)
	return nil
}

func (u *unparser) VisitFloatingPointLiteral(e *ast.FloatingPointLiteral) error {
	u.write(e.Value)
	return nil
}

func (u *unparser) VisitBooleanLiteral(e *ast.BooleanLiteral) error {
	u.write(e.Value)
	return nil
}

func (u *unparser) VisitCharacterLiteral(e *ast.CharacterLiteral) error {
	u.write(e.Value)
	return nil
}

func (u *unparser) VisitStringLiteral(e *ast.StringLiteral) error {
	u.write(e.Value)
	return nil
}

func (u *unparser) VisitNullLiteral(e *ast.NullLiteral) error {
	u.write(e.Value)
	return nil
}

func (u *unparser) VisitSimpleConstant(e *ast.SimpleConstant) error {
	u.writef("%v", e.Value)
	return nil
}
