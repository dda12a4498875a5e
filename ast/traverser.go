package ast

// Traverser walks a tree in declaration order and calls the configured
// hooks as it descends. A nil hook just descends; a hook returning an
// error aborts the walk.
type Traverser struct {
	TypeDeclaration func(td TypeDeclaration) error
	BlockStatement  func(bs BlockStatement) error
	Rvalue          func(rv Rvalue) error
	Type            func(t Type) error
	Annotation      func(a Annotation) error
	Import          func(id ImportDeclaration) error
}

// TraverseCompilationUnit walks the unit's imports and top-level types.
func (t *Traverser) TraverseCompilationUnit(cu *CompilationUnit) error {
	for _, id := range cu.ImportDeclarations {
		if err := t.TraverseImport(id); err != nil {
			return err
		}
	}
	for _, pmtd := range cu.PackageMemberTypeDeclarations() {
		if err := t.TraverseTypeDeclaration(pmtd); err != nil {
			return err
		}
	}
	return nil
}

func (t *Traverser) TraverseImport(id ImportDeclaration) error {
	if t.Import != nil {
		return t.Import(id)
	}
	return nil
}

func (t *Traverser) TraverseTypeDeclaration(td TypeDeclaration) error {
	if t.TypeDeclaration != nil {
		if err := t.TypeDeclaration(td); err != nil {
			return err
		}
	}
	for _, a := range td.Annotations() {
		if err := t.TraverseAnnotation(a); err != nil {
			return err
		}
	}
	switch d := td.(type) {
	case *AnonymousClassDeclaration:
		if err := t.TraverseType(d.BaseType); err != nil {
			return err
		}
		return t.traverseClassBody(&d.classDeclarationBase)
	case *LocalClassDeclaration:
		return t.traverseNamedClass(&d.namedClassDeclarationBase)
	case *MemberEnumDeclaration:
		return t.traverseEnumBody(d.Constants(), &d.namedClassDeclarationBase)
	case *MemberClassDeclaration:
		return t.traverseNamedClass(&d.namedClassDeclarationBase)
	case *PackageMemberEnumDeclaration:
		return t.traverseEnumBody(d.Constants(), &d.namedClassDeclarationBase)
	case *PackageMemberClassDeclaration:
		return t.traverseNamedClass(&d.namedClassDeclarationBase)
	case *EnumConstant:
		for _, a := range d.Arguments {
			if err := t.TraverseRvalue(a); err != nil {
				return err
			}
		}
		return t.traverseClassBody(&d.classDeclarationBase)
	case *MemberAnnotationTypeDeclaration:
		return t.traverseInterfaceBody(&d.interfaceDeclarationBase)
	case *MemberInterfaceDeclaration:
		return t.traverseInterfaceBody(&d.interfaceDeclarationBase)
	case *PackageMemberAnnotationTypeDeclaration:
		return t.traverseInterfaceBody(&d.interfaceDeclarationBase)
	case *PackageMemberInterfaceDeclaration:
		return t.traverseInterfaceBody(&d.interfaceDeclarationBase)
	}
	return nil
}

func (t *Traverser) traverseNamedClass(d *namedClassDeclarationBase) error {
	if d.ExtendedType != nil {
		if err := t.TraverseType(d.ExtendedType); err != nil {
			return err
		}
	}
	for _, it := range d.ImplementedTypes {
		if err := t.TraverseType(it); err != nil {
			return err
		}
	}
	return t.traverseClassBody(&d.classDeclarationBase)
}

func (t *Traverser) traverseEnumBody(constants []*EnumConstant, d *namedClassDeclarationBase) error {
	for _, c := range constants {
		if err := t.TraverseTypeDeclaration(c); err != nil {
			return err
		}
	}
	return t.traverseNamedClass(d)
}

func (t *Traverser) traverseClassBody(d *classDeclarationBase) error {
	for _, c := range d.constructors {
		if err := t.traverseFunction(&c.FunctionDeclarator, c.ConstructorInvocation); err != nil {
			return err
		}
	}
	for _, bs := range d.fieldDeclarationsAndInitializers {
		if err := t.TraverseBlockStatement(bs); err != nil {
			return err
		}
	}
	return t.traverseTypeMembers(&d.typeDeclarationBase)
}

func (t *Traverser) traverseInterfaceBody(d *interfaceDeclarationBase) error {
	for _, et := range d.ExtendedTypes {
		if err := t.TraverseType(et); err != nil {
			return err
		}
	}
	for _, cd := range d.constantDeclarations {
		if err := t.TraverseBlockStatement(cd); err != nil {
			return err
		}
	}
	return t.traverseTypeMembers(&d.typeDeclarationBase)
}

func (t *Traverser) traverseTypeMembers(d *typeDeclarationBase) error {
	for _, m := range d.methods {
		if err := t.traverseFunction(&m.FunctionDeclarator, nil); err != nil {
			return err
		}
	}
	for _, mt := range d.memberTypes {
		if err := t.TraverseTypeDeclaration(mt); err != nil {
			return err
		}
	}
	return nil
}

func (t *Traverser) traverseFunction(f *FunctionDeclarator, ci ConstructorInvocation) error {
	for _, a := range f.Annotations() {
		if err := t.TraverseAnnotation(a); err != nil {
			return err
		}
	}
	if err := t.TraverseType(f.Type); err != nil {
		return err
	}
	for _, fp := range f.Parameters.Parameters {
		if err := t.TraverseType(fp.Type); err != nil {
			return err
		}
	}
	for _, te := range f.ThrownExceptions {
		if err := t.TraverseType(te); err != nil {
			return err
		}
	}
	if ci != nil {
		if err := t.TraverseBlockStatement(ci); err != nil {
			return err
		}
	}
	for _, bs := range f.Statements {
		if err := t.TraverseBlockStatement(bs); err != nil {
			return err
		}
	}
	return nil
}

func (t *Traverser) TraverseBlockStatement(bs BlockStatement) error {
	if t.BlockStatement != nil {
		if err := t.BlockStatement(bs); err != nil {
			return err
		}
	}
	switch s := bs.(type) {
	case *Initializer:
		return t.TraverseBlockStatement(s.Block)
	case *FieldDeclaration:
		if err := t.TraverseType(s.Type); err != nil {
			return err
		}
		for _, vd := range s.VariableDeclarators {
			if err := t.traverseArrayInitializerOrRvalue(vd.Initializer); err != nil {
				return err
			}
		}
	case *Block:
		for _, st := range s.Statements() {
			if err := t.TraverseBlockStatement(st); err != nil {
				return err
			}
		}
	case *LabeledStatement:
		return t.TraverseBlockStatement(s.Body)
	case *ExpressionStatement:
		return t.TraverseRvalue(s.Rvalue)
	case *LocalClassDeclarationStatement:
		return t.TraverseTypeDeclaration(s.Declaration)
	case *IfStatement:
		if err := t.TraverseRvalue(s.Condition); err != nil {
			return err
		}
		if err := t.TraverseBlockStatement(s.ThenStatement); err != nil {
			return err
		}
		if s.ElseStatement != nil {
			return t.TraverseBlockStatement(s.ElseStatement)
		}
	case *ForStatement:
		if s.Init != nil {
			if err := t.TraverseBlockStatement(s.Init); err != nil {
				return err
			}
		}
		if s.Condition != nil {
			if err := t.TraverseRvalue(s.Condition); err != nil {
				return err
			}
		}
		for _, rv := range s.Update {
			if err := t.TraverseRvalue(rv); err != nil {
				return err
			}
		}
		return t.TraverseBlockStatement(s.Body)
	case *ForEachStatement:
		if err := t.TraverseType(s.CurrentElement.Type); err != nil {
			return err
		}
		if err := t.TraverseRvalue(s.Expression); err != nil {
			return err
		}
		return t.TraverseBlockStatement(s.Body)
	case *WhileStatement:
		if err := t.TraverseRvalue(s.Condition); err != nil {
			return err
		}
		return t.TraverseBlockStatement(s.Body)
	case *DoStatement:
		if err := t.TraverseBlockStatement(s.Body); err != nil {
			return err
		}
		return t.TraverseRvalue(s.Condition)
	case *TryStatement:
		if err := t.TraverseBlockStatement(s.Body); err != nil {
			return err
		}
		for _, cc := range s.CatchClauses {
			if err := t.TraverseType(cc.CaughtException.Type); err != nil {
				return err
			}
			if err := t.TraverseBlockStatement(cc.Body); err != nil {
				return err
			}
		}
		if s.Finally != nil {
			return t.TraverseBlockStatement(s.Finally)
		}
	case *SwitchStatement:
		if err := t.TraverseRvalue(s.Condition); err != nil {
			return err
		}
		for _, g := range s.Groups {
			for _, cl := range g.CaseLabels {
				if err := t.TraverseRvalue(cl); err != nil {
					return err
				}
			}
			for _, st := range g.Statements {
				if err := t.TraverseBlockStatement(st); err != nil {
					return err
				}
			}
		}
	case *SynchronizedStatement:
		if err := t.TraverseRvalue(s.Expression); err != nil {
			return err
		}
		return t.TraverseBlockStatement(s.Body)
	case *LocalVariableDeclarationStatement:
		if err := t.TraverseType(s.Type); err != nil {
			return err
		}
		for _, vd := range s.VariableDeclarators {
			if err := t.traverseArrayInitializerOrRvalue(vd.Initializer); err != nil {
				return err
			}
		}
	case *ReturnStatement:
		if s.ReturnValue != nil {
			return t.TraverseRvalue(s.ReturnValue)
		}
	case *ThrowStatement:
		return t.TraverseRvalue(s.Expression)
	case *AssertStatement:
		if err := t.TraverseRvalue(s.Expression1); err != nil {
			return err
		}
		if s.Expression2 != nil {
			return t.TraverseRvalue(s.Expression2)
		}
	case ConstructorInvocation:
		if sci, ok := s.(*SuperConstructorInvocation); ok && sci.Qualification != nil {
			if err := t.TraverseRvalue(sci.Qualification); err != nil {
				return err
			}
		}
		for _, a := range s.InvocationArguments() {
			if err := t.TraverseRvalue(a); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Traverser) traverseArrayInitializerOrRvalue(e ArrayInitializerOrRvalue) error {
	switch n := e.(type) {
	case nil:
	case *ArrayInitializer:
		for _, v := range n.Values {
			if err := t.traverseArrayInitializerOrRvalue(v); err != nil {
				return err
			}
		}
	case Rvalue:
		return t.TraverseRvalue(n)
	}
	return nil
}

func (t *Traverser) TraverseRvalue(rv Rvalue) error {
	if t.Rvalue != nil {
		if err := t.Rvalue(rv); err != nil {
			return err
		}
	}
	switch e := rv.(type) {
	case *FieldAccess:
		return t.traverseAtom(e.Lhs)
	case *FieldAccessExpression:
		return t.traverseAtom(e.Lhs)
	case *SuperclassFieldAccessExpression:
		if e.Qualification != nil {
			return t.TraverseType(e.Qualification)
		}
	case *ArrayAccessExpression:
		if err := t.TraverseRvalue(e.Lhs); err != nil {
			return err
		}
		return t.TraverseRvalue(e.Index)
	case *ParenthesizedExpression:
		return t.TraverseRvalue(e.Value)
	case *ArrayLength:
		return t.TraverseRvalue(e.Lhs)
	case *QualifiedThisReference:
		return t.TraverseType(e.Qualification)
	case *ClassLiteral:
		return t.TraverseType(e.Type)
	case *Assignment:
		if err := t.TraverseRvalue(e.Lhs); err != nil {
			return err
		}
		return t.TraverseRvalue(e.Rhs)
	case *ConditionalExpression:
		if err := t.TraverseRvalue(e.Lhs); err != nil {
			return err
		}
		if err := t.TraverseRvalue(e.Mhs); err != nil {
			return err
		}
		return t.TraverseRvalue(e.Rhs)
	case *Crement:
		return t.TraverseRvalue(e.Operand)
	case *UnaryOperation:
		return t.TraverseRvalue(e.Operand)
	case *Instanceof:
		if err := t.TraverseRvalue(e.Lhs); err != nil {
			return err
		}
		return t.TraverseType(e.Rhs)
	case *BinaryOperation:
		if err := t.TraverseRvalue(e.Lhs); err != nil {
			return err
		}
		return t.TraverseRvalue(e.Rhs)
	case *Cast:
		if err := t.TraverseType(e.TargetType); err != nil {
			return err
		}
		return t.TraverseRvalue(e.Value)
	case *MethodInvocation:
		if err := t.traverseAtom(e.Target); err != nil {
			return err
		}
		return t.traverseRvalues(e.Arguments)
	case *SuperclassMethodInvocation:
		return t.traverseRvalues(e.Arguments)
	case *NewClassInstance:
		if e.Qualification != nil {
			if err := t.TraverseRvalue(e.Qualification); err != nil {
				return err
			}
		}
		if e.Type != nil {
			if err := t.TraverseType(e.Type); err != nil {
				return err
			}
		}
		return t.traverseRvalues(e.Arguments)
	case *NewAnonymousClassInstance:
		if e.Qualification != nil {
			if err := t.TraverseRvalue(e.Qualification); err != nil {
				return err
			}
		}
		if err := t.TraverseTypeDeclaration(e.AnonymousClassDeclaration); err != nil {
			return err
		}
		return t.traverseRvalues(e.Arguments)
	case *NewArray:
		if err := t.TraverseType(e.Type); err != nil {
			return err
		}
		return t.traverseRvalues(e.DimExprs)
	case *NewInitializedArray:
		if e.ArrayType != nil {
			if err := t.TraverseType(e.ArrayType); err != nil {
				return err
			}
		}
		return t.traverseArrayInitializerOrRvalue(e.ArrayInitializer)
	}
	return nil
}

func (t *Traverser) traverseRvalues(rvs []Rvalue) error {
	for _, rv := range rvs {
		if err := t.TraverseRvalue(rv); err != nil {
			return err
		}
	}
	return nil
}

func (t *Traverser) traverseAtom(a Atom) error {
	switch n := a.(type) {
	case nil:
	case Type:
		return t.TraverseType(n)
	case Rvalue:
		return t.TraverseRvalue(n)
	}
	return nil
}

func (t *Traverser) TraverseType(tp Type) error {
	if t.Type != nil {
		if err := t.Type(tp); err != nil {
			return err
		}
	}
	switch n := tp.(type) {
	case *ReferenceType:
		for _, ta := range n.TypeArguments {
			if err := t.traverseTypeArgument(ta); err != nil {
				return err
			}
		}
	case *ArrayType:
		return t.TraverseType(n.ComponentType)
	case *RvalueMemberType:
		return t.TraverseRvalue(n.Rvalue)
	}
	return nil
}

func (t *Traverser) traverseTypeArgument(ta TypeArgument) error {
	switch n := ta.(type) {
	case *ReferenceType:
		return t.TraverseType(n)
	case *ArrayType:
		return t.TraverseType(n)
	case *Wildcard:
		if n.ReferenceType != nil {
			return t.TraverseType(n.ReferenceType)
		}
	}
	return nil
}

func (t *Traverser) TraverseAnnotation(a Annotation) error {
	if t.Annotation != nil {
		if err := t.Annotation(a); err != nil {
			return err
		}
	}
	if err := t.TraverseType(a.AnnotationType()); err != nil {
		return err
	}
	switch n := a.(type) {
	case *SingleElementAnnotation:
		return t.traverseElementValue(n.ElementValue)
	case *NormalAnnotation:
		for _, evp := range n.ElementValuePairs {
			if err := t.traverseElementValue(evp.ElementValue); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Traverser) traverseElementValue(ev ElementValue) error {
	switch n := ev.(type) {
	case nil:
	case Rvalue:
		return t.TraverseRvalue(n)
	case Annotation:
		return t.TraverseAnnotation(n)
	case *ElementValueArrayInitializer:
		for _, v := range n.Values {
			if err := t.traverseElementValue(v); err != nil {
				return err
			}
		}
	}
	return nil
}
