package ast

// The visitor interfaces mirror the node taxonomy: one interface per
// closed node set, one method per concrete kind. Nodes that belong to
// several sets (a member class is both a type declaration and a type body
// declaration) appear with the same method signature in each interface, so
// a single method on a concrete visitor serves all of them.

// TypeVisitor visits the kinds of Type.
type TypeVisitor interface {
	VisitBasicType(t *BasicType) error
	VisitReferenceType(t *ReferenceType) error
	VisitArrayType(t *ArrayType) error
	VisitSimpleType(t *SimpleType) error
	VisitRvalueMemberType(t *RvalueMemberType) error
}

// TypeArgumentVisitor visits the kinds of TypeArgument.
type TypeArgumentVisitor interface {
	VisitReferenceTypeArgument(t *ReferenceType) error
	VisitArrayTypeArgument(t *ArrayType) error
	VisitWildcard(w *Wildcard) error
}

// LvalueVisitor visits the kinds of Lvalue.
type LvalueVisitor interface {
	VisitAmbiguousName(e *AmbiguousName) error
	VisitLocalVariableAccess(e *LocalVariableAccess) error
	VisitFieldAccess(e *FieldAccess) error
	VisitFieldAccessExpression(e *FieldAccessExpression) error
	VisitSuperclassFieldAccessExpression(e *SuperclassFieldAccessExpression) error
	VisitArrayAccessExpression(e *ArrayAccessExpression) error
	VisitParenthesizedExpression(e *ParenthesizedExpression) error
}

// RvalueVisitor visits the kinds of Rvalue.
type RvalueVisitor interface {
	LvalueVisitor

	VisitArrayLength(e *ArrayLength) error
	VisitThisReference(e *ThisReference) error
	VisitQualifiedThisReference(e *QualifiedThisReference) error
	VisitClassLiteral(e *ClassLiteral) error
	VisitAssignment(e *Assignment) error
	VisitConditionalExpression(e *ConditionalExpression) error
	VisitCrement(e *Crement) error
	VisitUnaryOperation(e *UnaryOperation) error
	VisitInstanceof(e *Instanceof) error
	VisitBinaryOperation(e *BinaryOperation) error
	VisitCast(e *Cast) error
	VisitMethodInvocation(e *MethodInvocation) error
	VisitSuperclassMethodInvocation(e *SuperclassMethodInvocation) error
	VisitNewClassInstance(e *NewClassInstance) error
	VisitNewAnonymousClassInstance(e *NewAnonymousClassInstance) error
	VisitParameterAccess(e *ParameterAccess) error
	VisitNewArray(e *NewArray) error
	VisitNewInitializedArray(e *NewInitializedArray) error
	VisitIntegerLiteral(e *IntegerLiteral) error
	VisitFloatingPointLiteral(e *FloatingPointLiteral) error
	VisitBooleanLiteral(e *BooleanLiteral) error
	VisitCharacterLiteral(e *CharacterLiteral) error
	VisitStringLiteral(e *StringLiteral) error
	VisitNullLiteral(e *NullLiteral) error
	VisitSimpleConstant(e *SimpleConstant) error
}

// AtomVisitor visits every kind of Atom. Constructor invocations are atoms
// too, but only visitors that also implement BlockStatementVisitor can
// receive them.
type AtomVisitor interface {
	TypeVisitor
	RvalueVisitor

	VisitPackage(p *Package) error
}

// ElementValueVisitor visits annotation element values.
type ElementValueVisitor interface {
	VisitRvalueElement(rv Rvalue) error
	VisitAnnotationElement(a Annotation) error
	VisitElementValueArrayInitializer(e *ElementValueArrayInitializer) error
}

// AnnotationVisitor visits the kinds of Annotation.
type AnnotationVisitor interface {
	VisitMarkerAnnotation(a *MarkerAnnotation) error
	VisitSingleElementAnnotation(a *SingleElementAnnotation) error
	VisitNormalAnnotation(a *NormalAnnotation) error
}

// ImportVisitor visits the kinds of ImportDeclaration.
type ImportVisitor interface {
	VisitSingleTypeImportDeclaration(id *SingleTypeImportDeclaration) error
	VisitTypeImportOnDemandDeclaration(id *TypeImportOnDemandDeclaration) error
	VisitSingleStaticImportDeclaration(id *SingleStaticImportDeclaration) error
	VisitStaticImportOnDemandDeclaration(id *StaticImportOnDemandDeclaration) error
}

// BlockStatementVisitor visits the kinds of BlockStatement, including the
// field declarations and initializers that appear in class bodies and the
// explicit constructor invocations that open constructor bodies.
type BlockStatementVisitor interface {
	VisitInitializer(i *Initializer) error
	VisitFieldDeclaration(f *FieldDeclaration) error

	VisitBlock(b *Block) error
	VisitLabeledStatement(s *LabeledStatement) error
	VisitExpressionStatement(s *ExpressionStatement) error
	VisitLocalClassDeclarationStatement(s *LocalClassDeclarationStatement) error
	VisitIfStatement(s *IfStatement) error
	VisitForStatement(s *ForStatement) error
	VisitForEachStatement(s *ForEachStatement) error
	VisitWhileStatement(s *WhileStatement) error
	VisitDoStatement(s *DoStatement) error
	VisitTryStatement(s *TryStatement) error
	VisitSwitchStatement(s *SwitchStatement) error
	VisitSynchronizedStatement(s *SynchronizedStatement) error
	VisitLocalVariableDeclarationStatement(s *LocalVariableDeclarationStatement) error
	VisitReturnStatement(s *ReturnStatement) error
	VisitThrowStatement(s *ThrowStatement) error
	VisitBreakStatement(s *BreakStatement) error
	VisitContinueStatement(s *ContinueStatement) error
	VisitAssertStatement(s *AssertStatement) error
	VisitEmptyStatement(s *EmptyStatement) error

	VisitAlternateConstructorInvocation(ci *AlternateConstructorInvocation) error
	VisitSuperConstructorInvocation(ci *SuperConstructorInvocation) error
}

// TypeDeclarationVisitor visits the kinds of TypeDeclaration.
type TypeDeclarationVisitor interface {
	VisitAnonymousClassDeclaration(d *AnonymousClassDeclaration) error
	VisitLocalClassDeclaration(d *LocalClassDeclaration) error
	VisitMemberClassDeclaration(d *MemberClassDeclaration) error
	VisitMemberEnumDeclaration(d *MemberEnumDeclaration) error
	VisitPackageMemberClassDeclaration(d *PackageMemberClassDeclaration) error
	VisitPackageMemberEnumDeclaration(d *PackageMemberEnumDeclaration) error
	VisitEnumConstant(d *EnumConstant) error
	VisitMemberInterfaceDeclaration(d *MemberInterfaceDeclaration) error
	VisitMemberAnnotationTypeDeclaration(d *MemberAnnotationTypeDeclaration) error
	VisitPackageMemberInterfaceDeclaration(d *PackageMemberInterfaceDeclaration) error
	VisitPackageMemberAnnotationTypeDeclaration(d *PackageMemberAnnotationTypeDeclaration) error
}

// FunctionDeclaratorVisitor visits methods and constructors.
type FunctionDeclaratorVisitor interface {
	VisitMethodDeclarator(m *MethodDeclarator) error
	VisitConstructorDeclarator(c *ConstructorDeclarator) error
}

// TypeBodyDeclarationVisitor visits everything that may appear in a type
// body.
type TypeBodyDeclarationVisitor interface {
	FunctionDeclaratorVisitor

	VisitInitializer(i *Initializer) error
	VisitFieldDeclaration(f *FieldDeclaration) error
	VisitMemberClassDeclaration(d *MemberClassDeclaration) error
	VisitMemberEnumDeclaration(d *MemberEnumDeclaration) error
	VisitMemberInterfaceDeclaration(d *MemberInterfaceDeclaration) error
	VisitMemberAnnotationTypeDeclaration(d *MemberAnnotationTypeDeclaration) error
}
