package ast

import "github.com/dhamidi/ono/compiler"

// CompilationUnit is the root of an abstract syntax tree: one parsed
// source file. It is the top of every scope chain; asking for its
// enclosing scope is a compiler bug.
type CompilationUnit struct {
	// FileName is empty for units not read from a file.
	FileName string

	PackageDeclaration *PackageDeclaration
	ImportDeclarations []ImportDeclaration

	packageMemberTypeDeclarations []PackageMemberTypeDeclaration
}

func NewCompilationUnit(fileName string) *CompilationUnit {
	return &CompilationUnit{FileName: fileName}
}

// UnitName implements compiler.Unit.
func (cu *CompilationUnit) UnitName() string {
	if cu.FileName == "" {
		return "(unnamed unit)"
	}
	return cu.FileName
}

// EnclosingScope implements Scope. A compilation unit has no enclosing
// scope; every scope chain ends here.
func (cu *CompilationUnit) EnclosingScope() Scope {
	compiler.Internalf("compilation unit %s has no enclosing scope", cu.UnitName())
	return nil
}

func (cu *CompilationUnit) enclosingScopeOrNil() Scope { return nil }

func (cu *CompilationUnit) SetPackageDeclaration(pd *PackageDeclaration) {
	cu.PackageDeclaration = pd
}

func (cu *CompilationUnit) AddImportDeclaration(id ImportDeclaration) {
	cu.ImportDeclarations = append(cu.ImportDeclarations, id)
}

// AddPackageMemberTypeDeclaration adds a top-level type and links it back
// to this unit.
func (cu *CompilationUnit) AddPackageMemberTypeDeclaration(pmtd PackageMemberTypeDeclaration) {
	pmtd.SetDeclaringCompilationUnit(cu)
	cu.packageMemberTypeDeclarations = append(cu.packageMemberTypeDeclarations, pmtd)
}

func (cu *CompilationUnit) PackageMemberTypeDeclarations() []PackageMemberTypeDeclaration {
	return cu.packageMemberTypeDeclarations
}

// PackageMemberTypeDeclaration returns the top-level type with the given
// simple name, or nil.
func (cu *CompilationUnit) PackageMemberTypeDeclaration(name string) PackageMemberTypeDeclaration {
	for _, pmtd := range cu.packageMemberTypeDeclarations {
		if pmtd.Name() == name {
			return pmtd
		}
	}
	return nil
}

// PackageName returns the declared package name, or "" for the default
// package.
func (cu *CompilationUnit) PackageName() string {
	if cu.PackageDeclaration == nil {
		return ""
	}
	return cu.PackageDeclaration.PackageName
}

// PackageDeclaration is the `package a.b.c;` directive of a compilation
// unit.
type PackageDeclaration struct {
	Located
	PackageName string
}

func NewPackageDeclaration(l Located, packageName string) *PackageDeclaration {
	return &PackageDeclaration{Located: l, PackageName: packageName}
}

func (pd *PackageDeclaration) String() string { return "package " + pd.PackageName + ";" }

// ImportDeclaration is one of the four kinds of import directive.
type ImportDeclaration interface {
	Locatable
	String() string
	AcceptImport(v ImportVisitor) error
}

// SingleTypeImportDeclaration is `import a.b.C;`.
type SingleTypeImportDeclaration struct {
	Located
	Identifiers []string
}

func NewSingleTypeImportDeclaration(l Located, identifiers []string) *SingleTypeImportDeclaration {
	return &SingleTypeImportDeclaration{Located: l, Identifiers: identifiers}
}

func (id *SingleTypeImportDeclaration) String() string {
	return "import " + joinIdentifiers(id.Identifiers) + ";"
}

func (id *SingleTypeImportDeclaration) AcceptImport(v ImportVisitor) error {
	return v.VisitSingleTypeImportDeclaration(id)
}

// TypeImportOnDemandDeclaration is `import a.b.*;`.
type TypeImportOnDemandDeclaration struct {
	Located
	Identifiers []string
}

func NewTypeImportOnDemandDeclaration(l Located, identifiers []string) *TypeImportOnDemandDeclaration {
	return &TypeImportOnDemandDeclaration{Located: l, Identifiers: identifiers}
}

func (id *TypeImportOnDemandDeclaration) String() string {
	return "import " + joinIdentifiers(id.Identifiers) + ".*;"
}

func (id *TypeImportOnDemandDeclaration) AcceptImport(v ImportVisitor) error {
	return v.VisitTypeImportOnDemandDeclaration(id)
}

// SingleStaticImportDeclaration is `import static a.b.C.member;`.
type SingleStaticImportDeclaration struct {
	Located
	Identifiers []string
}

func NewSingleStaticImportDeclaration(l Located, identifiers []string) *SingleStaticImportDeclaration {
	return &SingleStaticImportDeclaration{Located: l, Identifiers: identifiers}
}

func (id *SingleStaticImportDeclaration) String() string {
	return "import static " + joinIdentifiers(id.Identifiers) + ";"
}

func (id *SingleStaticImportDeclaration) AcceptImport(v ImportVisitor) error {
	return v.VisitSingleStaticImportDeclaration(id)
}

// StaticImportOnDemandDeclaration is `import static a.b.C.*;`.
type StaticImportOnDemandDeclaration struct {
	Located
	Identifiers []string
}

func NewStaticImportOnDemandDeclaration(l Located, identifiers []string) *StaticImportOnDemandDeclaration {
	return &StaticImportOnDemandDeclaration{Located: l, Identifiers: identifiers}
}

func (id *StaticImportOnDemandDeclaration) String() string {
	return "import static " + joinIdentifiers(id.Identifiers) + ".*;"
}

func (id *StaticImportOnDemandDeclaration) AcceptImport(v ImportVisitor) error {
	return v.VisitStaticImportOnDemandDeclaration(id)
}
