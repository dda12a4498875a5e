package format

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/ono/ast"
)

func TestLineEncoder(t *testing.T) {
	unit := buildGreeterUnit(t)

	var buf bytes.Buffer
	if err := NewLineEncoder(&buf).Encode(unit); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := []string{
		"interface\tdemo.Greeting\tpublic",
		"method\tgreet\tString\t()\t",
		"class\tdemo.Greeter\tpublic",
		"field\tname\tString\tprivate final",
		"constructor\tdemo.Greeter\t(String name)\tpublic",
		"method\tgreet\tString\t()\tpublic",
		"enum\tdemo.Tone\tpublic",
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Encode produced lines %q, want %q", got, want)
	}
}

func TestLineEncoderDashesMultiWordKinds(t *testing.T) {
	unit := ast.NewCompilationUnit("Task.java")
	unit.SetPackageDeclaration(ast.NewPackageDeclaration(loc(1), "demo"))
	outer, err := ast.NewPackageMemberClassDeclaration(
		loc(2), "", ast.NewModifiers(ast.ModPublic), "Outer", nil, nil, nil)
	if err != nil {
		t.Fatalf("NewPackageMemberClassDeclaration: %v", err)
	}
	unit.AddPackageMemberTypeDeclaration(outer)

	anon := ast.NewAnonymousClassDeclaration(loc(3), refType(3, "Runnable"))
	instance := ast.NewNewAnonymousClassInstance(loc(3), nil, anon, nil)
	stmt, err := ast.NewExpressionStatement(instance)
	if err != nil {
		t.Fatalf("NewExpressionStatement: %v", err)
	}
	outer.AddDeclaredMethod(ast.NewMethodDeclarator(
		loc(3), "", ast.NewModifiers(ast.ModPublic), nil,
		ast.NewBasicType(loc(3), ast.PrimitiveVoid), "spin",
		ast.NewFormalParameters(loc(3), nil, false), nil,
		[]ast.BlockStatement{stmt}))

	var buf bytes.Buffer
	if err := NewLineEncoder(&buf).Encode(unit); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Nested types are not walked by the summary, only member types; the
	// anonymous kind shows up when the declaration is encoded directly.
	kind := strings.ReplaceAll(typeKind(anon), " ", "-")
	if kind != "anonymous-class" {
		t.Errorf("typeKind rendered %q, want %q", kind, "anonymous-class")
	}
	if got := buf.String(); !strings.HasPrefix(got, "class\tdemo.Outer\tpublic\n") {
		t.Errorf("Encode produced %q, want class line first", got)
	}
}

func TestJSONEncoder(t *testing.T) {
	unit := buildGreeterUnit(t)

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(unit); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var d unitData
	if err := json.Unmarshal(buf.Bytes(), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	checkGreeterUnitData(t, d)
}

func TestYAMLEncoder(t *testing.T) {
	unit := buildGreeterUnit(t)

	var buf bytes.Buffer
	if err := NewYAMLEncoder(&buf).Encode(unit); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var d unitData
	if err := yaml.Unmarshal(buf.Bytes(), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	checkGreeterUnitData(t, d)
}

func checkGreeterUnitData(t *testing.T, d unitData) {
	t.Helper()

	if d.File != "Greeter.java" {
		t.Errorf("File = %q, want %q", d.File, "Greeter.java")
	}
	if d.Package != "demo" {
		t.Errorf("Package = %q, want %q", d.Package, "demo")
	}
	if want := []string{"import java.util.Locale;"}; !reflect.DeepEqual(d.Imports, want) {
		t.Errorf("Imports = %q, want %q", d.Imports, want)
	}
	if len(d.Types) != 3 {
		t.Fatalf("len(Types) = %d, want 3", len(d.Types))
	}

	greeting := d.Types[0]
	if greeting.Kind != "interface" || greeting.ClassName != "demo.Greeting" {
		t.Errorf("Types[0] = %s %s, want interface demo.Greeting", greeting.Kind, greeting.ClassName)
	}
	if len(greeting.Methods) != 1 || greeting.Methods[0].Name != "greet" {
		t.Errorf("Greeting.Methods = %+v, want single greet", greeting.Methods)
	}

	greeter := d.Types[1]
	if greeter.Kind != "class" || greeter.Name != "Greeter" {
		t.Errorf("Types[1] = %s %s, want class Greeter", greeter.Kind, greeter.Name)
	}
	if want := []string{"Greeting"}; !reflect.DeepEqual(greeter.Implements, want) {
		t.Errorf("Greeter.Implements = %q, want %q", greeter.Implements, want)
	}
	if len(greeter.Fields) != 1 || greeter.Fields[0] != (fieldData{
		Name: "name", Type: "String", Modifiers: "private final",
	}) {
		t.Errorf("Greeter.Fields = %+v, want the name field", greeter.Fields)
	}
	if len(greeter.Constructors) != 1 {
		t.Fatalf("len(Greeter.Constructors) = %d, want 1", len(greeter.Constructors))
	}
	ctor := greeter.Constructors[0]
	if want := []string{"String name"}; !reflect.DeepEqual(ctor.Parameters, want) {
		t.Errorf("constructor Parameters = %q, want %q", ctor.Parameters, want)
	}
	if ctor.Modifiers != "public" {
		t.Errorf("constructor Modifiers = %q, want %q", ctor.Modifiers, "public")
	}
	if len(greeter.Methods) != 1 || greeter.Methods[0].ReturnType != "String" {
		t.Errorf("Greeter.Methods = %+v, want single String greet", greeter.Methods)
	}

	tone := d.Types[2]
	if tone.Kind != "enum" || tone.ClassName != "demo.Tone" {
		t.Errorf("Types[2] = %s %s, want enum demo.Tone", tone.Kind, tone.ClassName)
	}
	if want := []string{"FORMAL", "CASUAL"}; !reflect.DeepEqual(tone.Constants, want) {
		t.Errorf("Tone.Constants = %q, want %q", tone.Constants, want)
	}
}

// A class that never declares a constructor still lists no constructors
// here: the synthesized default belongs to compilation, not to the source
// summary.
func TestSummarySkipsSynthesizedConstructor(t *testing.T) {
	unit := ast.NewCompilationUnit("Empty.java")
	unit.SetPackageDeclaration(ast.NewPackageDeclaration(loc(1), "demo"))
	empty, err := ast.NewPackageMemberClassDeclaration(
		loc(2), "", ast.NewModifiers(ast.ModPublic), "Empty", nil, nil, nil)
	if err != nil {
		t.Fatalf("NewPackageMemberClassDeclaration: %v", err)
	}
	unit.AddPackageMemberTypeDeclaration(empty)

	if got := empty.ConstructorDeclarations(); len(got) != 1 {
		t.Fatalf("ConstructorDeclarations() = %d entries, want synthesized default", len(got))
	}
	d := buildUnitData(unit)
	if got := d.Types[0].Constructors; len(got) != 0 {
		t.Errorf("summary Constructors = %+v, want none", got)
	}
}

func TestSummaryMasksVarargsBit(t *testing.T) {
	unit := ast.NewCompilationUnit("Log.java")
	unit.SetPackageDeclaration(ast.NewPackageDeclaration(loc(1), "demo"))
	log, err := ast.NewPackageMemberClassDeclaration(
		loc(2), "", ast.NewModifiers(ast.ModPublic), "Log", nil, nil, nil)
	if err != nil {
		t.Fatalf("NewPackageMemberClassDeclaration: %v", err)
	}
	unit.AddPackageMemberTypeDeclaration(log)

	log.AddDeclaredMethod(ast.NewMethodDeclarator(
		loc(3), "", ast.NewModifiers(ast.ModPublic|ast.ModStatic), nil,
		ast.NewBasicType(loc(3), ast.PrimitiveVoid), "printf",
		ast.NewFormalParameters(loc(3), []*ast.FormalParameter{
			ast.NewFormalParameter(loc(3), false, refType(3, "String"), "fmt"),
			ast.NewFormalParameter(loc(3), false,
				ast.NewArrayType(refType(3, "Object")), "args"),
		}, true),
		nil, []ast.BlockStatement{}))

	d := buildUnitData(unit)
	m := d.Types[0].Methods[0]
	if m.Modifiers != "public static" {
		t.Errorf("Modifiers = %q, want %q", m.Modifiers, "public static")
	}
}
