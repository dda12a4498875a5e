package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/ono/ast"
	"github.com/dhamidi/ono/compiler"
	"github.com/dhamidi/ono/format"
	"github.com/spf13/cobra"
)

func newExampleCmd() *cobra.Command {
	var exampleFormat string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Build a sample compilation unit in memory and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := buildExampleUnit()
			if err != nil {
				return fmt.Errorf("build example unit: %w", err)
			}

			driver := compiler.NewDriver()
			verify := compiler.PassFunc{
				PassName: "verify-scopes",
				Func: func(u compiler.Unit) error {
					return ast.VerifyScopes(u.(*ast.CompilationUnit))
				},
			}
			if err := driver.Run([]compiler.Unit{unit}, []compiler.Pass{verify}); err != nil {
				return fmt.Errorf("verify scopes: %w", err)
			}

			switch exampleFormat {
			case "json":
				enc := format.NewJSONEncoder(os.Stdout)
				if err := enc.Encode(unit); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
			case "yaml":
				enc := format.NewYAMLEncoder(os.Stdout)
				if err := enc.Encode(unit); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
			case "java":
				enc := format.NewJavaEncoder(os.Stdout)
				if err := enc.Encode(unit); err != nil {
					return fmt.Errorf("encode java: %w", err)
				}
			case "line":
				enc := format.NewLineEncoder(os.Stdout)
				if err := enc.Encode(unit); err != nil {
					return fmt.Errorf("encode line: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s (expected json, yaml, java, or line)", exampleFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&exampleFormat, "format", "f", "java", "output format (json, yaml, java, or line)")

	return cmd
}

// buildExampleUnit assembles a compilation unit the way a parser would,
// covering the constructs the unparser and the summary encoders know
// about: an interface, a class implementing it with a constructor,
// methods, a member class, an anonymous class, and an enum.
func buildExampleUnit() (*ast.CompilationUnit, error) {
	file := "Greeter.java"
	at := func(line int) ast.Located { return ast.At(compiler.At(file, line, 1)) }
	refType := func(line int, identifiers ...string) *ast.ReferenceType {
		return ast.NewReferenceType(at(line), identifiers, nil)
	}

	unit := ast.NewCompilationUnit(file)
	unit.SetPackageDeclaration(ast.NewPackageDeclaration(at(1), "demo"))
	unit.AddImportDeclaration(ast.NewSingleTypeImportDeclaration(at(3), []string{"java", "util", "Locale"}))

	// public interface Greeting { String greet(); }
	greeting, err := ast.NewPackageMemberInterfaceDeclaration(
		at(5), "", ast.NewModifiers(ast.ModPublic), "Greeting", nil, nil)
	if err != nil {
		return nil, err
	}
	greeting.AddDeclaredMethod(ast.NewMethodDeclarator(
		at(6), "", ast.NewModifiers(0), nil,
		refType(6, "String"), "greet",
		ast.NewFormalParameters(at(6), nil, false), nil, nil))
	unit.AddPackageMemberTypeDeclaration(greeting)

	greeter, err := buildGreeterClass(at, refType)
	if err != nil {
		return nil, err
	}
	unit.AddPackageMemberTypeDeclaration(greeter)

	// public enum Tone { FORMAL, CASUAL }
	tone, err := ast.NewPackageMemberEnumDeclaration(
		at(40), "", ast.NewModifiers(ast.ModPublic), "Tone", nil)
	if err != nil {
		return nil, err
	}
	tone.AddConstant(ast.NewEnumConstant(at(41), "", nil, "FORMAL", nil))
	tone.AddConstant(ast.NewEnumConstant(at(42), "", nil, "CASUAL", nil))
	unit.AddPackageMemberTypeDeclaration(tone)

	return unit, nil
}

func buildGreeterClass(
	at func(line int) ast.Located,
	refType func(line int, identifiers ...string) *ast.ReferenceType,
) (*ast.PackageMemberClassDeclaration, error) {
	// public class Greeter implements Greeting
	greeter, err := ast.NewPackageMemberClassDeclaration(
		at(9), "", ast.NewModifiers(ast.ModPublic), "Greeter", nil,
		nil, []ast.Type{refType(9, "Greeting")})
	if err != nil {
		return nil, err
	}

	// private final String name;
	greeter.AddFieldDeclaration(ast.NewFieldDeclaration(
		at(10), "", ast.NewModifiers(ast.ModPrivate|ast.ModFinal),
		refType(10, "String"),
		[]*ast.VariableDeclarator{ast.NewVariableDeclarator(at(10), "name", 0, nil)}))

	// public Greeter(String name) { this.name = name; }
	assignName, err := ast.NewExpressionStatement(ast.NewAssignment(
		at(13),
		ast.NewFieldAccessExpression(at(13), ast.NewThisReference(at(13)), "name"),
		"=",
		ast.NewAmbiguousName(at(13), []string{"name"})))
	if err != nil {
		return nil, err
	}
	greeter.AddConstructor(ast.NewConstructorDeclarator(
		at(12), "", ast.NewModifiers(ast.ModPublic),
		ast.NewFormalParameters(at(12), []*ast.FormalParameter{
			ast.NewFormalParameter(at(12), false, refType(12, "String"), "name"),
		}, false),
		nil, nil,
		[]ast.BlockStatement{assignName}))

	// public String greet() { return "Hello, " + name; }
	greeter.AddDeclaredMethod(ast.NewMethodDeclarator(
		at(16), "", ast.NewModifiers(ast.ModPublic), nil,
		refType(16, "String"), "greet",
		ast.NewFormalParameters(at(16), nil, false), nil,
		[]ast.BlockStatement{ast.NewReturnStatement(at(17), ast.NewBinaryOperation(
			at(17),
			ast.NewStringLiteral(at(17), `"Hello, "`),
			"+",
			ast.NewAmbiguousName(at(17), []string{"name"})))}))

	// public Runnable greeter() { return new Runnable() { ... }; }
	anonymous := ast.NewAnonymousClassDeclaration(at(21), refType(21, "Runnable"))
	printGreeting, err := ast.NewExpressionStatement(ast.NewMethodInvocation(
		at(23),
		ast.NewAmbiguousName(at(23), []string{"System", "out"}),
		"println",
		[]ast.Rvalue{ast.NewMethodInvocation(at(23), nil, "greet", nil)}))
	if err != nil {
		return nil, err
	}
	anonymous.AddDeclaredMethod(ast.NewMethodDeclarator(
		at(22), "", ast.NewModifiers(ast.ModPublic), nil,
		ast.NewBasicType(at(22), ast.PrimitiveVoid), "run",
		ast.NewFormalParameters(at(22), nil, false), nil,
		[]ast.BlockStatement{printGreeting}))
	greeter.AddDeclaredMethod(ast.NewMethodDeclarator(
		at(20), "", ast.NewModifiers(ast.ModPublic), nil,
		refType(20, "Runnable"), "greeter",
		ast.NewFormalParameters(at(20), nil, false), nil,
		[]ast.BlockStatement{ast.NewReturnStatement(at(21),
			ast.NewNewAnonymousClassInstance(at(21), nil, anonymous, nil))}))

	// public static class Builder { ... }
	builder := ast.NewMemberClassDeclaration(
		at(28), "", ast.NewModifiers(ast.ModPublic|ast.ModStatic), "Builder",
		nil, nil, nil)
	builder.AddFieldDeclaration(ast.NewFieldDeclaration(
		at(29), "", ast.NewModifiers(ast.ModPrivate),
		refType(29, "String"),
		[]*ast.VariableDeclarator{ast.NewVariableDeclarator(at(29), "name", 0, nil)}))
	builder.AddDeclaredMethod(ast.NewMethodDeclarator(
		at(31), "", ast.NewModifiers(ast.ModPublic), nil,
		refType(31, "Greeter"), "build",
		ast.NewFormalParameters(at(31), nil, false), nil,
		[]ast.BlockStatement{ast.NewReturnStatement(at(32),
			ast.NewNewClassInstance(at(32), nil, refType(32, "Greeter"),
				[]ast.Rvalue{ast.NewAmbiguousName(at(32), []string{"name"})}))}))
	greeter.AddMemberTypeDeclaration(builder)

	return greeter, nil
}
