package main

import (
	"errors"
	"fmt"
	"go/ast"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/fatih/structtag"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

const (
	DebugMapFieldTag = "debugmap"
	BeanFieldTag     = "bean"

	helpersPkg  = "github.com/limz/beanfixture/helpers"
	defaultsPkg = "github.com/creasty/defaults"

	// Type categories for debug code generation
	typeCategoryPrimitive = "primitive"
	typeCategoryPointer   = "pointer"
	typeCategorySlice     = "slice"
	typeCategoryMap       = "map"
	typeCategoryComplex   = "complex"
)

// accessMode says which accessors and options a field gets.
type accessMode string

const (
	// modeOptions is the mode of exported fields without a bean tag.
	modeOptions   accessMode = "options"
	modeReadWrite accessMode = "rw"
	modeReadOnly  accessMode = "ro"
	modeSkip      accessMode = "skip"
)

var errNoStructs = errors.New("no structs found")

// target is a parsed file together with the struct types to generate for.
type target struct {
	file     *ast.File
	specs    []*ast.TypeSpec
	resolver *ImportResolver
}

// beanField is a struct field that takes part in generation.
type beanField struct {
	name     string
	expr     ast.Expr
	mode     accessMode
	debugTag string
}

// StructConfig describes the struct currently being generated for.
type StructConfig struct {
	ReceiverId     string
	OptTypeName    string
	TargetTypeName string
	StructRef      []jen.Code
	StructName     string
	UsePrefix      bool
}

// prefix returns the struct name if UsePrefix is true, otherwise empty string
func (c StructConfig) prefix() string {
	if c.UsePrefix {
		return c.StructName
	}
	return ""
}

// Generator renders accessors, functional options and debug helpers for
// struct types.
type Generator struct {
	// PackageName is the package clause of the generated file.
	PackageName string
	// PackagePath is the import path of the generated file, if known.
	PackagePath          string
	SensitiveNameMatches []string
	UsePrefix            bool
	Logger               *zap.Logger
}

func (g *Generator) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

// loadTargets parses the package in dir and returns every file that
// declares one of structNames.
func loadTargets(dir string, structNames []string) (*packages.Package, []target, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, nil, fmt.Errorf("load %s: expected one package, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, nil, fmt.Errorf("load %s: %v", dir, pkg.Errors[0])
	}

	filter := make(map[string]struct{}, len(structNames))
	for _, name := range structNames {
		filter[name] = struct{}{}
	}

	targets := make([]target, 0)
	for _, f := range pkg.Syntax {
		specs := findStructDefsAST(f, filter)
		if len(specs) == 0 {
			continue
		}
		targets = append(targets, target{file: f, specs: specs, resolver: NewImportResolver(f)})
	}
	if len(targets) == 0 {
		return nil, nil, errNoStructs
	}
	return pkg, targets, nil
}

// outputPackage returns the name and path of the package already living in
// the directory of outpath, or fallback when there is none.
func outputPackage(outpath string, fallback *packages.Package) (string, string) {
	cfg := &packages.Config{Mode: packages.NeedName, Dir: filepath.Dir(outpath)}
	pkgs, err := packages.Load(cfg, ".")
	if err == nil && len(pkgs) == 1 && len(pkgs[0].Errors) == 0 && pkgs[0].Name != "" {
		return pkgs[0].Name, pkgs[0].PkgPath
	}
	return fallback.Name, fallback.PkgPath
}

// findStructDefsAST finds struct type definitions in an AST file that match the given names.
// It returns a slice of *ast.TypeSpec for each matching struct type.
func findStructDefsAST(file *ast.File, names map[string]struct{}) []*ast.TypeSpec {
	found := make([]*ast.TypeSpec, 0)
	ast.Inspect(file, func(node ast.Node) bool {
		ts, ok := node.(*ast.TypeSpec)
		if !ok {
			return true
		}

		if ts.Name == nil {
			return true
		}

		if _, ok := names[ts.Name.Name]; !ok {
			return false
		}

		if _, isStruct := ts.Type.(*ast.StructType); isStruct {
			found = append(found, ts)
		}

		return false
	})

	return found
}

// ImportResolver maps package names to their full import paths
type ImportResolver struct {
	pkgToPath map[string]string
}

// NewImportResolver creates an ImportResolver from a file's imports.
// The resolver maps package names to their full import paths, handling both
// standard imports and aliased imports.
func NewImportResolver(file *ast.File) *ImportResolver {
	resolver := &ImportResolver{pkgToPath: make(map[string]string)}
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)

		var pkgName string
		if imp.Name != nil {
			pkgName = imp.Name.Name
		} else {
			// "database/sql" → "sql"
			pkgName = filepath.Base(path)
		}

		resolver.pkgToPath[pkgName] = path
	}
	return resolver
}

// Resolve returns the full import path for a package name.
// For example, "sql" might resolve to "database/sql".
func (r *ImportResolver) Resolve(pkgName string) string {
	if path, ok := r.pkgToPath[pkgName]; ok {
		return path
	}
	return pkgName
}

// parseStructTag parses a struct field tag and returns the tag for the given key.
// Returns an error if the tag is missing or cannot be parsed.
func parseStructTag(field *ast.Field, tagKey string) (*structtag.Tag, error) {
	if field.Tag == nil {
		return nil, fmt.Errorf("missing tag")
	}
	// field.Tag.Value is like `debugmap:"visible"` (includes backticks)
	tagStr := strings.Trim(field.Tag.Value, "`")
	tags, err := structtag.Parse(tagStr)
	if err != nil {
		return nil, err
	}
	return tags.Get(tagKey)
}

// beanFields returns the fields of st that take part in generation, in
// declaration order.
func beanFields(st *ast.StructType, typeName string) ([]beanField, error) {
	fields := make([]beanField, 0, len(st.Fields.List))
	for _, field := range st.Fields.List {
		// Skip anonymous fields
		if field.Names == nil {
			continue
		}

		for _, name := range field.Names {
			mode, err := fieldMode(field, name)
			if err != nil {
				return nil, fmt.Errorf("field %s in type %s: %w", name.Name, typeName, err)
			}
			if mode == "" {
				continue
			}

			debugTag, err := parseStructTag(field, DebugMapFieldTag)
			if err != nil {
				return nil, fmt.Errorf("missing debugmap tag on field %s in type %s", name.Name, typeName)
			}

			fields = append(fields, beanField{
				name:     name.Name,
				expr:     field.Type,
				mode:     mode,
				debugTag: debugTag.Name,
			})
		}
	}
	return fields, nil
}

// fieldMode returns the access mode of a field, or "" when the field is
// left out entirely.
func fieldMode(field *ast.Field, name *ast.Ident) (accessMode, error) {
	tag, err := parseStructTag(field, BeanFieldTag)
	if err != nil {
		if name.IsExported() {
			return modeOptions, nil
		}
		return "", nil
	}

	mode := accessMode(tag.Name)
	switch mode {
	case modeReadWrite, modeReadOnly:
		if name.IsExported() {
			return "", fmt.Errorf("exported field cannot have %q accessors", mode)
		}
		return mode, nil
	case modeSkip:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown value '%s' for bean tag", tag.Name)
	}
}

// Generate renders code for every target into w.
func (g *Generator) Generate(targets []target, w io.Writer) error {
	buf := jen.NewFilePathName(g.PackagePath, g.PackageName)
	buf.PackageComment("Code generated by github.com/limz/beanfixture. DO NOT EDIT.")

	for _, t := range targets {
		for _, ts := range t.specs {
			if err := g.generateStruct(buf, ts, t.resolver); err != nil {
				return err
			}
		}
	}

	return buf.Render(w)
}

func (g *Generator) generateStruct(buf *jen.File, ts *ast.TypeSpec, resolver *ImportResolver) error {
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return errors.New("type is not a struct")
	}

	structName := ts.Name.Name
	fields, err := beanFields(st, structName)
	if err != nil {
		return err
	}

	c := StructConfig{
		ReceiverId:     strings.ToLower(string(structName[0])),
		OptTypeName:    fmt.Sprintf("%sOption", structName),
		TargetTypeName: toTitle(structName),
		StructRef:      []jen.Code{jen.Id(structName)},
		StructName:     structName,
		UsePrefix:      g.UsePrefix,
	}
	g.logger().Debug("generating struct", zap.String("struct", structName), zap.Int("fields", len(fields)))

	writeOptionTypeAST(buf, c)
	writeNewXWithOptionsAST(buf, c)
	writeNewXWithOptionsAndDefaultsAST(buf, c)
	writeToOptionAST(buf, fields, c)
	if err := writeDebugMapAST(buf, fields, c, g.SensitiveNameMatches); err != nil {
		return err
	}
	writeXWithOptionsAST(buf, c)
	writeWithOptionsAST(buf, c)

	for _, f := range fields {
		fieldType := astTypeToJenCode(f.expr, resolver)
		switch f.mode {
		case modeReadWrite:
			writeGetterAST(buf, f.name, fieldType, c)
			writeSetterAST(buf, f.name, fieldType, c)
			writeFieldOptsAST(buf, f, fieldType, c, resolver)
		case modeReadOnly:
			writeGetterAST(buf, f.name, fieldType, c)
		case modeOptions:
			writeFieldOptsAST(buf, f, fieldType, c, resolver)
		}
	}
	return nil
}

func writeOptionTypeAST(buf *jen.File, c StructConfig) {
	buf.Type().Id(c.OptTypeName).Func().Params(jen.Id(c.ReceiverId).Op("*").Add(c.StructRef...))
}

func writeNewXWithOptionsAST(buf *jen.File, c StructConfig) {
	newFuncName := fmt.Sprintf("New%sWithOptions", c.TargetTypeName)
	buf.Comment(fmt.Sprintf("%s creates a new %s with the passed in options set", newFuncName, c.StructName))
	buf.Func().Id(newFuncName).Params(
		jen.Id("opts").Op("...").Id(c.OptTypeName),
	).Op("*").Add(c.StructRef...).BlockFunc(func(grp *jen.Group) {
		grp.Id(c.ReceiverId).Op(":=").Op("&").Add(c.StructRef...).Block()
		applyOptions(c.ReceiverId)(grp)
	})
}

func writeNewXWithOptionsAndDefaultsAST(buf *jen.File, c StructConfig) {
	newFuncName := fmt.Sprintf("New%sWithOptionsAndDefaults", c.TargetTypeName)
	buf.Comment(fmt.Sprintf("%s creates a new %s with the passed in options set starting from the defaults", newFuncName, c.StructName))
	buf.Func().Id(newFuncName).Params(
		jen.Id("opts").Op("...").Id(c.OptTypeName),
	).Op("*").Add(c.StructRef...).BlockFunc(func(grp *jen.Group) {
		grp.Id(c.ReceiverId).Op(":=").Op("&").Add(c.StructRef...).Block()
		grp.Qual(defaultsPkg, "MustSet").Call(jen.Id(c.ReceiverId))
		applyOptions(c.ReceiverId)(grp)
	})
}

func writeToOptionAST(buf *jen.File, fields []beanField, c StructConfig) {
	newFuncName := "ToOption"

	buf.Comment(fmt.Sprintf("%s returns a new %s that sets the values from the passed in %s", newFuncName, c.OptTypeName, c.StructName))
	buf.Func().Params(jen.Id(c.ReceiverId).Op("*").Id(c.StructName)).Id(newFuncName).Params().Id(c.OptTypeName).BlockFunc(func(grp *jen.Group) {
		grp.Return(jen.Func().Params(jen.Id("to").Op("*").Id(c.StructName)).BlockFunc(func(retGrp *jen.Group) {
			for _, f := range fields {
				retGrp.Id("to").Op(".").Id(f.name).Op("=").Id(c.ReceiverId).Op(".").Id(f.name)
			}
		}))
	})
}

func writeDebugMapAST(buf *jen.File, fields []beanField, c StructConfig, sensitiveNameMatches []string) error {
	newFuncName := "DebugMap"

	var genErr error
	buf.Comment(fmt.Sprintf("%s returns a map form of %s for debugging", newFuncName, c.TargetTypeName))
	buf.Func().Params(jen.Id(c.ReceiverId).Op("*").Id(c.StructName)).Id(newFuncName).Params().Id("map[string]any").BlockFunc(func(grp *jen.Group) {
		mapId := "debugMap"
		grp.Id(mapId).Op(":=").Map(jen.String()).Any().Values()

		for _, f := range fields {
			if err := processDebugMapField(grp, f, c, sensitiveNameMatches, mapId); err != nil && genErr == nil {
				genErr = err
			}
		}

		grp.Return(jen.Id(mapId))
	})
	if genErr != nil {
		return genErr
	}

	writeFlatDebugMapAST(buf, c)
	return nil
}

// writeFlatDebugMapAST generates a FlatDebugMap method that flattens nested maps inline
func writeFlatDebugMapAST(buf *jen.File, c StructConfig) {
	buf.Comment(fmt.Sprintf("FlatDebugMap returns a flattened map form of %s for debugging", c.TargetTypeName))
	buf.Comment("Nested maps are flattened using dot notation (e.g., \"parent.child.field\")")
	buf.Func().Params(jen.Id(c.ReceiverId).Op("*").Id(c.StructName)).Id("FlatDebugMap").Params().Id("map[string]any").Block(
		jen.Return(jen.Qual(helpersPkg, "Flatten").Call(jen.Id(c.ReceiverId).Dot("DebugMap").Call())),
	)
}

// processDebugMapField processes a single field for debug map generation
func processDebugMapField(grp *jen.Group, f beanField, c StructConfig, sensitiveNameMatches []string, mapId string) error {
	switch f.debugTag {
	case "visible":
		if err := validateNotSensitive(f.name, c.TargetTypeName, sensitiveNameMatches); err != nil {
			return err
		}
		generateDebugCodeByCategory(grp, f.expr, c.ReceiverId, f.name, mapId, false)

	case "visible-format":
		if err := validateNotSensitive(f.name, c.TargetTypeName, sensitiveNameMatches); err != nil {
			return err
		}
		generateDebugCodeByCategory(grp, f.expr, c.ReceiverId, f.name, mapId, true)

	case "hidden":
		return nil

	case "sensitive":
		category := getTypeCategory(f.expr)
		generateDebugCodeForSensitive(grp, c.ReceiverId, f.name, f.expr, category, mapId)

	default:
		return fmt.Errorf("unknown value '%s' for debugmap tag on field %s in type %s", f.debugTag, f.name, c.TargetTypeName)
	}
	return nil
}

// validateNotSensitive checks that a field name doesn't contain sensitive patterns
func validateNotSensitive(fieldName, typeName string, sensitiveNameMatches []string) error {
	for _, sensitiveName := range sensitiveNameMatches {
		if sensitiveName == "" {
			continue
		}
		if strings.Contains(strings.ToLower(fieldName), strings.ToLower(sensitiveName)) {
			return fmt.Errorf("field %s in type %s must be marked as 'sensitive'", fieldName, typeName)
		}
	}
	return nil
}

// generateDebugCodeByCategory generates debug code based on type category
func generateDebugCodeByCategory(grp *jen.Group, fieldType ast.Expr, receiverId, fieldName, mapId string, useFormat bool) {
	category := getTypeCategory(fieldType)
	switch category {
	case typeCategoryPrimitive:
		generateDebugCodeForPrimitive(grp, receiverId, fieldName, fieldType, mapId)
	case typeCategoryPointer:
		generateDebugCodeForPointer(grp, receiverId, fieldName, mapId, useFormat)
	case typeCategorySlice:
		if useFormat {
			generateDebugCodeForSliceFormat(grp, receiverId, fieldName, fieldType, mapId)
		} else {
			generateDebugCodeForCollectionSize(grp, receiverId, fieldName, mapId, "slice")
		}
	case typeCategoryMap:
		if useFormat {
			generateDebugCodeForMapFormat(grp, receiverId, fieldName, mapId)
		} else {
			generateDebugCodeForCollectionSize(grp, receiverId, fieldName, mapId, "map")
		}
	default:
		grp.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Qual(helpersPkg, "DebugValue").Call(
			jen.Id(receiverId).Dot(fieldName),
			jen.Lit(useFormat),
		)
	}
}

// writeGetterAST generates a getter method for an unexported field
func writeGetterAST(buf *jen.File, fieldName string, fieldType jen.Code, c StructConfig) {
	getterName := toTitle(fieldName)
	buf.Comment(fmt.Sprintf("%s returns %s.%s", getterName, c.StructName, fieldName))
	buf.Func().Params(jen.Id(c.ReceiverId).Op("*").Add(c.StructRef...)).Id(getterName).Params().Add(fieldType).Block(
		jen.Return(jen.Id(c.ReceiverId).Dot(fieldName)),
	)
}

// writeSetterAST generates a setter method for an unexported field
func writeSetterAST(buf *jen.File, fieldName string, fieldType jen.Code, c StructConfig) {
	setterName := "Set" + toTitle(fieldName)
	buf.Comment(fmt.Sprintf("%s sets %s.%s", setterName, c.StructName, fieldName))
	buf.Func().Params(jen.Id(c.ReceiverId).Op("*").Add(c.StructRef...)).Id(setterName).Params(
		jen.Id(unexport(fieldName)).Add(fieldType),
	).Block(
		jen.Id(c.ReceiverId).Dot(fieldName).Op("=").Id(unexport(fieldName)),
	)
}

func writeXWithOptionsAST(buf *jen.File, c StructConfig) {
	withFuncName := fmt.Sprintf("%sWithOptions", c.TargetTypeName)
	buf.Comment(fmt.Sprintf("%s configures an existing %s with the passed in options set", withFuncName, c.StructName))
	buf.Func().Id(withFuncName).Params(
		jen.Id(c.ReceiverId).Op("*").Add(c.StructRef...), jen.Id("opts").Op("...").Id(c.OptTypeName),
	).Op("*").Add(c.StructRef...).BlockFunc(applyOptions(c.ReceiverId))
}

func writeWithOptionsAST(buf *jen.File, c StructConfig) {
	withFuncName := "WithOptions"
	buf.Comment(fmt.Sprintf("%s configures the receiver %s with the passed in options set", withFuncName, c.StructName))
	buf.Func().Params(jen.Id(c.ReceiverId).Op("*").Id(c.StructName)).Id(withFuncName).
		Params(jen.Id("opts").Op("...").Id(c.OptTypeName)).Op("*").Add(c.StructRef...).
		BlockFunc(applyOptions(c.ReceiverId))
}

// writeFieldOptsAST generates the option functions of a single field
func writeFieldOptsAST(buf *jen.File, f beanField, fieldType jen.Code, c StructConfig, resolver *ImportResolver) {
	switch {
	case isSliceOrArrayAST(f.expr):
		writeSliceWithOptAST(buf, f.name, f.expr, c, resolver)
		writeSetterOptAST(buf, "Set", f.name, fieldType, c)
	case isMapAST(f.expr):
		writeMapWithOptAST(buf, f.name, f.expr, c, resolver)
		writeSetterOptAST(buf, "Set", f.name, fieldType, c)
	default:
		writeSetterOptAST(buf, "With", f.name, fieldType, c)
	}
}

// writeSliceWithOptAST generates a With* method for slice fields using AST (appends)
func writeSliceWithOptAST(buf *jen.File, fieldName string, fieldTypeAST ast.Expr, c StructConfig, resolver *ImportResolver) {
	fieldFuncName := fmt.Sprintf("With%s%s", c.prefix(), toTitle(fieldName))
	buf.Comment(fmt.Sprintf("%s returns an option that can append to %s.%s", fieldFuncName, c.StructName, fieldName))

	var elemType jen.Code
	if arrayType, ok := fieldTypeAST.(*ast.ArrayType); ok {
		elemType = astTypeToJenCode(arrayType.Elt, resolver)
	} else {
		elemType = jen.Interface()
	}

	buf.Func().Id(fieldFuncName).Params(
		jen.Id(unexport(fieldName)).Add(elemType),
	).Id(c.OptTypeName).BlockFunc(func(grp *jen.Group) {
		grp.Return(
			jen.Func().Params(jen.Id(c.ReceiverId).Op("*").Add(c.StructRef...)).BlockFunc(func(grp2 *jen.Group) {
				grp2.Id(c.ReceiverId).Op(".").Id(fieldName).Op("=").Append(jen.Id(c.ReceiverId).Op(".").Id(fieldName), jen.Id(unexport(fieldName)))
			}),
		)
	})
}

// writeMapWithOptAST generates a With* method for map fields using AST (adds key-value)
func writeMapWithOptAST(buf *jen.File, fieldName string, fieldTypeAST ast.Expr, c StructConfig, resolver *ImportResolver) {
	fieldFuncName := fmt.Sprintf("With%s%s", c.prefix(), toTitle(fieldName))
	buf.Comment(fmt.Sprintf("%s returns an option that can add an entry to %s.%s", fieldFuncName, c.StructName, fieldName))

	var keyType, valueType jen.Code
	if mapType, ok := fieldTypeAST.(*ast.MapType); ok {
		keyType = astTypeToJenCode(mapType.Key, resolver)
		valueType = astTypeToJenCode(mapType.Value, resolver)
	} else {
		keyType = jen.Interface()
		valueType = jen.Interface()
	}
	mapType := astTypeToJenCode(fieldTypeAST, resolver)

	buf.Func().Id(fieldFuncName).Params(
		jen.Id("key").Add(keyType),
		jen.Id("value").Add(valueType),
	).Id(c.OptTypeName).BlockFunc(func(grp *jen.Group) {
		grp.Return(
			jen.Func().Params(jen.Id(c.ReceiverId).Op("*").Add(c.StructRef...)).BlockFunc(func(grp2 *jen.Group) {
				field := jen.Id(c.ReceiverId).Dot(fieldName)
				grp2.If(field.Clone().Op("==").Nil()).Block(
					field.Clone().Op("=").Make(mapType),
				)
				grp2.Add(field.Clone()).Index(jen.Id("key")).Op("=").Id("value")
			}),
		)
	})
}

// writeSetterOptAST generates a setter option function (used by slice, map, and standard setters)
func writeSetterOptAST(buf *jen.File, funcPrefix, fieldName string, fieldType jen.Code, c StructConfig) {
	fieldFuncName := fmt.Sprintf("%s%s%s", funcPrefix, c.prefix(), toTitle(fieldName))
	buf.Comment(fmt.Sprintf("%s returns an option that can set %s on a %s", fieldFuncName, toTitle(fieldName), c.StructName))

	buf.Func().Id(fieldFuncName).Params(
		jen.Id(unexport(fieldName)).Add(fieldType),
	).Id(c.OptTypeName).BlockFunc(func(grp *jen.Group) {
		grp.Return(
			jen.Func().Params(jen.Id(c.ReceiverId).Op("*").Add(c.StructRef...)).BlockFunc(func(grp2 *jen.Group) {
				grp2.Id(c.ReceiverId).Op(".").Id(fieldName).Op("=").Id(unexport(fieldName))
			}),
		)
	})
}

// isSliceOrArrayAST checks if an AST type is a slice or array
func isSliceOrArrayAST(t ast.Expr) bool {
	_, ok := t.(*ast.ArrayType)
	return ok
}

// isMapAST checks if an AST type is a map
func isMapAST(t ast.Expr) bool {
	_, ok := t.(*ast.MapType)
	return ok
}

// astTypeToJenCode converts an AST type expression to jen.Code for code generation.
// It handles basic types, pointers, selectors, arrays, maps, interfaces, and channels.
func astTypeToJenCode(expr ast.Expr, resolver *ImportResolver) jen.Code {
	switch t := expr.(type) {
	case *ast.Ident:
		return jen.Id(t.Name)
	case *ast.StarExpr:
		return jen.Op("*").Add(astTypeToJenCode(t.X, resolver))
	case *ast.SelectorExpr:
		if pkg, ok := t.X.(*ast.Ident); ok {
			importPath := resolver.Resolve(pkg.Name)
			return jen.Qual(importPath, t.Sel.Name)
		}
		return jen.Interface()
	case *ast.ArrayType:
		// arrays are treated as slices
		return jen.Index().Add(astTypeToJenCode(t.Elt, resolver))
	case *ast.MapType:
		return jen.Map(astTypeToJenCode(t.Key, resolver)).Add(astTypeToJenCode(t.Value, resolver))
	case *ast.InterfaceType:
		return jen.Interface()
	case *ast.ChanType:
		switch t.Dir {
		case ast.SEND:
			return jen.Op("<-").Chan().Add(astTypeToJenCode(t.Value, resolver))
		case ast.RECV:
			return jen.Chan().Op("<-").Add(astTypeToJenCode(t.Value, resolver))
		default:
			return jen.Chan().Add(astTypeToJenCode(t.Value, resolver))
		}
	default:
		return jen.Interface()
	}
}

// getTypeCategory returns the category of a type for debug generation
func getTypeCategory(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		switch t.Name {
		case "string", "int", "int8", "int16", "int32", "int64",
			"uint", "uint8", "uint16", "uint32", "uint64",
			"bool", "float32", "float64":
			return typeCategoryPrimitive
		default:
			return typeCategoryComplex
		}
	case *ast.StarExpr:
		return typeCategoryPointer
	case *ast.ArrayType:
		if t.Len == nil {
			return typeCategorySlice
		}
		return "array"
	case *ast.MapType:
		return typeCategoryMap
	default:
		return typeCategoryComplex
	}
}

// isStringType checks if a type is a string
func isStringType(expr ast.Expr) bool {
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name == "string"
	}
	return false
}

// generateDebugCodeForPrimitive handles primitive types (string, int, bool, float)
func generateDebugCodeForPrimitive(grp *jen.Group, receiverId, fieldName string, fieldType ast.Expr, mapId string) {
	fieldAccess := jen.Id(receiverId).Dot(fieldName)

	if isStringType(fieldType) {
		grp.If(jen.Add(fieldAccess).Op("==").Lit("")).Block(
			jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Lit("(empty)"),
		).Else().Block(
			jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Add(fieldAccess),
		)
	} else {
		grp.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Add(fieldAccess)
	}
}

// generateDebugCodeForPointer handles pointer types. Non-nil pointers go
// through helpers.DebugValue so nested beans render as their own DebugMap.
func generateDebugCodeForPointer(grp *jen.Group, receiverId, fieldName, mapId string, useFormat bool) {
	fieldAccess := jen.Id(receiverId).Dot(fieldName)

	grp.If(jen.Add(fieldAccess).Op("==").Nil()).Block(
		jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Lit("nil"),
	).Else().Block(
		jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Qual(helpersPkg, "DebugValue").Call(fieldAccess, jen.Lit(useFormat)),
	)
}

// generateDebugCodeForSliceFormat generates code for slice with expanded values (visible-format tag)
func generateDebugCodeForSliceFormat(grp *jen.Group, receiverId, fieldName string, fieldType ast.Expr, mapId string) {
	fieldAccess := jen.Id(receiverId).Dot(fieldName)
	var elemType ast.Expr
	if arrayType, ok := fieldType.(*ast.ArrayType); ok {
		elemType = arrayType.Elt
	}
	debugVarName := "debug" + toTitle(fieldName)

	grp.If(jen.Add(fieldAccess).Op("==").Nil()).Block(
		jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Lit("nil"),
	).Else().Block(
		jen.Id(debugVarName).Op(":=").Make(jen.Index().Any(), jen.Lit(0), jen.Len(fieldAccess)),
		jen.For(jen.List(jen.Id("_"), jen.Id("v")).Op(":=").Range().Add(fieldAccess)).BlockFunc(func(forGrp *jen.Group) {
			if elemType != nil && isStringType(elemType) {
				forGrp.If(jen.Id("v").Op("==").Lit("")).Block(
					jen.Id(debugVarName).Op("=").Append(jen.Id(debugVarName), jen.Lit("(empty)")),
				).Else().Block(
					jen.Id(debugVarName).Op("=").Append(jen.Id(debugVarName), jen.Id("v")),
				)
			} else {
				forGrp.Id(debugVarName).Op("=").Append(jen.Id(debugVarName), jen.Id("v"))
			}
		}),
		jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Id(debugVarName),
	)
}

// generateDebugCodeForCollectionSize generates code for slice/map with size display
func generateDebugCodeForCollectionSize(grp *jen.Group, receiverId, fieldName, mapId, collectionType string) {
	fieldAccess := jen.Id(receiverId).Dot(fieldName)

	grp.If(jen.Add(fieldAccess).Op("==").Nil()).Block(
		jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Lit("nil"),
	).Else().Block(
		jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Qual("fmt", "Sprintf").Call(
			jen.Lit(fmt.Sprintf("(%s of size %%d)", collectionType)),
			jen.Len(fieldAccess),
		),
	)
}

// generateDebugCodeForMapFormat generates code for map with expanded values (visible-format tag)
func generateDebugCodeForMapFormat(grp *jen.Group, receiverId, fieldName, mapId string) {
	fieldAccess := jen.Id(receiverId).Dot(fieldName)

	grp.If(jen.Add(fieldAccess).Op("==").Nil()).Block(
		jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Lit("nil"),
	).Else().Block(
		jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Qual("fmt", "Sprintf").Call(
			jen.Lit("%v"),
			fieldAccess,
		),
	)
}

// generateDebugCodeForSensitive generates code for sensitive fields
func generateDebugCodeForSensitive(grp *jen.Group, receiverId, fieldName string, fieldType ast.Expr, category, mapId string) {
	fieldAccess := jen.Id(receiverId).Dot(fieldName)

	switch {
	case category == typeCategoryPointer:
		grp.If(jen.Add(fieldAccess).Op("==").Nil()).Block(
			jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Lit("nil"),
		).Else().Block(
			jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Lit("(sensitive)"),
		)
	case isStringType(fieldType):
		grp.If(jen.Add(fieldAccess).Op("==").Lit("")).Block(
			jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Lit("(empty)"),
		).Else().Block(
			jen.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Lit("(sensitive)"),
		)
	case category == typeCategoryComplex:
		grp.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Qual(helpersPkg, "SensitiveDebugValue").Call(fieldAccess)
	default:
		grp.Id(mapId).Index(jen.Lit(fieldName)).Op("=").Lit("(sensitive)")
	}
}

func applyOptions(receiverId string) func(grp *jen.Group) {
	return func(grp *jen.Group) {
		grp.For(jen.Id("_").Op(",").Id("o").Op(":=").Op("range").Id("opts")).Block(
			jen.Id("o").Params(jen.Id(receiverId)),
		)
		grp.Return(jen.Id(receiverId))
	}
}

func unexport(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// toTitle capitalizes the first letter of a string
func toTitle(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
