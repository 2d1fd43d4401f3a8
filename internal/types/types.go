// Package types defines the Source language's small closed type system.
package types

// DataType is the sum {Int32, Float32, String, Boolean, Void, Custom(name)}
// from spec.md §3. Values compare equal structurally, so DataType can be
// used directly as a map key and with ==.
type DataType struct {
	kind custom
	name string
}

type custom int

const (
	kindVoid custom = iota
	kindInt32
	kindFloat32
	kindString
	kindBoolean
	kindCustom
)

var (
	Void    = DataType{kind: kindVoid}
	Int32   = DataType{kind: kindInt32}
	Float32 = DataType{kind: kindFloat32}
	String  = DataType{kind: kindString}
	Boolean = DataType{kind: kindBoolean}
)

// Custom returns the Custom(name) variant for an unrecognized type name.
func Custom(name string) DataType {
	return DataType{kind: kindCustom, name: name}
}

// IsCustom reports whether d is a Custom(name) variant, returning its name.
func (d DataType) IsCustom() (string, bool) {
	if d.kind == kindCustom {
		return d.name, true
	}
	return "", false
}

// IsNumeric reports whether d is Int32 or Float32.
func (d DataType) IsNumeric() bool {
	return d.kind == kindInt32 || d.kind == kindFloat32
}

func (d DataType) String() string {
	switch d.kind {
	case kindVoid:
		return "Void"
	case kindInt32:
		return "Int32"
	case kindFloat32:
		return "Float32"
	case kindString:
		return "String"
	case kindBoolean:
		return "Boolean"
	case kindCustom:
		return d.name
	default:
		return "?"
	}
}

// builtinNames is the keyword match table for type names (spec.md §4.3).
var builtinNames = map[string]DataType{
	"Int32":   Int32,
	"Float32": Float32,
	"String":  String,
	"Boolean": Boolean,
	"Void":    Void,
}

// ParseType resolves a type name to a DataType. Anything not in the
// built-in set becomes Custom(name), to be resolved later by a module
// loader the core does not implement (spec.md §1 Non-goals).
func ParseType(name string) DataType {
	if dt, ok := builtinNames[name]; ok {
		return dt
	}
	return Custom(name)
}
