package codegen

import (
	"strings"

	"github.com/uclang/ucc/internal/types"
)

// uVar wraps a source-level variable, parameter, field, free-function, or
// method identifier in UC_VAR, the catch-all name-wrapping macro: spec.md
// §4.6 lists a distinct macro per *type* category (UC_PRIMITIVE, UC_REFERENCE,
// UC_ARRAY, UC_FUNCTION) and UC_TYPEDEF for alias names, but names no
// separate macro for function/method names. Since "source identifiers are
// always wrapped in the appropriate macro" and UC_VAR is the only remaining
// general-purpose name macro, function and method identifiers are wrapped
// with it the same as locals and fields. Class names are the one exception:
// a class is declared under its own bare C++ identifier and only wrapped
// (via UC_REFERENCE) at points where it is used as a reference type.
func uVar(name string) string { return "UC_VAR(" + name + ")" }

// typeName renders t as the macro-wrapped C++ spelling of its type,
// following spec.md §4.6's fixed vocabulary.
func (e *Emitter) typeName(t types.Type) string {
	switch tt := t.(type) {
	case *types.PrimitiveType:
		return "UC_PRIMITIVE(" + tt.Kind.String() + ")"
	case *types.ClassType:
		return "UC_REFERENCE(" + tt.Name + ")"
	case *types.ArrayType:
		return "UC_ARRAY(" + e.typeName(tt.Elem) + ")"
	case *types.FunctionType:
		return "UC_FUNCTION(" + e.functionTypeTag(tt) + ")"
	case *types.NullType:
		// null never appears as a declared type; only as a literal, which
		// lowerExpr always lowers to nullptr.
		return "UC_PRIMITIVE(void)"
	default:
		return "/* unknown type */"
	}
}

// functionTypeTag synthesizes a single identifier-shaped tag for a
// first-class function type, since UC_FUNCTION wraps one name, not a
// parameter list. UC_CONCAT(a, b) is spec.md §4.6's pairwise
// identifier-pasting macro; chaining it left-to-right over the return type
// and every parameter type produces a stable tag the runtime header can use
// to select (or instantiate) the concrete callable wrapper for that exact
// signature. This is this compiler's resolved reading of UC_CONCAT, which
// spec.md names but does not give a worked example for.
func (e *Emitter) functionTypeTag(ft *types.FunctionType) string {
	parts := make([]string, 0, len(ft.Params)+1)
	parts = append(parts, bareTypeTag(ft.Return))
	for _, p := range ft.Params {
		parts = append(parts, bareTypeTag(p))
	}
	tag := parts[0]
	for _, p := range parts[1:] {
		tag = "UC_CONCAT(" + tag + ", " + p + ")"
	}
	return tag
}

// bareTypeTag renders t as a plain identifier fragment (no macro wrapper),
// the building block functionTypeTag pastes together with UC_CONCAT.
func bareTypeTag(t types.Type) string {
	switch tt := t.(type) {
	case *types.PrimitiveType:
		return tt.Kind.String()
	case *types.ClassType:
		return tt.Name
	case *types.ArrayType:
		return bareTypeTag(tt.Elem) + "Arr"
	case *types.FunctionType:
		parts := make([]string, 0, len(tt.Params)+1)
		parts = append(parts, bareTypeTag(tt.Return))
		for _, p := range tt.Params {
			parts = append(parts, bareTypeTag(p))
		}
		return "Fn" + strings.Join(parts, "")
	default:
		return "Unknown"
	}
}
