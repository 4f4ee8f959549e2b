package types

// Assignable reports whether a value of type from may be assigned to a
// place of type to, per spec.md §4.5:
//
//   - identical types are always assignable;
//   - the null literal is assignable to any class or array type;
//   - an integer (int or long) is assignable to a wider numeric type
//     (int → long, integer → float).
//
// Assignability is reflexive and transitively closed under these two
// widenings, but not symmetric: float is not assignable to int.
func Assignable(from, to Type) bool {
	if from.Equal(to) {
		return true
	}
	if _, ok := from.(*NullType); ok && IsClassOrArray(to) {
		return true
	}
	fp, fok := from.(*PrimitiveType)
	tp, tok := to.(*PrimitiveType)
	if !fok || !tok {
		return false
	}
	switch fp.Kind {
	case Int:
		return tp.Kind == Long || tp.Kind == Float
	case Long:
		return tp.Kind == Float
	default:
		return false
	}
}

// NumericPromotion computes the result type of a numeric `- * / %` or
// numeric `+` operand pair: int+int→int, long if either operand is long,
// float if either operand is float. Returns (nil, false) if either operand
// is not numeric.
func NumericPromotion(a, b Type) (Type, bool) {
	ap, aok := a.(*PrimitiveType)
	bp, bok := b.(*PrimitiveType)
	if !aok || !bok || !IsNumeric(ap) || !IsNumeric(bp) {
		return nil, false
	}
	if ap.Kind == Float || bp.Kind == Float {
		return Primitive(Float), true
	}
	if ap.Kind == Long || bp.Kind == Long {
		return Primitive(Long), true
	}
	return Primitive(Int), true
}
