package types

import "testing"

func TestPrimitiveEqual(t *testing.T) {
	if !Primitive(Int).Equal(Primitive(Int)) {
		t.Fatal("int should equal int")
	}
	if Primitive(Int).Equal(Primitive(Long)) {
		t.Fatal("int should not equal long")
	}
}

func TestArrayEqual(t *testing.T) {
	a := &ArrayType{Elem: Primitive(Int)}
	b := &ArrayType{Elem: Primitive(Int)}
	c := &ArrayType{Elem: Primitive(Float)}
	if !a.Equal(b) {
		t.Fatal("arrays of int should be equal")
	}
	if a.Equal(c) {
		t.Fatal("array of int should not equal array of float")
	}
}

func TestClassEqual_ByID(t *testing.T) {
	r := NewRegistry()
	foo := r.DeclareClass("Foo", nil)
	bar := r.DeclareClass("Bar", nil)
	fooType := &ClassType{ID: foo.ID, Name: "Foo", Class: foo}
	fooType2 := &ClassType{ID: foo.ID, Name: "Foo", Class: foo}
	barType := &ClassType{ID: bar.ID, Name: "Bar", Class: bar}
	if !fooType.Equal(fooType2) {
		t.Fatal("same class id should be equal")
	}
	if fooType.Equal(barType) {
		t.Fatal("different class ids should not be equal")
	}
}

func TestAssignable(t *testing.T) {
	tests := []struct {
		from, to Type
		want     bool
	}{
		{Primitive(Int), Primitive(Int), true},
		{Primitive(Int), Primitive(Long), true},
		{Primitive(Int), Primitive(Float), true},
		{Primitive(Long), Primitive(Float), true},
		{Primitive(Float), Primitive(Int), false},
		{Primitive(Long), Primitive(Int), false},
		{&NullType{}, &ArrayType{Elem: Primitive(Int)}, true},
		{&NullType{}, Primitive(Int), false},
	}
	for _, tt := range tests {
		got := Assignable(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("Assignable(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNumericPromotion(t *testing.T) {
	tests := []struct {
		a, b Type
		want PrimitiveKind
	}{
		{Primitive(Int), Primitive(Int), Int},
		{Primitive(Int), Primitive(Long), Long},
		{Primitive(Int), Primitive(Float), Float},
		{Primitive(Long), Primitive(Float), Float},
	}
	for _, tt := range tests {
		got, ok := NumericPromotion(tt.a, tt.b)
		if !ok {
			t.Fatalf("expected promotion for %s + %s", tt.a, tt.b)
		}
		if got.(*PrimitiveType).Kind != tt.want {
			t.Errorf("NumericPromotion(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
	if _, ok := NumericPromotion(Primitive(String), Primitive(Int)); ok {
		t.Fatal("string is not numeric")
	}
}

func TestClassAncestryAndCommonAncestor(t *testing.T) {
	r := NewRegistry()
	animal := r.DeclareClass("Animal", nil)
	dog := r.DeclareClass("Dog", nil)
	dog.Super = animal
	cat := r.DeclareClass("Cat", nil)
	cat.Super = animal

	if !dog.IsSubclassOf(animal) {
		t.Fatal("Dog should be a subclass of Animal")
	}
	if dog.IsSubclassOf(cat) {
		t.Fatal("Dog should not be a subclass of Cat")
	}
	common := CommonAncestor(dog, cat)
	if common == nil || common.Name != "Animal" {
		t.Fatalf("expected common ancestor Animal, got %v", common)
	}
	if CommonAncestor(dog, dog).Name != "Dog" {
		t.Fatal("a class is its own common ancestor")
	}
}
