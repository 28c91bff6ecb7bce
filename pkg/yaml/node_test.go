package yaml

import "testing"

func TestReadDocumentEmpty(t *testing.T) {
	n, err := ReadDocument([]byte(""))
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if !n.IsNull() {
		t.Fatalf("Kind() = %v, want Null", n.Kind())
	}
}

func TestReadDocumentObject(t *testing.T) {
	input := "key 1: test 1\nkey 2: test 2\nkey 3: test 3\nkey 4: test 4\n"
	n, err := ReadDocument([]byte(input))
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !n.IsObject() || n.Len() != 4 {
		t.Fatalf("Kind()=%v Len()=%d, want Object of size 4", n.Kind(), n.Len())
	}
	wantKeys := []string{"key 1", "key 2", "key 3", "key 4"}
	if got := n.Keys(); !stringSlicesEqual(got, wantKeys) {
		t.Fatalf("Keys() = %v, want %v", got, wantKeys)
	}
	for i, k := range wantKeys {
		want := "test " + string(rune('1'+i))
		if got := n.Get(k).String(); got != want {
			t.Fatalf("Get(%q).String() = %q, want %q", k, got, want)
		}
	}
}

func TestReadDocumentSequence(t *testing.T) {
	input := "- test 1\n- test 2\n- test 3\n- test 4\n"
	n, err := ReadDocument([]byte(input))
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !n.IsSequence() || n.Len() != 4 {
		t.Fatalf("Kind()=%v Len()=%d, want Sequence of size 4", n.Kind(), n.Len())
	}
	for _, item := range n.Items() {
		if !item.IsScalar() {
			t.Fatalf("item Kind() = %v, want Scalar", item.Kind())
		}
	}
}

func TestReadDocumentNullTokens(t *testing.T) {
	for _, in := range []string{"null", "Null", "NULL", "~"} {
		n, err := ReadDocument([]byte(in))
		if err != nil {
			t.Fatalf("%q: err = %v", in, err)
		}
		if !n.IsNull() {
			t.Fatalf("%q: Kind() = %v, want Null", in, n.Kind())
		}
	}
}

func TestReadDocumentNestedObject(t *testing.T) {
	input := "outer:\n  inner: v\nback: w\n"
	n, err := ReadDocument([]byte(input))
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	inner := n.Get("outer")
	if !inner.IsObject() {
		t.Fatalf("outer Kind() = %v, want Object", inner.Kind())
	}
	if got := inner.Get("inner").String(); got != "v" {
		t.Fatalf("inner.inner = %q, want %q", got, "v")
	}
	if got := n.Get("back").String(); got != "w" {
		t.Fatalf("back = %q, want %q", got, "w")
	}
}

func TestReadDocumentSyntaxError(t *testing.T) {
	_, err := ReadDocument([]byte("  \tkey: v\n"))
	if err == nil {
		t.Fatal("err = nil, want a SyntaxError")
	}
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("err type = %T, want *SyntaxError", err)
	}
	if se.Code != "forbidden_tab_indentation" {
		t.Fatalf("Code = %q, want forbidden_tab_indentation", se.Code)
	}
}

func TestMultilinePlainScalarMaterialisation(t *testing.T) {
	input := "first\nsecond\n\nthird\n\n\nfourth\n\n\n"
	n, err := ReadDocument([]byte(input))
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	want := "first second\nthird\n\nfourth"
	if got := n.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
