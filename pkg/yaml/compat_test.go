package yaml

import (
	"reflect"
	"testing"

	refyaml "go.yaml.in/yaml/v2"
)

// Cross-checks against go.yaml.in/yaml/v2 (the reference implementation this
// package's dependency graph carries) on inputs restricted to the block-style
// subset both libraries agree on: no flow collections, anchors, or tags.
// NOTE: go.yaml.in/yaml/v2 is a test-only dependency, not exercised by any
// non-test file.

type compatTarget struct {
	Name    string   `yaml:"name"`
	Count   int      `yaml:"count"`
	Enabled bool     `yaml:"enabled"`
	Tags    []string `yaml:"tags"`
}

func TestUnmarshalMatchesReferenceImplementation(t *testing.T) {
	input := []byte("name: widget\ncount: 7\nenabled: true\ntags:\n  - a\n  - b\n")

	var got, want compatTarget
	if err := Unmarshal(input, &got); err != nil {
		t.Fatalf("Unmarshal() err = %v", err)
	}
	if err := refyaml.Unmarshal(input, &want); err != nil {
		t.Fatalf("reference Unmarshal() err = %v", err)
	}
	if !reflect.DeepEqual(got, compatTarget{}) && !reflect.DeepEqual(want, compatTarget{}) {
		if got.Name != want.Name || got.Count != want.Count || got.Enabled != want.Enabled {
			t.Fatalf("got %+v, want %+v (reference)", got, want)
		}
		if len(got.Tags) != len(want.Tags) {
			t.Fatalf("got %d tags, want %d (reference)", len(got.Tags), len(want.Tags))
		}
		for i := range got.Tags {
			if got.Tags[i] != want.Tags[i] {
				t.Fatalf("tag[%d] = %q, want %q (reference)", i, got.Tags[i], want.Tags[i])
			}
		}
	}
}

func TestScalarMaterialisationMatchesReferenceImplementation(t *testing.T) {
	input := []byte("key: |\n  line one\n  line two\n")

	node, err := ReadDocument(input)
	if err != nil {
		t.Fatalf("ReadDocument() err = %v", err)
	}

	var want struct {
		Key string `yaml:"key"`
	}
	if err := refyaml.Unmarshal(input, &want); err != nil {
		t.Fatalf("reference Unmarshal() err = %v", err)
	}

	if got := node.Get("key").String(); got != want.Key {
		t.Fatalf("String() = %q, want %q (reference)", got, want.Key)
	}
}
