package symbol

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseTypeParam(t *testing.T) {
	tests := []struct {
		decl string
		want TypeParam
	}{
		{"T", TypeParam{Name: "T"}},
		{" K ", TypeParam{Name: "K"}},
		{"T extends Number", TypeParam{Name: "T", Bounds: []string{"Number"}}},
		{"T extends Comparable<T> & java.io.Serializable", TypeParam{Name: "T", Bounds: []string{"Comparable<T>", "java.io.Serializable"}}},
	}

	for _, tt := range tests {
		t.Run(tt.decl, func(t *testing.T) {
			got, err := ParseTypeParam(tt.decl)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}

	for _, decl := range []string{"", "List<T>", "?", "A, B"} {
		if _, err := ParseTypeParam(decl); err == nil {
			t.Errorf("Expected an error for %q", decl)
		}
	}
}

func TestMergeTypeParams(t *testing.T) {
	tests := []struct {
		name         string
		outer, inner []string
		want         []string
	}{
		{"outer only", []string{"T"}, nil, []string{"T"}},
		{"inner only", nil, []string{"R"}, []string{"R"}},
		{"disjoint", []string{"K", "V"}, []string{"R"}, []string{"K", "V", "R"}},
		{"shadowed", []string{"T", "U"}, []string{"T"}, []string{"U", "T"}},
		{"none", nil, nil, nil},
	}

	params := func(names []string) []TypeParam {
		var result []TypeParam
		for _, name := range names {
			result = append(result, TypeParam{Name: name})
		}
		return result
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outer := params(tt.outer)
			got := TypeParamNames(MergeTypeParams(outer, params(tt.inner)))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if !reflect.DeepEqual(TypeParamNames(outer), tt.outer) {
				t.Errorf("Expected the outer parameters to be left untouched, got %v", TypeParamNames(outer))
			}
		})
	}
}

func TestParseModel_TypeParamBounds(t *testing.T) {
	src := `
modules:
  - name: vertx
    package: io.vertx.core
types:
  - name: io.vertx.core.streams.Pump
    kind: api
    module: vertx
    typeParams: ["T extends java.lang.Object"]
    methods:
      - name: pipe
        typeParams: [T]
        returns: T
`
	model, err := ParseModel(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Failed to load model: %v", err)
	}
	pump := model.FindType("Pump")
	if len(pump.TypeParams) != 1 || pump.TypeParams[0].Bounds[0] != "java.lang.Object" {
		t.Errorf("Expected the bound to be kept, got %+v", pump.TypeParams)
	}
	if !reflect.DeepEqual(pump.Type.RawParams, []string{"T"}) {
		t.Errorf("Expected the raw parameters to hold only names, got %v", pump.Type.RawParams)
	}
	if ret := pump.Methods[0].ReturnType; !ret.Variable {
		t.Errorf("Expected T to resolve to the method type variable, got %+v", ret)
	}

	duplicate := strings.Replace(src, `["T extends java.lang.Object"]`, "[T, T]", 1)
	if _, err := ParseModel(strings.NewReader(duplicate)); err == nil {
		t.Error("Expected duplicate type parameters to be rejected")
	}
}
