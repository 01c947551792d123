package symbol

import (
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
)

// TypeParam is a type parameter declared on a class or method. Bounds are
// kept as their Java spelling; generated code only mentions the name.
type TypeParam struct {
	Name   string
	Bounds []string
}

// ParseTypeParam reads a declaration such as "T" or
// "T extends Comparable<T> & java.io.Serializable"
func ParseTypeParam(decl string) (TypeParam, error) {
	name, bounds, _ := strings.Cut(strings.TrimSpace(decl), " extends ")
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " <>,&?") {
		return TypeParam{}, errors.Newf("invalid type parameter %q", decl)
	}

	param := TypeParam{Name: name}
	for _, bound := range strings.Split(bounds, "&") {
		if bound = strings.TrimSpace(bound); bound != "" {
			param.Bounds = append(param.Bounds, bound)
		}
	}
	return param, nil
}

func parseTypeParams(decls []string) ([]TypeParam, error) {
	var params []TypeParam
	for _, decl := range decls {
		param, err := ParseTypeParam(decl)
		if err != nil {
			return nil, err
		}
		if slices.ContainsFunc(params, func(p TypeParam) bool { return p.Name == param.Name }) {
			return nil, errors.Newf("duplicate type parameter %s", param.Name)
		}
		params = append(params, param)
	}
	return params, nil
}

func TypeParamNames(params []TypeParam) []string {
	if len(params) == 0 {
		return nil
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

// MergeTypeParams returns the type variables in scope inside a method: the
// class parameters a method parameter of the same name does not shadow,
// followed by the method's own
func MergeTypeParams(outer, inner []TypeParam) []TypeParam {
	visible := slices.DeleteFunc(slices.Clone(outer), func(p TypeParam) bool {
		return slices.ContainsFunc(inner, func(q TypeParam) bool { return q.Name == p.Name })
	})
	return append(visible, inner...)
}
