package symbol

import "strings"

// ElementKind is the kind of program element a documentation link points at
type ElementKind int

const (
	ElementType ElementKind = iota
	ElementMethod
	ElementField
	ElementConstructor
)

// Element is the resolved target of a documentation cross-reference
type Element struct {
	Kind ElementKind
	// SimpleName is the member name, or the type's simple name for types
	SimpleName string
	// Type is the raw type named by, or declaring, the element
	Type *TypeInfo
	// InModule is set when the type belongs to a codegen module
	InModule bool
	// ParamCount is the number of parameters of a method element
	ParamCount int
	// LastParamAsyncResultHandler is set for methods whose trailing parameter
	// is a Handler<AsyncResult<T>>
	LastParamAsyncResultHandler bool
}

// AsyncResultHandler reports whether the element names a handler of async results
func (e Element) AsyncResultHandler() bool {
	name := e.Type.String()
	return strings.Contains(name, HandlerName) && strings.Contains(name, "io.vertx.core.AsyncResult")
}

// Resolver resolves documentation link targets. from is the type whose
// documentation contains the link; it is used for member-only references
// such as #close().
type Resolver interface {
	Resolve(from *TypeInfo, target string) (Element, bool)
}

// ModelResolver resolves links against a Model and the well-known types
type ModelResolver struct {
	Model *Model
}

// NewModelResolver creates a resolver backed by model
func NewModelResolver(model *Model) *ModelResolver {
	return &ModelResolver{Model: model}
}

// Resolve implements Resolver
func (r *ModelResolver) Resolve(from *TypeInfo, target string) (Element, bool) {
	ref := ParseLinkTarget(target)
	typeName := ref.Type
	if typeName == "" {
		if from == nil {
			return Element{}, false
		}
		typeName = from.RawName()
	}

	var declaring *ClassType
	var raw *TypeInfo
	var inModule bool
	if ct := r.Model.FindType(typeName); ct != nil {
		declaring, raw, inModule = ct, ct.Type.Raw(), true
	} else if known := LookupKnown(typeName); known != nil {
		raw, inModule = known, strings.HasPrefix(known.Name, "io.vertx.")
	} else {
		return Element{}, false
	}

	elt := Element{Kind: ElementType, SimpleName: raw.SimpleName, Type: raw, InModule: inModule}
	if ref.Member == "" {
		return elt, true
	}

	elt.SimpleName = ref.Member
	var method *MethodInfo
	if declaring != nil {
		method = matchMethod(declaring, ref)
	}

	// The model declares no fields, so #name falls back to a method of
	// that name the way Javadoc does
	switch {
	case !ref.HasParams && method == nil:
		elt.Kind = ElementField
	case ref.Member == raw.SimpleName:
		elt.Kind = ElementConstructor
		elt.ParamCount = len(ref.Params)
	default:
		elt.Kind = ElementMethod
		elt.ParamCount = len(ref.Params)
		if method != nil {
			elt.ParamCount = len(method.Params)
			if last := method.LastParam(); last != nil {
				elt.LastParamAsyncResultHandler = isAsyncResultHandler(last.Type)
			}
		}
	}
	return elt, true
}

func matchMethod(ct *ClassType, ref LinkTarget) *MethodInfo {
	candidates := ct.FindMethod().ByName(ref.Member)
	for _, method := range candidates {
		if len(method.Params) == len(ref.Params) {
			return method
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return nil
}

func isAsyncResultHandler(t *TypeInfo) bool {
	return t.Kind == KindHandler && t.Arg(0) != nil && t.Arg(0).Kind == KindAsyncResult
}

// LinkTarget is the parsed form of a reference like pkg.Type#method(A, B)
type LinkTarget struct {
	Type      string
	Member    string
	HasParams bool
	Params    []string
}

// ParseLinkTarget splits a Javadoc reference into type, member and parameters
func ParseLinkTarget(target string) LinkTarget {
	var ref LinkTarget
	ref.Type, ref.Member, _ = strings.Cut(strings.TrimSpace(target), "#")
	if open := strings.IndexByte(ref.Member, '('); open >= 0 {
		ref.HasParams = true
		params := strings.TrimSuffix(ref.Member[open+1:], ")")
		ref.Member = ref.Member[:open]
		for _, param := range strings.Split(params, ",") {
			if param = strings.TrimSpace(param); param != "" {
				ref.Params = append(ref.Params, param)
			}
		}
	}
	return ref
}
