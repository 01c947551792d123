// Package classify partitions API methods into the groups that select how
// each method is rendered.
package classify

import (
	"github.com/NickyBoy89/java2scala/symbol"
	"golang.org/x/exp/slices"
)

// Methods that lack the type information needed for a Scala rendering.
// See https://github.com/vert-x3/vertx-lang-scala/issues/23
var skipped = []string{"addInterceptor", "removeInterceptor"}

// Skip reports whether a method is excluded from every group
func Skip(method *symbol.MethodInfo) bool {
	return slices.Contains(skipped, method.Name)
}

func filter(methods []*symbol.MethodInfo, keep func(m *symbol.MethodInfo) bool) []*symbol.MethodInfo {
	results := []*symbol.MethodInfo{}
	for _, method := range methods {
		if !Skip(method) && keep(method) {
			results = append(results, method)
		}
	}
	return results
}

// Static returns the static methods
func Static(methods []*symbol.MethodInfo) []*symbol.MethodInfo {
	return filter(methods, func(m *symbol.MethodInfo) bool {
		return m.IsStatic
	})
}

// Basic returns the plain instance methods: not fluent, cache-return,
// static or default
func Basic(methods []*symbol.MethodInfo) []*symbol.MethodInfo {
	return filter(methods, func(m *symbol.MethodInfo) bool {
		return !m.IsFluent && !m.IsCacheReturn && !m.IsStatic && !m.IsDefault
	})
}

// Default returns the default interface methods that are neither fluent nor
// cache-return
func Default(methods []*symbol.MethodInfo) []*symbol.MethodInfo {
	return filter(methods, func(m *symbol.MethodInfo) bool {
		return m.IsDefault && !m.IsFluent && !m.IsCacheReturn && !m.IsStatic
	})
}

// Fluent returns the methods returning their receiver
func Fluent(methods []*symbol.MethodInfo) []*symbol.MethodInfo {
	return filter(methods, func(m *symbol.MethodInfo) bool {
		return m.IsFluent && !m.IsCacheReturn && !m.IsStatic
	})
}

// CacheReturn returns the methods with a memoized return value
func CacheReturn(methods []*symbol.MethodInfo) []*symbol.MethodInfo {
	return filter(methods, func(m *symbol.MethodInfo) bool {
		return m.IsCacheReturn && !m.IsStatic
	})
}

// Future returns the methods that get a Future returning variant
func Future(methods []*symbol.MethodInfo) []*symbol.MethodInfo {
	return filter(methods, ShouldReturnFuture)
}

// Nullable returns the methods whose return type or any parameter is nullable
func Nullable(methods []*symbol.MethodInfo) []*symbol.MethodInfo {
	return filter(methods, (*symbol.MethodInfo).Touches)
}

// IsAsyncResultHandler matches Handler<AsyncResult<T>>
func IsAsyncResultHandler(t *symbol.TypeInfo) bool {
	return t.Kind == symbol.KindHandler && t.Arg(0) != nil && t.Arg(0).Kind == symbol.KindAsyncResult
}

// IsLastParamAsyncResultHandler reports whether the trailing parameter of the
// method is a Handler<AsyncResult<T>>
func IsLastParamAsyncResultHandler(method *symbol.MethodInfo) bool {
	last := method.LastParam()
	return last != nil && IsAsyncResultHandler(last.Type)
}

// ShouldReturnFuture reports whether the method's trailing callback can be
// replaced by a returned Future. Methods returning a Handler are left alone,
// a missing return type counts as void.
func ShouldReturnFuture(method *symbol.MethodInfo) bool {
	return len(method.Params) > 0 &&
		IsLastParamAsyncResultHandler(method) &&
		(method.ReturnType == nil || method.ReturnType.Kind != symbol.KindHandler)
}

// FutureType returns the payload type T of the trailing Handler<AsyncResult<T>>.
// A raw AsyncResult yields Object.
func FutureType(method *symbol.MethodInfo) *symbol.TypeInfo {
	result := method.LastParam().Type.Arg(0)
	if payload := result.Arg(0); payload != nil {
		return payload
	}
	return symbol.New(symbol.KindObject, "java.lang.Object")
}

// Classes holds every group for one list of methods
type Classes struct {
	Static      []*symbol.MethodInfo
	Basic       []*symbol.MethodInfo
	Default     []*symbol.MethodInfo
	Fluent      []*symbol.MethodInfo
	CacheReturn []*symbol.MethodInfo
	Future      []*symbol.MethodInfo
	Nullable    []*symbol.MethodInfo
}

// Partition evaluates every group over methods
func Partition(methods []*symbol.MethodInfo) Classes {
	return Classes{
		Static:      Static(methods),
		Basic:       Basic(methods),
		Default:     Default(methods),
		Fluent:      Fluent(methods),
		CacheReturn: CacheReturn(methods),
		Future:      Future(methods),
		Nullable:    Nullable(methods),
	}
}
