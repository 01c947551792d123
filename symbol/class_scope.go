package symbol

import "strings"

// ModuleInfo describes the codegen module a type belongs to
type ModuleInfo struct {
	Name string
	// PackageName is the root Java package of the module, e.g. io.vertx.core
	PackageName string
	// GroupPackage is the prefix that language packages are inserted after,
	// e.g. io.vertx
	GroupPackage string
}

// TranslatePackageName inserts the language name after the group package:
// io.vertx.core -> io.vertx.scala.core
func (mi *ModuleInfo) TranslatePackageName(lang string) string {
	group := mi.GroupPackage
	if group == "" || !strings.HasPrefix(mi.PackageName, group) {
		return lang + "." + mi.PackageName
	}
	return group + "." + lang + mi.PackageName[len(group):]
}

// ClassType is a single API type together with everything needed to render it
type ClassType struct {
	// The descriptor of the type itself
	Type   *TypeInfo
	Module *ModuleInfo
	Doc    *Doc
	// Methods declared on the type, in source order
	Methods []*MethodInfo
	// Type parameters of the class (e.g. T for Future<T>)
	TypeParams []TypeParam
	// Concrete is false for abstract data objects
	Concrete bool
	// HasEmptyConstructor marks data objects with a no-argument constructor
	HasEmptyConstructor bool
	// ReferencedTypes are the types imported by the Java declaration
	ReferencedTypes []*TypeInfo
}

// Name returns the qualified name of the type
func (ct *ClassType) Name() string {
	return ct.Type.Name
}

// SimpleName returns the simple name of the type
func (ct *ClassType) SimpleName() string {
	return ct.Type.SimpleName
}

// InstanceMethods returns every non-static method
func (ct *ClassType) InstanceMethods() []*MethodInfo {
	return ct.FindMethod().By(func(m *MethodInfo) bool { return !m.IsStatic })
}

// StaticMethods returns every static method
func (ct *ClassType) StaticMethods() []*MethodInfo {
	return ct.FindMethod().By(func(m *MethodInfo) bool { return m.IsStatic })
}

// IsTypeParameter checks if a given name is a type parameter of this class
func (ct *ClassType) IsTypeParameter(name string) bool {
	for _, tp := range ct.TypeParams {
		if tp.Name == name {
			return true
		}
	}
	return false
}

// Finder looks up methods by arbitrary criteria
type Finder interface {
	By(criteria func(m *MethodInfo) bool) []*MethodInfo
	ByName(name string) []*MethodInfo
}

// FindMethod searches through the type's methods
func (ct *ClassType) FindMethod() Finder {
	cm := classMethodFinder(*ct)
	return &cm
}

type classMethodFinder ClassType

func (cm *classMethodFinder) By(criteria func(m *MethodInfo) bool) []*MethodInfo {
	results := []*MethodInfo{}
	for _, method := range cm.Methods {
		if criteria(method) {
			results = append(results, method)
		}
	}
	return results
}

func (cm *classMethodFinder) ByName(name string) []*MethodInfo {
	return cm.By(func(m *MethodInfo) bool {
		return m.Name == name
	})
}
