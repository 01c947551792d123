package symbol

// Model is the complete, already-resolved API surface handed to the generator
type Model struct {
	Modules []*ModuleInfo
	// Types in declaration order
	Types []*ClassType

	byName   map[string]*ClassType
	bySimple map[string]*ClassType
}

// NewModel indexes the given types by qualified and simple name
func NewModel(modules []*ModuleInfo, types []*ClassType) *Model {
	m := &Model{
		Modules:  modules,
		Types:    types,
		byName:   make(map[string]*ClassType, len(types)),
		bySimple: make(map[string]*ClassType, len(types)),
	}
	for _, ct := range types {
		m.byName[ct.Type.RawName()] = ct
		m.bySimple[ct.Type.Raw().SimpleName] = ct
	}
	return m
}

// FindType looks a type up by qualified name first, then by simple name.
// Returns nil when the type is not part of the model.
func (m *Model) FindType(name string) *ClassType {
	if m == nil {
		return nil
	}
	if ct, ok := m.byName[name]; ok {
		return ct
	}
	return m.bySimple[name]
}

// TypesInModule returns the types of a module, in declaration order
func (m *Model) TypesInModule(module *ModuleInfo) []*ClassType {
	var types []*ClassType
	for _, ct := range m.Types {
		if ct.Module == module {
			types = append(types, ct)
		}
	}
	return types
}
