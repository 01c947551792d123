package symbol

// ParamInfo is a single method parameter
type ParamInfo struct {
	Name string
	Type *TypeInfo
	// Description is the raw Javadoc text of the @param tag, if any
	Description string
}

// MethodInfo represents one API operation
type MethodInfo struct {
	Name       string
	ReturnType *TypeInfo
	Params     []*ParamInfo
	// Type parameters declared on the method itself
	TypeParams []TypeParam
	// Doc is nil when the method carries no documentation
	Doc *Doc
	// ReturnDescription is the raw Javadoc text of the @return tag, if any
	ReturnDescription string

	IsStatic bool
	// IsFluent marks methods returning their receiver
	IsFluent bool
	// IsCacheReturn marks methods whose return value is memoized
	IsCacheReturn bool
	IsDefault     bool
}

// ParamByName returns a parameter given its name
func (m *MethodInfo) ParamByName(name string) *ParamInfo {
	for _, param := range m.Params {
		if param.Name == name {
			return param
		}
	}
	return nil
}

// LastParam returns the trailing parameter, or nil for a method without any
func (m *MethodInfo) LastParam() *ParamInfo {
	if len(m.Params) == 0 {
		return nil
	}
	return m.Params[len(m.Params)-1]
}

// ParamTypes returns the Java spelling of every parameter type
func (m *MethodInfo) ParamTypes() []string {
	names := make([]string, len(m.Params))
	for ind, param := range m.Params {
		names[ind] = param.Type.String()
	}
	return names
}

// TypeParamNames returns the names of the method's own type parameters
func (m *MethodInfo) TypeParamNames() []string {
	if m == nil {
		return nil
	}
	return TypeParamNames(m.TypeParams)
}

// Touches reports whether the method's return or any parameter is nullable
func (m *MethodInfo) Touches() bool {
	if m.ReturnType != nil && m.ReturnType.Nullable {
		return true
	}
	for _, param := range m.Params {
		if param.Type.Nullable {
			return true
		}
	}
	return false
}
