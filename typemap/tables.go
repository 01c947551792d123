package typemap

// Both tables are keyed by the primitive and the boxed Java spelling. They are
// never written after initialization; use the accessors below.
var (
	boxedTypes = map[string]string{
		"byte":                "java.lang.Byte",
		"java.lang.Byte":      "java.lang.Byte",
		"short":               "java.lang.Short",
		"java.lang.Short":     "java.lang.Short",
		"int":                 "java.lang.Integer",
		"java.lang.Integer":   "java.lang.Integer",
		"long":                "java.lang.Long",
		"java.lang.Long":      "java.lang.Long",
		"float":               "java.lang.Float",
		"java.lang.Float":     "java.lang.Float",
		"double":              "java.lang.Double",
		"java.lang.Double":    "java.lang.Double",
		"boolean":             "java.lang.Boolean",
		"java.lang.Boolean":   "java.lang.Boolean",
		"char":                "java.lang.Character",
		"java.lang.Character": "java.lang.Character",
		"String":              "java.lang.String",
		"java.lang.String":    "java.lang.String",
	}

	scalarTypes = map[string]string{
		"byte":                "Byte",
		"java.lang.Byte":      "Byte",
		"short":               "Short",
		"java.lang.Short":     "Short",
		"int":                 "Int",
		"java.lang.Integer":   "Int",
		"long":                "Long",
		"java.lang.Long":      "Long",
		"float":               "Float",
		"java.lang.Float":     "Float",
		"double":              "Double",
		"java.lang.Double":    "Double",
		"boolean":             "Boolean",
		"java.lang.Boolean":   "Boolean",
		"char":                "Char",
		"java.lang.Character": "Char",
		"String":              "String",
		"java.lang.String":    "String",
	}
)

// BoxedType returns the java.lang wrapper class of a basic type
func BoxedType(name string) (string, bool) {
	boxed, ok := boxedTypes[name]
	return boxed, ok
}

// ScalarType returns the native Scala type of a basic type
func ScalarType(name string) (string, bool) {
	scalar, ok := scalarTypes[name]
	return scalar, ok
}
