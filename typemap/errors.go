package typemap

import (
	"fmt"

	"github.com/NickyBoy89/java2scala/symbol"
	"github.com/cockroachdb/errors"
)

// UnmappedKindError reports a type that no rendering rule covers. It is never
// recoverable: emitting anything in its place would produce invalid source.
type UnmappedKindError struct {
	// Op names the rendering that failed, e.g. "Translate(Return)"
	Op   string
	Name string
	Kind symbol.Kind
}

func (e *UnmappedKindError) Error() string {
	return fmt.Sprintf("unknown type for %s: %s %v", e.Op, e.Name, e.Kind)
}

// Unmapped returns an UnmappedKindError for t carrying a stack trace
func Unmapped(op string, t *symbol.TypeInfo) error {
	return errors.WithStack(&UnmappedKindError{Op: op, Name: t.Name, Kind: t.Kind})
}

// IsUnmapped reports whether err is, or wraps, an UnmappedKindError
func IsUnmapped(err error) bool {
	var unmapped *UnmappedKindError
	return errors.As(err, &unmapped)
}
