package domain

import "reflect"

// unprintable is recorded as the reason when stringifying an error
// itself fails. The logging path must never be the thing that fails.
const unprintable = "unprintable error"

// ReasonOf returns the best-effort string form of err for the "reason"
// field. A panicking Error method is swallowed and replaced with a fixed
// placeholder.
func ReasonOf(err error) (reason string) {
	defer func() {
		if recover() != nil {
			reason = unprintable
		}
	}()
	if err == nil {
		return ""
	}
	return err.Error()
}

// TypeOf returns the fully-qualified type name of err for the
// "exception" field, e.g. "errors.errorString" or
// "github.com/aretw0/causeway/pkg/domain.SomeError". Unnamed types fall
// back to their Go syntax representation.
func TypeOf(err error) string {
	if err == nil {
		return ""
	}
	typ := reflect.TypeOf(err)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.PkgPath() != "" && typ.Name() != "" {
		return typ.PkgPath() + "." + typ.Name()
	}
	return typ.String()
}
