package highlight

import (
	"github.com/hashicorp/go-multierror"
	"gitlab.com/tozd/go/errors"
)

// TextMateScope maps a kind to its static editor style scope. The
// mapping feeds the one-time theme/grammar export and is independent
// of the incremental wire encoding.
func TextMateScope(k Kind) string {
	switch k {
	case KindFunction:
		return "entity.name.function.cpp"
	case KindMethod:
		return "entity.name.function.method.cpp"
	case KindStaticMethod:
		return "entity.name.function.method.static.cpp"
	case KindVariable:
		return "variable.other.cpp"
	case KindLocalVariable:
		return "variable.other.local.cpp"
	case KindParameter:
		return "variable.parameter.cpp"
	case KindField:
		return "variable.other.field.cpp"
	case KindStaticField:
		return "variable.other.field.static.cpp"
	case KindClass:
		return "entity.name.type.class.cpp"
	case KindEnum:
		return "entity.name.type.enum.cpp"
	case KindEnumConstant:
		return "variable.other.enummember.cpp"
	case KindTypedef:
		return "entity.name.type.typedef.cpp"
	case KindDependentType:
		return "entity.name.type.dependent.cpp"
	case KindDependentName:
		return "entity.name.other.dependent.cpp"
	case KindNamespace:
		return "entity.name.namespace.cpp"
	case KindTemplateParameter:
		return "entity.name.type.template.cpp"
	case KindPrimitive:
		return "storage.type.primitive.cpp"
	case KindMacro:
		return "entity.name.function.preprocessor.cpp"
	default:
		return ""
	}
}

// VerifyScopes checks that every kind maps to a non-empty scope. A gap
// here is a programming error in this package; the check runs in tests
// and before every theme export.
func VerifyScopes() error {
	var result *multierror.Error
	for _, k := range Kinds() {
		if TextMateScope(k) == "" {
			result = multierror.Append(result, errors.Errorf("kind %s has no style scope", k))
		}
	}
	return result.ErrorOrNil()
}
