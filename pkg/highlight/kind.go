package highlight

// Kind is the highlighting category of one classified occurrence.
//
// The numeric value of each kind is part of the wire contract (it is
// written verbatim into the encoded token stream), so the order below
// must never change. Kind is also the tie-break key when tokens are
// sorted.
type Kind int

const (
	KindVariable Kind = iota
	KindLocalVariable
	KindParameter
	KindFunction
	KindMethod
	KindStaticMethod
	KindField
	KindStaticField
	KindClass
	KindEnum
	KindEnumConstant
	KindTypedef
	KindDependentType
	KindDependentName
	KindNamespace
	KindTemplateParameter
	KindPrimitive
	KindMacro

	// LastKind is the highest valid kind.
	LastKind = KindMacro
)

// Kinds returns every kind in wire order.
func Kinds() []Kind {
	all := make([]Kind, 0, int(LastKind)+1)
	for k := KindVariable; k <= LastKind; k++ {
		all = append(all, k)
	}
	return all
}

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "Variable"
	case KindLocalVariable:
		return "LocalVariable"
	case KindParameter:
		return "Parameter"
	case KindFunction:
		return "Function"
	case KindMethod:
		return "Method"
	case KindStaticMethod:
		return "StaticMethod"
	case KindField:
		return "Field"
	case KindStaticField:
		return "StaticField"
	case KindClass:
		return "Class"
	case KindEnum:
		return "Enum"
	case KindEnumConstant:
		return "EnumConstant"
	case KindTypedef:
		return "Typedef"
	case KindDependentType:
		return "DependentType"
	case KindDependentName:
		return "DependentName"
	case KindNamespace:
		return "Namespace"
	case KindTemplateParameter:
		return "TemplateParameter"
	case KindPrimitive:
		return "Primitive"
	case KindMacro:
		return "Macro"
	default:
		return "unknown"
	}
}
