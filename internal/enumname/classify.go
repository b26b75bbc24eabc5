package enumname

import (
	"go/types"
)

// EnumTypes collects types the package declares constants of.
func EnumTypes(info *types.Info) map[*types.TypeName]bool {
	res := map[*types.TypeName]bool{}
	for _, obj := range info.Defs {
		c, ok := obj.(*types.Const)
		if !ok {
			continue
		}

		named, ok := types.Unalias(c.Type()).(*types.Named)
		if !ok {
			continue
		}

		res[named.Obj()] = true
	}

	return res
}

// Classify tells the kind of the declared type name. withConsts is the result of [EnumTypes].
func Classify(obj *types.TypeName, withConsts map[*types.TypeName]bool) Kind {
	if obj == nil {
		return KindOther
	}

	if obj.IsAlias() {
		return KindAlias
	}

	named, ok := obj.Type().(*types.Named)
	if !ok || named.TypeParams().Len() > 0 {
		return KindOther
	}

	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&(types.IsInteger|types.IsString) == 0 {
		return KindOther
	}

	if !withConsts[obj] {
		return KindOther
	}

	return KindEnum
}
