package containers

import (
	"collsuite/internal/feature"
	"collsuite/internal/generator"
)

// StringSamples is the sample pool used by the string generators.
var StringSamples = generator.NewSampleElements("a", "b", "c", "d", "e")

// ArrayListGenerator creates string ArrayLists.
func ArrayListGenerator() generator.ContainerGenerator[*ArrayList[string], string] {
	return generator.Funcs[*ArrayList[string], string]{
		Pool:       StringSamples,
		CreateFunc: NewArrayList[string],
	}
}

// LinkedSetGenerator creates string LinkedSets.
func LinkedSetGenerator() generator.ContainerGenerator[*LinkedSet[string], string] {
	return generator.Funcs[*LinkedSet[string], string]{
		Pool:       StringSamples,
		CreateFunc: NewLinkedSet[string],
	}
}

// HashSetGenerator creates string HashSets.
func HashSetGenerator() generator.ContainerGenerator[*HashSet[string], string] {
	return generator.Funcs[*HashSet[string], string]{
		Pool:       StringSamples,
		CreateFunc: NewHashSet[string],
	}
}

// ImmutableListGenerator creates string ImmutableLists.
func ImmutableListGenerator() generator.ContainerGenerator[*ImmutableList[string], string] {
	return generator.Funcs[*ImmutableList[string], string]{
		Pool:       StringSamples,
		CreateFunc: NewImmutableList[string],
	}
}

// Features returns the features each container in this package supports,
// keyed by the container kind name.
func Features() map[string][]feature.Feature {
	return map[string][]feature.Feature{
		KindArrayList:     {feature.GeneralPurpose, feature.KnownOrder, feature.AllowsDuplicates, feature.Serializable},
		KindLinkedSet:     {feature.GeneralPurpose, feature.KnownOrder, feature.Serializable},
		KindHashSet:       {feature.GeneralPurpose},
		KindImmutableList: {feature.KnownOrder, feature.AllowsDuplicates, feature.Serializable},
	}
}

// Container kind names, as used in suite declarations.
const (
	KindArrayList     = "arraylist"
	KindLinkedSet     = "linkedset"
	KindHashSet       = "hashset"
	KindImmutableList = "immutablelist"
)
