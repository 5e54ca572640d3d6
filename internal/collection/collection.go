package collection

// Collection is the behavior the battery verifies. Unsupported mutations
// return an error matching errors.ErrUnsupported and leave the collection
// unchanged.
type Collection[E comparable] interface {
	Len() int
	IsEmpty() bool
	Contains(e E) bool
	// Add inserts e and reports whether the collection changed.
	Add(e E) (bool, error)
	// Remove deletes one occurrence of e and reports whether the collection
	// changed.
	Remove(e E) (bool, error)
	Clear() error
	// ToSlice returns the elements in iteration order.
	ToSlice() []E
}
