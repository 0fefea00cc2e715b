package repository

// ChildStore is a Store of records owned by a parent aggregate. Each record
// carries the parent id as a foreign key; the store itself never checks that
// the parent exists.
type ChildStore[T any] struct {
	*Store[T]
	parent func(*T) *string
}

func NewChildStore[T any](schema Schema[T], parent func(*T) *string, opts Options) *ChildStore[T] {
	return &ChildStore[T]{
		Store:  NewStore(schema, opts),
		parent: parent,
	}
}

// ByParent returns the children of parentID in insertion order, or an empty
// slice.
func (c *ChildStore[T]) ByParent(parentID string) []T {
	return c.Filter(func(v T) bool {
		return *c.parent(&v) == parentID
	})
}

// DeleteByParent removes every child of parentID.
func (c *ChildStore[T]) DeleteByParent(parentID string) int {
	return c.DeleteWhere(func(v T) bool {
		return *c.parent(&v) == parentID
	})
}

// Adopt inserts v as a child of parentID, overriding any foreign key v held.
func (c *ChildStore[T]) Adopt(parentID string, v T) T {
	*c.parent(&v) = parentID
	return c.Insert(v)
}
