// Package crud holds the resource machinery shared by every entity: a gorm-backed
// repository, a service enforcing identifier rules and merge-patch, and gin handlers.
package crud

// Entity is a persisted record with a system-assigned identifier. Zero means the
// identifier has not been assigned yet.
type Entity interface {
	GetID() uint64
}

// Model constrains type parameters to pointer-to-struct entities.
type Model[T any] interface {
	*T
	Entity
}

// MergeFunc copies every non-nil field of patch onto existing.
type MergeFunc[T any] func(existing, patch *T)

// Equal reports identity equality: both identifiers assigned and equal, or the same pointer.
func Equal[T any, PT Model[T]](a, b PT) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.GetID() != 0 && a.GetID() == b.GetID()
}
