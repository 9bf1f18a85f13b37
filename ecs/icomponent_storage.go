package ecs

import "iter"

// iComponentStorage is an interface for a type-erased component storage.
type iComponentStorage interface {
	Set(id EntityId, item any) bool
	Delete(id EntityId) bool
	Get(id EntityId) any
	Has(id EntityId) bool
	Len() int
	Iter() iter.Seq[EntityId]
}
