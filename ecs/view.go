package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View represents a query for entities with a specific combination of components
// The type T should be a struct with embedded pointer fields for each component type
// Named fields can be marked as optional using the `ecs:"optional"` struct tag
// A field of type EntityId (embedded or named) receives the entity's ID
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr

	idOffset uintptr
	hasId    bool
}

// NewView creates a new view for the given struct type
// The struct T should have embedded or named fields that are pointers to component types
// Embedded fields are always required
// Named fields can be marked as optional using the `ecs:"optional"` struct tag
func NewView[T any](storage *Storage) *View[T] {
	var zero T
	structType := reflect.TypeOf(zero)

	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{
		storage:     storage,
		types:       make([]reflect.Type, 0, structType.NumField()),
		optional:    make([]bool, 0, structType.NumField()),
		fieldOffset: make([]uintptr, 0, structType.NumField()),
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldType := field.Type

		if fieldType == entityIdType {
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}

		if fieldType.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		// Parse struct tag to check if component is optional
		// Embedded fields (field.Anonymous) are always required
		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}

		v.types = append(v.types, fieldType.Elem())
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}

	required := 0
	for _, opt := range v.optional {
		if !opt {
			required++
		}
	}
	if required == 0 {
		panic("View struct must have at least one required component")
	}

	return v
}

// Fill populates the provided struct pointer with component data for the given entity
// Returns false if the entity is missing any required components
// Optional components are set to nil if not present
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	if !v.storage.Alive(id) {
		return false
	}
	return v.populate(unsafe.Pointer(ptr), id)
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

func (v *View[T]) populate(structPtr unsafe.Pointer, id EntityId) bool {
	for i, componentType := range v.types {
		// Calculate the address of the field using the pre-computed offset
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])

		var component any
		if store, ok := v.storage.stores[componentType]; ok {
			component = store.Get(id)
		}

		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		*(*unsafe.Pointer)(fieldPtr) = dataPointer(component)
	}

	if v.hasId {
		*(*EntityId)(unsafe.Pointer(uintptr(structPtr) + v.idOffset)) = id
	}
	return true
}

// driver picks the smallest store among the required component types.
// Returns nil if any required store does not exist yet.
func (v *View[T]) driver() iComponentStorage {
	var smallest iComponentStorage
	for i, typ := range v.types {
		if v.optional[i] {
			continue
		}
		store, ok := v.storage.stores[typ]
		if !ok {
			return nil
		}
		if smallest == nil || store.Len() < smallest.Len() {
			smallest = store
		}
	}
	return smallest
}

// Iter returns an iterator over all entities that have all the required components for this view
// The iterator yields (EntityId, T) pairs where T is the populated view struct
// Optional components are set to nil if not present
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		driver := v.driver()
		if driver == nil {
			return
		}

		var result T
		resultPtr := unsafe.Pointer(&result)

		for id := range driver.Iter() {
			if !v.populate(resultPtr, id) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs (without entity IDs)
// This is useful when you only care about the component data, not which entity it belongs to
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Count returns the number of entities currently matching the view
func (v *View[T]) Count() int {
	count := 0
	for range v.Iter() {
		count++
	}
	return count
}

// Spawn creates a new entity with components copied from the view struct
// Nil optional fields are skipped
func (v *View[T]) Spawn(data T) EntityId {
	structPtr := unsafe.Pointer(&data)

	components := make([]any, 0, len(v.types))
	for i, componentType := range v.types {
		componentPtr := *(*unsafe.Pointer)(unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i]))
		if componentPtr == nil {
			if !v.optional[i] {
				panic("required component is nil in View.Spawn")
			}
			continue
		}

		components = append(components, reflect.NewAt(componentType, componentPtr).Elem().Interface())
	}

	return v.storage.Spawn(components...)
}
