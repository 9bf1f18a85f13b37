package ecs

import (
	"reflect"
	"sort"
	"unsafe"
)

// Storage is the main ECS storage interface
type Storage struct {
	entities   entityTable
	stores     map[reflect.Type]iComponentStorage
	singletons map[reflect.Type]*singletonEntry
	registry   *ComponentRegistry
}

type singletonEntry struct {
	typ     reflect.Type
	dataPtr unsafe.Pointer
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		stores:     make(map[reflect.Type]iComponentStorage),
		singletons: make(map[reflect.Type]*singletonEntry),
		registry:   registry,
	}
}

// Reserve allocates a live entity ID without attaching any components.
// Components can be attached later with Insert.
func (s *Storage) Reserve() EntityId {
	return s.entities.allocate()
}

// Alive reports whether id refers to an entity that has not been deleted
func (s *Storage) Alive(id EntityId) bool {
	return s.entities.alive(id)
}

// Len returns the number of live entities
func (s *Storage) Len() int {
	return s.entities.count
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	for _, typ := range types {
		s.store(typ)
	}

	id := s.entities.allocate()
	s.Insert(id, components...)
	return id
}

// Insert attaches components to a live entity, replacing components of the same type.
// Returns false if the entity has been deleted.
func (s *Storage) Insert(id EntityId, components ...any) bool {
	if !s.entities.alive(id) {
		return false
	}

	for _, typ := range extractComponentTypes(components) {
		s.store(typ)
	}

	types := componentTypes(components)
	for i, comp := range components {
		s.store(types[i]).Set(id, comp)
	}
	return true
}

// Delete removes all data related to the entity ID
func (s *Storage) Delete(id EntityId) bool {
	if !s.entities.alive(id) {
		return false
	}

	for _, store := range s.stores {
		store.Delete(id)
	}
	return s.entities.release(id)
}

func (s *Storage) AddComponent(id EntityId, component any) bool {
	return s.Insert(id, component)
}

// RemoveComponent detaches a single component. An entity left without components is deleted.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) bool {
	if !s.entities.alive(id) {
		return false
	}

	store, ok := s.stores[compType]
	if !ok || !store.Delete(id) {
		return false
	}

	for _, other := range s.stores {
		if other.Has(id) {
			return true
		}
	}

	s.entities.release(id)
	return true
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	store, ok := s.stores[compType]
	if !ok {
		return nil
	}
	return store.Get(id)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	store, ok := s.stores[compType]
	if !ok {
		return false
	}
	return store.Has(id)
}

// store returns the component storage for typ, creating it on first use.
func (s *Storage) store(typ reflect.Type) iComponentStorage {
	if store, ok := s.stores[typ]; ok {
		return store
	}

	factory := s.registry.getFactory(typ)
	if factory == nil {
		panic("component type " + typ.String() + " not registered")
	}

	store := factory()
	s.stores[typ] = store
	return store
}

// AddSingleton stores value as the singleton for its type.
// Replacing an existing singleton writes in place, so cached pointers stay valid.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	typ := v.Type()

	if entry, ok := s.singletons[typ]; ok {
		reflect.NewAt(typ, entry.dataPtr).Elem().Set(v)
		return
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(v)
	s.singletons[typ] = &singletonEntry{
		typ:     typ,
		dataPtr: ptr.UnsafePointer(),
	}
}

func (s *Storage) getSingletonEntry(typ reflect.Type) *singletonEntry {
	return s.singletons[typ]
}

// ReadSingleton points target (a **T) at the singleton of type T.
// Returns false if no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	typ := v.Elem().Type().Elem()
	entry := s.getSingletonEntry(typ)
	if entry == nil {
		return false
	}

	v.Elem().Set(reflect.NewAt(typ, entry.dataPtr))
	return true
}

// componentTypes maps each component to its value type without sorting.
func componentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, len(components))
	for i, comp := range components {
		compType := reflect.TypeOf(comp)
		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}
		types[i] = compType
	}
	return types
}

// extractComponentTypes extracts, validates and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := componentTypes(components)
	for _, compType := range types {
		// Components can be structs or primitives (int, string, etc.)
		// But not pointers, maps, channels, or functions (those aren't value types)
		if compType.Kind() == reflect.Ptr || compType.Kind() == reflect.Map ||
			compType.Kind() == reflect.Chan || compType.Kind() == reflect.Func {
			panic("components cannot be pointers, maps, channels, or functions")
		}
	}
	sort.Sort(byTypeName(types))
	return types
}

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the T component of entityId, or nil if it has none.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	component, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return component
}
