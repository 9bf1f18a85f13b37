package ecs

import "sort"

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	TotalEntityCount   int
	StoreCount         int
	SingletonCount     int
	ComponentBreakdown []ComponentStats
	SingletonTypes     []string
}

// ComponentStats counts the live components of one type.
type ComponentStats struct {
	Type  string
	Count int
}

// CollectStats walks the storage and summarizes entity, component and singleton counts.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		TotalEntityCount: s.entities.count,
		StoreCount:       len(s.stores),
		SingletonCount:   len(s.singletons),
	}

	for typ, store := range s.stores {
		stats.ComponentBreakdown = append(stats.ComponentBreakdown, ComponentStats{
			Type:  typ.String(),
			Count: store.Len(),
		})
	}
	sort.Slice(stats.ComponentBreakdown, func(i, j int) bool {
		return stats.ComponentBreakdown[i].Type < stats.ComponentBreakdown[j].Type
	})

	for typ := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
