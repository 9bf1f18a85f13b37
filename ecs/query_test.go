package ecs_test

import (
	"testing"

	"github.com/plus3/blockfall/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 1, DY: 1})
	storage.Spawn(Position{X: 3, Y: 4}, Velocity{DX: 2, DY: 2})
	storage.Spawn(Position{X: 5, Y: 6}, Velocity{DX: 3, DY: 3}, Health{Current: 100, Max: 100})
	storage.Spawn(Position{X: 7, Y: 8})

	query := ecs.NewQuery[struct {
		*Position
		*Velocity
	}](storage)

	t.Run("panics without execute", func(t *testing.T) {
		fresh := ecs.NewQuery[struct{ *Position }](storage)
		assert.Panics(t, func() {
			for range fresh.Iter() {
			}
		})
	})

	t.Run("execute builds cache", func(t *testing.T) {
		query.Execute()
		assert.Equal(t, 3, countValues(query))

		_, first, ok := query.First()
		assert.True(t, ok)
		assert.NotNil(t, first.Velocity)
	})

	t.Run("cache is a snapshot until the next execute", func(t *testing.T) {
		query.Execute()
		storage.Spawn(Position{}, Velocity{})
		assert.Equal(t, 3, countValues(query))

		query.Execute()
		assert.Equal(t, 4, countValues(query))
	})

	t.Run("values share component pointers", func(t *testing.T) {
		query.Execute()
		for item := range query.Values() {
			item.Position.X += 100
		}

		query.Execute()
		for item := range query.Values() {
			assert.GreaterOrEqual(t, item.Position.X, 100)
		}
	})
}

func countValues[T any](q *ecs.Query[T]) int {
	n := 0
	for range q.Values() {
		n++
	}
	return n
}
