package entity

import (
	"fmt"

	"github.com/milk9111/slingshot/ecs"
)

// NewBallAt instantiates a ball prefab centered on (x, y).
func NewBallAt(w *ecs.World, prefab string, x, y float64) (ecs.Entity, error) {
	ball, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, ball, x, y, 0); err != nil {
		ecs.DestroyEntity(w, ball)
		return 0, fmt.Errorf("ball: override transform: %w", err)
	}
	return ball, nil
}
