package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return food != nil && pos == food.Position
}

