package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

// relocateAttempts bounds the retries when a new food cell repeats the old one.
const relocateAttempts = 16

type FoodManager struct {
	food         *entity.Food
	collisionMgr *CollisionManager
	eaten        int
}

func NewFoodManager(rng types.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		food:         entity.NewFood(rng),
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) Food() *entity.Food {
	return fm.food
}

// Place puts the food on a given cell.
func (fm *FoodManager) Place(p types.Point) {
	fm.food.Position = p
}

func (fm *FoodManager) Eaten() int {
	return fm.eaten
}

// Consume grows the snake and relocates the food when the head is on it.
func (fm *FoodManager) Consume(snake *entity.Snake, rng types.Rand) bool {
	if !fm.collisionMgr.IsFoodCollision(snake.Head(), fm.food) {
		return false
	}
	snake.Grow()
	fm.eaten++

	old := fm.food.Position
	for i := 0; i < relocateAttempts && fm.food.Position == old; i++ {
		fm.food.Relocate(rng)
	}
	return true
}
