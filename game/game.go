package game

import (
	"log"
	"os"
	"time"

	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Config holds what a game needs from its surroundings.
type Config struct {
	Speed  int // ticks per second
	Rand   types.Rand
	Logger *log.Logger
}

// DefaultConfig seeds the random source from the wall clock and logs to stderr.
func DefaultConfig() Config {
	return Config{
		Speed:  types.Speed,
		Rand:   rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		Logger: log.New(os.Stderr, "", log.LstdFlags),
	}
}

type Game struct {
	ID        string
	StartTime time.Time
	Ticks     int
	Resets    int
	Longest   int

	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	rng          types.Rand
	logger       *log.Logger
}

func NewGame(cfg Config) *Game {
	if cfg.Rand == nil {
		cfg.Rand = DefaultConfig().Rand
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	collisionMgr := manager.NewCollisionManager()
	g := &Game{
		ID:           uuid.New().String(),
		StartTime:    time.Now(),
		Longest:      1,
		snake:        entity.NewSnake(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Rand, collisionMgr),
		rng:          cfg.Rand,
		logger:       cfg.Logger,
	}
	g.logger.Printf("session %s started: %dx%d cells, %d ticks/s",
		g.ID, types.GridWidth, types.GridHeight, cfg.Speed)
	return g
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() *entity.Food {
	return g.foodMgr.Food()
}

// PlaceFood moves the food onto a given cell.
func (g *Game) PlaceFood(p types.Point) {
	g.foodMgr.Place(p)
}

// HandleEvent applies one input event. It reports false when the event asks
// the game to quit.
func (g *Game) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case Quit:
		return false
	case KeyDown:
		g.snake.SetPendingDirection(ev.Direction)
	}
	return true
}

// Step runs one tick of game logic: turn, move, eat.
func (g *Game) Step() {
	g.Ticks++
	g.snake.ApplyPendingDirection()

	length := g.snake.Length
	if g.snake.Advance(g.rng) {
		g.Resets++
		g.logger.Printf("session %s: snake hit itself at length %d, restarting", g.ID, length)
	}

	if g.foodMgr.Consume(g.snake, g.rng) && g.snake.Length > g.Longest {
		g.Longest = g.snake.Length
	}
}

// Draw renders the snake and then the food.
func (g *Game) Draw(c types.Canvas) {
	for _, d := range []types.Drawable{g.snake, g.foodMgr.Food()} {
		d.Draw(c)
	}
}

// ElapsedTime returns how long the session has been running.
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}

// End logs the session summary.
func (g *Game) End() {
	g.logger.Printf("session %s ended after %s: %d ticks, %d restarts, longest snake %d",
		g.ID, g.ElapsedTime().Round(time.Second), g.Ticks, g.Resets, g.Longest)
}
