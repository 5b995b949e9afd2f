// Package config provides YAML-based configuration loading, difficulty
// presets, and validation for the breakout3d simulation.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/breakout3d/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Breakout contains all tunable parameters of the simulation.
type Breakout struct {
	Arena    Arena    `yaml:"arena"`
	Paddle   Paddle   `yaml:"paddle"`
	Ball     Ball     `yaml:"ball"`
	Bricks   Bricks   `yaml:"bricks"`
	Dying    Dying    `yaml:"dying"`
	Gameplay Gameplay `yaml:"gameplay"`
	Camera   Camera   `yaml:"camera"`
}

// Arena defines the playfield bounds in world units.
type Arena struct {
	WallX    float64 `yaml:"wall_x"`    // Ball bounces at ±WallX
	Ceiling  float64 `yaml:"ceiling"`   // Ball bounces above this Y
	Floor    float64 `yaml:"floor"`     // Ball at or below this Y is a miss
	TrackMin float64 `yaml:"track_min"` // Left limit of the paddle track
	TrackMax float64 `yaml:"track_max"` // Right limit of the paddle track
}

// Paddle defines the player's paddle.
type Paddle struct {
	Y     float64   `yaml:"y"`
	Scale core.Vec3 `yaml:"scale"` // Half-extents
	Speed float64   `yaml:"speed"` // World units per second
}

// Ball defines the ball.
type Ball struct {
	Scale          core.Vec3 `yaml:"scale"`           // Half-extents
	LaunchVelocity core.Vec3 `yaml:"launch_velocity"` // Velocity on release, units per second
}

// Bricks defines the destructible brick grid.
type Bricks struct {
	Rows     int       `yaml:"rows"`
	Cols     int       `yaml:"cols"`
	Scale    core.Vec3 `yaml:"scale"`     // Half-extents
	OriginX  float64   `yaml:"origin_x"`  // X of column 0
	OriginY  float64   `yaml:"origin_y"`  // Y of row 0 (top row)
	SpacingX float64   `yaml:"spacing_x"` // Distance between column centers
	SpacingY float64   `yaml:"spacing_y"` // Distance between row centers
	Hits     int       `yaml:"hits"`      // Starting hits for every brick
	RowHits  []int     `yaml:"row_hits"`  // Optional per-row override, top row first
}

// HitsForRow returns the starting hit count of bricks in a row.
func (b Bricks) HitsForRow(row int) int {
	if row >= 0 && row < len(b.RowHits) {
		return b.RowHits[row]
	}
	return b.Hits
}

// Dying defines the destroyed-brick animation.
type Dying struct {
	FallSpeed   float64 `yaml:"fall_speed"`   // Units per second
	SpinStep    float64 `yaml:"spin_step"`    // Degrees added per frame
	ShrinkRate  float64 `yaml:"shrink_rate"`  // Scale lost per second
	RemoveBelow float64 `yaml:"remove_below"` // Animation ends under this Y
}

// Gameplay defines scoring and timing rules.
type Gameplay struct {
	Lives       int     `yaml:"lives"`
	CrackPoints int     `yaml:"crack_points"` // Awarded on every brick hit
	KillPoints  int     `yaml:"kill_points"`  // Extra points when a brick dies
	MaxDelta    float64 `yaml:"max_delta"`    // Upper bound on a frame's dt in seconds
}

// Camera defines viewer behaviour.
type Camera struct {
	FOV               float64 `yaml:"fov"`                // Degrees
	TransitionSeconds float64 `yaml:"transition_seconds"` // Preset switch duration
	MouseSensitivity  float64 `yaml:"mouse_sensitivity"`  // Degrees per mouse unit
}

// Validate checks that the configuration describes a playable game.
func (c *Breakout) Validate() error {
	switch {
	case c.Bricks.Rows < 1 || c.Bricks.Cols < 1:
		return fmt.Errorf("%w: bricks grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Bricks.Rows, c.Bricks.Cols)
	case len(c.Bricks.RowHits) > c.Bricks.Rows:
		return fmt.Errorf("%w: bricks.row_hits has %d entries for %d rows", ErrInvalidConfig, len(c.Bricks.RowHits), c.Bricks.Rows)
	case c.Arena.TrackMin >= c.Arena.TrackMax:
		return fmt.Errorf("%w: arena.track_min (%g) must be below track_max (%g)", ErrInvalidConfig, c.Arena.TrackMin, c.Arena.TrackMax)
	case c.Arena.Floor >= c.Arena.Ceiling:
		return fmt.Errorf("%w: arena.floor (%g) must be below ceiling (%g)", ErrInvalidConfig, c.Arena.Floor, c.Arena.Ceiling)
	case c.Arena.WallX <= 0:
		return fmt.Errorf("%w: arena.wall_x must be positive", ErrInvalidConfig)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: gameplay.lives must be at least 1", ErrInvalidConfig)
	case c.Gameplay.MaxDelta <= 0:
		return fmt.Errorf("%w: gameplay.max_delta must be positive", ErrInvalidConfig)
	case !positive(c.Paddle.Scale) || !positive(c.Ball.Scale) || !positive(c.Bricks.Scale):
		return fmt.Errorf("%w: paddle, ball and brick scales must be positive on X and Y", ErrInvalidConfig)
	case 2*c.Paddle.Scale.X >= c.Arena.TrackMax-c.Arena.TrackMin:
		return fmt.Errorf("%w: paddle is wider than its track", ErrInvalidConfig)
	}
	return nil
}

func positive(v core.Vec3) bool {
	return v.X > 0 && v.Y > 0
}
