package breakout

import "math"

// Snapshot contains the simulation state for determinism checks and the
// sim command's report. Uses primitive types only for stable hashing.
// The camera is not part of it.
type Snapshot struct {
	Tick       uint64
	Phase      string
	Paused     bool
	Score      int
	Lives      int
	BricksLeft int
	Elapsed    float64

	PaddleX   float64
	BallX     float64
	BallY     float64
	BallVX    float64
	BallVY    float64
	BallStuck bool

	// Brick states (row-major), 3 ints each: Alive, Dying, Hits
	BrickData []int

	// Dying brick transforms, 3 floats each: Y, Rotation, Scale.X
	DyingData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	brickData := make([]int, len(w.Bricks)*3)
	var dyingData []float64
	for i := range w.Bricks {
		br := &w.Bricks[i]
		idx := i * 3
		brickData[idx] = boolInt(br.Alive)
		brickData[idx+1] = boolInt(br.Dying)
		brickData[idx+2] = br.Hits
		if br.Dying {
			dyingData = append(dyingData, br.Position.Y, br.Rotation, br.Scale.X)
		}
	}

	return Snapshot{
		Tick:       w.Tick,
		Phase:      w.Phase.String(),
		Paused:     w.Paused,
		Score:      w.Score,
		Lives:      w.Paddle.Lives,
		BricksLeft: w.BricksLeft(),
		Elapsed:    w.Elapsed,

		PaddleX:   w.Paddle.Position.X,
		BallX:     w.Ball.Position.X,
		BallY:     w.Ball.Position.Y,
		BallVX:    w.Ball.Velocity.X,
		BallVY:    w.Ball.Velocity.Y,
		BallStuck: w.Ball.Stuck,

		BrickData: brickData,
		DyingData: dyingData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range []byte(snap.Phase) {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(boolInt(snap.Paused)) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksLeft)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Elapsed)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + uint64(boolInt(snap.BallStuck)) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.DyingData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
