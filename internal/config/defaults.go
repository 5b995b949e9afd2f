package config

import (
	_ "embed"

	"github.com/vovakirdan/breakout3d/internal/core"
)

//go:embed defaults/breakout3d.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors the embedded
// YAML and is the last fallback when no YAML can be parsed.
func Default() Breakout {
	return Breakout{
		Arena: Arena{
			WallX:    11.0,
			Ceiling:  9.0,
			Floor:    -15.0,
			TrackMin: -11.25,
			TrackMax: 11.15,
		},
		Paddle: Paddle{
			Y:     -12.0,
			Scale: core.V3(1.5, 0.25, 0.5),
			Speed: 12.0,
		},
		Ball: Ball{
			Scale:          core.V3(0.25, 0.25, 0.25),
			LaunchVelocity: core.V3(3.5, 5.5, 0),
		},
		Bricks: Bricks{
			Rows:     5,
			Cols:     10,
			Scale:    core.V3(0.9, 0.4, 0.5),
			OriginX:  -9.0,
			OriginY:  7.5,
			SpacingX: 2.0,
			SpacingY: 1.0,
			Hits:     1,
		},
		Dying: Dying{
			FallSpeed:   6.0,
			SpinStep:    5.0,
			ShrinkRate:  1.5,
			RemoveBelow: -15.0,
		},
		Gameplay: Gameplay{
			Lives:       3,
			CrackPoints: 1,
			KillPoints:  3,
			MaxDelta:    0.05,
		},
		Camera: Camera{
			FOV:               45.0,
			TransitionSeconds: 0.6,
			MouseSensitivity:  0.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
