package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath is the environment variable naming an optional settings file.
const EnvConfigPath = "SWARMPONG_CONFIG"

// Settings holds all tunable game parameters, loaded once at startup.
type Settings struct {
	World   WorldSettings   `yaml:"world"`
	Ball    BallSettings    `yaml:"ball"`
	Paddle  PaddleSettings  `yaml:"paddle"`
	Swarm   SwarmSettings   `yaml:"swarm"`
	Session SessionSettings `yaml:"session"`
}

// WorldSettings defines the playfield bounding box. MinY sits below the
// ball-lost threshold so a dropped ball leaves play instead of bouncing.
type WorldSettings struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
	MinZ float64 `yaml:"min_z"`
	MaxZ float64 `yaml:"max_z"`
}

// BallSettings tunes the ball body and its speed envelope.
type BallSettings struct {
	Radius           float64 `yaml:"radius"`
	MaxSpeed         float64 `yaml:"max_speed"`
	MinVerticalSpeed float64 `yaml:"min_vertical_speed"`
	LaunchVX         float64 `yaml:"launch_vx"`
	LaunchVY         float64 `yaml:"launch_vy"`
}

// PaddleSettings tunes the paddle body and input response.
type PaddleSettings struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
	Speed  float64 `yaml:"speed"`
	Y      float64 `yaml:"y"`
}

// SwarmSettings tunes the alien formation layout and cadence.
type SwarmSettings struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	SpacingX     float64 `yaml:"spacing_x"`
	SpacingY     float64 `yaml:"spacing_y"`
	TopY         float64 `yaml:"top_y"`
	BaseInterval float64 `yaml:"base_interval"`
	MinInterval  float64 `yaml:"min_interval"`
	EdgeMargin   float64 `yaml:"edge_margin"`
}

// SessionSettings tunes the rules layer.
type SessionSettings struct {
	InitialLives   int     `yaml:"initial_lives"`
	BottomBoundary float64 `yaml:"bottom_boundary"`
	BallLostMargin float64 `yaml:"ball_lost_margin"`
	GraceSeconds   float64 `yaml:"grace_seconds"`
}

// Default returns the standard game settings.
func Default() Settings {
	return Settings{
		World: WorldSettings{
			MinX: -9, MaxX: 9,
			MinY: -5, MaxY: 16,
			MinZ: -2, MaxZ: 2,
		},
		Ball: BallSettings{
			Radius:           0.4,
			MaxSpeed:         20,
			MinVerticalSpeed: 2.0,
			LaunchVX:         3,
			LaunchVY:         9,
		},
		Paddle: PaddleSettings{
			Width:  4,
			Height: 0.5,
			Depth:  1,
			Speed:  15,
			Y:      1.0,
		},
		Swarm: SwarmSettings{
			Rows:         5,
			Cols:         9,
			SpacingX:     1.6,
			SpacingY:     1.2,
			TopY:         13,
			BaseInterval: 1.0,
			MinInterval:  0.2,
			EdgeMargin:   0,
		},
		Session: SessionSettings{
			InitialLives:   3,
			BottomBoundary: 0.5,
			BallLostMargin: 2.0,
			GraceSeconds:   2.0,
		},
	}
}

// Load reads settings from the YAML file at path. A missing or invalid file
// falls back to Default; settings problems never stop the game from starting.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), nil
	}
	return s, nil
}

// LoadFromEnv loads settings from the file named by the SWARMPONG_CONFIG
// environment variable, or Default when unset.
func LoadFromEnv() Settings {
	path := GetEnv(EnvConfigPath, "")
	if path == "" {
		return Default()
	}
	s, _ := Load(path)
	return s
}
