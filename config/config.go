package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"circlesim/game"
	"circlesim/protocol"
)

type Config struct {
	Addr        string
	NumBodies   int
	Width       float64
	Height      float64
	Gravity     float64
	Restitution float64
	TickHz      int
	BroadcastHz int
	SendBuffer  int
	Seed        uint64
}

func Default() Config {
	return Config{
		Addr:        ":8080",
		NumBodies:   game.NumBodies,
		Width:       game.WorldWidth,
		Height:      game.WorldHeight,
		Gravity:     game.Gravity,
		Restitution: game.Restitution,
		TickHz:      protocol.SimTickHz,
		BroadcastHz: protocol.BroadcastHz,
		SendBuffer:  4,
	}
}

// Load reads the given env files (".env" when none are named) and then the
// process environment, which wins. A missing file is not an error.
func Load(files ...string) (Config, error) {
	fileEnv, err := godotenv.Read(files...)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read env file: %w", err)
		}
		log.Println("config: no env file found, using process environment")
		fileEnv = map[string]string{}
	} else {
		log.Println("config: loaded environment variables from file")
	}

	e := env{file: fileEnv}
	c := Default()
	c.Addr = e.str("ADDR", c.Addr)
	c.NumBodies = e.intVal("BODY_COUNT", c.NumBodies)
	c.Width = e.floatVal("WORLD_WIDTH", c.Width)
	c.Height = e.floatVal("WORLD_HEIGHT", c.Height)
	c.Gravity = e.floatVal("GRAVITY", c.Gravity)
	c.Restitution = e.floatVal("RESTITUTION", c.Restitution)
	c.TickHz = e.intVal("TICK_HZ", c.TickHz)
	c.BroadcastHz = e.intVal("BROADCAST_HZ", c.BroadcastHz)
	c.SendBuffer = e.intVal("SEND_BUFFER", c.SendBuffer)
	c.Seed = uint64(e.intVal("SEED", 0))
	if e.err != nil {
		return Config{}, e.err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.NumBodies <= 0:
		return fmt.Errorf("config: BODY_COUNT must be > 0, got %d", c.NumBodies)
	case c.Width < 2*game.MaxRadius || c.Height < 4*game.MaxRadius:
		return fmt.Errorf("config: world %gx%g too small for radius %g", c.Width, c.Height, game.MaxRadius)
	case c.Restitution < 0 || c.Restitution > 1:
		return fmt.Errorf("config: RESTITUTION must be in [0, 1], got %g", c.Restitution)
	case c.TickHz <= 0 || c.BroadcastHz <= 0:
		return fmt.Errorf("config: TICK_HZ and BROADCAST_HZ must be > 0")
	case c.TickHz%c.BroadcastHz != 0:
		return fmt.Errorf("config: TICK_HZ %d not a multiple of BROADCAST_HZ %d", c.TickHz, c.BroadcastHz)
	case c.SendBuffer <= 0:
		return fmt.Errorf("config: SEND_BUFFER must be > 0, got %d", c.SendBuffer)
	}
	return nil
}

func (c Config) Params() game.Params {
	return game.Params{
		Gravity:     c.Gravity,
		Restitution: c.Restitution,
		Width:       c.Width,
		Height:      c.Height,
	}
}

// RandSeed is Seed, or the current time when Seed is 0.
func (c Config) RandSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}

// env looks keys up in the process environment, then the env file, and
// keeps the first parse error.
type env struct {
	file map[string]string
	err  error
}

func (e *env) lookup(key string) (string, bool) {
	if v, err := GetEnvVariable(key); err == nil {
		return v, true
	}
	v, ok := e.file[key]
	return v, ok && v != ""
}

func (e *env) str(key, def string) string {
	if v, ok := e.lookup(key); ok {
		return v
	}
	return def
}

func (e *env) intVal(key string, def int) int {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil && e.err == nil {
		e.err = fmt.Errorf("config: %s: %w", key, err)
	}
	return n
}

func (e *env) floatVal(key string, def float64) float64 {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil && e.err == nil {
		e.err = fmt.Errorf("config: %s: %w", key, err)
	}
	return f
}
