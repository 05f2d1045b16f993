// Package config loads game tuning, window settings and key bindings from
// an INI file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"gopkg.in/ini.v1"

	"drift/internal/sim"
)

// Window defaults.
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
)

// Action names used in the [keys] section.
const (
	ActionForward = "forward"
	ActionBack    = "back"
	ActionLeft    = "left"
	ActionRight   = "right"
	ActionDrift   = "drift"
)

var actions = []string{ActionForward, ActionBack, ActionLeft, ActionRight, ActionDrift}

type Window struct {
	Width  int
	Height int
	VSync  bool
}

type Config struct {
	Tuning sim.Tuning
	Window Window

	Track         int
	VehicleWidth  float64
	VehicleHeight float64

	// Bindings maps action → key token, in the order the file lists them.
	Bindings *orderedmap.OrderedMap[string, string]
}

func Default() Config {
	return Config{
		Tuning:        sim.DefaultTuning(),
		Window:        Window{Width: DefaultWindowWidth, Height: DefaultWindowHeight, VSync: true},
		Track:         1,
		VehicleWidth:  sim.DefaultVehicleWidth,
		VehicleHeight: sim.DefaultVehicleHeight,
		Bindings:      defaultBindings(),
	}
}

func defaultBindings() *orderedmap.OrderedMap[string, string] {
	b := sim.DefaultBindings()
	m := orderedmap.NewOrderedMap[string, string]()
	m.Set(ActionForward, b.Forward)
	m.Set(ActionBack, b.Back)
	m.Set(ActionLeft, b.Left)
	m.Set(ActionRight, b.Right)
	m.Set(ActionDrift, b.Drift)
	return m
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := cfg.apply(f); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) apply(f *ini.File) error {
	t := f.Section("tuning")
	floats := []struct {
		key string
		dst *float64
	}{
		{"max_speed", &c.Tuning.MaxSpeed},
		{"drift_speed", &c.Tuning.DriftSpeed},
		{"acceleration", &c.Tuning.Acceleration},
		{"deceleration", &c.Tuning.Deceleration},
		{"turn_rate", &c.Tuning.TurnRate},
		{"drift_turn_rate", &c.Tuning.DriftTurnRate},
	}
	for _, fl := range floats {
		if err := readFloat(t, fl.key, fl.dst); err != nil {
			return err
		}
	}
	if err := readInt(t, "win_score", &c.Tuning.WinScore); err != nil {
		return err
	}
	if err := readDuration(t, "win_delay", &c.Tuning.WinDelay); err != nil {
		return err
	}

	w := f.Section("window")
	if err := readInt(w, "width", &c.Window.Width); err != nil {
		return err
	}
	if err := readInt(w, "height", &c.Window.Height); err != nil {
		return err
	}
	if w.HasKey("vsync") {
		v, err := w.Key("vsync").Bool()
		if err != nil {
			return fmt.Errorf("[window] vsync: %w", err)
		}
		c.Window.VSync = v
	}

	g := f.Section("game")
	if err := readInt(g, "track", &c.Track); err != nil {
		return err
	}
	if err := readFloat(g, "vehicle_width", &c.VehicleWidth); err != nil {
		return err
	}
	if err := readFloat(g, "vehicle_height", &c.VehicleHeight); err != nil {
		return err
	}

	return c.applyKeys(f.Section("keys"))
}

// applyKeys puts the actions listed in the file first, in file order, then
// the remaining defaults.
func (c *Config) applyKeys(sec *ini.Section) error {
	keys := sec.Keys()
	if len(keys) == 0 {
		return nil
	}
	m := orderedmap.NewOrderedMap[string, string]()
	for _, k := range keys {
		name := sim.NormalizeKey(k.Name())
		if !knownAction(name) {
			return fmt.Errorf("[keys] unknown action %q", k.Name())
		}
		m.Set(name, sim.NormalizeKey(k.Value()))
	}
	for _, name := range c.Bindings.Keys() {
		if _, ok := m.Get(name); !ok {
			v, _ := c.Bindings.Get(name)
			m.Set(name, v)
		}
	}
	c.Bindings = m
	return nil
}

func knownAction(name string) bool {
	for _, a := range actions {
		if a == name {
			return true
		}
	}
	return false
}

func readFloat(sec *ini.Section, key string, dst *float64) error {
	if !sec.HasKey(key) {
		return nil
	}
	v, err := sec.Key(key).Float64()
	if err != nil {
		return fmt.Errorf("[%s] %s: %w", sec.Name(), key, err)
	}
	*dst = v
	return nil
}

func readInt(sec *ini.Section, key string, dst *int) error {
	if !sec.HasKey(key) {
		return nil
	}
	v, err := sec.Key(key).Int()
	if err != nil {
		return fmt.Errorf("[%s] %s: %w", sec.Name(), key, err)
	}
	*dst = v
	return nil
}

func readDuration(sec *ini.Section, key string, dst *time.Duration) error {
	if !sec.HasKey(key) {
		return nil
	}
	v, err := sec.Key(key).Duration()
	if err != nil {
		return fmt.Errorf("[%s] %s: %w", sec.Name(), key, err)
	}
	*dst = v
	return nil
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	t := c.Tuning
	switch {
	case t.MaxSpeed <= 0:
		return errors.New("max_speed must be positive")
	case t.DriftSpeed <= 0 || t.DriftSpeed >= t.MaxSpeed:
		return fmt.Errorf("drift_speed %v must be positive and below max_speed %v", t.DriftSpeed, t.MaxSpeed)
	case t.Acceleration <= 0 || t.Deceleration <= 0:
		return errors.New("acceleration and deceleration must be positive")
	case t.TurnRate <= 0 || t.DriftTurnRate <= 0:
		return errors.New("turn rates must be positive")
	case t.WinScore <= 0:
		return errors.New("win_score must be positive")
	case t.WinDelay < 0:
		return errors.New("win_delay must not be negative")
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.New("window size must be positive")
	case c.VehicleWidth <= 0 || c.VehicleHeight <= 0:
		return errors.New("vehicle size must be positive")
	case c.Track < 1:
		return errors.New("track must be 1 or higher")
	}
	for _, a := range actions {
		v, ok := c.Bindings.Get(a)
		if !ok || v == "" {
			return fmt.Errorf("no key bound to %s", a)
		}
	}
	return nil
}

// Keys returns the bindings as the simulation consumes them.
func (c Config) Keys() sim.Bindings {
	get := func(a string) string {
		v, _ := c.Bindings.Get(a)
		return v
	}
	return sim.Bindings{
		Forward: get(ActionForward),
		Back:    get(ActionBack),
		Left:    get(ActionLeft),
		Right:   get(ActionRight),
		Drift:   get(ActionDrift),
	}
}

// Controls lists "action: key" lines in binding order.
func (c Config) Controls() []string {
	out := make([]string, 0, c.Bindings.Len())
	for _, a := range c.Bindings.Keys() {
		v, _ := c.Bindings.Get(a)
		out = append(out, fmt.Sprintf("%-8s %s", a+":", v))
	}
	return out
}
