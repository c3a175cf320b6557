package track

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/automoto/dashrunner/config"
)

// Level describes a catalogue entry
type Level struct {
	ID         int
	Name       string
	Background color.RGBA
	layout     func(b *builder)
}

var levels = map[int]Level{
	0: {
		ID:         0,
		Name:       "Stereo Madness",
		Background: color.RGBA{R: 0x00, G: 0x66, B: 0xff, A: 0xff},
		layout:     stereoMadness,
	},
	1: {
		ID:         1,
		Name:       "Back on Track",
		Background: color.RGBA{R: 0x7a, G: 0x2b, B: 0xd6, A: 0xff},
		layout:     backOnTrack,
	},
	2: {
		ID:         2,
		Name:       "Polargeist",
		Background: color.RGBA{R: 0x13, G: 0xa3, B: 0x6b, A: 0xff},
		layout:     polargeist,
	},
	19: {
		ID:         19,
		Name:       "Deadlocked",
		Background: color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
		layout:     deadlocked,
	},
}

// Levels returns the catalogue ordered by ID.
func Levels() []Level {
	out := make([]Level, 0, len(levels))
	for _, l := range levels {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns the catalogue entry for id.
func Lookup(id int) (Level, bool) {
	l, ok := levels[id]
	return l, ok
}

// Build lays out the level with the given id. The result is deterministic.
func Build(id int) (*Track, error) {
	l, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
	}

	b := &builder{}
	l.layout(b)

	t, err := New(Spec{
		LevelID:    l.ID,
		Name:       l.Name,
		Obstacles:  b.obstacles,
		Length:     config.Track.StartX + config.Track.TailLength,
		Background: l.Background,
	})
	if err != nil {
		return nil, fmt.Errorf("build level %d (%s): %w", id, l.Name, err)
	}
	return t, nil
}

type builder struct {
	obstacles []Obstacle
}

func (b *builder) add(o Obstacle) {
	b.obstacles = append(b.obstacles, o)
}

// spike places a hazard whose bottom sits at bottomY.
func (b *builder) spike(x, bottomY float64) {
	size := config.Track.SpikeSize
	b.add(Obstacle{Kind: KindHazard, X: x, Y: bottomY - size, W: size, H: size})
}

func (b *builder) block(x, y, w, h float64) {
	b.add(Obstacle{Kind: KindPlatform, X: x, Y: y, W: w, H: h})
}

// portal spans the full playfield height.
func (b *builder) portal(x float64, mode config.ModeID) {
	top := config.Physics.CeilingY
	b.add(Obstacle{
		Kind: KindPortal,
		X:    x,
		Y:    top,
		W:    config.Track.PortalWidth,
		H:    config.Physics.FloorY - top,
		Mode: mode,
	})
}

func stereoMadness(b *builder) {
	floor := config.Physics.FloorY
	x := config.Track.StartX
	for i := 0; i < 40; i++ {
		at := x + float64(i)*450
		b.spike(at, floor)
		if i%5 == 0 {
			b.block(at+120, floor-40, 80, 40)
		}
		if i == 20 {
			b.portal(at, config.ModeShip)
		}
	}
}

func backOnTrack(b *builder) {
	floor := config.Physics.FloorY
	x := config.Track.StartX
	for i := 0; i < 45; i++ {
		at := x + float64(i)*380
		switch i % 3 {
		case 0:
			b.spike(at, floor)
		case 1:
			b.block(at, floor-40, 80, 40)
			b.spike(at+80, floor)
		case 2:
			b.block(at, floor-40, 80, 40)
			b.block(at+80, floor-80, 80, 80)
		}
	}
}

func polargeist(b *builder) {
	floor := config.Physics.FloorY
	x := config.Track.StartX
	for i := 0; i < 60; i++ {
		at := x + float64(i)*300
		switch {
		case i == 15:
			b.portal(at, config.ModeWave)
		case i == 40:
			b.portal(at, config.ModeCube)
		case i > 15 && i < 40:
			// Wave section: alternate floor and raised spikes
			if i%2 == 0 {
				b.spike(at, floor)
			} else {
				b.spike(at, floor-160)
			}
		default:
			b.spike(at, floor)
			if i%4 == 0 {
				b.block(at+150, floor-40, 120, 40)
			}
		}
	}
}

func deadlocked(b *builder) {
	floor := config.Physics.FloorY
	x := config.Track.StartX
	for i := 0; i < 100; i++ {
		at := x + float64(i)*200
		if i%2 == 0 {
			b.spike(at, floor)
		} else {
			b.spike(at, floor-80)
		}
		if i%15 == 0 {
			b.portal(at, config.ModeWave)
		}
	}
}
