package track

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
)

var (
	ErrUnknownLevel = errors.New("unknown level")
	ErrUnknownKind  = errors.New("unknown obstacle kind")
	ErrUnknownMode  = errors.New("unknown portal mode")
	ErrZeroExtent   = errors.New("obstacle has no extent")
	ErrOutOfBounds  = errors.New("obstacle outside the playfield")
	ErrBadLength    = errors.New("track length must be positive")
)

// Spec describes a course before validation.
type Spec struct {
	LevelID    int
	Name       string
	Obstacles  []Obstacle
	Length     float64
	Background color.RGBA
}

// Track is an immutable course. Obstacles are sorted by ascending X.
type Track struct {
	levelID    int
	name       string
	obstacles  []Obstacle
	length     float64
	background color.RGBA
	maxWidth   float64
}

// New validates spec and returns a Track with its obstacles ordered by X.
// The input slice is copied.
func New(spec Spec) (*Track, error) {
	if spec.Length <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadLength, spec.Length)
	}

	obstacles := make([]Obstacle, len(spec.Obstacles))
	copy(obstacles, spec.Obstacles)
	for i, o := range obstacles {
		if err := o.validate(); err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
	}

	// Stable so obstacles sharing an x keep their authored order
	sort.SliceStable(obstacles, func(i, j int) bool {
		return obstacles[i].X < obstacles[j].X
	})

	var maxWidth float64
	for _, o := range obstacles {
		maxWidth = max(maxWidth, o.W)
	}

	return &Track{
		maxWidth:   maxWidth,
		levelID:    spec.LevelID,
		name:       spec.Name,
		obstacles:  obstacles,
		length:     spec.Length,
		background: spec.Background,
	}, nil
}

func (t *Track) LevelID() int { return t.levelID }
func (t *Track) Name() string { return t.name }
func (t *Track) Length() float64 { return t.length }
func (t *Track) Background() color.RGBA { return t.background }
func (t *Track) Len() int { return len(t.obstacles) }
func (t *Track) At(i int) Obstacle { return t.obstacles[i] }

// Obstacles returns a copy of the ordered obstacle list.
func (t *Track) Obstacles() []Obstacle {
	out := make([]Obstacle, len(t.obstacles))
	copy(out, t.obstacles)
	return out
}

// Scan walks the obstacles overlapping [minX, maxX] in ascending X and
// calls fn for each. Obstacles that end before minX are skipped; the walk
// stops at the first obstacle starting past maxX or when fn returns false.
func (t *Track) Scan(minX, maxX float64, fn func(Obstacle) bool) {
	start := sort.Search(len(t.obstacles), func(i int) bool {
		return t.obstacles[i].X >= minX-t.maxWidth
	})
	for _, o := range t.obstacles[start:] {
		if o.X > maxX {
			return
		}
		if o.Right() < minX {
			continue
		}
		if !fn(o) {
			return
		}
	}
}

// Visible calls fn for every obstacle overlapping [minX, maxX], in order.
func (t *Track) Visible(minX, maxX float64, fn func(Obstacle)) {
	t.Scan(minX, maxX, func(o Obstacle) bool {
		fn(o)
		return true
	})
}
