package systems

import (
	"fmt"
	"math"
	"sort"

	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/logging"
	"github.com/automoto/dashrunner/tags"
	"github.com/automoto/dashrunner/track"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewTrackSpace builds a collision space holding one object per obstacle,
// tagged by kind, with the obstacle's track index in Data.
func NewTrackSpace(t *track.Track) *resolv.Space {
	cell := cfg.Collision.CellSize

	right := t.Length() + cfg.Runner.X + cfg.Runner.Width
	for _, o := range t.Obstacles() {
		right = math.Max(right, o.Right())
	}
	width := int(math.Ceil(right)) + cell
	height := int(math.Ceil(cfg.Physics.FloorY)) + cell

	space := resolv.NewSpace(width, height, cell, cell)
	for i := 0; i < t.Len(); i++ {
		o := t.At(i)
		obj := resolv.NewObject(o.X, o.Y, o.W, o.H, tags.ResolvObstacle, kindTag(o.Kind))
		obj.SetShape(resolv.NewRectangle(0, 0, o.W, o.H))
		obj.Data = i
		space.Add(obj)
	}
	return space
}

func kindTag(k track.Kind) string {
	switch k {
	case track.KindHazard:
		return tags.ResolvHazard
	case track.KindPlatform:
		return tags.ResolvPlatform
	case track.KindPortal:
		return tags.ResolvPortal
	}
	panic(fmt.Sprintf("unhandled obstacle kind %s", k))
}

// NewHitbox adds the runner's hitbox to space. SyncHitbox places it.
func NewHitbox(space *resolv.Space) *resolv.Object {
	inset := cfg.Collision.HitboxInset
	w := cfg.Runner.Width - 2*inset
	h := cfg.Runner.Height - 2*inset

	hit := resolv.NewObject(0, 0, w, h, tags.ResolvRunner)
	hit.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Add(hit)
	return hit
}

// SyncHitbox moves hit to the runner's inset box in world coordinates.
func SyncHitbox(hit *resolv.Object, obj *components.ObjectData, scroll float64) {
	inset := cfg.Collision.HitboxInset
	hit.X = scroll + obj.X + inset
	hit.Y = obj.Y + inset
	hit.Update()
}

// Overlaps reports strict overlap; touching edges do not count.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Nearby returns the obstacles sharing a space cell with hit.
func Nearby(hit *resolv.Object) []*resolv.Object {
	check := hit.Check(0, 0, tags.ResolvObstacle)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tags.ResolvObstacle)
}

// Contacts returns the obstacles hit overlaps, in track order.
func Contacts(hit *resolv.Object) []*resolv.Object {
	var out []*resolv.Object
	for _, o := range Nearby(hit) {
		if Overlaps(hit, o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return trackIndex(out[i]) < trackIndex(out[j]) })

	// An object spanning several cells can be reported more than once
	uniq := out[:0]
	for i, o := range out {
		if i == 0 || o != out[i-1] {
			uniq = append(uniq, o)
		}
	}
	return uniq
}

func trackIndex(o *resolv.Object) int {
	return o.Data.(int)
}

// UpdateCollisions applies the effect of every obstacle the runner's hitbox
// overlaps, in track order. Processing stops at the first lethal effect.
func UpdateCollisions(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil || level.Track == nil {
		return
	}

	tags.Runner.Each(ecs.World, func(e *donburi.Entry) {
		if components.Crash.Get(e).Active {
			return
		}

		obj := components.Object.Get(e)
		hit := components.Hitbox.Get(e).Object
		SyncHitbox(hit, obj, level.Scroll)

		next := 0
		for {
			idx, ok := firstContact(hit, next)
			if !ok {
				return
			}
			next = idx + 1
			if !applyObstacle(ecs, e, level.Track.At(idx)) {
				return
			}
			// A landing moves the runner; later obstacles test the new box
			SyncHitbox(hit, obj, level.Scroll)
		}
	})
}

// firstContact returns the lowest track index at or after from that hit overlaps.
func firstContact(hit *resolv.Object, from int) (int, bool) {
	for _, o := range Contacts(hit) {
		if i := trackIndex(o); i >= from {
			return i, true
		}
	}
	return 0, false
}

// applyObstacle resolves a single overlap and reports whether the runner survived.
func applyObstacle(ecs *ecs.ECS, e *donburi.Entry, o track.Obstacle) bool {
	switch o.Kind {
	case track.KindHazard:
		logging.Logger.Debug().Float64("x", o.X).Msg("hazard hit")
		CrashRunner(ecs, e)
		return false

	case track.KindPlatform:
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)

		// Decided on the pre-move position so fast falls still land
		if physics.PrevY+obj.H <= o.Y+cfg.Collision.LandingTolerance {
			obj.Y = o.Y - obj.H
			physics.SpeedY = 0
			land(obj, physics, components.Mode.Get(e).Current)
			return true
		}
		logging.Logger.Debug().Float64("x", o.X).Msg("platform side impact")
		CrashRunner(ecs, e)
		return false

	case track.KindPortal:
		mode := components.Mode.Get(e)
		if mode.Current != o.Mode {
			mode.Current = o.Mode
			publish(ecs, components.EventModeChanged, e)
		}
		return true
	}

	panic(fmt.Sprintf("unhandled obstacle kind %s", o.Kind))
}
