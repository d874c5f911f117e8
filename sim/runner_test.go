package sim

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"arenabot/policy"
	"arenabot/robot"
)

// stateVector は巡回状態が示す進行方向です。
func stateVector(s policy.PatrolState) (robot.Position2D, bool) {
	switch s {
	case policy.StateMovingUp:
		return robot.Position2D{X: 0, Y: -1}, true
	case policy.StateMovingDown:
		return robot.Position2D{X: 0, Y: 1}, true
	case policy.StateMovingLeft:
		return robot.Position2D{X: -1, Y: 0}, true
	case policy.StateMovingRight:
		return robot.Position2D{X: 1, Y: 0}, true
	}
	return robot.Position2D{}, false
}

func TestRunner_ReverserPatrol(t *testing.T) {
	f := NewField(1000, 1000)
	bot := policy.NewReverser(policy.DefaultParams())
	r := NewRunner(f, bot)

	visited := map[policy.PatrolState]bool{}
	for i := 0; i < 2000; i++ {
		r.Step()

		st := bot.State()
		visited[st] = true
		want, ok := stateVector(st)
		if !ok {
			t.Fatalf("tick %d: state = %s, want a moving state", i, st)
		}
		got := robot.HeadingVector(f.Heading())
		if !near(got.X, want.X) || !near(got.Y, want.Y) {
			t.Fatalf("tick %d: heading %f does not point %s", i, f.Heading(), st)
		}
		if f.Heading() != f.GunHeading() {
			t.Fatalf("tick %d: gun %f drifted from body %f", i, f.GunHeading(), f.Heading())
		}
	}

	for _, st := range []policy.PatrolState{policy.StateMovingUp, policy.StateMovingRight, policy.StateMovingDown, policy.StateMovingLeft} {
		if !visited[st] {
			t.Errorf("state %s never visited", st)
		}
	}

	s := r.Summary()
	if s.Stats.WallHits != 0 {
		t.Errorf("WallHits = %d, want 0", s.Stats.WallHits)
	}
	if s.Ticks != 2000 {
		t.Errorf("Ticks = %d, want 2000", s.Ticks)
	}
}

func TestRunner_ReverserStaysInsidePatrolArea(t *testing.T) {
	f := NewField(1000, 800)
	p := policy.DefaultParams()
	bot := policy.NewReverser(p)
	r := NewRunner(f, bot)
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 3000; i++ {
		r.Step()
		// 時々被弾させて周回方向を反転させる
		if rng.IntN(50) == 0 {
			bot.OnHitByBullet(9, "enemy", 1)
		}

		wx, wy := bot.Boundary()
		pos := f.Position()
		if pos.X < wx-2*p.MoveStep || pos.X > 1000-wx+2*p.MoveStep ||
			pos.Y < wy-2*p.MoveStep || pos.Y > 800-wy+2*p.MoveStep {
			t.Fatalf("tick %d: position (%f, %f) left the patrol area", i, pos.X, pos.Y)
		}
	}
	if got := f.Stats().WallHits; got != 0 {
		t.Errorf("WallHits = %d, want 0", got)
	}
}

func TestRunner_ReverserFiresAtTarget(t *testing.T) {
	f := NewField(1000, 1000)
	f.AddTarget(7, "sitting-duck", robot.Position2D{X: 500, Y: 700})
	r := NewRunner(f, policy.NewReverser(policy.DefaultParams()))

	r.Step()
	r.Step()

	s := r.Summary()
	if s.Stats.Shots == 0 {
		t.Fatal("reverser did not fire at target in range")
	}
	if s.Stats.Hits == 0 {
		t.Error("shot did not hit")
	}
	if s.Spotted == 0 {
		t.Error("target was never spotted")
	}
	if !slices.Contains(s.Prints, "Hit target: 7") {
		t.Errorf("Prints = %v, want hit report", s.Prints)
	}
	if f.RadarField() != robot.RadarFieldThin {
		t.Errorf("RadarField = %s, want thin after hit", f.RadarField())
	}
}

func TestRunner_ReverserIgnoresFarTarget(t *testing.T) {
	f := NewField(1000, 1000)
	f.AddTarget(7, "far", robot.Position2D{X: 500, Y: 900})
	r := NewRunner(f, policy.NewReverser(policy.DefaultParams()))

	for i := 0; i < 5; i++ {
		r.Step()
	}
	if got := f.Stats().Shots; got != 0 {
		t.Errorf("Shots = %d, want 0", got)
	}
}

func TestRunner_Kamikaze(t *testing.T) {
	f := NewField(1000, 1000)
	target := robot.Position2D{X: 700, Y: 700}
	f.AddTarget(3, "prey", target)
	bot := policy.NewKamikaze(rand.New(rand.NewPCG(1, 2)))
	r := NewRunner(f, bot)

	before := f.Position().DistanceTo(target)
	r.Step()

	if !bot.TargetLocked() {
		t.Error("kamikaze did not lock onto target")
	}
	if after := f.Position().DistanceTo(target); after >= before {
		t.Errorf("distance = %f, want less than %f", after, before)
	}
	if f.RadarField() != robot.RadarFieldRound {
		t.Errorf("RadarField = %s, want round", f.RadarField())
	}
}

func TestRunner_RunAway(t *testing.T) {
	f := NewField(500, 500)
	r := NewRunner(f, policy.NewRunAway())

	s, err := r.Run(context.Background(), 500)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !s.Position.IsFinite() {
		t.Errorf("Position = %+v, want finite", s.Position)
	}
	if s.Stats.WallHits == 0 {
		t.Error("runaway should eventually hit a wall on a small map")
	}
	if s.Stats.Resets == 0 {
		t.Error("runaway resets after hitting a wall")
	}
}

func TestRunner_Run_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(NewField(100, 100), &robot.Nop{})
	s, err := r.Run(ctx, 10)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if s.Ticks != 0 {
		t.Errorf("Ticks = %d, want 0", s.Ticks)
	}
}

func TestRunner_InitOnce(t *testing.T) {
	bot := &countingBot{}
	r := NewRunner(NewField(100, 100), bot)

	r.Step()
	r.Step()
	r.Step()

	if bot.inits != 1 {
		t.Errorf("Init called %d times, want 1", bot.inits)
	}
	if bot.runs != 3 || bot.sensors != 3 {
		t.Errorf("Run/Sensors = %d/%d, want 3/3", bot.runs, bot.sensors)
	}
}

type countingBot struct {
	robot.Nop
	inits, runs, sensors int
}

func (b *countingBot) Init(robot.Host) { b.inits++ }
func (b *countingBot) Run()            { b.runs++ }
func (b *countingBot) Sensors()        { b.sensors++ }
