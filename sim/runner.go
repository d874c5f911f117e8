package sim

import (
	"context"
	"log/slog"

	"arenabot/robot"
)

// Summary はシミュレーション結果です。
type Summary struct {
	Ticks      int              `json:"ticks"`
	Position   robot.Position2D `json:"position"`
	Heading    float64          `json:"heading"`
	GunHeading float64          `json:"gun_heading"`
	Stats      Stats            `json:"stats"`
	Spotted    int              `json:"spotted"`
	Prints     []string         `json:"prints,omitempty"`
}

// Runner はFieldの上でボットのコールバックを1tickずつ順に呼び出します。
// コールバックは常に1つずつ完了まで実行され、再入しません。
type Runner struct {
	field *Field
	bot   robot.Robot

	initialized bool
	ticks       int
	spotted     int
}

func NewRunner(field *Field, bot robot.Robot) *Runner {
	return &Runner{field: field, bot: bot}
}

// Step は1tick進めます。初回はInitを呼んでから進めます。
func (r *Runner) Step() {
	if !r.initialized {
		r.bot.Init(r.field)
		r.initialized = true
	}
	r.ticks++

	r.bot.Run()
	r.bot.Sensors()
	r.field.scan()

	for _, ev := range r.field.drain() {
		r.deliver(ev)
	}
}

func (r *Runner) deliver(ev event) {
	switch ev.kind {
	case evHitWall:
		r.bot.OnHitWall()
	case evTargetSpotted:
		r.spotted++
		r.bot.OnTargetSpotted(ev.target.ID, ev.target.Name, ev.target.Position)
	case evBulletHit:
		r.bot.OnBulletHit(ev.target.ID, ev.bullet)
	case evBulletMiss:
		r.bot.OnBulletMiss(ev.bullet)
	}
}

// Run は ticks 回進めます。ctxがキャンセルされた時点で打ち切ります。
func (r *Runner) Run(ctx context.Context, ticks int) (Summary, error) {
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return r.Summary(), err
		}
		r.Step()
	}
	s := r.Summary()
	slog.DebugContext(ctx, "simulation finished",
		"ticks", s.Ticks,
		"shots", s.Stats.Shots,
		"hits", s.Stats.Hits,
		"wallHits", s.Stats.WallHits,
	)
	return s, nil
}

// Summary は現在までの集計を返します。
func (r *Runner) Summary() Summary {
	b := r.field.Body()
	return Summary{
		Ticks:      r.ticks,
		Position:   b.Position,
		Heading:    b.Heading,
		GunHeading: b.GunHeading,
		Stats:      r.field.Stats(),
		Spotted:    r.spotted,
		Prints:     r.field.Prints(),
	}
}
