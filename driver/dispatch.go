package driver

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"arenabot/domain"
	"arenabot/robot"
)

// dispatch はイベントをボットのコールバックに変換する唯一の関数です。
// loop のゴルーチン上でのみ呼ばれます。
func (d *Driver) dispatch(ctx context.Context, ev domain.Event) error {
	if e, ok := ev.(domain.InitEvent); ok {
		d.host.setMapSize(e.Width, e.Height)
		d.host.setStatus(e.Status)
		d.initialized = true
		return d.invoke(ctx, "Init", func() { d.bot.Init(d.host) })
	}
	if !d.initialized {
		return fmt.Errorf("%w: %s", ErrNotInitialized, ev.SubType())
	}

	switch e := ev.(type) {
	case domain.TickEvent:
		d.host.setStatus(e.Status)
		if err := d.invoke(ctx, "Run", d.bot.Run); err != nil {
			return err
		}
		return d.invoke(ctx, "Sensors", d.bot.Sensors)
	case domain.HitWallEvent:
		return d.invoke(ctx, "OnHitWall", d.bot.OnHitWall)
	case domain.RobotHitEvent:
		return d.invoke(ctx, "OnRobotHit", func() { d.bot.OnRobotHit(robot.BotID(e.BotID), e.Name) })
	case domain.HitByRobotEvent:
		return d.invoke(ctx, "OnHitByRobot", func() { d.bot.OnHitByRobot(robot.BotID(e.BotID), e.Name) })
	case domain.HitByBulletEvent:
		return d.invoke(ctx, "OnHitByBullet", func() { d.bot.OnHitByBullet(robot.BotID(e.BotID), e.Name, e.Power) })
	case domain.BulletHitEvent:
		return d.invoke(ctx, "OnBulletHit", func() { d.bot.OnBulletHit(robot.BotID(e.BotID), robot.BulletID(e.BulletID)) })
	case domain.BulletMissEvent:
		return d.invoke(ctx, "OnBulletMiss", func() { d.bot.OnBulletMiss(robot.BulletID(e.BulletID)) })
	case domain.RobotDeathEvent:
		return d.invoke(ctx, "OnRobotDeath", d.bot.OnRobotDeath)
	case domain.TargetSpottedEvent:
		pos := robot.Position2D{X: e.X, Y: e.Y}
		return d.invoke(ctx, "OnTargetSpotted", func() { d.bot.OnTargetSpotted(robot.BotID(e.BotID), e.Name, pos) })
	}
	return fmt.Errorf("unhandled event: %s", ev.SubType())
}

// invoke はコールバックを1つのスパンとして実行します。
// ポリシーのpanicはこのボットのこのイベントだけの失敗として扱います。
func (d *Driver) invoke(ctx context.Context, callback string, fn func()) (err error) {
	ctx, span := d.opts.Tracer.Start(ctx, "bot."+callback,
		trace.WithAttributes(
			attribute.String("bot.name", d.opts.Name),
			attribute.String("session.id", d.session.ID().String()),
		),
	)
	defer span.End()

	d.host.ctx = ctx
	defer func() {
		d.host.ctx = context.Background()
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", callback, r)
			span.RecordError(err)
			span.SetStatus(codes.Error, "panic")
			d.logger.ErrorContext(ctx, "callback panicked", "callback", callback, "panic", r)
		}
	}()

	fn()
	return nil
}
