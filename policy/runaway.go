package policy

import (
	"fmt"

	"arenabot/robot"
)

// RunAway は状態を持たず、毎tick同じ前進・砲塔旋回を繰り返すポリシーです。
// 撃たれたら後退し、レーダーを全周に広げます。
type RunAway struct {
	host robot.Host
}

var _ robot.Robot = (*RunAway)(nil)

func NewRunAway() *RunAway {
	return &RunAway{}
}

func (r *RunAway) Init(host robot.Host) {
	r.host = host

	host.SetColor(robot.RGB(0, 150, 255))
	host.SetGunColor(robot.RGB(100, 200, 255))
	host.SetRadarColor(robot.RGB(0, 100, 200))
	host.SetBulletsColor(robot.RGB(150, 220, 255))

	host.RadarVisible(true)
	host.LockRadar(robot.RadarLockGun)
}

func (r *RunAway) Run() {
	r.host.Move(50)
	r.host.Stop()
	r.host.GunTurn(45)
	r.host.RadarTurn(90)
}

func (r *RunAway) Sensors() {}

func (r *RunAway) OnHitWall() {
	r.host.Stop()
	r.host.Reset()
	r.host.Turn(75)
	r.host.Move(75)
}

func (r *RunAway) OnRobotHit(id robot.BotID, name string) {
	r.host.RPrint(fmt.Sprintf("collision with: %d", id))
}

func (r *RunAway) OnHitByRobot(id robot.BotID, name string) {
	r.host.RPrint("damn a bot collided me!")
}

func (r *RunAway) OnHitByBullet(id robot.BotID, name string, power float64) {
	r.host.RPrint(fmt.Sprintf("hit by %d with power: %g", id, power))
	r.host.SetRadarField(robot.RadarFieldRound)
	r.host.Move(-50)
}

func (r *RunAway) OnBulletHit(id robot.BotID, bullet robot.BulletID) {
	r.host.RPrint(fmt.Sprintf("fire done on %d", id))
	r.host.Stop()
}

func (r *RunAway) OnBulletMiss(bullet robot.BulletID) {
	r.host.RPrint(fmt.Sprintf("the bullet %d fail", bullet))
	r.host.GunTurn(45)
	r.host.SetRadarField(robot.RadarFieldLarge)
}

func (r *RunAway) OnRobotDeath() {
	r.host.RPrint("damn I'm Dead")
}

func (r *RunAway) OnTargetSpotted(id robot.BotID, name string, pos robot.Position2D) {
	r.host.SetRadarField(robot.RadarFieldRound)
	r.host.GunTurn(30)
	r.host.Stop()
	r.host.SetRadarField(robot.RadarFieldNormal)
}
