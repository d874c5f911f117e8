package policy

import (
	"testing"

	"go.uber.org/mock/gomock"

	"arenabot/robot"
	"arenabot/robot/mocks"
)

func newTestRunAway(t *testing.T) (*RunAway, *mocks.MockHost) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks.NewMockHost(ctrl)

	m.EXPECT().SetColor(robot.RGB(0, 150, 255))
	m.EXPECT().SetGunColor(gomock.Any())
	m.EXPECT().SetRadarColor(gomock.Any())
	m.EXPECT().SetBulletsColor(gomock.Any())
	m.EXPECT().RadarVisible(true)
	m.EXPECT().LockRadar(robot.RadarLockGun)

	r := NewRunAway()
	r.Init(m)
	return r, m
}

func TestRunAway_Run(t *testing.T) {
	r, m := newTestRunAway(t)

	// 状態を持たないので何度呼んでも同じ
	for i := 0; i < 3; i++ {
		gomock.InOrder(
			m.EXPECT().Move(50.0),
			m.EXPECT().Stop(),
			m.EXPECT().GunTurn(45.0),
			m.EXPECT().RadarTurn(90.0),
		)
		r.Run()
	}
}

func TestRunAway_OnHitWall(t *testing.T) {
	r, m := newTestRunAway(t)

	gomock.InOrder(
		m.EXPECT().Stop(),
		m.EXPECT().Reset(),
		m.EXPECT().Turn(75.0),
		m.EXPECT().Move(75.0),
	)
	r.OnHitWall()
}

func TestRunAway_OnHitByBullet(t *testing.T) {
	r, m := newTestRunAway(t)

	gomock.InOrder(
		m.EXPECT().RPrint("hit by 3 with power: 2.5"),
		m.EXPECT().SetRadarField(robot.RadarFieldRound),
		m.EXPECT().Move(-50.0),
	)
	r.OnHitByBullet(3, "enemy", 2.5)
}

func TestRunAway_OnBulletMiss(t *testing.T) {
	r, m := newTestRunAway(t)

	gomock.InOrder(
		m.EXPECT().RPrint("the bullet 4 fail"),
		m.EXPECT().GunTurn(45.0),
		m.EXPECT().SetRadarField(robot.RadarFieldLarge),
	)
	r.OnBulletMiss(4)
}

func TestRunAway_OnTargetSpotted(t *testing.T) {
	r, m := newTestRunAway(t)

	gomock.InOrder(
		m.EXPECT().SetRadarField(robot.RadarFieldRound),
		m.EXPECT().GunTurn(30.0),
		m.EXPECT().Stop(),
		m.EXPECT().SetRadarField(robot.RadarFieldNormal),
	)
	r.OnTargetSpotted(1, "enemy", robot.Position2D{X: 10, Y: 10})
}

func TestRunAway_Messages(t *testing.T) {
	r, m := newTestRunAway(t)

	gomock.InOrder(
		m.EXPECT().RPrint("collision with: 5"),
		m.EXPECT().RPrint("damn a bot collided me!"),
		m.EXPECT().RPrint("fire done on 6"),
		m.EXPECT().Stop(),
		m.EXPECT().RPrint("damn I'm Dead"),
	)
	r.OnRobotHit(5, "x")
	r.OnHitByRobot(5, "x")
	r.OnBulletHit(6, 1)
	r.OnRobotDeath()
	r.Sensors()
}
