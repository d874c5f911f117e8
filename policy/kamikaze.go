package policy

import (
	"math/rand/v2"

	"arenabot/robot"
)

const (
	kamikazeCruise    = 100 // 索敵中の前進距離
	kamikazeOvershoot = 50  // 確実にぶつかるための追加距離
	kamikazeRamPower  = 10  // 接触時は必中なので最大火力
	kamikazeRecoil    = 20
	kamikazeWallBack  = 300
	kamikazeWallTurn  = 80
	kamikazeMaxWander = 90
)

// Kamikaze は敵を見つけたら止まらずに突っ込み、接触時に最大火力で撃つポリシーです。
// 遠距離では撃ちません。
type Kamikaze struct {
	host robot.Host
	rng  *rand.Rand

	targetLocked bool
}

var _ robot.Robot = (*Kamikaze)(nil)

// NewKamikaze はKamikazeを生成します。rngは索敵時のランダム旋回に使います。
func NewKamikaze(rng *rand.Rand) *Kamikaze {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	return &Kamikaze{rng: rng}
}

func (k *Kamikaze) Init(host robot.Host) {
	k.host = host

	// 黒・赤
	host.SetColor(robot.RGB(0, 0, 0))
	host.SetGunColor(robot.RGB(255, 0, 0))
	host.SetRadarColor(robot.RGB(255, 0, 0))
	host.SetBulletsColor(robot.RGB(255, 50, 50))

	host.SetRadarField(robot.RadarFieldRound)
	host.RadarVisible(true)
	// 常に敵の方向を向くため、レーダーを銃にロック
	host.LockRadar(robot.RadarLockGun)

	k.targetLocked = false
}

// TargetLocked は直近のtick以降に敵を捕捉したかを返します。
func (k *Kamikaze) TargetLocked() bool { return k.targetLocked }

func (k *Kamikaze) Run() {
	k.targetLocked = false
	k.host.Stop()
	k.host.Move(kamikazeCruise)
	k.host.Turn(float64(k.rng.IntN(2*kamikazeMaxWander+1) - kamikazeMaxWander))
	k.host.GunTurn(50)
	k.host.Stop()
}

func (k *Kamikaze) Sensors() {}

func (k *Kamikaze) OnTargetSpotted(id robot.BotID, name string, pos robot.Position2D) {
	k.targetLocked = true

	self := k.host.Position()
	dist := self.DistanceTo(pos)
	angle := robot.Bearing(self, pos)

	k.host.Turn(robot.NormalizeAngle(angle - k.host.Heading()))
	k.host.GunTurn(robot.NormalizeAngle(angle - k.host.GunHeading()))

	k.host.Stop()
	k.host.Move(dist + kamikazeOvershoot)
	k.host.Stop()
}

// OnRobotHit は下がらずにゼロ距離射撃し、少しだけ下がって再突入に備える。
func (k *Kamikaze) OnRobotHit(id robot.BotID, name string) {
	k.host.RPrint("Gotcha!")
	k.host.Fire(kamikazeRamPower)
	k.host.Stop()
	k.host.Move(-kamikazeRecoil)
	k.host.Stop()
}

func (k *Kamikaze) OnHitWall() {
	k.host.Stop()
	k.host.Move(-kamikazeWallBack)
	k.host.Turn(kamikazeWallTurn)
	k.host.Stop()
}

// OnHitByBullet は回避しない。捕捉はOnTargetSpottedに任せる。
func (k *Kamikaze) OnHitByBullet(id robot.BotID, name string, power float64) {
	k.host.RPrint("Target Updated: " + name)
}

func (k *Kamikaze) OnRobotDeath() {
	k.host.RPrint("I'll be back...")
}

func (k *Kamikaze) OnBulletHit(id robot.BotID, bullet robot.BulletID) {
	k.host.RPrint("Hit!")
}

func (k *Kamikaze) OnBulletMiss(bullet robot.BulletID) {}

func (k *Kamikaze) OnHitByRobot(id robot.BotID, name string) {
	k.host.RPrint("You dare hit me?!")
	k.host.Fire(kamikazeRamPower)
}
