package robot

// BotID はアリーナ内のボット識別子です。
type BotID uint32

// BulletID は発射された弾の識別子です。
type BulletID uint32

// Robot はホストから呼び出されるボットのコールバック契約です。
// ホストは同時に1つのメソッドしか呼び出しません。
type Robot interface {
	// Init は開始時に一度だけ呼ばれます。
	Init(host Host)
	// Run は毎tick呼ばれます。
	Run()
	// Sensors は毎tick Run の後に呼ばれます。
	Sensors()

	OnHitWall()
	OnRobotHit(id BotID, name string)
	OnHitByRobot(id BotID, name string)
	OnHitByBullet(id BotID, name string, power float64)
	OnBulletHit(id BotID, bullet BulletID)
	OnBulletMiss(bullet BulletID)
	OnRobotDeath()
	OnTargetSpotted(id BotID, name string, pos Position2D)
}

// Nop は全コールバックを何もしない実装です。ポリシーに埋め込んで使います。
type Nop struct{}

var _ Robot = Nop{}

func (Nop) Init(Host)                                 {}
func (Nop) Run()                                      {}
func (Nop) Sensors()                                  {}
func (Nop) OnHitWall()                                {}
func (Nop) OnRobotHit(BotID, string)                  {}
func (Nop) OnHitByRobot(BotID, string)                {}
func (Nop) OnHitByBullet(BotID, string, float64)      {}
func (Nop) OnBulletHit(BotID, BulletID)               {}
func (Nop) OnBulletMiss(BulletID)                     {}
func (Nop) OnRobotDeath()                             {}
func (Nop) OnTargetSpotted(BotID, string, Position2D) {}
