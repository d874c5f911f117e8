package driver

import (
	"context"

	"arenabot/domain"
	"arenabot/robot"
)

// remoteHost はアリーナにコマンドを送るHostです。
// 姿勢の問い合わせには直近に受信したスナップショットで答えます。
type remoteHost struct {
	d   *Driver
	ctx context.Context

	mapSize robot.Size
	status  domain.Status
}

var _ robot.Host = (*remoteHost)(nil)

func newRemoteHost(d *Driver) *remoteHost {
	return &remoteHost{d: d, ctx: context.Background()}
}

func (h *remoteHost) setMapSize(w, hgt float64) { h.mapSize = robot.Size{Width: w, Height: hgt} }
func (h *remoteHost) setStatus(s domain.Status) { h.status = s }

func (h *remoteHost) MapSize() robot.Size        { return h.mapSize }
func (h *remoteHost) Heading() float64           { return h.status.Heading }
func (h *remoteHost) GunHeading() float64        { return h.status.GunHeading }
func (h *remoteHost) Position() robot.Position2D { return robot.Position2D{X: h.status.X, Y: h.status.Y} }

func (h *remoteHost) SetColor(c robot.Color)        { h.color(domain.CommandSubTypeSetColor, c) }
func (h *remoteHost) SetGunColor(c robot.Color)     { h.color(domain.CommandSubTypeSetGunColor, c) }
func (h *remoteHost) SetRadarColor(c robot.Color)   { h.color(domain.CommandSubTypeSetRadarColor, c) }
func (h *remoteHost) SetBulletsColor(c robot.Color) { h.color(domain.CommandSubTypeSetBulletsColor, c) }

func (h *remoteHost) RadarVisible(visible bool) {
	var flag uint8
	if visible {
		flag = 1
	}
	h.command(&domain.Command{SubType: domain.CommandSubTypeRadarVisible, Flag: flag})
}

func (h *remoteHost) LockRadar(to robot.RadarLock) {
	h.command(&domain.Command{SubType: domain.CommandSubTypeLockRadar, Flag: uint8(to)})
}

func (h *remoteHost) SetRadarField(field robot.RadarField) {
	h.command(&domain.Command{SubType: domain.CommandSubTypeSetRadarField, Flag: uint8(field)})
}

func (h *remoteHost) Move(distance float64)   { h.value(domain.CommandSubTypeMove, distance) }
func (h *remoteHost) Turn(degrees float64)    { h.value(domain.CommandSubTypeTurn, degrees) }
func (h *remoteHost) GunTurn(degrees float64) { h.value(domain.CommandSubTypeGunTurn, degrees) }
func (h *remoteHost) RadarTurn(deg float64)   { h.value(domain.CommandSubTypeRadarTurn, deg) }
func (h *remoteHost) Fire(power float64)      { h.value(domain.CommandSubTypeFire, power) }

func (h *remoteHost) Stop()  { h.command(&domain.Command{SubType: domain.CommandSubTypeStop}) }
func (h *remoteHost) Reset() { h.command(&domain.Command{SubType: domain.CommandSubTypeReset}) }

func (h *remoteHost) RPrint(text string) {
	h.d.logger.InfoContext(h.ctx, "rprint", "text", text)
	h.command(&domain.Command{SubType: domain.CommandSubTypePrint, Text: text})
}

func (h *remoteHost) color(sub domain.CommandSubType, c robot.Color) {
	h.command(&domain.Command{SubType: sub, Color: [3]uint8{c.R, c.G, c.B}})
}

func (h *remoteHost) value(sub domain.CommandSubType, v float64) {
	h.command(&domain.Command{SubType: sub, Value: v})
}

// command はエンコードして書き込みキューに積みます。ブロックはしません。
func (h *remoteHost) command(c *domain.Command) {
	data, err := domain.EncodeCommandMessage(h.d.session.ID(), h.d.nextSeq(), c)
	if err != nil {
		h.d.logger.WarnContext(h.ctx, "command dropped", "subType", c.SubType, "err", err)
		return
	}
	h.d.send(h.ctx, data)
}
