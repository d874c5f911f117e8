package policy

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidParams = errors.New("invalid policy params")

// Params は巡回・射撃ポリシーの調整値です。
type Params struct {
	// MoveStep は1tickあたりの前進距離
	MoveStep float64 `yaml:"move_step"`
	// BoundaryRatio はマップ端からの巡回境界の割合（幅・高さに掛ける）
	BoundaryRatio float64 `yaml:"boundary_ratio"`
	BulletPower   float64 `yaml:"bullet_power"`
	// FireRange 未満の距離でのみ射撃する
	FireRange float64 `yaml:"fire_range"`
	// FireTolerance 未満の照準誤差（度）でのみ射撃する
	FireTolerance float64 `yaml:"fire_tolerance"`
}

// DefaultParams は既定の調整値を返します。
func DefaultParams() Params {
	return Params{
		MoveStep:      5,
		BoundaryRatio: 1.0 / 5.0,
		BulletPower:   2,
		FireRange:     300,
		FireTolerance: 15,
	}
}

// LoadParams はYAMLファイルを既定値の上に読み込みます。
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	b, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("read params: %w", err)
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Params{}, fmt.Errorf("parse params %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate は値の範囲を検証します。
func (p Params) Validate() error {
	switch {
	case p.MoveStep <= 0:
		return fmt.Errorf("%w: move_step must be positive, got %v", ErrInvalidParams, p.MoveStep)
	case p.BoundaryRatio <= 0 || p.BoundaryRatio >= 0.5:
		return fmt.Errorf("%w: boundary_ratio must be in (0, 0.5), got %v", ErrInvalidParams, p.BoundaryRatio)
	case p.BulletPower <= 0:
		return fmt.Errorf("%w: bullet_power must be positive, got %v", ErrInvalidParams, p.BulletPower)
	case p.FireRange <= 0:
		return fmt.Errorf("%w: fire_range must be positive, got %v", ErrInvalidParams, p.FireRange)
	case p.FireTolerance <= 0 || p.FireTolerance > 180:
		return fmt.Errorf("%w: fire_tolerance must be in (0, 180], got %v", ErrInvalidParams, p.FireTolerance)
	}
	return nil
}
