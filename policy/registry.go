package policy

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"arenabot/robot"
)

var ErrUnknownPolicy = errors.New("unknown policy")

type factory func(params Params, rng *rand.Rand) robot.Robot

var factories = map[string]factory{
	"reverser": func(p Params, _ *rand.Rand) robot.Robot { return NewReverser(p) },
	"runaway":  func(_ Params, _ *rand.Rand) robot.Robot { return NewRunAway() },
	"kamikaze": func(_ Params, rng *rand.Rand) robot.Robot { return NewKamikaze(rng) },
}

// New は名前からポリシーを生成します。名前の大文字小文字は区別しません。
func New(name string, params Params, rng *rand.Rand) (robot.Robot, error) {
	f, ok := factories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	return f(params, rng), nil
}

// Names は登録済みのポリシー名を昇順で返します。
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
