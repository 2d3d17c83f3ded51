package hsconfigs

import (
	"github.com/reusee/hslex/cmds"
	"github.com/reusee/hslex/configs"
	"github.com/reusee/hslex/vars"
)

type MaxExponent int

var _ configs.Configurable = MaxExponent(0)

func (MaxExponent) ConfigPath() string {
	return "max_exponent"
}

var maxExponentFlag = cmds.Var[int]("-max-exponent", "largest accepted float literal exponent")

func (Module) MaxExponent(
	loader configs.Loader,
) MaxExponent {
	return vars.FirstNonZero(
		MaxExponent(*maxExponentFlag),
		configs.Lookup[MaxExponent](loader),
		// zero selects the scanner default
	)
}
