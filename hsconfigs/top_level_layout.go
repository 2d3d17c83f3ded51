package hsconfigs

import (
	"github.com/reusee/hslex/cmds"
	"github.com/reusee/hslex/configs"
)

type TopLevelLayout bool

var _ configs.Configurable = TopLevelLayout(false)

func (TopLevelLayout) ConfigPath() string {
	return "top_level_layout"
}

var topLevelFlag = cmds.Switch("-top-level", "open an implicit block for the module body")

func (Module) TopLevelLayout(
	loader configs.Loader,
) TopLevelLayout {
	if *topLevelFlag {
		return true
	}
	return configs.Lookup[TopLevelLayout](loader)
}
