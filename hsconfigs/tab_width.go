package hsconfigs

import (
	"github.com/reusee/hslex/cmds"
	"github.com/reusee/hslex/configs"
	"github.com/reusee/hslex/source"
	"github.com/reusee/hslex/vars"
)

type TabWidth int

var _ configs.Configurable = TabWidth(0)

func (TabWidth) ConfigPath() string {
	return "tab_width"
}

var tabWidthFlag = cmds.Var[int]("-tab-width", "columns per tab stop")

func (Module) TabWidth(
	loader configs.Loader,
) TabWidth {
	return vars.FirstNonZero(
		// flag
		TabWidth(*tabWidthFlag),
		// config
		configs.Lookup[TabWidth](loader),
		TabWidth(source.DefaultTabWidth),
	)
}
