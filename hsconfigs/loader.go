package hsconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/hslex/cmds"
	"github.com/reusee/hslex/configs"
	"github.com/reusee/hslex/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Var[string]("-config", "config file, searched before the default locations")

var filenames = []string{
	"hslex.cue",
	".hslex.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// explicit
	if *configFlag != "" {
		paths = append(paths, *configFlag)
	}

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		paths = append(paths, existing(workingDir)...)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, existing(configDir)...)
	}

	// system wide dir
	paths = append(paths, existing("/etc")...)

	return configs.NewLoader(paths, schema)
}

func existing(dir string) (ret []string) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}
