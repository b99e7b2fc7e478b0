package duetconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/duet/cmds"
	"github.com/reusee/duet/configs"
	"github.com/reusee/duet/logs"
	"github.com/reusee/duet/modes"
)

//go:embed schema.cue
var Schema string

var configFiles = cmds.Collect[string]("-config", "load a config file, may be repeated")

var filenames = []string{
	"duet.cue",
	".duet.cue",
}

// ConfigsLoader loads files named by -config first, then duet.cue files found in
// the working directory, the user config directory and /etc. Only -config files are
// read in development mode.
func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	paths := append([]string(nil), *configFiles...)

	if mode == modes.ModeProduction {
		var dirs []string
		if dir, err := os.Getwd(); err == nil {
			dirs = append(dirs, dir)
		}
		if dir, err := os.UserConfigDir(); err == nil {
			dirs = append(dirs, dir)
		}
		dirs = append(dirs, "/etc")

		for _, dir := range dirs {
			for _, filename := range filenames {
				path := filepath.Join(dir, filename)
				if _, err := os.Stat(path); err == nil {
					paths = append(paths, path)
				}
			}
		}
	}

	if len(paths) > 0 {
		logger.Info("config files",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, Schema)
}
