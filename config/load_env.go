package config

import (
	log "github.com/sirupsen/logrus"
	"github.com/subosito/gotenv"
)

// DefaultEnvFile is read before the config so API_KEY can live next to the binary.
const DefaultEnvFile = ".env"

// LoadEnv seeds the process environment from an env file. Variables already
// set in the environment win over the file.
func LoadEnv(path string) {
	if path == "" {
		path = DefaultEnvFile
	}
	if err := gotenv.Load(path); err != nil {
		log.Debugf("[Config] no env file at %s, using OS environment", path)
		return
	}
	log.Debugf("[Config] loaded env file %s", path)
}
