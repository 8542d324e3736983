// Command swizgen generates swizzle accessor declarations for vector types.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd(defaultEnv()).Execute(); err != nil {
		log.Error().Err(err).Msg("swizgen failed")
		os.Exit(1)
	}
}
