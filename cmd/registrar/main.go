package main

import (
	"os"

	"github.com/yigit/unirecords/internal/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("registrar failed")
		os.Exit(1)
	}
}
