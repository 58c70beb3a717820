package main

import (
	"os"

	"github.com/go-sif/datamatrix/cmd/datamatrix/cmd"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("")
		os.Exit(1)
	}
}
