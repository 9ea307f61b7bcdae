package main

import (
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/hrko/lt-icons/internal/iconset"
	"github.com/hrko/lt-icons/pkg/graphics"
)

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "lt-icons",
		Output: os.Stderr,
		Level:  hclog.Info,
	})
	graphics.SetLogger(logger.Named("graphics"))

	if err := iconset.Generate(".", os.Stdout, logger); err != nil {
		panic(err)
	}
}
