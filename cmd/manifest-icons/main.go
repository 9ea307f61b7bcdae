package main

import (
	"os"

	"github.com/hrko/lt-icons/internal/iconset"
)

func main() {
	b, err := iconset.Manifest()
	if err != nil {
		panic(err)
	}
	os.Stdout.Write(b)
}
