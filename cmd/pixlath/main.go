// Command pixlath applies raster transforms to image files.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/pixlath/internal/app"
)

func main() {
	_ = godotenv.Load()
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
