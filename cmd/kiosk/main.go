package main

import (
	"log/slog"
	"os"

	"github.com/metinatakli/cinema-kiosk/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		slog.Error("kiosk stopped", "error", err)
		os.Exit(1)
	}
}
