package main

import (
	"github.com/joho/godotenv"

	"github.com/revertpixels/CardReminder/internal/app"
)

func main() {
	// .env is used for local development only
	_ = godotenv.Load()

	app.Run()
}
