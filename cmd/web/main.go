package main

import "shoutout_backend/internal/app"

func main() {
	app.Run()
}
