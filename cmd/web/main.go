package main

import "grindup_backend/internal/app"

func main() {
	app.Run()
}
