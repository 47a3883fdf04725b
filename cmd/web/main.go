package main

import "ldexchange_backend/internal/app"

func main() {
	app.Run()
}
