package main

import "camp-backend/internal/app"

func main() {
	app.Run()
}
