package main

import "sentosa_backend/internal/app"

func main() {
	app.Run()
}
