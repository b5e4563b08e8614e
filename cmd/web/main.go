package main

import "freelancehub_backend/internal/app"

func main() {
	app.Run()
}
