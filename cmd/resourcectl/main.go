package main

import "github.com/wisdomwellbeing/resourcectl/internal/app"

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	app.SetVersion(version)
	app.Execute()
}
