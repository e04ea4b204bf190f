package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/cargoportl/cargoportl/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// Local .env files hold the server URL and the Gemini API key.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
