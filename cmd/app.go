// Package cmd implements the CLI application of the CargoPortl operations
// dashboard.
package cmd

import (
	"flag"
	"os"

	"github.com/cargoportl/cargoportl"
	"github.com/cargoportl/cargoportl/cargoapi"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "pages")
	c.Register(&shipmentsCmd{}, "pages")
	c.Register(&clientsCmd{}, "pages")
	c.Register(&invoicesCmd{}, "pages")
	c.Register(&viewCmd{}, "pages")
	c.Register(&reportCmd{}, "pages")

	c.Register(&addCmd{}, "entries")
	c.Register(&editCmd{}, "entries")
	c.Register(&deleteCmd{}, "entries")

	c.Register(&exportCmd{}, "tools")
	c.Register(&assistCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var serverFlag = flag.String("server", "", "Base URL of the cargo server.\n If missing it will read the environment variable \"CARGOPORTL_SERVER\", then fall back to the production server.")

func serverURL() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *serverFlag == "" {
		*serverFlag = os.Getenv("CARGOPORTL_SERVER")
	}
	return *serverFlag
}

// NewStores is the central function to wire the three resource stores to
// the cargo server. Every page builds its own set and rehydrates it from
// the server; no state survives between commands.
func NewStores() *cargoportl.Stores {
	return cargoportl.NewStores(cargoapi.New(serverURL()))
}
