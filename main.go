package main

import (
	"flag"
	"log"

	"github.com/checkmarble/marble-todos/cmd"
)

// Values injected at build time
var apiVersion = "dev"

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunServer := flag.Bool("server", false, "Run server")
	flag.Parse()

	if !*shouldRunMigrations && !*shouldRunServer {
		flag.Usage()
		return
	}

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}

	if *shouldRunServer {
		if err := cmd.RunServer(cmd.CompiledConfig{Version: apiVersion}); err != nil {
			log.Fatal(err)
		}
	}
}
