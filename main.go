package main

import (
	"flag"
	"log"
	"os"

	"github.com/police-department/evidence-manager/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunServer := flag.Bool("server", false, "Run server")
	flag.Parse()

	if !*shouldRunMigrations && !*shouldRunServer {
		flag.Usage()
		os.Exit(2)
	}

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}
}
