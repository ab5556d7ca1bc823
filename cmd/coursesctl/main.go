// Command coursesctl queries and edits the course catalog over its HTTP
// API, and exercises the calculator service.
package main

import (
	"context"
	"os"
	"os/signal"

	"course_catalog/config"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		logrus.Fatal(err)
	}
}
