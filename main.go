package main

import (
	"context"
	"os"

	"github.com/ardnew/logfront/cli"
	"github.com/ardnew/logfront/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Fail(err, "run failed")
		os.Exit(1)
	}
}
