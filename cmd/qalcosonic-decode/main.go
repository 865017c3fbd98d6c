package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx := context.Background()
	if err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}
