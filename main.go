/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package main

import (
	"fmt"
	"os"

	"github.com/dataops-cloud/dhub-cli/cmd"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
)

func main() {
	b, err := os.ReadFile("version.txt")
	if err != nil {
		fmt.Print(err.Error() + "\n")
	}
	version := string(b)

	dhubAuthClient.SetVersion(version)
	cmd.Execute(version)
}
