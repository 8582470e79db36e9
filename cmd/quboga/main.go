package main

import (
	"os"

	"k8s.io/component-base/cli"

	"github.com/qubo-ga/qubo-ga/cmd/quboga/app"
)

func main() {
	command := app.NewSolverCommand()
	code := cli.Run(command)
	os.Exit(code)
}
