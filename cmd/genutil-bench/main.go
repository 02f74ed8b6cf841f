package main

import (
	"github.com/sodalite-io/genutil/pkg/cmd"
)

func main() {
	cmd.Execute()
}
