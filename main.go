package main

import "github.com/minkyu-lab/site-factory/cmd"

func main() {
	cmd.Execute()
}
