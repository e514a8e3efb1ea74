package main

import "complyd/cmd/complyctl/cmd"

func main() {
	cmd.Execute()
}
