package main

import "github.com/crowdagger/apocalisp/cmd"

func main() {
	cmd.Execute()
}
