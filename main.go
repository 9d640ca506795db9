package main

import "github.com/zielmicha/satori-cli/cmd"

func main() {
	cmd.Execute()
}
