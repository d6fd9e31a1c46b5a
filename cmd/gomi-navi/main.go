package main

import "github.com/tkohara/gomi-navi/internal/cli"

func main() {
	cli.Execute()
}
