package main

import "github.com/i2bric/TaskHero/cmd/th/root"

func main() {
	root.Execute()
}
