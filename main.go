package main

import (
	"kc414/cmd"
)

func main() {
	cmd.Execute()
}
