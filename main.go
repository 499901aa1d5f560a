package main

import "github.com/kamal-hamza/skillsheet/cmd"

func main() {
	cmd.Execute()
}
