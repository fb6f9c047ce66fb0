package main

import "github.com/fermento-pizzeria/fermento/cmd"

func main() {
	cmd.Execute()
}
