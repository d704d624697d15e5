// Command pizzactl is the operator CLI for the pizza menu service.
package main

import "github.com/franciscosanchezn/gin-pizza-menu/cmd/pizzactl/commands"

func main() {
	commands.Execute()
}
