package main

import "phonebook/cmd/phonebook/cmd"

func main() {
	cmd.Execute()
}
