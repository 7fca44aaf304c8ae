package main

import "github.com/nfrund/userdesk/cmd/userdesk/cmd"

func main() {
	cmd.Execute()
}
