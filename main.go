package main

import "github.com/reposcore/reposcore/cmd"

func main() {
	cmd.Execute()
}
