package main

import "github.com/golangdaddy/roadrush/cmd"

func main() {
	cmd.Execute()
}
