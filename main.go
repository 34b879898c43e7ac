package main

import "github.com/user/hip/cmd"

func main() {
	cmd.Execute()
}
