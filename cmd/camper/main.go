package main

import "camper-renderer/cmd/camper/cmd"

func main() {
	cmd.Execute()
}
