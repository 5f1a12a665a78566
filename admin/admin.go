package main

import "wrstats/admin/cmd"

func main() {
	cmd.Execute()
}
