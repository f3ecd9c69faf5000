package main

import "beandex/cmd/bd/root"

func main() {
	root.Execute()
}
