package main

import "github.com/ordersheet/ordersheet-api/cmd/ordersheetctl/cli"

func main() {
	cli.Execute()
}
