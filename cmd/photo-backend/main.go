package main

import "photo-backend/internal/cli"

func main() {
	cli.Execute()
}
