package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/lostfound-tw/lostfound/internal/cli"
)

func main() {
	cli.Execute()
}
