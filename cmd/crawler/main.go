package main

import (
	"log"
	"os"

	"github.com/sschan39/hk-foodpanda-crawler/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
