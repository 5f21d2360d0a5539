package main

import (
	"fmt"
	"os"

	"teoskills/internal/timeinfo"
)

func main() {
	fmt.Println(timeinfo.Run(os.Args[1:]))
}
