package main

import (
	"os"
	sys "os"
)

func helper() {
	os.Exit(2)
}

func main() {
	defer helper()
	func() {
		os.Exit(3)
	}()
	os.Exit(1)  // want "direct call to os.Exit is not allowed in main"
	sys.Exit(1) // want "direct call to os.Exit is not allowed in main"
}
