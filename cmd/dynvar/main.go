package main

import (
	"go.brendoncarroll.net/star"

	"dynvar.org/dynvar/dvcmd"
)

func main() {
	star.Main(dvcmd.Root())
}
