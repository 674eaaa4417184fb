package main

import (
	"flag"
	"fmt"
	"os"

	"compute-rasterizer/internal/obj"
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: objinfo <file.obj> [...]")
		os.Exit(1)
	}

	exit := 0
	for _, path := range flag.Args() {
		soup, err := obj.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exit = 1
			continue
		}

		var mn, mx [3]float64
		if len(soup) > 0 {
			for k := 0; k < 3; k++ {
				mn[k], mx[k] = soup[k], soup[k]
			}
			for i := 0; i < len(soup); i += 3 {
				for k := 0; k < 3; k++ {
					if soup[i+k] < mn[k] {
						mn[k] = soup[i+k]
					}
					if soup[i+k] > mx[k] {
						mx[k] = soup[i+k]
					}
				}
			}
		}

		fmt.Printf("%s: %d triangles\n", path, len(soup)/9)
		fmt.Printf("  bounds min (%.3f, %.3f, %.3f) max (%.3f, %.3f, %.3f)\n",
			mn[0], mn[1], mn[2], mx[0], mx[1], mx[2])
	}
	os.Exit(exit)
}
