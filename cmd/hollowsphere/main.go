package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/hollowsphere/internal/sphere"
)

func main() {
	sphere.Debug = os.Getenv("DEBUG") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := ""
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := sphere.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
