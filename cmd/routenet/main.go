// Command routenet analyses airline route networks: it picks minimum
// spanning tree and shortest-path algorithms by network shape, runs every
// candidate and reports timings, results and the reasoning behind each choice.
//
// Usage:
//
//	routenet analyze --dataset airline
//	routenet analyze --file network.yaml --apsp johnson --json
//	routenet analyze --random 40 --probability 0.1 --seed 7 --metrics
//	routenet analyze --dataset hubs --source NYC
//	routenet datasets
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "routenet:", err)
		os.Exit(1)
	}
}
