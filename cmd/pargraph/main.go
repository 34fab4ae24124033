// Command pargraph runs the parallel BFS and coloring kernels on edge-list
// files and generates test graphs.
//
//	pargraph gen grid 100 100 > grid.txt
//	pargraph bfs grid.txt --root 1 --hybrid --verify
//	pargraph color grid.txt --workers 8 --output yaml
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
