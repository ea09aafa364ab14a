// Command buildtables builds every flat lookup table this repo produces:
// one FSM per terminal hand size (5, 7), laid out three ways each (BFS,
// DFS, Van Emde Boas), written to tables/{bfs,dfs,veb}{5,7}.phe. It takes
// no flags and reads no environment variables: the set of tables it
// produces is fixed, not configurable.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"pokerphe/internal/layout"
	"pokerphe/internal/oracle"
	"pokerphe/internal/pipeline"
	"pokerphe/internal/present"
)

const outDir = "tables"

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, present.Bad(fmt.Sprintf("buildtables: %v", err)))
		os.Exit(1)
	}

	var jobs []pipeline.SizeJob
	for _, size := range []uint8{5, 7} {
		eval, err := oracle.ForSize(size)
		if err != nil {
			fmt.Fprintln(os.Stderr, present.Bad(fmt.Sprintf("buildtables: %v", err)))
			os.Exit(1)
		}
		jobs = append(jobs, sizeJob(size, eval))
	}

	results, err := pipeline.Run(jobs)
	failed := false
	for _, r := range results {
		if r.Failed {
			failed = true
		}
	}

	present.Section("Summary")
	for _, r := range results {
		status := present.Good("ok")
		if r.Failed {
			status = present.Bad("failed")
		}
		fmt.Printf("  %-20s %s\n", r.Job.Name, status)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, present.Bad(fmt.Sprintf("buildtables: %v", err)))
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}

func sizeJob(size uint8, eval oracle.Fn) pipeline.SizeJob {
	return pipeline.SizeJob{
		Size:   size,
		Oracle: eval,
		Layouts: []pipeline.LayoutJob{
			{Name: fmt.Sprintf("bfs%d", size), Path: path("bfs", size), Policy: layout.BFS},
			{Name: fmt.Sprintf("dfs%d", size), Path: path("dfs", size), Policy: layout.DFS},
			{Name: fmt.Sprintf("veb%d", size), Path: path("veb", size), Policy: layout.VanEmdeBoas},
		},
	}
}

func path(prefix string, size uint8) string {
	return filepath.Join(outDir, fmt.Sprintf("%s%d.phe", prefix, size))
}
