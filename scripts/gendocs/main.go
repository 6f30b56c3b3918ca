// Package main provides a generator that extracts CLI, configuration and rule
// metadata from the pystyle source and writes markdown documentation.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=config -outdir=docs
//	go run ./scripts/gendocs -gen=rules -outdir=docs/rules
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, config, rules, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

// generator writes one family of pages into a directory.
type generator struct {
	name   string
	subdir string // default location below docs/
	run    func(outDir string) error
}

var generators = []generator{
	{name: "cli", subdir: "cli", run: generateCLIDocs},
	{name: "config", subdir: "", run: generateConfigurationDoc},
	{name: "rules", subdir: "rules", run: generateRuleDocs},
}

func main() {
	flag.Parse()

	if *genFlag != "all" && findGenerator(*genFlag) == nil {
		log.Fatalf("unknown -gen value: %s (use: cli, config, rules, all)", *genFlag)
	}

	// Find project root (where go.mod is)
	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}

	log.Printf("Project root: %s", projectRoot)

	for _, g := range generators {
		if *genFlag != "all" && *genFlag != g.name {
			continue
		}
		outDir := *outDirFlag
		if outDir == "" || *genFlag == "all" {
			outDir = filepath.Join(projectRoot, "docs", g.subdir)
		}
		if err := g.run(outDir); err != nil {
			log.Fatalf("failed to generate %s docs: %v", g.name, err)
		}
	}

	log.Println("Done!")
}

func findGenerator(name string) *generator {
	for i := range generators {
		if generators[i].name == name {
			return &generators[i]
		}
	}
	return nil
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
