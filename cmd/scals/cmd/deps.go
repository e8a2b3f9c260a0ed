package cmd

import (
	"strings"

	"github.com/go-scals/scals/cmd/scals/internal/config"
	"github.com/go-scals/scals/pkg/resolver"
	"github.com/go-scals/scals/pkg/state"
	"github.com/go-scals/scals/pkg/track"
)

func init() {
	RegisterCommand(&Command{
		Name:  "deps",
		Short: "Show a document's dependency index",
		Long: `Deps runs a tracking resolution pass and prints the dependency
shadow tree: each tracking node with the state paths it read.

With --dirty, prints the recompute set for the given comma-separated paths
instead.`,
		Usage: "scals deps [document] [--state file] [--dirty path,path]",
		Run:   runDeps,
	})
}

type depsOutput struct {
	Nodes     []nodeDeps     `json:"nodes,omitempty"`
	Dirty     []string       `json:"dirty,omitempty"`
	Recompute []track.NodeID `json:"recompute,omitempty"`
}

func runDeps(args []string) error {
	cfg, err := config.LoadOptional(".")
	if err != nil {
		return err
	}
	docPath, err := documentPath(args, cfg)
	if err != nil {
		return err
	}
	doc, err := loadDocument(docPath)
	if err != nil {
		return err
	}

	store := state.NewStore()
	statePath := flagValue(args, "state")
	if statePath == "" {
		statePath = cfg.Document.State
	}
	if statePath != "" {
		if err := loadState(store, statePath); err != nil {
			return err
		}
	}

	result, err := resolver.New(doc, store, resolver.WithTracking()).Resolve()
	if err != nil {
		return err
	}

	var out depsOutput
	if dirty := flagValue(args, "dirty"); dirty != "" {
		out.Dirty = strings.Split(dirty, ",")
		out.Recompute = result.Index.Query(out.Dirty)
	} else {
		for _, node := range result.Tracker.Nodes() {
			out.Nodes = append(out.Nodes, nodeDeps{
				Node:   node.ID,
				Parent: node.Parent,
				Reads:  node.Reads,
			})
		}
	}
	return printJSON(out, true)
}
