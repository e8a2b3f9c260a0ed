package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-scals/scals/cmd/scals/internal/config"
	"github.com/go-scals/scals/pkg/expression/exprengine"
	"github.com/go-scals/scals/pkg/resolver"
	"github.com/go-scals/scals/pkg/state"
	"github.com/go-scals/scals/pkg/track"
)

func init() {
	RegisterCommand(&Command{
		Name:  "resolve",
		Short: "Resolve a document to its IR tree",
		Long: `Resolve decodes a UI document, seeds the state store, runs one
resolution pass and prints the resolved IR tree as JSON.

With --track, the output includes each node's read dependencies from the
pass's shadow tree.`,
		Usage: "scals resolve [document] [--state file] [--track] [--pretty]",
		Run:   runResolve,
	})
}

// resolveOutput is the JSON shape printed by the resolve command.
type resolveOutput struct {
	Root         any            `json:"root"`
	Dependencies []nodeDeps     `json:"dependencies,omitempty"`
	State        map[string]any `json:"state,omitempty"`
}

type nodeDeps struct {
	Node   track.NodeID `json:"node"`
	Parent track.NodeID `json:"parent"`
	Reads  []string     `json:"reads,omitempty"`
}

func runResolve(args []string) error {
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

	opts := []resolver.Option{resolver.WithEngine(exprengine.New())}
	tracking := hasFlag(args, "track")
	if tracking {
		opts = append(opts, resolver.WithTracking())
	}

	result, err := resolver.New(doc, store, opts...).Resolve()
	if err != nil {
		return err
	}

	out := resolveOutput{Root: result.Root}
	if tracking {
		for _, node := range result.Tracker.Nodes() {
			out.Dependencies = append(out.Dependencies, nodeDeps{
				Node:   node.ID,
				Parent: node.Parent,
				Reads:  node.Reads,
			})
		}
		out.State, _ = store.Root().Interface().(map[string]any)
	}

	return printJSON(out, hasFlag(args, "pretty") || cfg.Output.Pretty)
}

func printJSON(v any, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
