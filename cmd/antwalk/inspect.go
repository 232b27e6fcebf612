// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antwalk/bfs"
	"github.com/katalvlaran/antwalk/core"
)

func newInspectCmd(a *app) *cobra.Command {
	var listComponents bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print node, edge and component counts of the input graph",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.runE(func(_ context.Context, cmd *cobra.Command) error {
		g, err := a.loadGraph()
		if err != nil {
			return err
		}

		return writeSummary(cmd.OutOrStdout(), g, listComponents)
	})
	cmd.Flags().BoolVar(&listComponents, "components", false, "list every component")

	return cmd
}

func writeSummary(w io.Writer, g *core.Graph, listComponents bool) error {
	comps := bfs.Components(g)
	largest := 0
	for _, c := range comps {
		largest = max(largest, len(c))
	}

	_, err := fmt.Fprintf(w, "nodes %d\nedges %d\ncomponents %d\nlargest %d\nisolated %v\n",
		g.NumberOfNodes(), g.NumberOfEdges(), len(comps), largest, bfs.Isolated(g))
	if err != nil || !listComponents {
		return err
	}
	for i, c := range comps {
		if _, err := fmt.Fprintf(w, "component %d %v\n", i, c); err != nil {
			return err
		}
	}

	return nil
}
