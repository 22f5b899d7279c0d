package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gosuri/uitable"

	"tableflip.dev/moods/pkg/entry"
	"tableflip.dev/moods/pkg/session"
	"tableflip.dev/moods/pkg/store"
)

// Keyer lists what the store holds. *store.KV satisfies it.
type Keyer interface {
	Keys(ctx context.Context) []string
}

type Info struct {
	Config  store.Config
	Store   Keyer
	Session *session.Session
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	if override := os.Getenv("MOODS_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "MOODS_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Fprintln(out, "MOODS_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	if src, ok := n.Config.(interface{ Source() string }); ok && src.Source() != "" {
		fmt.Fprintln(out, "Config.file: ", src.Source())
	}

	if n.Store == nil {
		return fmt.Errorf("Failed to create store object.")
	}

	fmt.Fprintf(out, "Keys:\n")
	found := 0
	for _, k := range n.Store.Keys(ctx) {
		fmt.Fprintf(out, "  %s\n", k)
		found++
	}
	if found == 0 {
		fmt.Fprintf(out, "  %s\n", "nothing stored")
	}

	if n.Session == nil {
		return nil
	}

	act := n.Session.Activity()
	tbl := uitable.New()
	tbl.AddRow("First visit:", entry.FormatTime(act.FirstVisit))
	tbl.AddRow("Last visit:", entry.FormatTime(act.LastVisit))
	tbl.AddRow("Total visits:", act.TotalVisits)
	tbl.AddRow("Moods logged:", act.MoodsLogged)
	tbl.AddRow("Entries:", len(n.Session.Entries()))
	fmt.Fprintf(out, "Activity:\n%s\n", tbl)

	counts := map[string]int{}
	for _, i := range act.Interactions {
		counts[i.Type]++
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	tbl = uitable.New()
	for _, k := range kinds {
		tbl.AddRow(k+":", counts[k])
	}
	fmt.Fprintf(out, "Interactions:\n%s\n", tbl)
	return nil
}
