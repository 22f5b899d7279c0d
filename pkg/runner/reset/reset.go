package reset

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/moods/pkg/store"
)

// Eraser removes stored keys. *store.KV satisfies it.
type Eraser interface {
	Has(key string) bool
	Erase(key string) bool
}

// DefaultKeys is everything the widget writes.
var DefaultKeys = []string{
	store.KeyMoodData,
	store.KeyUserActivity,
	store.KeyCookies,
	store.KeyNotificationPermission,
}

// Reset erases stored state.
type Reset struct {
	Store Eraser
	Keys  []string
	// Confirm is asked before anything is erased; nil erases without asking.
	Confirm func() (bool, error)
	Out     io.Writer
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Store == nil {
		return fmt.Errorf("can not reset, no store")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	keys := n.Keys
	if len(keys) == 0 {
		keys = DefaultKeys
	}

	if n.Confirm != nil {
		ok, err := n.Confirm()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Nothing erased.")
			return nil
		}
	}

	for _, k := range keys {
		if !n.Store.Has(k) {
			continue
		}
		if !n.Store.Erase(k) {
			return fmt.Errorf("reset: failed to erase %s", k)
		}
		fmt.Fprintf(out, "Erased %s\n", k)
	}
	return nil
}
