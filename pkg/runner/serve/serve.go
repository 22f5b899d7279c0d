package serve

import (
	"context"
	"net"

	"tableflip.dev/moods/pkg/store"
	"tableflip.dev/moods/pkg/web"
)

// Serve runs the widget server until ctx is done.
type Serve struct {
	Config      web.Config
	Addr        string
	OnListening func(net.Addr)
}

func (n *Serve) Do(ctx context.Context) error {
	srv, err := web.NewServer(ctx, n.Config)
	if err != nil {
		return err
	}
	addr := n.Addr
	if addr == "" {
		addr = store.DefaultListen
	}
	return srv.Run(ctx, addr, n.OnListening)
}
