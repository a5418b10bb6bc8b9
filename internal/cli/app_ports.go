package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/casereg/internal/wizard"
)

const defaultRequestTimeout = 15 * time.Second

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// requestContext bounds one gateway-backed operation started from the UI.
func (a *App) requestContext() (context.Context, context.CancelFunc) {
	timeout := a.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (a *App) referenceTTL() time.Duration {
	if a.ReferenceTTL <= 0 {
		return 60 * time.Minute
	}
	return a.ReferenceTTL
}

// newStore starts an empty wizard session.
func (a *App) newStore() *wizard.Store {
	var opts []wizard.StoreOption
	if a.DispatchObserver != nil {
		opts = append(opts, wizard.WithObserver(a.DispatchObserver))
	}
	return wizard.NewStore(nil, opts...)
}
