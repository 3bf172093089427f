package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-counters/internal/adapter"
	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/models"
)

// Commands accepted by [App.Run].
const (
	cmdCreate  = "create"
	cmdGet     = "get"
	cmdInc     = "inc"
	cmdDelete  = "delete"
	cmdVersion = "version"
)

const usage = "usage: counters-client [-a host:port] create|get|inc|delete <name> | version"

type App struct {
	adapter adapter.CounterAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(counterAdapter adapter.CounterAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: counterAdapter,
		out:     out,
		logger:  logger,
	}
}

// Run executes one command and prints the server's answer to the app output.
// Counters are printed in their JSON form, e.g. {"bar":1}.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w; %s", ErrNoCommand, usage)
	}

	command := args[0]
	if command == cmdVersion {
		version, err := a.adapter.GetServerVersion(ctx)
		if err != nil {
			return fmt.Errorf("get server version: %w", err)
		}
		_, err = fmt.Fprintln(a.out, version)
		return err
	}

	if len(args) < 2 || args[1] == "" {
		switch command {
		case cmdCreate, cmdGet, cmdInc, cmdDelete:
			return fmt.Errorf("%w for %q; %s", ErrCounterNameRequired, command, usage)
		}
	}

	a.logger.Debug().Str("func", "*App.Run").Strs("args", args).Msg("running command")

	var (
		counter models.Counter
		err     error
	)
	switch command {
	case cmdCreate:
		counter, err = a.adapter.CreateCounter(ctx, args[1])
	case cmdGet:
		counter, err = a.adapter.GetCounter(ctx, args[1])
	case cmdInc:
		counter, err = a.adapter.IncrementCounter(ctx, args[1])
	case cmdDelete:
		if err = a.adapter.DeleteCounter(ctx, args[1]); err != nil {
			return fmt.Errorf("delete counter %q: %w", args[1], err)
		}
		_, err = fmt.Fprintf(a.out, "counter %q deleted\n", args[1])
		return err
	default:
		return fmt.Errorf("%w %q; %s", ErrUnknownCommand, command, usage)
	}
	if err != nil {
		return fmt.Errorf("%s counter %q: %w", command, args[1], err)
	}

	return a.printCounter(counter)
}

func (a *App) printCounter(counter models.Counter) error {
	body, err := counter.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode counter: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(body))
	return err
}
