package client

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-counters/internal/adapter"
	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/internal/mock"
	"github.com/MKhiriev/go-counters/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockCounterAdapter, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mock.NewMockCounterAdapter(ctrl)
	out := &bytes.Buffer{}
	return NewApp(m, out, logger.Nop()), m, out
}

func TestApp_Run_CounterCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		setup   func(m *mock.MockCounterAdapter)
		wantOut string
	}{
		{
			name: "create",
			args: []string{"create", "bar"},
			setup: func(m *mock.MockCounterAdapter) {
				m.EXPECT().CreateCounter(gomock.Any(), "bar").Return(models.Counter{Name: "bar"}, nil)
			},
			wantOut: "{\"bar\":0}\n",
		},
		{
			name: "get",
			args: []string{"get", "bar"},
			setup: func(m *mock.MockCounterAdapter) {
				m.EXPECT().GetCounter(gomock.Any(), "bar").Return(models.Counter{Name: "bar", Value: 3}, nil)
			},
			wantOut: "{\"bar\":3}\n",
		},
		{
			name: "inc",
			args: []string{"inc", "bar"},
			setup: func(m *mock.MockCounterAdapter) {
				m.EXPECT().IncrementCounter(gomock.Any(), "bar").Return(models.Counter{Name: "bar", Value: 4}, nil)
			},
			wantOut: "{\"bar\":4}\n",
		},
		{
			name: "delete",
			args: []string{"delete", "bar"},
			setup: func(m *mock.MockCounterAdapter) {
				m.EXPECT().DeleteCounter(gomock.Any(), "bar").Return(nil)
			},
			wantOut: "counter \"bar\" deleted\n",
		},
		{
			name: "version",
			args: []string{"version"},
			setup: func(m *mock.MockCounterAdapter) {
				m.EXPECT().GetServerVersion(gomock.Any()).Return("1.0.0", nil)
			},
			wantOut: "1.0.0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, m, out := newTestApp(t)
			tt.setup(m)

			require.NoError(t, app.Run(context.Background(), tt.args))
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestApp_Run_AdapterErrors(t *testing.T) {
	notFound := fmt.Errorf("%w: Counter not found", adapter.ErrNotFound)

	t.Run("get missing", func(t *testing.T) {
		app, m, out := newTestApp(t)
		m.EXPECT().GetCounter(gomock.Any(), "nope").Return(models.Counter{}, notFound)

		err := app.Run(context.Background(), []string{"get", "nope"})

		assert.ErrorIs(t, err, adapter.ErrNotFound)
		assert.Contains(t, err.Error(), `get counter "nope"`)
		assert.Empty(t, out.String())
	})

	t.Run("create duplicate", func(t *testing.T) {
		app, m, _ := newTestApp(t)
		m.EXPECT().CreateCounter(gomock.Any(), "bar").Return(models.Counter{}, adapter.ErrConflict)

		assert.ErrorIs(t, app.Run(context.Background(), []string{"create", "bar"}), adapter.ErrConflict)
	})

	t.Run("delete missing", func(t *testing.T) {
		app, m, out := newTestApp(t)
		m.EXPECT().DeleteCounter(gomock.Any(), "bar").Return(adapter.ErrNotFound)

		assert.ErrorIs(t, app.Run(context.Background(), []string{"delete", "bar"}), adapter.ErrNotFound)
		assert.Empty(t, out.String())
	})

	t.Run("version unavailable", func(t *testing.T) {
		app, m, _ := newTestApp(t)
		m.EXPECT().GetServerVersion(gomock.Any()).Return("", adapter.ErrInternalServerError)

		assert.ErrorIs(t, app.Run(context.Background(), []string{"version"}), adapter.ErrInternalServerError)
	})
}

func TestApp_Run_UsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no args", args: nil, wantErr: ErrNoCommand},
		{name: "unknown command", args: []string{"reset", "bar"}, wantErr: ErrUnknownCommand},
		{name: "create without name", args: []string{"create"}, wantErr: ErrCounterNameRequired},
		{name: "inc with empty name", args: []string{"inc", ""}, wantErr: ErrCounterNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no adapter calls are expected
			app, _, out := newTestApp(t)

			err := app.Run(context.Background(), tt.args)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "usage:")
			assert.Empty(t, out.String())
		})
	}
}
