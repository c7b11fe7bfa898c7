package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/command"
	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/diegoclair/birthday-bot/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	h1 := mocks.NewMockHandler(ctrl)
	h2 := mocks.NewMockHandler(ctrl)
	h1.EXPECT().Declaration().Return(command.Declaration{Description: "one"}).AnyTimes()
	h2.EXPECT().Declaration().Return(command.Declaration{Description: "two"}).AnyTimes()

	r := command.NewRegistry()
	require.NoError(t, r.Register("birthday", h1))
	require.NoError(t, r.Register("car", h2))

	err := r.Register("birthday", h2)
	require.Error(t, err)
	assert.ErrorIs(t, err, command.ErrDuplicateCommand)

	got, ok := r.Lookup("birthday")
	assert.True(t, ok)
	assert.Same(t, h1, got)

	_, ok = r.Lookup("nope")
	assert.False(t, ok)

	all := r.All()
	assert.Len(t, all, 2)
	delete(all, "car")
	_, ok = r.Lookup("car")
	assert.True(t, ok, "All must return a copy")

	decls := r.Declarations()
	require.Len(t, decls, 2)
	assert.Equal(t, "birthday", decls[0].Name)
	assert.Equal(t, "one", decls[0].Description)
	assert.Equal(t, "car", decls[1].Name)

	require.Error(t, r.Register("", h1))
}

func TestDispatcher_Dispatch(t *testing.T) {
	decl := command.Declaration{
		Name: "birthday",
		Subcommands: []command.Subcommand{
			{Name: "verify"},
			{Name: "display", Options: []command.Option{{Name: "user", Type: command.OptionUser}}},
		},
	}

	tests := []struct {
		name      string
		in        *command.Interaction
		buildMock func(h *mocks.MockHandler)
		check     func(t *testing.T, reply *command.Reply)
	}{
		{
			name: "Should return handler reply",
			in:   &command.Interaction{Name: "birthday", Args: []string{"display", "<@U2>"}, CallerID: "U1"},
			buildMock: func(h *mocks.MockHandler) {
				h.EXPECT().Handle(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, in *command.Interaction) (*command.Reply, error) {
						user, _ := in.Options.User("user")
						return &command.Reply{Text: "shown " + in.Subcommand + " " + user}, nil
					}).Times(1)
			},
			check: func(t *testing.T, reply *command.Reply) {
				assert.Equal(t, "shown display U2", reply.Text)
				assert.False(t, reply.Ephemeral)
			},
		},
		{
			name: "Should reply not implemented for unknown command",
			in:   &command.Interaction{Name: "weather"},
			check: func(t *testing.T, reply *command.Reply) {
				assert.Equal(t, domain.NotImplementedText, reply.Text)
				assert.True(t, reply.Ephemeral)
			},
		},
		{
			name: "Should reply not implemented for unknown subcommand",
			in:   &command.Interaction{Name: "birthday", Args: []string{"dance"}},
			check: func(t *testing.T, reply *command.Reply) {
				assert.Equal(t, domain.NotImplementedText, reply.Text)
			},
		},
		{
			name: "Should reply with help when subcommand missing",
			in:   &command.Interaction{Name: "birthday"},
			check: func(t *testing.T, reply *command.Reply) {
				assert.Contains(t, reply.Text, "/birthday verify")
				assert.True(t, reply.Ephemeral)
			},
		},
		{
			name: "Should convert bind error to reply",
			in:   &command.Interaction{Name: "birthday", Args: []string{"verify", "extra"}},
			check: func(t *testing.T, reply *command.Reply) {
				assert.Contains(t, reply.Text, domain.ErrorHeading)
				assert.Contains(t, reply.Text, "Unexpected argument `extra`.")
				assert.True(t, reply.Ephemeral)
			},
		},
		{
			name: "Should convert domain error to reply",
			in:   &command.Interaction{Name: "birthday", Args: []string{"verify"}},
			buildMock: func(h *mocks.MockHandler) {
				h.EXPECT().Handle(gomock.Any(), gomock.Any()).
					Return(nil, domain.AlreadyVerified("Your birthday is already verified!")).Times(1)
			},
			check: func(t *testing.T, reply *command.Reply) {
				assert.Equal(t, "*Something went wrong*\nYour birthday is already verified!", reply.Text)
				assert.True(t, reply.Ephemeral)
			},
		},
		{
			name: "Should hide unknown error details",
			in:   &command.Interaction{Name: "birthday", Args: []string{"verify"}},
			buildMock: func(h *mocks.MockHandler) {
				h.EXPECT().Handle(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("sql: database is closed")).Times(1)
			},
			check: func(t *testing.T, reply *command.Reply) {
				assert.Contains(t, reply.Text, domain.UnknownErrorText)
				assert.NotContains(t, reply.Text, "sql")
			},
		},
		{
			name: "Should recover from handler panic",
			in:   &command.Interaction{Name: "birthday", Args: []string{"verify"}},
			buildMock: func(h *mocks.MockHandler) {
				h.EXPECT().Handle(gomock.Any(), gomock.Any()).DoAndReturn(
					func(context.Context, *command.Interaction) (*command.Reply, error) {
						panic("nil map")
					}).Times(1)
			},
			check: func(t *testing.T, reply *command.Reply) {
				assert.Contains(t, reply.Text, domain.UnknownErrorText)
				assert.True(t, reply.Ephemeral)
			},
		},
		{
			name: "Should never return nil reply",
			in:   &command.Interaction{Name: "birthday", Args: []string{"verify"}},
			buildMock: func(h *mocks.MockHandler) {
				h.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
			},
			check: func(t *testing.T, reply *command.Reply) {
				assert.NotEmpty(t, reply.Text)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := mocks.NewMockHandler(ctrl)
			h.EXPECT().Declaration().Return(decl).AnyTimes()
			if tt.buildMock != nil {
				tt.buildMock(h)
			}

			registry := command.NewRegistry()
			require.NoError(t, registry.Register("birthday", h))

			d := command.NewDispatcher(registry, metrics.NewCollector(prometheus.NewRegistry()))
			reply := d.Dispatch(context.Background(), tt.in)

			require.NotNil(t, reply)
			tt.check(t, reply)
		})
	}
}
