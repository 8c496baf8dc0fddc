package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/config"
	"github.com/dgnsrekt/livecomment/internal/session"
)

func TestParseChannel(t *testing.T) {
	ch, err := parseChannel("32736:1024")
	require.NoError(t, err)
	assert.Equal(t, session.ChannelRef{NetworkID: 32736, ServiceID: 1024}, ch)

	ch, err = parseChannel("0x7fe0:0x400")
	require.NoError(t, err)
	assert.Equal(t, session.ChannelRef{NetworkID: 0x7fe0, ServiceID: 0x400}, ch)

	for _, bad := range []string{"1024", "a:1", "1:70000"} {
		_, err := parseChannel(bad)
		assert.Error(t, err, bad)
	}
}

func TestChannelFlagsResolve(t *testing.T) {
	cfg := &config.Config{Channels: []config.ChannelConfig{
		{NetworkID: 1, ServiceID: 10, BroadcastID: "lv1"},
		{NetworkID: 1, ServiceID: 11, BroadcastID: "lv2"},
	}}

	t.Run("first configured channel", func(t *testing.T) {
		f := channelFlags{}
		ch, resolver, err := f.resolve(cfg)
		require.NoError(t, err)
		assert.Equal(t, session.ChannelRef{NetworkID: 1, ServiceID: 10}, ch)
		id, _ := resolver.Resolve(t.Context(), ch)
		assert.Equal(t, "lv1", id)
	})

	t.Run("broadcast override", func(t *testing.T) {
		f := channelFlags{channel: "1:11", broadcast: "lv9"}
		ch, resolver, err := f.resolve(cfg)
		require.NoError(t, err)
		id, _ := resolver.Resolve(t.Context(), ch)
		assert.Equal(t, "lv9", id)
	})

	t.Run("nothing to watch", func(t *testing.T) {
		f := channelFlags{}
		_, _, err := f.resolve(&config.Config{})
		assert.Error(t, err)
	})

	t.Run("broadcast only", func(t *testing.T) {
		f := channelFlags{broadcast: "jk1"}
		ch, resolver, err := f.resolve(&config.Config{})
		require.NoError(t, err)
		id, _ := resolver.Resolve(t.Context(), ch)
		assert.Equal(t, "jk1", id)
	})
}

func TestBuildBackend(t *testing.T) {
	cfg := &config.Config{Backend: config.BackendConfig{Kind: config.BackendNXJikkyo}}
	b, err := buildBackend(cfg, clockwork.NewFakeClock(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, session.KindNXJikkyo, b.Name)

	cfg.Backend.Kind = config.BackendNiconico
	b, err = buildBackend(cfg, clockwork.NewFakeClock(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, session.KindNiconico, b.Name)

	cfg.Backend.Kind = "other"
	_, err = buildBackend(cfg, clockwork.NewFakeClock(), zap.NewNop())
	assert.Error(t, err)
}

func TestPrintChats(t *testing.T) {
	var buf bytes.Buffer
	printChats(&buf, []comment.Chat{
		{Time: time.Unix(1700000001, 0), Text: "a\nb", Color: comment.White},
		{Time: time.Unix(1700000002, 0), Text: "mine", Color: comment.White, IsSelf: true},
	})

	want := "07:13:21 [" + comment.PositionDefault.String() + " medium #FFFFFF] a b\n" +
		"07:13:22 [" + comment.PositionDefault.String() + " medium #FFFFFF] * mine\n"
	assert.Equal(t, want, buf.String())
}
