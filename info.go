package main

import (
	"bytes"
	"fmt"
	"runtime"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/dustin/go-humanize"
)

var started = time.Now().Unix()

func (b *botState) handleInfo(e *gateway.InteractionCreateEvent, _ *discord.CommandInteraction) {
	stats := runtime.MemStats{}
	runtime.ReadMemStats(&stats)

	b.mu.Lock()
	sessions := len(b.sessions)
	b.mu.Unlock()

	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "Go: %s\n", runtime.Version())
	fmt.Fprintf(buf, "Uptime: <t:%d:R>\n", started)
	fmt.Fprintf(buf, "Memory: %s / %s (alloc / sys)\n", humanize.Bytes(stats.Alloc), humanize.Bytes(stats.Sys))
	fmt.Fprintf(buf, "Documents: %s\n", humanize.Comma(int64(len(b.cfg.Documents))))
	fmt.Fprintf(buf, "Open Sessions: %s\n", humanize.Comma(int64(sessions)))
	fmt.Fprintf(buf, "Session Timeout: %s\n", b.cfg.SessionTTL)

	b.respond(e, discord.Embed{
		Title:       "DOM Tree",
		Description: buf.String(),
		Color:       accentColor,
	}, true)
}
