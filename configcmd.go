package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
)

func (b *botState) handleConfig(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	// only arg and required, always present

	b.mu.Lock()
	defer b.mu.Unlock()

	var embed discord.Embed

block:
	switch cmd := d.Options[0]; cmd.Name {
	case "ignore":
		user, _ := cmd.Options[0].SnowflakeValue()

		if discord.UserID(user) == e.User.ID {
			embed = failEmbed("Error", "You cannot ignore yourself.")
			break block
		}

		if _, ok := b.cfg.Blacklist[user]; ok {
			embed = failEmbed("Error", fmt.Sprintf("<@!%s> is already being ignored.", user))
			break block
		}

		b.cfg.Blacklist[user] = struct{}{}
		embed = discord.Embed{
			Title:       "Success",
			Description: fmt.Sprintf("<@!%s> is now going to be ignored from all commands.", user),
			Color:       accentColor,
		}

	case "unignore":
		user, _ := cmd.Options[0].SnowflakeValue()

		if _, ok := b.cfg.Blacklist[user]; !ok {
			embed = failEmbed("Error", fmt.Sprintf("<@!%s> is not being ignored.", user))
			break block
		}

		delete(b.cfg.Blacklist, user)
		embed = discord.Embed{
			Title:       "Success",
			Description: fmt.Sprintf("<@!%s> is now unignored.", user),
			Color:       accentColor,
		}

	case "ignorelist":
		embed = ignoreList(b.cfg.Blacklist)
		b.respond(e, embed, true)
		return
	}

	if !strings.HasPrefix(embed.Title, "Error") {
		if err := saveConfig(b.cfgPath, b.cfg); err != nil {
			embed = failEmbed("Error", fmt.Sprintf("Could not save config: `%v`", err))
		}
	}

	b.respond(e, embed, true)
}

func ignoreList(blacklist snowflakeLookup) discord.Embed {
	if len(blacklist) == 0 {
		return discord.Embed{
			Title:       "Ignored Users",
			Description: "Nobody is being ignored.",
			Color:       accentColor,
		}
	}

	ids := make([]discord.Snowflake, 0, len(blacklist))
	for id := range blacklist {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	var sb strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&sb, "<@!%s>\n", id)
	}
	return discord.Embed{
		Title:       "Ignored Users",
		Description: sb.String(),
		Color:       accentColor,
	}
}
