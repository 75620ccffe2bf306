package main

import (
	"github.com/diamondburned/arikawa/v3/discord"
)

const (
	outputLimit = 3800

	accentColor = 0x007D9C
)

func treeEmbed(title, body string, code bool) discord.Embed {
	if code {
		body, _ = truncate(body, outputLimit)
		body = "```html\n" + body + "```"
	}
	return discord.Embed{
		Title:       title,
		Description: body,
		Color:       accentColor,
	}
}

func failEmbed(title, description string) discord.Embed {
	return discord.Embed{
		Title:       title,
		Description: description,
		Color:       0xEE0000,
	}
}
