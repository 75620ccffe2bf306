package main

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/httputil"
)

type botState struct {
	cfg     configuration
	cfgPath string
	appID   discord.AppID
	state   *state.State

	mu       sync.Mutex
	sessions map[discord.UserID]*session
}

func (b *botState) OnCommand(e *gateway.InteractionCreateEvent) {
	if e.GuildID != 0 {
		e.User = &e.Member.User
	}

	// ignore blacklisted users
	b.mu.Lock()
	_, ignored := b.cfg.Blacklist[discord.Snowflake(e.User.ID)]
	b.mu.Unlock()
	if ignored {
		log.Printf("Ignoring command from %s", e.User.Tag())
		return
	}

	data, ok := e.Data.(*discord.CommandInteraction)
	if !ok {
		return
	}

	switch data.Name {
	case "tree":
		b.handleTree(e, data)
	case "info":
		b.handleInfo(e, data)
	case "config":
		b.handleConfig(e, data)
	}
}

func (b *botState) respond(e *gateway.InteractionCreateEvent, embed discord.Embed, ephemeral bool) {
	data := &api.InteractionResponseData{
		Embeds: &[]discord.Embed{embed},
	}
	if ephemeral {
		data.Flags = discord.EphemeralMessage
	}

	err := b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: data,
	})
	if err != nil {
		log.Println(fmt.Errorf("could not send interaction callback, %v", err))
	}
}

// optionArgs flattens subcommand options into the argument list apply expects.
func optionArgs(opts []discord.CommandInteractionOption) ([]string, error) {
	args := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.Type == discord.IntegerOptionType {
			n, err := o.IntValue()
			if err != nil {
				return nil, err
			}
			args = append(args, strconv.FormatInt(n, 10))
			continue
		}
		args = append(args, o.String())
	}
	return args, nil
}

func loadCommands(s *state.State, appID discord.AppID, cfg configuration) error {
	for _, c := range commands(cfg) {
		if _, err := s.CreateCommand(appID, c); err != nil {
			var httperr *httputil.HTTPError
			if errors.As(err, &httperr) {
				log.Println(string(httperr.Body))
			}
			return fmt.Errorf("could not register: %s, %w", c.Name, err)
		}
		log.Println("Created command:", c.Name)
	}

	return nil
}

func documentChoices(cfg configuration) []discord.StringChoice {
	names := make([]string, 0, len(cfg.Documents))
	for name := range cfg.Documents {
		names = append(names, name)
	}
	sort.Strings(names)

	choices := make([]discord.StringChoice, 0, len(names))
	for _, name := range names {
		choices = append(choices, discord.StringChoice{Name: name, Value: name})
	}
	return choices
}

func commands(cfg configuration) []api.CreateCommandData {
	return []api.CreateCommandData{
		{
			Name:        "tree",
			Description: "Edit an HTML document tree",
			Options: []discord.CommandOption{
				&discord.SubcommandOption{
					OptionName:  "load",
					Description: "Load a fresh copy of a document, discarding your edits",
					Options: []discord.CommandOptionValue{
						&discord.StringOption{
							OptionName:  "document",
							Description: "Document name",
							Required:    true,
							Choices:     documentChoices(cfg),
						},
					},
				},
				&discord.SubcommandOption{
					OptionName:  "replace",
					Description: "Rename every element with a tag",
					Options: []discord.CommandOptionValue{
						&discord.StringOption{
							OptionName:  "old",
							Description: "Tag to replace",
							Required:    true,
						},
						&discord.StringOption{
							OptionName:  "new",
							Description: "Replacement tag",
							Required:    true,
						},
					},
				},
				&discord.SubcommandOption{
					OptionName:  "bold",
					Description: "Bold every cell of a table row",
					Options: []discord.CommandOptionValue{
						&discord.IntegerOption{
							OptionName:  "row",
							Description: "Row number, starting at 1",
							Required:    true,
						},
					},
				},
				&discord.SubcommandOption{
					OptionName:  "remove",
					Description: "Remove a tag, keeping its content",
					Options: []discord.CommandOptionValue{
						&discord.StringOption{
							OptionName:  "tag",
							Description: "Tag to remove",
							Required:    true,
							Choices: []discord.StringChoice{
								{Name: "p", Value: "p"},
								{Name: "em", Value: "em"},
								{Name: "b", Value: "b"},
								{Name: "ol", Value: "ol"},
								{Name: "ul", Value: "ul"},
							},
						},
					},
				},
				&discord.SubcommandOption{
					OptionName:  "add",
					Description: "Wrap every occurrence of a word in a tag",
					Options: []discord.CommandOptionValue{
						&discord.StringOption{
							OptionName:  "word",
							Description: "Word to wrap",
							Required:    true,
						},
						&discord.StringOption{
							OptionName:  "tag",
							Description: "Tag to wrap with",
							Required:    true,
						},
					},
				},
				&discord.SubcommandOption{
					OptionName:  "html",
					Description: "Show the document",
				},
				&discord.SubcommandOption{
					OptionName:  "print",
					Description: "Show the document as an outline",
				},
				&discord.SubcommandOption{
					OptionName:  "query",
					Description: "Find elements with a CSS selector",
					Options: []discord.CommandOptionValue{
						&discord.StringOption{
							OptionName:  "selector",
							Description: "CSS selector, i.e. td > b",
							Required:    true,
						},
					},
				},
				&discord.SubcommandOption{
					OptionName:  "stats",
					Description: "Count the nodes in the document",
				},
			},
		},
		{
			Name:        "info",
			Description: "Generic Bot Info",
		},
		{
			Name:                "config",
			Description:         "Configure the tree bot",
			NoDefaultPermission: true,
			Options: []discord.CommandOption{
				&discord.SubcommandOption{
					OptionName:  "ignore",
					Description: "Ignore commands from a user",
					Options: []discord.CommandOptionValue{
						&discord.UserOption{
							OptionName:  "user",
							Description: "User to ignore",
							Required:    true,
						},
					},
				},
				&discord.SubcommandOption{
					OptionName:  "unignore",
					Description: "Stop ignoring commands from a user",
					Options: []discord.CommandOptionValue{
						&discord.UserOption{
							OptionName:  "user",
							Description: "User to unignore",
							Required:    true,
						},
					},
				},
				&discord.SubcommandOption{
					OptionName:  "ignorelist",
					Description: "List all ignored users",
				},
			},
		},
	}
}
