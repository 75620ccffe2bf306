package main

import (
	"fmt"
	"log"
	"time"

	"github.com/DiscordGophers/domtree/tree"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/pkg/errors"
)

const noSession = "You have no document loaded.\n\nUse `/tree load` first."

var errNoSession = errors.New("no document loaded")

// session is one user's working copy of a document.
type session struct {
	document string
	tree     *tree.Tree
	used     time.Time
}

func (b *botState) gcSessions() {
	ticker := time.NewTicker(time.Minute)
	for range ticker.C {
		b.expireSessions(time.Now())
	}
}

func (b *botState) expireSessions(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for user, s := range b.sessions {
		if now.Sub(s.used) < b.cfg.SessionTTL.Duration {
			continue
		}
		delete(b.sessions, user)
		log.Printf("Expired %s session for %s", s.document, user)
	}
}

// load replaces the user's session with a fresh copy of the named document.
func (b *botState) load(user discord.UserID, name string) (*session, error) {
	doc, ok := b.cfg.Documents[name]
	if !ok {
		return nil, fmt.Errorf("no document named %q", name)
	}
	t, err := loadDocument(doc)
	if err != nil {
		return nil, err
	}

	s := &session{document: name, tree: t, used: time.Now()}
	b.mu.Lock()
	b.sessions[user] = s
	b.mu.Unlock()
	return s, nil
}

// edit applies an operation to the user's session.
func (b *botState) edit(user discord.UserID, op string, args []string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.sessions[user]
	if !ok {
		return "", errNoSession
	}
	s.used = time.Now()
	return apply(s.tree, op, args)
}

func (b *botState) handleTree(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	// the subcommand is always present
	cmd := d.Options[0]

	args, err := optionArgs(cmd.Options)
	if err != nil {
		b.respond(e, failEmbed("Error", fmt.Sprintf("Invalid options: `%v`", err)), true)
		return
	}

	log.Printf("%s used tree(%s, %q)", e.User.Tag(), cmd.Name, args)

	if cmd.Name == "load" {
		s, err := b.load(e.User.ID, args[0])
		if err != nil {
			b.respond(e, failEmbed("Error", fmt.Sprintf("Could not load document: `%v`", err)), true)
			return
		}
		stats := s.tree.Stats()
		b.respond(e, treeEmbed("Loaded "+s.document, fmt.Sprintf("%d elements, %d text nodes.", stats.Elements, stats.Leaves), false), true)
		return
	}

	msg, err := b.edit(e.User.ID, cmd.Name, args)
	switch {
	case errors.Is(err, errNoSession):
		b.respond(e, failEmbed("Error", noSession), true)
		return
	case err != nil:
		b.respond(e, failEmbed("Error", fmt.Sprintf("`%v`", err)), true)
		return
	}

	switch cmd.Name {
	case "html", "print", "query":
		b.respond(e, treeEmbed("Tree: "+cmd.Name, msg, true), false)
	default:
		b.respond(e, treeEmbed("Tree: "+cmd.Name, msg, false), false)
	}
}
