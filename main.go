package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/DiscordGophers/domtree/htmldoc"
	"github.com/DiscordGophers/domtree/tree"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to the configuration file")
	bot := flag.Bool("bot", false, "serve documents over Discord instead of the terminal")
	isHTML := flag.Bool("html", false, "the input file is regular HTML and is normalized before building")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		if *bot || flag.NArg() == 0 {
			log.Fatal(err)
		}
		cfg, _ = configFromBytes([]byte("{}"))
	}

	if *bot {
		pp.ColoringEnabled = false
		runBot(cfg, *cfgPath)
		return
	}

	doc, ok := cfg.Documents["default"]
	if flag.NArg() > 0 {
		doc, ok = document{Path: flag.Arg(0), HTML: *isHTML}, true
	}
	if !ok {
		log.Fatal("no input file given and no default document configured")
	}

	t, err := loadDocument(doc)
	if err != nil {
		log.Fatal(err)
	}

	pp.ColoringEnabled = isatty.IsTerminal(os.Stdout.Fd())
	if err := runMenu(t, os.Stdin, os.Stdout); err != nil {
		log.Fatal(errors.Wrap(err, "could not read commands"))
	}
}

func loadDocument(doc document) (*tree.Tree, error) {
	f, err := os.Open(doc.Path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open document")
	}
	defer f.Close()

	var t *tree.Tree
	if doc.HTML {
		var lines []string
		lines, err = htmldoc.Lines(f)
		if err != nil {
			return nil, errors.Wrapf(err, "could not normalize %s", doc.Path)
		}
		t, err = tree.Parse(strings.NewReader(strings.Join(lines, "\n")))
	} else {
		t, err = tree.Parse(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not build %s", doc.Path)
	}

	stats := t.Stats()
	log.Printf("Loaded %s: %s nodes, %s", doc.Path,
		humanize.Comma(int64(stats.Elements+stats.Leaves)), humanize.Bytes(uint64(len(t.HTML()))))
	return t, nil
}

func runBot(cfg configuration, cfgPath string) {
	if cfg.Token == "" {
		log.Fatal("no token provided")
	}

	s := state.New("Bot " + cfg.Token)
	b := botState{
		cfg:      cfg,
		cfgPath:  cfgPath,
		state:    s,
		sessions: map[discord.UserID]*session{},
	}

	s.AddHandler(b.OnCommand)
	s.AddIntents(gateway.IntentGuilds)

	if err := s.Open(context.Background()); err != nil {
		log.Fatalln("failed to open:", err)
	}
	defer s.Close()

	log.Println("Gateway connection established.")
	me, err := s.Me()
	if err != nil {
		log.Println("Could not get me:", err)
		return
	}
	b.appID = discord.AppID(me.ID)

	log.Println("Logged in as ", me.Tag())

	if err := loadCommands(s, b.appID, cfg); err != nil {
		log.Println("Could not load commands:", err)
		return
	}

	go b.gcSessions()
	select {}
}
