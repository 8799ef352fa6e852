package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"

	"github.com/pterm/pterm"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hexhaven/cubedraft/internal"
	"github.com/hexhaven/cubedraft/internal/config"
	"github.com/hexhaven/cubedraft/internal/draft"
	"github.com/hexhaven/cubedraft/internal/identity"
	"github.com/hexhaven/cubedraft/internal/pool"
	"github.com/hexhaven/cubedraft/internal/store"
)

func main() {
	players := flag.Int("players", 4, "number of seats in the draft")
	packs := flag.Int("packs", 3, "packs opened per seat")
	cards := flag.Int("cards", 15, "cards per booster")
	cube := flag.String("cube", "", "CubeCobra cube id (empty for the bundled default cube)")
	seed := flag.Int64("seed", 0, "rng seed, 0 seeds from the clock")
	flag.Parse()

	logger := internal.GetLogger()
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalw("bad configuration", "error", err)
	}

	ctx := context.Background()

	cardPool := pool.Default()
	if *cube != "" {
		cardPool, err = pool.FetchOrDefault(ctx, pool.NewCubeCobra(cfg.CubeAPIBase), *cube)
		if err != nil {
			logger.Fatalw("cannot load cube", "cube", *cube, "error", err)
		}
	}

	snapshots := buildStore(cfg, logger)

	names := identity.Static{}
	ids := make([]string, 0, *players)
	bots := make(map[string]bool, *players)
	for i := 0; i < *players; i++ {
		id := fmt.Sprintf("seat-%d", i+1)
		ids = append(ids, id)
		names[id] = fmt.Sprintf("Drafter %d", i+1)
		if i > 0 {
			bots[id] = true
		}
	}

	opts := draft.Options{Bots: bots}
	if *seed != 0 {
		opts.Rand = rand.New(rand.NewSource(*seed))
	}
	session := draft.NewSession(ids, opts)

	persist := func() {
		data, err := draft.Serialize(session)
		if err != nil {
			logger.Errorw("serialize failed", "draft", session.ID(), "error", err)
			return
		}
		if err := snapshots.Save(ctx, session.ID(), data); err != nil {
			logger.Errorw("snapshot save failed", "draft", session.ID(), "error", err)
		}
	}

	out, err := session.Start(cardPool, *packs, *cards)
	if err != nil {
		logger.Fatalw("cannot start draft", "error", err)
	}
	persist()
	announce(out, names)

	// seat-1 is the lone human seat; drive it with first-card picks so the
	// full Pick path runs, the bots cascading behind each pick.
	human := ids[0]
	for session.Stage() == draft.StageDrafting {
		out, err = session.Pick(human, draft.ByPosition(1))
		if err != nil {
			logger.Fatalw("pick failed", "player", human, "error", err)
		}
		persist()
		announce(out, names)
	}

	renderDecks(session, names)
}

func buildStore(cfg config.Config, logger *zap.SugaredLogger) store.Store {
	dir := store.NewDir(cfg.SnapshotDir)
	if cfg.RedisURL == "" {
		return dir
	}
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatalw("bad REDIS_URL", "error", err)
	}
	return store.NewFallback(store.NewRedis(redis.NewClient(opt), cfg.SnapshotTTL), dir, logger)
}

func announce(out *draft.PickOutcome, names identity.Resolver) {
	for _, e := range out.Effects {
		who := names.DisplayName(e.Player)
		if e.Skipped {
			pterm.Warning.Printfln("%s drafts %s face up, but the pool has no booster left to add", who, e.Card)
			continue
		}
		pterm.Info.Printfln("%s drafts %s face up and adds a booster to the draft", who, e.Card)
	}
}

func renderDecks(s *draft.Session, names identity.Resolver) {
	pterm.DefaultSection.Printfln("Draft %s finished", s.ID())
	for _, id := range s.Seating() {
		deck := s.DeckOf(id)
		pterm.DefaultBasicText.Printfln("%s (%d cards)", names.DisplayName(id), len(deck))
		for _, card := range deck {
			fmt.Println(card)
		}
		fmt.Println()
	}
}
