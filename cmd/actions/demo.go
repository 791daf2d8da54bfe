package main

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Allorak/actions"
	"github.com/Allorak/actions/internal/logging"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the score-game dispatch demo",
	Long:  `Simulates a small score game where score updates and leader changes are delivered through typed actions. The safety flag picks the enforcement level for every connect and invoke.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := cmd.Flags().GetString("safety")
		if err != nil {
			return err
		}
		level, err := actions.ParseTypeSafetyLevel(name)
		if err != nil {
			return err
		}
		return runDemo(level)
	},
}

func init() {
	demoCmd.Flags().String("safety", "error", "Type safety level for connect and invoke (none|warning|error)")
	rootCmd.AddCommand(demoCmd)
}

type player struct {
	name         string
	score        int
	scoreUpdated *actions.Action
}

func newPlayer(name string, level actions.TypeSafetyLevel, logger *slog.Logger) *player {
	return &player{
		name: name,
		scoreUpdated: actions.New(
			actions.NewSignature(reflect.TypeFor[*player](), reflect.TypeFor[int]()),
			actions.WithSafety(level),
			actions.WithLogger(logger),
		),
	}
}

func (p *player) addPoints(points int) error {
	p.score += points
	return p.scoreUpdated.Invoke(p, p.score)
}

type game struct {
	leader        *player
	leaderChanged *actions.Action
}

func newGame(players []*player, level actions.TypeSafetyLevel, logger *slog.Logger) (*game, error) {
	g := &game{
		leader: players[0],
		leaderChanged: actions.New(
			actions.NewSignature(reflect.TypeFor[*player]()),
			actions.WithSafety(level),
			actions.WithLogger(logger),
		),
	}
	for _, p := range players {
		if _, err := p.scoreUpdated.Connect(g.onScoreChanged); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *game) onScoreChanged(p *player, score int) error {
	if p.score > g.leader.score {
		g.leader = p
		return g.leaderChanged.Invoke(p)
	}
	return nil
}

func runDemo(level actions.TypeSafetyLevel) error {
	logger := logging.New(slog.LevelInfo)
	profile := termenv.ColorProfile()

	players := []*player{
		newPlayer("Player 1", level, logger),
		newPlayer("Player 2", level, logger),
		newPlayer("Player 3", level, logger),
		newPlayer("Player 4", level, logger),
	}

	// Score logger connects first, so it always prints before the
	// leaderboard reacts.
	for _, p := range players {
		if _, err := p.scoreUpdated.Connect(func(p *player, score int) {
			fmt.Printf("%s now has %d points\n", p.name, score)
		}); err != nil {
			return err
		}
	}

	g, err := newGame(players, level, logger)
	if err != nil {
		return err
	}
	if _, err := g.leaderChanged.Connect(func(p *player) {
		line := termenv.String(fmt.Sprintf("New leader: %s", p.name)).
			Foreground(profile.Color("#818cf8")).
			Bold()
		fmt.Println(line)
	}); err != nil {
		return err
	}

	moves := []struct {
		player *player
		points int
	}{
		{players[1], 10},
		{players[2], 11},
		{players[1], 5},
		{players[0], 1},
		{players[0], 5},
		{players[0], 20},
		{players[3], 30},
		{players[0], 100},
	}
	for _, mv := range moves {
		if err := mv.player.addPoints(mv.points); err != nil {
			return err
		}
	}
	return nil
}
