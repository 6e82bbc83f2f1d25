package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sethgrid/harvest/internal/action"
	"github.com/sethgrid/harvest/internal/engine"
	"github.com/sethgrid/harvest/internal/player"
	"github.com/sethgrid/harvest/internal/render"
	"github.com/sethgrid/harvest/internal/stats"
	"github.com/sethgrid/harvest/internal/status"
)

const helpText = `Commands:
  w a s d / up down left right   move
  e, use                         use the selected item on the tile ahead
  tab, next                      select the next item
  select N                       select item N
  buy ID                         buy an item from the shop
  shop                           list the shop's stock
  sleep                          end the day
  talk                           ask the mayor for advice
  status                         show farm and player status
  map                            redraw the map
  quit                           leave the valley
`

func newPlayCmd() *cobra.Command {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Start a farming session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := settings()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				env.Seed, _ = cmd.Flags().GetInt64("seed")
				env.HasSeed = true
			}

			log := newLogger(env)

			r, path, err := loadRules(env)
			if err != nil {
				return err
			}
			log.Info().Str("rules", path).Msg("rules loaded")

			opts := []engine.Option{
				engine.WithLogger(log),
				engine.WithNarratorTimeout(env.NarratorTimeout),
			}
			if env.HasSeed {
				opts = append(opts, engine.WithSeed(env.Seed))
			}

			e, err := engine.New(r, opts...)
			if err != nil {
				return err
			}
			return newSession(e, cmd.OutOrStdout()).run(cmd.Context(), cmd.InOrStdin())
		},
	}
	playCmd.Flags().Int64("seed", 0, "Seed for the weather")
	return playCmd
}

// session is one interactive game on a line-oriented terminal. At most one
// mayor comment is in flight; its reply is printed before the next prompt.
type session struct {
	e       *engine.Engine
	out     io.Writer
	pending <-chan engine.Comment
}

func newSession(e *engine.Engine, out io.Writer) *session {
	return &session{e: e, out: out}
}

func (s *session) run(ctx context.Context, in io.Reader) error {
	snap := s.e.Snapshot()
	fmt.Fprintln(s.out, snap.Messages[0])
	s.draw(snap)

	scanner := bufio.NewScanner(in)
	for {
		s.poll()
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			s.finish()
			return scanner.Err()
		}
		if quit := s.handle(ctx, scanner.Text()); quit {
			s.finish()
			fmt.Fprintln(s.out, "See you tomorrow, farmer.")
			return nil
		}
	}
}

// handle runs one command line and reports whether the player quit.
func (s *session) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	if dir, ok := player.ParseFacing(fields[0]); ok {
		s.show(s.e.Move(dir))
		return false
	}

	switch fields[0] {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprint(s.out, helpText)
	case "e", "use":
		out := s.e.Interact()
		s.show(out)
		switch out.Signal {
		case action.SignalOpenShop:
			s.printStock()
		case action.SignalOpenDialogue:
			s.talk(ctx)
		}
	case "tab", "next":
		s.show(s.e.CycleInventory())
	case "select":
		if len(fields) < 2 {
			fmt.Fprintln(s.out, "Usage: select N")
			return false
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintf(s.out, "Not a slot number: %s\n", fields[1])
			return false
		}
		s.show(s.e.SelectInventory(n))
	case "buy":
		if len(fields) < 2 {
			fmt.Fprintln(s.out, "Usage: buy ID")
			s.printStock()
			return false
		}
		s.show(s.e.Buy(fields[1]))
	case "shop":
		s.printStock()
	case "sleep":
		s.show(s.e.Sleep())
	case "talk":
		s.talk(ctx)
	case "status":
		s.printStatus()
	case "map":
		s.draw(s.e.Snapshot())
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type help for a list.\n", fields[0])
	}
	return false
}

func (s *session) show(out engine.Outcome) {
	if out.Message != "" {
		fmt.Fprintln(s.out, out.Message)
	}
	s.draw(out.Snapshot)
}

func (s *session) draw(snap engine.Snapshot) {
	fmt.Fprint(s.out, render.Frame(render.View{
		Grid:   snap.Grid,
		Player: snap.Player,
		State:  snap.State,
		Crops:  s.e.Crops(),
	}))
}

func (s *session) printStock() {
	fmt.Fprintln(s.out, "For sale:")
	fmt.Fprint(s.out, render.Stock(s.e.Stock()))
}

// talk asks the mayor without blocking the command loop.
func (s *session) talk(ctx context.Context) {
	if s.pending != nil {
		fmt.Fprintln(s.out, "Mayor Thomas is still thinking...")
		return
	}
	s.pending = s.e.RequestCommentAsync(ctx)
	fmt.Fprintln(s.out, "You ask Mayor Thomas for advice.")
}

// poll prints the mayor's reply if it has arrived.
func (s *session) poll() {
	if s.pending == nil {
		return
	}
	select {
	case c := <-s.pending:
		s.pending = nil
		s.say(c)
	default:
	}
}

// finish waits for an outstanding reply. The narrator guard bounds the wait.
func (s *session) finish() {
	if s.pending == nil {
		return
	}
	s.say(<-s.pending)
	s.pending = nil
}

func (s *session) say(c engine.Comment) {
	text := c.Text
	if c.Stale {
		text += " (old news)"
	}
	fmt.Fprintf(s.out, "Mayor Thomas: %s\n", text)
}

func (s *session) printStatus() {
	derived := s.e.Status()
	f := s.e.Field()
	snap := s.e.Snapshot()

	fmt.Fprintf(s.out, "Status: %s\n", status.FormatConditions(derived.AllOrdered))
	fmt.Fprintf(s.out, "Energy: %d%%\n", stats.EnergyPercent(snap.Player.Energy, snap.Player.MaxEnergy))
	fmt.Fprintf(s.out, "Field: %d tilled, %d watered, %d planted, %d ripe (%dG), %d dead\n",
		f.Tilled, f.Watered, f.Planted, f.Ripe, f.Value, f.Dead)
	fmt.Fprintln(s.out, "Recent:")
	for _, m := range snap.Messages {
		fmt.Fprintf(s.out, "  %s\n", m)
	}
}
