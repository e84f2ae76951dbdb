// Package cli implements the command-line front end of the library client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/playhub-library/internal/client/client"
	pb "github.com/dmitrijs2005/playhub-library/internal/proto"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var ErrUsage = errors.New("usage error")

const usage = `Available commands:
  update <user_id> <game_id> <status>           set the status of a game
  list   <user_id> [status] [limit] [offset]    show a user's library
  stats  <user_id>                              count a user's library entries
Statuses: unspecified, plan, playing, completed, dropped, waiting`

type libraryClient interface {
	UpdateEntry(ctx context.Context, userID, gameID string, st pb.GameStatus) (*pb.LibraryEntry, error)
	GetLibrary(ctx context.Context, userID string, st pb.GameStatus, limit, offset int32) ([]*pb.LibraryEntry, error)
	GetStats(ctx context.Context, userID string) (int32, error)
}

type App struct {
	client libraryClient
	out    io.Writer
}

func NewApp(c libraryClient, out io.Writer) *App {
	return &App{client: c, out: out}
}

// Run executes one command given as positional arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "help":
		fmt.Fprintln(a.out, usage)
		return nil
	case "update":
		return a.update(ctx, rest)
	case "list":
		return a.list(ctx, rest)
	case "stats":
		return a.stats(ctx, rest)
	default:
		fmt.Fprintln(a.out, usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func (a *App) update(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: update <user_id> <game_id> <status>", ErrUsage)
	}

	st, err := client.ParseStatus(args[2])
	if err != nil {
		return err
	}

	entry, err := a.client.UpdateEntry(ctx, args[0], args[1], st)
	if err != nil {
		return err
	}

	return a.print(&pb.UpdateLibraryEntryResponse{Entry: entry})
}

func (a *App) list(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 4 {
		return fmt.Errorf("%w: list <user_id> [status] [limit] [offset]", ErrUsage)
	}

	var (
		st            pb.GameStatus
		limit, offset int32
		err           error
	)
	if len(args) > 1 {
		if st, err = client.ParseStatus(args[1]); err != nil {
			return err
		}
	}
	if len(args) > 2 {
		if limit, err = parseInt32("limit", args[2]); err != nil {
			return err
		}
	}
	if len(args) > 3 {
		if offset, err = parseInt32("offset", args[3]); err != nil {
			return err
		}
	}

	entries, err := a.client.GetLibrary(ctx, args[0], st, limit, offset)
	if err != nil {
		return err
	}

	return a.print(&pb.GetUserLibraryResponse{Entries: entries})
}

func (a *App) stats(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: stats <user_id>", ErrUsage)
	}

	n, err := a.client.GetStats(ctx, args[0])
	if err != nil {
		return err
	}

	return a.print(&pb.GetLibraryStatsResponse{CountLibraryEntries: n})
}

func (a *App) print(m proto.Message) error {
	b, err := protojson.MarshalOptions{EmitUnpopulated: true, UseProtoNames: true}.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

func parseInt32(name, s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %q", ErrUsage, name, s)
	}
	return int32(v), nil
}
