// Command bloglist inspects and seeds the entry store from the shell.
//
// Usage:
//
//	bloglist list
//	bloglist add -user <username> <title> <author> <url>
//	bloglist env
//
// It uses the same configuration as the server. New entries start with zero
// likes and are owned by the named user.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/bloglist-backend/internal/app"
	"github.com/heartmarshall/bloglist-backend/internal/config"
	"github.com/heartmarshall/bloglist-backend/internal/domain"
	"github.com/heartmarshall/bloglist-backend/internal/service/entry"
	"github.com/heartmarshall/bloglist-backend/pkg/ctxutil"
)

const usage = `usage:
  bloglist list
  bloglist add -user <username> <title> <author> <url>
  bloglist env`

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	// env must work before the configuration is valid.
	if os.Args[1] == "env" {
		if err := printEnv(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stores, err := app.OpenStores(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer stores.Close()

	switch os.Args[1] {
	case "list":
		err = list(ctx, os.Stdout, stores)
	case "add":
		err = add(ctx, os.Stdout, stores, os.Args[2:])
	default:
		err = fmt.Errorf("unknown command %q\n%s", os.Args[1], usage)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printEnv writes the environment variables the configuration reads.
func printEnv(w io.Writer) error {
	desc, err := config.Describe()
	if err != nil {
		return fmt.Errorf("describe config: %w", err)
	}
	_, err = fmt.Fprintln(w, desc)
	return err
}

func list(ctx context.Context, w io.Writer, stores *app.Stores) error {
	entries, err := stores.Entries.List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "blogs:")
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s %s %d\n", e.Title, e.Author, e.URL, e.Likes)
	}
	return nil
}

func add(ctx context.Context, w io.Writer, stores *app.Stores, args []string) error {
	fset := flag.NewFlagSet("add", flag.ContinueOnError)
	username := fset.String("user", "", "username of the entry owner")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if *username == "" || fset.NArg() != 3 {
		return errors.New(usage)
	}

	owner, err := stores.Users.GetByUsername(ctx, *username)
	if err != nil {
		return fmt.Errorf("look up user %q: %w", *username, err)
	}

	title, author, url := fset.Arg(0), fset.Arg(1), fset.Arg(2)
	zero := 0

	svc := entry.NewService(app.NewDiscardLogger(), stores.Entries)
	created, err := svc.Create(ctxutil.WithIdentity(ctx, owner.ID, owner.Username), domain.EntryCandidate{
		Title:  &title,
		Author: &author,
		URL:    &url,
		Likes:  &zero,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "added %s by %s to bloglist\n", created.Title, created.Author)
	return nil
}
