package main

import (
	"errors"
	"flag"
	"os"

	"github.com/Pulkitsaraswat52/facegate/internal/adapters/profilecache"
)

func runProfileLatest(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("profile-latest", flag.ContinueOnError)
	path := fs.String("path", ctx.Config.Cache.Path, "profile cache database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return errors.New("-path is required")
	}

	cache, err := profilecache.Open(ctx.Ctx, *path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := cache.Close(); cerr != nil {
			ctx.Logger.Warn("close profile cache failed", "error", cerr)
		}
	}()

	identity, err := cache.Latest(ctx.Ctx)
	if errors.Is(err, profilecache.ErrNotFound) {
		return writef(os.Stdout, "no cached profiles\n")
	}
	if err != nil {
		return err
	}

	if err := writef(os.Stdout, "subject: %s\n", identity.Subject); err != nil {
		return err
	}
	if err := writef(os.Stdout, "username: %s\n", identity.Username); err != nil {
		return err
	}
	if err := writef(os.Stdout, "email: %s\n", identity.Email); err != nil {
		return err
	}
	return writef(os.Stdout, "picture: %s\n", identity.PictureURL)
}
