package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Pulkitsaraswat52/facegate/internal/adapters/apiclient"
	"github.com/Pulkitsaraswat52/facegate/internal/adapters/authroles"
	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
	"github.com/Pulkitsaraswat52/facegate/internal/service"
	"github.com/Pulkitsaraswat52/facegate/internal/session"
)

type credentialOptions struct {
	Username string
	Password string
}

func (o *credentialOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.Username, "username", "", "login username")
	fs.StringVar(&o.Password, "password", "", "login password")
}

func (o *credentialOptions) validate() error {
	if o.Username == "" {
		return errors.New("-username is required")
	}
	if o.Password == "" {
		return errors.New("-password is required")
	}
	return nil
}

// loginSession logs in with the given credentials and returns an entry
// service bound to the resulting session. The session cookie lives in the
// client's jar for the remainder of the process.
func loginSession(ctx *commandContext, creds credentialOptions) (*service.EntryService, error) {
	api, err := apiclient.New(apiclient.Config{
		BaseURL: ctx.Config.API.BaseURL,
		Timeout: ctx.Config.API.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}

	result, err := api.Login(ctx.Ctx, creds.Username, creds.Password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	role := domainauth.NormalizeRole(result.Role)
	if result.Role == "" {
		roles := authroles.StaticRoleMapper{Users: authroles.DefaultUsers()}
		role = roles.Map(result.Username)
	}

	sessions := session.NewStore()
	sessions.Establish(domainauth.Session{
		Username: result.Username,
		Role:     role,
		Method:   domainauth.MethodPassword,
	})

	entries, err := service.NewEntryService(service.EntryServiceOptions{
		API:      api,
		Sessions: sessions,
	})
	if err != nil {
		return nil, fmt.Errorf("build entry service: %w", err)
	}
	return entries, nil
}

func runEntriesList(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("entries-list", flag.ContinueOnError)
	var creds credentialOptions
	creds.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := creds.validate(); err != nil {
		return err
	}

	entries, err := loginSession(ctx, creds)
	if err != nil {
		return err
	}

	list, err := entries.List(ctx.Ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "ID\tUSERNAME\tDATA\n"); err != nil {
		return err
	}
	for _, entry := range list {
		if err := writef(w, "%d\t%s\t%s\n", entry.ID, entry.Username, entry.Data); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runEntryAdd(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("entry-add", flag.ContinueOnError)
	var creds credentialOptions
	creds.register(fs)
	data := fs.String("data", "", "entry data")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := creds.validate(); err != nil {
		return err
	}
	if *data == "" {
		return errors.New("-data is required")
	}

	entries, err := loginSession(ctx, creds)
	if err != nil {
		return err
	}

	entry, err := entries.Add(ctx.Ctx, *data)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "created entry %d\n", entry.ID)
}

func runEntryUpdate(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("entry-update", flag.ContinueOnError)
	var creds credentialOptions
	creds.register(fs)
	id := fs.Int64("id", 0, "entry id")
	data := fs.String("data", "", "replacement data")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := creds.validate(); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("-id is required")
	}

	entries, err := loginSession(ctx, creds)
	if err != nil {
		return err
	}

	entry, err := entries.Update(ctx.Ctx, *id, *data)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "updated entry %d\n", entry.ID)
}

func runEntryDelete(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("entry-delete", flag.ContinueOnError)
	var creds credentialOptions
	creds.register(fs)
	id := fs.Int64("id", 0, "entry id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := creds.validate(); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("-id is required")
	}

	entries, err := loginSession(ctx, creds)
	if err != nil {
		return err
	}

	if err := entries.Delete(ctx.Ctx, *id); err != nil {
		return err
	}
	return writef(os.Stdout, "deleted entry %d\n", *id)
}

func runFacesList(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("faces-list", flag.ContinueOnError)
	var creds credentialOptions
	creds.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := creds.validate(); err != nil {
		return err
	}

	entries, err := loginSession(ctx, creds)
	if err != nil {
		return err
	}

	faces, err := entries.Faces(ctx.Ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "ID\tUSERNAME\tIMAGE\n"); err != nil {
		return err
	}
	for _, face := range faces {
		if err := writef(w, "%d\t%s\t%s\n", face.ID, face.Username, face.ImageLink); err != nil {
			return err
		}
	}
	return w.Flush()
}
