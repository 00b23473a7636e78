package main

import (
	"flag"
	"os"

	"github.com/Pulkitsaraswat52/facegate/internal/adapters/googleauth"
)

// runGoogleLogin drives the headless authorization-code flow. Without -code
// it prints the auth URL to open in a browser; with -code it redeems the
// pasted code and prints the raw ID token for the agent's third-party login.
func runGoogleLogin(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("google-login", flag.ContinueOnError)
	code := fs.String("code", "", "authorization code pasted back from the browser")
	if err := fs.Parse(args); err != nil {
		return err
	}

	flow, err := googleauth.NewFlow(ctx.Ctx, googleauth.FlowConfig{
		ClientID:     ctx.Config.Auth.Google.ClientID,
		ClientSecret: ctx.Config.Auth.Google.ClientSecret,
		RedirectURL:  ctx.Config.Auth.Google.RedirectURL,
		Issuer:       ctx.Config.Auth.Google.Issuer,
	})
	if err != nil {
		return err
	}

	if *code == "" {
		authURL, state, err := flow.Begin()
		if err != nil {
			return err
		}
		if err := writef(os.Stdout, "open in a browser:\n%s\n\nstate: %s\n", authURL, state); err != nil {
			return err
		}
		return writef(os.Stdout, "then rerun with -code <authorization code>\n")
	}

	rawToken, err := flow.Exchange(ctx.Ctx, *code)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "%s\n", rawToken)
}
