package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/classroom/v1"
	"google.golang.org/api/option"
)

var AuthoriseCmd = Authorise{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	renew: false,
}

type Authorise struct {
	command
	renew bool
}

type authoriseOptions struct {
	Credentials string `flag:"credentials" validate:"required,file"`
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises uhppoted-app-classroom to access Google Classroom and Google Sheets"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Authorises uhppoted-app-classroom to manage Google Classroom courses and rosters and to update Google Sheets")
	fmt.Println("  worksheets, and caches the authorisation tokens in the workdir for use by subsequent unattended runs.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-classroom authorise --credentials "credentials.json"`)
	fmt.Println(`    uhppoted-app-classroom authorise --credentials "credentials.json" --renew`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("authorise")

	flagset.BoolVar(&cmd.renew, "renew", cmd.renew, "Discards any cached authorisation tokens and reauthorises")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	if len(args) > 0 {
		if options, ok := args[0].(*Options); ok {
			cmd.debug = options.Debug
		}
	}

	// ... check parameters
	options := authoriseOptions{
		Credentials: strings.TrimSpace(cmd.credentials),
	}

	if err := validateOptions(options); err != nil {
		return err
	}

	if cmd.renew {
		tokens := tokensFile(options.Credentials, SCOPES, cmd.tokensDir())
		if err := os.Remove(tokens); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("unable to remove cached tokens (%v)", err)
		}

		if cmd.debug {
			debugf("removed cached tokens %v", tokens)
		}
	}

	ctx := context.Background()

	client, err := authorize(options.Credentials, SCOPES, cmd.tokensDir())
	if err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	}

	google, err := classroom.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("unable to create new Classroom client (%v)", err)
	}

	user, err := newClassroom(google, 0).CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("unable to verify authorisation (%v)", err)
	}

	infof("Authorised as %v", user)

	return nil
}
