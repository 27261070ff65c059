package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/ports"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/service"
)

const usage = `Usage: console <command> [arguments]

Session:
  login   -email <email> -password <password>
  signup  -name <name> -email <email> -password <password> [key=value ...]
  logout
  whoami
  profile set key=value [key=value ...]

Role catalog (requires a session):
  roles list
  roles toggle <roleId>
  roles delete <roleId>
  roles add  -f <role.yaml>
  roles edit <roleId> -f <role.yaml>
`

func run(ctx context.Context, sessions *service.SessionService, console ports.RoleConsole, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing command")
	}

	switch args[0] {
	case "login":
		return cmdLogin(ctx, sessions, args[1:])
	case "signup":
		return cmdSignup(ctx, sessions, args[1:])
	case "logout":
		sessions.Logout(ctx)
		fmt.Println("Logged out.")
		return nil
	case "whoami":
		return cmdWhoami(sessions)
	case "profile":
		return cmdProfile(ctx, sessions, args[1:])
	case "roles":
		return cmdRoles(ctx, console, args[1:])
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func cmdLogin(ctx context.Context, sessions *service.SessionService, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	res := sessions.Login(ctx, *email, *password)
	if !res.OK {
		return errors.New(res.Message)
	}
	fmt.Println("Logged in as", sessions.Session().User.Email)
	return nil
}

func cmdSignup(ctx context.Context, sessions *service.SessionService, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	extra, err := parseFields(fs.Args())
	if err != nil {
		return err
	}

	res := sessions.Signup(ctx, *name, *email, *password, extra)
	if !res.OK {
		return errors.New(res.Message)
	}
	fmt.Println("Account created for", sessions.Session().User.Email)
	return nil
}

func cmdWhoami(sessions *service.SessionService) error {
	sess := sessions.Session()
	if !sess.IsAuthenticated() {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s>\n", sess.User.Name, sess.User.Email)
	if exp := sessions.TokenExpiry(); !exp.IsZero() {
		fmt.Println("Session expires", exp.Local().Format(time.RFC1123))
	}
	for k, v := range sess.User.Profile {
		fmt.Printf("  %s: %v\n", k, v)
	}
	return nil
}

func cmdProfile(ctx context.Context, sessions *service.SessionService, args []string) error {
	if len(args) < 2 || args[0] != "set" {
		return errors.New("usage: profile set key=value [key=value ...]")
	}
	fields, err := parseFields(args[1:])
	if err != nil {
		return err
	}
	res := sessions.UpdateProfile(ctx, fields)
	if !res.OK {
		return errors.New(res.Message)
	}
	fmt.Println("Profile updated.")
	return nil
}

func cmdRoles(ctx context.Context, console ports.RoleConsole, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: roles <list|toggle|delete|add|edit>")
	}

	// Every subcommand works against a fresh mirror of the catalog.
	fetch := console.FetchRoles(ctx)

	switch args[0] {
	case "list":
		if !fetch.Loaded {
			fmt.Println("Could not load roles; showing nothing.")
			return nil
		}
		printRoles(console)
		return nil

	case "toggle":
		if len(args) != 2 {
			return errors.New("usage: roles toggle <roleId>")
		}
		if res := console.ToggleRoleStatus(ctx, args[1]); !res.OK {
			return errors.New(res.Message)
		}
		printRoles(console)
		return nil

	case "delete":
		if len(args) != 2 {
			return errors.New("usage: roles delete <roleId>")
		}
		title := args[1]
		for _, r := range console.Roles() {
			if r.RoleID == args[1] {
				title = r.Title
				break
			}
		}
		res := console.DeleteRole(ctx, args[1], title)
		if res.Cancelled {
			fmt.Println("Cancelled.")
			return nil
		}
		if !res.OK {
			return errors.New(res.Message)
		}
		return nil

	case "add":
		form, err := formFromArgs(args[1:])
		if err != nil {
			return err
		}
		if res := console.AddRole(ctx, form); !res.OK {
			return errors.New(res.Message)
		}
		return nil

	case "edit":
		if len(args) < 2 {
			return errors.New("usage: roles edit <roleId> -f <role.yaml>")
		}
		form, err := formFromArgs(args[2:])
		if err != nil {
			return err
		}
		if res := console.UpdateRole(ctx, args[1], form); !res.OK {
			return errors.New(res.Message)
		}
		return nil

	default:
		return fmt.Errorf("unknown roles subcommand %q", args[0])
	}
}

func formFromArgs(args []string) (ports.RoleForm, error) {
	fs := flag.NewFlagSet("role form", flag.ExitOnError)
	file := fs.String("f", "", "role definition YAML file")
	_ = fs.Parse(args)
	if *file == "" {
		return ports.RoleForm{}, errors.New("a role YAML file is required (-f role.yaml)")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		return ports.RoleForm{}, fmt.Errorf("reading %s: %w", *file, err)
	}
	var form ports.RoleForm
	if err := yaml.Unmarshal(raw, &form); err != nil {
		return ports.RoleForm{}, fmt.Errorf("parsing %s: %w", *file, err)
	}
	return form, nil
}

func printRoles(console ports.RoleConsole) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tACTIVE\tORDER\tLEVEL\tDEMAND\tSALARY")
	for _, r := range console.Roles() {
		fmt.Fprintf(w, "%s\t%s\t%t\t%d\t%s\t%s\t%d-%d %s\n",
			r.RoleID, r.Title, r.IsActive, r.Order, r.ExperienceLevel, r.IndustryDemand,
			r.SalaryRange.Min, r.SalaryRange.Max, r.SalaryRange.Currency)
	}
	_ = w.Flush()
}

func parseFields(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	fields := make(map[string]any, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		fields[k] = v
	}
	return fields, nil
}
