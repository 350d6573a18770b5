package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/service"
	"github.com/morjahome/dashboard/internal/dashboard/store"
	"github.com/morjahome/dashboard/pkg/cryptox"
	"golang.org/x/term"
)

var errUsage = errors.New("invalid usage, see dashctl -h")

type commands struct {
	store    store.Store
	accounts *service.AccountService
	out      io.Writer

	readPassword func(prompt string) (string, error)
}

func (c *commands) run(ctx context.Context, name string, args []string) error {
	switch name {
	case "list-users":
		return c.listUsers(ctx)
	case "create-user":
		return c.createUser(ctx, args)
	case "set-password":
		return c.setPassword(ctx, args)
	case "reset-2fa":
		return c.resetTwoFactor(ctx, args)
	case "set-active":
		return c.setActive(ctx, args)
	default:
		return fmt.Errorf("unknown command %q", name)
	}
}

func (c *commands) listUsers(ctx context.Context) error {
	accounts, err := c.accounts.List(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USERNAME\tEMAIL\tROLES\tACTIVE\t2FA")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%t\n",
			a.Username, a.Email, strings.Join(a.Roles, ","), a.IsActive, a.TwoFactorEnabled)
	}
	return tw.Flush()
}

func (c *commands) createUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	username := fs.String("username", "", "")
	email := fs.String("email", "", "")
	roles := fs.String("roles", domain.RoleLinks, "")
	admin := fs.Bool("admin", false, "")
	generate := fs.Bool("generate", false, "")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *username == "" || *email == "" {
		return errUsage
	}

	var roleList []string
	if *admin {
		roleList = domain.AllRoles
	} else if *roles != "" {
		roleList = strings.Split(*roles, ",")
	}

	var password string
	var err error
	if *generate {
		password, err = cryptox.GeneratePassword()
	} else {
		password, err = c.newPassword()
	}
	if err != nil {
		return err
	}

	a, err := c.accounts.Create(ctx, service.RegisterInput{
		Username: *username,
		Email:    *email,
		Password: password,
		Roles:    roleList,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created %s (%s) with roles %s\n", a.Username, a.ID, strings.Join(a.Roles, ","))
	if *generate {
		fmt.Fprintf(c.out, "Generated password: %s\n", password)
	}
	return nil
}

func (c *commands) setPassword(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	a, err := c.lookup(ctx, args[0])
	if err != nil {
		return err
	}

	password, err := c.newPassword()
	if err != nil {
		return err
	}
	if _, err := c.accounts.Update(ctx, a.ID, domain.AccountPatch{Password: &password}); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Password updated for %s\n", a.Username)
	return nil
}

func (c *commands) resetTwoFactor(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	a, err := c.lookup(ctx, args[0])
	if err != nil {
		return err
	}
	if err := c.accounts.ResetTwoFactor(ctx, a.ID); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "2FA reset for %s\n", a.Username)
	return nil
}

func (c *commands) setActive(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	active, err := strconv.ParseBool(args[1])
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	a, err := c.lookup(ctx, args[0])
	if err != nil {
		return err
	}
	if _, err := c.accounts.Update(ctx, a.ID, domain.AccountPatch{IsActive: &active}); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s active=%t\n", a.Username, active)
	return nil
}

func (c *commands) lookup(ctx context.Context, username string) (domain.Account, error) {
	a, err := c.store.Accounts().GetAccountByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, fmt.Errorf("no user named %q", username)
	}
	return a, err
}

func (c *commands) newPassword() (string, error) {
	first, err := c.readPassword("New password: ")
	if err != nil {
		return "", err
	}
	second, err := c.readPassword("Confirm password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errors.New("passwords do not match")
	}
	return first, nil
}

// genSecret prints a value suitable for JWT_SECRET.
func genSecret(out io.Writer) error {
	s, err := cryptox.GenerateSecret(cryptox.SecretSize)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
