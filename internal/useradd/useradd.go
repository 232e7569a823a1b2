// Package useradd implements the operator command that creates a corpdesk
// identity directly in the database. It is how the first admin is
// bootstrapped.
package useradd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/corpdesk/internal/server/models"
	"github.com/dmitrijs2005/corpdesk/internal/server/services"
)

var ErrPasswordMismatch = errors.New("passwords do not match")

type Options struct {
	DatabaseDSN string
	services.NewUser
}

// Creator persists a new identity.
type Creator interface {
	Create(ctx context.Context, in services.NewUser) (*models.User, error)
}

// ParseFlags reads the command line. dsn is the default database DSN.
func ParseFlags(args []string, dsn string) (*Options, error) {
	opts := &Options{}
	fs := flag.NewFlagSet("useradd", flag.ContinueOnError)
	fs.StringVar(&opts.DatabaseDSN, "d", dsn, "database DSN")
	fs.StringVar(&opts.Email, "email", "", "email (login)")
	fs.StringVar(&opts.Role, "role", models.RoleUser, "role: user or admin")
	fs.StringVar(&opts.Fname, "fname", "", "first name")
	fs.StringVar(&opts.Lname, "lname", "", "last name")
	fs.StringVar(&opts.Phone, "phone", "", "phone")
	fs.StringVar(&opts.Cname, "cname", "", "company name")
	fs.StringVar(&opts.Pname, "pname", "", "project name")
	fs.StringVar(&opts.Department, "department", "", "department")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// Run prompts for every field not given on the command line, reads the
// password twice and creates the identity.
func Run(ctx context.Context, opts *Options, c Creator, reader *bufio.Reader, w io.Writer) (*models.User, error) {
	in := opts.NewUser

	fields := []struct {
		prompt string
		value  *string
	}{
		{"Email", &in.Email},
		{"First name", &in.Fname},
		{"Last name", &in.Lname},
		{"Phone", &in.Phone},
		{"Company name", &in.Cname},
		{"Project name", &in.Pname},
		{"Department", &in.Department},
	}
	for _, f := range fields {
		if *f.value != "" {
			continue
		}
		v, err := GetSimpleText(reader, f.prompt, w)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.prompt, err)
		}
		*f.value = v
	}

	pw, err := GetPassword("Password", w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	confirm, err := GetPassword("Repeat password", w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	if pw != confirm {
		return nil, ErrPasswordMismatch
	}
	in.Password = pw

	u, err := c.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "created user id=%d email=%s role=%s\n", u.ID, u.Email, u.Role)
	return u, nil
}
