package config

import (
	"errors"
	"os"
)

// CaseInsensitiveEnv switches search to case-insensitive mode when it is set, whatever its value.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

var (
	ErrMissingQuery  = errors.New("didn't get a query string")
	ErrMissingSource = errors.New("didn't get an input filename")
)

type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// New builds a Config from raw process arguments. args[0] is the program name;
// anything after the filename is ignored.
func New(args []string, insensitive bool) (*Config, error) {
	if len(args) < 2 {
		return nil, ErrMissingQuery
	}
	if len(args) < 3 {
		return nil, ErrMissingSource
	}
	return &Config{
		Query:         args[1],
		Filename:      args[2],
		CaseSensitive: !insensitive,
	}, nil
}

func FromEnv(args []string) (*Config, error) {
	_, set := os.LookupEnv(CaseInsensitiveEnv)
	return New(args, set)
}

func IsConfigErr(err error) bool {
	return errors.Is(err, ErrMissingQuery) || errors.Is(err, ErrMissingSource)
}
