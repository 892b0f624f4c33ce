package handlers

import "context"

// HandlerFunc runs one subcommand with its positional arguments.
type HandlerFunc func(ctx context.Context, args []string) error
