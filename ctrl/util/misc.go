package util

import (
	"github.com/hashicorp/go-multierror"
)

func HasArg(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}
	return false
}

// SingleArg returns the only argument as path, even one spelled --help. With any
// other count, help reports whether usage was asked for.
func SingleArg(args []string) (path string, help bool, ok bool) {
	if len(args) == 1 {
		return args[0], false, true
	}
	return "", HasArg(args, "--help"), false
}

// CombineErrors drops nil errors and merges the rest; a single error is returned unwrapped.
func CombineErrors(errors ...error) (err error) {
	for _, e := range errors {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}
