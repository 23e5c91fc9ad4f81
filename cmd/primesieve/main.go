// Program primesieve finds primes below N using a cascade of worker
// goroutines connected by spmc channels, one worker per prime found so
// far. It is a demonstration of the spmc topology, not a fast sieve.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/creachadair/command"
)

func main() {
	root := &command.C{
		Name: filepath.Base(os.Args[0]),
		Help: "Find primes below N with a cascade of worker goroutines.",
		Commands: []*command.C{
			{
				Name:  "run",
				Usage: "<n>",
				Help:  "Sieve the integers in [2, n) for primes.",
				Run: func(env *command.Env) error {
					if len(env.Args) != 1 {
						return env.Usagef("exactly one argument is required")
					}
					n, err := strconv.Atoi(env.Args[0])
					if err != nil {
						return fmt.Errorf("invalid n: %w", err)
					}
					primes, err := sieve(n)
					if err != nil {
						return err
					}
					fmt.Println(primes)
					return nil
				},
			},
			command.VersionCommand(),
			command.HelpCommand(nil),
		},
	}
	command.RunOrFail(root.NewEnv(nil).MergeFlags(true), os.Args[1:])
}
