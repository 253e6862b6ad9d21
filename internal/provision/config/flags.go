package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/anselusd/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-n int      number of accounts to generate
//	-i string   database host
//	-P string   database port
//	-D string   database name
//	-u string   database user
//	-p string   database password
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so the -c/-config flags handled by the JSON loader pass
// through untouched.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-n", "-i", "-P", "-D", "-u", "-p"})

	fs := flag.NewFlagSet("provision", flag.ContinueOnError)

	fs.IntVar(&config.AccountCount, "n", config.AccountCount, "number of accounts to generate")
	fs.StringVar(&config.Database.IP, "i", config.Database.IP, "database host")
	fs.StringVar(&config.Database.Port, "P", config.Database.Port, "database port")
	fs.StringVar(&config.Database.Name, "D", config.Database.Name, "database name")
	fs.StringVar(&config.Database.User, "u", config.Database.User, "database user")
	fs.StringVar(&config.Database.Password, "p", config.Database.Password, "database password")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
