package main

import (
	"fmt"
	"os"

	"github.com/nadoo/conflag"

	"github.com/johnnyb/simplidea/pkg/log"
)

var flag = conflag.New()

// Config is global config struct.
type Config struct {
	Verbose  bool
	LogFlags int

	Input  string
	MinLen int
	MaxLen int

	Key            string
	LegacyKeyCheck bool
	Seed           int64

	Padding string
	Workers int

	Trace bool
	MAC   bool
}

func parseConfig() *Config {
	conf := &Config{}

	flag.SetOutput(os.Stdout)

	flag.BoolVar(&conf.Verbose, "verbose", false, "verbose mode")
	flag.IntVar(&conf.LogFlags, "logflags", 19, "do not change it if you do not know what it is, ref: https://pkg.go.dev/log#pkg-constants")

	flag.StringVar(&conf.Input, "input", "", "plaintext to encrypt, prompt on stdin when empty")
	flag.IntVar(&conf.MinLen, "minlen", 16, "minimum plaintext length accepted at the prompt")
	flag.IntVar(&conf.MaxLen, "maxlen", 256, "maximum plaintext length accepted at the prompt")

	flag.StringVar(&conf.Key, "key", "", "32-bit binary key, e.g. 0101..., a random key is used if it does not validate")
	flag.BoolVar(&conf.LegacyKeyCheck, "legacykeycheck", false, "validate keys with the legacy rule (31 elements, any raw 0/1 value)")
	flag.Int64Var(&conf.Seed, "seed", 0, "seed for random key generation, 0 uses the current time")

	flag.StringVar(&conf.Padding, "padding", "zero", `policy for a trailing partial block:
reject: fail unless the input is whole 4-byte blocks
zero: fill the last block with zero bytes
truncate: drop the last partial block`)
	flag.IntVar(&conf.Workers, "workers", 1, "number of goroutines used to encrypt blocks")

	flag.BoolVar(&conf.Trace, "trace", false, "print the eight intermediate mix values of every block")
	flag.BoolVar(&conf.MAC, "mac", false, "print a CMAC tag of the plaintext")

	flag.Usage = usage
	if err := flag.Parse(); err != nil {
		// without arguments conflag looks for sidea.conf, which is optional
		if !(os.IsNotExist(err) && len(os.Args) == 1) {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			os.Exit(-1)
		}
	}

	// setup logger
	log.Set(conf.Verbose, conf.LogFlags)

	if conf.MinLen < 0 || conf.MaxLen < conf.MinLen {
		fmt.Fprintf(os.Stderr, "ERROR: invalid plaintext bounds %d..%d\n", conf.MinLen, conf.MaxLen)
		os.Exit(-1)
	}

	return conf
}

func usage() {
	app := os.Args[0]
	w := flag.Output()

	fmt.Fprint(w, "\n", app, " v", version, " usage:\n")
	flag.PrintDefaults()

	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  %s\n", app)
	fmt.Fprintf(w, "    -prompt for the plaintext and the key.\n\n")
	fmt.Fprintf(w, "  %s -input \"Attack at dawn!!\" -key 01010101010101010101010101010101\n", app)
	fmt.Fprintf(w, "    -encrypt the given plaintext, print one word per block.\n\n")
	fmt.Fprintf(w, "  %s -config sidea.conf -trace -verbose\n", app)
	fmt.Fprintf(w, "    -read flags from sidea.conf, one flag=value per line, and show every round.\n\n")
}
