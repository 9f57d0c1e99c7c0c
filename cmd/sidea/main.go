package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/johnnyb/simplidea/pkg/log"
	"github.com/johnnyb/simplidea/sidea"
)

const version = "0.1.0"

func main() {
	conf := parseConfig()
	if err := run(conf, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(conf *Config, stdin io.Reader, stdout io.Writer) error {
	padding, err := sidea.ParsePadding(conf.Padding)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Welcome to the Simplified IDEA Algorithm Encryption program.")

	in := bufio.NewReader(stdin)
	text, key := conf.Input, conf.Key

	if text == "" {
		text, err = promptPlaintext(in, stdout, conf.MinLen, conf.MaxLen)
		if err != nil {
			return err
		}

		if key == "" {
			fmt.Fprint(stdout, "Enter in a 32-bit binary key (don't worry, we can make one if you cannot keep track): ")
			key, err = readLine(in)
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
		}
	} else if len(text) < conf.MinLen || len(text) > conf.MaxLen {
		return fmt.Errorf("plaintext must be between %d and %d characters, got %d", conf.MinLen, conf.MaxLen, len(text))
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	k, generated := resolveKey([]byte(key), conf.LegacyKeyCheck, rand.New(rand.NewSource(seed)))
	if generated {
		log.F("[key] %q did not validate, generated a random key (seed %d)", key, seed)
	}

	c, err := sidea.NewCipher(k)
	if err != nil {
		return err
	}
	c.Padding = padding
	c.Workers = conf.Workers
	log.F("[cipher] subkeys %v, padding %s, %d workers", c.Subkeys, c.Padding, c.Workers)

	fmt.Fprintf(stdout, "Pre-Encrypted text: %s\n", text)
	fmt.Fprintf(stdout, "Key: %s\n", sidea.FormatKey(k))

	words, err := c.EncryptAll([]byte(text))
	if err != nil {
		return err
	}

	for _, w := range words {
		fmt.Fprintln(stdout, w)
	}

	if conf.Trace {
		traces, _ := c.TraceAll([]byte(text))
		for i, t := range traces {
			fmt.Fprintf(stdout, "block %d: rounds %v, output %v\n", i, t[:4], t[4:])
		}
	}

	if conf.MAC {
		fmt.Fprintf(stdout, "CMAC: %s\n", hex.EncodeToString(c.ForMAC().CMAC([]byte(text))))
	}

	return nil
}

// Keeps a key that validates, otherwise replaces it with a random one
func resolveKey(key []byte, legacy bool, rng *rand.Rand) ([]byte, bool) {
	valid := sidea.ValidateKey
	if legacy {
		valid = sidea.ValidateKeyLegacy
	}

	if valid(key) {
		return key, false
	}
	return sidea.RandomKey(rng, sidea.KeySize), true
}

// Reads one line without its line ending
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return line, err
	}
	return line, nil
}

// Prompts until a plaintext of min..max characters is entered
func promptPlaintext(r *bufio.Reader, w io.Writer, minLen, maxLen int) (string, error) {
	fmt.Fprintf(w, "Enter a string between %d and %d characters: ", minLen, maxLen)
	for {
		line, err := readLine(r)
		if err != nil {
			return "", fmt.Errorf("reading plaintext: %w", err)
		}

		if len(line) >= minLen && len(line) <= maxLen {
			fmt.Fprintln(w)
			return line, nil
		}
		log.F("[input] rejected %d characters", len(line))
		fmt.Fprintf(w, "Error, enter in a number between %d and %d: ", minLen, maxLen)
	}
}
