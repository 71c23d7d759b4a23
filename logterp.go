/*package logterp builds positive curves from tables of knots by interpolating
their logarithms, and tabulates the Ornstein-Uhlenbeck processes such curves
are often paired with.*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/phil-mansfield/logterp/cmd"
	"github.com/phil-mansfield/logterp/logging"
	"github.com/phil-mansfield/logterp/version"
)

var helpStrings = map[string]string{
	"eval": `The eval mode reads one x value per line from stdin and writes
"x y" lines to stdout, where y is the interpolated curve (or the quantity
named by the Quantity variable) at x.`,
	"plot": `The plot mode draws the interpolated curve and its knots in a
matplotlib window.`,
	"ou": `The ou mode writes a "t mean stddev" line for every time step of an
Ornstein-Uhlenbeck process, optionally followed by the sample moments of
simulated paths.`,

	"curve.config":   cmd.ModeNames["eval"].ExampleConfig(),
	"plot.config":    cmd.ModeNames["plot"].ExampleConfig(),
	"process.config": cmd.ModeNames["ou"].ExampleConfig(),
}

var modeDescriptions = `My help modes are:
logterp help
logterp help [ eval | plot | ou ]
logterp help [ curve.config | plot.config | process.config ]

My analysis modes are:
logterp eval [flags] ____.config < xs.txt
logterp plot [flags] ____.config
logterp ou   [flags] ____.config

Set $` + logging.EnvVar + ` to Debug or Performance for diagnostic output.`

func main() {
	args := os.Args
	if len(args) <= 1 {
		fmt.Fprintf(
			os.Stderr, "I was not supplied with a mode.\nFor help, type "+
				"'./logterp help'.\n",
		)
		os.Exit(1)
	}

	switch args[1] {
	case "help":
		switch len(args) - 2 {
		case 0:
			fmt.Println(modeDescriptions)
		case 1:
			text, ok := helpStrings[args[2]]
			if !ok {
				fmt.Printf("I don't recognize the help target '%s'\n", args[2])
			} else {
				fmt.Println(text)
			}
		default:
			fmt.Println("The help mode can only take a single argument.")
		}
		os.Exit(0)
	case "version":
		fmt.Printf("logterp version %s\n", version.SourceVersion)
		os.Exit(0)
	}

	if err := logging.SetModeFromEnv(); err != nil {
		log.Fatalf("Error reading $%s:\n%s\n", logging.EnvVar, err.Error())
	}

	mode, ok := cmd.ModeNames[args[1]]
	if !ok {
		fmt.Fprintf(
			os.Stderr, "You passed me the mode '%s', which I don't "+
				"recognize.\nFor help, type './logterp help'\n", args[1],
		)
		os.Exit(1)
	}

	if !isConfig(args[len(args)-1]) {
		log.Fatalf("Error running mode %s:\nThe last argument must be a "+
			"config file ending in '.config'.\n", args[1])
	}
	config := args[len(args)-1]
	flags := args[2 : len(args)-1]

	var lines []string
	if args[1] == "eval" {
		var err error
		if lines, err = stdinLines(); err != nil {
			log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
		}
	}

	if err := mode.ReadConfig(config); err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}
	logging.Printf("Read %s.", config)

	out, err := mode.Run(flags, lines)
	if err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	for i := range out {
		fmt.Println(out[i])
	}
}

// stdinLines reads stdin and splits it into lines.
func stdinLines() ([]string, error) {
	bs, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf(
			"Error reading stdin: %s.", err.Error(),
		)
	}
	lines := strings.Split(string(bs), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// isConfig returns true if the given string is a config file name.
func isConfig(s string) bool {
	return strings.HasSuffix(s, ".config")
}
