package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"xdao.co/flexhash/fingerprint"
	"xdao.co/flexhash/flexible"
	"xdao.co/flexhash/hashes"
	"xdao.co/flexhash/sampling"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "hash":
		return cmdHash(args[1:], out, errOut)
	case "cutoff":
		return cmdCutoff(args[1:], out, errOut)
	case "sample":
		return cmdSample(args[1:], out, errOut)
	case "cid":
		return cmdCID(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "xdao-flexhash: value hashing and sampling CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-flexhash hash [--width 64|128] [--single] <value> [<value> ...]")
	fmt.Fprintln(w, "  xdao-flexhash cutoff <proportion>")
	fmt.Fprintln(w, "  xdao-flexhash sample --proportion <p> [--seed <n>] <key> [<key> ...]")
	fmt.Fprintln(w, "  xdao-flexhash cid <value> [<value> ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - values parse as integer, then float, then string")
	fmt.Fprintln(w, "  - multiple values hash as an ordered sequence unless --single is given")
	fmt.Fprintln(w, "  - sample prints include/skip per key against proportion p")
}

func parseValues(args []string) []flexible.Value {
	vals := make([]flexible.Value, len(args))
	for i, a := range args {
		vals[i] = flexible.Parse(a)
	}
	return vals
}

func cmdHash(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("hash", flag.ContinueOnError)
	fs.SetOutput(errOut)
	width := fs.Int("width", 128, "digest width in bits (64 or 128)")
	single := fs.Bool("single", false, "hash each value on its own instead of as a sequence")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(errOut, "usage: xdao-flexhash hash [--width 64|128] [--single] <value> ...")
		return 2
	}
	if *width != 64 && *width != 128 {
		fmt.Fprintf(errOut, "unsupported width %d\n", *width)
		return 2
	}

	vals := parseValues(fs.Args())
	if *single {
		for _, v := range vals {
			if *width == 64 {
				fmt.Fprintf(out, "%016x\n", hashes.Hash64(v))
			} else {
				fmt.Fprintf(out, "%s\n", hashes.Hash128(v))
			}
		}
		return 0
	}
	if *width == 64 {
		fmt.Fprintf(out, "%016x\n", hashes.HashSequence64(vals))
	} else {
		fmt.Fprintf(out, "%s\n", hashes.HashSequence128(vals))
	}
	return 0
}

func cmdCutoff(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: xdao-flexhash cutoff <proportion>")
		return 2
	}
	p, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(errOut, "invalid proportion %q: %v\n", args[0], err)
		return 2
	}
	if p < 0 || p > 1 {
		fmt.Fprintf(errOut, "proportion %v outside [0, 1]\n", p)
		return 2
	}
	fmt.Fprintf(out, "%d\n", hashes.ProportionCutoff(p))
	return 0
}

func cmdSample(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(errOut)
	p := fs.Float64("proportion", -1, "inclusion proportion in [0, 1]")
	seed := fs.Uint64("seed", 0, "decision seed")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *p < 0 || *p > 1 {
		fmt.Fprintln(errOut, "sample requires --proportion in [0, 1]")
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(errOut, "usage: xdao-flexhash sample --proportion <p> [--seed <n>] <key> ...")
		return 2
	}

	d := sampling.Decider{Seed: *seed}
	for _, key := range fs.Args() {
		verdict := "skip"
		if d.IncludeKey([]byte(key), *p) {
			verdict = "include"
		}
		fmt.Fprintf(out, "%s\t%s\n", verdict, key)
	}
	return 0
}

func cmdCID(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: xdao-flexhash cid <value> ...")
		return 2
	}
	for _, a := range args {
		id, err := fingerprint.CID(flexible.Parse(a))
		if err != nil {
			fmt.Fprintf(errOut, "cid for %q: %v\n", a, err)
			return 1
		}
		fmt.Fprintf(out, "%s\t%s\n", id, a)
	}
	return 0
}
