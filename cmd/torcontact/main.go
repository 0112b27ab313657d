package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	torcontactinfo "github.com/erans/go-torcontactinfo"
	"github.com/erans/go-torcontactinfo/onionoo"
)

func main() {
	args := os.Args[1:]
	sub := "scan" // the original behavior of the tool: scan the directory
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		sub = args[0]
		args = args[1:]
	}
	switch sub {
	case "parse":
		parseCmd(args)
	case "scan":
		scanCmd(args)
	case "help", "-h", "--help":
		usage()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `torcontact - Tor ContactInfo (CIISS v2) parser

Usage:
  torcontact parse [-np] [-j] [-strict] [-rules file.yaml] [contact words...]
  torcontact scan  [-p] [-j] [-url URL] [-rules file.yaml]

Notes:
  - 'parse' reads the contact line from its arguments, or from stdin when no
    arguments (or a single '-') are given. Output is Python-dict style unless
    -j selects real JSON; -np disables pretty JSON printing.
  - 'scan' is the default subcommand. It fetches the onionoo details document
    and prints one parsed contact per line.`)
}

func parseCmd(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	var noPretty, asJSON, strict bool
	var rulesPath string
	fs.BoolVar(&noPretty, "np", false, "disable pretty printing JSON")
	fs.BoolVar(&asJSON, "j", false, "output real JSON, not Python dict format")
	fs.BoolVar(&strict, "strict", false, "abort on the first invalid field value")
	fs.StringVar(&rulesPath, "rules", "", "YAML rule-table overrides file")
	_ = fs.Parse(args)

	contact := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if contact == "" || contact == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading stdin: %v", err)
		}
		contact = strings.TrimSpace(string(data))
	}

	parser := newParser(rulesPath)
	res, err := parser.Parse(contact, torcontactinfo.ParseOpt{Strict: strict})
	if errors.Is(err, torcontactinfo.ErrMissingVersion) {
		// Not a structured contact line; a completed run all the same.
		if asJSON {
			fmt.Println("null")
		} else {
			fmt.Println("None")
		}
		return
	}
	if err != nil {
		fatalf("parse: %v", err)
	}
	render(os.Stdout, res, !noPretty, asJSON)
}

func scanCmd(args []string) {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	var pretty, asJSON bool
	var rulesPath, url string
	fs.BoolVar(&pretty, "p", false, "enable pretty printing JSON")
	fs.BoolVar(&asJSON, "j", false, "output real JSON, not Python dict format")
	fs.StringVar(&url, "url", onionoo.DefaultURL, "onionoo details document URL")
	fs.StringVar(&rulesPath, "rules", "", "YAML rule-table overrides file")
	_ = fs.Parse(args)

	parser := newParser(rulesPath)
	client := &onionoo.Client{BaseURL: url}
	details, err := client.Details(context.Background())
	if err != nil {
		fatalf("%v", err)
	}
	for _, relay := range details.Relays {
		if relay.Contact == "" {
			continue
		}
		res, err := parser.Parse(relay.Contact)
		if err != nil {
			continue // unparseable contact, not an error
		}
		if res.Len() == 0 {
			continue
		}
		render(os.Stdout, res, pretty, asJSON)
	}
}

func newParser(rulesPath string) *torcontactinfo.Parser {
	if rulesPath == "" {
		return torcontactinfo.NewParser(nil)
	}
	data, err := os.ReadFile(rulesPath)
	if err != nil {
		fatalf("reading rules: %v", err)
	}
	reg, err := torcontactinfo.RegistryFromYAML(data)
	if err != nil {
		fatalf("%v", err)
	}
	return torcontactinfo.NewParser(reg)
}

// render prints one result. Dict-style output is always a single line; pretty
// only affects JSON output.
func render(w io.Writer, res *torcontactinfo.Result, pretty, asJSON bool) {
	if !asJSON {
		fmt.Fprintln(w, res.DictString())
		return
	}
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(res, "", "    ")
	} else {
		b, err = json.Marshal(res)
	}
	if err != nil {
		fatalf("encoding result: %v", err)
	}
	fmt.Fprintln(w, string(b))
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
