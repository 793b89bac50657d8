package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/snakeaid/protoparser"
)

var cli struct {
	Parse struct {
		File   string `arg:"" type:"existingfile" help:"Proto file to parse."`
		Output string `short:"o" placeholder:"FILE" help:"Write JSON to FILE instead of stdout."`
		Pretty bool   `short:"p" help:"Pretty-print the JSON output."`
		AST    bool   `help:"Dump the parsed AST instead of JSON."`
	} `cmd:"" help:"Parse a proto file and output JSON."`

	Validate struct {
		File string `arg:"" type:"existingfile" help:"Proto file to check."`
	} `cmd:"" help:"Check that a proto file parses, without emitting JSON."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("protoparser"),
		kong.Description("Converts .proto interface definitions to JSON."),
	)
	switch ctx.Command() {
	case "parse <file>":
		proto, err := protoparser.ParseFile(cli.Parse.File)
		ctx.FatalIfErrorf(err)
		if cli.Parse.AST {
			repr.Println(proto)
			return
		}
		var out string
		if cli.Parse.Pretty {
			out, err = proto.PrettyJSON()
		} else {
			out, err = proto.JSON()
		}
		ctx.FatalIfErrorf(err)
		if cli.Parse.Output != "" {
			err = os.WriteFile(cli.Parse.Output, []byte(out+"\n"), 0o644)
			ctx.FatalIfErrorf(err)
			return
		}
		fmt.Println(out)

	case "validate <file>":
		_, err := protoparser.ParseFile(cli.Validate.File)
		if err != nil {
			ctx.Fatalf("%s", err)
		}
		fmt.Printf("%s is valid\n", cli.Validate.File)
	}
}
