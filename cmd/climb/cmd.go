package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/fatih/color"
	"sigs.k8s.io/yaml"

	climb "github.com/exprkit/climb"
	"github.com/exprkit/climb/ast"
	"github.com/exprkit/climb/cmd/internal/cmd"
)

func version(o io.Writer) {
	fmt.Fprintf(o, "Climb expression parser %s\n", climb.Version())
}

func usage(o io.Writer) {
	version(o)
	fmt.Fprintln(o)
	fmt.Fprintln(o, "climb {<option>} <expression>")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "Available options:")
	fmt.Fprintln(o, "  -h / --help                This message")
	fmt.Fprintln(o, "  -t / --table <file>        Load the operator table from a YAML file")
	fmt.Fprintln(o, "                             instead of using the built-in arithmetic one")
	fmt.Fprintln(o, "  -k / --tokens              Print the token stream instead of parsing")
	fmt.Fprintln(o, "  -y / --yaml                Print the tree as YAML instead of the")
	fmt.Fprintln(o, "                             fully parenthesized form")
	fmt.Fprintln(o, "  --max-depth <n>            Limit expression nesting to n levels (0 = unlimited)")
	fmt.Fprintln(o, "  --version                  Print version")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "In all cases:")
	fmt.Fprintln(o, "  <expression> can be - (stdin)")
	fmt.Fprintln(o, "  Multichar options are expanded e.g. -ky becomes -k -y.")
	fmt.Fprintln(o, "  The -- option suppresses option processing for subsequent arguments.")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "Exit code:")
	fmt.Fprintln(o, "  0 – The expression parsed cleanly.")
	fmt.Fprintln(o, "  1 – If errors occured which prevented parsing (e.g. a bad operator table).")
	fmt.Fprintln(o, "  2 – If the expression was rejected.")
}

type config struct {
	expression string
	tableFile  string
	showTokens bool
	yamlOutput bool
	maxDepth   int
}

func makeConfig() config {
	return config{
		maxDepth: 1000,
	}
}

type processArgsStatus int

const (
	processArgsStatusContinue     = iota
	processArgsStatusSuccessUsage = iota
	processArgsStatusFailureUsage = iota
	processArgsStatusSuccess      = iota
	processArgsStatusFailure      = iota
)

func processArgs(givenArgs []string, config *config) (processArgsStatus, error) {
	args := cmd.SimplifyArgs(givenArgs)
	remainingArgs := make([]string, 0, len(args))
	i := 0

	for ; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			// All subsequent args are not options.
			i++
			for ; i < len(args); i++ {
				remainingArgs = append(remainingArgs, args[i])
			}
			break
		} else if arg == "-h" || arg == "--help" {
			return processArgsStatusSuccessUsage, nil
		} else if arg == "-v" || arg == "--version" {
			version(os.Stdout)
			return processArgsStatusSuccess, nil
		} else if arg == "-t" || arg == "--table" {
			file := cmd.NextArg(&i, args)
			if len(file) == 0 {
				return processArgsStatusFailure, fmt.Errorf("-t argument was empty string")
			}
			config.tableFile = file
		} else if arg == "-k" || arg == "--tokens" {
			config.showTokens = true
		} else if arg == "-y" || arg == "--yaml" {
			config.yamlOutput = true
		} else if arg == "--max-depth" {
			n := cmd.NextArg(&i, args)
			if len(n) == 0 {
				return processArgsStatusFailure, fmt.Errorf("--max-depth argument was empty string")
			}
			if _, err := fmt.Sscanf(n, "%d", &config.maxDepth); err != nil {
				return processArgsStatusFailure, fmt.Errorf("--max-depth argument was not a number: %s", n)
			}
		} else if len(arg) > 1 && arg[0] == '-' && arg != "-" {
			return processArgsStatusFailure, fmt.Errorf("unrecognized argument: %s", arg)
		} else {
			remainingArgs = append(remainingArgs, arg)
		}
	}

	if len(remainingArgs) == 0 {
		return processArgsStatusFailureUsage, fmt.Errorf("expression not provided")
	}

	if len(remainingArgs) > 1 {
		return processArgsStatusFailure, fmt.Errorf("only one expression is allowed")
	}

	config.expression = remainingArgs[0]
	return processArgsStatusContinue, nil
}

// tableEntry is one operator in a YAML table file.
type tableEntry struct {
	Symbol     string `json:"symbol"`
	Fixity     string `json:"fixity"`
	Precedence int    `json:"precedence"`
	Assoc      string `json:"assoc,omitempty"`
}

func parseFixity(s string) (climb.Fixity, error) {
	switch s {
	case "prefix":
		return climb.FixityPrefix, nil
	case "binary":
		return climb.FixityBinary, nil
	case "postfix":
		return climb.FixityPostfix, nil
	default:
		return 0, fmt.Errorf("unknown fixity %q (want prefix, binary or postfix)", s)
	}
}

func parseAssoc(s string) (climb.Assoc, error) {
	switch s {
	case "", "left":
		return climb.AssocLeft, nil
	case "right":
		return climb.AssocRight, nil
	case "none":
		return climb.AssocNone, nil
	default:
		return 0, fmt.Errorf("unknown associativity %q (want left, right or none)", s)
	}
}

func loadTable(path string) (*climb.Table, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []tableEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	specs := make([]climb.OpSpec, 0, len(entries))
	for _, e := range entries {
		fixity, err := parseFixity(e.Fixity)
		if err != nil {
			return nil, fmt.Errorf("%s: operator %q: %v", path, e.Symbol, err)
		}
		assoc, err := parseAssoc(e.Assoc)
		if err != nil {
			return nil, fmt.Errorf("%s: operator %q: %v", path, e.Symbol, err)
		}
		specs = append(specs, climb.OpSpec{
			Symbol:     e.Symbol,
			Fixity:     fixity,
			Precedence: e.Precedence,
			Assoc:      assoc,
		})
	}
	table, err := climb.NewTable(specs)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return table, nil
}

// dumpTree converts a parsed tree into plain maps for YAML output.
func dumpTree(node ast.Node) interface{} {
	switch n := node.(type) {
	case *ast.Operand:
		return map[string]interface{}{"operand": n.Value}
	case *ast.Prefix:
		return map[string]interface{}{
			"op":      n.Op,
			"fixity":  "prefix",
			"operand": dumpTree(n.Operand),
		}
	case *ast.Postfix:
		return map[string]interface{}{
			"op":      n.Op,
			"fixity":  "postfix",
			"operand": dumpTree(n.Operand),
		}
	case *ast.Binary:
		return map[string]interface{}{
			"op":    n.Op,
			"left":  dumpTree(n.Left),
			"right": dumpTree(n.Right),
		}
	default:
		return nil
	}
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
	os.Exit(1)
}

func main() {
	ef := &climb.ErrorFormatter{}
	ef.SetColorFormatter(color.New(color.FgRed).Fprintf)

	config := makeConfig()
	status, err := processArgs(os.Args[1:], &config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: "+err.Error())
	}
	switch status {
	case processArgsStatusContinue:
		break
	case processArgsStatusSuccessUsage:
		usage(os.Stdout)
		os.Exit(0)
	case processArgsStatusFailureUsage:
		if err != nil {
			fmt.Fprintln(os.Stderr, "")
		}
		usage(os.Stderr)
		os.Exit(1)
	case processArgsStatusSuccess:
		os.Exit(0)
	case processArgsStatusFailure:
		os.Exit(1)
	}

	input := config.expression
	inputName := "<cmdline>"
	if input == "-" {
		data, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			die(err)
		}
		input = string(data)
		inputName = "<stdin>"
	}

	table := climb.Arithmetic()
	if config.tableFile != "" {
		table, err = loadTable(config.tableFile)
		if err != nil {
			die(err)
		}
	}

	tokens, err := climb.Lex(inputName, input)
	if err != nil {
		fmt.Fprint(os.Stderr, ef.Format(err))
		os.Exit(2)
	}

	if config.showTokens {
		for _, t := range tokens {
			fmt.Printf("%v\t%v\t%v\n", &t.Loc, t.Kind, t.Data)
		}
		os.Exit(0)
	}

	node, err := climb.ParseWithLimit(climb.NewTokenCursor(tokens), table, config.maxDepth)
	if err != nil {
		fmt.Fprint(os.Stderr, ef.Format(err))
		os.Exit(2)
	}

	if config.yamlOutput {
		out, err := yaml.Marshal(dumpTree(node))
		if err != nil {
			die(err)
		}
		os.Stdout.Write(out)
	} else {
		fmt.Println(climb.Unparse(node))
	}
}
