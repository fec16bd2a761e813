package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/blackboard"
	"github.com/jpalmerr/blackboard/config"
)

// demoCmd walks the board's functionality interactively.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive walkthrough of the board",
	Long: `Walk through the blackboard's functionality interactively.

Three demos are available:
  0. Lifecycle     - create, readiness check and idempotent destroy
  1. Read/Write    - typed writes and reads, including two types under one key
  2. Writing/Wiping - a write/read/wipe loop over int, float, string and bool

Each demo prompts on stdin and prints to stdout.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// demoPhase pairs a menu label with the function that runs it.
type demoPhase struct {
	name string
	run  func(in *bufio.Scanner, out io.Writer) error
}

func runDemo(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	phases := []demoPhase{
		{"Lifecycle", demoLifecycle},
		{"Read/Write", demoReadWrite},
		{"Key writing/wiping", demoWiping},
	}

	for {
		fmt.Fprintf(out, "\nAvailable demos (total %d):\n", len(phases))
		for i, p := range phases {
			fmt.Fprintf(out, "  %d. %s\n", i, p.name)
		}

		choice, ok := promptInt(in, out, "\nEnter the number of the demo to run (negative to quit): ")
		if !ok || choice < 0 {
			return nil
		}
		if choice >= len(phases) {
			fmt.Fprintln(out, "no such demo")
			continue
		}

		if err := phases[choice].run(in, out); err != nil {
			return err
		}
	}
}

// demoLifecycle exercises the default instance's create/destroy contract.
func demoLifecycle(in *bufio.Scanner, out io.Writer) error {
	if blackboard.Create(blackboard.WithLogger(newLogger(false))) {
		fmt.Fprintln(out, "The board was created successfully...")
	} else {
		fmt.Fprintln(out, "The board failed to create...")
	}

	fmt.Fprintf(out, "IsReady() = %v\n", blackboard.IsReady())

	fmt.Fprintln(out, "Destroying the board")
	blackboard.Destroy()
	fmt.Fprintf(out, "IsReady() = %v\n", blackboard.IsReady())

	// a second destroy is a harmless no-op
	blackboard.Destroy()
	return nil
}

// demoReadWrite collects typed values, writes them and reads them back.
func demoReadWrite(in *bufio.Scanner, out io.Writer) error {
	b, err := blackboard.New(blackboard.WithLogger(newLogger(false)))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Successfully created a board...")

	usrInt, ok := promptInt(in, out, "Please enter an integer value: ")
	if !ok {
		return nil
	}
	_ = blackboard.Write(b, "UserInteger", usrInt)

	usrFlt, ok := promptFloat(in, out, "Please enter a float value: ")
	if !ok {
		return nil
	}
	_ = blackboard.Write(b, "UserFloat", usrFlt)

	usrStr, ok := prompt(in, out, "Please enter a word: ")
	if !ok {
		return nil
	}
	// the same key holds a string and a float independently
	_ = blackboard.Write(b, "UserValue", usrStr)
	_ = blackboard.Write(b, "UserValue", usrFlt/2)

	if v, err := blackboard.Read[int](b, "UserInteger"); err == nil {
		fmt.Fprintf(out, "The recorded integer value was %d\n", v)
	}
	if v, err := blackboard.Read[float64](b, "UserFloat"); err == nil {
		fmt.Fprintf(out, "The recorded float value was %v\n", v)
	}
	if v, err := blackboard.Read[string](b, "UserValue"); err == nil {
		fmt.Fprintf(out, "The recorded string value was %q\n", v)
	}
	if v, err := blackboard.Read[float64](b, "UserValue"); err == nil {
		fmt.Fprintf(out, "The float stored under the same key was %v\n", v)
	}
	return nil
}

// wipingMenu lists the actions of the writing/wiping loop.
const wipingMenu = `
Choose an option (negative to quit):
  0. Write value
  1. Read value
  2. Wipe key
  3. Wipe key of type
  4. Wipe all values
`

var demoTypes = []string{config.TypeInt, config.TypeFloat, config.TypeString, config.TypeBool}

// demoWiping runs the write/read/wipe loop against one board, reusing the
// scenario step dispatcher.
func demoWiping(in *bufio.Scanner, out io.Writer) error {
	b, err := blackboard.New(blackboard.WithLogger(newLogger(false)))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Successfully created a board...")

	for {
		fmt.Fprint(out, wipingMenu)
		choice, ok := promptInt(in, out, "What would you like to do: ")
		if !ok || choice < 0 {
			return nil
		}

		st := config.Step{}
		switch choice {
		case 0:
			st.Op = config.OpWrite
		case 1:
			st.Op = config.OpRead
		case 2:
			st.Op = config.OpWipeKey
		case 3:
			st.Op = config.OpWipeTypeKey
		case 4:
			st.Op = config.OpWipeBoard
		default:
			fmt.Fprintln(out, "no such option")
			continue
		}

		if st.Op != config.OpWipeBoard {
			key, ok := prompt(in, out, "Enter the key value to modify: ")
			if !ok || key == "" {
				continue
			}
			st.Key = key
		}

		if st.Op == config.OpWrite || st.Op == config.OpRead || st.Op == config.OpWipeTypeKey {
			typeTag, ok := promptType(in, out)
			if !ok {
				continue
			}
			st.Type = typeTag
		}

		if st.Op == config.OpWrite {
			value, ok := promptValue(in, out, st.Type)
			if !ok {
				continue
			}
			st.Value = value
		}

		if err := applyStep(b, &st, out); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

// prompt prints a message and returns the next trimmed input line.
func prompt(in *bufio.Scanner, out io.Writer, msg string) (string, bool) {
	fmt.Fprint(out, msg)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func promptInt(in *bufio.Scanner, out io.Writer, msg string) (int, bool) {
	for {
		s, ok := prompt(in, out, msg)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(s)
		if err == nil {
			return v, true
		}
		fmt.Fprintf(out, "%q is not an integer\n", s)
	}
}

func promptFloat(in *bufio.Scanner, out io.Writer, msg string) (float64, bool) {
	for {
		s, ok := prompt(in, out, msg)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return v, true
		}
		fmt.Fprintf(out, "%q is not a float\n", s)
	}
}

// promptType asks for one of the demo's type tags.
func promptType(in *bufio.Scanner, out io.Writer) (string, bool) {
	for {
		fmt.Fprintln(out, "\nAvailable types:")
		for i, tag := range demoTypes {
			fmt.Fprintf(out, "  %d. %s\n", i, tag)
		}
		choice, ok := promptInt(in, out, "Please select a type to use: ")
		if !ok {
			return "", false
		}
		if choice >= 0 && choice < len(demoTypes) {
			return demoTypes[choice], true
		}
		fmt.Fprintln(out, "no such type")
	}
}

// promptValue reads and parses a value of the given type tag.
func promptValue(in *bufio.Scanner, out io.Writer, typeTag string) (any, bool) {
	for {
		s, ok := prompt(in, out, fmt.Sprintf("Please enter the %s value to write: ", typeTag))
		if !ok {
			return nil, false
		}

		switch typeTag {
		case config.TypeInt:
			if v, err := strconv.Atoi(s); err == nil {
				return v, true
			}
		case config.TypeFloat:
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				return v, true
			}
		case config.TypeBool:
			if v, err := strconv.ParseBool(s); err == nil {
				return v, true
			}
		case config.TypeString:
			return s, true
		}
		fmt.Fprintf(out, "%q is not a valid %s\n", s, typeTag)
	}
}
