// Command redostat replays a move-log fixture through a goredo session and
// prints summary statistics about the resulting tree. The fixture format is
// line-oriented, one move per line:
//
//	<prev-index> <move> <hex-state> <endpoint>
//
// prev-index refers to a 0-based index into the sequence of positions
// created so far, with 0 always meaning the session's root. This is a
// diagnostic replay format for exercising the engine, not the save-file
// format a real application would design for its own puzzle type.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/br903/goredo"
	"github.com/br903/goredo/log"
)

func main() {
	app := cli.NewApp()
	app.Name = "redostat"
	app.Usage = "replay a move-log fixture through the goredo engine and print tree statistics"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "statesize", Value: 33, Usage: "bytes per recorded state"},
		cli.IntFlag{Name: "cmpsize", Value: 0, Usage: "bytes compared for equivalence (0 = statesize)"},
		cli.StringFlag{Name: "grafting", Value: "graft", Usage: "nograft, graft, copypath, or graftandcopy"},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Root().Crit("redostat failed", "err", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return fmt.Errorf("usage: redostat [options] <fixture-file>")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	statesize := c.Int("statesize")
	cmpsize := c.Int("cmpsize")
	grafting, err := parseGrafting(c.String("grafting"))
	if err != nil {
		return err
	}

	sess, err := goredo.BeginSession(make([]byte, statesize), statesize, cmpsize)
	if err != nil {
		return err
	}
	sess.SetGrafting(grafting)

	positions := []goredo.Position{sess.Root()}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return fmt.Errorf("line %d: expected 4 fields, got %d", lineNo, len(fields))
		}
		prevIdx, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if prevIdx < 0 || prevIdx >= len(positions) {
			return fmt.Errorf("line %d: prev-index %d out of range", lineNo, prevIdx)
		}
		move, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		state, err := hex.DecodeString(fields[2])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		endpoint, err := strconv.Atoi(fields[3])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		pos := sess.Add(positions[prevIdx], int32(move), state, int8(endpoint), goredo.CheckLater)
		if !pos.Valid() {
			return fmt.Errorf("line %d: arena exhausted", lineNo)
		}
		positions = append(positions, pos)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	resolved := sess.ResolveDeferredBetters()
	root := sess.Root()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"metric", "value"})
	table.Append([]string{"positions", strconv.Itoa(sess.Size())})
	table.Append([]string{"lines replayed", strconv.Itoa(lineNo)})
	table.Append([]string{"deferred betters resolved", strconv.Itoa(resolved)})
	table.Append([]string{"grafting policy", sess.Grafting().String()})
	table.Append([]string{"root solution end", strconv.Itoa(int(root.SolutionEnd()))})
	table.Append([]string{"root solution size", strconv.Itoa(int(root.SolutionSize()))})
	table.Render()
	return nil
}

func parseGrafting(s string) (goredo.GraftMode, error) {
	switch s {
	case "nograft":
		return goredo.NoGraft, nil
	case "graft":
		return goredo.Graft, nil
	case "copypath":
		return goredo.CopyPath, nil
	case "graftandcopy":
		return goredo.GraftAndCopy, nil
	default:
		return goredo.NoGraft, fmt.Errorf("unknown grafting policy %q", s)
	}
}
