package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	logging "github.com/ipfs/go-log"
	cli "github.com/urfave/cli/v2"

	"github.com/whyrusleeping/lexicoid"
)

var log = logging.Logger("lexicoid")

func main() {
	app := cli.NewApp()
	app.Name = "lexicoid"
	app.Usage = "short, sortable IDs from unix timestamps"
	app.Commands = []*cli.Command{
		nowCmd,
		encodeCmd,
		sortCmd,
	}

	app.RunAndExitOnError()
}

var nowCmd = &cli.Command{
	Name:  "now",
	Usage: "print an ID for the current time",
	Action: func(cctx *cli.Context) error {
		fmt.Println(lexicoid.Now())
		return nil
	},
}

var encodeCmd = &cli.Command{
	Name:      "encode",
	Usage:     "print an ID for each given unix timestamp",
	ArgsUsage: "TIMESTAMP...",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() == 0 {
			return fmt.Errorf("no timestamps given")
		}
		for _, arg := range cctx.Args().Slice() {
			ts, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("bad timestamp %q: %w", arg, err)
			}
			fmt.Println(lexicoid.Encode(ts))
		}
		return nil
	},
}

var sortCmd = &cli.Command{
	Name:      "sort",
	Usage:     "sort IDs from args or stdin, oldest first",
	ArgsUsage: "[ID...]",
	Action: func(cctx *cli.Context) error {
		var ids []lexicoid.ID
		if cctx.NArg() > 0 {
			for _, arg := range cctx.Args().Slice() {
				ids = append(ids, lexicoid.ID(arg))
			}
		} else {
			scan := bufio.NewScanner(os.Stdin)
			for scan.Scan() {
				if line := scan.Text(); line != "" {
					ids = append(ids, lexicoid.ID(line))
				}
			}
			if err := scan.Err(); err != nil {
				return err
			}
		}

		for _, id := range ids {
			if !id.Valid() {
				log.Warnf("%q contains symbols outside the lexicoid alphabet", id)
			}
		}

		lexicoid.Sort(ids)
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}
