package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dkolbly/polyclip"
	"github.com/dkolbly/polyclip/polygon"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "polyclip",
		Usage:     "Computes a boolean operation between two polygons and writes the result to stdout",
		UsageText: "polyclip --operation <value> <subject-file> <clip-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "operation",
				Usage:    "The boolean operation to compute: intersection, union, difference or xor",
				Value:    "intersection",
				Aliases:  []string{"o"},
				OnlyOnce: true,
				Validator: func(s string) error {
					switch s {
					case "intersection", "union", "difference", "xor":
						return nil
					}
					return fmt.Errorf("unknown operation %q", s)
				},
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func readPolygonFile(path string) (polygon.Polygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return polygon.Polygon{}, err
	}
	defer f.Close()
	p, err := polygon.ReadFrom(f)
	if err != nil {
		return polygon.Polygon{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func app(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected exactly two polygon files, got %d arguments", cmd.Args().Len())
	}

	subject, err := readPolygonFile(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	clip, err := readPolygonFile(cmd.Args().Get(1))
	if err != nil {
		return err
	}

	var result polygon.Polygon
	switch cmd.String("operation") {
	case "intersection":
		result, err = polyclip.Intersection(subject, clip)
	case "union":
		result, err = polyclip.Union(subject, clip)
	case "difference":
		result, err = polyclip.Difference(subject, clip)
	case "xor":
		result, err = polyclip.Xor(subject, clip)
	}
	if err != nil {
		return err
	}

	return polygon.WriteTo(os.Stdout, result)
}
