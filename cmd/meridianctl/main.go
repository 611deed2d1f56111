// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

// Package main provides meridianctl, a small command-line client for
// a Meridian content API.  It is mostly useful for poking at an API
// from a shell: listing and fetching items, listing files, and
// rendering asset download URLs.
package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/meridian-labs/go-meridian/filter"
	"github.com/meridian-labs/go-meridian/meridian"
	"github.com/meridian-labs/go-meridian/restclient"
	"github.com/sirupsen/logrus"
	"github.com/ugorji/go/codec"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
)

var ctx *restclient.Context

// fileConfig is the YAML configuration file format.
type fileConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

func loadConfigYaml(filename string) (fileConfig, error) {
	var result fileConfig
	bytes, err := ioutil.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &result)
	}
	return result, err
}

func before(c *cli.Context) error {
	if c.GlobalBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}
	cfg := restclient.Config{
		URL:   c.GlobalString("url"),
		Token: c.GlobalString("token"),
	}
	if path := c.GlobalString("config"); path != "" {
		fileCfg, err := loadConfigYaml(path)
		if err != nil {
			return err
		}
		if cfg.URL == "" {
			cfg.URL = fileCfg.URL
		}
		if cfg.Token == "" {
			cfg.Token = fileCfg.Token
		}
	}
	if cfg.URL == "" {
		// Leave ctx nil so help output still works; commands that
		// need a client report the missing URL themselves.
		return nil
	}
	var err error
	ctx, err = restclient.New(cfg)
	return err
}

// client returns the configured API context, or an error if no API
// URL was supplied by flag or configuration file.
func client() (*restclient.Context, error) {
	if ctx == nil {
		return nil, meridian.ErrMissingBaseURI
	}
	return ctx, nil
}

// parseFilters builds a filter expression from "field:op:value"
// specifications.  The operand-less operators take "field:op"; "in"
// takes comma-separated values; "between" takes "low,high".
func parseFilters(specs []string) (*filter.Expression, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	expr := filter.New()
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)
		field := parts[0]
		op := ""
		value := ""
		if len(parts) > 1 {
			op = parts[1]
		}
		if len(parts) > 2 {
			value = parts[2]
		}
		switch op {
		case "eq":
			expr.Eq(field, value)
		case "neq":
			expr.Neq(field, value)
		case "lt":
			expr.Lt(field, value)
		case "lte":
			expr.Lte(field, value)
		case "gt":
			expr.Gt(field, value)
		case "gte":
			expr.Gte(field, value)
		case "contains":
			expr.Contains(field, value)
		case "in":
			expr.In(field, strings.Split(value, ","))
		case "between":
			bounds := strings.SplitN(value, ",", 2)
			if len(bounds) != 2 {
				return nil, fmt.Errorf("between filter needs two bounds: %q", spec)
			}
			expr.Between(field, bounds[0], bounds[1])
		case "null":
			expr.Null(field)
		case "nnull":
			expr.NotNull(field)
		case "empty":
			expr.Empty(field)
		case "nempty":
			expr.NotEmpty(field)
		default:
			return nil, fmt.Errorf("unknown filter operator in %q", spec)
		}
		if expr.Err != nil {
			return nil, expr.Err
		}
	}
	return expr, nil
}

func queryFromFlags(c *cli.Context) (meridian.Query, error) {
	expr, err := parseFilters(c.StringSlice("filter"))
	if err != nil {
		return meridian.Query{}, err
	}
	q := meridian.Query{
		Fields:  c.StringSlice("fields"),
		Filter:  expr,
		Search:  c.String("search"),
		Sort:    c.StringSlice("sort"),
		Limit:   c.String("limit"),
		Offset:  c.String("offset"),
		Page:    c.String("page"),
		Version: c.String("content-version"),
	}
	return q, nil
}

func printJSON(v interface{}) error {
	var out []byte
	json := &codec.JsonHandle{}
	encoder := codec.NewEncoderBytes(&out, json)
	err := encoder.Encode(v)
	if err == nil {
		fmt.Println(string(out))
	}
	return err
}

var queryFlags = []cli.Flag{
	cli.StringSliceFlag{
		Name:  "fields",
		Usage: "return only these item fields",
	},
	cli.StringSliceFlag{
		Name:  "filter",
		Usage: "constrain results, as field:op:value",
	},
	cli.StringFlag{
		Name:  "search",
		Usage: "free-text search term",
	},
	cli.StringSliceFlag{
		Name:  "sort",
		Usage: "sort by these fields; prefix with - for descending",
	},
	cli.StringFlag{
		Name:  "limit",
		Usage: "return at most this many items",
	},
	cli.StringFlag{
		Name:  "offset",
		Usage: "skip this many items",
	},
	cli.StringFlag{
		Name:  "page",
		Usage: "return this page of limit-sized results",
	},
	// "version" is taken by the app-level version flag.
	cli.StringFlag{
		Name:  "content-version",
		Usage: "read this content version of the items",
	},
}

var itemsList = cli.Command{
	Name:      "list",
	Usage:     "list the items in a collection",
	ArgsUsage: "collection",
	Flags:     queryFlags,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return errors.New("expected a collection name")
		}
		q, err := queryFromFlags(c)
		if err != nil {
			return err
		}
		api, err := client()
		if err != nil {
			return err
		}
		records, err := api.Items(c.Args().Get(0)).List(&q)
		if err != nil {
			return err
		}
		return printJSON(records)
	},
}

var itemsGet = cli.Command{
	Name:      "get",
	Usage:     "fetch one item by ID",
	ArgsUsage: "collection id",
	Flags:     queryFlags,
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return errors.New("expected a collection name and an item ID")
		}
		q, err := queryFromFlags(c)
		if err != nil {
			return err
		}
		api, err := client()
		if err != nil {
			return err
		}
		record, err := api.Items(c.Args().Get(0)).Get(c.Args().Get(1), &q)
		if err != nil {
			return err
		}
		return printJSON(record)
	},
}

var filesList = cli.Command{
	Name:  "list",
	Usage: "list file entries",
	Flags: queryFlags,
	Action: func(c *cli.Context) error {
		q, err := queryFromFlags(c)
		if err != nil {
			return err
		}
		api, err := client()
		if err != nil {
			return err
		}
		files, err := api.Files().List(&q)
		if err != nil {
			return err
		}
		return printJSON(files)
	},
}

var assetURL = cli.Command{
	Name:      "asset-url",
	Usage:     "render the download URL for a file's binary payload",
	ArgsUsage: "id",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "key", Usage: "access key"},
		cli.StringFlag{Name: "w", Usage: "transform width"},
		cli.StringFlag{Name: "h", Usage: "transform height"},
		cli.StringFlag{Name: "q", Usage: "transform quality"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return errors.New("expected a file ID")
		}
		params := make(map[string]interface{})
		for _, name := range []string{"key", "w", "h", "q"} {
			if value := c.String(name); value != "" {
				params[name] = value
			}
		}
		api, err := client()
		if err != nil {
			return err
		}
		url, err := api.AssetURL(c.Args().Get(0), params)
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	},
}

func main() {
	app := cli.NewApp()
	app.Name = "meridianctl"
	app.Usage = "command-line client for a Meridian content API"
	app.Version = restclient.Version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "url",
			Usage: "root URL of the API",
		},
		cli.StringFlag{
			Name:  "token",
			Usage: "bearer token for authentication",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML configuration file",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log every request",
		},
	}
	app.Before = before
	app.Commands = []cli.Command{
		{
			Name:        "items",
			Usage:       "operate on collection items",
			Subcommands: []cli.Command{itemsList, itemsGet},
		},
		{
			Name:        "files",
			Usage:       "operate on the file subsystem",
			Subcommands: []cli.Command{filesList},
		},
		assetURL,
	}
	if err := app.Run(os.Args); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Command failed")
	}
}
