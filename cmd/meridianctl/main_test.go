// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func TestParseFiltersEmpty(t *testing.T) {
	expr, err := parseFilters(nil)
	assert.NoError(t, err)
	assert.Nil(t, expr)
}

func TestParseFiltersBasic(t *testing.T) {
	expr, err := parseFilters([]string{"status:eq:published"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":{"_eq":"published"}}`, expr.Get())
}

func TestParseFiltersCombined(t *testing.T) {
	expr, err := parseFilters([]string{
		"status:in:draft,published",
		"year:between:2016,2018",
		"parent:null",
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"parent":{"_null":true},"status":{"_in":["draft","published"]},"year":{"_between":["2016","2018"]}}`,
		expr.Get())
}

func TestParseFiltersOperandLess(t *testing.T) {
	expr, err := parseFilters([]string{"tags:empty"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":"_empty"}`, expr.Get())
}

func TestParseFiltersBadOperator(t *testing.T) {
	_, err := parseFilters([]string{"status:regex:^p"})
	assert.Error(t, err)
}

func TestParseFiltersBadBetween(t *testing.T) {
	_, err := parseFilters([]string{"year:between:2016"})
	assert.Error(t, err)
}

func TestParseFiltersValidation(t *testing.T) {
	_, err := parseFilters([]string{":eq:x"})
	assert.Error(t, err)
}

func TestQueryFromFlags(t *testing.T) {
	set := flag.NewFlagSet("items", 0)
	set.String("search", "", "")
	set.String("limit", "", "")
	set.String("content-version", "", "")
	require.NoError(t, set.Set("search", "go"))
	require.NoError(t, set.Set("limit", "10"))
	require.NoError(t, set.Set("content-version", "draft2"))

	q, err := queryFromFlags(cli.NewContext(nil, set, nil))
	require.NoError(t, err)
	assert.Equal(t, "go", q.Search)
	assert.Equal(t, "10", q.Limit)
	assert.Equal(t, "draft2", q.Version)
	assert.Empty(t, q.Fields)
}

func TestLoadConfigYaml(t *testing.T) {
	dir, err := ioutil.TempDir("", "meridianctl")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yaml")
	content := "url: https://x.test/\ntoken: sekrit\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))

	cfg, err := loadConfigYaml(path)
	require.NoError(t, err)
	assert.Equal(t, "https://x.test/", cfg.URL)
	assert.Equal(t, "sekrit", cfg.Token)
}

func TestLoadConfigYamlMissingFile(t *testing.T) {
	_, err := loadConfigYaml("/nonexistent/meridian.yaml")
	assert.Error(t, err)
}
