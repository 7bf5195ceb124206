/*
 * Copyright (C) 2022 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package pipeline

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/netobserv/ip2as/pkg/api"
	"github.com/netobserv/ip2as/pkg/config"
	"github.com/netobserv/ip2as/pkg/pipeline/ingest"
	"github.com/netobserv/ip2as/pkg/pipeline/write"
	"github.com/netobserv/ip2as/pkg/test"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOptions(t *testing.T, table, queries, extra string) *config.Options {
	return test.InitConfig(t, fmt.Sprintf(`
ingest:
  table: %s
  queries: %s
%s
`, test.CreateFile(t, "table.txt", table), test.CreateFile(t, "queries.txt", queries), extra))
}

func TestRun_Text(t *testing.T) {
	for _, engine := range []string{"trie", "bart"} {
		t.Run(engine, func(t *testing.T) {
			opts := newOptions(t, test.ASTable, test.Queries, "resolve:\n  engine: "+engine)
			out := &bytes.Buffer{}
			p, err := NewPipeline(opts, WithOutput(out), WithClock(clock.NewMock()))
			require.NoError(t, err)

			require.NoError(t, p.Run())
			assert.Equal(t, test.ExpectedText, out.String())
			assert.Equal(t, BuildStats{Records: 4, Prefixes: 3}, p.Stats())
		})
	}
}

func TestRun_JSON(t *testing.T) {
	opts := newOptions(t, test.ASTable, "10.1.2.3\n11.0.0.0\n", "write:\n  format: json")
	out := &bytes.Buffer{}
	p, err := NewPipeline(opts, WithOutput(out))
	require.NoError(t, err)
	require.NoError(t, p.Run())
	assert.Equal(t, `{"query":"10.1.2.3","matched":true,"asn":"200","mask":16,"network":"10.1.0.0"}`+"\n"+
		`{"query":"11.0.0.0","matched":false,"mask":0}`+"\n", out.String())
}

func TestRun_DefaultRoute(t *testing.T) {
	opts := newOptions(t, "0.0.0.0 0 X\n10.0.0.0 8 100\n", "10.9.9.9\n172.16.0.1\n", "")
	fake := write.NewWriteFake()
	p, err := NewPipeline(opts, WithWriter(fake))
	require.NoError(t, err)
	require.NoError(t, p.Run())
	assert.Equal(t, []api.Result{
		{Query: "10.9.9.9", Matched: true, ASN: "100", MaskLen: 8, Network: "10.0.0.0"},
		{Query: "172.16.0.1", Matched: true, ASN: "X", MaskLen: 0, Network: "0.0.0.0"},
	}, fake.AllRecords)
}

func TestRun_Malformed(t *testing.T) {
	table := test.ASTable + "10.3.0.0 99 300\n"
	queries := "10.1.2.3\nnot-an-ip\n11.0.0.0\n"

	opts := newOptions(t, table, queries, "")
	p, err := NewPipeline(opts, WithWriter(write.NewWriteFake()))
	require.NoError(t, err)
	err = p.Run()
	require.Error(t, err)
	require.True(t, errors.Is(err, ingest.ErrMalformed))
	require.Contains(t, err.Error(), "table.txt:6")

	opts = newOptions(t, table, queries, "  skipMalformed: true")
	fake := write.NewWriteFake()
	p, err = NewPipeline(opts, WithWriter(fake))
	require.NoError(t, err)
	require.NoError(t, p.Run())
	assert.Equal(t, 1, p.Stats().Skipped)
	require.Len(t, fake.AllRecords, 2)
	assert.Equal(t, "10.1.2.3", fake.AllRecords[0].Query)
	assert.Equal(t, "11.0.0.0", fake.AllRecords[1].Query)
}

func TestRun_MissingQueries(t *testing.T) {
	opts := &config.Options{Ingest: api.Ingest{Table: test.CreateFile(t, "table.txt", test.ASTable)}}
	require.NoError(t, config.ParseConfig(opts))
	p, err := NewPipeline(opts)
	require.NoError(t, err)
	require.ErrorContains(t, p.Run(), "ingest.queries")
}

func TestBuildAndResolve(t *testing.T) {
	opts := newOptions(t, test.ASTable, "", "")
	mock := clock.NewMock()
	p, err := NewPipeline(opts, WithClock(mock))
	require.NoError(t, err)

	_, err = p.Resolve("10.1.2.3")
	require.ErrorContains(t, err, "not loaded")
	require.Error(t, p.IsReady()())
	require.NoError(t, p.IsAlive()())

	require.NoError(t, p.Build())
	require.NoError(t, p.IsReady()())
	assert.Equal(t, time.Duration(0), p.Stats().Duration)
	require.ErrorContains(t, p.Build(), "already loaded")

	res, err := p.Resolve(" 10.1.2.3 ")
	require.NoError(t, err)
	assert.Equal(t, api.Result{Query: "10.1.2.3", Matched: true, ASN: "200", MaskLen: 16, Network: "10.1.0.0"}, res)

	res, err = p.Resolve("11.0.0.0")
	require.NoError(t, err)
	assert.False(t, res.Matched)

	_, err = p.Resolve("10.1.2")
	require.ErrorIs(t, err, ingest.ErrMalformed)
}

type fakeLocator struct {
	closed bool
}

func (l *fakeLocator) Country(ip string) (string, error) {
	if ip == "10.1.2.3" {
		return "FR", nil
	}
	return "", errors.New("unknown")
}

func (l *fakeLocator) Close() {
	l.closed = true
}

func TestRun_Enrich(t *testing.T) {
	opts := newOptions(t, test.ASTable, "10.1.2.3\n10.2.0.0\n11.0.0.0\n", "")
	out := &bytes.Buffer{}
	p, err := NewPipeline(opts, WithOutput(out))
	require.NoError(t, err)
	locator := &fakeLocator{}
	p.locator = locator

	require.NoError(t, p.Run())
	assert.Equal(t, "10.1.0.0/16 200 10.1.2.3 FR\n"+
		"10.0.0.0/8 100 10.2.0.0\n"+
		"11.0.0.0 does not have a corresponding AS\n", out.String())
	assert.True(t, locator.closed)
}

func TestNewPipeline_Errors(t *testing.T) {
	_, err := NewPipeline(&config.Options{Resolve: api.Resolve{Engine: "nope"}})
	require.ErrorContains(t, err, StageResolve)

	_, err = NewPipeline(&config.Options{Write: api.Write{Format: "nope"}})
	require.ErrorContains(t, err, StageWrite)

	_, err = NewPipeline(&config.Options{Enrich: api.Enrich{LocationDB: "/nonexistent/db.BIN"}})
	require.ErrorContains(t, err, StageEnrich)
}
