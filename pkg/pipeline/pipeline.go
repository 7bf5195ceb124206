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
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/heptiolabs/healthcheck"
	"github.com/netobserv/ip2as/pkg/api"
	"github.com/netobserv/ip2as/pkg/config"
	"github.com/netobserv/ip2as/pkg/pipeline/enrich"
	"github.com/netobserv/ip2as/pkg/pipeline/ingest"
	"github.com/netobserv/ip2as/pkg/pipeline/resolve"
	"github.com/netobserv/ip2as/pkg/pipeline/write"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// names of the pipeline stages, used in logs and errors
const (
	StageIngest  = "ingest"
	StageResolve = "resolve"
	StageEnrich  = "enrich"
	StageWrite   = "write"
)

// Pipeline owns the lookup engine: it loads the AS table into it once,
// then resolves query addresses and hands the results to the writer.
type Pipeline struct {
	opts    *config.Options
	engine  resolve.Engine
	locator enrich.Locator
	writer  write.Writer
	out     io.Writer
	clock   clock.Clock
	built   atomic.Bool
	stats   BuildStats
}

// BuildStats describes the loaded AS table
type BuildStats struct {
	Records  int
	Prefixes int
	Skipped  int
	Duration time.Duration
}

type Option func(*Pipeline)

// WithWriter replaces the writer built from the write options
func WithWriter(w write.Writer) Option {
	return func(p *Pipeline) { p.writer = w }
}

// WithOutput sends the configured writer output to out instead of stdout
func WithOutput(out io.Writer) Option {
	return func(p *Pipeline) { p.out = out }
}

func WithClock(c clock.Clock) Option {
	return func(p *Pipeline) { p.clock = c }
}

// NewPipeline creates the pipeline stages from the options
func NewPipeline(opts *config.Options, options ...Option) (*Pipeline, error) {
	log.Debugf("entering NewPipeline")
	p := &Pipeline{opts: opts, clock: clock.New()}
	for _, o := range options {
		o(p)
	}

	var err error
	if p.engine, err = resolve.NewEngine(opts.Resolve); err != nil {
		return nil, fmt.Errorf("%s: %w", StageResolve, err)
	}
	if p.writer == nil {
		if p.writer, err = write.NewWriter(opts.Write, p.out); err != nil {
			return nil, fmt.Errorf("%s: %w", StageWrite, err)
		}
	}
	if p.locator, err = enrich.NewLocator(opts.Enrich); err != nil {
		return nil, fmt.Errorf("%s: %w", StageEnrich, err)
	}
	return p, nil
}

// Build loads the AS table into the engine. It can only run once: the engine is
// read-only as soon as queries may be issued.
func (p *Pipeline) Build() error {
	log.Debugf("entering pipeline.Build")
	if p.built.Load() {
		return errors.New("AS table already loaded")
	}
	file, err := ingest.NewFile(p.opts.Ingest.Table, p.opts.Ingest.SkipMalformed)
	if err != nil {
		return errors.Wrap(err, StageIngest)
	}

	start := p.clock.Now()
	stats, err := file.Routes(p.engine.Insert)
	if err != nil {
		return errors.Wrap(err, "loading AS table")
	}
	p.stats = BuildStats{
		Records:  stats.Accepted,
		Prefixes: p.engine.Len(),
		Skipped:  stats.Skipped,
		Duration: p.clock.Since(start),
	}

	prefixesGauge.Set(float64(p.stats.Prefixes))
	buildDuration.Set(p.stats.Duration.Seconds())
	if counter, ok := p.engine.(interface{ Nodes() int }); ok {
		trieNodes.Set(float64(counter.Nodes()))
	}
	log.WithFields(log.Fields{
		"records":  p.stats.Records,
		"prefixes": p.stats.Prefixes,
		"skipped":  p.stats.Skipped,
		"duration": p.stats.Duration,
		"engine":   p.opts.Resolve.Engine,
	}).Info("AS table loaded")

	p.built.Store(true)
	return nil
}

func (p *Pipeline) Stats() BuildStats {
	return p.stats
}

// Resolve parses a dotted-decimal query and returns its result.
// Malformed queries return an error matching ingest.ErrMalformed.
func (p *Pipeline) Resolve(query string) (api.Result, error) {
	if !p.built.Load() {
		return api.Result{}, errors.New("AS table not loaded")
	}
	address, err := ingest.ParseAddress(query)
	if err != nil {
		return api.Result{}, err
	}
	return p.lookup(strings.TrimSpace(query), address), nil
}

func (p *Pipeline) lookup(query string, address uint32) api.Result {
	route, ok := p.engine.Lookup(address)
	if !ok {
		lookupsCounter.WithLabelValues("miss").Inc()
		return api.Result{Query: query}
	}
	lookupsCounter.WithLabelValues("match").Inc()
	result := api.Result{
		Query:   query,
		Matched: true,
		ASN:     route.ASN,
		MaskLen: route.MaskLen,
		Network: route.Network(),
	}
	if p.locator != nil {
		country, err := p.locator.Country(query)
		if err != nil {
			log.WithError(err).Debugf("can't locate %s", query)
		} else {
			result.Country = country
		}
	}
	return result
}

// Run loads the AS table, then resolves every address of the query list in order
func (p *Pipeline) Run() error {
	log.Debugf("entering pipeline.Run")
	defer p.Close()
	if p.opts.Ingest.Queries == "" {
		return errors.New("ingest.queries can't be empty")
	}
	if err := p.Build(); err != nil {
		return err
	}
	file, err := ingest.NewFile(p.opts.Ingest.Queries, p.opts.Ingest.SkipMalformed)
	if err != nil {
		return errors.Wrap(err, StageIngest)
	}
	stats, err := file.Queries(func(query string, address uint32) error {
		return p.writer.Write(p.lookup(query, address))
	})
	if err != nil {
		return errors.Wrap(err, "resolving queries")
	}
	log.Infof("resolved %d queries", stats.Accepted)
	return nil
}

func (p *Pipeline) Close() {
	if p.locator != nil {
		p.locator.Close()
		p.locator = nil
	}
}

func (p *Pipeline) IsReady() healthcheck.Check {
	return func() error {
		if !p.built.Load() {
			return fmt.Errorf("AS table not loaded")
		}
		return nil
	}
}

func (p *Pipeline) IsAlive() healthcheck.Check {
	return func() error {
		return nil
	}
}
