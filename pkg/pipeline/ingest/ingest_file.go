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

package ingest

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/netobserv/ip2as/pkg/trie"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// RouteFunc receives every valid route of an AS table, in file order.
type RouteFunc func(trie.Route)

// QueryFunc receives every valid query, in file order. Returning an error stops the ingestion.
type QueryFunc func(query string, address uint32) error

// Stats counts the lines seen while ingesting a file.
type Stats struct {
	Lines    int
	Accepted int
	Skipped  int
}

type File struct {
	path          string
	skipMalformed bool
}

// NewFile creates an ingester reading path line by line
func NewFile(path string, skipMalformed bool) (*File, error) {
	log.Debugf("entering NewFile")
	if path == "" {
		return nil, errors.New("ingest filename not specified")
	}
	log.Infof("input file name = %s", path)
	return &File{path: path, skipMalformed: skipMalformed}, nil
}

// Routes ingests an AS table
func (f *File) Routes(process RouteFunc) (Stats, error) {
	var stats Stats
	err := f.open(func(r io.Reader) error {
		var err error
		stats, err = readRoutes(r, f.path, f.skipMalformed, process)
		return err
	})
	return stats, err
}

// Queries ingests a list of query addresses
func (f *File) Queries(process QueryFunc) (Stats, error) {
	var stats Stats
	err := f.open(func(r io.Reader) error {
		var err error
		stats, err = readQueries(r, f.path, f.skipMalformed, process)
		return err
	})
	return stats, err
}

func (f *File) open(read func(io.Reader) error) error {
	file, err := os.Open(f.path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", f.path)
	}
	defer func() {
		_ = file.Close()
	}()
	return read(file)
}

func readRoutes(r io.Reader, source string, skipMalformed bool, process RouteFunc) (Stats, error) {
	stats, err := scan(r, source, skipMalformed, func(text string) error {
		route, err := ParseRoute(text)
		if err != nil {
			return err
		}
		process(route)
		return nil
	})
	log.Infof("ingested %d records from %s (%d lines, %d skipped)", stats.Accepted, source, stats.Lines, stats.Skipped)
	recordsLoaded.WithLabelValues(source).Add(float64(stats.Accepted))
	return stats, err
}

func readQueries(r io.Reader, source string, skipMalformed bool, process QueryFunc) (Stats, error) {
	stats, err := scan(r, source, skipMalformed, func(text string) error {
		address, err := ParseAddress(text)
		if err != nil {
			return err
		}
		return process(strings.TrimSpace(text), address)
	})
	log.Infof("ingested %d queries from %s (%d lines, %d skipped)", stats.Accepted, source, stats.Lines, stats.Skipped)
	return stats, err
}

// scan feeds every non blank line that is not a # comment to parse.
// Malformed lines are either skipped or returned as errors, depending on skipMalformed;
// any other error from parse stops the scan.
func scan(r io.Reader, source string, skipMalformed bool, parse func(string) error) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		err := parse(text)
		if err == nil {
			stats.Accepted++
			continue
		}
		var malformed *MalformedError
		if !errors.As(err, &malformed) {
			return stats, err
		}
		malformed.Source = source
		malformed.Line = stats.Lines
		if !skipMalformed {
			return stats, malformed
		}
		stats.Skipped++
		linesSkipped.WithLabelValues(source).Inc()
		log.WithField("source", source).Warnf("skipping line: %v", malformed)
	}
	if err := scanner.Err(); err != nil {
		return stats, errors.Wrapf(err, "reading %s", source)
	}
	return stats, nil
}
