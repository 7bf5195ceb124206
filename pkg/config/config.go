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

package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/netobserv/ip2as/pkg/api"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Ingest  api.Ingest  `yaml:"ingest" json:"ingest"`
	Resolve api.Resolve `yaml:"resolve" json:"resolve"`
	Enrich  api.Enrich  `yaml:"enrich" json:"enrich"`
	Write   api.Write   `yaml:"write" json:"write"`
	Server  api.Server  `yaml:"server" json:"server"`
	Metrics api.Metrics `yaml:"metrics" json:"metrics"`
}

// Decode creates Options from a generic settings tree, such as viper's AllSettings.
// Keys follow the yaml names of the api structures, matched case-insensitively.
func Decode(settings map[string]interface{}) (*Options, error) {
	opts := &Options{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          api.TagYaml,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           opts,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return opts, nil
}

// ParseConfig fills in defaults and validates the options
func ParseConfig(opts *Options) error {
	logrus.Debugf("config options = %+v", *opts)
	opts.Resolve.SetDefaults()
	opts.Write.SetDefaults()
	opts.Server.SetDefaults()

	if err := opts.Ingest.Validate(); err != nil {
		return err
	}
	if err := opts.Resolve.Validate(); err != nil {
		return err
	}
	if err := opts.Write.Validate(); err != nil {
		return err
	}
	if opts.Metrics.Port < 0 || opts.Metrics.Port > 65535 {
		return fmt.Errorf("metrics.port: %d out of range", opts.Metrics.Port)
	}
	return nil
}
