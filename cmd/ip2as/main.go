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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/netobserv/ip2as/pkg/api"
	"github.com/netobserv/ip2as/pkg/config"
	"github.com/netobserv/ip2as/pkg/pipeline"
	"github.com/netobserv/ip2as/pkg/pipeline/utils"
	"github.com/netobserv/ip2as/pkg/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	buildVersion       = "unknown"
	buildDate          = "unknown"
	cfgFile            string
	logLevel           string
	envPrefix          = "IP2AS"
	defaultLogFileName = ".ip2as"
	opts               *config.Options
	optsErr            error
)

// rootCmd resolves every address of the query list once, then exits
var rootCmd = &cobra.Command{
	Use:          "ip2as",
	Short:        "Resolve IPv4 addresses to the autonomous system announcing them",
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		if optsErr != nil {
			return optsErr
		}
		return runLookup(opts, os.Stdout)
	},
}

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Load the AS table and answer lookups over HTTP",
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		if optsErr != nil {
			return optsErr
		}
		return runServer(opts)
	},
}

// initConfig use config file and ENV variables if set.
func initConfig() {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal(err)
		}
		// Search config in home directory with name ".ip2as" (without extension).
		v.AddConfigPath(home)
		v.SetConfigName(defaultLogFileName)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cfgErr := v.ReadInConfig()

	bindFlags(rootCmd.PersistentFlags(), v)

	initLogger()

	if cfgErr != nil {
		log.Debugf("Read config error: %v", cfgErr)
	}

	opts, optsErr = loadOptions(rootCmd.PersistentFlags(), v)
	if optsErr != nil {
		log.Errorf("error in loading config: %v", optsErr)
	}
}

// loadOptions decodes the settings resolved by viper (flags, then environment, then config
// file, then flag defaults) into Options
func loadOptions(flags *pflag.FlagSet, v *viper.Viper) (*config.Options, error) {
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	settings := v.AllSettings()
	// command line only settings
	delete(settings, "config")
	delete(settings, "log-level")
	return config.Decode(settings)
}

func initLogger() {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.ErrorLevel
	}
	log.SetLevel(ll)
	log.SetFormatter(&log.TextFormatter{DisableColors: false, FullTimestamp: true, PadLevelText: true, DisableQuote: true})
}

func dumpConfig(opts *config.Options) {
	configAsJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(opts, "", "    ")
	if err != nil {
		panic(fmt.Sprintf("error dumping config: %v", err))
	}
	log.Debugf("Using configuration:\n%s", configAsJSON)
}

func bindFlags(flags *pflag.FlagSet, v *viper.Viper) {
	flags.VisitAll(func(f *pflag.Flag) {
		if strings.Contains(f.Name, ".") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, ".", "_"))
			_ = v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix))
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			switch val.(type) {
			case bool, uint, string, int32, int16, int8, int, uint32, uint64, int64, float64, float32, []string, []int:
				_ = flags.Set(f.Name, fmt.Sprintf("%v", val))
			default:
				b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(&val)
				if err != nil {
					log.Fatalf("can't parse flag %s into json with value %v got error %s", f.Name, val, err)
					return
				}
				_ = flags.Set(f.Name, string(b))
			}
		}
	})
}

func initFlags() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $HOME/%s)", defaultLogFileName))
	flags.StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warning, error")
	addOptionFlags(flags)
	rootCmd.AddCommand(serveCmd)
}

// addOptionFlags declares one flag per configuration key, named after its yaml path
func addOptionFlags(flags *pflag.FlagSet) {
	flags.String("ingest.table", "", "AS table path, one '<address> <mask length> <AS number>' record per line")
	flags.String("ingest.queries", "", "query list path, one IPv4 address per line")
	flags.Bool("ingest.skipMalformed", false, "log and skip malformed lines instead of failing")
	flags.String("resolve.engine", api.ResolveEngineName("Trie"), "lookup engine: trie, bart")
	flags.String("enrich.locationDB", "", "IP2Location BIN database adding the country of matched queries")
	flags.String("write.format", api.WriteFormatName("Text"), "output format: text, json, yaml")
	flags.String("server.address", api.DefaultServerAddress, "listen address of the lookup service")
	flags.Int("metrics.port", 0, "port exposing /metrics while resolving a query list (default: disabled)")
}

func main() {
	initFlags()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func prepare(opts *config.Options) error {
	log.Infof("Starting %s: build version %s, build date %s", filepath.Base(os.Args[0]), buildVersion, buildDate)
	if err := config.ParseConfig(opts); err != nil {
		log.Errorf("error in parsing config: %v", err)
		return err
	}
	dumpConfig(opts)
	return nil
}

func runLookup(opts *config.Options, out io.Writer) error {
	if err := prepare(opts); err != nil {
		return err
	}
	if promServer := utils.NewPromServer(opts.Metrics); promServer != nil {
		go utils.StartPromServer(promServer)
		defer func() { _ = promServer.Shutdown(context.Background()) }()
	}

	mainPipeline, err := pipeline.NewPipeline(opts, pipeline.WithOutput(out))
	if err != nil {
		log.Errorf("failed to initialize pipeline: %s", err)
		return err
	}
	if err := mainPipeline.Run(); err != nil {
		log.Errorf("lookup failed: %s", err)
		return err
	}
	log.Debugf("exiting main run")
	return nil
}

func runServer(opts *config.Options) error {
	if err := prepare(opts); err != nil {
		return err
	}
	mainPipeline, err := pipeline.NewPipeline(opts)
	if err != nil {
		log.Errorf("failed to initialize pipeline: %s", err)
		return err
	}
	defer mainPipeline.Close()

	utils.SetupElegantExit()
	exit := utils.ExitChannel()

	srv := server.NewServer(opts.Server, mainPipeline)
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve() }()

	// /live answers while the table loads, /ready once it is built
	if err := mainPipeline.Build(); err != nil {
		log.Errorf("failed to load AS table: %s", err)
		_ = srv.Shutdown(context.Background())
		return err
	}

	select {
	case <-exit:
	case err := <-serveErr:
		if err != nil {
			log.Errorf("lookup server stopped: %s", err)
			return err
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Debugf("exiting main serve")
	return srv.Shutdown(ctx)
}
