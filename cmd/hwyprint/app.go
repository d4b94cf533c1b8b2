// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-hwyprint/hwy"
	"github.com/ajroetker/go-hwyprint/hwy/contrib/printsink"
)

const envPrefix = "HWYPRINT"

// Sink names accepted by --sink.
const (
	sinkStderr  = "stderr"
	sinkStdout  = "stdout"
	sinkLog     = "log"
	sinkDiscard = "discard"
)

// app holds state resolved once in PersistentPreRunE and shared by the
// subcommands.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
	stdout io.Writer
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "hwyprint",
		Short:         "Run pipelines instrumented with hwy.Print",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "optional YAML configuration file")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("sink", sinkStdout, "message sink: stderr, stdout, log or discard")
	flags.Int("workers", 0, "worker pool size; 0 evaluates elements sequentially")

	root.AddCommand(newDemoCommand(a), newScenariosCommand(a), newTokenCommand(a))
	return root
}

// configure binds flags, environment and the optional config file into
// a.v, then builds the logger.
func (a *app) configure(cmd *cobra.Command) error {
	a.stdout = cmd.OutOrStdout()
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading configuration %s: %w", path, err)
		}
	}

	level, err := zapcore.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("config", a.v.ConfigFileUsed()),
		zap.String("sink", a.v.GetString("sink")),
		zap.Int("workers", a.v.GetInt("workers")),
		zap.String("target", hwy.CurrentName()))
	return nil
}

// sink resolves the --sink setting.
func (a *app) sink() (hwy.Sink, error) {
	switch name := a.v.GetString("sink"); name {
	case sinkStderr:
		return hwy.StderrSink, nil
	case sinkStdout:
		return hwy.WriterSink(a.stdout), nil
	case sinkLog:
		return printsink.Zap(a.logger, zapcore.InfoLevel), nil
	case sinkDiscard:
		return hwy.DiscardSink, nil
	default:
		return nil, fmt.Errorf("unknown sink %q", name)
	}
}

func (a *app) workers() int {
	return a.v.GetInt("workers")
}
