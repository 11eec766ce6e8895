/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package cmd

import (
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/config"
	commonerrors "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/errors"
)

type rootOptions struct {
	cfgFile string
	envFile string
	verbose bool
	output  string
	fs      afero.Fs
}

// NewRootCommand builds the command tree. All file reads go through fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{fs: fs}
	rootCmd := &cobra.Command{
		Use:   "uniretrieval",
		Short: "UniRetrieval - validate and normalize retrieval training configuration",
		Long: `uniretrieval checks the configuration of retrieval and reranking training jobs
before any training starts, and prints the normalized result.

Example:
  uniretrieval validate ./conf/ml-100k.json
  uniretrieval derive ./conf/ml-100k.yaml -o yaml
  uniretrieval args --args-file ./conf/args.yaml --train_batch_size=1024`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "tool settings file")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "dotenv file loaded before settings are read")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputJSON, "output format: json or yaml")

	rootCmd.AddCommand(newValidateCommand(opts), newDeriveCommand(opts), newArgsCommand(opts))
	return rootCmd
}

// Execute runs the command line tool against the local filesystem.
func Execute() error {
	err := NewRootCommand(afero.NewOsFs()).Execute()
	if err != nil {
		if code := commonerrors.GetErrorCode(err); code != "" {
			logrus.Errorf("[%s] %v", code, err)
		} else {
			logrus.Error(err)
		}
	}
	return err
}

func (opts *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			return errors.Wrapf(err, "failed to load env file %s", opts.envFile)
		}
	}
	if opts.cfgFile != "" {
		if err := config.LoadConfig(opts.cfgFile); err != nil {
			return errors.Wrapf(err, "failed to load config %s", opts.cfgFile)
		}
	}
	if opts.output != outputJSON && opts.output != outputYAML {
		return commonerrors.NewBadRequest(fmt.Sprintf("unsupported output format %q", opts.output))
	}

	logrus.SetOutput(cmd.ErrOrStderr())
	if config.GetLogFormat() == config.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	level, err := logrus.ParseLevel(config.GetLogLevel())
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	if opts.verbose {
		level = logrus.DebugLevel
		klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
		klog.InitFlags(klogFlags)
		if err = klogFlags.Set("v", "4"); err != nil {
			return err
		}
	}
	logrus.SetLevel(level)
	logrus.Debugf("log level %s, format %s", level, config.GetLogFormat())
	return nil
}
