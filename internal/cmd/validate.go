/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/arguments"
	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/config"
	commonerrors "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/errors"
)

func newValidateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [data-config]",
		Short: "Validate a data config and print the normalized result",
		Long: `Validate a JSON or YAML data config: required keys, date formats and
feature names are checked, defaults are filled in and the result is printed.

When no path is given, data.config_path from the tool settings is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := opts.loadDataArguments(args)
			if err != nil {
				return err
			}
			logrus.Infof("data config %s is valid", data.Name)
			return printObject(cmd.OutOrStdout(), opts.output, data.ToMap())
		},
	}
}

func newDeriveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "derive [data-config]",
		Short: "Print the model data schema derived from a data config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := opts.loadDataArguments(args)
			if err != nil {
				return err
			}
			attr := arguments.NewDataAttr4Model(data)
			if err = attr.Validate(); err != nil {
				return err
			}
			logrus.Debugf("derived %d features and %d items from %s", len(attr.Features), attr.NumItems, data.Name)
			return printObject(cmd.OutOrStdout(), opts.output, attr.ToMap())
		},
	}
}

func (opts *rootOptions) loadDataArguments(args []string) (*arguments.DataArguments, error) {
	path := config.GetDataConfigPath()
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, commonerrors.NewBadRequest("the data config path is empty")
	}
	logrus.Debugf("loading data config from %s", path)
	return arguments.DataArgumentsFromFile(opts.fs, path)
}
