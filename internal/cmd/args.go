/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/arguments"
	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/config"
	jsonutils "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/json"
)

// argsFile is the layout of --args-file. Every section is optional.
type argsFile struct {
	Model    *arguments.RerankerModelArguments `json:"model,omitempty"`
	Training *arguments.TrainingArguments      `json:"training,omitempty"`
	Data     *arguments.TextDataArguments      `json:"data,omitempty"`
}

type argsOptions struct {
	*rootOptions
	argsFile   string
	dataConfig string
	model      *arguments.RerankerModelArguments
	training   *arguments.TrainingArguments
	text       *arguments.TextDataArguments
}

func newArgsCommand(root *rootOptions) *cobra.Command {
	opts := &argsOptions{
		rootOptions: root,
		model:       arguments.DefaultRerankerModelArguments(),
		training:    arguments.DefaultTrainingArguments(),
		text:        &arguments.TextDataArguments{},
	}
	argsCmd := &cobra.Command{
		Use:   "args",
		Short: "Validate model and training arguments",
		Long: `Resolve model and training arguments from defaults, an optional arguments file
and command line flags, in increasing precedence, then validate and print them.

Example:
  uniretrieval args --args-file ./conf/args.yaml --embedding_dim=64 --cutoffs=5,10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.resolve(cmd.Flags()); err != nil {
				return err
			}
			return printObject(cmd.OutOrStdout(), opts.output, opts.result())
		},
	}
	argsCmd.Flags().StringVar(&opts.argsFile, "args-file", "", "JSON or YAML file with model, training and data sections")
	argsCmd.Flags().StringVar(&opts.dataConfig, "data-config", "", "data config the model data schema is derived from")
	opts.model.AddFlags(argsCmd.Flags())
	opts.training.AddFlags(argsCmd.Flags())
	opts.text.AddFlags(argsCmd.Flags())
	return argsCmd
}

func (opts *argsOptions) resolve(flags *pflag.FlagSet) error {
	path := opts.argsFile
	if path == "" {
		path = config.GetArgsFilePath()
	}
	if path != "" {
		changed := snapshotChanged(flags)
		raw, err := jsonutils.ReadFile(opts.fs, path)
		if err != nil {
			return err
		}
		file := argsFile{Model: opts.model, Training: opts.training, Data: opts.text}
		if err = jsonutils.DecodeFromMapWithCheck(raw, &file); err != nil {
			return errors.Wrapf(err, "failed to decode %s", path)
		}
		for _, s := range changed {
			if err = s.restore(); err != nil {
				return errors.Wrapf(err, "failed to apply flag --%s", s.flag.Name)
			}
		}
		logrus.Debugf("loaded arguments from %s, %d flags override it", path, len(changed))
	}

	if opts.dataConfig != "" {
		data, err := arguments.DataArgumentsFromFile(opts.fs, opts.dataConfig)
		if err != nil {
			return err
		}
		opts.model.DataConfig = arguments.NewDataAttr4Model(data)
	}
	if err := opts.model.Validate(); err != nil {
		return err
	}
	if err := opts.training.Validate(); err != nil {
		return err
	}
	if len(opts.text.TrainData) > 0 {
		if err := opts.text.ValidateFs(opts.fs); err != nil {
			return err
		}
	}
	return nil
}

func (opts *argsOptions) result() argsFile {
	result := argsFile{Model: opts.model, Training: opts.training}
	if len(opts.text.TrainData) > 0 {
		result.Data = opts.text
	}
	return result
}

type flagSnapshot struct {
	flag  *pflag.Flag
	value string
	slice []string
}

// snapshotChanged records the flags set on the command line so they can win over file values.
func snapshotChanged(flags *pflag.FlagSet) []flagSnapshot {
	var result []flagSnapshot
	flags.Visit(func(f *pflag.Flag) {
		s := flagSnapshot{flag: f, value: f.Value.String()}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			s.slice = sv.GetSlice()
		}
		result = append(result, s)
	})
	return result
}

func (s flagSnapshot) restore() error {
	if sv, ok := s.flag.Value.(pflag.SliceValue); ok {
		return sv.Replace(s.slice)
	}
	return s.flag.Value.Set(s.value)
}
