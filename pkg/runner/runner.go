/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package runner

import (
	"context"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/arguments"
	commonerrors "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/errors"
	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/modeling"
)

// Trainer runs the training loop of a built model. It is provided by the training framework.
type Trainer interface {
	Train(ctx context.Context, model modeling.Model, data *arguments.DataArguments, training *arguments.TrainingArguments) error
}

type Runner struct {
	model    arguments.ModelConfig
	data     *arguments.DataArguments
	training *arguments.TrainingArguments
	trainer  Trainer

	registry  *modeling.Registry
	outputDir string
}

type Option func(*Runner)

// WithRegistry resolves model names against r instead of the default registry.
func WithRegistry(r *modeling.Registry) Option {
	return func(runner *Runner) {
		runner.registry = r
	}
}

// WithOutputDir saves the trained model into dir once training returns.
func WithOutputDir(dir string) Option {
	return func(runner *Runner) {
		runner.outputDir = dir
	}
}

// NewRunner validates all argument sets. When the model carries no data config,
// it is derived from the data arguments and set on the model only if validation succeeds.
func NewRunner(model arguments.ModelConfig, data *arguments.DataArguments,
	training *arguments.TrainingArguments, trainer Trainer, opts ...Option) (*Runner, error) {
	if model == nil || data == nil || training == nil {
		return nil, commonerrors.NewBadRequest("model, data and training arguments must all be set")
	}
	if trainer == nil {
		return nil, commonerrors.NewBadRequest("trainer is not set")
	}
	r := &Runner{
		model:    model,
		data:     data,
		training: training,
		trainer:  trainer,
		registry: modeling.DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(r)
	}

	base := model.Base()
	derived := base.DataConfig == nil
	if derived {
		base.DataConfig = arguments.NewDataAttr4Model(data)
		klog.V(4).Infof("derived data config for %s: %d features, %d items",
			data.Name, len(base.DataConfig.Features), base.DataConfig.NumItems)
	}
	if err := r.validate(); err != nil {
		// the caller keeps its arguments untouched on failure
		if derived {
			base.DataConfig = nil
		}
		return nil, err
	}
	return r, nil
}

func (r *Runner) validate() error {
	name := r.model.Base().ModelName
	if err := r.model.Validate(); err != nil {
		klog.ErrorS(err, "invalid model arguments", "model", name)
		return err
	}
	if err := r.training.Validate(); err != nil {
		klog.ErrorS(err, "invalid training arguments", "model", name)
		return err
	}
	return nil
}

// Run builds the model from the registry and hands it to the trainer.
func (r *Runner) Run(ctx context.Context) error {
	base := r.model.Base()
	factory, err := r.registry.Get(base.ModelName)
	if err != nil {
		return err
	}
	model, err := factory(r.model)
	if err != nil {
		return errors.Wrapf(err, "failed to build model %s", base.ModelName)
	}
	klog.Infof("start training model %s on %s", base.ModelName, r.data.Name)
	if err = r.trainer.Train(ctx, model, r.data, r.training); err != nil {
		return errors.Wrapf(err, "failed to train model %s", base.ModelName)
	}
	if r.outputDir != "" {
		if err = model.Save(r.outputDir); err != nil {
			return errors.Wrapf(err, "failed to save model %s to %s", base.ModelName, r.outputDir)
		}
		klog.Infof("model %s saved to %s", base.ModelName, r.outputDir)
	}
	return nil
}

// ModelArguments returns the validated model arguments, including the derived data config.
func (r *Runner) ModelArguments() arguments.ModelConfig {
	return r.model
}
