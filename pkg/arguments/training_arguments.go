/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package arguments

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/util/validation/field"

	commonerrors "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/errors"
	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/slice"
)

type TrainingArguments struct {
	TrainBatchSize int `json:"train_batch_size"`
	// only used for retriever training
	ItemBatchSize      int    `json:"item_batch_size"`
	EvaluationStrategy string `json:"evaluation_strategy"`
	// epochs or steps between evaluations
	EvalInterval        int      `json:"eval_interval"`
	EvalBatchSize       int      `json:"eval_batch_size"`
	Cutoffs             []int    `json:"cutoffs"`
	Metrics             []string `json:"metrics"`
	EarlystopStrategy   string   `json:"earlystop_strategy"`
	EarlystopPatience   int      `json:"earlystop_patience"`
	EarlystopMetric     string   `json:"earlystop_metric"`
	EarlystopMetricMode string   `json:"earlystop_metric_mode"`
	// save the best model in the early stop callback
	CheckpointBestCkpt bool `json:"checkpoint_best_ckpt"`
	// 0 saves per epoch
	CheckpointSteps int `json:"checkpoint_steps"`
}

func DefaultTrainingArguments() *TrainingArguments {
	return &TrainingArguments{
		TrainBatchSize:      512,
		ItemBatchSize:       2048,
		EvaluationStrategy:  StrategyEpoch,
		EvalInterval:        1,
		EvalBatchSize:       256,
		Cutoffs:             []int{1, 5, 10},
		Metrics:             []string{"ndcg", "recall"},
		EarlystopStrategy:   StrategyEpoch,
		EarlystopPatience:   5,
		EarlystopMetric:     "ndcg@5",
		EarlystopMetricMode: MetricModeMax,
		CheckpointBestCkpt:  true,
		CheckpointSteps:     1000,
	}
}

func (a *TrainingArguments) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&a.TrainBatchSize, "train_batch_size", a.TrainBatchSize, "Batch size for training")
	fs.IntVar(&a.ItemBatchSize, "item_batch_size", a.ItemBatchSize, "Batch size for encoding items, only used for retriever training")
	fs.StringVar(&a.EvaluationStrategy, "evaluation_strategy", a.EvaluationStrategy, "When to evaluate: epoch or step")
	fs.IntVar(&a.EvalInterval, "eval_interval", a.EvalInterval, "Interval between evaluations, in epochs or steps")
	fs.IntVar(&a.EvalBatchSize, "eval_batch_size", a.EvalBatchSize, "Batch size for evaluation")
	fs.IntSliceVar(&a.Cutoffs, "cutoffs", a.Cutoffs, "Rank cutoffs at which metrics are computed")
	fs.StringSliceVar(&a.Metrics, "metrics", a.Metrics, "Ranking metrics to compute")
	fs.StringVar(&a.EarlystopStrategy, "earlystop_strategy", a.EarlystopStrategy, "When to check early stopping: epoch or step")
	fs.IntVar(&a.EarlystopPatience, "earlystop_patience", a.EarlystopPatience, "Number of epochs or steps without improvement before stopping")
	fs.StringVar(&a.EarlystopMetric, "earlystop_metric", a.EarlystopMetric, "Metric monitored for early stopping, e.g. ndcg@5")
	fs.StringVar(&a.EarlystopMetricMode, "earlystop_metric_mode", a.EarlystopMetricMode, "Whether the monitored metric should be maximized or minimized: max or min")
	fs.BoolVar(&a.CheckpointBestCkpt, "checkpoint_best_ckpt", a.CheckpointBestCkpt, "Save the best model in the early stop callback")
	fs.IntVar(&a.CheckpointSteps, "checkpoint_steps", a.CheckpointSteps, "Save the model every n steps, 0 saves per epoch")
}

func (a *TrainingArguments) Validate() error {
	var errs field.ErrorList
	positive := []struct {
		name  string
		value int
	}{
		{"train_batch_size", a.TrainBatchSize},
		{"item_batch_size", a.ItemBatchSize},
		{"eval_interval", a.EvalInterval},
		{"eval_batch_size", a.EvalBatchSize},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, field.Invalid(field.NewPath(p.name), p.value, "must be greater than 0"))
		}
	}
	if !slice.ContainsString(SupportedStrategies, a.EvaluationStrategy) {
		errs = append(errs, field.NotSupported(field.NewPath("evaluation_strategy"), a.EvaluationStrategy, SupportedStrategies))
	}
	if !slice.ContainsString(SupportedStrategies, a.EarlystopStrategy) {
		errs = append(errs, field.NotSupported(field.NewPath("earlystop_strategy"), a.EarlystopStrategy, SupportedStrategies))
	}
	if !slice.ContainsString(SupportedMetricModes, a.EarlystopMetricMode) {
		errs = append(errs, field.NotSupported(field.NewPath("earlystop_metric_mode"), a.EarlystopMetricMode, SupportedMetricModes))
	}
	for i, cutoff := range a.Cutoffs {
		if cutoff <= 0 {
			errs = append(errs, field.Invalid(field.NewPath("cutoffs").Index(i), cutoff, "must be greater than 0"))
		}
	}
	if len(a.Metrics) == 0 {
		errs = append(errs, field.Required(field.NewPath("metrics"), "at least one metric is required"))
	}
	if a.EarlystopPatience < 0 {
		errs = append(errs, field.Invalid(field.NewPath("earlystop_patience"), a.EarlystopPatience, "must be greater than or equal to 0"))
	}
	if a.CheckpointSteps < 0 {
		errs = append(errs, field.Invalid(field.NewPath("checkpoint_steps"), a.CheckpointSteps, "must be greater than or equal to 0"))
	}
	errs = append(errs, a.validateEarlystopMetric()...)
	if len(errs) > 0 {
		return commonerrors.NewInvalidConfiguration("TrainingArguments", errs)
	}
	return nil
}

func (a *TrainingArguments) validateEarlystopMetric() field.ErrorList {
	path := field.NewPath("earlystop_metric")
	name, cutoff, err := ParseEarlystopMetric(a.EarlystopMetric)
	if err != nil {
		return field.ErrorList{field.Invalid(path, a.EarlystopMetric, err.Error())}
	}
	var errs field.ErrorList
	if !slice.ContainsString(a.Metrics, name) {
		errs = append(errs, field.Invalid(path, a.EarlystopMetric, fmt.Sprintf("metric %q is not in metrics", name)))
	}
	if cutoff > 0 && !slice.ContainsInt(a.Cutoffs, cutoff) {
		errs = append(errs, field.Invalid(path, a.EarlystopMetric, fmt.Sprintf("cutoff %d is not in cutoffs", cutoff)))
	}
	return errs
}

// ParseEarlystopMetric splits "name@k" into its metric name and cutoff.
// A plain metric name returns a cutoff of 0.
func ParseEarlystopMetric(metric string) (string, int, error) {
	name, k, found := strings.Cut(metric, "@")
	if name == "" {
		return "", 0, fmt.Errorf("metric name is empty")
	}
	if !found {
		return name, 0, nil
	}
	cutoff, err := strconv.Atoi(k)
	if err != nil || cutoff <= 0 {
		return "", 0, fmt.Errorf("cutoff %q must be a positive integer", k)
	}
	return name, cutoff, nil
}
