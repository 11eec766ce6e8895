/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package arguments

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/errors"
)

func TestDefaultTrainingArguments(t *testing.T) {
	args := DefaultTrainingArguments()
	assert.Equal(t, 512, args.TrainBatchSize)
	assert.Equal(t, 2048, args.ItemBatchSize)
	assert.Equal(t, StrategyEpoch, args.EvaluationStrategy)
	assert.Equal(t, 1, args.EvalInterval)
	assert.Equal(t, 256, args.EvalBatchSize)
	assert.Equal(t, []int{1, 5, 10}, args.Cutoffs)
	assert.Equal(t, []string{"ndcg", "recall"}, args.Metrics)
	assert.Equal(t, StrategyEpoch, args.EarlystopStrategy)
	assert.Equal(t, 5, args.EarlystopPatience)
	assert.Equal(t, "ndcg@5", args.EarlystopMetric)
	assert.Equal(t, MetricModeMax, args.EarlystopMetricMode)
	assert.True(t, args.CheckpointBestCkpt)
	assert.Equal(t, 1000, args.CheckpointSteps)
	assert.NoError(t, args.Validate())
}

func TestTrainingArgumentsValidateEnums(t *testing.T) {
	args := DefaultTrainingArguments()
	args.EvaluationStrategy = "batch"
	args.EarlystopStrategy = "never"
	args.EarlystopMetricMode = "avg"
	err := args.Validate()
	require.Error(t, err)
	assert.True(t, commonerrors.IsInvalidConfiguration(err))
	assert.Equal(t, []string{"evaluation_strategy", "earlystop_strategy", "earlystop_metric_mode"},
		commonerrors.CauseFields(err))
}

func TestTrainingArgumentsValidateRanges(t *testing.T) {
	args := DefaultTrainingArguments()
	args.TrainBatchSize = 0
	args.EvalInterval = -1
	args.Cutoffs = []int{1, 0, 5}
	args.EarlystopPatience = -1
	args.CheckpointSteps = -10
	err := args.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{"train_batch_size", "eval_interval", "cutoffs[1]", "earlystop_patience", "checkpoint_steps"},
		commonerrors.CauseFields(err))

	args = DefaultTrainingArguments()
	args.CheckpointSteps = 0
	args.EarlystopPatience = 0
	assert.NoError(t, args.Validate())
}

func TestTrainingArgumentsEarlystopMetric(t *testing.T) {
	tests := []struct {
		metric string
		valid  bool
	}{
		{"ndcg@5", true},
		{"recall@10", true},
		{"ndcg", true},
		{"ndcg@3", false},
		{"mrr@5", false},
		{"ndcg@x", false},
		{"@5", false},
		{"", false},
	}
	for _, tt := range tests {
		args := DefaultTrainingArguments()
		args.EarlystopMetric = tt.metric
		err := args.Validate()
		if tt.valid {
			assert.NoError(t, err, tt.metric)
			continue
		}
		require.Error(t, err, tt.metric)
		assert.Equal(t, []string{"earlystop_metric"}, commonerrors.CauseFields(err), tt.metric)
	}

	args := DefaultTrainingArguments()
	args.Metrics = nil
	err := args.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{"metrics", "earlystop_metric"}, commonerrors.CauseFields(err))
}

func TestParseEarlystopMetric(t *testing.T) {
	name, k, err := ParseEarlystopMetric("ndcg@5")
	require.NoError(t, err)
	assert.Equal(t, "ndcg", name)
	assert.Equal(t, 5, k)

	name, k, err = ParseEarlystopMetric("auc")
	require.NoError(t, err)
	assert.Equal(t, "auc", name)
	assert.Equal(t, 0, k)

	_, _, err = ParseEarlystopMetric("ndcg@-1")
	assert.Error(t, err)
}

func TestTrainingArgumentsAddFlags(t *testing.T) {
	args := DefaultTrainingArguments()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	args.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"--train_batch_size=1024",
		"--evaluation_strategy=step",
		"--cutoffs=10,20",
		"--metrics=recall",
		"--earlystop_metric=recall@20",
		"--earlystop_metric_mode=min",
		"--checkpoint_steps=0",
	}))
	assert.Equal(t, 1024, args.TrainBatchSize)
	assert.Equal(t, StrategyStep, args.EvaluationStrategy)
	assert.Equal(t, []int{10, 20}, args.Cutoffs)
	assert.Equal(t, []string{"recall"}, args.Metrics)
	assert.Equal(t, 0, args.CheckpointSteps)
	assert.NoError(t, args.Validate())
}
