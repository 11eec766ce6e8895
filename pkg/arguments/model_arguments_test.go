/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package arguments

import (
	"encoding/json"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/errors"
)

func TestDefaultModelArguments(t *testing.T) {
	args := DefaultModelArguments()
	assert.Equal(t, 10, args.EmbeddingDim)
	assert.Equal(t, []int{}, args.MLPLayers)
	assert.Equal(t, 50, args.NumNeg)
	assert.Equal(t, "relu", args.Activation)
	assert.Equal(t, 0.3, args.Dropout)
	assert.True(t, args.BatchNorm)
	assert.Nil(t, args.DataConfig)
	assert.NoError(t, args.Validate())
	assert.Same(t, args, args.Base())

	reranker := DefaultRerankerModelArguments()
	assert.Equal(t, []int{}, reranker.PredictionLayers)
	assert.Equal(t, 10, reranker.EmbeddingDim)
	assert.Same(t, &reranker.ModelArguments, reranker.Base())
	assert.NoError(t, reranker.Validate())
}

func TestModelArgumentsValidate(t *testing.T) {
	args := DefaultModelArguments()
	args.EmbeddingDim = 0
	args.MLPLayers = []int{128, 0}
	args.NumNeg = -1
	args.Activation = "swishy"
	args.Dropout = 1.5
	err := args.Validate()
	require.Error(t, err)
	assert.True(t, commonerrors.IsInvalidConfiguration(err))
	assert.Equal(t, []string{"embedding_dim", "mlp_layers[1]", "num_neg", "activation", "dropout"},
		commonerrors.CauseFields(err))

	for _, dropout := range []float64{0, 1} {
		args = DefaultModelArguments()
		args.Dropout = dropout
		assert.NoError(t, args.Validate())
	}
	for _, activation := range SupportedActivations {
		args = DefaultModelArguments()
		args.Activation = activation
		assert.NoError(t, args.Validate())
	}
}

func TestModelArgumentsDataConfig(t *testing.T) {
	args := DefaultModelArguments()
	args.DataConfig = newTestDataAttr()
	assert.NoError(t, args.Validate())

	args.DataConfig.NumItems = -1
	err := args.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{"data_config/num_items"}, commonerrors.CauseFields(err))
}

func TestRerankerModelArgumentsValidate(t *testing.T) {
	args := DefaultRerankerModelArguments()
	args.Activation = "softmax"
	args.PredictionLayers = []int{64, -1}
	err := args.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{"activation", "prediction_layers[1]"}, commonerrors.CauseFields(err))

	var config ModelConfig = args
	assert.Error(t, config.Validate())
}

func TestModelArgumentsJSON(t *testing.T) {
	args := DefaultRerankerModelArguments()
	args.ModelName = "din"
	args.PredictionLayers = []int{64}
	args.DataConfig = newTestDataAttr()
	data, err := json.Marshal(args)
	require.NoError(t, err)

	decoded := &RerankerModelArguments{}
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, "din", decoded.ModelName)
	assert.Equal(t, []int{64}, decoded.PredictionLayers)
	n, ok := decoded.DataConfig.Stats.GetInt("item_id")
	assert.True(t, ok)
	assert.Equal(t, 1682, n)
}

func TestModelArgumentsAddFlags(t *testing.T) {
	args := DefaultRerankerModelArguments()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	args.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"--model_name=din",
		"--embedding_dim=64",
		"--mlp_layers=256,128",
		"--prediction_layers=32",
		"--activation=tanh",
		"--dropout=0.1",
		"--batch_norm=false",
	}))
	assert.Equal(t, "din", args.ModelName)
	assert.Equal(t, 64, args.EmbeddingDim)
	assert.Equal(t, []int{256, 128}, args.MLPLayers)
	assert.Equal(t, []int{32}, args.PredictionLayers)
	assert.Equal(t, "tanh", args.Activation)
	assert.Equal(t, 0.1, args.Dropout)
	assert.False(t, args.BatchNorm)
	assert.Equal(t, 50, args.NumNeg)
	assert.NoError(t, args.Validate())
}
