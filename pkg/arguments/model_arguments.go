/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package arguments

import (
	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/util/validation/field"

	commonerrors "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/errors"
	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/slice"
)

// ModelConfig is implemented by ModelArguments and every struct embedding it.
type ModelConfig interface {
	Base() *ModelArguments
	Validate() error
}

type ModelArguments struct {
	// key in the model registry
	ModelName       string          `json:"model_name,omitempty"`
	ModelNameOrPath string          `json:"model_name_or_path,omitempty"`
	DataConfig      *DataAttr4Model `json:"data_config,omitempty"`
	EmbeddingDim    int             `json:"embedding_dim"`
	MLPLayers       []int           `json:"mlp_layers"`
	NumNeg          int             `json:"num_neg"`
	Activation      string          `json:"activation"`
	Dropout         float64         `json:"dropout"`
	BatchNorm       bool            `json:"batch_norm"`
}

func DefaultModelArguments() *ModelArguments {
	return &ModelArguments{
		EmbeddingDim: 10,
		MLPLayers:    []int{},
		NumNeg:       50,
		Activation:   "relu",
		Dropout:      0.3,
		BatchNorm:    true,
	}
}

func (a *ModelArguments) Base() *ModelArguments {
	return a
}

func (a *ModelArguments) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.ModelName, "model_name", a.ModelName, "Name of the registered model to train")
	fs.StringVar(&a.ModelNameOrPath, "model_name_or_path", a.ModelNameOrPath, "The model checkpoint for initialization")
	fs.IntVar(&a.EmbeddingDim, "embedding_dim", a.EmbeddingDim, "Dimension of feature embeddings")
	fs.IntSliceVar(&a.MLPLayers, "mlp_layers", a.MLPLayers, "Hidden layer widths of the MLP tower")
	fs.IntVar(&a.NumNeg, "num_neg", a.NumNeg, "Number of negative items sampled per positive")
	fs.StringVar(&a.Activation, "activation", a.Activation, "Activation function of hidden layers")
	fs.Float64Var(&a.Dropout, "dropout", a.Dropout, "Dropout rate, in [0, 1]")
	fs.BoolVar(&a.BatchNorm, "batch_norm", a.BatchNorm, "Whether to apply batch normalization")
}

func (a *ModelArguments) Validate() error {
	if errs := a.validate(); len(errs) > 0 {
		return commonerrors.NewInvalidConfiguration("ModelArguments", errs)
	}
	return nil
}

func (a *ModelArguments) validate() field.ErrorList {
	var errs field.ErrorList
	if a.EmbeddingDim <= 0 {
		errs = append(errs, field.Invalid(field.NewPath("embedding_dim"), a.EmbeddingDim, "must be greater than 0"))
	}
	errs = append(errs, validateLayers(field.NewPath("mlp_layers"), a.MLPLayers)...)
	if a.NumNeg < 0 {
		errs = append(errs, field.Invalid(field.NewPath("num_neg"), a.NumNeg, "must be greater than or equal to 0"))
	}
	if !slice.ContainsString(SupportedActivations, a.Activation) {
		errs = append(errs, field.NotSupported(field.NewPath("activation"), a.Activation, SupportedActivations))
	}
	if a.Dropout < 0 || a.Dropout > 1 {
		errs = append(errs, field.Invalid(field.NewPath("dropout"), a.Dropout, "must be in [0, 1]"))
	}
	if a.DataConfig != nil {
		errs = append(errs, a.DataConfig.validate(field.NewPath("data_config"))...)
	}
	return errs
}

func validateLayers(path *field.Path, layers []int) field.ErrorList {
	var errs field.ErrorList
	for i, width := range layers {
		if width <= 0 {
			errs = append(errs, field.Invalid(path.Index(i), width, "must be greater than 0"))
		}
	}
	return errs
}

// RerankerModelArguments adds the prediction head of a reranker.
type RerankerModelArguments struct {
	ModelArguments
	PredictionLayers []int `json:"prediction_layers"`
}

func DefaultRerankerModelArguments() *RerankerModelArguments {
	return &RerankerModelArguments{
		ModelArguments:   *DefaultModelArguments(),
		PredictionLayers: []int{},
	}
}

func (a *RerankerModelArguments) AddFlags(fs *pflag.FlagSet) {
	a.ModelArguments.AddFlags(fs)
	fs.IntSliceVar(&a.PredictionLayers, "prediction_layers", a.PredictionLayers, "Hidden layer widths of the prediction head")
}

func (a *RerankerModelArguments) Validate() error {
	errs := a.ModelArguments.validate()
	errs = append(errs, validateLayers(field.NewPath("prediction_layers"), a.PredictionLayers)...)
	if len(errs) > 0 {
		return commonerrors.NewInvalidConfiguration("RerankerModelArguments", errs)
	}
	return nil
}
