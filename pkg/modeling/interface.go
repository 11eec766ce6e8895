/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package modeling

import (
	"context"
)

// Tensor is a dense row-major array handed across the framework boundary.
type Tensor struct {
	Shape []int
	Data  []float32
}

// Batch maps input names produced by the data collator to their tensors.
type Batch map[string]Tensor

// Output is returned by Model.Forward.
type Output struct {
	Loss        float64
	Scores      Tensor
	QueryReps   Tensor
	PassageReps Tensor
}

// Model is the contract every trainable embedder or reranker fulfils.
type Model interface {
	ComputeLoss(scores, target Tensor) (float64, error)
	ComputeScore(queryReps, passageReps Tensor) (Tensor, error)
	Save(outputDir string) error
	Forward(ctx context.Context, batch Batch) (*Output, error)
}

