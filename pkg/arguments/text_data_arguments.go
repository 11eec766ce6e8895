/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package arguments

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/util/validation/field"

	commonerrors "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/errors"
)

// TextDataArguments points a text-retrieval embedder at its training files.
type TextDataArguments struct {
	// each file holds query, pos and neg records
	TrainData []string `json:"train_data"`
	CachePath string   `json:"cache_path,omitempty"`
}

func (a *TextDataArguments) AddFlags(fs *pflag.FlagSet) {
	fs.StringSliceVar(&a.TrainData, "train_data", a.TrainData,
		"One or more paths to training data. query, pos and neg are required in the training data.")
	fs.StringVar(&a.CachePath, "cache_path", a.CachePath, "Where do you want to store the cached data")
}

// Validate checks the training files on the local filesystem.
func (a *TextDataArguments) Validate() error {
	return a.ValidateFs(afero.NewOsFs())
}

// ValidateFs fails with FileNotFound naming every train_data path that does not exist.
func (a *TextDataArguments) ValidateFs(fs afero.Fs) error {
	if len(a.TrainData) == 0 {
		return commonerrors.NewInvalidConfiguration("TextDataArguments", field.ErrorList{
			field.Required(field.NewPath("train_data"), "at least one training data path is required"),
		})
	}
	var missing []string
	for _, path := range a.TrainData {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return errors.Wrapf(err, "failed to stat %s", path)
		}
		if !exists {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return commonerrors.NewFileNotFound(missing...)
	}
	return nil
}
