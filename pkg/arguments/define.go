/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package arguments

import (
	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/timeutil"
)

// data config keys
const (
	KeyName               = "name"
	KeyType               = "type"
	KeyURL                = "url"
	KeyLabels             = "labels"
	KeyStats              = "stats"
	KeyItemCol            = "item_col"
	KeyContextFeatures    = "context_features"
	KeyItemFeatures       = "item_features"
	KeySeqFeatures        = "seq_features"
	KeyTrainSettings      = "train_settings"
	KeyTestSettings       = "test_settings"
	KeyStartDate          = "start_date"
	KeyEndDate            = "end_date"
	KeyFileFormat         = "file_format"
	KeyDateFormat         = "date_format"
	KeyUserSequentialInfo = "user_sequential_info"
	KeyUseCols            = "use_cols"
	KeyPostProcess        = "post_process"
	KeyFilterSettings     = "filter_settings"
	KeyItemInfo           = "item_info"
)

// DataAttr4Model keys
const (
	KeyFIID     = "fiid"
	KeyFLabels  = "flabels"
	KeyFeatures = "features"
	KeyNumItems = "num_items"
)

const (
	DefaultFileFormat = "auto"
	DefaultDateFormat = timeutil.DefaultDateFormat

	dataConfigKind = "data config"
)

// RequiredDataConfig lists the slash separated paths every data config must carry.
var RequiredDataConfig = []string{
	KeyName,
	KeyType,
	KeyURL,
	KeyLabels,
	KeyStats,
	KeyItemCol,
	KeyContextFeatures,
	KeyItemFeatures,
	KeyTrainSettings + "/" + KeyStartDate,
	KeyTrainSettings + "/" + KeyEndDate,
	KeyTestSettings + "/" + KeyStartDate,
	KeyTestSettings + "/" + KeyEndDate,
}

var dateKeys = []string{KeyStartDate, KeyEndDate}

// DefaultDataConfig returns a fresh copy of the defaults merged under every data config.
func DefaultDataConfig() map[string]interface{} {
	return map[string]interface{}{
		KeyFileFormat:         DefaultFileFormat,
		KeyDateFormat:         DefaultDateFormat,
		KeyUserSequentialInfo: nil,
		KeyPostProcess:        nil,
		KeyFilterSettings:     nil,
		KeyItemInfo:           nil,
	}
}

// model and training enumerations
const (
	StrategyEpoch = "epoch"
	StrategyStep  = "step"

	MetricModeMax = "max"
	MetricModeMin = "min"
)

var (
	SupportedActivations = []string{"relu", "sigmoid", "tanh", "leakyrelu", "gelu", "dice", "prelu", "swish", "identity"}
	SupportedStrategies  = []string{StrategyEpoch, StrategyStep}
	SupportedMetricModes = []string{MetricModeMax, MetricModeMin}
)
