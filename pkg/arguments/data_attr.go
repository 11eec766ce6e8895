/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package arguments

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	commonerrors "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/errors"
	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/slice"
)

const dataAttrKind = "DataAttr4Model"

// DataAttr4Model describes the dataset schema a model is built against.
type DataAttr4Model struct {
	// item-id field name
	FIID            string   `json:"fiid"`
	FLabels         []string `json:"flabels"`
	Features        []string `json:"features"`
	ContextFeatures []string `json:"context_features"`
	ItemFeatures    []string `json:"item_features"`
	SeqFeatures     []string `json:"seq_features"`
	// number of candidate items, not the maximum item id
	NumItems int         `json:"num_items"`
	Stats    *Statistics `json:"stats"`
}

var dataAttrKeys = []string{
	KeyFIID, KeyFLabels, KeyFeatures, KeyContextFeatures, KeyItemFeatures, KeySeqFeatures, KeyNumItems, KeyStats,
}

// NewDataAttr4Model derives the model schema from validated data arguments.
func NewDataAttr4Model(data *DataArguments) *DataAttr4Model {
	stats := StatisticsFromMap(data.Stats)
	numItems, _ := stats.GetInt(data.ItemCol)
	return &DataAttr4Model{
		FIID:            data.ItemCol,
		FLabels:         slice.Copy(data.Labels),
		Features:        slice.Union(data.ContextFeatures, data.ItemFeatures, data.SeqFeatures),
		ContextFeatures: slice.Copy(data.ContextFeatures),
		ItemFeatures:    slice.Copy(data.ItemFeatures),
		SeqFeatures:     slice.Copy(data.SeqFeatures),
		NumItems:        numItems,
		Stats:           stats,
	}
}

// DataAttr4ModelFromMap builds the schema from a plain mapping. Every field must be present.
func DataAttr4ModelFromMap(raw map[string]interface{}) (*DataAttr4Model, error) {
	r := newMapReader(raw, nil)
	var missing []string
	for _, key := range dataAttrKeys {
		if !r.has(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, commonerrors.NewConstructionError(dataAttrKind, missing)
	}

	attr := &DataAttr4Model{
		FIID:            r.str(KeyFIID),
		FLabels:         r.strings(KeyFLabels),
		Features:        r.strings(KeyFeatures),
		ContextFeatures: r.strings(KeyContextFeatures),
		ItemFeatures:    r.strings(KeyItemFeatures),
		SeqFeatures:     r.strings(KeySeqFeatures),
		NumItems:        r.integer(KeyNumItems),
	}
	switch stats := raw[KeyStats].(type) {
	case nil:
	case map[string]interface{}:
		attr.Stats = StatisticsFromMap(stats)
	case *Statistics:
		attr.Stats = StatisticsFromMap(stats.ToMap())
	default:
		r.errs = append(r.errs, field.Invalid(field.NewPath(KeyStats), stats, "must be a mapping"))
	}
	if len(r.errs) > 0 {
		return nil, commonerrors.NewInvalidConfiguration(dataAttrKind, r.errs)
	}
	return attr, nil
}

// ToMap mirrors every field; stats is flattened into its plain mapping.
func (a *DataAttr4Model) ToMap() map[string]interface{} {
	var stats interface{}
	if a.Stats != nil {
		stats = a.Stats.ToMap()
	}
	return map[string]interface{}{
		KeyFIID:            a.FIID,
		KeyFLabels:         slice.Copy(a.FLabels),
		KeyFeatures:        slice.Copy(a.Features),
		KeyContextFeatures: slice.Copy(a.ContextFeatures),
		KeyItemFeatures:    slice.Copy(a.ItemFeatures),
		KeySeqFeatures:     slice.Copy(a.SeqFeatures),
		KeyNumItems:        a.NumItems,
		KeyStats:           stats,
	}
}

// Validate checks that every grouped feature is listed in features and that num_items is not negative.
func (a *DataAttr4Model) Validate() error {
	if errs := a.validate(nil); len(errs) > 0 {
		return commonerrors.NewInvalidConfiguration(dataAttrKind, errs)
	}
	return nil
}

func (a *DataAttr4Model) validate(path *field.Path) field.ErrorList {
	var errs field.ErrorList
	child := func(key string) *field.Path {
		if path == nil {
			return field.NewPath(key)
		}
		return path.Child(key)
	}
	if a.FIID == "" {
		errs = append(errs, field.Required(child(KeyFIID), "item id field must be set"))
	}
	groups := []struct {
		key      string
		features []string
	}{
		{KeyContextFeatures, a.ContextFeatures},
		{KeyItemFeatures, a.ItemFeatures},
		{KeySeqFeatures, a.SeqFeatures},
	}
	for _, g := range groups {
		for _, name := range slice.NotIn(g.features, a.Features) {
			errs = append(errs, field.Invalid(child(g.key), name, "feature is not listed in features"))
		}
	}
	if a.NumItems < 0 {
		errs = append(errs, field.Invalid(child(KeyNumItems), a.NumItems, "must be greater than or equal to 0"))
	}
	return errs
}
