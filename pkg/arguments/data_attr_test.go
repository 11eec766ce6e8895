/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package arguments

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/errors"
)

func newTestDataAttr() *DataAttr4Model {
	return &DataAttr4Model{
		FIID:            "item_id",
		FLabels:         []string{"rating"},
		Features:        []string{"user_id", "item_id", "genre", "history"},
		ContextFeatures: []string{"user_id"},
		ItemFeatures:    []string{"item_id", "genre"},
		SeqFeatures:     []string{"history"},
		NumItems:        1682,
		Stats:           StatisticsFromMap(map[string]interface{}{"item_id": 1682, "user_id": 943}),
	}
}

func TestDataAttr4ModelRoundTrip(t *testing.T) {
	attrs := []*DataAttr4Model{
		newTestDataAttr(),
		{FIID: "iid", NumItems: 0},
		{FIID: "iid", Stats: NewStatistics()},
	}
	for _, attr := range attrs {
		decoded, err := DataAttr4ModelFromMap(attr.ToMap())
		require.NoError(t, err)
		assert.Equal(t, attr, decoded)
	}
}

func TestDataAttr4ModelToMap(t *testing.T) {
	attr := newTestDataAttr()
	m := attr.ToMap()
	assert.Equal(t, "item_id", m[KeyFIID])
	assert.Equal(t, map[string]interface{}{"item_id": 1682, "user_id": 943}, m[KeyStats])
	assert.Equal(t, 1682, m[KeyNumItems])

	// the mapping does not alias the record
	m[KeyFeatures].([]string)[0] = "changed"
	assert.Equal(t, "user_id", attr.Features[0])
}

func TestDataAttr4ModelFromJSONMap(t *testing.T) {
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"fiid": "item_id", "flabels": ["rating"], "features": ["user_id", "item_id"],
		"context_features": ["user_id"], "item_features": ["item_id"], "seq_features": [],
		"num_items": 1682, "stats": {" item_id ": 1682}
	}`), &raw))
	attr, err := DataAttr4ModelFromMap(raw)
	require.NoError(t, err)
	assert.Equal(t, 1682, attr.NumItems)
	assert.Equal(t, []string{}, attr.SeqFeatures)
	n, ok := attr.Stats.GetInt("item_id")
	assert.True(t, ok)
	assert.Equal(t, 1682, n)
	assert.NoError(t, attr.Validate())
}

func TestDataAttr4ModelMissingFields(t *testing.T) {
	raw := newTestDataAttr().ToMap()
	delete(raw, KeyFIID)
	delete(raw, KeyStats)
	_, err := DataAttr4ModelFromMap(raw)
	require.Error(t, err)
	assert.True(t, commonerrors.IsConstructionError(err))
	assert.Equal(t, []string{KeyFIID, KeyStats}, commonerrors.CauseFields(err))
}

func TestDataAttr4ModelWrongTypes(t *testing.T) {
	raw := newTestDataAttr().ToMap()
	raw[KeyNumItems] = "many"
	raw[KeyFLabels] = []interface{}{"rating", 1}
	raw[KeyStats] = "none"
	_, err := DataAttr4ModelFromMap(raw)
	require.Error(t, err)
	assert.True(t, commonerrors.IsInvalidConfiguration(err))
	assert.ElementsMatch(t, []string{KeyNumItems, KeyFLabels, KeyStats}, commonerrors.CauseFields(err))
}

func TestDataAttr4ModelIntegerRange(t *testing.T) {
	for _, v := range []float64{1e300, -1e300, 9223372036854775808} {
		raw := newTestDataAttr().ToMap()
		raw[KeyNumItems] = v
		_, err := DataAttr4ModelFromMap(raw)
		require.Error(t, err, v)
		assert.True(t, commonerrors.IsInvalidConfiguration(err))
		assert.Equal(t, []string{KeyNumItems}, commonerrors.CauseFields(err))
	}

	data, err := DataArgumentsFromMap(newTestDataConfig())
	require.NoError(t, err)
	data.Stats["item_id"] = 1e300
	assert.Equal(t, 0, NewDataAttr4Model(data).NumItems)
}

func TestDataAttr4ModelValidate(t *testing.T) {
	assert.NoError(t, newTestDataAttr().Validate())

	attr := newTestDataAttr()
	attr.Features = []string{"user_id", "item_id"}
	attr.NumItems = -1
	attr.FIID = ""
	err := attr.Validate()
	require.Error(t, err)
	assert.True(t, commonerrors.IsInvalidConfiguration(err))
	assert.Equal(t, []string{KeyFIID, KeyItemFeatures, KeySeqFeatures, KeyNumItems}, commonerrors.CauseFields(err))
}

func TestNewDataAttr4Model(t *testing.T) {
	data, err := DataArgumentsFromMap(newTestDataConfig())
	require.NoError(t, err)

	attr := NewDataAttr4Model(data)
	assert.Equal(t, "item_id", attr.FIID)
	assert.Equal(t, []string{"rating"}, attr.FLabels)
	assert.Equal(t, []string{"user_id", "age", "item_id", "genre", "history"}, attr.Features)
	assert.Equal(t, []string{"history"}, attr.SeqFeatures)
	assert.Equal(t, 1682, attr.NumItems)
	assert.Equal(t, 2, attr.Stats.Len())
	assert.NoError(t, attr.Validate())

	// derived values do not alias the data arguments
	attr.FLabels[0] = "click"
	assert.Equal(t, "rating", data.Labels[0])
}
