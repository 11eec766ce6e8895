/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package arguments

import (
	"time"

	"github.com/spf13/afero"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"

	commonerrors "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/errors"
	jsonutils "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/json"
	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/maps"
	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/slice"
	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/stringutil"
	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/timeutil"
)

// DateRangeSettings is a train or test split. Keys other than the two dates are kept in Extra.
type DateRangeSettings struct {
	StartDate time.Time
	EndDate   time.Time
	Extra     map[string]interface{}
}

// DataArguments is the user-facing dataset configuration.
type DataArguments struct {
	Name            string
	Type            string
	URL             string
	Labels          []string
	Stats           map[string]interface{}
	ItemCol         string
	ContextFeatures []string
	ItemFeatures    []string

	TrainSettings *DateRangeSettings
	TestSettings  *DateRangeSettings

	FileFormat         string
	DateFormat         string
	UserSequentialInfo map[string]interface{}
	PostProcess        map[string]interface{}
	FilterSettings     map[string]interface{}
	ItemInfo           map[string]interface{}
	SeqFeatures        []string
}

// DataArgumentsFromJSON loads a data config from the local filesystem.
func DataArgumentsFromJSON(path string) (*DataArguments, error) {
	return DataArgumentsFromFile(afero.NewOsFs(), path)
}

// DataArgumentsFromFile loads a JSON data config, or a YAML one when path ends in .yaml or .yml.
func DataArgumentsFromFile(fs afero.Fs, path string) (*DataArguments, error) {
	raw, err := jsonutils.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	klog.V(4).Infof("loaded data config from %s", path)
	return DataArgumentsFromMap(raw)
}

// DataArgumentsFromMap merges raw over DefaultDataConfig, then validates and normalizes the result.
// raw is not modified.
func DataArgumentsFromMap(raw map[string]interface{}) (*DataArguments, error) {
	merged := maps.MergeNested(DefaultDataConfig(), raw)

	if missing := maps.MissingPaths(merged, RequiredDataConfig); len(missing) > 0 {
		return nil, commonerrors.NewMissingConfigurationKey(dataConfigKind, missing)
	}

	r := newMapReader(merged, nil)
	d := &DataArguments{
		Name:               r.str(KeyName),
		Type:               r.str(KeyType),
		URL:                r.str(KeyURL),
		Labels:             r.strings(KeyLabels),
		Stats:              r.mapping(KeyStats),
		ItemCol:            r.str(KeyItemCol),
		ContextFeatures:    r.strings(KeyContextFeatures),
		ItemFeatures:       r.strings(KeyItemFeatures),
		FileFormat:         r.strOr(KeyFileFormat, DefaultFileFormat),
		DateFormat:         r.strOr(KeyDateFormat, DefaultDateFormat),
		UserSequentialInfo: r.mapping(KeyUserSequentialInfo),
		PostProcess:        r.mapping(KeyPostProcess),
		FilterSettings:     r.mapping(KeyFilterSettings),
		ItemInfo:           r.mapping(KeyItemInfo),
		SeqFeatures:        r.strings(KeySeqFeatures),
	}
	if err := timeutil.ValidateFormat(d.DateFormat); err != nil {
		r.errs = append(r.errs, field.Invalid(field.NewPath(KeyDateFormat), d.DateFormat, err.Error()))
	}
	if cols, ok := d.UserSequentialInfo[KeyUseCols]; ok && cols != nil {
		if _, ok = toStringSlice(cols); !ok {
			r.errs = append(r.errs, field.Invalid(
				field.NewPath(KeyUserSequentialInfo).Child(KeyUseCols), cols, "must be a list of strings"))
		}
	}
	trainRaw := r.mapping(KeyTrainSettings)
	testRaw := r.mapping(KeyTestSettings)
	if len(r.errs) > 0 {
		return nil, commonerrors.NewInvalidConfiguration(dataConfigKind, r.errs)
	}

	var badDates []string
	d.TrainSettings = parseDateRange(KeyTrainSettings, trainRaw, d.DateFormat, &badDates)
	d.TestSettings = parseDateRange(KeyTestSettings, testRaw, d.DateFormat, &badDates)
	if len(badDates) > 0 {
		return nil, commonerrors.NewDateFormatError(dataConfigKind, d.DateFormat, badDates)
	}

	d.Normalize()
	if v := klog.V(4); v.Enabled() {
		v.Infof("data config %s normalized: %s", d.Name, string(jsonutils.MarshalSilently(d.ToMap())))
	}
	return d, nil
}

func parseDateRange(name string, raw map[string]interface{}, format string, badDates *[]string) *DateRangeSettings {
	settings := &DateRangeSettings{}
	for key, val := range raw {
		if key == KeyStartDate || key == KeyEndDate {
			continue
		}
		if settings.Extra == nil {
			settings.Extra = make(map[string]interface{})
		}
		settings.Extra[key] = val
	}
	for _, key := range dateKeys {
		var (
			t   time.Time
			ok  bool
			err error
		)
		if s, isString := raw[key].(string); isString {
			t, err = timeutil.ParseWithStrftime(s, format)
			ok = err == nil
		} else {
			t, ok = toTime(raw[key])
		}
		if !ok {
			*badDates = append(*badDates, name+maps.PathSeparator+key)
			continue
		}
		if key == KeyStartDate {
			settings.StartDate = t
		} else {
			settings.EndDate = t
		}
	}
	return settings
}

// Normalize trims feature names and takes seq_features from user_sequential_info.use_cols when present.
// Applying it more than once has no further effect.
func (d *DataArguments) Normalize() {
	d.ContextFeatures = stringutil.TrimEach(d.ContextFeatures)
	d.ItemFeatures = stringutil.TrimEach(d.ItemFeatures)
	if cols, ok := d.UserSequentialInfo[KeyUseCols]; ok {
		if seq, ok := toStringSlice(cols); ok {
			d.SeqFeatures = stringutil.TrimEach(seq)
		}
	}
}

// ToMap is the inverse of DataArgumentsFromMap; dates are rendered with DateFormat.
func (d *DataArguments) ToMap() map[string]interface{} {
	return map[string]interface{}{
		KeyName:               d.Name,
		KeyType:               d.Type,
		KeyURL:                d.URL,
		KeyLabels:             slice.Copy(d.Labels),
		KeyStats:              maps.DeepCopy(d.Stats),
		KeyItemCol:            d.ItemCol,
		KeyContextFeatures:    slice.Copy(d.ContextFeatures),
		KeyItemFeatures:       slice.Copy(d.ItemFeatures),
		KeyTrainSettings:      d.TrainSettings.toMap(d.DateFormat),
		KeyTestSettings:       d.TestSettings.toMap(d.DateFormat),
		KeyFileFormat:         d.FileFormat,
		KeyDateFormat:         d.DateFormat,
		KeyUserSequentialInfo: nullable(d.UserSequentialInfo),
		KeyPostProcess:        nullable(d.PostProcess),
		KeyFilterSettings:     nullable(d.FilterSettings),
		KeyItemInfo:           nullable(d.ItemInfo),
		KeySeqFeatures:        slice.Copy(d.SeqFeatures),
	}
}

func (s *DateRangeSettings) toMap(format string) map[string]interface{} {
	if s == nil {
		return nil
	}
	result := maps.DeepCopy(s.Extra)
	if result == nil {
		result = make(map[string]interface{}, len(dateKeys))
	}
	for key, t := range map[string]time.Time{KeyStartDate: s.StartDate, KeyEndDate: s.EndDate} {
		if str, err := timeutil.FormatWithStrftime(t, format); err == nil {
			result[key] = str
		} else {
			result[key] = t
		}
	}
	return result
}

// nullable keeps absent optional sections as an untyped nil in the mapping.
func nullable(m map[string]interface{}) interface{} {
	if m == nil {
		return nil
	}
	return maps.DeepCopy(m)
}
