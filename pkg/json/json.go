/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package json

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	commonerrors "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/errors"
)

func UnmarshalWithCheck(data []byte, v interface{}) error {
	d := json.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	if err := d.Decode(v); err != nil {
		return err
	}
	return nil
}

func MarshalSilently(v interface{}) []byte {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}

// DecodeFromMapWithCheck decodes a generic mapping into targetObject through JSON,
// rejecting keys the target does not declare.
func DecodeFromMapWithCheck(data interface{}, targetObject interface{}) error {
	jsonByte, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return UnmarshalWithCheck(jsonByte, targetObject)
}

// IsYamlFile reports whether path carries a YAML extension.
func IsYamlFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// ReadFile reads a JSON object from path, or a YAML one when the extension says so.
// A missing file yields a FileNotFound error.
func ReadFile(fs afero.Fs, path string) (map[string]interface{}, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, commonerrors.NewFileNotFound(path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	if IsYamlFile(path) {
		if data, err = yaml.YAMLToJSON(data); err != nil {
			return nil, errors.Wrapf(err, "failed to convert %s to json", path)
		}
	}
	result := make(map[string]interface{})
	if err = json.Unmarshal(data, &result); err != nil {
		return nil, commonerrors.NewBadRequest(errors.Wrapf(err, "failed to parse %s", path).Error())
	}
	return result, nil
}
