/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package cmd

import (
	"encoding/json"
	"io"

	"sigs.k8s.io/yaml"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func printObject(w io.Writer, format string, obj interface{}) error {
	var (
		data []byte
		err  error
	)
	if format == outputYAML {
		data, err = yaml.Marshal(obj)
	} else {
		data, err = json.MarshalIndent(obj, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
