/*
 * Copyright (C) 2025-2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package config

const (
	// environment variables override keys, e.g. UNIRETRIEVAL_LOG_LEVEL for log.level
	envPrefix = "UNIRETRIEVAL"

	// log
	logPrefix = "log."
	logLevel  = logPrefix + "level"
	logFormat = logPrefix + "format"

	// data
	dataPrefix     = "data."
	dataConfigPath = dataPrefix + "config_path"

	// args
	argsPrefix   = "args."
	argsFilePath = argsPrefix + "file_path"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)
