/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package errors

import (
	goerrors "errors"
	"fmt"
	"net/http"
	"strings"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

const PrimusPrefix = "Primus."

/*
   5-digit Error Code Convention: [xx][yyy]
   [xx] Business ID (00–99), used to distinguish errors from different business interfaces.
   00: General errors
   04: Configuration-related errors
   [yyy] Error code range (000–999)
*/

// public: 00xxx
const (
	BadRequest = PrimusPrefix + "00002"
)

// configuration: 04xxx
const (
	MissingConfigurationKey = PrimusPrefix + "04001"
	DateFormatError         = PrimusPrefix + "04002"
	FileNotFound            = PrimusPrefix + "04003"
	ConstructionError       = PrimusPrefix + "04004"
	InvalidConfiguration    = PrimusPrefix + "04005"
)

// returns true if the specified error reason is primus error.
func IsPrimus(err error) bool {
	if err == nil {
		return false
	}
	return strings.HasPrefix(string(apierrors.ReasonForError(err)), PrimusPrefix)
}

func IsMissingConfigurationKey(err error) bool {
	return apierrors.ReasonForError(err) == MissingConfigurationKey
}

func IsDateFormatError(err error) bool {
	return apierrors.ReasonForError(err) == DateFormatError
}

func IsFileNotFound(err error) bool {
	return apierrors.ReasonForError(err) == FileNotFound
}

func IsConstructionError(err error) bool {
	return apierrors.ReasonForError(err) == ConstructionError
}

func IsInvalidConfiguration(err error) bool {
	return apierrors.ReasonForError(err) == InvalidConfiguration
}

func GetErrorCode(err error) string {
	if err == nil || !IsPrimus(err) {
		return ""
	}
	return string(apierrors.ReasonForError(err))
}

// CauseFields returns the field paths recorded on a primus status error, in order.
// Nested keys are always joined with "/", e.g. "train_settings/start_date";
// list elements keep their index suffix, e.g. "mlp_layers[1]".
func CauseFields(err error) []string {
	var status apierrors.APIStatus
	if !goerrors.As(err, &status) {
		return nil
	}
	details := status.Status().Details
	if details == nil {
		return nil
	}
	var result []string
	for _, cause := range details.Causes {
		result = append(result, cause.Field)
	}
	return result
}

func NewBadRequest(message string) *apierrors.StatusError {
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status:  metav1.StatusFailure,
		Code:    http.StatusBadRequest,
		Reason:  BadRequest,
		Message: fmt.Sprintf("Bad request. %s", message),
	}}
}

// NewMissingConfigurationKey reports every absent key of kind in a single error.
func NewMissingConfigurationKey(kind string, keys []string) *apierrors.StatusError {
	causes := make([]metav1.StatusCause, 0, len(keys))
	for _, key := range keys {
		causes = append(causes, metav1.StatusCause{
			Type:    metav1.CauseTypeFieldValueRequired,
			Message: "Required value",
			Field:   key,
		})
	}
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status: metav1.StatusFailure,
		Code:   http.StatusBadRequest,
		Reason: MissingConfigurationKey,
		Details: &metav1.StatusDetails{
			Kind:   kind,
			Causes: causes,
		},
		Message: fmt.Sprintf("Missing required keys in %s: [%s]", kind, strings.Join(keys, ", ")),
	}}
}

// NewDateFormatError reports the keys whose values do not match format.
func NewDateFormatError(kind, format string, keys []string) *apierrors.StatusError {
	causes := make([]metav1.StatusCause, 0, len(keys))
	for _, key := range keys {
		causes = append(causes, metav1.StatusCause{
			Type:    metav1.CauseTypeFieldValueInvalid,
			Message: fmt.Sprintf("does not match format %q", format),
			Field:   key,
		})
	}
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status: metav1.StatusFailure,
		Code:   http.StatusBadRequest,
		Reason: DateFormatError,
		Details: &metav1.StatusDetails{
			Kind:   kind,
			Causes: causes,
		},
		Message: fmt.Sprintf("Invalid date in %s: [%s] do not match format %q",
			kind, strings.Join(keys, ", "), format),
	}}
}

func NewFileNotFound(paths ...string) *apierrors.StatusError {
	causes := make([]metav1.StatusCause, 0, len(paths))
	for _, path := range paths {
		causes = append(causes, metav1.StatusCause{
			Type:    metav1.CauseTypeFieldValueNotFound,
			Message: "file does not exist",
			Field:   path,
		})
	}
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status: metav1.StatusFailure,
		Code:   http.StatusNotFound,
		Reason: FileNotFound,
		Details: &metav1.StatusDetails{
			Name:   strings.Join(paths, ","),
			Causes: causes,
		},
		Message: fmt.Sprintf("cannot find file: %s, please set a true path", strings.Join(paths, ", ")),
	}}
}

// NewConstructionError reports the fields a schema record could not be built without.
func NewConstructionError(kind string, fields []string) *apierrors.StatusError {
	causes := make([]metav1.StatusCause, 0, len(fields))
	for _, f := range fields {
		causes = append(causes, metav1.StatusCause{
			Type:    metav1.CauseTypeFieldValueRequired,
			Message: "missing required field",
			Field:   f,
		})
	}
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status: metav1.StatusFailure,
		Code:   http.StatusBadRequest,
		Reason: ConstructionError,
		Details: &metav1.StatusDetails{
			Kind:   kind,
			Causes: causes,
		},
		Message: fmt.Sprintf("cannot construct %s, missing fields: [%s]", kind, strings.Join(fields, ", ")),
	}}
}

const causeFieldSeparator = "/"

// NewInvalidConfiguration converts a validation error list into a single status error.
func NewInvalidConfiguration(kind string, errs field.ErrorList) *apierrors.StatusError {
	causes := make([]metav1.StatusCause, 0, len(errs))
	for _, e := range errs {
		causes = append(causes, metav1.StatusCause{
			Type:    metav1.CauseType(e.Type),
			Message: e.ErrorBody(),
			Field:   strings.ReplaceAll(e.Field, ".", causeFieldSeparator),
		})
	}
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status: metav1.StatusFailure,
		Code:   http.StatusUnprocessableEntity,
		Reason: InvalidConfiguration,
		Details: &metav1.StatusDetails{
			Kind:   kind,
			Causes: causes,
		},
		Message: fmt.Sprintf("%s is invalid: %v", kind, errs.ToAggregate()),
	}}
}
