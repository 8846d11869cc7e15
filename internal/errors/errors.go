// Package errors defines the error type shared by every wpsite package.
//
// A SiteError carries a Code so callers can tell the failure classes apart:
//
//	DEPENDENCY    orchestrator binary missing or broken
//	VALIDATION    bad site name, bad action, wrong argument count
//	ORCHESTRATOR  the orchestrator exited non-zero (its output is kept verbatim)
//	FILESYSTEM    creating, writing or removing site files failed
//	PERMISSION    the hosts file or site root is not writable
//	NOT_FOUND     the site root does not exist
//
// Compare against the sentinels with errors.Is; only the code is compared:
//
//	if errors.Is(err, errors.ErrSiteNotFound) {
//	    // site was never created
//	}
package errors

import (
	"errors"
	"fmt"
	"os"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeValidation   ErrorCode = "VALIDATION"
	ErrCodePermission   ErrorCode = "PERMISSION"
	ErrCodeDependency   ErrorCode = "DEPENDENCY"
	ErrCodeOrchestrator ErrorCode = "ORCHESTRATOR"
	ErrCodeFilesystem   ErrorCode = "FILESYSTEM"
	ErrCodeConfig       ErrorCode = "CONFIG"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// SiteError is a failure tied to an operation and, usually, a site.
type SiteError struct {
	Code    ErrorCode
	Message string
	Site    string
	Err     error
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = fmt.Sprintf("%s: %v", msg, e.Err)
		}
	}
	if e.Site != "" {
		return fmt.Sprintf("site %s: %s", e.Site, msg)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *SiteError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a SiteError with the same code.
func (e *SiteError) Is(target error) bool {
	t, ok := target.(*SiteError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

var (
	ErrSiteNotFound       = &SiteError{Code: ErrCodeNotFound, Message: "site not found"}
	ErrInvalidSiteName    = &SiteError{Code: ErrCodeValidation, Message: "invalid site name"}
	ErrUnknownAction      = &SiteError{Code: ErrCodeValidation, Message: "unknown action"}
	ErrPermissionDenied   = &SiteError{Code: ErrCodePermission, Message: "permission denied"}
	ErrMissingDependency  = &SiteError{Code: ErrCodeDependency, Message: "dependency not installed"}
	ErrOrchestratorFailed = &SiteError{Code: ErrCodeOrchestrator, Message: "orchestrator command failed"}
	ErrFilesystem         = &SiteError{Code: ErrCodeFilesystem, Message: "filesystem error"}
	ErrConfigInvalid      = &SiteError{Code: ErrCodeConfig, Message: "invalid configuration"}
	ErrDriverNotFound     = &SiteError{Code: ErrCodeConfig, Message: "orchestrator driver not found"}
)

// NotFound reports that the site root of site does not exist.
func NotFound(site string) error {
	return &SiteError{
		Code:    ErrCodeNotFound,
		Message: "site does not exist",
		Site:    site,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &SiteError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message and cause.
func Wrap(code ErrorCode, msg string, err error) error {
	return &SiteError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapSite is Wrap with site context.
func WrapSite(code ErrorCode, site, msg string, err error) error {
	return &SiteError{
		Code:    code,
		Message: msg,
		Site:    site,
		Err:     err,
	}
}

// Filesystem wraps a filesystem failure, upgrading it to PERMISSION when the
// cause is os.ErrPermission.
func Filesystem(msg string, err error) error {
	code := ErrCodeFilesystem
	if errors.Is(err, os.ErrPermission) {
		code = ErrCodePermission
	}
	return Wrap(code, msg, err)
}

// Is is a re-export of errors.Is.
var Is = errors.Is

// As is a re-export of errors.As.
var As = errors.As
