package controller

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain"
	"github.com/kweaver-ai/kweaver-go-lib/rest"
)

var (
	ModuleName = "ReliabilityAnalytics"
	HTTPError  = map[string]ErrorInfo{
		// 500
		"InternalError": {
			httpCode:  http.StatusInternalServerError,
			errorCode: ReliabilityAnalytics_InternalError_Error,
		},
		"ExecuteSqlError": {
			httpCode:  http.StatusInternalServerError,
			errorCode: ModuleName + ".InternalError.ExecuteSqlError",
		},
		"CacheError": {
			httpCode:  http.StatusInternalServerError,
			errorCode: ModuleName + ".InternalError.CacheError",
		},
		// 400
		"ValidateParamError": {
			httpCode:  http.StatusBadRequest,
			errorCode: ModuleName + ".InvalidParameter.%sInvalidParameter",
		},
		"InvalidWindow": {
			httpCode:  http.StatusBadRequest,
			errorCode: ModuleName + ".BadRequest.InvalidWindow",
		},
		"InvalidSlaTarget": {
			httpCode:  http.StatusBadRequest,
			errorCode: ModuleName + ".BadRequest.InvalidSlaTarget",
		},
		// http错误 404
		"NotFound": {
			httpCode:  http.StatusNotFound,
			errorCode: ModuleName + ".NotFound.Data",
		},
		"ScopeEmpty": {
			httpCode:  http.StatusNotFound,
			errorCode: ModuleName + ".NotFound.Data",
		},
	}
	InvalidParameter = ErrorInfo{
		httpCode:  http.StatusBadRequest,
		errorCode: ReliabilityAnalytics_BadRequest_InvalidParam,
	}
)

type ErrorInfo struct {
	httpCode  int
	errorCode string
	format    map[string]interface{}
}

func (errInfo *ErrorInfo) WithFormat(format map[string]interface{}) *ErrorInfo {
	errInfo.format = format
	return errInfo
}

func HandleValidateError(ctx context.Context, err error) *rest.HTTPError {
	for _, e := range err.(validator.ValidationErrors) {
		errInfo := HTTPError["ValidateParamError"]
		errInfo.errorCode = fmt.Sprintf(errInfo.errorCode, e.StructField())
		return NewRestHTTPError(ctx, errInfo)
	}
	return NewRestHTTPError(ctx, InvalidParameter)
}

func NewRestHTTPError(ctx context.Context, info ErrorInfo) *rest.HTTPError {
	return rest.NewHTTPError(ctx, info.httpCode, info.errorCode)
}

func HandDomainError(ctx context.Context, err domain.DomainError) *rest.HTTPError {
	info, ok := HTTPError[err.Type()]
	if !ok {
		info = HTTPError["InternalError"]
	}
	return NewRestHTTPError(ctx, info)
}
