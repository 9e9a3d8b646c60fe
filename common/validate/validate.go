package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const specialCharacters = `\/:*?"<>|`

var severityLevels = map[string]struct{}{
	"P1": {}, "P2": {}, "P3": {}, "P4": {},
}

var windowModes = map[string]struct{}{
	"start": {}, "resolved": {}, "overlap": {},
}

// SeverityValidation 校验严重级别取值
func SeverityValidation(fl validator.FieldLevel) bool {
	severity := fl.Field().Interface().(string)
	if severity == "" {
		return true
	}
	_, ok := severityLevels[severity]
	return ok
}

// WindowModeValidation 校验时间窗过滤模式
func WindowModeValidation(fl validator.FieldLevel) bool {
	mode := fl.Field().Interface().(string)
	if mode == "" {
		return true
	}
	_, ok := windowModes[mode]
	return ok
}

// IDListValidation 校验 ID 列表
func IDListValidation(fl validator.FieldLevel) bool {
	ids := fl.Field().Interface().([]string)
	if len(ids) > 500 {
		return false
	}
	for _, id := range ids {
		if id == "" {
			return false
		}
		if utf8.RuneCountInString(id) > 64 {
			return false
		}
		if bo := strings.ContainsAny(specialCharacters, id); bo {
			return false
		}
	}
	return true
}

// FieldValidation 校验特殊字符
func FieldValidation(fl validator.FieldLevel) bool {
	fieldValue := fl.Field().Interface().(string)
	if utf8.RuneCountInString(fieldValue) > 64 {
		return false
	}
	// 不能包含特殊字符
	if bo := strings.ContainsAny(specialCharacters, fieldValue); bo {
		return false
	}
	return true
}
