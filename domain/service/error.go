package service

import "devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"

type serviceError struct {
	err     core.RepoError
	ErrType string
}

func (e *serviceError) Error() string {
	if e.err != nil {
		return e.err.Type()
	}
	return e.Type()
}

func (e *serviceError) GetError() core.RepoError {
	return e.err
}

func (e *serviceError) Type() string {
	return e.ErrType
}

func NewSvcInternalError(err core.RepoError) core.ServiceError {
	return &serviceError{
		err:     err,
		ErrType: "InternalError",
	}
}

func NewSvcNotFoundError(err core.RepoError) core.ServiceError {
	return &serviceError{
		err:     err,
		ErrType: "NotFound",
	}
}

func NewSvcScopeEmptyError(err core.RepoError) core.ServiceError {
	return &serviceError{
		err:     err,
		ErrType: "ScopeEmpty",
	}
}

func NewSvcInvalidWindowError(err core.RepoError) core.ServiceError {
	return &serviceError{
		err:     err,
		ErrType: "InvalidWindow",
	}
}

func NewSvcInvalidSlaTargetError(err core.RepoError) core.ServiceError {
	return &serviceError{
		err:     err,
		ErrType: "InvalidSlaTarget",
	}
}
