package dependency

import "devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"

type repoError struct {
	err     error
	ErrType string
}

func (e *repoError) GetError() error {
	return e.err
}

func (e *repoError) Type() string {
	return e.ErrType
}
func (e *repoError) Error() string {
	return e.err.Error()
}

func NewRepoInternalError(err error) core.RepoError {
	return &repoError{
		err:     err,
		ErrType: "InternalError",
	}
}

func NewRepoExecuteSqlError(err error) core.RepoError {
	return &repoError{
		err:     err,
		ErrType: "ExecuteSqlError",
	}
}

func NewRepoCacheError(err error) core.RepoError {
	return &repoError{
		err:     err,
		ErrType: "CacheError",
	}
}
