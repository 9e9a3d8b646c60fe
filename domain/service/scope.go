package service

import (
	"context"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/dependency"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/vo"
)

// scopeResult 范围解析结果
type scopeResult struct {
	equipments []*entity.Equipment
	byID       map[string]*entity.Equipment
	ids        []string
}

func (s scopeResult) count() int {
	return len(s.ids)
}

// resolveScope 解析请求命中的设备集合，空结果是合法状态而非错误
func resolveScope(ctx context.Context, repo dependency.EquipmentRepo, scope vo.ScopeQuery) (scopeResult, core.ServiceError) {
	equipments, repoErr := repo.ListByScope(ctx, scope.TenantID, scope.SiteID, scope.ZoneID)
	if repoErr != nil {
		return scopeResult{}, NewSvcInternalError(repoErr)
	}

	result := scopeResult{
		equipments: equipments,
		byID:       make(map[string]*entity.Equipment, len(equipments)),
		ids:        make([]string, 0, len(equipments)),
	}
	for _, eq := range equipments {
		if eq == nil || eq.ID == "" {
			continue
		}
		result.byID[eq.ID] = eq
		result.ids = append(result.ids, eq.ID)
	}
	return result, nil
}
