package dependency

import (
	"context"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
)

type SlaTargetRepo interface {
	// Load 返回租户已配置的 SLA 目标，未配置的级别不在 map 中
	Load(ctx context.Context, tenantID string) (entity.SlaTargets, core.RepoError)

	// Save 覆盖写入租户某一分类下的 SLA 目标
	Save(ctx context.Context, tenantID string, category entity.SlaCategory, hours map[string]float64) core.RepoError
}
