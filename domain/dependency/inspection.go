package dependency

import (
	"context"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
)

type InspectionRepo interface {
	// ListByEquipments 返回给定设备的已定稿巡检记录（排除 pending），
	// 按 (equipment_id, 生效时间, 主键) 升序。limit 为行数上限
	ListByEquipments(ctx context.Context, tenantID string, equipmentIDs []string, limit int) (records []*entity.Inspection, truncated bool, err core.RepoError)
}
