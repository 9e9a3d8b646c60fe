package dependency

import (
	"context"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
)

type MaintenanceEventRepo interface {
	// ListByEquipments 返回给定设备的维修事件，按 (equipment_id, occurred_at, 自增主键) 升序。
	// limit 为行数上限，返回值 truncated 表示结果被截断
	ListByEquipments(ctx context.Context, tenantID string, equipmentIDs []string, kinds []entity.EventKind, limit int) (events []*entity.MaintenanceEvent, truncated bool, err core.RepoError)
}
