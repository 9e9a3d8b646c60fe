package dependency

import (
	"context"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
)

type EquipmentRepo interface {
	// ListByScope 按租户过滤设备，siteId、zoneId 为空串表示不过滤；
	// zoneId 非空时命中该区域及其全部子孙区域下的设备
	ListByScope(ctx context.Context, tenantID, siteID, zoneID string) ([]*entity.Equipment, core.RepoError)
}
