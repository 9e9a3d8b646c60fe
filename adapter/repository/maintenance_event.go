package repository

import (
	"context"
	"database/sql"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/common/log"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/dependency"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
	"github.com/Masterminds/squirrel"
)

type maintenanceEventRepo struct {
	core.Repo
	TableName string
}

// ListByEquipments 查询维修事件，按 (equipment_id, occurred_at, 自增主键) 升序。
// 多查一行用于探测截断；被截断时丢弃末尾不完整的设备分组，
// 避免基于半截事件流派生故障区间
func (repo *maintenanceEventRepo) ListByEquipments(ctx context.Context, tenantID string, equipmentIDs []string, kinds []entity.EventKind, limit int) ([]*entity.MaintenanceEvent, bool, core.RepoError) {
	if len(equipmentIDs) == 0 {
		return nil, false, nil
	}

	kindValues := make([]string, 0, len(kinds))
	for _, k := range kinds {
		kindValues = append(kindValues, string(k))
	}

	query := squirrel.Select(
		"f_id", "f_tenant_id", "f_equipment_id", "f_event_type",
		"f_severity", "f_repair_id", "f_completed_working", "f_occurred_at").
		From(repo.TableName).
		Where(squirrel.Eq{"f_tenant_id": tenantID, "f_equipment_id": equipmentIDs}).
		OrderBy("f_equipment_id", "f_occurred_at", "f_id")
	if len(kindValues) > 0 {
		query = query.Where(squirrel.Eq{"f_event_type": kindValues})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit + 1))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Errorf("Failed to build SQL for list maintenance events: %v", err)
		return nil, false, dependency.NewRepoExecuteSqlError(err)
	}

	rows, err := repo.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Errorf("Failed to query maintenance events: %v", err)
		return nil, false, dependency.NewRepoExecuteSqlError(err)
	}
	defer rows.Close()

	var events []*entity.MaintenanceEvent
	for rows.Next() {
		var ev entity.MaintenanceEvent
		var kind string
		var completed sql.NullBool
		err := rows.Scan(&ev.ID, &ev.TenantID, &ev.EquipmentID, &kind,
			&ev.Severity, &ev.RepairID, &completed, &ev.OccurredAt)
		if err != nil {
			log.Errorf("Failed to scan maintenance event row: %v", err)
			return nil, false, dependency.NewRepoExecuteSqlError(err)
		}
		ev.Kind = entity.EventKind(kind)
		if completed.Valid {
			v := completed.Bool
			ev.CompletedWorking = &v
		}
		events = append(events, &ev)
	}

	if err := rows.Err(); err != nil {
		log.Errorf("Rows iteration error: %v", err)
		return nil, false, dependency.NewRepoExecuteSqlError(err)
	}

	events, truncated := trimOverflowGroup(events, limit)
	return events, truncated, nil
}

// trimOverflowGroup 结果超出 limit 时，去掉溢出行所属设备的全部尾部行
func trimOverflowGroup(events []*entity.MaintenanceEvent, limit int) ([]*entity.MaintenanceEvent, bool) {
	if limit <= 0 || len(events) <= limit {
		return events, false
	}
	overflowEq := events[limit].EquipmentID
	kept := events[:limit]
	for len(kept) > 0 && kept[len(kept)-1].EquipmentID == overflowEq {
		kept = kept[:len(kept)-1]
	}
	return kept, true
}
