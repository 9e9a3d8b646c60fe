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

type inspectionRepo struct {
	core.Repo
	TableName string
}

// ListByEquipments 查询已定稿巡检记录，pending 记录在 SQL 层排除，
// 排序键为 (equipment_id, 生效时间, 主键)，生效时间取
// finalized_at、created_at、inspection_date 中第一个非空值
func (repo *inspectionRepo) ListByEquipments(ctx context.Context, tenantID string, equipmentIDs []string, limit int) ([]*entity.Inspection, bool, core.RepoError) {
	if len(equipmentIDs) == 0 {
		return nil, false, nil
	}

	query := squirrel.Select(
		"f_id", "f_tenant_id", "f_equipment_id", "f_status", "f_review_status",
		"f_severity", "f_inspection_date", "f_created_at", "f_finalized_at").
		From(repo.TableName).
		Where(squirrel.Eq{"f_tenant_id": tenantID, "f_equipment_id": equipmentIDs}).
		Where(squirrel.NotEq{"f_review_status": entity.ReviewStatusPending}).
		OrderBy("f_equipment_id", "COALESCE(f_finalized_at, f_created_at, f_inspection_date)", "f_id")
	if limit > 0 {
		query = query.Limit(uint64(limit + 1))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Errorf("Failed to build SQL for list inspections: %v", err)
		return nil, false, dependency.NewRepoExecuteSqlError(err)
	}

	rows, err := repo.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Errorf("Failed to query inspections: %v", err)
		return nil, false, dependency.NewRepoExecuteSqlError(err)
	}
	defer rows.Close()

	var records []*entity.Inspection
	for rows.Next() {
		var rec entity.Inspection
		var inspectionDate, createdAt, finalizedAt sql.NullTime
		err := rows.Scan(&rec.ID, &rec.TenantID, &rec.EquipmentID, &rec.Status, &rec.ReviewStatus,
			&rec.Severity, &inspectionDate, &createdAt, &finalizedAt)
		if err != nil {
			log.Errorf("Failed to scan inspection row: %v", err)
			return nil, false, dependency.NewRepoExecuteSqlError(err)
		}
		if inspectionDate.Valid {
			t := inspectionDate.Time
			rec.InspectionDate = &t
		}
		if createdAt.Valid {
			t := createdAt.Time
			rec.CreatedAt = &t
		}
		if finalizedAt.Valid {
			t := finalizedAt.Time
			rec.FinalizedAt = &t
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		log.Errorf("Rows iteration error: %v", err)
		return nil, false, dependency.NewRepoExecuteSqlError(err)
	}

	records, truncated := trimOverflowInspections(records, limit)
	return records, truncated, nil
}

// trimOverflowInspections 同 trimOverflowGroup，截断时丢弃末尾不完整的设备分组
func trimOverflowInspections(records []*entity.Inspection, limit int) ([]*entity.Inspection, bool) {
	if limit <= 0 || len(records) <= limit {
		return records, false
	}
	overflowEq := records[limit].EquipmentID
	kept := records[:limit]
	for len(kept) > 0 && kept[len(kept)-1].EquipmentID == overflowEq {
		kept = kept[:len(kept)-1]
	}
	return kept, true
}
