package repository

import (
	"context"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/common/log"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/dependency"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
	"github.com/Masterminds/squirrel"
)

type equipmentRepo struct {
	core.Repo
	TableName string
	ZoneTable string
}

// ListByScope 按租户过滤设备，zoneID 非空时匹配该区域及其子树
func (repo *equipmentRepo) ListByScope(ctx context.Context, tenantID, siteID, zoneID string) ([]*entity.Equipment, core.RepoError) {
	query := squirrel.Select(
		"f_id", "f_tenant_id", "f_name", "f_tag_no",
		"f_site_id", "f_zone_id", "f_operational_status", "f_compliance").
		From(repo.TableName).
		Where(squirrel.Eq{"f_tenant_id": tenantID})

	if siteID != "" {
		query = query.Where(squirrel.Eq{"f_site_id": siteID})
	}
	if zoneID != "" {
		zoneIDs, repoErr := repo.subtreeZoneIDs(ctx, tenantID, zoneID)
		if repoErr != nil {
			return nil, repoErr
		}
		if len(zoneIDs) == 0 {
			return nil, nil
		}
		query = query.Where(squirrel.Eq{"f_zone_id": zoneIDs})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Errorf("Failed to build SQL for list equipments: %v", err)
		return nil, dependency.NewRepoExecuteSqlError(err)
	}

	rows, err := repo.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Errorf("Failed to query equipments: %v", err)
		return nil, dependency.NewRepoExecuteSqlError(err)
	}
	defer rows.Close()

	var equipments []*entity.Equipment
	for rows.Next() {
		var eq entity.Equipment
		err := rows.Scan(&eq.ID, &eq.TenantID, &eq.Name, &eq.TagNo,
			&eq.SiteID, &eq.ZoneID, &eq.OperationalStatus, &eq.Compliance)
		if err != nil {
			log.Errorf("Failed to scan equipment row: %v", err)
			return nil, dependency.NewRepoExecuteSqlError(err)
		}
		equipments = append(equipments, &eq)
	}

	if err := rows.Err(); err != nil {
		log.Errorf("Rows iteration error: %v", err)
		return nil, dependency.NewRepoExecuteSqlError(err)
	}

	return equipments, nil
}

// subtreeZoneIDs 返回 zoneID 及其所有子孙节点的 ID，
// f_ancestors 为逗号分隔的祖先 ID 列表
func (repo *equipmentRepo) subtreeZoneIDs(ctx context.Context, tenantID, zoneID string) ([]string, core.RepoError) {
	query := squirrel.Select("f_id").
		From(repo.ZoneTable).
		Where(squirrel.Eq{"f_tenant_id": tenantID}).
		Where("(f_id = ? OR FIND_IN_SET(?, f_ancestors))", zoneID, zoneID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Errorf("Failed to build SQL for zone subtree: %v", err)
		return nil, dependency.NewRepoExecuteSqlError(err)
	}

	rows, err := repo.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Errorf("Failed to query zone subtree: %v", err)
		return nil, dependency.NewRepoExecuteSqlError(err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			log.Errorf("Failed to scan zone row: %v", err)
			return nil, dependency.NewRepoExecuteSqlError(err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		log.Errorf("Rows iteration error: %v", err)
		return nil, dependency.NewRepoExecuteSqlError(err)
	}

	return ids, nil
}
