package repository

import (
	"context"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/common/log"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/dependency"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
	"github.com/Masterminds/squirrel"
)

type slaTargetRepo struct {
	core.Repo
	TableName string
}

// Load 读取租户已配置的 SLA 目标，未配置的级别不出现在 map 中
func (repo *slaTargetRepo) Load(ctx context.Context, tenantID string) (entity.SlaTargets, core.RepoError) {
	targets := entity.SlaTargets{
		MaintenanceHours: map[string]float64{},
		InspectionHours:  map[string]float64{},
	}

	query := squirrel.Select("f_category", "f_severity", "f_target_hours").
		From(repo.TableName).
		Where(squirrel.Eq{"f_tenant_id": tenantID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Errorf("Failed to build SQL for load sla targets: %v", err)
		return targets, dependency.NewRepoExecuteSqlError(err)
	}

	rows, err := repo.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Errorf("Failed to query sla targets: %v", err)
		return targets, dependency.NewRepoExecuteSqlError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var category, severity string
		var hours float64
		if err := rows.Scan(&category, &severity, &hours); err != nil {
			log.Errorf("Failed to scan sla target row: %v", err)
			return targets, dependency.NewRepoExecuteSqlError(err)
		}
		switch entity.SlaCategory(category) {
		case entity.SlaCategoryMaintenance:
			targets.MaintenanceHours[severity] = hours
		case entity.SlaCategoryInspection:
			targets.InspectionHours[severity] = hours
		}
	}

	if err := rows.Err(); err != nil {
		log.Errorf("Rows iteration error: %v", err)
		return targets, dependency.NewRepoExecuteSqlError(err)
	}

	return targets, nil
}

// Save 覆盖写入某一分类的 SLA 目标，先删后插并在事务内完成
func (repo *slaTargetRepo) Save(ctx context.Context, tenantID string, category entity.SlaCategory, hours map[string]float64) core.RepoError {
	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Errorf("Failed to begin tx for save sla targets: %v", err)
		return dependency.NewRepoExecuteSqlError(err)
	}
	defer tx.Rollback()

	delSQL, delArgs, err := squirrel.Delete(repo.TableName).
		Where(squirrel.Eq{"f_tenant_id": tenantID, "f_category": string(category)}).
		ToSql()
	if err != nil {
		log.Errorf("Failed to build SQL for delete sla targets: %v", err)
		return dependency.NewRepoExecuteSqlError(err)
	}
	if _, err = tx.ExecContext(ctx, delSQL, delArgs...); err != nil {
		log.Errorf("Failed to delete sla targets: %v", err)
		return dependency.NewRepoExecuteSqlError(err)
	}

	insert := squirrel.Insert(repo.TableName).
		Columns("f_tenant_id", "f_category", "f_severity", "f_target_hours")
	for severity, h := range hours {
		insert = insert.Values(tenantID, string(category), severity, h)
	}
	insSQL, insArgs, err := insert.ToSql()
	if err != nil {
		log.Errorf("Failed to build SQL for insert sla targets: %v", err)
		return dependency.NewRepoExecuteSqlError(err)
	}
	if _, err = tx.ExecContext(ctx, insSQL, insArgs...); err != nil {
		log.Errorf("Failed to insert sla targets: %v", err)
		return dependency.NewRepoExecuteSqlError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Errorf("Failed to commit sla targets: %v", err)
		return dependency.NewRepoExecuteSqlError(err)
	}
	return nil
}
