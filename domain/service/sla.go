package service

import (
	"context"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/common/log"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/config"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/dependency"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/vo"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/infrastructure/cache"
	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

const slaCacheKeyPrefix = "reliability:sla_targets:"

type SlaService interface {
	// LoadMerged 返回合并默认值后的租户 SLA 目标
	LoadMerged(ctx context.Context, tenantID string) (entity.SlaTargets, core.ServiceError)
	GetTargets(ctx context.Context, tenantID string) (vo.SlaTargetsResp, core.ServiceError)
	PutTargets(ctx context.Context, req *vo.SlaTargetsPutReq) core.ServiceError
}

type slaService struct {
	slaTargetRepo dependency.SlaTargetRepo
	cache         cache.Cache
}

// LoadMerged 优先读缓存，未命中时回源并写入缓存。
// 缓存读写失败只降级为回源，不向上抛错
func (svc *slaService) LoadMerged(ctx context.Context, tenantID string) (entity.SlaTargets, core.ServiceError) {
	key := slaCacheKeyPrefix + tenantID
	if svc.cache != nil {
		if raw, err := svc.cache.Get(ctx, key); err == nil {
			var cached entity.SlaTargets
			if err := sonic.UnmarshalString(raw, &cached); err == nil {
				return cached, nil
			}
			log.Warnf("decode cached sla targets failed, tenant %s", tenantID)
		}
	}

	saved, repoErr := svc.slaTargetRepo.Load(ctx, tenantID)
	if repoErr != nil {
		return entity.SlaTargets{}, NewSvcInternalError(repoErr)
	}
	merged := saved.MergeDefaults(config.Get().Analytics.SlaDefaultHours)

	if svc.cache != nil {
		if raw, err := sonic.MarshalString(merged); err == nil {
			if err := svc.cache.Set(ctx, key, raw, config.Get().Analytics.SlaCacheTTL); err != nil {
				log.Warnf("cache sla targets failed: %v", err)
			}
		}
	}
	return merged, nil
}

func (svc *slaService) GetTargets(ctx context.Context, tenantID string) (vo.SlaTargetsResp, core.ServiceError) {
	merged, err := svc.LoadMerged(ctx, tenantID)
	if err != nil {
		return vo.SlaTargetsResp{}, err
	}
	return vo.SlaTargetsResp{
		MaintenanceHours: merged.MaintenanceHours,
		InspectionHours:  merged.InspectionHours,
	}, nil
}

// PutTargets 覆盖写入某一分类的 SLA 目标并失效缓存。
// 级别必须是 P1-P4，时长必须非负
func (svc *slaService) PutTargets(ctx context.Context, req *vo.SlaTargetsPutReq) core.ServiceError {
	for severity, hours := range req.Hours {
		if entity.SeverityRank(severity) == 0 {
			return NewSvcInvalidSlaTargetError(
				dependency.NewRepoInternalError(errors.Errorf("unknown severity %q", severity)))
		}
		if hours < 0 {
			return NewSvcInvalidSlaTargetError(
				dependency.NewRepoInternalError(errors.Errorf("negative target hours for %s", severity)))
		}
	}

	if repoErr := svc.slaTargetRepo.Save(ctx, req.TenantID, entity.SlaCategory(req.Category), req.Hours); repoErr != nil {
		return NewSvcInternalError(repoErr)
	}

	if svc.cache != nil {
		if err := svc.cache.Del(ctx, slaCacheKeyPrefix+req.TenantID); err != nil {
			log.Warnf("invalidate sla targets cache failed: %v", err)
		}
	}
	return nil
}
