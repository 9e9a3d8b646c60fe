package service

import (
	"context"
	"testing"
	"time"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/config"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/vo"
	"github.com/agiledragon/gomonkey/v2"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSlaLoadMerged(t *testing.T) {
	Convey("TestSlaLoadMerged", t, func() {
		patches := patchAnalyticsCfg()
		defer patches.Reset()

		Convey("未配置时全部回落默认值", func() {
			repo := &stubSlaTargetRepo{}
			svc := NewSlaService(repo, nil)

			targets, err := svc.LoadMerged(context.Background(), "t-1")

			So(err, ShouldBeNil)
			So(targets.MaintenanceHours[entity.SeverityP1], ShouldEqual, 24)
			So(targets.MaintenanceHours[entity.SeverityP2], ShouldEqual, 72)
			So(targets.InspectionHours[entity.SeverityP3], ShouldEqual, 168)
			So(targets.InspectionHours[entity.SeverityP4], ShouldEqual, 336)
		})

		Convey("默认时长取自配置", func() {
			patches.Reset()
			patches = gomonkey.ApplyFunc(config.Get, func() *config.GlobalCfg {
				return &config.GlobalCfg{
					Analytics: config.AnalyticsCfg{
						SlaCacheTTL: 5 * time.Minute,
						SlaDefaultHours: map[string]float64{
							entity.SeverityP1: 4, entity.SeverityP2: 12,
						},
					},
				}
			})
			repo := &stubSlaTargetRepo{}
			svc := NewSlaService(repo, nil)

			targets, err := svc.LoadMerged(context.Background(), "t-1")

			So(err, ShouldBeNil)
			So(targets.MaintenanceHours[entity.SeverityP1], ShouldEqual, 4)
			So(targets.InspectionHours[entity.SeverityP2], ShouldEqual, 12)
			So(targets.MaintenanceHours, ShouldNotContainKey, entity.SeverityP3)
		})

		Convey("租户覆盖值优先，缺失级别补默认", func() {
			repo := &stubSlaTargetRepo{saved: entity.SlaTargets{
				MaintenanceHours: map[string]float64{entity.SeverityP1: 8},
			}}
			svc := NewSlaService(repo, nil)

			targets, err := svc.LoadMerged(context.Background(), "t-1")

			So(err, ShouldBeNil)
			So(targets.MaintenanceHours[entity.SeverityP1], ShouldEqual, 8)
			So(targets.MaintenanceHours[entity.SeverityP2], ShouldEqual, 72)
		})

		Convey("命中缓存时不回源", func() {
			repo := &stubSlaTargetRepo{}
			c := newStubCache()
			svc := NewSlaService(repo, c)

			first, err1 := svc.LoadMerged(context.Background(), "t-1")
			second, err2 := svc.LoadMerged(context.Background(), "t-1")

			So(err1, ShouldBeNil)
			So(err2, ShouldBeNil)
			So(repo.loadCalls, ShouldEqual, 1)
			So(first, ShouldResemble, second)
		})

		Convey("缓存内容损坏时回源", func() {
			repo := &stubSlaTargetRepo{}
			c := newStubCache()
			c.store[slaCacheKeyPrefix+"t-1"] = "{not json"
			svc := NewSlaService(repo, c)

			targets, err := svc.LoadMerged(context.Background(), "t-1")

			So(err, ShouldBeNil)
			So(repo.loadCalls, ShouldEqual, 1)
			So(targets.MaintenanceHours[entity.SeverityP1], ShouldEqual, 24)
		})
	})
}

func TestSlaPutTargets(t *testing.T) {
	Convey("TestSlaPutTargets", t, func() {
		patches := patchAnalyticsCfg()
		defer patches.Reset()

		Convey("写入成功并失效缓存", func() {
			repo := &stubSlaTargetRepo{}
			c := newStubCache()
			svc := NewSlaService(repo, c)

			// 先种缓存
			_, _ = svc.LoadMerged(context.Background(), "t-1")
			So(c.store, ShouldContainKey, slaCacheKeyPrefix+"t-1")

			err := svc.PutTargets(context.Background(), &vo.SlaTargetsPutReq{
				TenantID: "t-1",
				Category: string(entity.SlaCategoryMaintenance),
				Hours:    map[string]float64{entity.SeverityP1: 12},
			})

			So(err, ShouldBeNil)
			So(repo.savedTenant, ShouldEqual, "t-1")
			So(repo.savedCategory, ShouldEqual, entity.SlaCategoryMaintenance)
			So(repo.savedHours[entity.SeverityP1], ShouldEqual, 12)
			So(c.store, ShouldNotContainKey, slaCacheKeyPrefix+"t-1")
		})

		Convey("未知级别拒绝写入", func() {
			svc := NewSlaService(&stubSlaTargetRepo{}, nil)

			err := svc.PutTargets(context.Background(), &vo.SlaTargetsPutReq{
				TenantID: "t-1",
				Category: string(entity.SlaCategoryInspection),
				Hours:    map[string]float64{"P9": 12},
			})

			So(err, ShouldNotBeNil)
			So(err.Type(), ShouldEqual, "InvalidSlaTarget")
		})

		Convey("负时长拒绝写入", func() {
			svc := NewSlaService(&stubSlaTargetRepo{}, nil)

			err := svc.PutTargets(context.Background(), &vo.SlaTargetsPutReq{
				TenantID: "t-1",
				Category: string(entity.SlaCategoryMaintenance),
				Hours:    map[string]float64{entity.SeverityP1: -1},
			})

			So(err, ShouldNotBeNil)
			So(err.Type(), ShouldEqual, "InvalidSlaTarget")
		})
	})
}

func TestSlaGetTargets(t *testing.T) {
	Convey("TestSlaGetTargets", t, func() {
		patches := patchAnalyticsCfg()
		defer patches.Reset()

		Convey("返回合并后的两类目标", func() {
			repo := &stubSlaTargetRepo{saved: entity.SlaTargets{
				InspectionHours: map[string]float64{entity.SeverityP2: 36},
			}}
			svc := NewSlaService(repo, nil)

			resp, err := svc.GetTargets(context.Background(), "t-1")

			So(err, ShouldBeNil)
			So(resp.InspectionHours[entity.SeverityP2], ShouldEqual, 36)
			So(resp.MaintenanceHours[entity.SeverityP2], ShouldEqual, 72)
		})
	})
}
