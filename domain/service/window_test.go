package service

import (
	"testing"
	"time"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
	. "github.com/smartystreets/goconvey/convey"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tp(s string) *time.Time {
	t := ts(s)
	return &t
}

func TestNormalizeMode(t *testing.T) {
	Convey("TestNormalizeMode", t, func() {
		Convey("合法模式原样返回", func() {
			So(normalizeMode("start"), ShouldEqual, WindowModeStart)
			So(normalizeMode("resolved"), ShouldEqual, WindowModeResolved)
			So(normalizeMode("overlap"), ShouldEqual, WindowModeOverlap)
		})

		Convey("空串与未知模式回落到 start", func() {
			So(normalizeMode(""), ShouldEqual, WindowModeStart)
			So(normalizeMode("unknown"), ShouldEqual, WindowModeStart)
		})
	})
}

func TestInWindow(t *testing.T) {
	now := ts("2026-06-01T00:00:00Z")
	w := timeWindow{from: tp("2026-01-10T00:00:00Z"), to: tp("2026-01-20T00:00:00Z")}

	closed := entity.Incident{
		EquipmentID: "eq-1",
		Start:       ts("2026-01-12T00:00:00Z"),
		End:         tp("2026-01-15T00:00:00Z"),
	}
	open := entity.Incident{
		EquipmentID: "eq-2",
		Start:       ts("2026-01-05T00:00:00Z"),
	}

	Convey("TestInWindow", t, func() {
		Convey("start 模式按开始时间过滤，边界为闭区间", func() {
			So(inWindow(closed, w, WindowModeStart, now), ShouldBeTrue)
			So(inWindow(open, w, WindowModeStart, now), ShouldBeFalse)

			onEdge := entity.Incident{Start: ts("2026-01-10T00:00:00Z")}
			So(inWindow(onEdge, w, WindowModeStart, now), ShouldBeTrue)
		})

		Convey("resolved 模式要求已关闭且关闭时间落入窗口", func() {
			So(inWindow(closed, w, WindowModeResolved, now), ShouldBeTrue)
			So(inWindow(open, w, WindowModeResolved, now), ShouldBeFalse)

			closedOutside := entity.Incident{
				Start: ts("2026-01-12T00:00:00Z"),
				End:   tp("2026-02-01T00:00:00Z"),
			}
			So(inWindow(closedOutside, w, WindowModeResolved, now), ShouldBeFalse)
		})

		Convey("resolved 模式下无界窗口仍排除未关闭区间", func() {
			So(inWindow(open, timeWindow{}, WindowModeResolved, now), ShouldBeFalse)
			So(inWindow(closed, timeWindow{}, WindowModeResolved, now), ShouldBeTrue)
		})

		Convey("overlap 模式命中与窗口相交的区间", func() {
			// 未关闭区间从窗口前开始，持续到 now，与窗口相交
			So(inWindow(open, w, WindowModeOverlap, now), ShouldBeTrue)
			So(inWindow(closed, w, WindowModeOverlap, now), ShouldBeTrue)

			ended := entity.Incident{
				Start: ts("2026-01-01T00:00:00Z"),
				End:   tp("2026-01-05T00:00:00Z"),
			}
			So(inWindow(ended, w, WindowModeOverlap, now), ShouldBeFalse)
		})

		Convey("overlap 模式下未关闭区间延续到无穷远，命中 now 之后的窗口", func() {
			future := timeWindow{
				from: tp("2026-07-01T00:00:00Z"),
				to:   tp("2026-07-10T00:00:00Z"),
			}
			So(inWindow(open, future, WindowModeOverlap, now), ShouldBeTrue)
			So(inWindow(closed, future, WindowModeOverlap, now), ShouldBeFalse)
		})

		Convey("overlap 模式下无界窗口命中所有区间", func() {
			So(inWindow(open, timeWindow{}, WindowModeOverlap, now), ShouldBeTrue)
			So(inWindow(closed, timeWindow{}, WindowModeOverlap, now), ShouldBeTrue)
		})

		Convey("无界窗口下 start 模式命中所有区间", func() {
			So(inWindow(open, timeWindow{}, WindowModeStart, now), ShouldBeTrue)
			So(inWindow(closed, timeWindow{}, WindowModeStart, now), ShouldBeTrue)
		})
	})
}

func TestOverlapDuration(t *testing.T) {
	now := ts("2026-06-01T00:00:00Z")

	Convey("TestOverlapDuration", t, func() {
		Convey("区间完全在窗口内取全长", func() {
			in := entity.Incident{
				Start: ts("2026-01-12T00:00:00Z"),
				End:   tp("2026-01-13T00:00:00Z"),
			}
			w := timeWindow{from: tp("2026-01-10T00:00:00Z"), to: tp("2026-01-20T00:00:00Z")}

			So(overlapDuration(in, w, now), ShouldEqual, 24*time.Hour)
		})

		Convey("区间跨越窗口边界时被裁剪", func() {
			in := entity.Incident{
				Start: ts("2026-01-08T00:00:00Z"),
				End:   tp("2026-01-12T00:00:00Z"),
			}
			w := timeWindow{from: tp("2026-01-10T00:00:00Z"), to: tp("2026-01-20T00:00:00Z")}

			So(overlapDuration(in, w, now), ShouldEqual, 48*time.Hour)
		})

		Convey("未关闭区间记到 now 为止", func() {
			in := entity.Incident{Start: ts("2026-05-31T00:00:00Z")}
			w := timeWindow{from: tp("2026-05-01T00:00:00Z")}

			So(overlapDuration(in, w, now), ShouldEqual, 24*time.Hour)
		})

		Convey("不相交时为零", func() {
			in := entity.Incident{
				Start: ts("2026-01-01T00:00:00Z"),
				End:   tp("2026-01-02T00:00:00Z"),
			}
			w := timeWindow{from: tp("2026-02-01T00:00:00Z"), to: tp("2026-02-10T00:00:00Z")}

			So(overlapDuration(in, w, now), ShouldEqual, 0)
		})
	})
}

func TestFilterByWindow(t *testing.T) {
	now := ts("2026-06-01T00:00:00Z")

	Convey("TestFilterByWindow", t, func() {
		Convey("start 模式把每个区间划入且仅划入一个相邻窗口", func() {
			incidents := []entity.Incident{
				{EquipmentID: "a", Start: ts("2026-01-05T00:00:00Z")},
				{EquipmentID: "b", Start: ts("2026-01-15T00:00:00Z")},
				{EquipmentID: "c", Start: ts("2026-01-25T00:00:00Z")},
			}
			w1 := timeWindow{from: tp("2026-01-01T00:00:00Z"), to: tp("2026-01-10T00:00:00Z")}
			w2 := timeWindow{from: tp("2026-01-10T00:00:00.001Z"), to: tp("2026-01-20T00:00:00Z")}
			w3 := timeWindow{from: tp("2026-01-20T00:00:00.001Z"), to: tp("2026-01-30T00:00:00Z")}

			n1 := len(filterByWindow(incidents, w1, WindowModeStart, now))
			n2 := len(filterByWindow(incidents, w2, WindowModeStart, now))
			n3 := len(filterByWindow(incidents, w3, WindowModeStart, now))

			So(n1, ShouldEqual, 1)
			So(n2, ShouldEqual, 1)
			So(n3, ShouldEqual, 1)
			So(n1+n2+n3, ShouldEqual, len(incidents))
		})
	})
}
