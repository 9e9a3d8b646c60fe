package service

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestComputeStats(t *testing.T) {
	Convey("TestComputeStats", t, func() {
		Convey("空集只有 count 和 total", func() {
			s := computeStats(nil)

			So(s.Count, ShouldEqual, 0)
			So(s.TotalHours, ShouldEqual, 0)
			So(s.MinHours, ShouldBeNil)
			So(s.MaxHours, ShouldBeNil)
			So(s.MeanHours, ShouldBeNil)
			So(s.MedianHours, ShouldBeNil)
			So(s.P90Hours, ShouldBeNil)
		})

		Convey("单个样本所有统计量相同", func() {
			s := computeStats([]time.Duration{4 * time.Hour})

			So(s.Count, ShouldEqual, 1)
			So(s.TotalHours, ShouldEqual, 4)
			So(*s.MinHours, ShouldEqual, 4)
			So(*s.MaxHours, ShouldEqual, 4)
			So(*s.MeanHours, ShouldEqual, 4)
			So(*s.MedianHours, ShouldEqual, 4)
			So(*s.P90Hours, ShouldEqual, 4)
		})

		Convey("偶数个样本取下中位数", func() {
			s := computeStats([]time.Duration{
				1 * time.Hour, 2 * time.Hour, 3 * time.Hour, 4 * time.Hour,
			})

			// 下标 floor((4-1)/2)=1
			So(*s.MedianHours, ShouldEqual, 2)
			So(*s.MeanHours, ShouldEqual, 2.5)
		})

		Convey("p90 取下标 floor(0.9*(n-1))", func() {
			durations := make([]time.Duration, 0, 10)
			for i := 1; i <= 10; i++ {
				durations = append(durations, time.Duration(i)*time.Hour)
			}
			s := computeStats(durations)

			// 下标 floor(0.9*9)=8，即第 9 个样本
			So(*s.P90Hours, ShouldEqual, 9)
			So(*s.MinHours, ShouldEqual, 1)
			So(*s.MaxHours, ShouldEqual, 10)
		})

		Convey("输入乱序不影响结果", func() {
			s := computeStats([]time.Duration{
				3 * time.Hour, 1 * time.Hour, 2 * time.Hour,
			})

			So(*s.MedianHours, ShouldEqual, 2)
			So(s.TotalHours, ShouldEqual, 6)
		})

		Convey("负时长被剔除", func() {
			s := computeStats([]time.Duration{
				-1 * time.Hour, 2 * time.Hour,
			})

			So(s.Count, ShouldEqual, 1)
			So(s.TotalHours, ShouldEqual, 2)
		})
	})
}

func TestToHealthStats(t *testing.T) {
	Convey("TestToHealthStats", t, func() {
		Convey("已关闭时长统计与未关闭计数互相独立", func() {
			hs := toHealthStats([]time.Duration{2 * time.Hour, 4 * time.Hour}, 3)

			So(hs.CountClosed, ShouldEqual, 2)
			So(hs.CountOpen, ShouldEqual, 3)
			So(hs.TotalHours, ShouldEqual, 6)
			So(*hs.MedianHours, ShouldEqual, 2)
		})
	})
}
