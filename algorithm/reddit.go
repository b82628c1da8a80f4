package algorithm

import (
	"math"
	"time"

	"github.com/spf13/viper"
)

// 分母越大，发布时间对分数的影响越小
const freshnessDivisor = 45000.0

// PostScore 按 Reddit 热度公式给帖子打分
//
// diff 为赞成票减反对票，publishedAt 为发布时间戳，
// 票差的数量级决定基础分，发布时间决定加减方向上的偏移
func PostScore(publishedAt, diff int64) float64 {
	epoch, _ := time.Parse("2006-01-02", viper.GetString("server.start_time"))
	age := publishedAt - epoch.Unix()

	var sign float64
	switch {
	case diff > 0:
		sign = 1
	case diff < 0:
		sign = -1
	}

	magnitude := math.Abs(float64(diff))
	if magnitude < 1 {
		magnitude = 1
	}

	return math.Log10(magnitude) + sign*float64(age)/freshnessDivisor
}
