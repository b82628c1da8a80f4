package algorithm

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestPostScore(t *testing.T) {
	viper.Set("server.start_time", "2024-01-01")
	now := time.Now().Unix()

	// 票差相同时，新帖分数更高
	older := PostScore(now-3600, 10)
	newer := PostScore(now, 10)
	assert.Greater(t, newer, older)

	// 发布时间相同时，票差越大分数越高
	low := PostScore(now, 1)
	high := PostScore(now, 100)
	assert.Greater(t, high, low)

	// 净反对票的帖子分数低于零票的帖子
	neg := PostScore(now, -10)
	zero := PostScore(now, 0)
	assert.Less(t, neg, zero)
}
