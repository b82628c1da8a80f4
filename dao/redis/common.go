package redis

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// keys
// 规范：
// Key + KeyName + Type + (PF)前缀
const (
	// token
	KeyAccessTokenStringPF  = "subpost:token:access_token:"  // parma: user_id, val: access_token
	KeyRefreshTokenStringPF = "subpost:token:refresh_token:" // parma: user_id, val: refresh_token

	// post
	KeyPostTimeZset    = "subpost:post:time"    // member: post_id, score: publish time
	KeyPostScoreZset   = "subpost:post:score"   // member: post_id, score: score
	KeyPostVotedZsetPF = "subpost:post:voted:"  // parma: post_id, member: user_id, score: direction
	KeyPostViewsZset   = "subpost:post:views"   // member: post_id, score: views

	// reply tree
	KeyTreeIndexZSetPF = "subpost:tree:" // parma: root_parent, member: post_id, score: seq

	// hotspot
	KeyViewCreatedTimeZSet = "subpost:views" // member: otype_oid, score: create time
)

var Nil = redis.Nil

// common method
func set(key string, val any, expireDuration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	cmd := rdb.Set(ctx, key, val, expireDuration)
	return errors.Wrap(cmd.Err(), "")
}

func get(key string) *redis.StringCmd {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	return rdb.Get(ctx, key)
}

func Exists(key string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	cmd := rdb.Exists(ctx, key)
	return cmd.Val() == 1, errors.Wrap(cmd.Err(), "redis:Exists")
}

func GetKeys(pattern string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	cmd := rdb.Keys(ctx, pattern)
	return cmd.Val(), errors.Wrap(cmd.Err(), "redis:GetKeys")
}

func GetKeysIdleTime(keys []string) ([]time.Duration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	pipe := rdb.Pipeline()
	cmds := make([]*redis.DurationCmd, 0, len(keys))
	for _, key := range keys {
		cmds = append(cmds, pipe.ObjectIdleTime(ctx, key))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "redis:GetKeysIdleTime: Exec")
	}

	idleTimes := make([]time.Duration, 0, len(keys))
	for _, cmd := range cmds {
		idleTimes = append(idleTimes, cmd.Val())
	}
	return idleTimes, nil
}

func DelKeys(keys []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	cmd := rdb.Del(ctx, keys...)
	return errors.Wrap(cmd.Err(), "redis:DelKeys")
}

func ZSetRem(key string, member any) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	cmd := rdb.ZRem(ctx, key, member)
	return errors.Wrap(cmd.Err(), "redis:ZSetRem")
}

func GetZSetMembersRangeByScore(key, min, max string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	cmd := rdb.ZRangeByScore(ctx, key, &redis.ZRangeBy{Min: min, Max: max})
	return cmd.Val(), errors.Wrap(cmd.Err(), "redis:GetZSetMembersRangeByScore")
}
