package kafka

import (
	"strconv"

	"github.com/pkg/errors"
)

func IncrPostCounterField(field string, postID int64, offset int) error {
	err := writeMessage(counterWriter, TopicCounter, strconv.Itoa(int(postID)), TypeCounterIncr, CounterIncr{
		Field:  field,
		PostID: postID,
		Offset: offset,
	})

	return errors.Wrap(err, "kafka-producer:IncrPostCounterField: writeMessage")
}
