package kafka

import (
	"net"
	"strconv"
	"subpost/dao/localcache"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

const (
	TypeCounterIncr = iota + 1
)

const (
	ErrTypeNoError     = iota + 1
	ErrTypeConvert     // 本不应该产生，是系统内部的错误
	ErrTypeTransaction // 事务执行时产生的错误
)

const (
	TopicCounter = "topic-counter"
)

const (
	GroupCounter = "group-counter"
)

var addr []string

var (
	PartitionNumOfCounter = 6
)

var (
	ReplicationFactorOfCounter = 1
)

var (
	KafkaProducerRetryTime = 5 // 发送失败，重试次数
	KafkaConsumerRetryTime = 5 // 消费失败，重试次数
)

type Message struct {
	Type int8 `json:"type"`
	Data any  `json:"data"`
}

type Result struct {
	UniqueKey string // 一条消息消费结束后，可以代表的唯一标识
	Err       error  // 消费产生的错误
}

var counterWriter *kafka.Writer

var notifyList []chan int

var wg sync.WaitGroup

func InitKafka() {
	initConfig()

	// 初始化 producer
	counterWriter = &kafka.Writer{
		Addr:         kafka.TCP(addr...),
		Balancer:     &kafka.Hash{}, // 哈希，保证同一个 post 的计数消息在同一个 partition
		RequiredAcks: kafka.RequireAll,
	}

	// 初始化通知列表
	notifyList = make([]chan int, 0, PartitionNumOfCounter)

	// 创建主题
	createTopic(TopicCounter, PartitionNumOfCounter, ReplicationFactorOfCounter)

	// 初始化 consumer
	initConsumer(PartitionNumOfCounter, TopicCounter, GroupCounter)
}

func Wait() {
	// 通知消费者退出
	for i := 0; i < len(notifyList); i++ {
		notifyList[i] <- 1
	}

	wg.Wait()
}

// 轮询消息是否消费，超时返回 false，错误返回 error
func CheckIfConsumed(uniqueKey string, retry, interval int) (consumed bool, err error) {
	consumed = false
	for i := 0; i < retry; i++ {
		time.Sleep(time.Millisecond * time.Duration(interval))
		status, ok := localcache.GetStatus(uniqueKey)
		if !ok {
			continue
		}

		consumed = true
		if status == localcache.StatusFailed {
			err = errors.New("message has been consumed but failed")
		}

		localcache.RemoveStatus(uniqueKey)
		break
	}
	return
}

func initConfig() {
	addr = viper.GetStringSlice("kafka.addr")

	PartitionNumOfCounter = viper.GetInt("kafka.partition.counter")
	ReplicationFactorOfCounter = viper.GetInt("kafka.replication_factor.counter")

	KafkaProducerRetryTime = viper.GetInt("kafka.retry.producer")
	KafkaConsumerRetryTime = viper.GetInt("kafka.retry.consumer")
}

func createTopic(topicName string, partitionNum, replicationFactor int) {
	// 连接至任意 kafka 节点
	if len(addr) == 0 {
		panic("kafka address length should not be zero")
	}
	conn, err := kafka.Dial("tcp", addr[0])
	if err != nil {
		panic(err.Error())
	}
	defer conn.Close()

	// 获取当前控制节点信息
	controller, err := conn.Controller()
	if err != nil {
		panic(err.Error())
	}
	var controllerConn *kafka.Conn
	// 连接至 leader 节点
	controllerConn, err = kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		panic(err.Error())
	}
	defer controllerConn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             topicName,
			NumPartitions:     partitionNum,
			ReplicationFactor: replicationFactor,
		},
	}

	// 创建 topic
	err = controllerConn.CreateTopics(topicConfigs...)
	if err != nil {
		panic(err.Error())
	}
}

// 创建消费者
func initConsumer(partitionNum int, topic, group string) {
	// 每个 partition 对应一个 consumer
	wg.Add(partitionNum)
	for i := 0; i < partitionNum; i++ {
		r := kafka.NewReader(kafka.ReaderConfig{
			Brokers: addr,
			Topic:   topic,
			GroupID: group,
		})

		ch := make(chan int, 1)
		notifyList = append(notifyList, ch)
		go basicSerialConsumerWork(ch, r)
	}
}
