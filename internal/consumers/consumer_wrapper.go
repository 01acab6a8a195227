package consumers

import (
	"context"
	"sync/atomic"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// ConsumerFunc is the shape every campaign consumer loop exposes. Health
// flags let a loop pause consumption while a dependency is down.
type ConsumerFunc func(ctx context.Context, consumer *kafka.Consumer, health ...*atomic.Bool)

// ConsumerWrapper binds a consumer loop to the health flags that gate it,
// producing the plain handler the kafka client registry expects.
type ConsumerWrapper struct {
	fn     ConsumerFunc
	health []*atomic.Bool
}

func WrapConsumer(fn ConsumerFunc, health ...*atomic.Bool) ConsumerWrapper {
	return ConsumerWrapper{
		fn:     fn,
		health: health,
	}
}

// WithHealthCheck adds another flag the wrapped loop must see healthy
// before pulling messages.
func (cw ConsumerWrapper) WithHealthCheck(health *atomic.Bool) ConsumerWrapper {
	cw.health = append(cw.health, health)
	return cw
}

func (cw ConsumerWrapper) Handler() func(ctx context.Context, consumer *kafka.Consumer) {
	return func(ctx context.Context, consumer *kafka.Consumer) {
		cw.fn(ctx, consumer, cw.health...)
	}
}
