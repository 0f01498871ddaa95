package ports

// Topics published by the core operations.
const (
	TopicPoolCreated       = "pool_created"
	TopicLiquidityProvided = "liquidity_provided"
	TopicLiquidityRemoved  = "liquidity_removed"
	TopicTradeSettled      = "trade_settled"
	TopicPriceQuoted       = "price_quoted"
)

// PubSub defines the methods of the notification service the core publishes
// its events to. Delivery is fire-and-forget: no core behavior depends on a
// message reaching any subscriber.
type PubSub interface {
	// Subscribe adds a new subscription for the requested topic and returns
	// its id.
	Subscribe(topic, endpoint, secret string) (string, error)
	// Unsubscribe removes the subscription with the given id for a topic.
	Unsubscribe(topic, id string) error
	// Publish publishes a message for a certain topic. All subscribers of
	// such topic will receive the message.
	Publish(topic, message string) error
}
